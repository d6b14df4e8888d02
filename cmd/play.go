package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strconv"
	"strings"

	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/render"
	"github.com/they4kman/minefield/session"
)

var ErrUnknownCommand = errors.New("unknown command")

var errQuit = errors.New("quit")

func newRand(seed int64) *rand.Rand {
	return rand.New(rand.NewSource(seed))
}

// parseCommand reads a single line of input, e.g. "r 3 4"
func parseCommand(line string) (game.Action, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return game.Action{}, fmt.Errorf("%w: empty line", ErrUnknownCommand)
	}

	switch fields[0] {
	case "q", "quit":
		return game.Action{}, errQuit
	case "n", "new", "restart":
		return game.RestartAction(), nil
	case "r", "reveal", "m", "mark":
		if len(fields) != 3 {
			return game.Action{}, fmt.Errorf("%w: %q takes a column and a row", ErrUnknownCommand, fields[0])
		}

		x, err := strconv.ParseUint(fields[1], 10, 8)
		if err != nil {
			return game.Action{}, fmt.Errorf("invalid column %q: %w", fields[1], err)
		}
		y, err := strconv.ParseUint(fields[2], 10, 8)
		if err != nil {
			return game.Action{}, fmt.Errorf("invalid row %q: %w", fields[2], err)
		}

		if fields[0][0] == 'r' {
			return game.RevealAt(uint8(x), uint8(y)), nil
		}
		return game.MarkAt(uint8(x), uint8(y)), nil
	default:
		return game.Action{}, fmt.Errorf("%w: %q", ErrUnknownCommand, fields[0])
	}
}

// play reads commands from in until it is exhausted or the player quits,
// printing the board after every command
func play(in io.Reader, out io.Writer, sess *session.Session) error {
	if err := render.Text(out, sess); err != nil {
		return err
	}

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		action, err := parseCommand(line)
		if errors.Is(err, errQuit) {
			return nil
		}
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}

		sess.Apply(action)
		if err := render.Text(out, sess); err != nil {
			return err
		}
	}

	return scanner.Err()
}
