package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/session"
)

const fixture = "###\nOO#\n#O#\n###\n###"

func execute(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()

	var out, errOut bytes.Buffer
	cmd := newRootCmd(&flags{})
	cmd.SetArgs(args)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)

	err := cmd.Execute()
	return out.String(), err
}

func writeLayout(t *testing.T, board string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "layout.yaml")
	layout := &game.Layout{Seed: 1, Board: board}
	require.NoError(t, os.WriteFile(path, []byte(layout.Serialize()), 0o600))
	return path
}

func TestParseCommand(t *testing.T) {
	cases := []struct {
		line     string
		expected game.Action
	}{
		{"r 1 2", game.RevealAt(1, 2)},
		{"reveal 0 4", game.RevealAt(0, 4)},
		{"m 2 0", game.MarkAt(2, 0)},
		{"  mark   255 3 ", game.MarkAt(255, 3)},
		{"n", game.RestartAction()},
		{"restart", game.RestartAction()},
	}
	for _, tc := range cases {
		t.Run(tc.line, func(t *testing.T) {
			action, err := parseCommand(tc.line)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, action)
		})
	}

	t.Run("Quit", func(t *testing.T) {
		_, err := parseCommand("q")
		require.ErrorIs(t, err, errQuit)
	})

	t.Run("Errors", func(t *testing.T) {
		for _, line := range []string{"", "x 1 2", "r 1", "m 1 2 3"} {
			_, err := parseCommand(line)
			assert.ErrorIs(t, err, ErrUnknownCommand, line)
		}

		_, err := parseCommand("r 256 0")
		require.Error(t, err)
		_, err = parseCommand("r 0 -1")
		require.Error(t, err)
	})
}

func TestPlay(t *testing.T) {
	logger, _ := test.NewNullLogger()
	sess, err := session.FromLayout(&game.Layout{Board: fixture}, logger)
	require.NoError(t, err)

	// When: the player reveals the bottom, marks a mine, mistypes, then quits
	var out bytes.Buffer
	err = play(strings.NewReader("r 0 4\nm 1 2\nbogus\n\nq\nr 1 1\n"), &out, sess)
	require.NoError(t, err)

	// Then: the commands before quitting were applied
	require.False(t, sess.GameOver())
	require.Equal(t, "Found 1 of 3 mines.", sess.Message())
	require.Contains(t, out.String(), "unknown command")
	require.Equal(t, 3, strings.Count(out.String(), "Found "))
}

func TestRoot(t *testing.T) {
	t.Run("Manual game from a layout", func(t *testing.T) {
		path := writeLayout(t, fixture)

		out, err := execute(t, "r 1 1\n", "--layout", path)
		require.NoError(t, err)
		require.Contains(t, out, "Game lost!")
	})

	t.Run("Constraint director solves a started board", func(t *testing.T) {
		path := writeLayout(t, "###\nOO#\n#O#\n...\n...")

		out, err := execute(t, "", "--layout", path, "--director", "constraint")
		require.NoError(t, err)
		require.Contains(t, out, "Game won!")
		require.NotContains(t, out, "Game lost!")
	})

	t.Run("Random director finishes the game", func(t *testing.T) {
		out, err := execute(t, "", "-w", "5", "-h", "4", "-m", "3", "--seed", "11", "-d", "random")
		require.NoError(t, err)
		require.Regexp(t, `Game (won|lost)!`, out)
	})

	t.Run("Unknown director", func(t *testing.T) {
		_, err := execute(t, "", "-d", "psychic")
		require.Error(t, err)
	})

	t.Run("Too many mines", func(t *testing.T) {
		_, err := execute(t, "", "-w", "2", "-h", "2", "-m", "4")
		require.ErrorIs(t, err, session.ErrTooManyMines)
	})
}

func TestDump(t *testing.T) {
	out, err := execute(t, "", "dump", "-w", "4", "-h", "3", "-m", "2", "--seed", "7")
	require.NoError(t, err)

	layout, err := game.LoadLayout(out)
	require.NoError(t, err)
	require.Equal(t, int64(7), layout.Seed)

	grid, err := layout.Grid()
	require.NoError(t, err)
	require.Equal(t, uint8(4), grid.Width())
	require.Equal(t, uint8(3), grid.Height())
	require.Equal(t, 2, grid.NumMines())
	require.False(t, grid.GameOver())

	// Then: the same seed dumps the same board
	again, err := execute(t, "", "dump", "-w", "4", "-h", "3", "-m", "2", "--seed", "7")
	require.NoError(t, err)
	require.Equal(t, out, again)
}

func TestDump_SeedZero(t *testing.T) {
	// Given: the board is dumped twice with an explicit zero seed
	out, err := execute(t, "", "dump", "-w", "9", "-h", "9", "-m", "10", "--seed", "0")
	require.NoError(t, err)
	again, err := execute(t, "", "dump", "-w", "9", "-h", "9", "-m", "10", "--seed", "0")
	require.NoError(t, err)

	// Then: the zero seed is kept rather than replaced from the clock
	layout, err := game.LoadLayout(out)
	require.NoError(t, err)
	require.Equal(t, int64(0), layout.Seed)
	require.Equal(t, out, again)
}
