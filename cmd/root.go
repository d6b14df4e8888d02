package cmd

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/they4kman/minefield/config"
	"github.com/they4kman/minefield/director/constraint"
	"github.com/they4kman/minefield/director/random"
	"github.com/they4kman/minefield/game"
	"github.com/they4kman/minefield/render"
	"github.com/they4kman/minefield/session"
)

type flags struct {
	configPath string
	layoutPath string
	logLevel   string
	width      uint
	height     uint
	mines      uint
	seed       int64
	director   string
}

var rootFlags flags

var rootCmd = newRootCmd(&rootFlags)

func newRootCmd(f *flags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "minefield",
		Short: "Play manual or computer-driven Minesweeper in the terminal",
		Long: `minefield is a Minesweeper game which supports human- or
computer-driven playing.

Run with no arguments to play manually, typing commands on stdin
	minefield

	r X Y   reveal the cell at column X, row Y
	m X Y   mark or unmark the cell
	n       start a new game
	q       quit

Use the director flag to make the computer play for you
	minefield --director constraint
`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGame(cmd, f)
		},
	}

	// Define our root -help without a shorthand, as we'll use -h for --height
	// Ref: https://github.com/spf13/cobra/issues/291
	cmd.PersistentFlags().Bool("help", false, "Help for this command")

	cmd.PersistentFlags().StringVarP(&f.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().StringVar(&f.logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().UintVarP(&f.width, "width", "w", 9, "Width of game board, in cells")
	cmd.PersistentFlags().UintVarP(&f.height, "height", "h", 9, "Height of game board, in cells")
	cmd.PersistentFlags().UintVarP(&f.mines, "mines", "m", 10, "Number of mines to place in the game board")
	cmd.PersistentFlags().Int64Var(&f.seed, "seed", 0, "Seed for mine placement; when neither this flag nor the config sets one, it is picked from the clock")
	cmd.Flags().StringVarP(&f.director, "director", "d", "", `Make the computer play.
random: reveal random cells
constraint: deduce safe cells and mines, guessing only when stuck`)
	cmd.Flags().StringVar(&f.layoutPath, "layout", "", "Start from a board layout file, as printed by the dump command")

	cmd.AddCommand(newDumpCmd(f))

	return cmd
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig merges the config file and environment with any flags given
// explicitly on the command line
func loadConfig(cmd *cobra.Command, f *flags) (*config.Config, error) {
	cfg, err := config.Load(f.configPath)
	if err != nil {
		return nil, err
	}

	changed := cmd.Flags().Changed
	if changed("log-level") {
		cfg.LogLevel = f.logLevel
	}
	if changed("width") {
		cfg.Game.Width = f.width
	}
	if changed("height") {
		cfg.Game.Height = f.height
	}
	if changed("mines") {
		cfg.Game.Mines = f.mines
	}
	if changed("seed") {
		cfg.Game.Seed = f.seed
	}
	if changed("director") {
		cfg.Game.Director = f.director
	}

	// A seed of 0 from the config or environment means unset; --seed 0 is kept
	if !changed("seed") && cfg.Game.Seed == 0 {
		cfg.Game.Seed = time.Now().UnixNano()
	}
	return cfg, nil
}

func newDirector(name string, seed int64) (game.Director, error) {
	switch name {
	case "":
		return nil, nil
	case "random":
		return random.New(newRand(seed)), nil
	case "constraint":
		return constraint.New(newRand(seed)), nil
	default:
		return nil, fmt.Errorf("unknown director %q", name)
	}
}

func newSession(f *flags, cfg *config.Config, log logrus.FieldLogger) (*session.Session, error) {
	if f.layoutPath != "" {
		content, err := os.ReadFile(f.layoutPath)
		if err != nil {
			return nil, fmt.Errorf("unable to read layout: %w", err)
		}
		layout, err := game.LoadLayout(string(content))
		if err != nil {
			return nil, err
		}
		return session.FromLayout(layout, log)
	}

	options, err := cfg.Game.Options()
	if err != nil {
		return nil, err
	}
	return session.New(options, log)
}

func runGame(cmd *cobra.Command, f *flags) error {
	cfg, err := loadConfig(cmd, f)
	if err != nil {
		return err
	}

	logger, err := cfg.Logger(cmd.ErrOrStderr())
	if err != nil {
		return err
	}

	director, err := newDirector(cfg.Game.Director, cfg.Game.Seed)
	if err != nil {
		return err
	}

	sess, err := newSession(f, cfg, logger)
	if err != nil {
		return err
	}

	if director != nil {
		return autoplay(cmd.OutOrStdout(), sess, director)
	}
	return play(cmd.InOrStdin(), cmd.OutOrStdout(), sess)
}

// autoplay lets the director play until the game ends, printing each move
func autoplay(out io.Writer, sess *session.Session, director game.Director) error {
	for sess.Step(director) {
		if err := render.Text(out, sess); err != nil {
			return err
		}
	}
	return render.Text(out, sess)
}
