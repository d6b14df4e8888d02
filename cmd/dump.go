package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/they4kman/minefield/session"
)

func newDumpCmd(f *flags) *cobra.Command {
	return &cobra.Command{
		Use:   "dump",
		Short: "Print the layout of a freshly generated board",
		Long: `Print the layout of a freshly generated board as YAML. The output can be
fed back with --layout to replay the same board.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, f)
			if err != nil {
				return err
			}

			logger, err := cfg.Logger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			options, err := cfg.Game.Options()
			if err != nil {
				return err
			}

			sess, err := session.New(options, logger)
			if err != nil {
				return err
			}

			_, err = fmt.Fprint(cmd.OutOrStdout(), sess.Layout(options.Seed).Serialize())
			return err
		},
	}
}
