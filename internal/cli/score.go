package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"cosmicstandoff/internal/factory"
	"cosmicstandoff/internal/model"
)

func newScoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score",
		Short: "Show the all-time score",
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, closeLog, err := newLogger()
			if err != nil {
				return err
			}
			defer closeLog()

			app, err := factory.New(factoryConfig(logger))
			if err != nil {
				return err
			}
			defer app.Store.Close()

			scores, err := app.Store.Load(cmd.Context())
			if err != nil {
				return fmt.Errorf("loading score: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, "Current score:")
			fmt.Fprintln(out)
			for _, name := range []model.AgentName{model.AgentCaptain, model.AgentAlien} {
				fmt.Fprintf(out, "-- %s: %d\n", name, scores.Get(name))
			}
			return nil
		},
	}
}
