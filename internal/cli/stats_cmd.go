package cli

import (
	"context"
	"fmt"

	"github.com/nataliatalam/raimon/internal/cli/formatter"
	"github.com/spf13/cobra"
)

func newStatsCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "stats",
		Short: "Show your streak and totals",
		RunE: func(cmd *cobra.Command, args []string) error {
			stats, err := app.Stats.Get(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatStats(stats))
			return nil
		},
	}
}
