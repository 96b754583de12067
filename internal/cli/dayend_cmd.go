package cli

import (
	"context"
	"fmt"

	"github.com/nataliatalam/raimon/internal/contract"
	"github.com/spf13/cobra"
)

func newDayEndCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "day-end",
		Short: "Close out the day",
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := app.Events.HandleEvent(context.Background(), contract.Event{
				Kind:   contract.EventDayEnd,
				UserID: app.UserID,
			})
			if !resp.Success {
				return fmt.Errorf("%s", resp.Error)
			}
			if streak, ok := resp.Data["streak_days"].(int); ok && streak > 0 {
				fmt.Printf("Day closed. Streak alive at %d days.\n", streak)
			} else {
				fmt.Println("Day closed.")
			}
			if insight, ok := resp.Data["insight"].(*contract.CoachingMessage); ok && insight != nil {
				fmt.Println(insight.Message)
			}
			return nil
		},
	}
}
