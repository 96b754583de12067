package cli

import (
	"context"
	"fmt"

	"github.com/nataliatalam/raimon/internal/cli/formatter"
	"github.com/nataliatalam/raimon/internal/contract"
	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/spf13/cobra"
)

func newNextCmd(app *App) *cobra.Command {
	var minutes, energy int
	var mode string

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Pick the one task to do right now",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := contract.DoNextRequest{UserID: app.UserID}

			// Explicit flags override the check-in derivation; both numeric
			// flags are required together because validation is strict.
			if cmd.Flags().Changed("minutes") || cmd.Flags().Changed("energy") {
				cons := map[string]any{
					"max_minutes":    minutes,
					"current_energy": energy,
				}
				if mode != "" {
					cons["mode"] = mode
				}
				req.Constraints = cons
			}

			resp := app.DoNext.DoNext(context.Background(), req)
			if !resp.Success {
				return fmt.Errorf("%s", resp.Error)
			}

			selected, err := app.Tasks.GetByID(context.Background(), resp.Data.TaskID)
			if err != nil {
				return err
			}
			alts := make([]*domain.Task, 0, len(resp.Data.AltTaskIDs))
			for _, id := range resp.Data.AltTaskIDs {
				if t, err := app.Tasks.GetByID(context.Background(), id); err == nil {
					alts = append(alts, t)
				}
			}

			fmt.Print(formatter.FormatNext(&resp.Data, selected, alts))
			return nil
		},
	}

	cmd.Flags().IntVar(&minutes, "minutes", 60, "Available minutes")
	cmd.Flags().IntVar(&energy, "energy", 3, "Current energy (1-5 or a word like low/high)")
	cmd.Flags().StringVar(&mode, "mode", "", "Session mode (quick, balanced, focus)")

	return cmd
}
