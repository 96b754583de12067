package cli

import (
	"context"
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/spf13/cobra"
)

func newCheckinCmd(app *App) *cobra.Command {
	var energy, minutes int
	var mood string

	cmd := &cobra.Command{
		Use:   "checkin",
		Short: "Record how you're doing today",
		RunE: func(cmd *cobra.Command, args []string) error {
			// On a terminal with no flags, walk through the form instead.
			if !cmd.Flags().Changed("energy") && stdinIsTerminal() {
				var err error
				energy, mood, minutes, err = runCheckinForm()
				if err != nil {
					return err
				}
			}

			checkin := &domain.Checkin{
				UserID:       app.UserID,
				EnergyLevel:  energy,
				Mood:         mood,
				AvailableMin: minutes,
			}
			if err := app.Checkins.Submit(context.Background(), checkin); err != nil {
				return err
			}

			fmt.Printf("Checked in: energy %d/10", energy)
			if minutes > 0 {
				fmt.Printf(", %dm available", minutes)
			}
			fmt.Println()
			return nil
		},
	}

	cmd.Flags().IntVar(&energy, "energy", 5, "Energy level (1-10)")
	cmd.Flags().StringVar(&mood, "mood", "", "One-word mood label")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Minutes available today")

	return cmd
}

// runCheckinForm collects a check-in interactively.
func runCheckinForm() (energy int, mood string, minutes int, err error) {
	energyStr := "5"
	minutesStr := ""

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Energy (1-10)").
				Value(&energyStr).
				Validate(func(s string) error {
					n, convErr := strconv.Atoi(s)
					if convErr != nil || n < 1 || n > 10 {
						return fmt.Errorf("enter a number from 1 to 10")
					}
					return nil
				}),
			huh.NewInput().
				Title("Mood (optional)").
				Placeholder("focused, tired, restless...").
				Value(&mood),
			huh.NewInput().
				Title("Minutes available (optional)").
				Placeholder("60").
				Value(&minutesStr).
				Validate(func(s string) error {
					if s == "" {
						return nil
					}
					n, convErr := strconv.Atoi(s)
					if convErr != nil || n < 0 {
						return fmt.Errorf("enter a non-negative number")
					}
					return nil
				}),
		),
	)
	if err = form.Run(); err != nil {
		return 0, "", 0, err
	}

	energy, _ = strconv.Atoi(energyStr)
	if minutesStr != "" {
		minutes, _ = strconv.Atoi(minutesStr)
	}
	return energy, mood, minutes, nil
}

func stdinIsTerminal() bool {
	return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
}
