package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/nataliatalam/raimon/internal/cli/formatter"
	"github.com/nataliatalam/raimon/internal/contract"
	"github.com/nataliatalam/raimon/internal/domain"
	"github.com/spf13/cobra"
)

func newTaskCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "task",
		Short: "Manage your task list",
	}
	cmd.AddCommand(
		newTaskAddCmd(app),
		newTaskListCmd(app),
		newTaskDoneCmd(app),
	)
	return cmd
}

func newTaskAddCmd(app *App) *cobra.Command {
	var priority, tags string
	var minutes, energy int

	cmd := &cobra.Command{
		Use:   "add <title>",
		Short: "Add a task",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			task := &domain.Task{
				UserID:   app.UserID,
				Title:    strings.Join(args, " "),
				Priority: domain.Priority(priority),
			}
			if cmd.Flags().Changed("minutes") {
				task.EstimatedMin = &minutes
			}
			if cmd.Flags().Changed("energy") {
				task.EnergyReq = &energy
			}
			if tags != "" {
				task.Tags = strings.Split(tags, ",")
			}

			if err := app.Tasks.Create(context.Background(), task); err != nil {
				return err
			}
			fmt.Printf("Added %s: %s\n", formatter.TruncID(task.ID), task.Title)
			return nil
		},
	}

	cmd.Flags().StringVar(&priority, "priority", "medium", "Priority (urgent, high, medium, low)")
	cmd.Flags().IntVar(&minutes, "minutes", 0, "Estimated minutes")
	cmd.Flags().IntVar(&energy, "energy", 0, "Energy required (1-5)")
	cmd.Flags().StringVar(&tags, "tags", "", "Comma-separated tags")

	return cmd
}

func newTaskListCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List open tasks",
		RunE: func(cmd *cobra.Command, args []string) error {
			tasks, err := app.Tasks.ListOpen(context.Background(), app.UserID)
			if err != nil {
				return err
			}
			fmt.Print(formatter.FormatTaskList(tasks))
			return nil
		},
	}
}

func newTaskDoneCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "done <task-id>",
		Short: "Mark a task as completed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			resp := app.Events.HandleEvent(context.Background(), contract.Event{
				Kind:    contract.EventDoAction,
				UserID:  app.UserID,
				Payload: map[string]any{"task_id": args[0], "action": "done"},
			})
			if !resp.Success {
				return fmt.Errorf("%s", resp.Error)
			}
			if streak, ok := resp.Data["streak_days"].(int); ok && streak > 1 {
				fmt.Printf("Done. Streak: %d days.\n", streak)
			} else {
				fmt.Println("Done.")
			}
			return nil
		},
	}
}
