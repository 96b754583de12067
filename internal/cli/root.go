package cli

import (
	"github.com/nataliatalam/raimon/internal/service"
	"github.com/spf13/cobra"
)

// App holds references to all service interfaces used by CLI commands,
// plus the user identity the local CLI acts as.
type App struct {
	UserID   string
	Tasks    service.TaskService
	Checkins service.CheckinService
	Stats    service.StatsService
	DoNext   service.DoNextService
	Events   service.EventService
}

// NewRootCmd creates the top-level "raimon" command and registers all
// subcommands against the provided App.
func NewRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:   "raimon",
		Short: "Personal task coach: check in, get the one thing to do next",
	}

	root.PersistentFlags().StringVar(&app.UserID, "user", app.UserID, "User id to act as")

	root.AddCommand(
		newNextCmd(app),
		newCheckinCmd(app),
		newTaskCmd(app),
		newStatsCmd(app),
		newDayEndCmd(app),
	)

	return root
}
