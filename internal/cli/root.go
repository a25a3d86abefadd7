// Package cli implements the medtracker command tree. Commands are thin
// wrappers over the API client: read flags, issue one call, print the
// result. Error display is left to cobra; the client never retries.
package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medtracker/medtracker-go/internal/client"
	"github.com/medtracker/medtracker-go/internal/session"
	"github.com/medtracker/medtracker-go/pkg/validator"
)

// App bundles what every command needs.
type App struct {
	Client    *client.Client
	Session   *session.Manager
	Validator *validator.Validator
}

func NewRootCmd(app *App, version string) *cobra.Command {
	root := &cobra.Command{
		Use:           "medtracker",
		Short:         "MedTracker patient health-record CLI",
		SilenceUsage:  true,
		SilenceErrors: false,
		Version:       version,
	}

	root.AddCommand(newAuthCmd(app))
	root.AddCommand(newMedicationsCmd(app))
	root.AddCommand(newAppointmentsCmd(app))
	root.AddCommand(newPrescriptionsCmd(app))
	root.AddCommand(newMetricsCmd(app))
	root.AddCommand(newDoctorsCmd(app))
	root.AddCommand(newReportsCmd(app))
	root.AddCommand(newNotificationsCmd(app))
	root.AddCommand(newProfileCmd(app))
	root.AddCommand(newExportCmd(app))
	root.AddCommand(newInteractionsCmd(app))
	root.AddCommand(newDashboardCmd(app))
	return root
}

// printJSON renders any payload indented to the command's stdout.
func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func requireAuth(app *App) func(cmd *cobra.Command, args []string) error {
	return func(cmd *cobra.Command, args []string) error {
		if !app.Session.Authenticated() {
			return fmt.Errorf("not logged in, run `medtracker auth login` first")
		}
		return nil
	}
}
