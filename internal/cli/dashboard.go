package cli

import (
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/medtracker/medtracker-go/internal/model"
)

// dashboardView mirrors the web dashboard: several resource lists
// fetched in parallel and rendered together. The fetches race
// independently; the errgroup join is the caller-side synchronization
// point before rendering.
type dashboardView struct {
	Upcoming      []model.Appointment  `json:"upcoming"`
	Medications   []model.Medication   `json:"medications"`
	Notifications []model.Notification `json:"notifications"`
	Summary       model.MetricsSummary `json:"summary"`
}

func newDashboardCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:     "dashboard",
		Short:   "Show the health dashboard",
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			var view dashboardView

			g, ctx := errgroup.WithContext(cmd.Context())
			g.Go(func() (err error) {
				view.Upcoming, err = app.Client.UpcomingAppointments(ctx)
				return err
			})
			g.Go(func() (err error) {
				view.Medications, err = app.Client.Medications(ctx)
				return err
			})
			g.Go(func() (err error) {
				view.Notifications, err = app.Client.Notifications(ctx)
				return err
			})
			g.Go(func() (err error) {
				view.Summary, err = app.Client.HealthMetricsSummary(ctx)
				return err
			})
			if err := g.Wait(); err != nil {
				return err
			}
			return printJSON(cmd, view)
		},
	}
}
