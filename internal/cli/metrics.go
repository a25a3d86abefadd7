package cli

import (
	"github.com/spf13/cobra"

	"github.com/medtracker/medtracker-go/internal/model"
)

func newMetricsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "metrics",
		Short:             "Track health metrics",
		PersistentPreRunE: requireAuth(app),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded metrics",
		RunE: func(cmd *cobra.Command, args []string) error {
			metrics, err := app.Client.HealthMetrics(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, metrics)
		},
	})

	add := &cobra.Command{
		Use:   "add",
		Short: "Record a metric reading",
		RunE: func(cmd *cobra.Command, args []string) error {
			value, _ := cmd.Flags().GetFloat64("value")
			req := model.CreateHealthMetricRequest{
				Type:  mustFlag(cmd, "type"),
				Value: value,
				Unit:  mustFlag(cmd, "unit"),
			}
			if err := app.Validator.Validate(req); err != nil {
				return err
			}
			metric, err := app.Client.CreateHealthMetric(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, metric)
		},
	}
	add.Flags().String("type", "", "metric type, e.g. heart_rate")
	add.Flags().Float64("value", 0, "reading value")
	add.Flags().String("unit", "", "unit, e.g. bpm")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "summary",
		Short: "Latest reading per metric type",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Client.HealthMetricsSummary(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, summary)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "trends",
		Short: "Per-type trend series",
		RunE: func(cmd *cobra.Command, args []string) error {
			trends, err := app.Client.HealthMetricsTrends(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, trends)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "bmi",
		Short: "Show computed BMI",
		RunE: func(cmd *cobra.Command, args []string) error {
			bmi, err := app.Client.BMI(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, bmi)
		},
	})

	return cmd
}
