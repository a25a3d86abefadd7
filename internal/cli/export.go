package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/medtracker/medtracker-go/internal/model"
)

func newExportCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "export",
		Short:             "Export health records",
		PersistentPreRunE: requireAuth(app),
	}

	run := &cobra.Command{
		Use:   "run",
		Short: "Generate and save an export",
		RunE: func(cmd *cobra.Command, args []string) error {
			format := mustFlag(cmd, "format")
			req := model.ExportRequest{Format: format}
			if err := app.Validator.Validate(req); err != nil {
				return err
			}

			data, err := app.Client.Export(cmd.Context(), req)
			if err != nil {
				return err
			}

			out := mustFlag(cmd, "output")
			if out == "" {
				out = "medtracker-export." + format
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", len(data), out)
			return nil
		},
	}
	run.Flags().String("format", "pdf", "export format: pdf, csv or json")
	run.Flags().StringP("output", "o", "", "output path")
	cmd.AddCommand(run)

	cmd.AddCommand(&cobra.Command{
		Use:   "history",
		Short: "List previous exports",
		RunE: func(cmd *cobra.Command, args []string) error {
			history, err := app.Client.ExportHistory(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, history)
		},
	})

	return cmd
}
