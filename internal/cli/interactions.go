package cli

import (
	"github.com/spf13/cobra"

	"github.com/medtracker/medtracker-go/internal/model"
)

func newInteractionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "interactions",
		Short:             "Check drug interactions",
		PersistentPreRunE: requireAuth(app),
	}

	check := &cobra.Command{
		Use:   "check <medication> <medication>...",
		Short: "Screen medications against each other",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.InteractionCheckRequest{Medications: args}
			if err := app.Validator.Validate(req); err != nil {
				return err
			}
			findings, err := app.Client.CheckInteractions(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, findings)
		},
	}
	cmd.AddCommand(check)

	cmd.AddCommand(&cobra.Command{
		Use:   "common",
		Short: "List frequently encountered interactions",
		RunE: func(cmd *cobra.Command, args []string) error {
			findings, err := app.Client.CommonInteractions(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, findings)
		},
	})

	return cmd
}
