package cli

import (
	"github.com/spf13/cobra"

	"github.com/medtracker/medtracker-go/internal/model"
)

func newPrescriptionsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "prescriptions",
		Aliases:           []string{"rx"},
		Short:             "Manage prescriptions",
		PersistentPreRunE: requireAuth(app),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all prescriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			rx, err := app.Client.Prescriptions(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, rx)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "active",
		Short: "List active prescriptions",
		RunE: func(cmd *cobra.Command, args []string) error {
			rx, err := app.Client.ActivePrescriptions(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, rx)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "refill-needed",
		Short: "List prescriptions that need a refill",
		RunE: func(cmd *cobra.Command, args []string) error {
			rx, err := app.Client.RefillNeededPrescriptions(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, rx)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "refill <id>",
		Short: "Request a refill",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rx, err := app.Client.RefillPrescription(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, rx)
		},
	})

	transfer := &cobra.Command{
		Use:   "transfer <id>",
		Short: "Transfer a prescription to another pharmacy",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.TransferPrescriptionRequest{Pharmacy: mustFlag(cmd, "pharmacy")}
			if err := app.Validator.Validate(req); err != nil {
				return err
			}
			rx, err := app.Client.TransferPrescription(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			return printJSON(cmd, rx)
		},
	}
	transfer.Flags().String("pharmacy", "", "destination pharmacy name")
	cmd.AddCommand(transfer)

	return cmd
}
