package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medtracker/medtracker-go/internal/model"
)

func newMedicationsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "medications",
		Aliases:           []string{"meds"},
		Short:             "Manage medications",
		PersistentPreRunE: requireAuth(app),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all medications",
		RunE: func(cmd *cobra.Command, args []string) error {
			meds, err := app.Client.Medications(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, meds)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			med, err := app.Client.Medication(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, med)
		},
	})

	add := &cobra.Command{
		Use:   "add",
		Short: "Add a medication",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.CreateMedicationRequest{
				Name:       mustFlag(cmd, "name"),
				Dosage:     mustFlag(cmd, "dosage"),
				Frequency:  mustFlag(cmd, "frequency"),
				RefillDate: mustFlag(cmd, "refill-date"),
			}
			if err := app.Validator.Validate(req); err != nil {
				return err
			}
			med, err := app.Client.CreateMedication(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, med)
		},
	}
	add.Flags().String("name", "", "medication name")
	add.Flags().String("dosage", "", "dosage, e.g. 10mg")
	add.Flags().String("frequency", "", "e.g. daily")
	add.Flags().String("refill-date", "", "next refill date (YYYY-MM-DD)")
	cmd.AddCommand(add)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <id>",
		Short: "Delete a medication",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.DeleteMedication(cmd.Context(), args[0]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "take <id>",
		Short: "Record a dose as taken",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			med, err := app.Client.TakeMedication(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, med)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "schedule",
		Short: "Show today's dose schedule",
		RunE: func(cmd *cobra.Command, args []string) error {
			entries, err := app.Client.MedicationSchedule(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, entries)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "refill-soon",
		Short: "List medications due for refill",
		RunE: func(cmd *cobra.Command, args []string) error {
			meds, err := app.Client.MedicationsRefillSoon(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, meds)
		},
	})

	return cmd
}

func mustFlag(cmd *cobra.Command, name string) string {
	v, _ := cmd.Flags().GetString(name)
	return v
}
