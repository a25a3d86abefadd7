package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medtracker/medtracker-go/internal/model"
)

func newAppointmentsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "appointments",
		Aliases:           []string{"appts"},
		Short:             "Manage appointments",
		PersistentPreRunE: requireAuth(app),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List all appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := app.Client.Appointments(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, appts)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "upcoming",
		Short: "List upcoming appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := app.Client.UpcomingAppointments(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, appts)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "past",
		Short: "List past appointments",
		RunE: func(cmd *cobra.Command, args []string) error {
			appts, err := app.Client.PastAppointments(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, appts)
		},
	})

	book := &cobra.Command{
		Use:   "book",
		Short: "Book an appointment",
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.CreateAppointmentRequest{
				DoctorID: mustFlag(cmd, "doctor"),
				Date:     mustFlag(cmd, "date"),
				Time:     mustFlag(cmd, "time"),
				Reason:   mustFlag(cmd, "reason"),
			}
			if err := app.Validator.Validate(req); err != nil {
				return err
			}
			appt, err := app.Client.CreateAppointment(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, appt)
		},
	}
	book.Flags().String("doctor", "", "doctor id")
	book.Flags().String("date", "", "date (YYYY-MM-DD)")
	book.Flags().String("time", "", "time (HH:MM)")
	book.Flags().String("reason", "", "reason for visit")
	cmd.AddCommand(book)

	cmd.AddCommand(&cobra.Command{
		Use:   "cancel <id>",
		Short: "Cancel an appointment",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			appt, err := app.Client.CancelAppointment(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Cancelled appointment %s\n", appt.ID)
			return nil
		},
	})

	reschedule := &cobra.Command{
		Use:   "reschedule <id>",
		Short: "Move an appointment to a new slot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			req := model.RescheduleAppointmentRequest{
				Date: mustFlag(cmd, "date"),
				Time: mustFlag(cmd, "time"),
			}
			if err := app.Validator.Validate(req); err != nil {
				return err
			}
			appt, err := app.Client.RescheduleAppointment(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			return printJSON(cmd, appt)
		},
	}
	reschedule.Flags().String("date", "", "new date (YYYY-MM-DD)")
	reschedule.Flags().String("time", "", "new time (HH:MM)")
	cmd.AddCommand(reschedule)

	slots := &cobra.Command{
		Use:   "slots",
		Short: "List available slots for a doctor",
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := app.Client.AvailableSlots(cmd.Context(), mustFlag(cmd, "doctor"), mustFlag(cmd, "date"))
			if err != nil {
				return err
			}
			return printJSON(cmd, slots)
		},
	}
	slots.Flags().String("doctor", "", "doctor id")
	slots.Flags().String("date", "", "date (YYYY-MM-DD)")
	cmd.AddCommand(slots)

	return cmd
}
