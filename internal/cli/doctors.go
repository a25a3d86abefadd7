package cli

import (
	"github.com/spf13/cobra"

	"github.com/medtracker/medtracker-go/internal/model"
)

func newDoctorsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "doctors",
		Short:             "Browse doctors",
		PersistentPreRunE: requireAuth(app),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			doctors, err := app.Client.Doctors(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, doctors)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "get <id>",
		Short: "Show one doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doctor, err := app.Client.Doctor(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return printJSON(cmd, doctor)
		},
	})

	availability := &cobra.Command{
		Use:   "availability <id>",
		Short: "Show a doctor's open slots",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			slots, err := app.Client.DoctorAvailability(cmd.Context(), args[0], mustFlag(cmd, "date"))
			if err != nil {
				return err
			}
			return printJSON(cmd, slots)
		},
	}
	availability.Flags().String("date", "", "date (YYYY-MM-DD)")
	cmd.AddCommand(availability)

	review := &cobra.Command{
		Use:   "review <id>",
		Short: "Leave a review for a doctor",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			rating, _ := cmd.Flags().GetInt("rating")
			req := model.DoctorReviewRequest{Rating: rating, Comment: mustFlag(cmd, "comment")}
			if err := app.Validator.Validate(req); err != nil {
				return err
			}
			rev, err := app.Client.CreateDoctorReview(cmd.Context(), args[0], req)
			if err != nil {
				return err
			}
			return printJSON(cmd, rev)
		},
	}
	review.Flags().Int("rating", 0, "rating 1-5")
	review.Flags().String("comment", "", "review text")
	cmd.AddCommand(review)

	cmd.AddCommand(&cobra.Command{
		Use:   "specialties",
		Short: "List available specialties",
		RunE: func(cmd *cobra.Command, args []string) error {
			specialties, err := app.Client.Specialties(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, specialties)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "top-rated",
		Short: "List top-rated doctors",
		RunE: func(cmd *cobra.Command, args []string) error {
			doctors, err := app.Client.TopRatedDoctors(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, doctors)
		},
	})

	return cmd
}
