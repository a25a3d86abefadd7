package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/medtracker/medtracker-go/internal/model"
)

func newProfileCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "profile",
		Short:             "View and update the patient profile",
		PersistentPreRunE: requireAuth(app),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Show the profile",
		RunE: func(cmd *cobra.Command, args []string) error {
			profile, err := app.Client.Profile(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, profile)
		},
	})

	update := &cobra.Command{
		Use:   "update",
		Short: "Update profile fields",
		RunE: func(cmd *cobra.Command, args []string) error {
			var req model.UpdateProfileRequest
			if cmd.Flags().Changed("name") {
				v := mustFlag(cmd, "name")
				req.Name = &v
			}
			if cmd.Flags().Changed("phone") {
				v := mustFlag(cmd, "phone")
				req.Phone = &v
			}
			if cmd.Flags().Changed("blood-type") {
				v := mustFlag(cmd, "blood-type")
				req.BloodType = &v
			}
			profile, err := app.Client.UpdateProfile(cmd.Context(), req)
			if err != nil {
				return err
			}
			return printJSON(cmd, profile)
		},
	}
	update.Flags().String("name", "", "display name")
	update.Flags().String("phone", "", "phone number")
	update.Flags().String("blood-type", "", "blood type")
	cmd.AddCommand(update)

	cmd.AddCommand(&cobra.Command{
		Use:   "health-summary",
		Short: "Show the aggregated health summary",
		RunE: func(cmd *cobra.Command, args []string) error {
			summary, err := app.Client.ProfileHealthSummary(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, summary)
		},
	})

	changePassword := &cobra.Command{
		Use:   "change-password",
		Short: "Change the account password",
		RunE: func(cmd *cobra.Command, args []string) error {
			current, err := promptPassword(cmd, "Current password: ")
			if err != nil {
				return err
			}
			next, err := promptPassword(cmd, "New password: ")
			if err != nil {
				return err
			}
			req := model.UpdateSecurityRequest{CurrentPassword: string(current), NewPassword: string(next)}
			if err := app.Validator.Validate(req); err != nil {
				return err
			}
			if err := app.Client.UpdateSecurity(cmd.Context(), req); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Password updated")
			return nil
		},
	}
	cmd.AddCommand(changePassword)

	deleteAccount := &cobra.Command{
		Use:   "delete-account",
		Short: "Permanently delete the account",
		RunE: func(cmd *cobra.Command, args []string) error {
			confirm, _ := cmd.Flags().GetBool("yes")
			if !confirm {
				return fmt.Errorf("pass --yes to confirm account deletion")
			}
			if err := app.Client.DeleteAccount(cmd.Context()); err != nil {
				return err
			}
			if err := app.Session.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Account deleted")
			return nil
		},
	}
	deleteAccount.Flags().Bool("yes", false, "confirm deletion")
	cmd.AddCommand(deleteAccount)

	return cmd
}
