package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/medtracker/medtracker-go/internal/model"
)

func newAuthCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{Use: "auth", Short: "Authentication commands"}

	cmd.AddCommand(&cobra.Command{
		Use:   "register",
		Short: "Create a new patient account",
		RunE: func(cmd *cobra.Command, args []string) error {
			name := promptLine(cmd, "Name: ")
			email := promptLine(cmd, "Email: ")
			password, err := promptPassword(cmd, "Password: ")
			if err != nil {
				return err
			}

			req := model.RegisterRequest{Name: name, Email: email, Password: string(password)}
			if err := app.Validator.Validate(req); err != nil {
				return err
			}

			resp, err := app.Client.Register(cmd.Context(), req)
			if err != nil {
				return err
			}
			if err := app.Session.Set(resp.Token, resp.User); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Registered and logged in as %s\n", resp.User.Email)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "login",
		Short: "Login and persist the session",
		RunE: func(cmd *cobra.Command, args []string) error {
			email := promptLine(cmd, "Email: ")
			password, err := promptPassword(cmd, "Password: ")
			if err != nil {
				return err
			}

			resp, err := app.Client.Login(cmd.Context(), email, string(password))
			if err != nil {
				return err
			}
			if err := app.Session.Set(resp.Token, resp.User); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", resp.User.Email)
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "logout",
		Short: "Clear the persisted session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Session.Clear(); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Logged out")
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show the current session",
		RunE: func(cmd *cobra.Command, args []string) error {
			if !app.Session.Authenticated() {
				fmt.Fprintln(cmd.OutOrStdout(), "Not logged in")
				return nil
			}
			user := app.Session.User()
			fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s <%s>\n", user.Name, user.Email)
			if exp := app.Session.ExpiresAt(); !exp.IsZero() {
				fmt.Fprintf(cmd.OutOrStdout(), "Session expires %s\n", exp.Format(time.RFC1123))
			}
			return nil
		},
	})

	whoami := &cobra.Command{
		Use:     "whoami",
		Short:   "Fetch the authenticated user from the server",
		PreRunE: requireAuth(app),
		RunE: func(cmd *cobra.Command, args []string) error {
			user, err := app.Client.Me(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, user)
		},
	}
	cmd.AddCommand(whoami)

	return cmd
}

func promptLine(cmd *cobra.Command, prompt string) string {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	reader := bufio.NewReader(cmd.InOrStdin())
	line, _ := reader.ReadString('\n')
	return strings.TrimSpace(line)
}

func promptPassword(cmd *cobra.Command, prompt string) ([]byte, error) {
	fmt.Fprint(cmd.OutOrStdout(), prompt)
	pass, err := term.ReadPassword(int(os.Stdin.Fd()))
	fmt.Fprintln(cmd.OutOrStdout())
	return pass, err
}
