package cli

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
)

func newReportsCmd(app *App) *cobra.Command {
	cmd := &cobra.Command{
		Use:               "reports",
		Short:             "Manage uploaded medical reports",
		PersistentPreRunE: requireAuth(app),
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List uploaded reports",
		RunE: func(cmd *cobra.Command, args []string) error {
			reports, err := app.Client.ListReportFiles(cmd.Context())
			if err != nil {
				return err
			}
			return printJSON(cmd, reports)
		},
	})

	upload := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a report file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()

			var buf bytes.Buffer
			mw := multipart.NewWriter(&buf)
			part, err := mw.CreateFormFile("file", filepath.Base(args[0]))
			if err != nil {
				return err
			}
			if _, err := io.Copy(part, f); err != nil {
				return err
			}
			if title := mustFlag(cmd, "title"); title != "" {
				if err := mw.WriteField("title", title); err != nil {
					return err
				}
			}
			if err := mw.Close(); err != nil {
				return err
			}

			report, err := app.Client.UploadReport(cmd.Context(), &buf, mw.FormDataContentType())
			if err != nil {
				return err
			}
			return printJSON(cmd, report)
		},
	}
	upload.Flags().String("title", "", "report title")
	cmd.AddCommand(upload)

	download := &cobra.Command{
		Use:   "download <reportID> <fileID>",
		Short: "Download a report file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := app.Client.DownloadReportFile(cmd.Context(), args[0], args[1])
			if err != nil {
				return err
			}
			out := mustFlag(cmd, "output")
			if out == "" {
				out = args[1]
			}
			if err := os.WriteFile(out, data, 0644); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Saved %d bytes to %s\n", len(data), out)
			return nil
		},
	}
	download.Flags().StringP("output", "o", "", "output path")
	cmd.AddCommand(download)

	cmd.AddCommand(&cobra.Command{
		Use:   "delete <reportID> <fileID>",
		Short: "Delete a report file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.Client.DeleteReportFile(cmd.Context(), args[0], args[1]); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Deleted")
			return nil
		},
	})

	return cmd
}
