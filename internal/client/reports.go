package client

import (
	"context"
	"io"
	"net/http"

	"github.com/medtracker/medtracker-go/internal/model"
)

// ListReportFiles lists uploaded medical reports and their files.
func (c *Client) ListReportFiles(ctx context.Context) ([]model.Report, error) {
	raw, err := c.getJSON(ctx, "/api/upload/files")
	if err != nil {
		return nil, err
	}
	return listPayload[model.Report](c.log, raw, "/api/upload/files", "files")
}

// UploadReport posts a caller-built multipart payload. contentType must
// be the multipart writer's FormDataContentType so the boundary is
// preserved. Returns the value under the "report" key when present,
// otherwise the whole response body.
func (c *Client) UploadReport(ctx context.Context, body io.Reader, contentType string) (model.Report, error) {
	raw, err := c.doMultipart(ctx, "/api/upload", body, contentType)
	if err != nil {
		return model.Report{}, err
	}
	return objectOrBare[model.Report](c.log, raw, "/api/upload", "report")
}

// DownloadReportFile fetches the raw file bytes for saving locally.
func (c *Client) DownloadReportFile(ctx context.Context, reportID, fileID string) ([]byte, error) {
	return c.doBinary(ctx, http.MethodGet, "/api/upload/files/%s/%s/download", nil, reportID, fileID)
}

// ViewReportFile fetches the raw file bytes for inline presentation.
func (c *Client) ViewReportFile(ctx context.Context, reportID, fileID string) ([]byte, error) {
	return c.doBinary(ctx, http.MethodGet, "/api/upload/files/%s/%s/view", nil, reportID, fileID)
}

func (c *Client) DeleteReportFile(ctx context.Context, reportID, fileID string) error {
	_, err := c.doJSON(ctx, http.MethodDelete, "/api/upload/files/%s/%s", nil, reportID, fileID)
	return err
}
