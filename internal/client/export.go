package client

import (
	"context"
	"net/http"

	"github.com/medtracker/medtracker-go/internal/model"
)

// Export generates a data export server-side and returns the document
// bytes unchanged (PDF/CSV/JSON depending on the requested format).
func (c *Client) Export(ctx context.Context, req model.ExportRequest) ([]byte, error) {
	return c.doBinary(ctx, http.MethodPost, "/api/export", req)
}

// ExportHistory lists previously generated exports.
func (c *Client) ExportHistory(ctx context.Context) ([]model.ExportRecord, error) {
	raw, err := c.getJSON(ctx, "/api/export/history")
	if err != nil {
		return nil, err
	}
	return listPayload[model.ExportRecord](c.log, raw, "/api/export/history", "history")
}
