package client

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/http"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtracker/medtracker-go/internal/apitest"
	"github.com/medtracker/medtracker-go/internal/model"
)

func buildUpload(t *testing.T, filename, content string) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	part, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.WriteField("title", "Blood work"))
	require.NoError(t, mw.Close())
	return &buf, mw.FormDataContentType()
}

func TestUploadReportMultipart(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)

	body, contentType := buildUpload(t, "results.pdf", "fake pdf bytes")

	report, err := c.UploadReport(context.Background(), body, contentType)
	require.NoError(t, err)
	assert.Equal(t, "r2", report.ID)
	assert.Equal(t, "Blood work", report.Title)
	require.Len(t, report.Files, 1)
	assert.Equal(t, "results.pdf", report.Files[0].Name)

	last := srv.LastRequest()
	assert.Equal(t, http.MethodPost, last.Method)
	assert.Equal(t, "/api/upload", last.Path)
	assert.True(t, strings.HasPrefix(last.ContentType, "multipart/form-data"))
	assert.Equal(t, "Bearer t1", last.Authorization)
}

func TestUploadReportBareEnvelope(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	// some server iterations return the report record directly
	srv.Override(http.MethodPost, "/api/upload", http.StatusOK,
		map[string]interface{}{"id": "r9", "title": "MRI"})

	c, sess := newTestClient(t, srv)
	login(t, sess)

	body, contentType := buildUpload(t, "scan.dcm", "data")
	report, err := c.UploadReport(context.Background(), body, contentType)
	require.NoError(t, err)
	assert.Equal(t, "r9", report.ID)
	assert.Equal(t, "MRI", report.Title)
}

func TestDownloadReportFileReturnsRawBytes(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	srv.FileContent = []byte{0x25, 0x50, 0x44, 0x46, 0x00, 0xff, 0x01}

	c, sess := newTestClient(t, srv)
	login(t, sess)

	data, err := c.DownloadReportFile(context.Background(), "r1", "f1")
	require.NoError(t, err)
	assert.Equal(t, srv.FileContent, data)
	assert.Equal(t, "/api/upload/files/r1/f1/download", srv.LastRequest().Path)
}

func TestViewAndDeleteReportFile(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)
	ctx := context.Background()

	data, err := c.ViewReportFile(ctx, "r1", "f1")
	require.NoError(t, err)
	assert.NotEmpty(t, data)

	require.NoError(t, c.DeleteReportFile(ctx, "r1", "f1"))
	last := srv.LastRequest()
	assert.Equal(t, http.MethodDelete, last.Method)
	assert.Equal(t, "/api/upload/files/r1/f1", last.Path)
}

func TestExportReturnsBinary(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	c, sess := newTestClient(t, srv)
	login(t, sess)

	data, err := c.Export(context.Background(), model.ExportRequest{Format: "pdf"})
	require.NoError(t, err)
	assert.Equal(t, srv.FileContent, data)
	assert.Equal(t, http.MethodPost, srv.LastRequest().Method)
}
