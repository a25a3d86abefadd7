package cli

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtracker/medtracker-go/internal/apitest"
	"github.com/medtracker/medtracker-go/internal/client"
	"github.com/medtracker/medtracker-go/internal/config"
	"github.com/medtracker/medtracker-go/internal/model"
	"github.com/medtracker/medtracker-go/internal/session"
	"github.com/medtracker/medtracker-go/pkg/logger"
	"github.com/medtracker/medtracker-go/pkg/validator"
)

func newTestApp(t *testing.T, srv *apitest.Server) *App {
	t.Helper()
	sess := session.NewManager(session.NewMemoryStore())
	cfg := config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}
	return &App{
		Client:    client.New(cfg, sess, logger.Nop()),
		Session:   sess,
		Validator: validator.New(),
	}
}

func run(t *testing.T, app *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	root := NewRootCmd(app, "test")
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestMedicationsListPrintsJSON(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	app := newTestApp(t, srv)
	require.NoError(t, app.Session.Set("t1", model.User{ID: "u1"}))

	out, err := run(t, app, "medications", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Lisinopril")
}

func TestCommandsRequireLogin(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	app := newTestApp(t, srv)

	_, err := run(t, app, "medications", "list")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not logged in")
	assert.Equal(t, 0, len(srv.Requests()))
}

func TestAuthStatus(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	app := newTestApp(t, srv)

	out, err := run(t, app, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Not logged in")

	require.NoError(t, app.Session.Set("t1", model.User{ID: "u1", Email: "a@b.com"}))
	out, err = run(t, app, "auth", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "a@b.com")
}

func TestMedicationsAddValidatesBeforeSubmit(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	app := newTestApp(t, srv)
	require.NoError(t, app.Session.Set("t1", model.User{ID: "u1"}))

	_, err := run(t, app, "medications", "add", "--name", "Aspirin")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")
	assert.Equal(t, 0, len(srv.Requests()))
}

func TestDashboardJoinsSections(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()
	app := newTestApp(t, srv)
	require.NoError(t, app.Session.Set("t1", model.User{ID: "u1"}))

	out, err := run(t, app, "dashboard")
	require.NoError(t, err)
	assert.Contains(t, out, "upcoming")
	assert.Contains(t, out, "medications")
	assert.Contains(t, out, "notifications")
	assert.Contains(t, out, "summary")
}
