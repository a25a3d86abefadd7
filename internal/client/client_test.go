package client

import (
	"context"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtracker/medtracker-go/internal/apitest"
	"github.com/medtracker/medtracker-go/internal/config"
	"github.com/medtracker/medtracker-go/internal/model"
	"github.com/medtracker/medtracker-go/internal/session"
	"github.com/medtracker/medtracker-go/pkg/errors"
	"github.com/medtracker/medtracker-go/pkg/logger"
)

func newTestClient(t *testing.T, srv *apitest.Server, opts ...Option) (*Client, *session.Manager) {
	t.Helper()
	sess := session.NewManager(session.NewMemoryStore())
	cfg := config.APIConfig{BaseURL: srv.URL, Timeout: 5 * time.Second}
	return New(cfg, sess, logger.Nop(), opts...), sess
}

func login(t *testing.T, sess *session.Manager) {
	t.Helper()
	require.NoError(t, sess.Set("t1", model.User{ID: "u1", Name: "A", Email: "a@b.com"}))
}

func TestBearerHeaderAttachedWhenAuthenticated(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	c, sess := newTestClient(t, srv)
	login(t, sess)

	_, err := c.Medications(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "Bearer t1", srv.LastRequest().Authorization)
	assert.NotEmpty(t, srv.LastRequest().RequestID)
}

func TestNoBearerHeaderWhenUnauthenticated(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	c, _ := newTestClient(t, srv)

	_, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)

	assert.Empty(t, srv.LastRequest().Authorization)
}

func TestUnauthorizedWipesSessionAndNotifiesOnce(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	var (
		mu      sync.Mutex
		expired int
	)
	c, sess := newTestClient(t, srv, OnSessionExpired(func() {
		mu.Lock()
		expired++
		mu.Unlock()
	}))
	login(t, sess)
	srv.ForceUnauthorized(true)

	_, err := c.Medications(context.Background())
	require.Error(t, err)
	assert.True(t, errors.IsUnauthorized(err))

	assert.Empty(t, sess.Token())
	assert.Empty(t, sess.User().ID)
	mu.Lock()
	assert.Equal(t, 1, expired)
	mu.Unlock()
}

func TestNonAuthFailuresPropagateUntouched(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	srv.Override(http.MethodGet, "/api/medications", http.StatusInternalServerError,
		map[string]string{"message": "database unavailable"})

	c, sess := newTestClient(t, srv)
	login(t, sess)

	_, err := c.Medications(context.Background())
	require.Error(t, err)
	assert.Equal(t, http.StatusInternalServerError, errors.StatusOf(err))
	assert.Contains(t, err.Error(), "database unavailable")

	// the session survives anything but a 401
	assert.Equal(t, "t1", sess.Token())
}

func TestConcurrentIdenticalCallsAreNotDeduplicated(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	c, sess := newTestClient(t, srv)
	login(t, sess)

	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			appts, err := c.Appointments(context.Background())
			assert.NoError(t, err)
			assert.Len(t, appts, 1)
		}()
	}
	wg.Wait()

	assert.Equal(t, 2, srv.RequestCount(http.MethodGet, "/api/appointments"))
}

func TestLoginRoundTrip(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	c, sess := newTestClient(t, srv)

	resp, err := c.Login(context.Background(), "a@b.com", "pw")
	require.NoError(t, err)
	assert.Equal(t, "t1", resp.Token)
	assert.Equal(t, "u1", resp.User.ID)

	require.NoError(t, sess.Set(resp.Token, resp.User))

	user, err := c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, "Bearer t1", srv.LastRequest().Authorization)
}

func TestContextCancellationStopsCall(t *testing.T) {
	srv := apitest.New()
	defer srv.Close()

	c, sess := newTestClient(t, srv)
	login(t, sess)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Medications(ctx)
	require.Error(t, err)
	assert.Equal(t, 0, errors.StatusOf(err))
}
