// Package session owns the client-side session state: the bearer
// credential and the user record persisted next to it. The web frontend
// kept these under two localStorage keys plus a mirrored cookie; here
// they live behind an explicit manager injected into the HTTP client.
package session

import (
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/medtracker/medtracker-go/internal/model"
)

// Record is the persisted session state. A zero Record means
// unauthenticated.
type Record struct {
	Token string     `json:"token"`
	User  model.User `json:"user"`
}

// Store persists a session Record. Load returns a zero Record and nil
// error when no session has been saved yet.
type Store interface {
	Load() (Record, error)
	Save(Record) error
	Clear() error
}

// Manager is the single owner of session state for the process. Reads
// come from an in-memory copy; writes go through the Store. Writers are
// not externally synchronized; last write wins, matching the source
// behavior.
type Manager struct {
	mu    sync.RWMutex
	rec   Record
	store Store

	jar     http.CookieJar
	baseURL *url.URL
}

// Option configures the manager.
type Option func(*Manager)

// WithCookieMirror keeps a "token" cookie for the API origin in jar,
// mirroring what the web app sets for server-side route guarding.
func WithCookieMirror(jar http.CookieJar, base *url.URL) Option {
	return func(m *Manager) {
		m.jar = jar
		m.baseURL = base
	}
}

// NewManager loads any persisted session from store and returns the
// manager. A store read failure is not fatal; the manager starts
// unauthenticated.
func NewManager(store Store, opts ...Option) *Manager {
	m := &Manager{store: store}
	for _, o := range opts {
		o(m)
	}
	if rec, err := store.Load(); err == nil {
		m.rec = rec
		m.mirrorCookie(rec.Token)
	}
	return m
}

// Token returns the persisted credential, empty when unauthenticated.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rec.Token
}

// User returns the persisted session user record.
func (m *Manager) User() model.User {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.rec.User
}

// Authenticated reports whether a credential is present.
func (m *Manager) Authenticated() bool {
	return m.Token() != ""
}

// Set stores a new credential and user record, persists them, and
// refreshes the cookie mirror.
func (m *Manager) Set(token string, user model.User) error {
	m.mu.Lock()
	m.rec = Record{Token: token, User: user}
	rec := m.rec
	m.mu.Unlock()

	m.mirrorCookie(token)
	return m.store.Save(rec)
}

// Clear erases the credential, the user record and the cookie mirror.
func (m *Manager) Clear() error {
	m.mu.Lock()
	m.rec = Record{}
	m.mu.Unlock()

	m.mirrorCookie("")
	return m.store.Clear()
}

// ExpiresAt returns the credential's expiry from its JWT claims without
// verifying the signature. The zero time means no credential or no
// parseable expiry; the server remains the authority either way.
func (m *Manager) ExpiresAt() time.Time {
	token := m.Token()
	if token == "" {
		return time.Time{}
	}
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}
	}
	return exp.Time
}

func (m *Manager) mirrorCookie(token string) {
	if m.jar == nil || m.baseURL == nil {
		return
	}
	cookie := &http.Cookie{
		Name:   "token",
		Value:  token,
		Path:   "/",
		MaxAge: 7 * 24 * 60 * 60,
	}
	if token == "" {
		cookie.MaxAge = -1
	}
	m.jar.SetCookies(m.baseURL, []*http.Cookie{cookie})
}
