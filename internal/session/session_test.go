package session

import (
	"net/http/cookiejar"
	"net/url"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/medtracker/medtracker-go/internal/model"
)

func TestManagerSetGetClear(t *testing.T) {
	m := NewManager(NewMemoryStore())

	assert.False(t, m.Authenticated())
	assert.Empty(t, m.Token())

	require.NoError(t, m.Set("t1", model.User{ID: "u1", Email: "a@b.com"}))
	assert.True(t, m.Authenticated())
	assert.Equal(t, "t1", m.Token())
	assert.Equal(t, "a@b.com", m.User().Email)

	require.NoError(t, m.Clear())
	assert.False(t, m.Authenticated())
	assert.Empty(t, m.User().ID)
}

func TestManagerLoadsPersistedSession(t *testing.T) {
	store := NewMemoryStore()
	require.NoError(t, store.Save(Record{Token: "t1", User: model.User{ID: "u1"}}))

	m := NewManager(store)
	assert.Equal(t, "t1", m.Token())
	assert.Equal(t, "u1", m.User().ID)
}

func TestFileStoreRoundTrip(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileStore(dir)
	require.NoError(t, err)

	rec, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, rec.Token)

	require.NoError(t, store.Save(Record{Token: "t1", User: model.User{ID: "u1", Name: "A"}}))

	// a second store over the same dir sees the persisted session
	reopened, err := NewFileStore(dir)
	require.NoError(t, err)
	rec, err = reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, "t1", rec.Token)
	assert.Equal(t, "A", rec.User.Name)

	require.NoError(t, reopened.Clear())
	rec, err = reopened.Load()
	require.NoError(t, err)
	assert.Empty(t, rec.Token)

	// clearing an already-empty store is fine
	require.NoError(t, reopened.Clear())
}

func TestCookieMirror(t *testing.T) {
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)
	base, err := url.Parse("http://localhost:5000")
	require.NoError(t, err)

	m := NewManager(NewMemoryStore(), WithCookieMirror(jar, base))

	require.NoError(t, m.Set("t1", model.User{ID: "u1"}))
	cookies := jar.Cookies(base)
	require.Len(t, cookies, 1)
	assert.Equal(t, "token", cookies[0].Name)
	assert.Equal(t, "t1", cookies[0].Value)

	require.NoError(t, m.Clear())
	assert.Empty(t, jar.Cookies(base))
}

func TestExpiresAt(t *testing.T) {
	m := NewManager(NewMemoryStore())
	assert.True(t, m.ExpiresAt().IsZero())

	exp := time.Now().Add(time.Hour).Truncate(time.Second)
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	signed, err := tok.SignedString([]byte("secret"))
	require.NoError(t, err)

	require.NoError(t, m.Set(signed, model.User{ID: "u1"}))
	assert.Equal(t, exp.Unix(), m.ExpiresAt().Unix())

	// opaque non-JWT credentials report no expiry
	require.NoError(t, m.Set("not-a-jwt", model.User{ID: "u1"}))
	assert.True(t, m.ExpiresAt().IsZero())
}

func TestLastWriteWins(t *testing.T) {
	m := NewManager(NewMemoryStore())

	require.NoError(t, m.Set("t1", model.User{ID: "u1"}))
	require.NoError(t, m.Set("t2", model.User{ID: "u2"}))
	assert.Equal(t, "t2", m.Token())
	assert.Equal(t, "u2", m.User().ID)
}
