package session

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/localstore"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

type memStore struct {
	mu   sync.Mutex
	data map[string]string
}

func newMemStore() *memStore { return &memStore{data: map[string]string{}} }

func (m *memStore) Get(key string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[key]
	return v, ok
}

func (m *memStore) set(key, value string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[key] = value
}

func (m *memStore) clear() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = map[string]string{}
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return tok
}

func TestCurrentIdentityFromEmailClaim(t *testing.T) {
	store := newMemStore()
	store.set(localstore.KeyToken, signToken(t, jwt.MapClaims{
		"email": "a@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}))

	m := NewManager(store)
	id := m.CurrentIdentity()
	assert.Equal(t, "a@example.com", id.Email)
	assert.False(t, id.Anonymous())
}

func TestStoredEmailWinsOverClaim(t *testing.T) {
	store := newMemStore()
	store.set(localstore.KeyEmail, "stored@example.com")
	store.set(localstore.KeyToken, signToken(t, jwt.MapClaims{
		"email": "claimed@example.com",
		"exp":   time.Now().Add(time.Hour).Unix(),
	}))

	m := NewManager(store)
	assert.Equal(t, "stored@example.com", m.CurrentIdentity().Email)
}

func TestExpiredTokenIsAnonymous(t *testing.T) {
	store := newMemStore()
	store.set(localstore.KeyEmail, "a@example.com")
	store.set(localstore.KeyToken, signToken(t, jwt.MapClaims{
		"email": "a@example.com",
		"exp":   time.Now().Add(-time.Hour).Unix(),
	}))

	m := NewManager(store)
	assert.True(t, m.CurrentIdentity().Anonymous())
	assert.Empty(t, m.Token())
}

func TestMissingTokenIsAnonymous(t *testing.T) {
	store := newMemStore()
	store.set(localstore.KeyEmail, "a@example.com")

	m := NewManager(store)
	assert.True(t, m.CurrentIdentity().Anonymous())
	assert.Empty(t, m.Token())
}

func TestOpaqueTokenWithStoredEmail(t *testing.T) {
	// a token that is not a JWT at all is still a valid credential as long
	// as an email marker identifies the user
	store := newMemStore()
	store.set(localstore.KeyEmail, "a@example.com")
	store.set(localstore.KeyToken, "opaque-session-token")

	m := NewManager(store)
	id := m.CurrentIdentity()
	assert.Equal(t, "a@example.com", id.Email)
	assert.Equal(t, "opaque-session-token", m.Token())
}

func TestWatcherCheckFiresOnChangeOnly(t *testing.T) {
	store := newMemStore()
	m := NewManager(store)
	w := NewWatcher(m, time.Second)

	var calls []models.Identity
	w.OnIdentityChanged(func(old, current models.Identity) {
		calls = append(calls, current)
	})

	// unchanged: still anonymous
	w.Check()
	assert.Empty(t, calls)

	// login
	store.set(localstore.KeyEmail, "a@example.com")
	store.set(localstore.KeyToken, "tok")
	w.Check()
	require.Len(t, calls, 1)
	assert.Equal(t, "a@example.com", calls[0].Email)

	// same identity again: no duplicate firing
	w.Check()
	assert.Len(t, calls, 1)

	// logout
	store.clear()
	w.Check()
	require.Len(t, calls, 2)
	assert.True(t, calls[1].Anonymous())
}

type recordingData struct {
	mu       sync.Mutex
	clears   int
	refreshs int
}

func (r *recordingData) ClearUserData() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.clears++
}

func (r *recordingData) RefreshUserData(ctx context.Context) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.refreshs++
}

func (r *recordingData) counts() (int, int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.clears, r.refreshs
}

func TestBindLoginClearsThenRefreshes(t *testing.T) {
	store := newMemStore()
	m := NewManager(store)
	w := NewWatcher(m, time.Second)
	data := &recordingData{}
	Bind(w, data, 10*time.Millisecond)

	store.set(localstore.KeyEmail, "a@example.com")
	store.set(localstore.KeyToken, "tok")
	w.Check()

	clears, refreshs := data.counts()
	assert.Equal(t, 1, clears, "clear must happen immediately")
	assert.Equal(t, 0, refreshs, "refresh waits for the settle delay")

	assert.Eventually(t, func() bool {
		_, r := data.counts()
		return r == 1
	}, time.Second, 5*time.Millisecond)
}

func TestBindLogoutOnlyClears(t *testing.T) {
	store := newMemStore()
	store.set(localstore.KeyEmail, "a@example.com")
	store.set(localstore.KeyToken, "tok")

	m := NewManager(store)
	w := NewWatcher(m, time.Second)
	data := &recordingData{}
	Bind(w, data, time.Millisecond)

	store.clear()
	w.Check()

	time.Sleep(50 * time.Millisecond)
	clears, refreshs := data.counts()
	assert.Equal(t, 1, clears)
	assert.Equal(t, 0, refreshs, "logout must not trigger a remote reload")
}

func TestWatcherStartStop(t *testing.T) {
	store := newMemStore()
	m := NewManager(store)
	w := NewWatcher(m, 5*time.Millisecond)

	fired := make(chan struct{}, 1)
	w.OnIdentityChanged(func(old, current models.Identity) {
		select {
		case fired <- struct{}{}:
		default:
		}
	})

	w.Start("")
	store.set(localstore.KeyEmail, "a@example.com")
	store.set(localstore.KeyToken, "tok")

	select {
	case <-fired:
	case <-time.After(time.Second):
		t.Fatal("polling watcher never observed the login")
	}
	w.Stop()
}
