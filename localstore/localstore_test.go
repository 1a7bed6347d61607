package localstore

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	return s
}

func TestPutGetRoundtrip(t *testing.T) {
	s := openTestStore(t)

	_, ok := s.Get("missing")
	assert.False(t, ok)

	require.NoError(t, s.Put("k", "v1"))
	v, ok := s.Get("k")
	assert.True(t, ok)
	assert.Equal(t, "v1", v)

	// overwrite
	require.NoError(t, s.Put("k", "v2"))
	v, _ = s.Get("k")
	assert.Equal(t, "v2", v)

	require.NoError(t, s.Delete("k"))
	_, ok = s.Get("k")
	assert.False(t, ok)
}

func TestCartRoundtrip(t *testing.T) {
	s := openTestStore(t)

	assert.Empty(t, s.LoadCart())

	items := []models.CartItem{{ID: "P1", Title: "Shirt", Price: 500, Qty: 2}}
	require.NoError(t, s.SaveCart(items))
	assert.Equal(t, items, s.LoadCart())
}

func TestMalformedEntriesReadAsEmpty(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.Put(KeyCart, "{definitely not json"))
	require.NoError(t, s.Put(KeyWishlist, "42"))

	assert.Empty(t, s.LoadCart())
	assert.Empty(t, s.LoadWishlist())
}

func TestWishlistRoundtrip(t *testing.T) {
	s := openTestStore(t)

	items := []models.WishlistItem{{ID: "P7", Title: "Dress", Price: 1500}}
	require.NoError(t, s.SaveWishlist(items))
	assert.Equal(t, items, s.LoadWishlist())
}

func TestIdentityMarkers(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.SetIdentity(models.Identity{Email: "a@example.com", Token: "tok"}))
	email, ok := s.Get(KeyEmail)
	assert.True(t, ok)
	assert.Equal(t, "a@example.com", email)
	token, _ := s.Get(KeyToken)
	assert.Equal(t, "tok", token)

	require.NoError(t, s.ClearIdentity())
	_, ok = s.Get(KeyEmail)
	assert.False(t, ok)
	_, ok = s.Get(KeyToken)
	assert.False(t, ok)
}
