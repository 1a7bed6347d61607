package store

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// fakeRemote keys its data by the email of the identity making the call,
// so identity-switch tests can verify the right backing store is hit.
type fakeRemote struct {
	identity func() models.Identity

	carts     map[string][]models.CartItem
	wishlists map[string][]models.WishlistItem

	failReads bool

	clearCalls    int
	addedItems    []models.CartItem
	wishAdded     []string
	wishRemoved   []string
	wishlistReads int
}

func newFakeRemote(identity func() models.Identity) *fakeRemote {
	return &fakeRemote{
		identity:  identity,
		carts:     map[string][]models.CartItem{},
		wishlists: map[string][]models.WishlistItem{},
	}
}

func (f *fakeRemote) email() string { return f.identity().Email }

func (f *fakeRemote) GetCart(ctx context.Context) ([]models.CartItem, error) {
	if f.failReads {
		return nil, errors.New("boom")
	}
	return f.carts[f.email()], nil
}

func (f *fakeRemote) AddCartItem(ctx context.Context, item models.CartItem) error {
	f.addedItems = append(f.addedItems, item)
	f.carts[f.email()] = append(f.carts[f.email()], item)
	return nil
}

func (f *fakeRemote) ClearCart(ctx context.Context) error {
	f.clearCalls++
	f.carts[f.email()] = nil
	return nil
}

func (f *fakeRemote) GetWishlist(ctx context.Context) ([]models.WishlistItem, error) {
	if f.failReads {
		return nil, errors.New("boom")
	}
	f.wishlistReads++
	return f.wishlists[f.email()], nil
}

func (f *fakeRemote) AddWishlistItem(ctx context.Context, item models.WishlistItem) error {
	f.wishAdded = append(f.wishAdded, item.ID)
	f.wishlists[f.email()] = append(f.wishlists[f.email()], item)
	return nil
}

func (f *fakeRemote) RemoveWishlistItem(ctx context.Context, id string) error {
	f.wishRemoved = append(f.wishRemoved, id)
	items := f.wishlists[f.email()]
	for i := range items {
		if items[i].ID == id {
			f.wishlists[f.email()] = append(items[:i], items[i+1:]...)
			break
		}
	}
	return nil
}

type fakeLocal struct {
	cart     []models.CartItem
	wishlist []models.WishlistItem
	saves    int
}

func (f *fakeLocal) LoadCart() []models.CartItem         { return f.cart }
func (f *fakeLocal) LoadWishlist() []models.WishlistItem { return f.wishlist }
func (f *fakeLocal) SaveCart(items []models.CartItem) error {
	f.cart = items
	f.saves++
	return nil
}
func (f *fakeLocal) SaveWishlist(items []models.WishlistItem) error {
	f.wishlist = items
	return nil
}

func guestContainer() (*Container, *fakeRemote, *fakeLocal) {
	identity := func() models.Identity { return models.Identity{} }
	remote := newFakeRemote(identity)
	local := &fakeLocal{}
	c := New(remote, local, identity)
	c.Load(context.Background())
	return c, remote, local
}

func userContainer(email string) (*Container, *fakeRemote, *fakeLocal) {
	identity := func() models.Identity { return models.Identity{Email: email, Token: "tok"} }
	remote := newFakeRemote(identity)
	local := &fakeLocal{}
	c := New(remote, local, identity)
	c.Load(context.Background())
	return c, remote, local
}

func TestAddToCartMergesByID(t *testing.T) {
	c, _, _ := guestContainer()
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, models.CartItem{ID: "P1", Title: "Shirt", Price: 500, Qty: 1}))
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, 500.0, c.Total())

	require.NoError(t, c.AddToCart(ctx, models.CartItem{ID: "P1", Title: "Shirt", Price: 500, Qty: 2}))
	state := c.Cart()
	assert.Equal(t, 3, state.Count())
	assert.Equal(t, 1500.0, state.Total())
	require.Len(t, state.Items, 1, "same id must stay a single line")
	assert.Equal(t, 3, state.Items[0].Qty)
}

func TestAddToCartRejectsInvalidItems(t *testing.T) {
	c, _, _ := guestContainer()
	ctx := context.Background()

	assert.ErrorIs(t, c.AddToCart(ctx, models.CartItem{ID: "P1", Qty: 0}), ErrInvalidItem)
	assert.ErrorIs(t, c.AddToCart(ctx, models.CartItem{Qty: 1}), ErrInvalidItem)
	assert.Equal(t, 0, c.Count())
}

func TestNoDuplicateIDs(t *testing.T) {
	c, _, _ := guestContainer()
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		require.NoError(t, c.AddToCart(ctx, models.CartItem{ID: "P1", Title: "Shirt", Price: 100, Qty: 1}))
	}
	seen := map[string]bool{}
	for _, item := range c.Cart().Items {
		assert.False(t, seen[item.ID], "duplicate cart line for %s", item.ID)
		seen[item.ID] = true
		assert.GreaterOrEqual(t, item.Qty, 1)
	}
}

func TestDecrementRemovesAtZero(t *testing.T) {
	c, _, _ := guestContainer()
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, models.CartItem{ID: "P1", Title: "Shirt", Price: 500, Qty: 1}))
	c.DecrementQuantity(ctx, "P1")

	state := c.Cart()
	assert.Empty(t, state.Items)
	assert.Equal(t, -1, state.Find("P1"))
}

func TestIncrementAndDecrementUnknownIDAreNoOps(t *testing.T) {
	c, _, _ := guestContainer()
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, models.CartItem{ID: "P1", Title: "Shirt", Price: 500, Qty: 2}))
	c.IncrementQuantity(ctx, "nope")
	c.DecrementQuantity(ctx, "nope")
	assert.Equal(t, 2, c.Count())
}

func TestRemoveFromCartIsIdempotent(t *testing.T) {
	c, _, _ := guestContainer()
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, models.CartItem{ID: "P1", Title: "Shirt", Price: 500, Qty: 1}))
	c.RemoveFromCart(ctx, "P1")
	after := c.Cart()
	c.RemoveFromCart(ctx, "P1")
	assert.Equal(t, after, c.Cart())
}

func TestToggleWishlistLaw(t *testing.T) {
	c, _, _ := guestContainer()
	ctx := context.Background()
	item := models.WishlistItem{ID: "W1", Title: "Dress"}

	before := c.Wishlist()
	c.ToggleWishlist(ctx, item)
	assert.Len(t, c.Wishlist(), 1)
	c.ToggleWishlist(ctx, item)
	assert.Equal(t, before, c.Wishlist())
}

func TestGuestMutationsPersistLocally(t *testing.T) {
	c, remote, local := guestContainer()
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, models.CartItem{ID: "P1", Title: "Shirt", Price: 500, Qty: 1}))
	assert.Equal(t, 1, local.saves)
	assert.Len(t, local.cart, 1)
	assert.Zero(t, remote.clearCalls, "guest mutations must not touch the remote store")
}

func TestAuthedCartSyncClearsThenReAdds(t *testing.T) {
	c, remote, _ := userContainer("a@example.com")
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, models.CartItem{ID: "P1", Title: "Shirt", Price: 500, Qty: 1}))
	require.NoError(t, c.AddToCart(ctx, models.CartItem{ID: "P2", Title: "Hoodie", Price: 900, Qty: 1}))

	// second mutation: one clear, then the full two-line snapshot re-added
	assert.Equal(t, 2, remote.clearCalls)
	last := remote.addedItems[len(remote.addedItems)-2:]
	assert.Equal(t, "P1", last[0].ID)
	assert.Equal(t, "P2", last[1].ID)
	assert.Equal(t, []models.CartItem{last[0], last[1]}, remote.carts["a@example.com"])
}

func TestAuthedWishlistSyncIsDiffBased(t *testing.T) {
	identity := func() models.Identity { return models.Identity{Email: "a@example.com", Token: "tok"} }
	remote := newFakeRemote(identity)
	remote.wishlists["a@example.com"] = []models.WishlistItem{
		{ID: "A", Title: "Old"},
		{ID: "B", Title: "Kept"},
	}
	c := New(remote, &fakeLocal{}, identity)
	c.Load(context.Background())
	ctx := context.Background()

	// drop A locally, add C: the sync must remove A, add C, and never clear
	c.RemoveFromWishlist(ctx, "A")
	c.ToggleWishlist(ctx, models.WishlistItem{ID: "C", Title: "New"})

	assert.Contains(t, remote.wishRemoved, "A")
	assert.Contains(t, remote.wishAdded, "C")
	assert.NotContains(t, remote.wishRemoved, "B")
	assert.Zero(t, remote.clearCalls)
}

func TestLoadFallsBackToLocalOnRemoteFailure(t *testing.T) {
	identity := func() models.Identity { return models.Identity{Email: "a@example.com", Token: "tok"} }
	remote := newFakeRemote(identity)
	remote.failReads = true
	local := &fakeLocal{cart: []models.CartItem{{ID: "L1", Title: "Saved", Price: 300, Qty: 1}}}

	c := New(remote, local, identity)
	c.Load(context.Background())

	assert.True(t, c.Loaded())
	assert.Equal(t, 1, c.Count())
	assert.Equal(t, "L1", c.Cart().Items[0].ID)
}

func TestIdentitySwitchNeverLeaksData(t *testing.T) {
	current := models.Identity{Email: "a@example.com", Token: "tok"}
	identity := func() models.Identity { return current }
	remote := newFakeRemote(identity)
	remote.carts["a@example.com"] = []models.CartItem{{ID: "A1", Title: "A's shirt", Price: 100, Qty: 1}}
	remote.carts["b@example.com"] = []models.CartItem{{ID: "B1", Title: "B's dress", Price: 200, Qty: 2}}

	c := New(remote, &fakeLocal{}, identity)
	c.Load(context.Background())
	require.Equal(t, "A1", c.Cart().Items[0].ID)

	// switch to B: clear, then refresh must show exactly B's backing store
	current = models.Identity{Email: "b@example.com", Token: "tok2"}
	c.ClearUserData()
	assert.False(t, c.Loaded())
	assert.Empty(t, c.Cart().Items, "stale data must not be visible between clear and reload")

	c.RefreshUserData(context.Background())
	state := c.Cart()
	require.Len(t, state.Items, 1)
	assert.Equal(t, "B1", state.Items[0].ID)
	assert.Equal(t, 2, state.Count())
}

func TestNoticesExpireAfterTTL(t *testing.T) {
	c, _, _ := guestContainer()
	now := time.Now()
	c.SetClock(func() time.Time { return now })
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, models.CartItem{ID: "P1", Title: "Shirt", Price: 500, Qty: 1}))
	notices := c.Notices()
	require.Len(t, notices, 1)
	assert.Equal(t, "Shirt added to cart", notices[0].Message)

	now = now.Add(4 * time.Second)
	assert.Empty(t, c.Notices())
}

func TestClearCartEmptiesEverything(t *testing.T) {
	c, _, _ := guestContainer()
	ctx := context.Background()

	require.NoError(t, c.AddToCart(ctx, models.CartItem{ID: "P1", Title: "Shirt", Price: 500, Qty: 3}))
	c.ClearCart(ctx)
	assert.Equal(t, 0, c.Count())
	assert.Equal(t, 0.0, c.Total())
}
