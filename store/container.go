// Package store holds the in-memory cart and wishlist state. The container
// is the single source of truth for the current session; persistence to the
// remote store (logged-in) or the local store (guest) is best-effort and
// never rolls back an in-memory mutation.
package store

import (
	"context"
	"errors"
	"log"
	"sync"
	"time"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

var ErrInvalidItem = errors.New("store: item needs an id and qty >= 1")

// RemoteStore is the subset of the backend client the container syncs with.
type RemoteStore interface {
	GetCart(ctx context.Context) ([]models.CartItem, error)
	AddCartItem(ctx context.Context, item models.CartItem) error
	ClearCart(ctx context.Context) error
	GetWishlist(ctx context.Context) ([]models.WishlistItem, error)
	AddWishlistItem(ctx context.Context, item models.WishlistItem) error
	RemoveWishlistItem(ctx context.Context, id string) error
}

// LocalStore is the guest-session persistence surface.
type LocalStore interface {
	LoadCart() []models.CartItem
	SaveCart(items []models.CartItem) error
	LoadWishlist() []models.WishlistItem
	SaveWishlist(items []models.WishlistItem) error
}

// Container owns the in-memory cart and wishlist. All access goes through
// its methods; reads return copies.
type Container struct {
	remote   RemoteStore
	local    LocalStore
	identity func() models.Identity
	now      func() time.Time

	mu       sync.Mutex
	cart     []models.CartItem
	wishlist []models.WishlistItem
	loaded   bool
	notices  []Notice
}

// New builds a container. identity is read at every load/persist so an
// identity switch between calls picks the right backing store.
func New(remote RemoteStore, local LocalStore, identity func() models.Identity) *Container {
	return &Container{
		remote:   remote,
		local:    local,
		identity: identity,
		now:      time.Now,
	}
}

// Load runs the initialization protocol: clear first so stale data is never
// shown for the wrong identity, then fill from the identity's backing
// store. Remote failures fall back to the local store; the guest path never
// fails (malformed entries read as empty).
func (c *Container) Load(ctx context.Context) {
	c.mu.Lock()
	c.cart = nil
	c.wishlist = nil
	c.loaded = false
	c.mu.Unlock()

	id := c.identity()

	var cart []models.CartItem
	var wishlist []models.WishlistItem
	if id.Anonymous() {
		cart = c.local.LoadCart()
		wishlist = c.local.LoadWishlist()
	} else {
		var err error
		cart, err = c.remote.GetCart(ctx)
		if err != nil {
			log.Printf("⚠️ Remote cart fetch failed, falling back to local store: %v", err)
			cart = c.local.LoadCart()
		}
		wishlist, err = c.remote.GetWishlist(ctx)
		if err != nil {
			log.Printf("⚠️ Remote wishlist fetch failed, falling back to local store: %v", err)
			wishlist = c.local.LoadWishlist()
		}
	}

	c.mu.Lock()
	c.cart = cart
	c.wishlist = wishlist
	c.loaded = true
	c.mu.Unlock()
}

// Loaded reports whether the container has data for the current identity.
func (c *Container) Loaded() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.loaded
}

// Cart returns a snapshot of the cart state.
func (c *Container) Cart() models.CartState {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]models.CartItem, len(c.cart))
	copy(items, c.cart)
	return models.CartState{Items: items}
}

// Wishlist returns a snapshot of the wishlist.
func (c *Container) Wishlist() []models.WishlistItem {
	c.mu.Lock()
	defer c.mu.Unlock()
	items := make([]models.WishlistItem, len(c.wishlist))
	copy(items, c.wishlist)
	return items
}

// Count is the total unit count, recomputed on every read.
func (c *Container) Count() int {
	return c.Cart().Count()
}

// Total is the cart total, recomputed on every read.
func (c *Container) Total() float64 {
	return c.Cart().Total()
}

// AddToCart merges the item into the cart by product id and raises a
// transient "added" notice.
func (c *Container) AddToCart(ctx context.Context, item models.CartItem) error {
	if item.ID == "" || item.Qty < 1 {
		return ErrInvalidItem
	}

	c.mu.Lock()
	merged := false
	for i := range c.cart {
		if c.cart[i].ID == item.ID {
			c.cart[i].Qty += item.Qty
			merged = true
			break
		}
	}
	if !merged {
		c.cart = append(c.cart, item)
	}
	c.pushNoticeLocked(item.Title + " added to cart")
	snapshot := c.cartSnapshotLocked()
	c.mu.Unlock()

	c.persistCart(ctx, snapshot)
	return nil
}

// RemoveFromCart drops the line with the given id. Removing an absent id is
// a no-op.
func (c *Container) RemoveFromCart(ctx context.Context, id string) {
	c.mu.Lock()
	changed := false
	for i := range c.cart {
		if c.cart[i].ID == id {
			c.cart = append(c.cart[:i], c.cart[i+1:]...)
			changed = true
			break
		}
	}
	snapshot := c.cartSnapshotLocked()
	c.mu.Unlock()

	if changed {
		c.persistCart(ctx, snapshot)
	}
}

// IncrementQuantity bumps a line by one. No-op if the id is absent.
func (c *Container) IncrementQuantity(ctx context.Context, id string) {
	c.mu.Lock()
	changed := false
	for i := range c.cart {
		if c.cart[i].ID == id {
			c.cart[i].Qty++
			changed = true
			break
		}
	}
	snapshot := c.cartSnapshotLocked()
	c.mu.Unlock()

	if changed {
		c.persistCart(ctx, snapshot)
	}
}

// DecrementQuantity lowers a line by one; a line reaching zero is removed
// entirely so qty >= 1 always holds.
func (c *Container) DecrementQuantity(ctx context.Context, id string) {
	c.mu.Lock()
	changed := false
	for i := range c.cart {
		if c.cart[i].ID == id {
			c.cart[i].Qty--
			if c.cart[i].Qty <= 0 {
				c.cart = append(c.cart[:i], c.cart[i+1:]...)
			}
			changed = true
			break
		}
	}
	snapshot := c.cartSnapshotLocked()
	c.mu.Unlock()

	if changed {
		c.persistCart(ctx, snapshot)
	}
}

// ClearCart empties the cart (used after a successful checkout).
func (c *Container) ClearCart(ctx context.Context) {
	c.mu.Lock()
	c.cart = nil
	snapshot := c.cartSnapshotLocked()
	c.mu.Unlock()

	c.persistCart(ctx, snapshot)
}

// ToggleWishlist removes the item if present, else adds it.
func (c *Container) ToggleWishlist(ctx context.Context, item models.WishlistItem) {
	if item.ID == "" {
		return
	}
	c.mu.Lock()
	removed := false
	for i := range c.wishlist {
		if c.wishlist[i].ID == item.ID {
			c.wishlist = append(c.wishlist[:i], c.wishlist[i+1:]...)
			removed = true
			break
		}
	}
	if !removed {
		c.wishlist = append(c.wishlist, item)
	}
	snapshot := c.wishlistSnapshotLocked()
	c.mu.Unlock()

	c.persistWishlist(ctx, snapshot)
}

// RemoveFromWishlist drops the item if present; no-op otherwise.
func (c *Container) RemoveFromWishlist(ctx context.Context, id string) {
	c.mu.Lock()
	changed := false
	for i := range c.wishlist {
		if c.wishlist[i].ID == id {
			c.wishlist = append(c.wishlist[:i], c.wishlist[i+1:]...)
			changed = true
			break
		}
	}
	snapshot := c.wishlistSnapshotLocked()
	c.mu.Unlock()

	if changed {
		c.persistWishlist(ctx, snapshot)
	}
}

// ClearUserData empties both collections and marks the container not
// loaded. Called on detected logout; nothing is persisted, the data
// belongs to the previous identity.
func (c *Container) ClearUserData() {
	c.mu.Lock()
	c.cart = nil
	c.wishlist = nil
	c.loaded = false
	c.mu.Unlock()
}

// RefreshUserData re-runs the initialization protocol for the current
// identity. Called on detected login.
func (c *Container) RefreshUserData(ctx context.Context) {
	c.Load(ctx)
}

func (c *Container) cartSnapshotLocked() []models.CartItem {
	snapshot := make([]models.CartItem, len(c.cart))
	copy(snapshot, c.cart)
	return snapshot
}

func (c *Container) wishlistSnapshotLocked() []models.WishlistItem {
	snapshot := make([]models.WishlistItem, len(c.wishlist))
	copy(snapshot, c.wishlist)
	return snapshot
}

// persistCart syncs the full cart snapshot to the identity's backing
// store. Logged-in sync clears the remote cart and re-adds every line;
// the brief remote-empty window this opens is an accepted trade-off (the
// wishlist avoids it with a diff, see persistWishlist). Failures are
// logged and dropped — in-memory state stays authoritative.
func (c *Container) persistCart(ctx context.Context, snapshot []models.CartItem) {
	id := c.identity()
	if id.Anonymous() {
		if err := c.local.SaveCart(snapshot); err != nil {
			log.Printf("⚠️ Failed to save cart to local store: %v", err)
		}
		return
	}

	if err := c.remote.ClearCart(ctx); err != nil {
		log.Printf("⚠️ Failed to clear remote cart during sync: %v", err)
		return
	}
	for _, item := range snapshot {
		if err := c.remote.AddCartItem(ctx, item); err != nil {
			log.Printf("⚠️ Failed to push cart item %s during sync: %v", item.ID, err)
		}
	}
}

// persistWishlist diffs the remote wishlist against the snapshot: remote
// entries absent locally are removed, local entries absent remotely are
// added. No clear/re-add, so there is no empty window here.
func (c *Container) persistWishlist(ctx context.Context, snapshot []models.WishlistItem) {
	id := c.identity()
	if id.Anonymous() {
		if err := c.local.SaveWishlist(snapshot); err != nil {
			log.Printf("⚠️ Failed to save wishlist to local store: %v", err)
		}
		return
	}

	current, err := c.remote.GetWishlist(ctx)
	if err != nil {
		log.Printf("⚠️ Failed to read remote wishlist during sync: %v", err)
		return
	}

	want := make(map[string]models.WishlistItem, len(snapshot))
	for _, item := range snapshot {
		want[item.ID] = item
	}
	have := make(map[string]bool, len(current))
	for _, item := range current {
		have[item.ID] = true
		if _, keep := want[item.ID]; !keep {
			if err := c.remote.RemoveWishlistItem(ctx, item.ID); err != nil {
				log.Printf("⚠️ Failed to remove wishlist item %s during sync: %v", item.ID, err)
			}
		}
	}
	for id, item := range want {
		if !have[id] {
			if err := c.remote.AddWishlistItem(ctx, item); err != nil {
				log.Printf("⚠️ Failed to add wishlist item %s during sync: %v", id, err)
			}
		}
	}
}
