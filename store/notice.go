package store

import (
	"time"

	"github.com/google/uuid"
)

// noticeTTL is how long an "added to cart" toast stays visible.
const noticeTTL = 3 * time.Second

// Notice is a transient user-facing notification, auto-dismissed after
// noticeTTL.
type Notice struct {
	ID        string    `json:"id"`
	Message   string    `json:"message"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (c *Container) pushNoticeLocked(message string) {
	c.notices = append(c.notices, Notice{
		ID:        uuid.NewString(),
		Message:   message,
		ExpiresAt: c.now().Add(noticeTTL),
	})
}

// Notices returns the notices still alive, pruning expired ones.
func (c *Container) Notices() []Notice {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	alive := c.notices[:0]
	for _, n := range c.notices {
		if n.ExpiresAt.After(now) {
			alive = append(alive, n)
		}
	}
	c.notices = alive

	out := make([]Notice, len(alive))
	copy(out, alive)
	return out
}

// SetClock overrides the container clock. Tests only.
func (c *Container) SetClock(now func() time.Time) {
	c.now = now
}
