// Package session resolves the current user identity from the local store
// and watches it for changes, driving the state container's clear/reload
// cycle on login and logout.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/localstore"
	"github.com/poojitha9908702071/chat-agent-for-personalized-clothing-networks-sub000/models"
)

// IdentityStore is the raw key-value surface identity markers live in.
type IdentityStore interface {
	Get(key string) (string, bool)
}

// Manager derives the current identity from the stored email and token.
type Manager struct {
	store IdentityStore
	now   func() time.Time
}

func NewManager(store IdentityStore) *Manager {
	return &Manager{store: store, now: time.Now}
}

// CurrentIdentity reads the identity markers. It never fails: a missing,
// opaque, or expired token all resolve to anonymous or to whatever email
// marker is stored. The token itself is an opaque credential for the
// backend; we only look at its claims to recover the email and to treat an
// expired session as logged out.
func (m *Manager) CurrentIdentity() models.Identity {
	token, _ := m.store.Get(localstore.KeyToken)
	email, _ := m.store.Get(localstore.KeyEmail)

	if token == "" {
		return models.Identity{}
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(token, jwt.MapClaims{})
	if err == nil {
		claims, _ := parsed.Claims.(jwt.MapClaims)
		if exp, ok := claims["exp"].(float64); ok {
			if time.Unix(int64(exp), 0).Before(m.now()) {
				return models.Identity{}
			}
		}
		if email == "" {
			if claimed, ok := claims["email"].(string); ok {
				email = claimed
			}
		}
	}

	if email == "" {
		return models.Identity{}
	}
	return models.Identity{Email: email, Token: token}
}

// Token returns the stored bearer token, empty when logged out. Used by
// the remote client as its per-request token source.
func (m *Manager) Token() string {
	if m.CurrentIdentity().Anonymous() {
		return ""
	}
	token, _ := m.store.Get(localstore.KeyToken)
	return token
}
