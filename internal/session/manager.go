// Package session tracks the single active login session. A session is a
// non-owning reference to a user id; resolving it against the identity
// ledger (and clearing it when the user is gone) is the caller's job.
package session

import (
	"context"
	"time"

	"github.com/dkarklins/gamebox/internal/store"
)

const storeKey = "session"

// Session records who is logged in now. At most one instance exists.
type Session struct {
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

type Manager struct {
	store *store.Store
	now   func() time.Time
}

func NewManager(s *store.Store) *Manager {
	return &Manager{store: s, now: time.Now}
}

// Start replaces any existing session with one for userID.
func (m *Manager) Start(ctx context.Context, userID string) error {
	return store.Set(ctx, m.store, storeKey, Session{UserID: userID, CreatedAt: m.now()})
}

// Current returns the stored session. ok is false when no session exists
// or the stored entry is unreadable.
func (m *Manager) Current(ctx context.Context) (Session, bool) {
	s := store.Get(ctx, m.store, storeKey, Session{})
	return s, s.UserID != ""
}

// Clear removes the session. Idempotent even if none exists.
func (m *Manager) Clear(ctx context.Context) error {
	return m.store.Remove(ctx, storeKey)
}
