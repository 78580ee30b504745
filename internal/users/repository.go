package users

import (
	"context"

	"github.com/dkarklins/gamebox/internal/common"
	"github.com/dkarklins/gamebox/internal/store"
)

const storeKey = "users"

// Repository owns the persisted user list. The list is kept
// most-recent-first; all mutations go through store.Update so concurrent
// code paths cannot lose writes.
type Repository struct {
	store *store.Store
}

func NewRepository(s *store.Store) *Repository {
	return &Repository{store: s}
}

// List returns all users, most recently registered first.
func (r *Repository) List(ctx context.Context) []User {
	return store.Get(ctx, r.store, storeKey, []User(nil))
}

// FindByEmail looks a user up by normalized email.
func (r *Repository) FindByEmail(ctx context.Context, email string) (*User, error) {
	email = NormalizeEmail(email)
	for _, u := range r.List(ctx) {
		if u.Email == email {
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

// FindByID looks a user up by id.
func (r *Repository) FindByID(ctx context.Context, id string) (*User, error) {
	for _, u := range r.List(ctx) {
		if u.ID == id {
			return &u, nil
		}
	}
	return nil, common.ErrNotFound
}

// Prepend inserts a new user at the head of the list.
func (r *Repository) Prepend(ctx context.Context, u User) error {
	_, err := store.Update(ctx, r.store, storeKey, []User(nil), func(list []User) []User {
		return append([]User{u}, list...)
	})
	return err
}

// Save replaces the stored user with the same id, preserving list order.
func (r *Repository) Save(ctx context.Context, u User) error {
	found := false
	_, err := store.Update(ctx, r.store, storeKey, []User(nil), func(list []User) []User {
		for i := range list {
			if list[i].ID == u.ID {
				list[i] = u
				found = true
				break
			}
		}
		return list
	})
	if err != nil {
		return err
	}
	if !found {
		return common.ErrNotFound
	}
	return nil
}

// Delete removes the user with the given id.
func (r *Repository) Delete(ctx context.Context, id string) error {
	found := false
	_, err := store.Update(ctx, r.store, storeKey, []User(nil), func(list []User) []User {
		out := list[:0]
		for _, u := range list {
			if u.ID == id {
				found = true
				continue
			}
			out = append(out, u)
		}
		return out
	})
	if err != nil {
		return err
	}
	if !found {
		return common.ErrNotFound
	}
	return nil
}
