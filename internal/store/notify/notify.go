// Package notify decorates a store.Store so subscribers learn about
// successful mutations through explicit events instead of polling. Reads
// pass straight through.
package notify

import (
	"context"
	"sync"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store"
)

// Store wraps an inner store.Store and publishes a store.Event after every
// mutation that succeeds. Events fire on the mutating goroutine, after the
// inner call has returned; failed calls emit nothing.
type Store struct {
	inner store.Store

	mu   sync.RWMutex
	subs []store.Subscriber
}

// New wraps inner.
func New(inner store.Store) *Store { return &Store{inner: inner} }

// Unwrap exposes the decorated store.
func (s *Store) Unwrap() store.Store { return s.inner }

// Subscribe registers fn for all future events.
func (s *Store) Subscribe(fn store.Subscriber) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

func (s *Store) publish(ev store.Event) {
	s.mu.RLock()
	subs := make([]store.Subscriber, len(s.subs))
	copy(subs, s.subs)
	s.mu.RUnlock()
	for _, fn := range subs {
		fn(ev)
	}
}

func (s *Store) Users() store.Users               { return &users{s} }
func (s *Store) Artists() store.Artists           { return &artists{s} }
func (s *Store) Memberships() store.Memberships   { return &memberships{s} }
func (s *Store) Transactions() store.Transactions { return &transactions{s} }

// --- Users ---

type users struct{ s *Store }

func (u *users) List(ctx context.Context) ([]*model.User, error) {
	return u.s.inner.Users().List(ctx)
}

func (u *users) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.s.inner.Users().GetByID(ctx, id)
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return u.s.inner.Users().GetByEmail(ctx, email)
}

func (u *users) Create(ctx context.Context, in *model.User) (*model.User, error) {
	out, err := u.s.inner.Users().Create(ctx, in)
	if err == nil {
		u.s.publish(store.Event{Entity: store.EntityUser, Op: store.OpCreated, ID: out.ID, Record: out})
	}
	return out, err
}

func (u *users) Update(ctx context.Context, id string, p model.UserPatch) (*model.User, error) {
	out, err := u.s.inner.Users().Update(ctx, id, p)
	if err == nil {
		u.s.publish(store.Event{Entity: store.EntityUser, Op: store.OpUpdated, ID: id, Record: out})
	}
	return out, err
}

func (u *users) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := u.s.inner.Users().Delete(ctx, id)
	if err == nil && removed {
		u.s.publish(store.Event{Entity: store.EntityUser, Op: store.OpDeleted, ID: id})
	}
	return removed, err
}

// --- Artists ---

type artists struct{ s *Store }

func (a *artists) List(ctx context.Context) ([]*model.Artist, error) {
	return a.s.inner.Artists().List(ctx)
}

func (a *artists) GetByID(ctx context.Context, id string) (*model.Artist, error) {
	return a.s.inner.Artists().GetByID(ctx, id)
}

func (a *artists) Create(ctx context.Context, in *model.Artist) (*model.Artist, error) {
	out, err := a.s.inner.Artists().Create(ctx, in)
	if err == nil {
		a.s.publish(store.Event{Entity: store.EntityArtist, Op: store.OpCreated, ID: out.ID, Record: out})
	}
	return out, err
}

func (a *artists) Update(ctx context.Context, id string, p model.ArtistPatch) (*model.Artist, error) {
	out, err := a.s.inner.Artists().Update(ctx, id, p)
	if err == nil {
		a.s.publish(store.Event{Entity: store.EntityArtist, Op: store.OpUpdated, ID: id, Record: out})
	}
	return out, err
}

func (a *artists) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := a.s.inner.Artists().Delete(ctx, id)
	if err == nil && removed {
		a.s.publish(store.Event{Entity: store.EntityArtist, Op: store.OpDeleted, ID: id})
	}
	return removed, err
}

// --- Memberships ---

type memberships struct{ s *Store }

func (m *memberships) List(ctx context.Context) ([]*model.Membership, error) {
	return m.s.inner.Memberships().List(ctx)
}

func (m *memberships) ListByUser(ctx context.Context, userID string) ([]*model.Membership, error) {
	return m.s.inner.Memberships().ListByUser(ctx, userID)
}

func (m *memberships) ListByStatus(ctx context.Context, status model.MembershipStatus) ([]*model.Membership, error) {
	return m.s.inner.Memberships().ListByStatus(ctx, status)
}

func (m *memberships) GetByID(ctx context.Context, id string) (*model.Membership, error) {
	return m.s.inner.Memberships().GetByID(ctx, id)
}

func (m *memberships) Create(ctx context.Context, in *model.Membership) (*model.Membership, error) {
	out, err := m.s.inner.Memberships().Create(ctx, in)
	if err == nil {
		m.s.publish(store.Event{Entity: store.EntityMembership, Op: store.OpCreated, ID: out.ID, Record: out})
	}
	return out, err
}

func (m *memberships) Update(ctx context.Context, id string, p model.MembershipPatch) (*model.Membership, error) {
	out, err := m.s.inner.Memberships().Update(ctx, id, p)
	if err == nil {
		m.s.publish(store.Event{Entity: store.EntityMembership, Op: store.OpUpdated, ID: id, Record: out})
	}
	return out, err
}

func (m *memberships) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := m.s.inner.Memberships().Delete(ctx, id)
	if err == nil && removed {
		m.s.publish(store.Event{Entity: store.EntityMembership, Op: store.OpDeleted, ID: id})
	}
	return removed, err
}

// --- Transactions ---

type transactions struct{ s *Store }

func (t *transactions) List(ctx context.Context) ([]*model.Transaction, error) {
	return t.s.inner.Transactions().List(ctx)
}

func (t *transactions) ListByUser(ctx context.Context, userID string) ([]*model.Transaction, error) {
	return t.s.inner.Transactions().ListByUser(ctx, userID)
}

func (t *transactions) GetByID(ctx context.Context, id string) (*model.Transaction, error) {
	return t.s.inner.Transactions().GetByID(ctx, id)
}

func (t *transactions) Create(ctx context.Context, in *model.Transaction) (*model.Transaction, error) {
	out, err := t.s.inner.Transactions().Create(ctx, in)
	if err == nil {
		t.s.publish(store.Event{Entity: store.EntityTransaction, Op: store.OpCreated, ID: out.ID, Record: out})
	}
	return out, err
}

func (t *transactions) Update(ctx context.Context, id string, p model.TransactionPatch) (*model.Transaction, error) {
	out, err := t.s.inner.Transactions().Update(ctx, id, p)
	if err == nil {
		t.s.publish(store.Event{Entity: store.EntityTransaction, Op: store.OpUpdated, ID: id, Record: out})
	}
	return out, err
}

func (t *transactions) Delete(ctx context.Context, id string) (bool, error) {
	removed, err := t.s.inner.Transactions().Delete(ctx, id)
	if err == nil && removed {
		t.s.publish(store.Event{Entity: store.EntityTransaction, Op: store.OpDeleted, ID: id})
	}
	return removed, err
}
