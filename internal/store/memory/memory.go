// Package memory provides an insertion-ordered, process-local store backend.
// It never rejects a payload; validation happens in the form layer before a
// store call is made.
package memory

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store"
)

// Store implements store.Store over in-memory slices.
type Store struct {
	users        *col[model.User, model.UserPatch]
	artists      *col[model.Artist, model.ArtistPatch]
	memberships  *col[model.Membership, model.MembershipPatch]
	transactions *col[model.Transaction, model.TransactionPatch]
}

// New returns an empty in-memory store.
func New() *Store {
	return &Store{
		users: newCol[model.User, model.UserPatch](
			func(u model.User) string { return u.ID },
			func(u model.User, id string, now time.Time) model.User {
				u.ID = id
				u.CreatedAt = now
				return u
			}),
		artists: newCol[model.Artist, model.ArtistPatch](
			func(a model.Artist) string { return a.ID },
			func(a model.Artist, id string, now time.Time) model.Artist {
				a.ID = id
				a.CreatedAt = now
				return a
			}),
		memberships: newCol[model.Membership, model.MembershipPatch](
			func(m model.Membership) string { return m.ID },
			func(m model.Membership, id string, now time.Time) model.Membership {
				m.ID = id
				m.CreatedAt = now
				return m
			}),
		transactions: newCol[model.Transaction, model.TransactionPatch](
			func(t model.Transaction) string { return t.ID },
			func(t model.Transaction, id string, now time.Time) model.Transaction {
				t.ID = id
				t.CreatedAt = now
				return t
			}),
	}
}

func (s *Store) Users() store.Users               { return (*users)(s.users) }
func (s *Store) Artists() store.Artists           { return (*artists)(s.artists) }
func (s *Store) Memberships() store.Memberships   { return (*memberships)(s.memberships) }
func (s *Store) Transactions() store.Transactions { return (*transactions)(s.transactions) }

// HealthPing implements health probing for the in-memory backend.
func (s *Store) HealthPing(ctx context.Context) error { return ctx.Err() }

// patchOf is satisfied by the model patch types: Apply merges the patch over
// a record and returns the new record.
type patchOf[T any] interface {
	Apply(T, time.Time) T
}

// col holds one entity collection in insertion order and assigns sequential
// identifiers, mirroring the seeded-array services this backend replaces.
type col[T any, P patchOf[T]] struct {
	mu     sync.RWMutex
	recs   []T
	seq    int
	id     func(T) string
	withID func(T, string, time.Time) T
}

func newCol[T any, P patchOf[T]](id func(T) string, withID func(T, string, time.Time) T) *col[T, P] {
	return &col[T, P]{id: id, withID: withID}
}

func (c *col[T, P]) list() []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0, len(c.recs))
	for i := range c.recs {
		r := c.recs[i]
		out = append(out, &r)
	}
	return out
}

func (c *col[T, P]) get(id string) *T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for i := range c.recs {
		if c.id(c.recs[i]) == id {
			r := c.recs[i]
			return &r
		}
	}
	return nil
}

func (c *col[T, P]) create(rec T) *T {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.seq++
	out := c.withID(rec, strconv.Itoa(c.seq), time.Now().UTC())
	c.recs = append(c.recs, out)
	return &out
}

func (c *col[T, P]) update(id string, p P) (*T, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.recs {
		if c.id(c.recs[i]) == id {
			out := p.Apply(c.recs[i], time.Now().UTC())
			c.recs[i] = out
			return &out, nil
		}
	}
	return nil, model.ErrNotFound
}

func (c *col[T, P]) delete(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	for i := range c.recs {
		if c.id(c.recs[i]) == id {
			c.recs = append(c.recs[:i], c.recs[i+1:]...)
			return true
		}
	}
	return false
}

func (c *col[T, P]) filter(keep func(T) bool) []*T {
	c.mu.RLock()
	defer c.mu.RUnlock()
	var out []*T
	for i := range c.recs {
		if keep(c.recs[i]) {
			r := c.recs[i]
			out = append(out, &r)
		}
	}
	return out
}

// --- Users ---

type users col[model.User, model.UserPatch]

func (u *users) col() *col[model.User, model.UserPatch] {
	return (*col[model.User, model.UserPatch])(u)
}

func (u *users) List(ctx context.Context) ([]*model.User, error) {
	return u.col().list(), nil
}

func (u *users) GetByID(ctx context.Context, id string) (*model.User, error) {
	return u.col().get(id), nil
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	matches := u.col().filter(func(r model.User) bool { return r.Email == email })
	if len(matches) == 0 {
		return nil, nil
	}
	return matches[0], nil
}

func (u *users) Create(ctx context.Context, in *model.User) (*model.User, error) {
	return u.col().create(*in), nil
}

func (u *users) Update(ctx context.Context, id string, p model.UserPatch) (*model.User, error) {
	return u.col().update(id, p)
}

func (u *users) Delete(ctx context.Context, id string) (bool, error) {
	return u.col().delete(id), nil
}

// --- Artists ---

type artists col[model.Artist, model.ArtistPatch]

func (a *artists) col() *col[model.Artist, model.ArtistPatch] {
	return (*col[model.Artist, model.ArtistPatch])(a)
}

func (a *artists) List(ctx context.Context) ([]*model.Artist, error) {
	return a.col().list(), nil
}

func (a *artists) GetByID(ctx context.Context, id string) (*model.Artist, error) {
	return a.col().get(id), nil
}

func (a *artists) Create(ctx context.Context, in *model.Artist) (*model.Artist, error) {
	return a.col().create(*in), nil
}

func (a *artists) Update(ctx context.Context, id string, p model.ArtistPatch) (*model.Artist, error) {
	return a.col().update(id, p)
}

func (a *artists) Delete(ctx context.Context, id string) (bool, error) {
	return a.col().delete(id), nil
}

// --- Memberships ---

type memberships col[model.Membership, model.MembershipPatch]

func (m *memberships) col() *col[model.Membership, model.MembershipPatch] {
	return (*col[model.Membership, model.MembershipPatch])(m)
}

func (m *memberships) List(ctx context.Context) ([]*model.Membership, error) {
	return m.col().list(), nil
}

func (m *memberships) ListByUser(ctx context.Context, userID string) ([]*model.Membership, error) {
	return m.col().filter(func(r model.Membership) bool { return r.UserID == userID }), nil
}

func (m *memberships) ListByStatus(ctx context.Context, status model.MembershipStatus) ([]*model.Membership, error) {
	return m.col().filter(func(r model.Membership) bool { return r.Status == status }), nil
}

func (m *memberships) GetByID(ctx context.Context, id string) (*model.Membership, error) {
	return m.col().get(id), nil
}

func (m *memberships) Create(ctx context.Context, in *model.Membership) (*model.Membership, error) {
	return m.col().create(*in), nil
}

func (m *memberships) Update(ctx context.Context, id string, p model.MembershipPatch) (*model.Membership, error) {
	return m.col().update(id, p)
}

func (m *memberships) Delete(ctx context.Context, id string) (bool, error) {
	return m.col().delete(id), nil
}

// --- Transactions ---

type transactions col[model.Transaction, model.TransactionPatch]

func (t *transactions) col() *col[model.Transaction, model.TransactionPatch] {
	return (*col[model.Transaction, model.TransactionPatch])(t)
}

func (t *transactions) List(ctx context.Context) ([]*model.Transaction, error) {
	return t.col().list(), nil
}

func (t *transactions) ListByUser(ctx context.Context, userID string) ([]*model.Transaction, error) {
	return t.col().filter(func(r model.Transaction) bool { return r.UserID == userID }), nil
}

func (t *transactions) GetByID(ctx context.Context, id string) (*model.Transaction, error) {
	return t.col().get(id), nil
}

func (t *transactions) Create(ctx context.Context, in *model.Transaction) (*model.Transaction, error) {
	return t.col().create(*in), nil
}

func (t *transactions) Update(ctx context.Context, id string, p model.TransactionPatch) (*model.Transaction, error) {
	return t.col().update(id, p)
}

func (t *transactions) Delete(ctx context.Context, id string) (bool, error) {
	return t.col().delete(id), nil
}
