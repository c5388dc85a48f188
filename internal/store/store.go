package store

import (
	"context"

	"github.com/tonearm/tonearm/internal/model"
)

// Store is the sole authority over the entity collections. Implementations
// live under internal/store/<backend>/ (memory, sqlstore, remote).
//
// Lookup conventions shared by every backend:
//   - GetByID reports absence as (nil, nil), never as an error.
//   - Update on a missing identifier fails with model.ErrNotFound.
//   - Delete returns whether a record was actually removed; the remote
//     backend returns a *model.RemoteError on transport or server failure.
type Store interface {
	Users() Users
	Artists() Artists
	Memberships() Memberships
	Transactions() Transactions
}

type Users interface {
	List(ctx context.Context) ([]*model.User, error)
	GetByID(ctx context.Context, id string) (*model.User, error)
	GetByEmail(ctx context.Context, email string) (*model.User, error)
	Create(ctx context.Context, u *model.User) (*model.User, error)
	Update(ctx context.Context, id string, p model.UserPatch) (*model.User, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Artists interface {
	List(ctx context.Context) ([]*model.Artist, error)
	GetByID(ctx context.Context, id string) (*model.Artist, error)
	Create(ctx context.Context, a *model.Artist) (*model.Artist, error)
	Update(ctx context.Context, id string, p model.ArtistPatch) (*model.Artist, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Memberships interface {
	List(ctx context.Context) ([]*model.Membership, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Membership, error)
	ListByStatus(ctx context.Context, status model.MembershipStatus) ([]*model.Membership, error)
	GetByID(ctx context.Context, id string) (*model.Membership, error)
	Create(ctx context.Context, m *model.Membership) (*model.Membership, error)
	Update(ctx context.Context, id string, p model.MembershipPatch) (*model.Membership, error)
	Delete(ctx context.Context, id string) (bool, error)
}

type Transactions interface {
	List(ctx context.Context) ([]*model.Transaction, error)
	ListByUser(ctx context.Context, userID string) ([]*model.Transaction, error)
	GetByID(ctx context.Context, id string) (*model.Transaction, error)
	Create(ctx context.Context, t *model.Transaction) (*model.Transaction, error)
	Update(ctx context.Context, id string, p model.TransactionPatch) (*model.Transaction, error)
	Delete(ctx context.Context, id string) (bool, error)
}
