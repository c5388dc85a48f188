package page

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/tonearm/tonearm/internal/form"
	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/services"
	"github.com/tonearm/tonearm/internal/store"
	"github.com/tonearm/tonearm/internal/store/notify"
)

// UserPage assembles the user admin screen. When ns is non-nil the page
// subscribes to its events so the collection tracks store mutations.
func UserPage(log zerolog.Logger, svc *services.UserService, ns *notify.Store) *Controller[*model.User, services.UserInput] {
	sess := form.New(
		func(in services.UserInput) error { return in.Validate() },
		func(ctx context.Context, in services.UserInput) error {
			_, err := svc.CreateUser(ctx, in)
			return err
		},
		func(ctx context.Context, id string, in services.UserInput) error {
			_, err := svc.UpdateUser(ctx, id, in)
			return err
		},
	)
	c := NewController(log, Config[*model.User, services.UserInput]{
		Entity: store.EntityUser,
		Load:   svc.ListUsers,
		Delete: svc.DeleteUser,
		IDOf:   func(u *model.User) string { return u.ID },
		SeedForm: func(u *model.User) services.UserInput {
			return services.UserInput{Name: u.Name, Email: u.Email, Age: u.Age, Bio: u.Bio}
		},
		Form: sess,
	})
	if ns != nil {
		ns.Subscribe(c.HandleEvent)
	}
	return c
}

// ArtistPage assembles the artist admin screen.
func ArtistPage(log zerolog.Logger, svc *services.ArtistService, ns *notify.Store) *Controller[*model.Artist, services.ArtistInput] {
	sess := form.New(
		func(in services.ArtistInput) error { return in.Validate() },
		func(ctx context.Context, in services.ArtistInput) error {
			_, err := svc.CreateArtist(ctx, in)
			return err
		},
		func(ctx context.Context, id string, in services.ArtistInput) error {
			_, err := svc.UpdateArtist(ctx, id, in)
			return err
		},
	)
	c := NewController(log, Config[*model.Artist, services.ArtistInput]{
		Entity: store.EntityArtist,
		Load:   svc.ListArtists,
		Delete: svc.DeleteArtist,
		IDOf:   func(a *model.Artist) string { return a.ID },
		SeedForm: func(a *model.Artist) services.ArtistInput {
			return services.ArtistInput{Name: a.Name, Bio: a.Bio, Genre: a.Genre, PhotoURL: a.PhotoURL, Social: a.Social}
		},
		Form: sess,
	})
	if ns != nil {
		ns.Subscribe(c.HandleEvent)
	}
	return c
}

// MembershipPage assembles the membership admin screen. New memberships
// default to active.
func MembershipPage(log zerolog.Logger, svc *services.MembershipService, ns *notify.Store) *Controller[*model.Membership, services.MembershipInput] {
	sess := form.New(
		func(in services.MembershipInput) error { return in.Validate() },
		func(ctx context.Context, in services.MembershipInput) error {
			_, err := svc.CreateMembership(ctx, in)
			return err
		},
		func(ctx context.Context, id string, in services.MembershipInput) error {
			_, err := svc.UpdateMembership(ctx, id, in)
			return err
		},
	)
	c := NewController(log, Config[*model.Membership, services.MembershipInput]{
		Entity: store.EntityMembership,
		Load:   svc.ListMemberships,
		Delete: svc.DeleteMembership,
		IDOf:   func(m *model.Membership) string { return m.ID },
		SeedForm: func(m *model.Membership) services.MembershipInput {
			return services.MembershipInput{UserID: m.UserID, Amount: m.Amount, StartDate: m.StartDate, EndDate: m.EndDate, Status: m.Status}
		},
		Defaults: services.MembershipInput{Status: model.StatusActive},
		Form:     sess,
	})
	if ns != nil {
		ns.Subscribe(c.HandleEvent)
	}
	return c
}

// TransactionPage assembles the transaction admin screen. New transactions
// default to pending.
func TransactionPage(log zerolog.Logger, svc *services.TransactionService, ns *notify.Store) *Controller[*model.Transaction, services.TransactionInput] {
	sess := form.New(
		func(in services.TransactionInput) error { return in.Validate() },
		func(ctx context.Context, in services.TransactionInput) error {
			_, err := svc.CreateTransaction(ctx, in)
			return err
		},
		func(ctx context.Context, id string, in services.TransactionInput) error {
			_, err := svc.UpdateTransaction(ctx, id, in)
			return err
		},
	)
	c := NewController(log, Config[*model.Transaction, services.TransactionInput]{
		Entity: store.EntityTransaction,
		Load:   svc.ListTransactions,
		Delete: svc.DeleteTransaction,
		IDOf:   func(t *model.Transaction) string { return t.ID },
		SeedForm: func(t *model.Transaction) services.TransactionInput {
			return services.TransactionInput{UserID: t.UserID, Kind: t.Kind, Status: t.Status, Quantity: t.Quantity, Amount: t.Amount, OccurredAt: t.OccurredAt}
		},
		Defaults: services.TransactionInput{Status: model.TxPending},
		Form:     sess,
	})
	if ns != nil {
		ns.Subscribe(c.HandleEvent)
	}
	return c
}
