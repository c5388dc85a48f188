package page

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tonearm/tonearm/internal/form"
	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/services"
	"github.com/tonearm/tonearm/internal/store"
	"github.com/tonearm/tonearm/internal/store/memory"
	"github.com/tonearm/tonearm/internal/store/notify"
)

func testUserPage(t *testing.T) (*Controller[*model.User, services.UserInput], *notify.Store) {
	t.Helper()
	st := notify.New(memory.New())
	svc := services.NewUserService(st)
	return UserPage(zerolog.Nop(), svc, st), st
}

// answer services the confirmation channel once.
func answer(t *testing.T, c *Controller[*model.User, services.UserInput], approve bool) {
	t.Helper()
	go func() {
		select {
		case req := <-c.Confirmations():
			if approve {
				req.Approve()
			} else {
				req.Decline()
			}
		case <-time.After(5 * time.Second):
			t.Error("no confirmation request arrived")
		}
	}()
}

func TestActivateLoadsCollection(t *testing.T) {
	ctx := context.Background()
	page, st := testUserPage(t)

	_, err := st.Users().Create(ctx, &model.User{Name: "Ana", Email: "a@x.io"})
	require.NoError(t, err)

	require.NoError(t, page.Activate(ctx))
	snap := page.Snapshot()
	require.False(t, snap.Loading)
	require.Empty(t, snap.Err)
	require.Len(t, snap.Records, 1)
	require.Equal(t, "Ana", snap.Records[0].Name)
}

func TestActivateFailureKeepsPriorRecords(t *testing.T) {
	ctx := context.Background()
	calls := 0
	c := NewController(zerolog.Nop(), Config[*model.User, services.UserInput]{
		Entity: store.EntityUser,
		Load: func(context.Context) ([]*model.User, error) {
			calls++
			if calls == 1 {
				return []*model.User{{ID: "1", Name: "Ana"}}, nil
			}
			return nil, errors.New("backend down")
		},
		Delete: func(context.Context, string) (bool, error) { return false, nil },
		IDOf:   func(u *model.User) string { return u.ID },
		SeedForm: func(u *model.User) services.UserInput {
			return services.UserInput{Name: u.Name, Email: u.Email}
		},
		Form: form.New[services.UserInput](nil,
			func(context.Context, services.UserInput) error { return nil },
			func(context.Context, string, services.UserInput) error { return nil },
		),
	})

	require.NoError(t, c.Activate(ctx))
	require.Error(t, c.Activate(ctx))

	snap := c.Snapshot()
	require.Contains(t, snap.Err, "failed to load records")
	require.Len(t, snap.Records, 1, "stale collection survives a failed reload")
}

func TestSubmitCreateFlowsThroughForm(t *testing.T) {
	ctx := context.Background()
	page, _ := testUserPage(t)
	require.NoError(t, page.Activate(ctx))

	page.New()
	require.True(t, page.Snapshot().FormOpen)

	page.SetFields(services.UserInput{Name: "Ben", Email: "ben@example.com"})
	require.NoError(t, page.Submit(ctx))

	snap := page.Snapshot()
	require.False(t, snap.FormOpen, "successful submit closes the form")
	require.Equal(t, "record created", snap.Notice)
	require.Len(t, snap.Records, 1, "created record arrives via the store event")
	require.Equal(t, "Ben", snap.Records[0].Name)
}

func TestSubmitValidationFailureKeepsFormOpen(t *testing.T) {
	ctx := context.Background()
	page, _ := testUserPage(t)

	page.New()
	page.SetFields(services.UserInput{Name: "", Email: "nope"})
	err := page.Submit(ctx)
	require.ErrorIs(t, err, model.ErrValidation)

	snap := page.Snapshot()
	require.True(t, snap.FormOpen, "invalid input leaves the draft editable")
	require.Empty(t, snap.Records)
}

func TestEditSeedsFormFromLocalState(t *testing.T) {
	ctx := context.Background()
	page, st := testUserPage(t)
	created, err := st.Users().Create(ctx, &model.User{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)

	page.Edit(created.ID)
	require.Equal(t, created.ID, page.Snapshot().EditingID)
	require.Equal(t, "Ana", page.Form().Fields().Name)

	page.SetFields(services.UserInput{Name: "Ana Maria", Email: "ana@example.com"})
	require.NoError(t, page.Submit(ctx))

	snap := page.Snapshot()
	require.Len(t, snap.Records, 1, "update replaces in place, no duplicate")
	require.Equal(t, "Ana Maria", snap.Records[0].Name)
}

func TestEditUnknownIDSetsError(t *testing.T) {
	page, _ := testUserPage(t)
	page.Edit("missing")
	require.Contains(t, page.Snapshot().Err, "record not found")
	require.False(t, page.Snapshot().FormOpen)
}

func TestDeleteRequiresApproval(t *testing.T) {
	ctx := context.Background()
	page, st := testUserPage(t)
	created, err := st.Users().Create(ctx, &model.User{Name: "Ana", Email: "a@x.io"})
	require.NoError(t, err)

	answer(t, page, true)
	require.NoError(t, page.RequestDelete(ctx, created.ID))

	snap := page.Snapshot()
	require.Empty(t, snap.Records, "delete event removed the record")
	require.Equal(t, "record deleted", snap.Notice)
}

func TestDeclinedDeleteIsNoop(t *testing.T) {
	ctx := context.Background()
	page, st := testUserPage(t)
	created, err := st.Users().Create(ctx, &model.User{Name: "Ana", Email: "a@x.io"})
	require.NoError(t, err)

	answer(t, page, false)
	require.NoError(t, page.RequestDelete(ctx, created.ID))

	got, err := st.Users().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got, "declined confirmation must not touch the store")
	require.Len(t, page.Snapshot().Records, 1)
}

func TestHandleEventIgnoresOtherEntities(t *testing.T) {
	page, _ := testUserPage(t)
	page.HandleEvent(store.Event{Entity: store.EntityArtist, Op: store.OpCreated, ID: "a1", Record: &model.Artist{ID: "a1"}})
	require.Empty(t, page.Snapshot().Records)
}
