package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store"
	"github.com/tonearm/tonearm/internal/store/memory"
	"github.com/tonearm/tonearm/internal/store/notify"
)

// countingStore tracks mutations so tests can assert what reached the store.
func countingStore(t *testing.T) (*notify.Store, *int) {
	t.Helper()
	st := notify.New(memory.New())
	mutations := 0
	st.Subscribe(func(store.Event) { mutations++ })
	return st, &mutations
}

func TestCreateUserTrimsAndStores(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.New())

	u, err := svc.CreateUser(ctx, UserInput{Name: "  Ana  ", Email: "ana@example.com"})
	require.NoError(t, err)
	require.Equal(t, "Ana", u.Name)
	require.NotEmpty(t, u.ID)
}

func TestDuplicateEmailRejectedBeforeMutation(t *testing.T) {
	ctx := context.Background()
	st, mutations := countingStore(t)
	svc := NewUserService(st)

	_, err := svc.CreateUser(ctx, UserInput{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	require.Equal(t, 1, *mutations)

	_, err = svc.CreateUser(ctx, UserInput{Name: "Other", Email: "ana@example.com"})
	require.ErrorIs(t, err, model.ErrDuplicate)
	require.Equal(t, 1, *mutations, "duplicate must be caught before the store is touched")
}

func TestDuplicateEmailIsCaseInsensitive(t *testing.T) {
	ctx := context.Background()
	st, mutations := countingStore(t)
	svc := NewUserService(st)

	created, err := svc.CreateUser(ctx, UserInput{Name: "Ana", Email: "Ana@Example.com"})
	require.NoError(t, err)
	require.Equal(t, "ana@example.com", created.Email, "stored address is normalized")

	_, err = svc.CreateUser(ctx, UserInput{Name: "Other", Email: "ANA@example.COM"})
	require.ErrorIs(t, err, model.ErrDuplicate)
	require.Equal(t, 1, *mutations, "case-variant duplicate must not reach the store")
}

func TestUpdateUserEmailUniqueness(t *testing.T) {
	ctx := context.Background()
	svc := NewUserService(memory.New())

	ana, err := svc.CreateUser(ctx, UserInput{Name: "Ana", Email: "ana@example.com"})
	require.NoError(t, err)
	_, err = svc.CreateUser(ctx, UserInput{Name: "Ben", Email: "ben@example.com"})
	require.NoError(t, err)

	// Keeping your own address never counts as a duplicate.
	got, err := svc.UpdateUser(ctx, ana.ID, UserInput{Name: "Ana Maria", Email: "ana@example.com"})
	require.NoError(t, err)
	require.Equal(t, "Ana Maria", got.Name)

	// Moving onto another user's address does.
	_, err = svc.UpdateUser(ctx, ana.ID, UserInput{Name: "Ana", Email: "ben@example.com"})
	require.ErrorIs(t, err, model.ErrDuplicate)
}

func TestUpdateMissingUser(t *testing.T) {
	svc := NewUserService(memory.New())
	_, err := svc.UpdateUser(context.Background(), "missing", UserInput{Name: "x", Email: "x@y.io"})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestUserInputValidation(t *testing.T) {
	cases := []struct {
		name string
		in   UserInput
		ok   bool
	}{
		{"valid", UserInput{Name: "Ana", Email: "ana@example.com"}, true},
		{"missing name", UserInput{Email: "ana@example.com"}, false},
		{"bad email", UserInput{Name: "Ana", Email: "not-an-email"}, false},
		{"age out of range", UserInput{Name: "Ana", Email: "a@b.co", Age: intp(200)}, false},
		{"age in range", UserInput{Name: "Ana", Email: "a@b.co", Age: intp(30)}, true},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := tc.in.Validate()
			if tc.ok {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, model.ErrValidation)
			}
		})
	}
}

func intp(v int) *int { return &v }
