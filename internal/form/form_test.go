package form

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

type draft struct {
	Name string
}

func TestSubmitWithoutRecord(t *testing.T) {
	s := New(nil,
		func(context.Context, draft) error { return nil },
		func(context.Context, string, draft) error { return nil },
	)
	require.ErrorIs(t, s.Submit(context.Background()), ErrNotEditing)
}

func TestValidationFailureStaysEditingWithoutStoreCall(t *testing.T) {
	calls := 0
	s := New(
		func(d draft) error {
			if d.Name == "" {
				return errors.New("name required")
			}
			return nil
		},
		func(context.Context, draft) error { calls++; return nil },
		func(context.Context, string, draft) error { calls++; return nil },
	)

	s.Begin(draft{})
	err := s.Submit(context.Background())
	require.Error(t, err)
	require.Equal(t, 0, calls, "store must not be reached on invalid input")
	require.Equal(t, StateEditing, s.State(), "failed validation keeps the draft")

	s.SetFields(draft{Name: "ok"})
	require.NoError(t, s.Submit(context.Background()))
	require.Equal(t, 1, calls)
	require.Equal(t, StateEmpty, s.State())
}

func TestStoreFailureReturnsToEditing(t *testing.T) {
	s := New(nil,
		func(context.Context, draft) error { return errors.New("store down") },
		func(context.Context, string, draft) error { return nil },
	)
	s.Begin(draft{Name: "x"})
	require.Error(t, s.Submit(context.Background()))
	require.Equal(t, StateEditing, s.State())
	require.Equal(t, draft{Name: "x"}, s.Fields(), "draft survives a failed store call")
}

func TestUpdateReceivesSeededID(t *testing.T) {
	var gotID string
	s := New(nil,
		func(context.Context, draft) error { t.Fatal("create must not run"); return nil },
		func(_ context.Context, id string, _ draft) error { gotID = id; return nil },
	)
	s.BeginEdit("42", draft{Name: "existing"})
	require.NoError(t, s.Submit(context.Background()))
	require.Equal(t, "42", gotID)
}

func TestSubmitWhilePendingRejected(t *testing.T) {
	started := make(chan struct{})
	release := make(chan struct{})
	s := New(nil,
		func(context.Context, draft) error {
			close(started)
			<-release
			return nil
		},
		func(context.Context, string, draft) error { return nil },
	)
	s.Begin(draft{Name: "slow"})

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = s.Submit(context.Background())
	}()

	<-started
	require.ErrorIs(t, s.Submit(context.Background()), ErrSubmitPending)

	// Lifecycle mutations are ignored while the call is outstanding.
	s.Reset()
	require.Equal(t, StateSubmitting, s.State())

	close(release)
	wg.Wait()
	require.Equal(t, StateEmpty, s.State())
}
