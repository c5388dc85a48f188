package notify

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store"
	"github.com/tonearm/tonearm/internal/store/memory"
)

func collect(t *testing.T) (*Store, *[]store.Event) {
	t.Helper()
	st := New(memory.New())
	var events []store.Event
	st.Subscribe(func(ev store.Event) { events = append(events, ev) })
	return st, &events
}

func TestCreateEmitsEvent(t *testing.T) {
	st, events := collect(t)

	created, err := st.Users().Create(context.Background(), &model.User{Name: "Ana", Email: "a@x.io"})
	require.NoError(t, err)

	require.Len(t, *events, 1)
	ev := (*events)[0]
	require.Equal(t, store.EntityUser, ev.Entity)
	require.Equal(t, store.OpCreated, ev.Op)
	require.Equal(t, created.ID, ev.ID)
	require.Equal(t, created, ev.Record)
}

func TestUpdateAndDeleteEmit(t *testing.T) {
	ctx := context.Background()
	st, events := collect(t)

	created, err := st.Artists().Create(ctx, &model.Artist{Name: "X"})
	require.NoError(t, err)

	name := "Y"
	_, err = st.Artists().Update(ctx, created.ID, model.ArtistPatch{Name: &name})
	require.NoError(t, err)

	removed, err := st.Artists().Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, removed)

	require.Len(t, *events, 3)
	require.Equal(t, store.OpUpdated, (*events)[1].Op)
	require.Equal(t, store.OpDeleted, (*events)[2].Op)
	require.Nil(t, (*events)[2].Record, "delete events carry no record")
}

func TestFailedMutationsEmitNothing(t *testing.T) {
	ctx := context.Background()
	st, events := collect(t)

	name := "x"
	_, err := st.Users().Update(ctx, "missing", model.UserPatch{Name: &name})
	require.ErrorIs(t, err, model.ErrNotFound)

	removed, err := st.Users().Delete(ctx, "missing")
	require.NoError(t, err)
	require.False(t, removed)

	require.Empty(t, *events)
}

func TestReadsPassThroughSilently(t *testing.T) {
	ctx := context.Background()
	st, events := collect(t)

	_, err := st.Users().List(ctx)
	require.NoError(t, err)
	_, err = st.Users().GetByID(ctx, "1")
	require.NoError(t, err)

	require.Empty(t, *events)
}
