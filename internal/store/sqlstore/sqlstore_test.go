package sqlstore

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tonearm/tonearm/internal/model"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := OpenSQLite(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	require.NoError(t, EnsureSchema(context.Background(), db))
	return New(db, SQLite)
}

func TestRebind(t *testing.T) {
	pg := &Store{dialect: Postgres}
	lite := &Store{dialect: SQLite}

	q := `UPDATE users SET name = ?, email = ? WHERE id = ?`
	require.Equal(t, `UPDATE users SET name = $1, email = $2 WHERE id = $3`, pg.rebind(q))
	require.Equal(t, q, lite.rebind(q))
}

func TestUserCRUD(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	age := 28
	created, err := st.Users().Create(ctx, &model.User{Name: "Ana", Email: "ana@example.com", Age: &age})
	require.NoError(t, err)
	require.NotEmpty(t, created.ID)
	require.False(t, created.CreatedAt.IsZero())

	got, err := st.Users().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "Ana", got.Name)
	require.NotNil(t, got.Age)
	require.Equal(t, 28, *got.Age)

	byEmail, err := st.Users().GetByEmail(ctx, "ana@example.com")
	require.NoError(t, err)
	require.NotNil(t, byEmail)
	require.Equal(t, created.ID, byEmail.ID)

	name := "Ana Maria"
	updated, err := st.Users().Update(ctx, created.ID, model.UserPatch{Name: &name})
	require.NoError(t, err)
	require.Equal(t, "Ana Maria", updated.Name)
	require.Equal(t, "ana@example.com", updated.Email)
	require.NotNil(t, updated.UpdatedAt)

	removed, err := st.Users().Delete(ctx, created.ID)
	require.NoError(t, err)
	require.True(t, removed)

	got, err = st.Users().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Nil(t, got, "absence after delete is (nil, nil)")
}

func TestUpdateMissingReturnsNotFound(t *testing.T) {
	st := newTestStore(t)
	name := "x"
	_, err := st.Users().Update(context.Background(), "missing", model.UserPatch{Name: &name})
	require.ErrorIs(t, err, model.ErrNotFound)
}

func TestDeleteMissingIsFalse(t *testing.T) {
	st := newTestStore(t)
	removed, err := st.Users().Delete(context.Background(), "missing")
	require.NoError(t, err)
	require.False(t, removed)
}

func TestArtistSocialLinksRoundTrip(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	insta := "https://instagram.com/nina"
	created, err := st.Artists().Create(ctx, &model.Artist{
		Name:   "Nina",
		Genre:  "Electro-swing",
		Social: &model.SocialLinks{Instagram: &insta},
	})
	require.NoError(t, err)

	got, err := st.Artists().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Social)
	require.NotNil(t, got.Social.Instagram)
	require.Equal(t, insta, *got.Social.Instagram)
	require.Nil(t, got.Social.Facebook)
}

func TestMembershipStatusSurvivesStorage(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	created, err := st.Memberships().Create(ctx, &model.Membership{
		UserID:    "u1",
		Amount:    9.99,
		StartDate: start,
		EndDate:   start.AddDate(1, 0, 0),
		Status:    model.StatusExpired,
	})
	require.NoError(t, err)

	got, err := st.Memberships().GetByID(ctx, created.ID)
	require.NoError(t, err)
	require.Equal(t, model.StatusExpired, got.Status)
}

func TestMembershipListByStatus(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for _, status := range []model.MembershipStatus{model.StatusActive, model.StatusExpired, model.StatusActive} {
		_, err := st.Memberships().Create(ctx, &model.Membership{
			UserID:    "u1",
			Amount:    9.99,
			StartDate: start,
			EndDate:   start.AddDate(1, 0, 0),
			Status:    status,
		})
		require.NoError(t, err)
	}

	active, err := st.Memberships().ListByStatus(ctx, model.StatusActive)
	require.NoError(t, err)
	require.Len(t, active, 2)
	for _, m := range active {
		require.Equal(t, model.StatusActive, m.Status)
	}
}

func TestTransactionsListNewestFirst(t *testing.T) {
	ctx := context.Background()
	st := newTestStore(t)

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	for i, offset := range []time.Duration{0, 48 * time.Hour, 24 * time.Hour} {
		_, err := st.Transactions().Create(ctx, &model.Transaction{
			UserID:     "u1",
			Kind:       model.KindPurchase,
			Status:     model.TxCompleted,
			Quantity:   i + 1,
			Amount:     10,
			OccurredAt: base.Add(offset),
		})
		require.NoError(t, err)
	}

	all, err := st.Transactions().List(ctx)
	require.NoError(t, err)
	require.Len(t, all, 3)
	for i := 1; i < len(all); i++ {
		require.False(t, all[i-1].OccurredAt.Before(all[i].OccurredAt), "expected newest first")
	}

	mine, err := st.Transactions().ListByUser(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, mine, 3)
}

func TestHealthPing(t *testing.T) {
	st := newTestStore(t)
	require.NoError(t, st.HealthPing(context.Background()))
}
