// Package seed loads a small sample catalog into any store backend so a
// fresh instance has data to browse.
package seed

import (
	"context"
	"time"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store"
)

func ptr[T any](v T) *T { return &v }

// Apply inserts the demo records through the store interface, so identifiers
// and timestamps are assigned the same way real writes assign them.
func Apply(ctx context.Context, st store.Store) error {
	artists := []model.Artist{
		{Name: "Nina Delacroix", Bio: "Chanson and electro-swing vocalist touring small European venues.", Genre: "Electro-swing", PhotoURL: "https://images.tonearm.dev/artists/nina.jpg",
			Social: &model.SocialLinks{Instagram: ptr("https://instagram.com/ninadelacroix")}},
		{Name: "The Copper Keys", Bio: "Four-piece indie rock band from Valparaiso.", Genre: "Indie rock", PhotoURL: "https://images.tonearm.dev/artists/copperkeys.jpg",
			Social: &model.SocialLinks{Facebook: ptr("https://facebook.com/thecopperkeys"), Twitter: ptr("https://twitter.com/copperkeys")}},
		{Name: "Mar Abierto", Bio: "Latin jazz ensemble led by pianist Rosa Infante.", Genre: "Latin jazz", PhotoURL: "https://images.tonearm.dev/artists/marabierto.jpg"},
		{Name: "Kestrel", Bio: "Ambient producer working with field recordings.", Genre: "Ambient", PhotoURL: "https://images.tonearm.dev/artists/kestrel.jpg"},
	}
	for i := range artists {
		if _, err := st.Artists().Create(ctx, &artists[i]); err != nil {
			return err
		}
	}

	seededUsers := []model.User{
		{Name: "Ana Reyes", Email: "ana.reyes@example.com", Age: ptr(29)},
		{Name: "Bruno Castillo", Email: "bruno.castillo@example.com", Age: ptr(41), Bio: ptr("Vinyl collector.")},
		{Name: "Carla Mendez", Email: "carla.mendez@example.com"},
	}
	var userIDs []string
	for i := range seededUsers {
		created, err := st.Users().Create(ctx, &seededUsers[i])
		if err != nil {
			return err
		}
		userIDs = append(userIDs, created.ID)
	}

	now := time.Now().UTC()
	memberships := []model.Membership{
		{UserID: userIDs[0], Amount: 9.99, StartDate: now.AddDate(0, -2, 0), EndDate: now.AddDate(0, 10, 0), Status: model.StatusActive},
		{UserID: userIDs[1], Amount: 19.99, StartDate: now.AddDate(-1, 0, 0), EndDate: now.AddDate(0, -1, 0), Status: model.StatusExpired},
	}
	for i := range memberships {
		if _, err := st.Memberships().Create(ctx, &memberships[i]); err != nil {
			return err
		}
	}

	transactions := []model.Transaction{
		{UserID: userIDs[0], Kind: model.KindPurchase, Status: model.TxCompleted, Quantity: 2, Amount: 24.50, OccurredAt: now.AddDate(0, 0, -12)},
		{UserID: userIDs[0], Kind: model.KindSale, Status: model.TxPending, Quantity: 1, Amount: 80.00, OccurredAt: now.AddDate(0, 0, -3)},
		{UserID: userIDs[1], Kind: model.KindPurchase, Status: model.TxCancelled, Quantity: 5, Amount: 12.75, OccurredAt: now.AddDate(0, 0, -30)},
		{UserID: userIDs[2], Kind: model.KindPurchase, Status: model.TxCompleted, Quantity: 1, Amount: 150.00, OccurredAt: now.AddDate(0, 0, -1)},
	}
	for i := range transactions {
		if _, err := st.Transactions().Create(ctx, &transactions[i]); err != nil {
			return err
		}
	}
	return nil
}
