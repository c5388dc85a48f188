package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/services"
	"github.com/tonearm/tonearm/internal/store/memory"
)

func newTestServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(NewRouter(RouterDeps{
		Store:     memory.New(),
		IsHealthy: func() bool { return true },
	}))
	t.Cleanup(srv.Close)
	return srv
}

func doJSON(t *testing.T, method, url string, body any) (*http.Response, []byte) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req, err := http.NewRequest(method, url, &buf)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()
	var out bytes.Buffer
	_, err = out.ReadFrom(resp.Body)
	require.NoError(t, err)
	return resp, out.Bytes()
}

func createUser(t *testing.T, base, name, email string) model.User {
	t.Helper()
	resp, body := doJSON(t, http.MethodPost, base+"/v1/users", services.UserInput{Name: name, Email: email})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var u model.User
	require.NoError(t, json.Unmarshal(body, &u))
	return u
}

func TestUserCRUDOverHTTP(t *testing.T) {
	srv := newTestServer(t)

	created := createUser(t, srv.URL, "Ana", "ana@example.com")
	require.NotEmpty(t, created.ID)
	require.Equal(t, "Ana", created.Name)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/users/"+created.ID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var got model.User
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, created.ID, got.ID)

	resp, body = doJSON(t, http.MethodPut, srv.URL+"/v1/users/"+created.ID,
		services.UserInput{Name: "Ana Maria", Email: "ana@example.com"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &got))
	require.Equal(t, "Ana Maria", got.Name)
	require.NotNil(t, got.UpdatedAt)

	resp, _ = doJSON(t, http.MethodDelete, srv.URL+"/v1/users/"+created.ID, nil)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp, _ = doJSON(t, http.MethodGet, srv.URL+"/v1/users/"+created.ID, nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestCreateUserValidationIs400(t *testing.T) {
	srv := newTestServer(t)
	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/users",
		services.UserInput{Name: "Ana", Email: "not-an-email"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	require.Contains(t, string(body), "email")
}

func TestDuplicateEmailIs409(t *testing.T) {
	srv := newTestServer(t)
	createUser(t, srv.URL, "Ana", "ana@example.com")
	resp, _ := doJSON(t, http.MethodPost, srv.URL+"/v1/users",
		services.UserInput{Name: "Other", Email: "ana@example.com"})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestUpdateMissingUserIs404(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodPut, srv.URL+"/v1/users/999",
		services.UserInput{Name: "Ghost", Email: "ghost@example.com"})
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestDeleteMissingUserIs404(t *testing.T) {
	srv := newTestServer(t)
	resp, _ := doJSON(t, http.MethodDelete, srv.URL+"/v1/users/999", nil)
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestInvalidJSONBodyIs400(t *testing.T) {
	srv := newTestServer(t)
	resp, err := http.Post(srv.URL+"/v1/users", "application/json", bytes.NewBufferString("{not json"))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestListUsersWithSearchTerm(t *testing.T) {
	srv := newTestServer(t)
	createUser(t, srv.URL, "Ana", "ana@example.com")
	createUser(t, srv.URL, "Ben", "ben@example.com")

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/users?q=ben", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var users []*model.User
	require.NoError(t, json.Unmarshal(body, &users))
	require.Len(t, users, 1)
	require.Equal(t, "Ben", users[0].Name)
}

func TestListBadCriteriaIs400(t *testing.T) {
	srv := newTestServer(t)
	for _, q := range []string{"min_amount=abc", "from=yesterday"} {
		resp, _ := doJSON(t, http.MethodGet, srv.URL+"/v1/transactions?"+q, nil)
		require.Equal(t, http.StatusBadRequest, resp.StatusCode, q)
	}
}

func TestTransactionStatusPatch(t *testing.T) {
	srv := newTestServer(t)
	u := createUser(t, srv.URL, "Ana", "ana@example.com")

	resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/transactions", services.TransactionInput{
		UserID:     u.ID,
		Kind:       model.KindSale,
		Status:     model.TxPending,
		Quantity:   2,
		Amount:     50,
		OccurredAt: time.Now().UTC(),
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	var tx model.Transaction
	require.NoError(t, json.Unmarshal(body, &tx))

	resp, body = doJSON(t, http.MethodPatch, srv.URL+"/v1/transactions/"+tx.ID+"/status",
		map[string]string{"status": "completed"})
	require.Equal(t, http.StatusOK, resp.StatusCode, string(body))
	require.NoError(t, json.Unmarshal(body, &tx))
	require.Equal(t, model.TxCompleted, tx.Status)

	resp, _ = doJSON(t, http.MethodPatch, srv.URL+"/v1/transactions/"+tx.ID+"/status",
		map[string]string{"status": "finished"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestUserBalanceEndpoint(t *testing.T) {
	srv := newTestServer(t)
	u := createUser(t, srv.URL, "Ana", "ana@example.com")

	post := func(kind model.TransactionKind, status model.TransactionStatus, amount float64) {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/transactions", services.TransactionInput{
			UserID: u.ID, Kind: kind, Status: status, Quantity: 1, Amount: amount,
			OccurredAt: time.Now().UTC(),
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}
	post(model.KindSale, model.TxCompleted, 100)
	post(model.KindPurchase, model.TxCompleted, 40)
	post(model.KindSale, model.TxPending, 999)

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/users/"+u.ID+"/balance", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var bal services.Balance
	require.NoError(t, json.Unmarshal(body, &bal))
	require.Equal(t, float64(60), bal.Net)
	require.Equal(t, 1, bal.Pending)
	require.Equal(t, 3, bal.Count)
}

func TestMembershipStatsEndpoint(t *testing.T) {
	srv := newTestServer(t)
	u := createUser(t, srv.URL, "Ana", "ana@example.com")

	start := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, status := range []model.MembershipStatus{model.StatusActive, model.StatusActive, model.StatusExpired} {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/memberships", services.MembershipInput{
			UserID:    u.ID,
			Amount:    float64(10 * (i + 1)),
			StartDate: start,
			EndDate:   start.AddDate(1, 0, 0),
			Status:    status,
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/memberships/stats", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var stats services.MembershipStats
	require.NoError(t, json.Unmarshal(body, &stats))
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.Active)
	require.Equal(t, 1, stats.Expired)
}

func TestArtistGenreFilter(t *testing.T) {
	srv := newTestServer(t)
	for i, g := range []string{"jazz", "rock", "jazz"} {
		resp, body := doJSON(t, http.MethodPost, srv.URL+"/v1/artists", services.ArtistInput{
			Name:     fmt.Sprintf("artist-%d", i),
			Bio:      "bio",
			Genre:    g,
			PhotoURL: "https://img.example.com/a.jpg",
		})
		require.Equal(t, http.StatusCreated, resp.StatusCode, string(body))
	}

	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/artists?genre=jazz", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var artists []*model.Artist
	require.NoError(t, json.Unmarshal(body, &artists))
	require.Len(t, artists, 2)
}

func TestHealthEndpoint(t *testing.T) {
	srv := newTestServer(t)
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "healthy")
}

func TestHealthEndpointUnhealthy(t *testing.T) {
	srv := httptest.NewServer(NewRouter(RouterDeps{
		Store:     memory.New(),
		IsHealthy: func() bool { return false },
	}))
	defer srv.Close()
	resp, body := doJSON(t, http.MethodGet, srv.URL+"/v1/health", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), "unhealthy")
}
