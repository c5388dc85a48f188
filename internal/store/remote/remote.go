// Package remote implements store.Store against a hosted PostgREST-style
// backend: one table per entity, CRUD verbs plus equality/order query
// parameters. Filtering and ordering are pushed to the server; a missing
// record on a single-row fetch is an explicit absence, not an error.
package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store"
)

const (
	tableUsers        = "users"
	tableArtists      = "artists"
	tableMemberships  = "memberships"
	tableTransactions = "transactions"
)

// Store talks to the hosted backend over its REST surface.
type Store struct {
	http *resty.Client
}

// New builds a Store for the given base URL and access credential. The
// credential is attached to every request; the backend assigns identifiers
// and creation timestamps.
func New(baseURL, apiKey string) *Store {
	c := resty.New().
		SetBaseURL(baseURL).
		SetHeader("Content-Type", "application/json").
		SetHeader("apikey", apiKey).
		SetAuthToken(apiKey).
		SetTimeout(30 * time.Second)
	return &Store{http: c}
}

func (s *Store) Users() store.Users               { return &users{s} }
func (s *Store) Artists() store.Artists           { return &artists{s} }
func (s *Store) Memberships() store.Memberships   { return &memberships{s} }
func (s *Store) Transactions() store.Transactions { return &transactions{s} }

// HealthPing issues a cheap single-row probe against the users table.
func (s *Store) HealthPing(ctx context.Context) error {
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("limit", "1").
		Get("/rest/v1/" + tableUsers)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return remoteErr(resp)
	}
	return nil
}

// remoteErr maps a non-2xx response to *model.RemoteError, keeping the
// backend's reason code and message when the body carries them.
func remoteErr(resp *resty.Response) error {
	re := &model.RemoteError{Status: resp.StatusCode(), Message: http.StatusText(resp.StatusCode())}
	var body struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil {
		if body.Code != "" {
			re.Code = body.Code
		}
		if body.Message != "" {
			re.Message = body.Message
		}
	}
	return re
}

// list fetches all rows of a table, newest first.
func list[T any](ctx context.Context, s *Store, table string, params map[string]string) ([]*T, error) {
	req := s.http.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam("order", "created_at.desc")
	for k, v := range params {
		req.SetQueryParam(k, v)
	}
	resp, err := req.Get("/rest/v1/" + table)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}
	var out []*T
	if err := json.Unmarshal(resp.Body(), &out); err != nil {
		return nil, fmt.Errorf("decode %s list: %w", table, err)
	}
	return out, nil
}

// getOne fetches at most one row matching the filter; absence is (nil, nil).
func getOne[T any](ctx context.Context, s *Store, table, column, value string) (*T, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetQueryParam("select", "*").
		SetQueryParam(column, "eq."+value).
		SetQueryParam("limit", "1").
		Get("/rest/v1/" + table)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}
	var rows []*T
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode %s row: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// create inserts one row and returns the server's representation, which
// includes the assigned identifier and timestamps.
func create[T any](ctx context.Context, s *Store, table string, rec any) (*T, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetBody(rec).
		Post("/rest/v1/" + table)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}
	var rows []*T
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode %s insert: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, &model.RemoteError{Status: resp.StatusCode(), Message: "insert returned no representation"}
	}
	return rows[0], nil
}

// update patches the row with the given id. An empty representation means
// the id did not match anything.
func update[T any](ctx context.Context, s *Store, table, id string, patch any) (*T, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+id).
		SetBody(patch).
		Patch("/rest/v1/" + table)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, remoteErr(resp)
	}
	var rows []*T
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return nil, fmt.Errorf("decode %s update: %w", table, err)
	}
	if len(rows) == 0 {
		return nil, model.ErrNotFound
	}
	return rows[0], nil
}

// del removes the row with the given id and reports whether one was removed.
func del(ctx context.Context, s *Store, table, id string) (bool, error) {
	resp, err := s.http.R().
		SetContext(ctx).
		SetHeader("Prefer", "return=representation").
		SetQueryParam("id", "eq."+id).
		Delete("/rest/v1/" + table)
	if err != nil {
		return false, err
	}
	if resp.IsError() {
		return false, remoteErr(resp)
	}
	var rows []json.RawMessage
	if err := json.Unmarshal(resp.Body(), &rows); err != nil {
		return false, fmt.Errorf("decode %s delete: %w", table, err)
	}
	return len(rows) > 0, nil
}

// --- Users ---

type users struct{ s *Store }

func (u *users) List(ctx context.Context) ([]*model.User, error) {
	return list[model.User](ctx, u.s, tableUsers, nil)
}

func (u *users) GetByID(ctx context.Context, id string) (*model.User, error) {
	return getOne[model.User](ctx, u.s, tableUsers, "id", id)
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return getOne[model.User](ctx, u.s, tableUsers, "email", email)
}

func (u *users) Create(ctx context.Context, in *model.User) (*model.User, error) {
	return create[model.User](ctx, u.s, tableUsers, newUserRow(in))
}

func (u *users) Update(ctx context.Context, id string, p model.UserPatch) (*model.User, error) {
	return update[model.User](ctx, u.s, tableUsers, id, p)
}

func (u *users) Delete(ctx context.Context, id string) (bool, error) {
	return del(ctx, u.s, tableUsers, id)
}

// newUserRow strips store-assigned fields from the insert payload.
func newUserRow(in *model.User) map[string]any {
	row := map[string]any{"name": in.Name, "email": in.Email}
	if in.Age != nil {
		row["age"] = *in.Age
	}
	if in.Bio != nil {
		row["bio"] = *in.Bio
	}
	return row
}

// --- Artists ---

type artists struct{ s *Store }

func (a *artists) List(ctx context.Context) ([]*model.Artist, error) {
	return list[model.Artist](ctx, a.s, tableArtists, nil)
}

func (a *artists) GetByID(ctx context.Context, id string) (*model.Artist, error) {
	return getOne[model.Artist](ctx, a.s, tableArtists, "id", id)
}

func (a *artists) Create(ctx context.Context, in *model.Artist) (*model.Artist, error) {
	row := map[string]any{"name": in.Name, "bio": in.Bio, "genre": in.Genre, "photo_url": in.PhotoURL}
	if in.Social != nil {
		row["social"] = in.Social
	}
	return create[model.Artist](ctx, a.s, tableArtists, row)
}

func (a *artists) Update(ctx context.Context, id string, p model.ArtistPatch) (*model.Artist, error) {
	return update[model.Artist](ctx, a.s, tableArtists, id, p)
}

func (a *artists) Delete(ctx context.Context, id string) (bool, error) {
	return del(ctx, a.s, tableArtists, id)
}

// --- Memberships ---

type memberships struct{ s *Store }

func (m *memberships) List(ctx context.Context) ([]*model.Membership, error) {
	return list[model.Membership](ctx, m.s, tableMemberships, nil)
}

func (m *memberships) ListByUser(ctx context.Context, userID string) ([]*model.Membership, error) {
	return list[model.Membership](ctx, m.s, tableMemberships, map[string]string{"user_id": "eq." + userID})
}

func (m *memberships) ListByStatus(ctx context.Context, status model.MembershipStatus) ([]*model.Membership, error) {
	return list[model.Membership](ctx, m.s, tableMemberships, map[string]string{"status": "eq." + string(status)})
}

func (m *memberships) GetByID(ctx context.Context, id string) (*model.Membership, error) {
	return getOne[model.Membership](ctx, m.s, tableMemberships, "id", id)
}

func (m *memberships) Create(ctx context.Context, in *model.Membership) (*model.Membership, error) {
	row := map[string]any{
		"user_id":    in.UserID,
		"amount":     in.Amount,
		"start_date": in.StartDate,
		"end_date":   in.EndDate,
		"status":     string(in.Status),
	}
	return create[model.Membership](ctx, m.s, tableMemberships, row)
}

func (m *memberships) Update(ctx context.Context, id string, p model.MembershipPatch) (*model.Membership, error) {
	return update[model.Membership](ctx, m.s, tableMemberships, id, p)
}

func (m *memberships) Delete(ctx context.Context, id string) (bool, error) {
	return del(ctx, m.s, tableMemberships, id)
}

// --- Transactions ---

type transactions struct{ s *Store }

func (t *transactions) List(ctx context.Context) ([]*model.Transaction, error) {
	return list[model.Transaction](ctx, t.s, tableTransactions, map[string]string{"order": "occurred_at.desc"})
}

func (t *transactions) ListByUser(ctx context.Context, userID string) ([]*model.Transaction, error) {
	return list[model.Transaction](ctx, t.s, tableTransactions, map[string]string{
		"user_id": "eq." + userID,
		"order":   "occurred_at.desc",
	})
}

func (t *transactions) GetByID(ctx context.Context, id string) (*model.Transaction, error) {
	return getOne[model.Transaction](ctx, t.s, tableTransactions, "id", id)
}

func (t *transactions) Create(ctx context.Context, in *model.Transaction) (*model.Transaction, error) {
	row := map[string]any{
		"user_id":     in.UserID,
		"kind":        string(in.Kind),
		"status":      string(in.Status),
		"quantity":    in.Quantity,
		"amount":      in.Amount,
		"occurred_at": in.OccurredAt,
	}
	return create[model.Transaction](ctx, t.s, tableTransactions, row)
}

func (t *transactions) Update(ctx context.Context, id string, p model.TransactionPatch) (*model.Transaction, error) {
	return update[model.Transaction](ctx, t.s, tableTransactions, id, p)
}

func (t *transactions) Delete(ctx context.Context, id string) (bool, error) {
	return del(ctx, t.s, tableTransactions, id)
}
