// Package sqlstore implements store.Store over database/sql. The same
// implementation serves both the pgx (postgres) and modernc (sqlite) drivers;
// queries are written with ? placeholders and rebound to $n for postgres.
package sqlstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store"
)

// Dialect selects placeholder style for the underlying driver.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// Store implements store.Store over a *sql.DB.
type Store struct {
	db      *sql.DB
	dialect Dialect
}

// New wraps an open connection. The caller owns the connection's lifetime.
func New(db *sql.DB, d Dialect) *Store { return &Store{db: db, dialect: d} }

func (s *Store) Users() store.Users               { return &users{s} }
func (s *Store) Artists() store.Artists           { return &artists{s} }
func (s *Store) Memberships() store.Memberships   { return &memberships{s} }
func (s *Store) Transactions() store.Transactions { return &transactions{s} }

// HealthPing implements health probing for SQL-backed stores.
func (s *Store) HealthPing(ctx context.Context) error { return s.db.PingContext(ctx) }

// rebind rewrites ? placeholders to $1..$n for postgres.
func (s *Store) rebind(q string) string {
	if s.dialect != Postgres {
		return q
	}
	var b strings.Builder
	n := 0
	for _, r := range q {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func (s *Store) exec(ctx context.Context, q string, args ...any) (sql.Result, error) {
	return s.db.ExecContext(ctx, s.rebind(q), args...)
}

func (s *Store) queryRow(ctx context.Context, q string, args ...any) *sql.Row {
	return s.db.QueryRowContext(ctx, s.rebind(q), args...)
}

func (s *Store) query(ctx context.Context, q string, args ...any) (*sql.Rows, error) {
	return s.db.QueryContext(ctx, s.rebind(q), args...)
}

// --- Users ---

type users struct{ s *Store }

const userCols = `id, name, email, age, bio, created_at, updated_at`

func scanUser(row interface{ Scan(...any) error }) (*model.User, error) {
	var u model.User
	if err := row.Scan(&u.ID, &u.Name, &u.Email, &u.Age, &u.Bio, &u.CreatedAt, &u.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &u, nil
}

func (u *users) List(ctx context.Context) ([]*model.User, error) {
	rows, err := u.s.query(ctx, `SELECT `+userCols+` FROM users ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.User
	for rows.Next() {
		rec, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (u *users) GetByID(ctx context.Context, id string) (*model.User, error) {
	return scanUser(u.s.queryRow(ctx, `SELECT `+userCols+` FROM users WHERE id = ?`, id))
}

func (u *users) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return scanUser(u.s.queryRow(ctx, `SELECT `+userCols+` FROM users WHERE email = ? LIMIT 1`, email))
}

func (u *users) Create(ctx context.Context, in *model.User) (*model.User, error) {
	out := *in
	out.ID = uuid.New().String()
	out.CreatedAt = time.Now().UTC()
	out.UpdatedAt = nil
	_, err := u.s.exec(ctx, `INSERT INTO users (id, name, email, age, bio, created_at) VALUES (?,?,?,?,?,?)`,
		out.ID, out.Name, out.Email, out.Age, out.Bio, out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (u *users) Update(ctx context.Context, id string, p model.UserPatch) (*model.User, error) {
	cur, err := u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, model.ErrNotFound
	}
	next := p.Apply(*cur, time.Now().UTC())
	_, err = u.s.exec(ctx, `UPDATE users SET name=?, email=?, age=?, bio=?, updated_at=? WHERE id=?`,
		next.Name, next.Email, next.Age, next.Bio, next.UpdatedAt, id)
	if err != nil {
		return nil, err
	}
	return &next, nil
}

func (u *users) Delete(ctx context.Context, id string) (bool, error) {
	res, err := u.s.exec(ctx, `DELETE FROM users WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// --- Artists ---

type artists struct{ s *Store }

const artistCols = `id, name, bio, genre, photo_url, social, created_at, updated_at`

func scanArtist(row interface{ Scan(...any) error }) (*model.Artist, error) {
	var a model.Artist
	var social sql.NullString
	if err := row.Scan(&a.ID, &a.Name, &a.Bio, &a.Genre, &a.PhotoURL, &social, &a.CreatedAt, &a.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	if social.Valid && social.String != "" {
		var links model.SocialLinks
		if err := json.Unmarshal([]byte(social.String), &links); err == nil {
			a.Social = &links
		}
	}
	return &a, nil
}

func socialJSON(links *model.SocialLinks) any {
	if links == nil {
		return nil
	}
	b, err := json.Marshal(links)
	if err != nil {
		return nil
	}
	return string(b)
}

func (a *artists) List(ctx context.Context) ([]*model.Artist, error) {
	rows, err := a.s.query(ctx, `SELECT `+artistCols+` FROM artists ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Artist
	for rows.Next() {
		rec, err := scanArtist(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (a *artists) GetByID(ctx context.Context, id string) (*model.Artist, error) {
	return scanArtist(a.s.queryRow(ctx, `SELECT `+artistCols+` FROM artists WHERE id = ?`, id))
}

func (a *artists) Create(ctx context.Context, in *model.Artist) (*model.Artist, error) {
	out := *in
	out.ID = uuid.New().String()
	out.CreatedAt = time.Now().UTC()
	out.UpdatedAt = nil
	_, err := a.s.exec(ctx, `INSERT INTO artists (id, name, bio, genre, photo_url, social, created_at) VALUES (?,?,?,?,?,?,?)`,
		out.ID, out.Name, out.Bio, out.Genre, out.PhotoURL, socialJSON(out.Social), out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (a *artists) Update(ctx context.Context, id string, p model.ArtistPatch) (*model.Artist, error) {
	cur, err := a.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, model.ErrNotFound
	}
	next := p.Apply(*cur, time.Now().UTC())
	_, err = a.s.exec(ctx, `UPDATE artists SET name=?, bio=?, genre=?, photo_url=?, social=?, updated_at=? WHERE id=?`,
		next.Name, next.Bio, next.Genre, next.PhotoURL, socialJSON(next.Social), next.UpdatedAt, id)
	if err != nil {
		return nil, err
	}
	return &next, nil
}

func (a *artists) Delete(ctx context.Context, id string) (bool, error) {
	res, err := a.s.exec(ctx, `DELETE FROM artists WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// --- Memberships ---

type memberships struct{ s *Store }

const membershipCols = `id, user_id, amount, start_date, end_date, status, created_at, updated_at`

func scanMembership(row interface{ Scan(...any) error }) (*model.Membership, error) {
	var m model.Membership
	var status string
	if err := row.Scan(&m.ID, &m.UserID, &m.Amount, &m.StartDate, &m.EndDate, &status, &m.CreatedAt, &m.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	m.Status = model.ParseMembershipStatus(status)
	return &m, nil
}

func (m *memberships) List(ctx context.Context) ([]*model.Membership, error) {
	rows, err := m.s.query(ctx, `SELECT `+membershipCols+` FROM memberships ORDER BY created_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Membership
	for rows.Next() {
		rec, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (m *memberships) ListByUser(ctx context.Context, userID string) ([]*model.Membership, error) {
	rows, err := m.s.query(ctx, `SELECT `+membershipCols+` FROM memberships WHERE user_id = ? ORDER BY created_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Membership
	for rows.Next() {
		rec, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (m *memberships) ListByStatus(ctx context.Context, status model.MembershipStatus) ([]*model.Membership, error) {
	rows, err := m.s.query(ctx, `SELECT `+membershipCols+` FROM memberships WHERE status = ? ORDER BY created_at DESC`, string(status))
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Membership
	for rows.Next() {
		rec, err := scanMembership(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (m *memberships) GetByID(ctx context.Context, id string) (*model.Membership, error) {
	return scanMembership(m.s.queryRow(ctx, `SELECT `+membershipCols+` FROM memberships WHERE id = ?`, id))
}

func (m *memberships) Create(ctx context.Context, in *model.Membership) (*model.Membership, error) {
	out := *in
	out.ID = uuid.New().String()
	out.CreatedAt = time.Now().UTC()
	out.UpdatedAt = nil
	_, err := m.s.exec(ctx, `INSERT INTO memberships (id, user_id, amount, start_date, end_date, status, created_at) VALUES (?,?,?,?,?,?,?)`,
		out.ID, out.UserID, out.Amount, out.StartDate, out.EndDate, string(out.Status), out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (m *memberships) Update(ctx context.Context, id string, p model.MembershipPatch) (*model.Membership, error) {
	cur, err := m.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, model.ErrNotFound
	}
	next := p.Apply(*cur, time.Now().UTC())
	_, err = m.s.exec(ctx, `UPDATE memberships SET user_id=?, amount=?, start_date=?, end_date=?, status=?, updated_at=? WHERE id=?`,
		next.UserID, next.Amount, next.StartDate, next.EndDate, string(next.Status), next.UpdatedAt, id)
	if err != nil {
		return nil, err
	}
	return &next, nil
}

func (m *memberships) Delete(ctx context.Context, id string) (bool, error) {
	res, err := m.s.exec(ctx, `DELETE FROM memberships WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}

// --- Transactions ---

type transactions struct{ s *Store }

const transactionCols = `id, user_id, kind, status, quantity, amount, occurred_at, created_at, updated_at`

func scanTransaction(row interface{ Scan(...any) error }) (*model.Transaction, error) {
	var t model.Transaction
	var kind, status string
	if err := row.Scan(&t.ID, &t.UserID, &kind, &status, &t.Quantity, &t.Amount, &t.OccurredAt, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	t.Kind = model.ParseTransactionKind(kind)
	t.Status = model.ParseTransactionStatus(status)
	return &t, nil
}

func (t *transactions) List(ctx context.Context) ([]*model.Transaction, error) {
	rows, err := t.s.query(ctx, `SELECT `+transactionCols+` FROM transactions ORDER BY occurred_at DESC`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Transaction
	for rows.Next() {
		rec, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (t *transactions) ListByUser(ctx context.Context, userID string) ([]*model.Transaction, error) {
	rows, err := t.s.query(ctx, `SELECT `+transactionCols+` FROM transactions WHERE user_id = ? ORDER BY occurred_at DESC`, userID)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var out []*model.Transaction
	for rows.Next() {
		rec, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (t *transactions) GetByID(ctx context.Context, id string) (*model.Transaction, error) {
	return scanTransaction(t.s.queryRow(ctx, `SELECT `+transactionCols+` FROM transactions WHERE id = ?`, id))
}

func (t *transactions) Create(ctx context.Context, in *model.Transaction) (*model.Transaction, error) {
	out := *in
	out.ID = uuid.New().String()
	out.CreatedAt = time.Now().UTC()
	out.UpdatedAt = nil
	_, err := t.s.exec(ctx, `INSERT INTO transactions (id, user_id, kind, status, quantity, amount, occurred_at, created_at) VALUES (?,?,?,?,?,?,?,?)`,
		out.ID, out.UserID, string(out.Kind), string(out.Status), out.Quantity, out.Amount, out.OccurredAt, out.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &out, nil
}

func (t *transactions) Update(ctx context.Context, id string, p model.TransactionPatch) (*model.Transaction, error) {
	cur, err := t.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, model.ErrNotFound
	}
	next := p.Apply(*cur, time.Now().UTC())
	_, err = t.s.exec(ctx, `UPDATE transactions SET user_id=?, kind=?, status=?, quantity=?, amount=?, occurred_at=?, updated_at=? WHERE id=?`,
		next.UserID, string(next.Kind), string(next.Status), next.Quantity, next.Amount, next.OccurredAt, next.UpdatedAt, id)
	if err != nil {
		return nil, err
	}
	return &next, nil
}

func (t *transactions) Delete(ctx context.Context, id string) (bool, error) {
	res, err := t.s.exec(ctx, `DELETE FROM transactions WHERE id = ?`, id)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	return n > 0, err
}
