package model

import "time"

// Patch types carry only the fields to change. A nil field leaves the prior
// value untouched. Apply returns a new record; the input is never mutated.

// UserPatch is a partial update for a User.
type UserPatch struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
	Age   *int    `json:"age,omitempty"`
	Bio   *string `json:"bio,omitempty"`
}

// Apply merges p over u and stamps UpdatedAt.
func (p UserPatch) Apply(u User, now time.Time) User {
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Age != nil {
		u.Age = p.Age
	}
	if p.Bio != nil {
		u.Bio = p.Bio
	}
	u.UpdatedAt = &now
	return u
}

// ArtistPatch is a partial update for an Artist.
type ArtistPatch struct {
	Name     *string      `json:"name,omitempty"`
	Bio      *string      `json:"bio,omitempty"`
	Genre    *string      `json:"genre,omitempty"`
	PhotoURL *string      `json:"photo_url,omitempty"`
	Social   *SocialLinks `json:"social,omitempty"`
}

// Apply merges p over a and stamps UpdatedAt.
func (p ArtistPatch) Apply(a Artist, now time.Time) Artist {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Bio != nil {
		a.Bio = *p.Bio
	}
	if p.Genre != nil {
		a.Genre = *p.Genre
	}
	if p.PhotoURL != nil {
		a.PhotoURL = *p.PhotoURL
	}
	if p.Social != nil {
		social := *p.Social
		a.Social = &social
	}
	a.UpdatedAt = &now
	return a
}

// MembershipPatch is a partial update for a Membership.
type MembershipPatch struct {
	UserID    *string           `json:"user_id,omitempty"`
	Amount    *float64          `json:"amount,omitempty"`
	StartDate *time.Time        `json:"start_date,omitempty"`
	EndDate   *time.Time        `json:"end_date,omitempty"`
	Status    *MembershipStatus `json:"status,omitempty"`
}

// Apply merges p over m and stamps UpdatedAt.
func (p MembershipPatch) Apply(m Membership, now time.Time) Membership {
	if p.UserID != nil {
		m.UserID = *p.UserID
	}
	if p.Amount != nil {
		m.Amount = *p.Amount
	}
	if p.StartDate != nil {
		m.StartDate = *p.StartDate
	}
	if p.EndDate != nil {
		m.EndDate = *p.EndDate
	}
	if p.Status != nil {
		m.Status = *p.Status
	}
	m.UpdatedAt = &now
	return m
}

// TransactionPatch is a partial update for a Transaction.
type TransactionPatch struct {
	UserID     *string            `json:"user_id,omitempty"`
	Kind       *TransactionKind   `json:"kind,omitempty"`
	Status     *TransactionStatus `json:"status,omitempty"`
	Quantity   *int               `json:"quantity,omitempty"`
	Amount     *float64           `json:"amount,omitempty"`
	OccurredAt *time.Time         `json:"occurred_at,omitempty"`
}

// Apply merges p over t and stamps UpdatedAt.
func (p TransactionPatch) Apply(t Transaction, now time.Time) Transaction {
	if p.UserID != nil {
		t.UserID = *p.UserID
	}
	if p.Kind != nil {
		t.Kind = *p.Kind
	}
	if p.Status != nil {
		t.Status = *p.Status
	}
	if p.Quantity != nil {
		t.Quantity = *p.Quantity
	}
	if p.Amount != nil {
		t.Amount = *p.Amount
	}
	if p.OccurredAt != nil {
		t.OccurredAt = *p.OccurredAt
	}
	t.UpdatedAt = &now
	return t
}
