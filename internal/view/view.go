// Package view derives filtered projections of a collection for display.
// Everything here is a pure function: the input slice is never mutated and
// applying the same criteria twice yields the same result.
package view

import (
	"sort"
	"strings"
	"time"

	"github.com/tonearm/tonearm/internal/model"
)

// Criteria describes one list view's filters, applied in order: free-text
// term, categorical value, then ranges. Zero values mean "no filter".
type Criteria struct {
	// Term is matched case-insensitively as a substring of the entity's
	// text fields.
	Term string
	// Category is matched against the entity's categorical field.
	Category string
	// MinAmount/MaxAmount bound a numeric field when non-nil.
	MinAmount *float64
	MaxAmount *float64
	// From/To bound a date field when non-nil (inclusive).
	From *time.Time
	To   *time.Time
}

func matchTerm(term string, fields ...string) bool {
	if term == "" {
		return true
	}
	term = strings.ToLower(term)
	for _, f := range fields {
		if strings.Contains(strings.ToLower(f), term) {
			return true
		}
	}
	return false
}

func inAmountRange(v float64, min, max *float64) bool {
	if min != nil && v < *min {
		return false
	}
	if max != nil && v > *max {
		return false
	}
	return true
}

func inDateRange(v time.Time, from, to *time.Time) bool {
	if from != nil && v.Before(*from) {
		return false
	}
	if to != nil && v.After(*to) {
		return false
	}
	return true
}

// Users filters by term over name and email. Input order is preserved.
func Users(in []*model.User, c Criteria) []*model.User {
	out := make([]*model.User, 0, len(in))
	for _, u := range in {
		if !matchTerm(c.Term, u.Name, u.Email) {
			continue
		}
		out = append(out, u)
	}
	return out
}

// Artists filters by term over name and bio, then by genre. Input order is
// preserved.
func Artists(in []*model.Artist, c Criteria) []*model.Artist {
	out := make([]*model.Artist, 0, len(in))
	for _, a := range in {
		if !matchTerm(c.Term, a.Name, a.Bio) {
			continue
		}
		if c.Category != "" && !strings.Contains(strings.ToLower(a.Genre), strings.ToLower(c.Category)) {
			continue
		}
		out = append(out, a)
	}
	return out
}

// Memberships filters by status equality and amount range. Input order is
// preserved. Category "unknown" selects records whose status failed to parse.
func Memberships(in []*model.Membership, c Criteria) []*model.Membership {
	out := make([]*model.Membership, 0, len(in))
	for _, m := range in {
		if c.Category != "" && m.Status != model.ParseMembershipStatus(c.Category) {
			continue
		}
		if !inAmountRange(m.Amount, c.MinAmount, c.MaxAmount) {
			continue
		}
		out = append(out, m)
	}
	return out
}

// Transactions filters by status equality, amount range and occurred-at
// range, then sorts newest-first by occurrence time. The sort is stable so
// equal timestamps keep the store's order.
func Transactions(in []*model.Transaction, c Criteria) []*model.Transaction {
	out := make([]*model.Transaction, 0, len(in))
	for _, t := range in {
		if c.Category != "" && t.Status != model.ParseTransactionStatus(c.Category) {
			continue
		}
		if !inAmountRange(t.Amount, c.MinAmount, c.MaxAmount) {
			continue
		}
		if !inDateRange(t.OccurredAt, c.From, c.To) {
			continue
		}
		out = append(out, t)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].OccurredAt.After(out[j].OccurredAt)
	})
	return out
}
