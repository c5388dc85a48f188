package services

import (
	"context"
	"fmt"
	"time"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store"
	"github.com/tonearm/tonearm/internal/validate"
)

// MembershipInput is the draft payload a membership form stages.
type MembershipInput struct {
	UserID    string                 `json:"user_id"`
	Amount    float64                `json:"amount"`
	StartDate time.Time              `json:"start_date"`
	EndDate   time.Time              `json:"end_date"`
	Status    model.MembershipStatus `json:"status"`
}

// Validate applies the membership field rules. The end date must be strictly
// after the start date; equal dates fail.
func (in MembershipInput) Validate() error {
	if err := validate.NonEmpty("user_id", in.UserID); err != nil {
		return err
	}
	if err := validate.Positive("amount", in.Amount); err != nil {
		return err
	}
	if in.Status != "" && model.ParseMembershipStatus(string(in.Status)) == model.StatusUnknown {
		return fmt.Errorf("%w: unrecognized status %q", model.ErrValidation, in.Status)
	}
	return validate.DateOrder(in.StartDate, in.EndDate)
}

type MembershipService struct {
	store store.Store
}

func NewMembershipService(s store.Store) *MembershipService {
	return &MembershipService{store: s}
}

func (s *MembershipService) ListMemberships(ctx context.Context) ([]*model.Membership, error) {
	return s.store.Memberships().List(ctx)
}

func (s *MembershipService) ListByUser(ctx context.Context, userID string) ([]*model.Membership, error) {
	return s.store.Memberships().ListByUser(ctx, userID)
}

// ListByStatus pushes the status filter down to the store, so the remote
// backend evaluates it server-side.
func (s *MembershipService) ListByStatus(ctx context.Context, status model.MembershipStatus) ([]*model.Membership, error) {
	return s.store.Memberships().ListByStatus(ctx, status)
}

func (s *MembershipService) GetMembership(ctx context.Context, id string) (*model.Membership, error) {
	return s.store.Memberships().GetByID(ctx, id)
}

// CreateMembership stores a new membership. The user reference is non-owning
// and deliberately not checked against the users collection.
func (s *MembershipService) CreateMembership(ctx context.Context, in MembershipInput) (*model.Membership, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = model.StatusActive
	}
	m := &model.Membership{
		UserID:    in.UserID,
		Amount:    in.Amount,
		StartDate: in.StartDate,
		EndDate:   in.EndDate,
		Status:    status,
	}
	return s.store.Memberships().Create(ctx, m)
}

func (s *MembershipService) UpdateMembership(ctx context.Context, id string, in MembershipInput) (*model.Membership, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	status := in.Status
	if status == "" {
		status = model.StatusActive
	}
	p := model.MembershipPatch{
		UserID:    &in.UserID,
		Amount:    &in.Amount,
		StartDate: &in.StartDate,
		EndDate:   &in.EndDate,
		Status:    &status,
	}
	return s.store.Memberships().Update(ctx, id, p)
}

func (s *MembershipService) DeleteMembership(ctx context.Context, id string) (bool, error) {
	return s.store.Memberships().Delete(ctx, id)
}

// MembershipStats summarizes memberships by status.
type MembershipStats struct {
	Total    int     `json:"total"`
	Active   int     `json:"active"`
	Inactive int     `json:"inactive"`
	Expired  int     `json:"expired"`
	Unknown  int     `json:"unknown"`
	Revenue  float64 `json:"revenue"`
}

// Stats tallies memberships per status. Unrecognized statuses land in the
// Unknown bucket rather than being folded into a default.
func (s *MembershipService) Stats(ctx context.Context) (*MembershipStats, error) {
	all, err := s.store.Memberships().List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &MembershipStats{Total: len(all)}
	for _, m := range all {
		stats.Revenue += m.Amount
		switch m.Status {
		case model.StatusActive:
			stats.Active++
		case model.StatusInactive:
			stats.Inactive++
		case model.StatusExpired:
			stats.Expired++
		default:
			stats.Unknown++
		}
	}
	return stats, nil
}
