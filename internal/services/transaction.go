package services

import (
	"fmt"
	"time"

	"context"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store"
	"github.com/tonearm/tonearm/internal/validate"
)

// TransactionInput is the draft payload a transaction form stages.
type TransactionInput struct {
	UserID     string                  `json:"user_id"`
	Kind       model.TransactionKind   `json:"kind"`
	Status     model.TransactionStatus `json:"status"`
	Quantity   int                     `json:"quantity"`
	Amount     float64                 `json:"amount"`
	OccurredAt time.Time               `json:"occurred_at"`
}

// Validate applies the transaction field rules. New input must name a
// recognized kind and status; the unknown variants exist for data already in
// a store, not for fresh submissions.
func (in TransactionInput) Validate() error {
	if err := validate.NonEmpty("user_id", in.UserID); err != nil {
		return err
	}
	if model.ParseTransactionKind(string(in.Kind)) == model.KindUnknown {
		return fmt.Errorf("%w: unrecognized kind %q", model.ErrValidation, in.Kind)
	}
	if model.ParseTransactionStatus(string(in.Status)) == model.TxUnknown {
		return fmt.Errorf("%w: unrecognized status %q", model.ErrValidation, in.Status)
	}
	if err := validate.PositiveInt("quantity", in.Quantity); err != nil {
		return err
	}
	if err := validate.Positive("amount", in.Amount); err != nil {
		return err
	}
	if in.OccurredAt.IsZero() {
		return fmt.Errorf("%w: occurred_at is required", model.ErrValidation)
	}
	return nil
}

type TransactionService struct {
	store store.Store
}

func NewTransactionService(s store.Store) *TransactionService {
	return &TransactionService{store: s}
}

func (s *TransactionService) ListTransactions(ctx context.Context) ([]*model.Transaction, error) {
	return s.store.Transactions().List(ctx)
}

func (s *TransactionService) ListByUser(ctx context.Context, userID string) ([]*model.Transaction, error) {
	return s.store.Transactions().ListByUser(ctx, userID)
}

func (s *TransactionService) GetTransaction(ctx context.Context, id string) (*model.Transaction, error) {
	return s.store.Transactions().GetByID(ctx, id)
}

func (s *TransactionService) CreateTransaction(ctx context.Context, in TransactionInput) (*model.Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	t := &model.Transaction{
		UserID:     in.UserID,
		Kind:       in.Kind,
		Status:     in.Status,
		Quantity:   in.Quantity,
		Amount:     in.Amount,
		OccurredAt: in.OccurredAt,
	}
	return s.store.Transactions().Create(ctx, t)
}

func (s *TransactionService) UpdateTransaction(ctx context.Context, id string, in TransactionInput) (*model.Transaction, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p := model.TransactionPatch{
		UserID:     &in.UserID,
		Kind:       &in.Kind,
		Status:     &in.Status,
		Quantity:   &in.Quantity,
		Amount:     &in.Amount,
		OccurredAt: &in.OccurredAt,
	}
	return s.store.Transactions().Update(ctx, id, p)
}

// SetStatus is a targeted partial update that changes only the status.
func (s *TransactionService) SetStatus(ctx context.Context, id string, status model.TransactionStatus) (*model.Transaction, error) {
	if model.ParseTransactionStatus(string(status)) == model.TxUnknown {
		return nil, fmt.Errorf("%w: unrecognized status %q", model.ErrValidation, status)
	}
	return s.store.Transactions().Update(ctx, id, model.TransactionPatch{Status: &status})
}

func (s *TransactionService) DeleteTransaction(ctx context.Context, id string) (bool, error) {
	return s.store.Transactions().Delete(ctx, id)
}

// TransactionStats aggregates the ledger.
type TransactionStats struct {
	Total     int     `json:"total"`
	Purchases int     `json:"purchases"`
	Sales     int     `json:"sales"`
	Pending   int     `json:"pending"`
	Completed int     `json:"completed"`
	Cancelled int     `json:"cancelled"`
	Sum       float64 `json:"sum"`
	Average   float64 `json:"average"`
	Largest   float64 `json:"largest"`
	Smallest  float64 `json:"smallest"`
}

// Stats reduces the full ledger to counts, totals and extremes.
func (s *TransactionService) Stats(ctx context.Context) (*TransactionStats, error) {
	all, err := s.store.Transactions().List(ctx)
	if err != nil {
		return nil, err
	}
	stats := &TransactionStats{Total: len(all)}
	for i, t := range all {
		stats.Sum += t.Amount
		if i == 0 || t.Amount > stats.Largest {
			stats.Largest = t.Amount
		}
		if i == 0 || t.Amount < stats.Smallest {
			stats.Smallest = t.Amount
		}
		switch t.Kind {
		case model.KindPurchase:
			stats.Purchases++
		case model.KindSale:
			stats.Sales++
		}
		switch t.Status {
		case model.TxPending:
			stats.Pending++
		case model.TxCompleted:
			stats.Completed++
		case model.TxCancelled:
			stats.Cancelled++
		}
	}
	if stats.Total > 0 {
		stats.Average = stats.Sum / float64(stats.Total)
	}
	return stats, nil
}

// Balance summarizes one user's completed activity.
type Balance struct {
	UserID    string  `json:"user_id"`
	Purchases float64 `json:"purchases"`
	Sales     float64 `json:"sales"`
	Net       float64 `json:"net"`
	Pending   int     `json:"pending"`
	Count     int     `json:"count"`
}

// UserBalance computes sales minus purchases over the user's completed
// transactions; pending ones are counted but excluded from the totals.
func (s *TransactionService) UserBalance(ctx context.Context, userID string) (*Balance, error) {
	txs, err := s.store.Transactions().ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	b := &Balance{UserID: userID, Count: len(txs)}
	for _, t := range txs {
		if t.Status == model.TxPending {
			b.Pending++
		}
		if t.Status != model.TxCompleted {
			continue
		}
		switch t.Kind {
		case model.KindPurchase:
			b.Purchases += t.Amount
		case model.KindSale:
			b.Sales += t.Amount
		}
	}
	b.Net = b.Sales - b.Purchases
	return b, nil
}
