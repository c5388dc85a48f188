package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/tonearm/tonearm/internal/model"
	"github.com/tonearm/tonearm/internal/store"
	"github.com/tonearm/tonearm/internal/validate"
)

// UserInput is the draft payload a user form stages.
type UserInput struct {
	Name  string  `json:"name"`
	Email string  `json:"email"`
	Age   *int    `json:"age,omitempty"`
	Bio   *string `json:"bio,omitempty"`
}

// Validate applies the user field rules.
func (in UserInput) Validate() error {
	if err := validate.NonEmpty("name", in.Name); err != nil {
		return err
	}
	if err := validate.Email(in.Email); err != nil {
		return err
	}
	return validate.IntRange("age", in.Age, 1, 120)
}

type UserService struct {
	store store.Store
}

func NewUserService(s store.Store) *UserService { return &UserService{store: s} }

// normalizeEmail canonicalizes an address so uniqueness is case-insensitive.
// Stored records always carry the normalized form.
func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *UserService) ListUsers(ctx context.Context) ([]*model.User, error) {
	return s.store.Users().List(ctx)
}

func (s *UserService) GetUser(ctx context.Context, id string) (*model.User, error) {
	return s.store.Users().GetByID(ctx, id)
}

// EmailExists reports whether any user already holds the address, compared
// on the normalized form.
func (s *UserService) EmailExists(ctx context.Context, email string) (bool, error) {
	u, err := s.store.Users().GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

// CreateUser rejects a duplicate email before any store mutation occurs.
func (s *UserService) CreateUser(ctx context.Context, in UserInput) (*model.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	email := normalizeEmail(in.Email)
	exists, err := s.EmailExists(ctx, email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, fmt.Errorf("%w: a user with email %q already exists", model.ErrDuplicate, email)
	}
	u := &model.User{
		Name:  strings.TrimSpace(in.Name),
		Email: email,
		Age:   in.Age,
		Bio:   in.Bio,
	}
	return s.store.Users().Create(ctx, u)
}

// UpdateUser re-checks email uniqueness only when the address changes.
func (s *UserService) UpdateUser(ctx context.Context, id string, in UserInput) (*model.User, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	cur, err := s.store.Users().GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if cur == nil {
		return nil, model.ErrNotFound
	}
	email := normalizeEmail(in.Email)
	if email != cur.Email {
		exists, err := s.EmailExists(ctx, email)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: a user with email %q already exists", model.ErrDuplicate, email)
		}
	}
	name := strings.TrimSpace(in.Name)
	p := model.UserPatch{Name: &name, Email: &email, Age: in.Age, Bio: in.Bio}
	return s.store.Users().Update(ctx, id, p)
}

func (s *UserService) DeleteUser(ctx context.Context, id string) (bool, error) {
	return s.store.Users().Delete(ctx, id)
}
