// Package form stages edits to exactly one record, new or existing, and
// validates input before any store call is made.
package form

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// State is the session's position in the edit lifecycle.
type State int

const (
	// StateEmpty: no record loaded, fields at defaults.
	StateEmpty State = iota
	// StateEditing: fields populated, submit allowed.
	StateEditing
	// StateSubmitting: a store call is outstanding; further submits are
	// rejected until it resolves.
	StateSubmitting
)

func (s State) String() string {
	switch s {
	case StateEmpty:
		return "empty"
	case StateEditing:
		return "editing"
	case StateSubmitting:
		return "submitting"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

var (
	// ErrSubmitPending is returned when Submit is called while a prior
	// submission is still outstanding.
	ErrSubmitPending = errors.New("submission already in progress")

	// ErrNotEditing is returned when Submit is called with no staged record.
	ErrNotEditing = errors.New("no record is being edited")
)

// Session drives the Empty -> Editing -> Submitting -> Empty lifecycle for
// one record. In is the draft payload the form stages; Validate runs before
// submission and a failure keeps the session in Editing without touching the
// store. Create and Update perform the actual store call; Update receives the
// identifier the session was seeded with.
type Session[In any] struct {
	Validate func(In) error
	Create   func(context.Context, In) error
	Update   func(ctx context.Context, id string, in In) error

	mu        sync.Mutex
	state     State
	editingID string
	fields    In
}

// New returns a Session in the Empty state.
func New[In any](validate func(In) error, create func(context.Context, In) error, update func(context.Context, string, In) error) *Session[In] {
	return &Session[In]{Validate: validate, Create: create, Update: update}
}

// State reports the current lifecycle state.
func (s *Session[In]) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// EditingID returns the identifier of the record being edited, or "" when
// the session stages a new record.
func (s *Session[In]) EditingID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.editingID
}

// Begin stages a new record with the given defaults.
func (s *Session[In]) Begin(defaults In) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return
	}
	s.state = StateEditing
	s.editingID = ""
	s.fields = defaults
}

// BeginEdit stages an existing record's fields for editing.
func (s *Session[In]) BeginEdit(id string, fields In) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return
	}
	s.state = StateEditing
	s.editingID = id
	s.fields = fields
}

// SetFields replaces the staged fields. Ignored unless the session is
// Editing.
func (s *Session[In]) SetFields(fields In) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state != StateEditing {
		return
	}
	s.fields = fields
}

// Fields returns the staged draft.
func (s *Session[In]) Fields() In {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fields
}

// Reset abandons the staged record and returns to Empty. Ignored while a
// submission is outstanding.
func (s *Session[In]) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.state == StateSubmitting {
		return
	}
	var zero In
	s.state = StateEmpty
	s.editingID = ""
	s.fields = zero
}

// Submit validates the staged fields and delegates to Create or Update.
// Validation failures keep the session in Editing and never reach the store.
// Store failures also return the session to Editing so the user can retry;
// success returns it to Empty.
func (s *Session[In]) Submit(ctx context.Context) error {
	s.mu.Lock()
	switch s.state {
	case StateSubmitting:
		s.mu.Unlock()
		return ErrSubmitPending
	case StateEmpty:
		s.mu.Unlock()
		return ErrNotEditing
	}
	fields := s.fields
	id := s.editingID
	if s.Validate != nil {
		if err := s.Validate(fields); err != nil {
			s.mu.Unlock()
			return err
		}
	}
	s.state = StateSubmitting
	s.mu.Unlock()

	var err error
	if id == "" {
		err = s.Create(ctx, fields)
	} else {
		err = s.Update(ctx, id, fields)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err != nil {
		s.state = StateEditing
		return err
	}
	var zero In
	s.state = StateEmpty
	s.editingID = ""
	s.fields = zero
	return nil
}
