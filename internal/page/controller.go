// Package page sequences the loading, editing, confirmation and error
// lifecycle for one entity's admin screen. It composes a form.Session with
// the entity's service and keeps a local copy of the collection that is
// reconciled through store events.
package page

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/tonearm/tonearm/internal/form"
	"github.com/tonearm/tonearm/internal/store"
)

// ConfirmRequest asks the presentation layer to approve a destructive
// operation. Exactly one of Approve or Decline must be called.
type ConfirmRequest struct {
	Entity store.Entity
	ID     string
	reply  chan bool
}

// Approve allows the operation to proceed.
func (r ConfirmRequest) Approve() { r.reply <- true }

// Decline aborts the operation.
func (r ConfirmRequest) Decline() { r.reply <- false }

// View is an immutable snapshot of the controller's state for rendering.
type View[T any] struct {
	Records   []T
	Loading   bool
	Err       string
	Notice    string
	FormOpen  bool
	FormState form.State
	EditingID string
}

// Controller owns one admin screen. T is the entity's record type
// (a pointer), In the form's draft payload.
type Controller[T any, In any] struct {
	log    zerolog.Logger
	entity store.Entity

	load     func(context.Context) ([]T, error)
	remove   func(context.Context, string) (bool, error)
	idOf     func(T) string
	seedForm func(T) In
	defaults In

	form     *form.Session[In]
	confirms chan ConfirmRequest

	mu      sync.Mutex
	records []T
	loading bool
	errMsg  string
	notice  string
}

// Config wires a Controller.
type Config[T any, In any] struct {
	Entity   store.Entity
	Load     func(context.Context) ([]T, error)
	Delete   func(context.Context, string) (bool, error)
	IDOf     func(T) string
	SeedForm func(T) In
	Defaults In
	Form     *form.Session[In]
}

// NewController builds a controller from cfg.
func NewController[T any, In any](log zerolog.Logger, cfg Config[T, In]) *Controller[T, In] {
	return &Controller[T, In]{
		log:      log.With().Str("entity", string(cfg.Entity)).Logger(),
		entity:   cfg.Entity,
		load:     cfg.Load,
		remove:   cfg.Delete,
		idOf:     cfg.IDOf,
		seedForm: cfg.SeedForm,
		defaults: cfg.Defaults,
		form:     cfg.Form,
		confirms: make(chan ConfirmRequest, 1),
	}
}

// Confirmations exposes the channel the presentation layer must service to
// approve or decline destructive operations.
func (c *Controller[T, In]) Confirmations() <-chan ConfirmRequest { return c.confirms }

// Form exposes the underlying edit session.
func (c *Controller[T, In]) Form() *form.Session[In] { return c.form }

// Activate loads the collection. A load failure records a message and keeps
// whatever collection state was already present.
func (c *Controller[T, In]) Activate(ctx context.Context) error {
	c.mu.Lock()
	c.loading = true
	c.errMsg = ""
	c.mu.Unlock()

	recs, err := c.load(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.loading = false
	if err != nil {
		c.errMsg = "failed to load records: " + err.Error()
		c.log.Error().Err(err).Msg("load failed")
		return err
	}
	c.records = recs
	return nil
}

// New opens the form for a fresh record.
func (c *Controller[T, In]) New() {
	c.mu.Lock()
	c.errMsg = ""
	c.notice = ""
	c.mu.Unlock()
	c.form.Begin(c.defaults)
}

// Edit opens the form seeded with the identified record from local state.
func (c *Controller[T, In]) Edit(id string) {
	c.mu.Lock()
	var target T
	found := false
	for _, r := range c.records {
		if c.idOf(r) == id {
			target = r
			found = true
			break
		}
	}
	if !found {
		c.errMsg = "record not found: " + id
		c.mu.Unlock()
		return
	}
	c.errMsg = ""
	c.notice = ""
	c.mu.Unlock()
	c.form.BeginEdit(id, c.seedForm(target))
}

// Cancel abandons the open form.
func (c *Controller[T, In]) Cancel() { c.form.Reset() }

// SetFields replaces the staged form draft.
func (c *Controller[T, In]) SetFields(in In) { c.form.SetFields(in) }

// Submit drives the form's submission. Validation errors are returned to the
// caller without touching page state; store failures are also recorded as
// the page's error message. The collection itself is reconciled through
// store events, so nothing is merged here.
func (c *Controller[T, In]) Submit(ctx context.Context) error {
	editing := c.form.EditingID()
	err := c.form.Submit(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	switch {
	case err == nil:
		if editing == "" {
			c.notice = "record created"
		} else {
			c.notice = "record updated"
		}
		c.errMsg = ""
	case err == form.ErrSubmitPending || err == form.ErrNotEditing:
		// Lifecycle misuse, not a store failure; leave page state alone.
	default:
		c.errMsg = err.Error()
	}
	return err
}

// RequestDelete runs the asynchronous confirmation exchange and, on an
// affirmative reply, issues the delete. A declined request is a no-op.
func (c *Controller[T, In]) RequestDelete(ctx context.Context, id string) error {
	req := ConfirmRequest{Entity: c.entity, ID: id, reply: make(chan bool, 1)}
	select {
	case c.confirms <- req:
	case <-ctx.Done():
		return ctx.Err()
	}
	select {
	case ok := <-req.reply:
		if !ok {
			return nil
		}
	case <-ctx.Done():
		return ctx.Err()
	}

	removed, err := c.remove(ctx, id)
	c.mu.Lock()
	defer c.mu.Unlock()
	if err != nil {
		c.errMsg = "failed to delete record: " + err.Error()
		c.log.Error().Err(err).Str("id", id).Msg("delete failed")
		return err
	}
	if removed {
		c.notice = "record deleted"
	} else {
		c.errMsg = "record not found: " + id
	}
	return nil
}

// HandleEvent reconciles the local collection with a store event. Register
// it with notify.Store.Subscribe. Events for other entities are ignored.
func (c *Controller[T, In]) HandleEvent(ev store.Event) {
	if ev.Entity != c.entity {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	switch ev.Op {
	case store.OpCreated:
		if rec, ok := ev.Record.(T); ok {
			c.records = append(c.records, rec)
		}
	case store.OpUpdated:
		rec, ok := ev.Record.(T)
		if !ok {
			return
		}
		for i, r := range c.records {
			if c.idOf(r) == ev.ID {
				c.records[i] = rec
				return
			}
		}
		c.records = append(c.records, rec)
	case store.OpDeleted:
		for i, r := range c.records {
			if c.idOf(r) == ev.ID {
				c.records = append(c.records[:i], c.records[i+1:]...)
				return
			}
		}
	}
}

// ClearError dismisses the error banner.
func (c *Controller[T, In]) ClearError() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.errMsg = ""
}

// Snapshot returns the current render state.
func (c *Controller[T, In]) Snapshot() View[T] {
	c.mu.Lock()
	defer c.mu.Unlock()
	recs := make([]T, len(c.records))
	copy(recs, c.records)
	st := c.form.State()
	return View[T]{
		Records:   recs,
		Loading:   c.loading,
		Err:       c.errMsg,
		Notice:    c.notice,
		FormOpen:  st != form.StateEmpty,
		FormState: st,
		EditingID: c.form.EditingID(),
	}
}
