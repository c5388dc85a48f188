package model

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned by update/delete style operations that name a
	// missing identifier. Single-record lookups report absence as (nil, nil)
	// instead.
	ErrNotFound = errors.New("not found")

	// ErrValidation marks client-detected bad input. It is resolved inside
	// the form layer and never reaches a store.
	ErrValidation = errors.New("validation error")

	// ErrDuplicate marks an application-level uniqueness violation detected
	// by a lookup before create/update.
	ErrDuplicate = errors.New("duplicate")
)

// RemoteError carries the machine-readable reason code and human-readable
// message returned by the hosted backend on a failed call.
type RemoteError struct {
	Status  int
	Code    string
	Message string
}

func (e *RemoteError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("remote error %d (%s): %s", e.Status, e.Code, e.Message)
	}
	return fmt.Sprintf("remote error %d: %s", e.Status, e.Message)
}

// IsRemote reports whether err is a RemoteError.
func IsRemote(err error) bool {
	var re *RemoteError
	return errors.As(err, &re)
}
