// Package engine implements the sprint and backlog lifecycle: sprint
// status transitions, sprint membership, ranked backlog ordering, burndown
// metrics and sprint completion. Persistence is delegated to the store
// interfaces in the database package.
package engine

import (
	"errors"
	"fmt"

	"github.com/akyairhashvil/sprintline/internal/database"
)

// Kind classifies an engine error for the presentation layer.
type Kind int

const (
	KindNotFound Kind = iota + 1
	KindConflict
	KindValidation
	KindInternal
)

func (k Kind) String() string {
	switch k {
	case KindNotFound:
		return "not_found"
	case KindConflict:
		return "conflict"
	case KindValidation:
		return "validation"
	default:
		return "internal"
	}
}

// Error is the engine's error type. Every error leaving a service call is
// one of these; KindOf tells callers which client-facing status applies.
type Error struct {
	Kind Kind
	Msg  string
	Err  error
}

func (e *Error) Error() string {
	if e.Err != nil && e.Msg != "" {
		return fmt.Sprintf("%s: %v", e.Msg, e.Err)
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	return e.Msg
}

func (e *Error) Unwrap() error { return e.Err }

func notFoundf(format string, args ...interface{}) error {
	return &Error{Kind: KindNotFound, Msg: fmt.Sprintf(format, args...)}
}

func conflictf(format string, args ...interface{}) error {
	return &Error{Kind: KindConflict, Msg: fmt.Sprintf(format, args...)}
}

func validationf(format string, args ...interface{}) error {
	return &Error{Kind: KindValidation, Msg: fmt.Sprintf(format, args...)}
}

// storeErr lifts a store error into an engine error, mapping the store
// sentinels onto kinds. Anything unrecognized is internal.
func storeErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, database.ErrNotFound):
		return &Error{Kind: KindNotFound, Err: err}
	case errors.Is(err, database.ErrActiveSprintConflict):
		return &Error{Kind: KindConflict, Err: err}
	case errors.Is(err, database.ErrSprintHasMembers):
		return &Error{Kind: KindConflict, Err: err}
	default:
		return &Error{Kind: KindInternal, Err: err}
	}
}

// KindOf reports the kind of an engine error, or KindInternal for anything
// else.
func KindOf(err error) Kind {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind
	}
	return KindInternal
}
