package database

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when the requested row does not exist.
	ErrNotFound = errors.New("not found")

	// ErrActiveSprintConflict is returned when an issue already belongs to
	// a different active sprint.
	ErrActiveSprintConflict = errors.New("issue already assigned to an active sprint")

	// ErrSprintHasMembers is returned when deleting a sprint that still
	// has membership rows.
	ErrSprintHasMembers = errors.New("sprint still has member issues")
)

type OpError struct {
	Op       string
	Resource string
	ID       int64
	Err      error
}

func (e *OpError) Error() string {
	if e == nil {
		return ""
	}
	if e.ID > 0 {
		return fmt.Sprintf("%s %s %d: %v", e.Op, e.Resource, e.ID, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Resource, e.Err)
}

func (e *OpError) Unwrap() error { return e.Err }

func wrapSprintErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "sprint", ID: id, Err: err}
}

func wrapMembershipErr(op string, sprintID int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "membership", ID: sprintID, Err: err}
}

func wrapIssueErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "issue", ID: id, Err: err}
}
