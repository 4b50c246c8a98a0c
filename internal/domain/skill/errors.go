package skill

import (
	"errors"
	"fmt"
)

var (
	ErrValidation    = errors.New("invalid skill data")
	ErrDuplicateName = errors.New("skill name already exists")
	ErrNotFound      = errors.New("skill not found")
	ErrPersistence   = errors.New("skill store failure")
)

// Error classifies a failure by Kind and carries the message shown to API
// clients as "details".
type Error struct {
	Kind   error
	Detail string
	Err    error
}

func (e *Error) Error() string {
	if e == nil {
		return ""
	}
	if e.Detail != "" {
		return e.Detail
	}
	if e.Err != nil {
		return e.Err.Error()
	}
	if e.Kind != nil {
		return e.Kind.Error()
	}
	return "unknown skill error"
}

func (e *Error) Unwrap() []error {
	if e == nil {
		return nil
	}
	out := make([]error, 0, 2)
	if e.Kind != nil {
		out = append(out, e.Kind)
	}
	if e.Err != nil {
		out = append(out, e.Err)
	}
	return out
}

func ValidationError(format string, args ...any) error {
	return &Error{Kind: ErrValidation, Detail: fmt.Sprintf(format, args...)}
}

func DuplicateNameError(name string) error {
	return &Error{Kind: ErrDuplicateName, Detail: fmt.Sprintf("Skill with name '%s' already exists", name)}
}

func NotFoundError(id int64) error {
	return &Error{Kind: ErrNotFound, Detail: fmt.Sprintf("Skill with ID %d not found", id)}
}

// PersistenceError wraps a store failure. Errors that are already classified
// pass through unchanged.
func PersistenceError(err error) error {
	if err == nil {
		return nil
	}
	var se *Error
	if errors.As(err, &se) {
		return err
	}
	return &Error{Kind: ErrPersistence, Err: err}
}
