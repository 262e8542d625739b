package database

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidRun = errors.New("invalid run")
	ErrClosed     = errors.New("database is closed")
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

func wrapRunErr(op string, id int64, err error) error {
	if err == nil {
		return nil
	}
	return &OpError{Op: op, Resource: "run", ID: id, Err: err}
}
