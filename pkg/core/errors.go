package core

import (
	"errors"
	"fmt"
)

// SQL composition faults. Normal operation never hits these; they surface
// caller bugs such as an unset table name or an empty column list.
var (
	ErrEmptyTable = errors.New("select query has no table name")
	ErrNoColumns  = errors.New("select query has no columns")
)

// StatementError wraps a statement-level driver failure: invalid SQL, a
// missing table or column, or a connection fault. It aborts the whole
// operation it occurred in.
type StatementError struct {
	// SQL is the statement text, when known at the failure site.
	SQL string
	Err error
}

func (e *StatementError) Error() string {
	if e.SQL == "" {
		return fmt.Sprintf("statement failed: %v", e.Err)
	}
	return fmt.Sprintf("statement %q failed: %v", e.SQL, e.Err)
}

func (e *StatementError) Unwrap() error { return e.Err }

// RowError wraps a row-level parse failure, such as a type coercion error
// or an unexpected NULL. Index is the zero-based fetch position of the row
// that failed.
type RowError struct {
	Index int
	Err   error
}

func (e *RowError) Error() string {
	return fmt.Sprintf("row %d: %v", e.Index, e.Err)
}

func (e *RowError) Unwrap() error { return e.Err }
