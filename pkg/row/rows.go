package row

import (
	"context"
	"database/sql"
	"iter"
	"log/slog"

	"github.com/sealion-db/sealion/pkg/core"
)

// Rows lazily yields parsed records from an executed statement. It is
// single-pass and forward-only: each call to Next fetches exactly one row
// from the driver, and an exhausted iterator cannot be restarted.
//
// Rows borrows the statement's result set. The statement must outlive the
// iterator, and the iterator must be closed or fully consumed before the
// statement is queried again with different bindings. Go cannot enforce
// this lifetime mechanically; violating it leaves the driver's cursor in an
// undefined position.
type Rows[T any, PT core.Ptr[T]] struct {
	rs      *sql.Rows
	cur     T
	scanErr error
	done    bool
}

// FromStatement executes a prepared statement with the given bind arguments
// and returns a lazy iterator of parsed records. The statement is expected
// to be a SELECT of some kind.
//
// Before returning, the result shape is checked against the record type's
// declared columns via CheckColumns. The check is diagnostic only and never
// fails the call. A statement-level failure is returned as a
// core.StatementError.
func FromStatement[T any, PT core.Ptr[T]](ctx context.Context, stmt *sql.Stmt, logger *slog.Logger, args ...any) (*Rows[T, PT], error) {
	rs, err := stmt.QueryContext(ctx, args...)
	if err != nil {
		return nil, &core.StatementError{Err: err}
	}
	cols, err := rs.Columns()
	if err != nil {
		_ = rs.Close()
		return nil, &core.StatementError{Err: err}
	}
	CheckColumns(cols, PT(new(T)).Columns(), logger)
	return &Rows[T, PT]{rs: rs}, nil
}

// Next advances to the next row and parses it into a fresh record. It
// returns false when the result set is exhausted or a statement-level error
// occurs; check Err afterwards. A row-level parse failure does not stop
// iteration — it is reported by ScanErr for that element only.
func (it *Rows[T, PT]) Next() bool {
	if it.done {
		return false
	}
	if !it.rs.Next() {
		it.done = true
		return false
	}
	var rec T
	it.scanErr = PT(&rec).ScanRow(it.rs)
	it.cur = rec
	return true
}

// Record returns the record parsed by the last call to Next. Its contents
// are unspecified when ScanErr is non-nil.
func (it *Rows[T, PT]) Record() T { return it.cur }

// ScanErr returns the parse error for the current element, if any.
func (it *Rows[T, PT]) ScanErr() error { return it.scanErr }

// Err returns the statement-level error that terminated iteration, if any.
func (it *Rows[T, PT]) Err() error {
	if err := it.rs.Err(); err != nil {
		return &core.StatementError{Err: err}
	}
	return nil
}

// Close releases the underlying result set. It is safe to call more than
// once and after exhaustion.
func (it *Rows[T, PT]) Close() error {
	it.done = true
	return it.rs.Close()
}

// All returns a range-over-func view of the remaining elements. Each
// iteration yields the parsed record and its row-level parse error. A
// statement-level failure ends the sequence; check Err after the loop.
func (it *Rows[T, PT]) All() iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for it.Next() {
			if !yield(it.cur, it.scanErr) {
				return
			}
		}
	}
}
