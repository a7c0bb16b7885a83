// Package query builds simple SELECT statements and executes them against a
// connection, mapping result rows through the core.Row capability.
package query

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/sealion-db/sealion/pkg/conn"
	"github.com/sealion-db/sealion/pkg/core"
	"github.com/sealion-db/sealion/pkg/row"
)

// SelectQuery describes an intended SELECT statement: a table name and an
// optional raw WHERE fragment.
//
// The WHERE fragment is spliced into the SQL text as-is; the library does
// not escape it. Never interpolate untrusted input into the fragment —
// bind untrusted values through the args of Execute instead, which go
// through the driver's parameter binding.
type SelectQuery struct {
	table string
	where string
}

// Select starts a query against table.
func Select(table string) *SelectQuery {
	return &SelectQuery{table: table}
}

// Where sets the raw WHERE fragment and returns the query for chaining.
func (q *SelectQuery) Where(clause string) *SelectQuery {
	q.where = clause
	return q
}

// BuildSQL renders the SQL text for the given columns:
//
//	SELECT {columns joined ", "} FROM {table} [WHERE {fragment}]
//
// The output is a pure function of the query's state and the column list.
// It fails only on composition faults: core.ErrEmptyTable when the table
// name is unset and core.ErrNoColumns when the column list is empty.
func (q *SelectQuery) BuildSQL(columns []string) (string, error) {
	if q.table == "" {
		return "", core.ErrEmptyTable
	}
	if len(columns) == 0 {
		return "", core.ErrNoColumns
	}

	var b strings.Builder
	fmt.Fprintf(&b, "SELECT %s FROM %s ", strings.Join(columns, ", "), q.table)
	if q.where != "" {
		b.WriteString("WHERE ")
		b.WriteString(q.where)
	}
	return b.String(), nil
}

// Prepare builds the SQL text and returns the connection's cached prepared
// statement for it. The connection owns the statement and its cache; the
// caller only borrows the statement.
func (q *SelectQuery) Prepare(ctx context.Context, c *conn.Conn, columns []string) (*sql.Stmt, error) {
	sqlText, err := q.BuildSQL(columns)
	if err != nil {
		return nil, err
	}
	stmt, err := c.PrepareCached(ctx, sqlText)
	if err != nil {
		return nil, &core.StatementError{SQL: sqlText, Err: err}
	}
	return stmt, nil
}

// Execute prepares the statement using the record type's declared columns,
// binds args, and collects every row in fetch order. It fails fast: the
// first row-level parse error (returned as a core.RowError) or any
// statement-level error aborts the call and discards the partial prefix.
func Execute[T any, PT core.Ptr[T]](ctx context.Context, c *conn.Conn, q *SelectQuery, args ...any) ([]T, error) {
	it, err := open[T, PT](ctx, c, q, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = it.Close() }()

	var out []T
	for it.Next() {
		if scanErr := it.ScanErr(); scanErr != nil {
			return nil, &core.RowError{Index: len(out), Err: scanErr}
		}
		out = append(out, it.Record())
	}
	if err := it.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// ExecuteCollectErrors is Execute except that row-level parse failures do
// not abort: parsed records and per-row errors are partitioned, each slice
// in fetch order. Only a statement-level failure returns a non-nil error,
// and then both slices are nil.
func ExecuteCollectErrors[T any, PT core.Ptr[T]](ctx context.Context, c *conn.Conn, q *SelectQuery, args ...any) ([]T, []error, error) {
	it, err := open[T, PT](ctx, c, q, args...)
	if err != nil {
		return nil, nil, err
	}
	defer func() { _ = it.Close() }()

	var (
		records []T
		rowErrs []error
	)
	for idx := 0; it.Next(); idx++ {
		if scanErr := it.ScanErr(); scanErr != nil {
			rowErrs = append(rowErrs, &core.RowError{Index: idx, Err: scanErr})
			continue
		}
		records = append(records, it.Record())
	}
	if err := it.Err(); err != nil {
		return nil, nil, err
	}
	return records, rowErrs, nil
}

// open prepares the statement for the record type's columns and starts the
// lazy row iterator over it.
func open[T any, PT core.Ptr[T]](ctx context.Context, c *conn.Conn, q *SelectQuery, args ...any) (*row.Rows[T, PT], error) {
	stmt, err := q.Prepare(ctx, c, PT(new(T)).Columns())
	if err != nil {
		return nil, err
	}
	return row.FromStatement[T, PT](ctx, stmt, c.Logger(), args...)
}
