package core

import "database/sql"

// Row is the capability a record type implements to map one result row to
// itself. A type declares the columns it expects and knows how to populate
// its fields from the current row of a result set.
//
// Columns and ScanRow must agree on order: Columns returns names in the
// order ScanRow reads values out of the row. Keeping the two in sync is the
// implementer's obligation; the library only checks the statement shape
// against Columns advisorily.
type Row interface {
	// Columns returns the expected column names, in scan order.
	Columns() []string

	// ScanRow populates the receiver from the current row of rs.
	// It must not advance rs.
	ScanRow(rs *sql.Rows) error
}

// Ptr constrains a type parameter to a pointer to T that implements Row.
// It lets generic functions obtain the column list of a record type without
// a caller-supplied value:
//
//	cols := PT(new(T)).Columns()
type Ptr[T any] interface {
	Row
	*T
}
