package commands

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
)

// renderResults drains rs and writes it to w in the requested format.
// Cell values are stringified up front so every format shares one shape.
func renderResults(w io.Writer, rs *sql.Rows, format string) error {
	cols, err := rs.Columns()
	if err != nil {
		return err
	}

	var rows [][]string
	for rs.Next() {
		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rs.Scan(ptrs...); err != nil {
			return err
		}

		cells := make([]string, len(cols))
		for i, v := range values {
			cells[i] = formatValue(v)
		}
		rows = append(rows, cells)
	}
	if err := rs.Err(); err != nil {
		return err
	}

	switch format {
	case "json":
		return renderJSON(w, cols, rows)
	case "csv":
		return renderCSV(w, cols, rows)
	default:
		return renderTable(w, cols, rows)
	}
}

func renderTable(w io.Writer, cols []string, rows [][]string) error {
	if len(rows) == 0 {
		_, _ = fmt.Fprintln(w, "(0 rows)")
		return nil
	}

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)

	header := make(table.Row, len(cols))
	for i, col := range cols {
		header[i] = col
	}
	t.AppendHeader(header)

	for _, cells := range rows {
		r := make(table.Row, len(cells))
		for i, cell := range cells {
			r[i] = cell
		}
		t.AppendRow(r)
	}

	t.Render()
	_, _ = fmt.Fprintf(w, "(%d rows)\n", len(rows))
	return nil
}

func renderJSON(w io.Writer, cols []string, rows [][]string) error {
	out := make([]map[string]string, 0, len(rows))
	for _, cells := range rows {
		m := make(map[string]string, len(cols))
		for i, col := range cols {
			m[col] = cells[i]
		}
		out = append(out, m)
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(out)
}

func renderCSV(w io.Writer, cols []string, rows [][]string) error {
	_, _ = fmt.Fprintln(w, strings.Join(cols, ","))
	for _, cells := range rows {
		escaped := make([]string, len(cells))
		for i, cell := range cells {
			escaped[i] = escapeCSV(cell)
		}
		_, _ = fmt.Fprintln(w, strings.Join(escaped, ","))
	}
	return nil
}

func escapeCSV(s string) string {
	if strings.ContainsAny(s, ",\"\n") {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return s
}

func formatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return "NULL"
	case []byte:
		return string(x)
	default:
		return fmt.Sprint(x)
	}
}
