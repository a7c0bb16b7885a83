package row_test

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealion-db/sealion/internal/testutil"
	"github.com/sealion-db/sealion/pkg/row"
)

func TestCheckColumns(t *testing.T) {
	tests := []struct {
		name         string
		actual       []string
		expected     []string
		wantMessages []string
		wantColumns  string
	}{
		{
			// The historical predicate reports pairs whose names match,
			// so a well-formed statement produces a name warning listing
			// every column. Pinned on purpose; see the TODO in CheckColumns.
			name:         "identical lists warn on every pair",
			actual:       []string{"id", "name"},
			expected:     []string{"id", "name"},
			wantMessages: []string{"column name mismatch"},
			wantColumns:  "id != id, name != name",
		},
		{
			name:         "comparison is case-insensitive",
			actual:       []string{"ID"},
			expected:     []string{"id"},
			wantMessages: []string{"column name mismatch"},
			wantColumns:  "ID != id",
		},
		{
			name:         "fully divergent names stay silent",
			actual:       []string{"a", "b"},
			expected:     []string{"x", "y"},
			wantMessages: nil,
		},
		{
			name:         "count mismatch with divergent names",
			actual:       []string{"a", "b"},
			expected:     []string{"x", "y", "z"},
			wantMessages: []string{"column count mismatch"},
		},
		{
			name:         "count mismatch with matching prefix",
			actual:       []string{"id", "name"},
			expected:     []string{"id", "name", "optional"},
			wantMessages: []string{"column count mismatch", "column name mismatch"},
			wantColumns:  "id != id, name != name",
		},
		{
			name:         "empty against empty",
			actual:       nil,
			expected:     nil,
			wantMessages: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, rec := testutil.NewRecorder()

			row.CheckColumns(tt.actual, tt.expected, logger)

			records := rec.Records()
			require.Len(t, records, len(tt.wantMessages))
			for i, msg := range tt.wantMessages {
				assert.Equal(t, slog.LevelWarn, records[i].Level)
				assert.Equal(t, msg, records[i].Message)
				assert.Equal(t, "parsing", records[i].Attrs["subsystem"].String())
			}
			if tt.wantColumns != "" {
				last := records[len(records)-1]
				assert.Equal(t, tt.wantColumns, last.Attrs["columns"].String())
			}
		})
	}
}

func TestCheckColumnsCountAttrs(t *testing.T) {
	logger, rec := testutil.NewRecorder()

	row.CheckColumns([]string{"a"}, []string{"x", "y", "z"}, logger)

	records := rec.Records()
	require.Len(t, records, 1)
	assert.Equal(t, int64(3), records[0].Attrs["expected"].Int64())
	assert.Equal(t, int64(1), records[0].Attrs["actual"].Int64())
}

func TestCheckColumnsNilLogger(t *testing.T) {
	assert.NotPanics(t, func() {
		row.CheckColumns([]string{"id"}, []string{"id"}, nil)
	})
}
