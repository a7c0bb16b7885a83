package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sealion-db/sealion/pkg/conn"
	"github.com/sealion-db/sealion/pkg/query"
)

// SelectOptions holds options for the select command.
type SelectOptions struct {
	Columns []string
	Where   string
}

// NewSelectCommand creates the select command.
func NewSelectCommand() *cobra.Command {
	opts := &SelectOptions{}

	cmd := &cobra.Command{
		Use:   "select <table>",
		Short: "Run a SELECT against the database",
		Long: `Build and run a SELECT statement against the configured SQLite database.

The statement is built by the same query builder the library exposes:
columns joined with ", ", the table name, and an optional WHERE fragment
appended verbatim. The fragment is raw SQL; do not splice untrusted input
into it.`,
		Example: `  # All ids and names from the fruits table
  sealion select fruits --columns id,name

  # With a WHERE fragment
  sealion select fruits --columns id,name,optional --where "id >= 1"

  # JSON output
  sealion select fruits --columns id,name --format json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSelect(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringSliceVarP(&opts.Columns, "columns", "c", nil, "Columns to select (required)")
	cmd.Flags().StringVarP(&opts.Where, "where", "w", "", "Raw WHERE fragment")
	_ = cmd.MarkFlagRequired("columns")

	return cmd
}

func runSelect(cmd *cobra.Command, tableName string, opts *SelectOptions) error {
	cfg := GetConfig(cmd.Context())
	logger := GetLogger(cmd.Context())

	if _, err := os.Stat(cfg.Database); os.IsNotExist(err) {
		return fmt.Errorf("database not found at %s", cfg.Database)
	}

	c, err := conn.Open(cfg.Database, conn.WithLogger(logger))
	if err != nil {
		return err
	}
	defer func() { _ = c.Close() }()

	q := query.Select(tableName)
	if opts.Where != "" {
		q.Where(opts.Where)
	}

	stmt, err := q.Prepare(cmd.Context(), c, opts.Columns)
	if err != nil {
		return err
	}

	rs, err := stmt.QueryContext(cmd.Context())
	if err != nil {
		return err
	}
	defer func() { _ = rs.Close() }()

	return renderResults(cmd.OutOrStdout(), rs, cfg.Format)
}
