package cli_test

import (
	"bytes"
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sealion-db/sealion/internal/cli"
	"github.com/sealion-db/sealion/pkg/conn"
)

func seedDatabase(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fruits.db")
	c, err := conn.Open(path)
	require.NoError(t, err)

	ctx := context.Background()
	require.NoError(t, c.Exec(ctx,
		`CREATE TABLE fruits (id INTEGER PRIMARY KEY, name TEXT NOT NULL, optional TEXT)`))
	require.NoError(t, c.Exec(ctx,
		`INSERT INTO fruits (id, name, optional) VALUES
			(0, 'Orange', 'Strawberry'),
			(1, 'Apple', NULL),
			(2, 'Peach', 'Raspberry')`))
	require.NoError(t, c.Close())
	return path
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := cli.NewRootCmd()
	out := new(bytes.Buffer)
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestSelectCommandCSV(t *testing.T) {
	dbPath := seedDatabase(t)

	out, err := runCommand(t,
		"select", "fruits",
		"--columns", "id,name,optional",
		"--database", dbPath,
		"--format", "csv")
	require.NoError(t, err)

	assert.Contains(t, out, "id,name,optional")
	assert.Contains(t, out, "0,Orange,Strawberry")
	assert.Contains(t, out, "1,Apple,NULL")
	assert.Contains(t, out, "2,Peach,Raspberry")
}

func TestSelectCommandWhere(t *testing.T) {
	dbPath := seedDatabase(t)

	out, err := runCommand(t,
		"select", "fruits",
		"--columns", "name",
		"--where", "id >= 1",
		"--database", dbPath,
		"--format", "csv")
	require.NoError(t, err)

	assert.NotContains(t, out, "Orange")
	assert.Contains(t, out, "Apple")
	assert.Contains(t, out, "Peach")
}

func TestSelectCommandMissingDatabase(t *testing.T) {
	_, err := runCommand(t,
		"select", "fruits",
		"--columns", "id",
		"--database", filepath.Join(t.TempDir(), "absent.db"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database not found")
}

func TestSelectCommandUnknownTable(t *testing.T) {
	dbPath := seedDatabase(t)

	_, err := runCommand(t,
		"select", "no_such_table",
		"--columns", "id",
		"--database", dbPath)
	require.Error(t, err)
}
