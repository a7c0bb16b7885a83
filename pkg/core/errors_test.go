package core

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatementErrorUnwrap(t *testing.T) {
	cause := errors.New("no such table: fruits")
	err := &StatementError{SQL: "SELECT id FROM fruits ", Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), `"SELECT id FROM fruits "`)

	bare := &StatementError{Err: cause}
	assert.Equal(t, "statement failed: no such table: fruits", bare.Error())
}

func TestRowErrorUnwrap(t *testing.T) {
	cause := errors.New("converting NULL to string is unsupported")
	err := &RowError{Index: 1, Err: cause}

	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "row 1: converting NULL to string is unsupported", err.Error())
}
