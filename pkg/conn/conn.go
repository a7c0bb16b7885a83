// Package conn wraps a database/sql handle to an embedded SQLite database
// and owns the prepared-statement cache keyed by exact SQL text.
package conn

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	// Pure-Go sqlite driver.
	_ "modernc.org/sqlite"
)

// ErrClosed is returned when a statement is requested after Close.
var ErrClosed = errors.New("connection closed")

// Conn wraps an open database handle. It caches prepared statements by
// their exact SQL text; the cache lives until Close, with no eviction.
// Callers borrow cached statements, they never own them.
type Conn struct {
	db     *sql.DB
	logger *slog.Logger

	mu    sync.Mutex
	stmts map[string]*sql.Stmt
}

// Option configures a Conn.
type Option func(*Conn)

// WithLogger sets the logger used for diagnostics, such as column mismatch
// warnings. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Conn) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// Open opens a SQLite database at path. Use ":memory:" for an in-memory
// database.
func Open(path string, opts ...Option) (*Conn, error) {
	dsn := path
	if path != ":memory:" {
		dsn = fmt.Sprintf("file:%s?_pragma=foreign_keys(1)", path)
	}

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}
	if path == ":memory:" {
		// Each pooled connection would otherwise see its own empty
		// in-memory database.
		db.SetMaxOpenConns(1)
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping sqlite database: %w", err)
	}

	return New(db, opts...), nil
}

// New wraps an already-open database handle. The Conn takes over the
// handle's lifetime: Close closes it.
func New(db *sql.DB, opts ...Option) *Conn {
	c := &Conn{
		db:     db,
		logger: slog.New(slog.DiscardHandler),
		stmts:  make(map[string]*sql.Stmt),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DB returns the underlying handle.
func (c *Conn) DB() *sql.DB { return c.db }

// Logger returns the diagnostic logger.
func (c *Conn) Logger() *slog.Logger { return c.logger }

// PrepareCached returns the prepared statement for sqlText, preparing it on
// first use. The same *sql.Stmt is returned for every later call with the
// same text. Errors from the driver are returned unwrapped.
func (c *Conn) PrepareCached(ctx context.Context, sqlText string) (*sql.Stmt, error) {
	c.mu.Lock()
	if c.stmts == nil {
		c.mu.Unlock()
		return nil, ErrClosed
	}
	stmt, ok := c.stmts[sqlText]
	c.mu.Unlock()
	if ok {
		return stmt, nil
	}

	stmt, err := c.db.PrepareContext(ctx, sqlText)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.stmts == nil {
		_ = stmt.Close()
		return nil, ErrClosed
	}
	if cached, ok := c.stmts[sqlText]; ok {
		// Lost a race with another prepare of the same text.
		_ = stmt.Close()
		return cached, nil
	}
	c.logger.Debug("caching prepared statement", slog.String("sql", sqlText))
	c.stmts[sqlText] = stmt
	return stmt, nil
}

// Exec executes a SQL statement that doesn't return rows.
func (c *Conn) Exec(ctx context.Context, sqlText string, args ...any) error {
	if c.db == nil {
		return fmt.Errorf("database connection not established")
	}
	if _, err := c.db.ExecContext(ctx, sqlText, args...); err != nil {
		return fmt.Errorf("failed to execute SQL: %w", err)
	}
	return nil
}

// Close closes all cached statements and the database connection.
func (c *Conn) Close() error {
	if c.db == nil {
		return nil
	}
	c.logger.Debug("closing database connection")

	c.mu.Lock()
	for _, stmt := range c.stmts {
		_ = stmt.Close()
	}
	c.stmts = nil
	c.mu.Unlock()

	return c.db.Close()
}
