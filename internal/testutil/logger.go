// Package testutil provides structured-logging helpers for tests.
package testutil

import (
	"context"
	"log/slog"
	"sync"
	"testing"
)

// NewTestLogger returns a logger that writes to t.Log().
// Logs only appear on test failure or when running with -v.
func NewTestLogger(t testing.TB) *slog.Logger {
	t.Helper()
	return slog.New(slog.NewTextHandler(testWriter{t}, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
}

type testWriter struct {
	t testing.TB
}

func (w testWriter) Write(p []byte) (n int, err error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// Recorder is a slog.Handler that captures every record it handles, so
// tests can assert on diagnostics that are advisory rather than returned.
type Recorder struct {
	mu      sync.Mutex
	attrs   []slog.Attr
	records *[]RecordedLog
}

// RecordedLog is one captured log record with its resolved attributes.
type RecordedLog struct {
	Level   slog.Level
	Message string
	Attrs   map[string]slog.Value
}

// NewRecorder returns a logger backed by a Recorder plus the Recorder
// itself for inspection.
func NewRecorder() (*slog.Logger, *Recorder) {
	r := &Recorder{records: new([]RecordedLog)}
	return slog.New(r), r
}

// Records returns the captured records in emission order.
func (r *Recorder) Records() []RecordedLog {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]RecordedLog, len(*r.records))
	copy(out, *r.records)
	return out
}

func (r *Recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *Recorder) Handle(_ context.Context, rec slog.Record) error {
	entry := RecordedLog{
		Level:   rec.Level,
		Message: rec.Message,
		Attrs:   make(map[string]slog.Value),
	}
	for _, a := range r.attrs {
		entry.Attrs[a.Key] = a.Value
	}
	rec.Attrs(func(a slog.Attr) bool {
		entry.Attrs[a.Key] = a.Value
		return true
	})

	r.mu.Lock()
	defer r.mu.Unlock()
	*r.records = append(*r.records, entry)
	return nil
}

func (r *Recorder) WithAttrs(attrs []slog.Attr) slog.Handler {
	return &Recorder{
		attrs:   append(append([]slog.Attr{}, r.attrs...), attrs...),
		records: r.records,
	}
}

func (r *Recorder) WithGroup(string) slog.Handler { return r }
