// Package logspy captures slog records so tests can assert on diagnostics.
package logspy

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"testing"
)

// Handler is a slog.Handler that keeps every record it receives.
type Handler struct {
	mu      sync.Mutex
	records []slog.Record
}

func New() *Handler {
	return &Handler{records: make([]slog.Record, 0)}
}

// InstallDefault makes a fresh Handler the slog default for the duration of t.
// Tests using it must not run in parallel with each other.
func InstallDefault(t testing.TB) *Handler {
	t.Helper()

	spy := New()
	previous := slog.Default()
	slog.SetDefault(slog.New(spy))
	t.Cleanup(func() {
		slog.SetDefault(previous)
	})

	return spy
}

// Logger returns a logger writing into the handler.
func (h *Handler) Logger() *slog.Logger {
	return slog.New(h)
}

func (h *Handler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = append(h.records, record.Clone())

	return nil
}

func (h *Handler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// WithAttrs drops the attributes; assertions only look at record attributes.
func (h *Handler) WithAttrs(_ []slog.Attr) slog.Handler {
	return h
}

func (h *Handler) WithGroup(_ string) slog.Handler {
	return h
}

func (h *Handler) Count() int {
	h.mu.Lock()
	defer h.mu.Unlock()

	return len(h.records)
}

func (h *Handler) Reset() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.records = h.records[:0]
}

// Has reports whether a record with the level exists whose message contains substr.
func (h *Handler) Has(level slog.Level, substr string) bool {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, record := range h.records {
		if record.Level == level && strings.Contains(record.Message, substr) {
			return true
		}
	}

	return false
}

// Attr returns the value of key on the first record whose message contains substr.
func (h *Handler) Attr(substr, key string) (slog.Value, bool) {
	h.mu.Lock()
	defer h.mu.Unlock()

	for _, record := range h.records {
		if !strings.Contains(record.Message, substr) {
			continue
		}

		var (
			found slog.Value
			ok    bool
		)
		record.Attrs(func(attr slog.Attr) bool {
			if attr.Key == key {
				found, ok = attr.Value, true
				return false
			}
			return true
		})
		if ok {
			return found, true
		}
	}

	return slog.Value{}, false
}
