// Package journal records catalog activity as timestamped lines. Entries go
// to an injected writer and into a bounded ring that views can tail, so there
// is no file handle to manage.
package journal

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"time"
)

// Level represents the severity of a journal entry.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
)

const defaultCapacity = 256

// Journal appends timestamped lines to a writer and keeps the most recent
// entries in memory.
type Journal struct {
	mu       sync.Mutex
	sink     io.Writer
	now      func() time.Time
	entries  []string
	capacity int
}

// Option customizes a Journal during construction.
type Option func(*Journal)

// WithClock overrides the clock used for entry timestamps.
func WithClock(clock func() time.Time) Option {
	return func(j *Journal) {
		if clock != nil {
			j.now = clock
		}
	}
}

// WithCapacity bounds the in-memory ring. Values below 1 keep the default.
func WithCapacity(n int) Option {
	return func(j *Journal) {
		if n > 0 {
			j.capacity = n
		}
	}
}

// New creates a journal writing to sink. A nil sink discards output but the
// ring still records entries.
func New(sink io.Writer, opts ...Option) *Journal {
	if sink == nil {
		sink = io.Discard
	}
	j := &Journal{sink: sink, now: time.Now, capacity: defaultCapacity}
	for _, opt := range opts {
		opt(j)
	}
	return j
}

// Append writes a single entry.
func (j *Journal) Append(level Level, message string) {
	if j == nil {
		return
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	line := fmt.Sprintf("%s %-5s %s",
		j.now().UTC().Format(time.RFC3339),
		string(level),
		strings.TrimSpace(message),
	)
	j.entries = append(j.entries, line)
	if len(j.entries) > j.capacity {
		j.entries = j.entries[len(j.entries)-j.capacity:]
	}
	fmt.Fprintln(j.sink, line)
}

// Tail returns up to maxLines of the most recent entries.
func (j *Journal) Tail(maxLines int) []string {
	if j == nil || maxLines <= 0 {
		return nil
	}
	j.mu.Lock()
	defer j.mu.Unlock()
	if len(j.entries) == 0 {
		return nil
	}
	start := 0
	if len(j.entries) > maxLines {
		start = len(j.entries) - maxLines
	}
	out := make([]string, len(j.entries)-start)
	copy(out, j.entries[start:])
	return out
}

// Info appends an informational entry.
func (j *Journal) Info(format string, args ...any) {
	j.Append(LevelInfo, fmt.Sprintf(format, args...))
}

// Warn appends a warning entry.
func (j *Journal) Warn(format string, args ...any) {
	j.Append(LevelWarn, fmt.Sprintf(format, args...))
}

// Error appends an error entry.
func (j *Journal) Error(format string, args ...any) {
	j.Append(LevelError, fmt.Sprintf(format, args...))
}
