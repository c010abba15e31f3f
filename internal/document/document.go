// Package document defines the catalog's document variants. Each variant
// shares a name and creation/modification timestamps and contributes its own
// content shape and rendering. The variant set is closed: text bodies,
// spreadsheet grids, and presentation decks.

package document

import (
	"time"
)

// Kind identifies which variant a document is.
type Kind string

const (
	// KindText represents a plain text body.
	KindText Kind = "Text"
	// KindSpreadsheet represents a grid of cells.
	KindSpreadsheet Kind = "Spreadsheet"
	// KindPresentation represents an ordered deck of slides.
	KindPresentation Kind = "Presentation"
)

// Document is the capability set every variant implements.
type Document interface {
	Name() string
	Kind() Kind
	CreatedAt() time.Time
	ModifiedAt() time.Time
	Info() Info
	Display() string
}

// Info is a read-only snapshot of a document's metadata.
type Info struct {
	Name       string
	Kind       Kind
	CreatedAt  time.Time
	ModifiedAt time.Time
}

// Option customizes a document during construction.
type Option func(*meta)

// WithClock overrides the clock used for creation and modification timestamps.
func WithClock(clock func() time.Time) Option {
	return func(m *meta) {
		if clock != nil {
			m.now = clock
		}
	}
}

// meta carries the fields and behavior shared by every variant. The name is
// fixed at construction; modifiedAt only moves forward via touch.
type meta struct {
	name       string
	createdAt  time.Time
	modifiedAt time.Time
	now        func() time.Time
}

func newMeta(name string, opts ...Option) meta {
	m := meta{name: name, now: time.Now}
	for _, opt := range opts {
		opt(&m)
	}
	created := m.now()
	m.createdAt = created
	m.modifiedAt = created
	return m
}

func (m *meta) Name() string { return m.name }

func (m *meta) CreatedAt() time.Time { return m.createdAt }

func (m *meta) ModifiedAt() time.Time { return m.modifiedAt }

// touch records a content change without ever moving modifiedAt before
// createdAt, even under a misbehaving clock.
func (m *meta) touch() {
	stamp := m.now()
	if stamp.Before(m.createdAt) {
		stamp = m.createdAt
	}
	m.modifiedAt = stamp
}

func (m *meta) info(kind Kind) Info {
	return Info{
		Name:       m.name,
		Kind:       kind,
		CreatedAt:  m.createdAt,
		ModifiedAt: m.modifiedAt,
	}
}
