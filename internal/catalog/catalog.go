// Package catalog provides an ordered in-memory registry of documents.
// Insertion order is preserved, duplicate names are allowed, and name lookup
// returns the first match.
package catalog

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/mpetrovic/folio/internal/document"
	"github.com/mpetrovic/folio/internal/journal"
)

// ErrNotDocument reports an Add call whose argument does not satisfy the
// document contract. This is a programming error, not an expected outcome.
var ErrNotDocument = errors.New("catalog: not a document")

const dateLayout = "2006-01-02"

var (
	listKindStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F7B801"))
	notFoundStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
)

// Catalog holds documents in insertion order behind a single lock.
type Catalog struct {
	mu      sync.Mutex
	docs    []document.Document
	journal *journal.Journal
}

// Option customizes a Catalog during construction.
type Option func(*Catalog)

// WithJournal attaches an activity journal.
func WithJournal(book *journal.Journal) Option {
	return func(c *Catalog) {
		c.journal = book
	}
}

// New builds an empty catalog.
func New(opts ...Option) *Catalog {
	c := &Catalog{}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Add appends a document to the registry. A nil document, or one reporting
// no kind, is rejected and the registry is left unchanged.
func (c *Catalog) Add(doc document.Document) error {
	if doc == nil {
		return fmt.Errorf("%w: nil", ErrNotDocument)
	}
	if doc.Kind() == "" {
		return fmt.Errorf("%w: %q reports no kind", ErrNotDocument, doc.Name())
	}
	c.mu.Lock()
	c.docs = append(c.docs, doc)
	c.mu.Unlock()
	c.journal.Info("added %s document %q", doc.Kind(), doc.Name())
	return nil
}

// Len reports the number of registered documents.
func (c *Catalog) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.docs)
}

// Documents returns a copy of the registry in insertion order.
func (c *Catalog) Documents() []document.Document {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]document.Document, len(c.docs))
	copy(out, c.docs)
	return out
}

// FindByName returns the first document with the given name.
func (c *Catalog) FindByName(name string) (document.Document, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, doc := range c.docs {
		if doc.Name() == name {
			return doc, true
		}
	}
	return nil, false
}

// List renders one line per document: name, kind, and creation date.
func (c *Catalog) List() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	if len(c.docs) == 0 {
		return "Catalog is empty"
	}
	lines := make([]string, 0, len(c.docs))
	for _, doc := range c.docs {
		lines = append(lines, fmt.Sprintf("%s  [%s]  created %s",
			doc.Name(),
			listKindStyle.Render(string(doc.Kind())),
			doc.CreatedAt().Format(dateLayout),
		))
	}
	return strings.Join(lines, "\n")
}

// RenderByName returns the display rendering of the first document matching
// name, or a not-found line. Absence is a reported result, never an error.
func (c *Catalog) RenderByName(name string) string {
	doc, ok := c.FindByName(name)
	if !ok {
		c.journal.Warn("document %q not found", name)
		return notFoundStyle.Render(fmt.Sprintf("Document %q not found", name))
	}
	return doc.Display()
}

// FormatDate renders a date-only timestamp for listings.
func FormatDate(t time.Time) string {
	return t.Format(dateLayout)
}
