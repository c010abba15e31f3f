// Package demo walks the catalog through every operation it supports,
// writing the transcript to a caller-supplied writer.
package demo

import (
	"fmt"
	"io"
	"time"

	"github.com/mpetrovic/folio/internal/catalog"
	"github.com/mpetrovic/folio/internal/document"
	"github.com/mpetrovic/folio/internal/journal"
	"github.com/mpetrovic/folio/internal/seed"
)

// Run seeds a catalog and exercises add, list, lookup, display, update, and
// the per-variant extras. Output is deterministic under a fixed clock.
func Run(w io.Writer, clock func() time.Time) error {
	docs, err := seed.Build(clock)
	if err != nil {
		return err
	}
	book := journal.New(w, journal.WithClock(orNow(clock)))
	cat := catalog.New(catalog.WithJournal(book))

	section(w, "Registering documents")
	for _, doc := range docs {
		if err := cat.Add(doc); err != nil {
			return fmt.Errorf("demo: add %q: %w", doc.Name(), err)
		}
	}

	section(w, "Catalog listing")
	fmt.Fprintln(w, cat.List())

	section(w, "Display by name")
	for _, doc := range docs {
		fmt.Fprintln(w, cat.RenderByName(doc.Name()))
	}
	fmt.Fprintln(w, cat.RenderByName("Missing Report"))

	section(w, "Updating text content")
	text, ok := firstText(docs)
	if !ok {
		return fmt.Errorf("demo: seed catalog has no text document")
	}
	fmt.Fprintln(w, text.SetBody("Launch date confirmed. Owners assigned for every workstream."))
	fmt.Fprintln(w, cat.RenderByName(text.Name()))
	fmt.Fprintf(w, "Word count: %d\n", text.WordCount())

	section(w, "Spreadsheet lookups")
	sheet, ok := firstSpreadsheet(docs)
	if !ok {
		return fmt.Errorf("demo: seed catalog has no spreadsheet document")
	}
	fmt.Fprintf(w, "Cell(1,1) = %s\n", sheet.Cell(1, 1))
	fmt.Fprintf(w, "Cell(10,10) = %s\n", sheet.Cell(10, 10))

	section(w, "Presentation")
	deck, ok := firstDeck(docs)
	if !ok {
		return fmt.Errorf("demo: seed catalog has no presentation document")
	}
	fmt.Fprintf(w, "Slide count: %d\n", deck.SlideCount())
	return nil
}

func section(w io.Writer, title string) {
	fmt.Fprintf(w, "\n== %s ==\n", title)
}

func orNow(clock func() time.Time) func() time.Time {
	if clock == nil {
		return time.Now
	}
	return clock
}

func firstText(docs []document.Document) (*document.Text, bool) {
	for _, doc := range docs {
		if text, ok := doc.(*document.Text); ok {
			return text, true
		}
	}
	return nil, false
}

func firstSpreadsheet(docs []document.Document) (*document.Spreadsheet, bool) {
	for _, doc := range docs {
		if sheet, ok := doc.(*document.Spreadsheet); ok {
			return sheet, true
		}
	}
	return nil, false
}

func firstDeck(docs []document.Document) (*document.Deck, bool) {
	for _, doc := range docs {
		if deck, ok := doc.(*document.Deck); ok {
			return deck, true
		}
	}
	return nil, false
}
