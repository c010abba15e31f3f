package catalog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/mpetrovic/folio/internal/document"
	"github.com/mpetrovic/folio/internal/journal"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func sampleDocuments(t *testing.T) []document.Document {
	t.Helper()
	base := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)
	return []document.Document{
		document.NewText("notes", "a b c", document.WithClock(fixedClock(base))),
		document.NewSpreadsheet("ledger", [][]document.Cell{
			{document.TextCell("Item"), document.TextCell("Cost")},
		}, document.WithClock(fixedClock(base))),
		document.NewDeck("pitch", []string{"Intro"}, document.WithClock(fixedClock(base))),
	}
}

func TestAddPreservesInsertionOrder(t *testing.T) {
	cat := New()
	for _, doc := range sampleDocuments(t) {
		if err := cat.Add(doc); err != nil {
			t.Fatalf("Add(%s): %v", doc.Name(), err)
		}
	}
	docs := cat.Documents()
	wantOrder := []document.Kind{document.KindText, document.KindSpreadsheet, document.KindPresentation}
	if len(docs) != len(wantOrder) {
		t.Fatalf("len(docs) = %d, want %d", len(docs), len(wantOrder))
	}
	for i, want := range wantOrder {
		if docs[i].Kind() != want {
			t.Fatalf("docs[%d].Kind() = %s, want %s", i, docs[i].Kind(), want)
		}
	}
	listing := cat.List()
	textIdx := strings.Index(listing, "notes")
	sheetIdx := strings.Index(listing, "ledger")
	deckIdx := strings.Index(listing, "pitch")
	if textIdx < 0 || sheetIdx < 0 || deckIdx < 0 {
		t.Fatalf("listing missing entries: %q", listing)
	}
	if !(textIdx < sheetIdx && sheetIdx < deckIdx) {
		t.Fatalf("listing out of order: %q", listing)
	}
}

func TestListShowsDateOnly(t *testing.T) {
	cat := New()
	for _, doc := range sampleDocuments(t) {
		if err := cat.Add(doc); err != nil {
			t.Fatalf("Add: %v", err)
		}
	}
	listing := cat.List()
	if !strings.Contains(listing, "2026-04-02") {
		t.Fatalf("listing missing date: %q", listing)
	}
	if strings.Contains(listing, "08:30") {
		t.Fatalf("listing leaked time-of-day: %q", listing)
	}
}

func TestAddRejectsNilAndLeavesStateUnchanged(t *testing.T) {
	cat := New()
	err := cat.Add(nil)
	if !errors.Is(err, ErrNotDocument) {
		t.Fatalf("Add(nil) err = %v, want ErrNotDocument", err)
	}
	if got := cat.Len(); got != 0 {
		t.Fatalf("Len() = %d after rejected add, want 0", got)
	}
}

// kindlessDoc satisfies the Document interface but reports no kind, the
// runtime remnant of "not actually a document".
type kindlessDoc struct{}

func (kindlessDoc) Name() string          { return "impostor" }
func (kindlessDoc) Kind() document.Kind   { return "" }
func (kindlessDoc) CreatedAt() time.Time  { return time.Time{} }
func (kindlessDoc) ModifiedAt() time.Time { return time.Time{} }
func (kindlessDoc) Info() document.Info   { return document.Info{} }
func (kindlessDoc) Display() string       { return "" }

func TestAddRejectsKindlessDocument(t *testing.T) {
	cat := New()
	err := cat.Add(kindlessDoc{})
	if !errors.Is(err, ErrNotDocument) {
		t.Fatalf("Add(kindless) err = %v, want ErrNotDocument", err)
	}
	if got := cat.Len(); got != 0 {
		t.Fatalf("Len() = %d after rejected add, want 0", got)
	}
}

func TestRenderByNameMissReportsNotFound(t *testing.T) {
	book := journal.New(nil)
	cat := New(WithJournal(book))
	out := cat.RenderByName("ghost")
	if !strings.Contains(out, "not found") {
		t.Fatalf("RenderByName miss = %q, want not-found report", out)
	}
	if got := cat.Len(); got != 0 {
		t.Fatalf("Len() = %d after miss, want 0", got)
	}
	tail := book.Tail(1)
	if len(tail) != 1 || !strings.Contains(tail[0], "ghost") {
		t.Fatalf("journal missing lookup miss: %v", tail)
	}
}

func TestRenderByNameReturnsFirstMatch(t *testing.T) {
	base := time.Date(2026, 4, 2, 8, 30, 0, 0, time.UTC)
	cat := New()
	first := document.NewText("dup", "first body", document.WithClock(fixedClock(base)))
	second := document.NewText("dup", "second body", document.WithClock(fixedClock(base)))
	if err := cat.Add(first); err != nil {
		t.Fatalf("Add: %v", err)
	}
	if err := cat.Add(second); err != nil {
		t.Fatalf("Add: %v", err)
	}
	out := cat.RenderByName("dup")
	if !strings.Contains(out, "first body") {
		t.Fatalf("RenderByName = %q, want first match", out)
	}
	if strings.Contains(out, "second body") {
		t.Fatalf("RenderByName rendered later duplicate: %q", out)
	}
}

func TestRenderByNameDelegatesToVariant(t *testing.T) {
	cat := New()
	deck := document.NewDeck("pitch", []string{"Intro", "Close"})
	if err := cat.Add(deck); err != nil {
		t.Fatalf("Add: %v", err)
	}
	out := cat.RenderByName("pitch")
	if !strings.Contains(out, "Slide 2: Close") {
		t.Fatalf("RenderByName = %q, want deck rendering", out)
	}
}

func TestAddJournalsKindAndName(t *testing.T) {
	book := journal.New(nil)
	cat := New(WithJournal(book))
	if err := cat.Add(document.NewText("notes", "")); err != nil {
		t.Fatalf("Add: %v", err)
	}
	tail := book.Tail(1)
	if len(tail) != 1 {
		t.Fatalf("journal tail = %v, want one entry", tail)
	}
	if !strings.Contains(tail[0], "Text") || !strings.Contains(tail[0], "notes") {
		t.Fatalf("journal entry %q missing kind or name", tail[0])
	}
}
