// cmd/folio/main.go
//
// Entry point for the interactive catalog browser. Seeds the catalog from
// the embedded manifest and hands control to the TUI.

package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mpetrovic/folio/internal/catalog"
	"github.com/mpetrovic/folio/internal/journal"
	"github.com/mpetrovic/folio/internal/seed"
	"github.com/mpetrovic/folio/internal/tui"
)

func main() {
	docs, err := seed.Build(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading sample catalog: %v\n", err)
		os.Exit(1)
	}

	book := journal.New(nil)
	cat := catalog.New(catalog.WithJournal(book))
	for _, doc := range docs {
		if err := cat.Add(doc); err != nil {
			fmt.Fprintf(os.Stderr, "Error registering %q: %v\n", doc.Name(), err)
			os.Exit(1)
		}
	}

	p := tea.NewProgram(
		tui.New(cat, book),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running TUI: %v\n", err)
		os.Exit(1)
	}
}
