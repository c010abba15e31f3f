// internal/tui/app.go
//
// Terminal browser for the document catalog. Follows The Elm Architecture
// that bubbletea provides: the App model holds all state, Update reacts to
// messages, View renders the current screen.

package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mpetrovic/folio/internal/catalog"
	"github.com/mpetrovic/folio/internal/document"
	"github.com/mpetrovic/folio/internal/journal"
)

// appState represents which screen is active.
type appState int

const (
	stateCatalog appState = iota // document list
	stateDetail                  // rendered document view
)

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	metaStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A0AEC0"))
	journalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#999999"))
	helpStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

// docItem implements list.Item for a catalog entry.
type docItem struct {
	doc document.Document
}

func (i docItem) Title() string { return i.doc.Name() }

func (i docItem) Description() string {
	return fmt.Sprintf("%s, created %s", i.doc.Kind(), catalog.FormatDate(i.doc.CreatedAt()))
}

func (i docItem) FilterValue() string { return i.doc.Name() }

// App is the application model.
type App struct {
	state   appState
	catalog *catalog.Catalog
	journal *journal.Journal

	docList  list.Model
	selected document.Document

	width  int
	height int
}

// New builds the browser over an existing catalog.
func New(cat *catalog.Catalog, book *journal.Journal) *App {
	items := make([]list.Item, 0, cat.Len())
	for _, doc := range cat.Documents() {
		items = append(items, docItem{doc: doc})
	}
	docList := list.New(items, list.NewDefaultDelegate(), 0, 0)
	docList.Title = "Document Catalog"
	docList.SetShowStatusBar(false)
	docList.SetFilteringEnabled(false)

	return &App{
		state:   stateCatalog,
		catalog: cat,
		journal: book,
		docList: docList,
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.docList.SetSize(msg.Width-2, msg.Height-4)
		return a, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return a, tea.Quit
		case "enter":
			if a.state == stateCatalog {
				if item, ok := a.docList.SelectedItem().(docItem); ok {
					a.selected = item.doc
					a.state = stateDetail
					a.journal.Info("viewing %s document %q", item.doc.Kind(), item.doc.Name())
				}
				return a, nil
			}
		case "esc":
			if a.state == stateDetail {
				a.state = stateCatalog
				a.selected = nil
				return a, nil
			}
		}
	}

	if a.state == stateCatalog {
		var cmd tea.Cmd
		a.docList, cmd = a.docList.Update(msg)
		return a, cmd
	}
	return a, nil
}

// View implements tea.Model.
func (a *App) View() string {
	if a.state == stateDetail {
		return a.detailView()
	}
	return a.catalogView()
}

func (a *App) catalogView() string {
	var b strings.Builder
	b.WriteString(a.docList.View())
	if tail := a.journal.Tail(3); len(tail) > 0 {
		b.WriteString("\n" + journalStyle.Render(strings.Join(tail, "\n")))
	}
	b.WriteString("\n" + helpStyle.Render("enter: open  q: quit"))
	return b.String()
}

func (a *App) detailView() string {
	if a.selected == nil {
		return a.catalogView()
	}
	info := a.selected.Info()
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%s document", info.Kind)))
	b.WriteString("\n")
	b.WriteString(metaStyle.Render(fmt.Sprintf("created %s, modified %s",
		catalog.FormatDate(info.CreatedAt), catalog.FormatDate(info.ModifiedAt))))
	b.WriteString("\n\n")
	b.WriteString(a.selected.Display())
	b.WriteString("\n\n" + helpStyle.Render("esc: back  q: quit"))
	return b.String()
}
