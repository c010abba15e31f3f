package document

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#5B8DEF"))
	blockStyle = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).Padding(0, 1)
)

// Text is a document whose content is a plain string body.
type Text struct {
	meta
	body string
}

// NewText constructs a text document.
func NewText(name, body string, opts ...Option) *Text {
	return &Text{meta: newMeta(name, opts...), body: body}
}

func (t *Text) Kind() Kind { return KindText }

func (t *Text) Info() Info { return t.info(KindText) }

// Body returns the current text content.
func (t *Text) Body() string { return t.body }

// SetBody replaces the body, advances the modification timestamp, and
// returns a confirmation line. The body is not validated.
func (t *Text) SetBody(body string) string {
	t.body = body
	t.touch()
	return fmt.Sprintf("Content of %q updated", t.name)
}

// WordCount reports the number of whitespace-separated tokens in the body.
// An empty body counts zero words.
func (t *Text) WordCount() int {
	return len(strings.Fields(t.body))
}

// Display renders the body inside a bordered block headed by the name.
func (t *Text) Display() string {
	header := titleStyle.Render(t.name)
	return header + "\n" + blockStyle.Render(t.body)
}
