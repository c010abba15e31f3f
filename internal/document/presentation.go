package document

import (
	"fmt"
	"strings"
)

// Deck is a document whose content is an ordered sequence of slide labels.
type Deck struct {
	meta
	slides []string
}

// NewDeck constructs a presentation document.
func NewDeck(name string, slides []string, opts ...Option) *Deck {
	return &Deck{meta: newMeta(name, opts...), slides: slides}
}

func (d *Deck) Kind() Kind { return KindPresentation }

func (d *Deck) Info() Info { return d.info(KindPresentation) }

// Slides returns the current slide labels.
func (d *Deck) Slides() []string { return d.slides }

// SetSlides replaces the deck, advances the modification timestamp, and
// returns a confirmation line.
func (d *Deck) SetSlides(slides []string) string {
	d.slides = slides
	d.touch()
	return fmt.Sprintf("Content of %q updated", d.name)
}

// SlideCount reports the number of slides.
func (d *Deck) SlideCount() int { return len(d.slides) }

// Display renders each slide prefixed with its 1-based position.
func (d *Deck) Display() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render(d.name))
	for i, slide := range d.slides {
		b.WriteString(fmt.Sprintf("\nSlide %d: %s", i+1, slide))
	}
	return b.String()
}
