package tui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/list"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/blackwell-systems/readshelf/internal/library"
	"github.com/blackwell-systems/readshelf/internal/tui/delegate"
)

// CardItem adapts a library.Card to list.Item.
type CardItem struct {
	library.Card
}

// FilterValue returns a string used for filtering in the list
func (c CardItem) FilterValue() string {
	return c.Title + " " + c.Authors + " " + c.Genre
}

func cardItems(cards []library.Card) []list.Item {
	items := make([]list.Item, len(cards))
	for i, c := range cards {
		items[i] = CardItem{Card: c}
	}
	return items
}

func newCardDelegate() delegate.Base {
	return delegate.NewCard(renderCard, 2, 1)
}

// renderCard draws a card as two lines: title, then authors and genre
// with the action hint for the card kind.
func renderCard(w io.Writer, m list.Model, index int, item list.Item) {
	ci, ok := item.(CardItem)
	if !ok {
		return
	}
	inner := m.Width() - 4
	if inner < 10 {
		inner = 10
	}

	title := xansi.Truncate(ci.Title, inner, "…")

	var meta strings.Builder
	meta.WriteString(ci.Authors)
	if ci.Genre != "" {
		meta.WriteString(" · ")
		meta.WriteString(StyleGenre.Render(ci.Genre))
	}
	line2 := xansi.Truncate(meta.String(), inner-16, "…")
	switch {
	case ci.Kind == library.ResultCard && ci.Saved:
		line2 += "  " + StyleSaved.Render("✓ "+ci.SaveLabel())
	case ci.Kind == library.LibraryCard:
		line2 += "  " + StyleHelp.Render(ci.Category.Label())
	}

	if index == m.Index() {
		_, _ = fmt.Fprintf(w, "%s\n  %s", StyleHighlight.Render("› "+title), line2)
		return
	}
	_, _ = fmt.Fprintf(w, "  %s\n  %s", StyleNormal.Render(title), StyleHelp.Render(line2))
}
