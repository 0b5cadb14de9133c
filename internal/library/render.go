package library

import (
	"github.com/blackwell-systems/readshelf/internal/catalog"
	"github.com/blackwell-systems/readshelf/internal/volumes"
)

// CardKind tells library cards from search result cards.
type CardKind int

const (
	LibraryCard CardKind = iota
	ResultCard
)

// Card is the render form of one book.
type Card struct {
	Kind     CardKind
	ID       string
	Title    string
	Authors  string
	CoverURL string
	Genre    string

	// Category is set on library cards.
	Category catalog.Category
	// Saved is set on result cards whose ID is already in the library;
	// the save action is disabled for them.
	Saved bool
}

// CanSave reports whether the save action is enabled.
func (c Card) CanSave() bool {
	return c.Kind == ResultCard && !c.Saved
}

// SaveLabel is the caption of the save action.
func (c Card) SaveLabel() string {
	if c.Saved {
		return "Already Saved"
	}
	return "Save to Library"
}

// Targets lists the buckets a library card can be moved to.
func (c Card) Targets() []catalog.Category {
	if c.Kind != LibraryCard {
		return nil
	}
	out := make([]catalog.Category, 0, len(catalog.Categories)-1)
	for _, cat := range catalog.Categories {
		if cat != c.Category {
			out = append(out, cat)
		}
	}
	return out
}

// Panels is the library partitioned by bucket after the genre filter.
type Panels struct {
	Genre     string
	ToRead    []Card
	Reading   []Card
	Completed []Card
}

// Panel returns the cards of one bucket.
func (p Panels) Panel(cat catalog.Category) []Card {
	switch cat {
	case catalog.ToRead:
		return p.ToRead
	case catalog.Reading:
		return p.Reading
	case catalog.Completed:
		return p.Completed
	}
	return nil
}

// Len is the number of cards across all buckets.
func (p Panels) Len() int {
	return len(p.ToRead) + len(p.Reading) + len(p.Completed)
}

// ResultsPanel is the render form of the search results.
type ResultsPanel struct {
	Cards []Card
	// Err is SearchErrorMessage after a failed search, else empty.
	Err string
	// Searched is false until the first search completes.
	Searched bool
}

// RenderLibrary projects the library into the three bucket panels,
// applying the active genre filter. Order within a bucket is stored order.
func (c *Controller) RenderLibrary() Panels {
	c.mu.Lock()
	defer c.mu.Unlock()

	visible := catalog.Filter{Genre: c.state.Genre}.Apply(c.state.Library)
	buckets := catalog.Partition(visible)
	return Panels{
		Genre:     c.state.Genre,
		ToRead:    libraryCards(buckets[catalog.ToRead]),
		Reading:   libraryCards(buckets[catalog.Reading]),
		Completed: libraryCards(buckets[catalog.Completed]),
	}
}

// RenderSearchResults projects the current results. Each card's save
// action is disabled when its ID is already in the library. After a failed
// search the panel holds only the error message; the previous results stay
// in memory and return with the next successful search.
func (c *Controller) RenderSearchResults() ResultsPanel {
	c.mu.Lock()
	defer c.mu.Unlock()

	rp := ResultsPanel{Cards: []Card{}, Searched: c.state.Searched}
	if c.state.ResultsErr != nil {
		rp.Err = SearchErrorMessage
		return rp
	}
	for _, v := range c.state.Results {
		rp.Cards = append(rp.Cards, resultCard(v, catalog.Contains(c.state.Library, v.ID)))
	}
	return rp
}

func libraryCards(books []catalog.Book) []Card {
	out := make([]Card, 0, len(books))
	for _, b := range books {
		out = append(out, libraryCard(b))
	}
	return out
}

func libraryCard(b catalog.Book) Card {
	return Card{
		Kind:     LibraryCard,
		ID:       b.ID,
		Title:    b.Title,
		Authors:  b.Authors,
		CoverURL: b.CoverURL,
		Genre:    b.Genre,
		Category: b.Category,
	}
}

func resultCard(v volumes.Volume, saved bool) Card {
	return Card{
		Kind:     ResultCard,
		ID:       v.ID,
		Title:    v.Title(),
		Authors:  v.AuthorsDisplay(),
		CoverURL: v.CoverURL(),
		Genre:    v.GenreString(),
		Saved:    saved,
	}
}
