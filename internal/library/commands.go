package library

import (
	"github.com/blackwell-systems/readshelf/internal/catalog"
	"github.com/blackwell-systems/readshelf/internal/volumes"
)

// Command is a user intent or service completion consumed by Dispatch.
type Command interface {
	isCommand()
}

// SearchCmd asks for a new search.
type SearchCmd struct {
	Query string
	Genre string
}

// SaveCmd saves a search result to the library.
type SaveCmd struct {
	Volume volumes.Volume
}

// RemoveCmd removes a library book.
type RemoveCmd struct {
	ID string
}

// MoveCmd moves a library book to another bucket.
type MoveCmd struct {
	ID       string
	Category catalog.Category
}

// FilterCmd sets the genre filter of the library panels.
type FilterCmd struct {
	Genre string
}

func (SearchCmd) isCommand()       {}
func (SaveCmd) isCommand()         {}
func (RemoveCmd) isCommand()       {}
func (MoveCmd) isCommand()         {}
func (FilterCmd) isCommand()       {}
func (SearchCompleted) isCommand() {}

// Outcome reports what a dispatched command did.
type Outcome struct {
	// Request is set when a SearchCmd issued a request; the caller runs
	// Fetch and dispatches the SearchCompleted it returns.
	Request *SearchRequest
	// Changed is true when a render projection may differ.
	Changed bool
}

// Dispatch applies cmd to the controller state.
func (c *Controller) Dispatch(cmd Command) (Outcome, error) {
	switch cmd := cmd.(type) {
	case SearchCmd:
		req, _ := c.Search(cmd.Query, cmd.Genre)
		return Outcome{Request: req}, nil
	case SearchCompleted:
		return Outcome{Changed: c.CompleteSearch(cmd)}, nil
	case SaveCmd:
		if err := c.Save(cmd.Volume); err != nil {
			return Outcome{}, err
		}
		return Outcome{Changed: true}, nil
	case RemoveCmd:
		removed, err := c.Remove(cmd.ID)
		return Outcome{Changed: removed}, err
	case MoveCmd:
		moved, err := c.Move(cmd.ID, cmd.Category)
		return Outcome{Changed: moved}, err
	case FilterCmd:
		c.FilterByGenre(cmd.Genre)
		return Outcome{Changed: true}, nil
	}
	return Outcome{}, nil
}
