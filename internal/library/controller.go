// Package library owns the application state: the saved library, the
// current search results and the active genre filter. Every mutation goes
// through a Controller, which writes the library back to storage before
// the new state becomes visible.
package library

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/blackwell-systems/readshelf/internal/catalog"
	"github.com/blackwell-systems/readshelf/internal/volumes"
)

// SearchErrorMessage is shown in the results panel after a failed search.
const SearchErrorMessage = "Error searching books. Please try again."

var (
	// ErrAlreadySaved is returned when saving a volume whose ID is already
	// in the library.
	ErrAlreadySaved = errors.New("book already saved")
	// ErrMissingID is returned when saving a volume without an ID.
	ErrMissingID = errors.New("volume has no id")
	// ErrInvalidCategory is returned by Move for an unknown bucket.
	ErrInvalidCategory = errors.New("invalid category")
)

// Searcher runs a volumes query. *volumes.Client satisfies it.
type Searcher interface {
	Search(ctx context.Context, term string) ([]volumes.Volume, error)
}

// state is everything the panels are rendered from.
type state struct {
	Library    []catalog.Book
	Results    []volumes.Volume
	ResultsErr error
	Searched   bool
	Genre      string

	// seq is the sequence number of the latest issued search; applied is
	// the latest one whose completion was accepted.
	seq     uint64
	applied uint64
}

// Controller mediates every read and write of the library state.
// It is safe for concurrent use.
type Controller struct {
	searcher Searcher
	mgr      *catalog.Manager
	log      logrus.FieldLogger

	mu    sync.Mutex
	state state
}

// New loads the persisted library and returns a Controller over it.
// A missing stored value is an empty library.
func New(searcher Searcher, mgr *catalog.Manager, log logrus.FieldLogger) (*Controller, error) {
	if log == nil {
		l := logrus.New()
		l.SetLevel(logrus.PanicLevel)
		log = l
	}
	books, err := mgr.Load()
	if err != nil {
		return nil, fmt.Errorf("loading library: %w", err)
	}
	log.WithFields(logrus.Fields{
		"key":   mgr.Key(),
		"books": len(books),
	}).Debug("library loaded")

	return &Controller{
		searcher: searcher,
		mgr:      mgr,
		log:      log,
		state:    state{Library: books},
	}, nil
}

// SearchRequest describes one issued search. Fetch performs it.
type SearchRequest struct {
	Seq   uint64
	Query string
	Genre string
	Term  string
}

// SearchCompleted carries the outcome of a Fetch back to CompleteSearch.
type SearchCompleted struct {
	Seq     uint64
	Term    string
	Results []volumes.Volume
	Err     error
}

// Search issues a new search for query and genre. The query is trimmed.
// When both are empty ok is false: no request is made and the results
// panel is left as it was.
func (c *Controller) Search(query, genre string) (req *SearchRequest, ok bool) {
	query = strings.TrimSpace(query)
	term, ok := volumes.BuildTerm(query, genre)
	if !ok {
		return nil, false
	}

	c.mu.Lock()
	c.state.seq++
	seq := c.state.seq
	c.mu.Unlock()

	c.log.WithFields(logrus.Fields{
		"seq":   seq,
		"query": query,
		"genre": genre,
		"term":  term,
	}).Debug("search issued")

	return &SearchRequest{Seq: seq, Query: query, Genre: genre, Term: term}, true
}

// Fetch performs req against the search service. It reads no controller
// state and may run on any goroutine.
func (c *Controller) Fetch(ctx context.Context, req *SearchRequest) SearchCompleted {
	results, err := c.searcher.Search(ctx, req.Term)
	return SearchCompleted{Seq: req.Seq, Term: req.Term, Results: results, Err: err}
}

// CompleteSearch applies a finished search. Only the completion of the
// most recently issued search is applied; older ones are dropped and
// applied is false. On failure the previous results are kept and the
// panel reports SearchErrorMessage.
func (c *Controller) CompleteSearch(msg SearchCompleted) (applied bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fields := logrus.Fields{"seq": msg.Seq, "term": msg.Term}
	if msg.Seq != c.state.seq {
		fields["latest"] = c.state.seq
		c.log.WithFields(fields).Debug("dropping stale search result")
		return false
	}
	c.state.applied = msg.Seq
	c.state.Searched = true

	if msg.Err != nil {
		fields["error"] = msg.Err
		c.log.WithFields(fields).Error("search failed")
		c.state.ResultsErr = msg.Err
		return true
	}

	results := msg.Results
	if results == nil {
		results = []volumes.Volume{}
	}
	c.state.Results = results
	c.state.ResultsErr = nil
	fields["results"] = len(results)
	c.log.WithFields(fields).Info("search completed")
	return true
}

// Pending reports whether an issued search has not completed yet.
func (c *Controller) Pending() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.applied != c.state.seq
}

// Save adds v to the library in the ToRead bucket.
func (c *Controller) Save(v volumes.Volume) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if strings.TrimSpace(v.ID) == "" {
		return fmt.Errorf("%w: %q", ErrMissingID, v.Title())
	}
	book := catalog.FromVolume(v)
	next, added := catalog.Append(c.state.Library, book)
	if !added {
		return fmt.Errorf("%w: %s", ErrAlreadySaved, v.ID)
	}
	if err := c.commit(next); err != nil {
		return err
	}
	c.log.WithFields(logrus.Fields{"id": book.ID, "title": book.Title}).Info("book saved")
	return nil
}

// Remove deletes the book with the given ID. removed is false, and nothing
// is written, when no such book exists.
func (c *Controller) Remove(id string) (removed bool, err error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	next, ok := catalog.Remove(c.state.Library, id)
	if !ok {
		c.log.WithField("id", id).Debug("remove: book not in library")
		return false, nil
	}
	if err := c.commit(next); err != nil {
		return false, err
	}
	c.log.WithField("id", id).Info("book removed")
	return true, nil
}

// Move sets the bucket of the book with the given ID. moved is false, and
// nothing is written, when no such book exists.
func (c *Controller) Move(id string, cat catalog.Category) (moved bool, err error) {
	if !cat.Valid() {
		return false, fmt.Errorf("%w: %q", ErrInvalidCategory, cat)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next, ok := catalog.Move(c.state.Library, id, cat)
	if !ok {
		c.log.WithField("id", id).Debug("move: book not in library")
		return false, nil
	}
	if err := c.commit(next); err != nil {
		return false, err
	}
	c.log.WithFields(logrus.Fields{"id": id, "category": cat}).Info("book moved")
	return true, nil
}

// Import merges books into the library. Books whose ID is already present
// are skipped. The batch is validated first and written in one go.
func (c *Controller) Import(books []catalog.Book) (added, skipped int, err error) {
	if err := catalog.Validate(books); err != nil {
		return 0, 0, err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	next := c.state.Library
	for _, b := range books {
		var ok bool
		next, ok = catalog.Append(next, b)
		if ok {
			added++
		} else {
			skipped++
		}
	}
	if added == 0 {
		return 0, skipped, nil
	}
	if err := c.commit(next); err != nil {
		return 0, 0, err
	}
	c.log.WithFields(logrus.Fields{"added": added, "skipped": skipped}).Info("library imported")
	return added, skipped, nil
}

// FilterByGenre sets the genre the library panels are narrowed to.
// An empty genre shows every book.
func (c *Controller) FilterByGenre(genre string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.state.Genre = genre
}

// Genre returns the active genre filter.
func (c *Controller) Genre() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Genre
}

// Library returns a copy of the saved books in stored order.
func (c *Controller) Library() []catalog.Book {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]catalog.Book, len(c.state.Library))
	copy(out, c.state.Library)
	return out
}

// Book returns the saved book with the given ID.
func (c *Controller) Book(id string) (catalog.Book, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if b := catalog.ByID(c.state.Library, id); b != nil {
		return *b, true
	}
	return catalog.Book{}, false
}

// Result returns the volume with the given ID from the current results.
func (c *Controller) Result(id string) (volumes.Volume, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, v := range c.state.Results {
		if v.ID == id {
			return v, true
		}
	}
	return volumes.Volume{}, false
}

// commit persists next and then makes it the in-memory library.
// Callers hold c.mu.
func (c *Controller) commit(next []catalog.Book) error {
	if err := c.mgr.Save(next); err != nil {
		c.log.WithField("error", err).Error("library write failed")
		return err
	}
	c.state.Library = next
	return nil
}
