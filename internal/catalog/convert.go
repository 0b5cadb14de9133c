package catalog

import "github.com/blackwell-systems/readshelf/internal/volumes"

// FromVolume converts a search record into a library record: authors are
// flattened, the genre string is derived from the source categories, and
// the book starts in ToRead.
func FromVolume(v volumes.Volume) Book {
	return Book{
		ID:       v.ID,
		Title:    v.Title(),
		Authors:  v.AuthorsDisplay(),
		CoverURL: v.CoverURL(),
		Genre:    v.GenreString(),
		Category: ToRead,
	}
}
