package catalog

import "strings"

// Filter applies all non-empty criteria and returns matching books.
type Filter struct {
	Genre    string   // case-sensitive substring of the genre string
	Category Category // exact bucket
}

// Apply returns the subset of books matching all non-empty filter fields,
// preserving order.
func (f Filter) Apply(books []Book) []Book {
	out := []Book{}
	for _, b := range books {
		if f.Genre != "" && !strings.Contains(b.Genre, f.Genre) {
			continue
		}
		if f.Category != "" && b.Category != f.Category {
			continue
		}
		out = append(out, b)
	}
	return out
}

// ByID returns the first book with the given ID, or nil.
func ByID(books []Book, id string) *Book {
	for i := range books {
		if books[i].ID == id {
			return &books[i]
		}
	}
	return nil
}

// Contains reports whether a book with the given ID is in books.
func Contains(books []Book, id string) bool {
	return ByID(books, id) != nil
}

// Partition splits books into the three buckets, preserving order.
func Partition(books []Book) map[Category][]Book {
	out := map[Category][]Book{
		ToRead:    {},
		Reading:   {},
		Completed: {},
	}
	for _, b := range books {
		out[b.Category] = append(out[b.Category], b)
	}
	return out
}
