package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Marshal encodes a book list to the stored JSON form.
func Marshal(books []Book) ([]byte, error) {
	if books == nil {
		books = []Book{}
	}
	data, err := json.Marshal(books)
	if err != nil {
		return nil, fmt.Errorf("encoding library: %w", err)
	}
	return data, nil
}

// MarshalYAML encodes a book list as YAML for export.
func MarshalYAML(books []Book) ([]byte, error) {
	if books == nil {
		books = []Book{}
	}
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)
	if err := enc.Encode(books); err != nil {
		return nil, fmt.Errorf("encoding library: %w", err)
	}
	return buf.Bytes(), nil
}

// The list helpers below never modify their input slice; callers can keep
// the old value around until the new one is persisted.

// Append returns books with b added at the end. If a book with the same ID
// is already present the list is returned unchanged and added is false.
func Append(books []Book, b Book) (out []Book, added bool) {
	if ByID(books, b.ID) != nil {
		return books, false
	}
	out = make([]Book, 0, len(books)+1)
	out = append(out, books...)
	return append(out, b), true
}

// Remove returns books without the first entry with the given ID, and
// whether a book was actually removed.
func Remove(books []Book, id string) ([]Book, bool) {
	for i, b := range books {
		if b.ID == id {
			out := make([]Book, 0, len(books)-1)
			out = append(out, books[:i]...)
			return append(out, books[i+1:]...), true
		}
	}
	return books, false
}

// Move returns books with the category of id set to c, and whether the
// book was found.
func Move(books []Book, id string, c Category) ([]Book, bool) {
	for i := range books {
		if books[i].ID == id {
			out := make([]Book, len(books))
			copy(out, books)
			out[i].Category = c
			return out, true
		}
	}
	return books, false
}
