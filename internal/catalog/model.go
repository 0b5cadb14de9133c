package catalog

import (
	"fmt"
	"strings"
)

// Book is one saved entry in the library.
type Book struct {
	ID       string   `json:"id" yaml:"id"`
	Title    string   `json:"title" yaml:"title"`
	Authors  string   `json:"authors" yaml:"authors"`
	CoverURL string   `json:"coverUrl" yaml:"cover_url"`
	Genre    string   `json:"genre" yaml:"genre"`
	Category Category `json:"category" yaml:"category"`
}

// Category is the reading-status bucket a book sits in.
type Category string

// The three buckets. The string values are the stored form.
const (
	ToRead    Category = "toRead"
	Reading   Category = "reading"
	Completed Category = "completed"
)

// Categories lists the buckets in display order.
var Categories = []Category{ToRead, Reading, Completed}

// Valid reports whether c is one of the three buckets.
func (c Category) Valid() bool {
	switch c {
	case ToRead, Reading, Completed:
		return true
	}
	return false
}

// Label returns the display name.
func (c Category) Label() string {
	switch c {
	case ToRead:
		return "To Read"
	case Reading:
		return "Reading"
	case Completed:
		return "Completed"
	}
	return string(c)
}

// ParseCategory accepts the stored form, the display label, and the
// usual dashed or underscored spellings, case-insensitively.
func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	norm = strings.NewReplacer("-", "", "_", "", " ", "").Replace(norm)
	switch norm {
	case "toread", "todo":
		return ToRead, nil
	case "reading", "current":
		return Reading, nil
	case "completed", "done", "read":
		return Completed, nil
	}
	return "", fmt.Errorf("unknown category %q (want to-read, reading or completed)", s)
}
