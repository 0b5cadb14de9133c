package catalog

import (
	"encoding/json"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Parse decodes a stored library value. An empty value is an empty library.
// Unknown categories and duplicate IDs are rejected.
func Parse(data []byte) ([]Book, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Book{}, nil
	}
	var books []Book
	if err := json.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parsing library JSON: %w", err)
	}
	if books == nil {
		return []Book{}, nil
	}
	if err := Validate(books); err != nil {
		return nil, err
	}
	return books, nil
}

// ParseYAML decodes a library exported with MarshalYAML.
func ParseYAML(data []byte) ([]Book, error) {
	var books []Book
	if err := yaml.Unmarshal(data, &books); err != nil {
		return nil, fmt.Errorf("parsing library YAML: %w", err)
	}
	if books == nil {
		return []Book{}, nil
	}
	if err := Validate(books); err != nil {
		return nil, err
	}
	return books, nil
}

// Validate checks the library invariants: unique IDs, known categories.
func Validate(books []Book) error {
	seen := make(map[string]struct{}, len(books))
	for i, b := range books {
		if b.ID == "" {
			return fmt.Errorf("book %d: missing id", i)
		}
		if _, dup := seen[b.ID]; dup {
			return fmt.Errorf("book %q: duplicate id", b.ID)
		}
		seen[b.ID] = struct{}{}
		if !b.Category.Valid() {
			return fmt.Errorf("book %q: invalid category %q", b.ID, b.Category)
		}
	}
	return nil
}
