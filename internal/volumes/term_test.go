package volumes_test

import (
	"testing"

	"github.com/blackwell-systems/readshelf/internal/volumes"
)

func TestBuildTerm(t *testing.T) {
	cases := []struct {
		query, genre string
		want         string
		wantOK       bool
	}{
		{"dune", "Fiction", "dune+subject:Fiction", true},
		{"dune", "", "dune", true},
		{"", "Fiction", "subject:Fiction", true},
		{"", "", "", false},
		{"the hobbit", "", "the%20hobbit", true},
		{"dune", "Science Fiction", "dune+subject:Science%20Fiction", true},
		{"", "Biography & Autobiography", "subject:Biography%20%26%20Autobiography", true},
		{"c++", "", "c%2B%2B", true},
	}
	for _, c := range cases {
		got, ok := volumes.BuildTerm(c.query, c.genre)
		if ok != c.wantOK {
			t.Errorf("BuildTerm(%q, %q) ok = %v, want %v", c.query, c.genre, ok, c.wantOK)
		}
		if got != c.want {
			t.Errorf("BuildTerm(%q, %q) = %q, want %q", c.query, c.genre, got, c.want)
		}
	}
}

func TestIsGenre(t *testing.T) {
	if !volumes.IsGenre("") {
		t.Error("empty genre should be accepted")
	}
	if !volumes.IsGenre("Fiction") {
		t.Error("Fiction should be a known genre")
	}
	if volumes.IsGenre("fiction") {
		t.Error("genre match should be case-sensitive")
	}
}
