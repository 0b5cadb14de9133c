package volumes_test

import (
	"testing"

	"github.com/blackwell-systems/readshelf/internal/volumes"
)

func TestAuthorsDisplay(t *testing.T) {
	v := volumes.Volume{VolumeInfo: volumes.VolumeInfo{Authors: []string{"Abelson", "Sussman"}}}
	if got := v.AuthorsDisplay(); got != "Abelson, Sussman" {
		t.Errorf("AuthorsDisplay = %q, want %q", got, "Abelson, Sussman")
	}
}

func TestAuthorsDisplay_Missing(t *testing.T) {
	v := volumes.Volume{}
	if got := v.AuthorsDisplay(); got != volumes.UnknownAuthor {
		t.Errorf("AuthorsDisplay = %q, want %q", got, volumes.UnknownAuthor)
	}
}

func TestCoverURL(t *testing.T) {
	v := volumes.Volume{VolumeInfo: volumes.VolumeInfo{ImageLinks: &volumes.ImageLinks{Thumbnail: "http://img/1"}}}
	if got := v.CoverURL(); got != "http://img/1" {
		t.Errorf("CoverURL = %q, want %q", got, "http://img/1")
	}
}

func TestCoverURL_Missing(t *testing.T) {
	cases := []volumes.Volume{
		{},
		{VolumeInfo: volumes.VolumeInfo{ImageLinks: &volumes.ImageLinks{SmallThumbnail: "x"}}},
	}
	for i, v := range cases {
		if got := v.CoverURL(); got != volumes.PlaceholderCover {
			t.Errorf("[%d] CoverURL = %q, want placeholder", i, got)
		}
	}
}

func TestGenreString(t *testing.T) {
	v := volumes.Volume{VolumeInfo: volumes.VolumeInfo{Categories: []string{"Fiction", "Classics"}}}
	if got := v.GenreString(); got != "Fiction, Classics" {
		t.Errorf("GenreString = %q, want %q", got, "Fiction, Classics")
	}
	if got := (volumes.Volume{}).GenreString(); got != "" {
		t.Errorf("GenreString of empty = %q, want empty", got)
	}
}

func TestPlainDescription(t *testing.T) {
	v := volumes.Volume{VolumeInfo: volumes.VolumeInfo{
		Description: "<p>First <b>bold</b> part.</p><p>Second part.</p>",
	}}
	want := "First bold part.\n\nSecond part."
	if got := v.PlainDescription(); got != want {
		t.Errorf("PlainDescription = %q, want %q", got, want)
	}
}

func TestPlainDescription_PlainText(t *testing.T) {
	v := volumes.Volume{VolumeInfo: volumes.VolumeInfo{Description: "  just text "}}
	if got := v.PlainDescription(); got != "just text" {
		t.Errorf("PlainDescription = %q, want %q", got, "just text")
	}
}

func TestPlainDescription_NoParagraphs(t *testing.T) {
	v := volumes.Volume{VolumeInfo: volumes.VolumeInfo{Description: "line one<br>line two"}}
	if got := v.PlainDescription(); got != "line one\nline two" {
		t.Errorf("PlainDescription = %q, want %q", got, "line one\nline two")
	}
}
