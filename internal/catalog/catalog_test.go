package catalog_test

import (
	"strings"
	"testing"

	"github.com/blackwell-systems/readshelf/internal/catalog"
	"github.com/blackwell-systems/readshelf/internal/storage"
	"github.com/blackwell-systems/readshelf/internal/volumes"
)

// sampleJSON is what the browser page stored under myBookLibrary.
var sampleJSON = []byte(`[
  {"id":"sicp","title":"Structure and Interpretation of Computer Programs",
   "authors":"Harold Abelson, Gerald Jay Sussman","coverUrl":"http://img/sicp",
   "genre":"Computers","category":"toRead"},
  {"id":"dune","title":"Dune","authors":"Frank Herbert","coverUrl":"http://img/dune",
   "genre":"Fiction, Science Fiction","category":"reading"},
  {"id":"hobbit","title":"The Hobbit","authors":"J. R. R. Tolkien","coverUrl":"http://img/hobbit",
   "genre":"Juvenile Fiction","category":"completed"}
]`)

// --- Parse / Marshal ---

func TestParse_Valid(t *testing.T) {
	books, err := catalog.Parse(sampleJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if len(books) != 3 {
		t.Fatalf("expected 3 books, got %d", len(books))
	}
	if books[1].Category != catalog.Reading {
		t.Errorf("books[1].Category = %q, want %q", books[1].Category, catalog.Reading)
	}
	if books[0].CoverURL != "http://img/sicp" {
		t.Errorf("books[0].CoverURL = %q", books[0].CoverURL)
	}
}

func TestParse_Empty(t *testing.T) {
	for _, in := range []string{"", "  ", "[]", "null"} {
		books, err := catalog.Parse([]byte(in))
		if err != nil {
			t.Fatalf("Parse(%q): %v", in, err)
		}
		if books == nil || len(books) != 0 {
			t.Errorf("Parse(%q) = %#v, want empty slice", in, books)
		}
	}
}

func TestParse_InvalidJSON(t *testing.T) {
	if _, err := catalog.Parse([]byte(`[{"id":`)); err == nil {
		t.Error("expected error for invalid JSON, got nil")
	}
}

func TestParse_UnknownCategory(t *testing.T) {
	_, err := catalog.Parse([]byte(`[{"id":"a","category":"abandoned"}]`))
	if err == nil {
		t.Fatal("expected error for unknown category, got nil")
	}
	if !strings.Contains(err.Error(), "abandoned") {
		t.Errorf("error should name the category: %v", err)
	}
}

func TestParse_EmptyCategory(t *testing.T) {
	if _, err := catalog.Parse([]byte(`[{"id":"a"}]`)); err == nil {
		t.Error("expected error for missing category, got nil")
	}
}

func TestParse_DuplicateID(t *testing.T) {
	data := []byte(`[{"id":"a","category":"toRead"},{"id":"a","category":"reading"}]`)
	if _, err := catalog.Parse(data); err == nil {
		t.Error("expected error for duplicate id, got nil")
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	books, err := catalog.Parse(sampleJSON)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	data, err := catalog.Marshal(books)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	books2, err := catalog.Parse(data)
	if err != nil {
		t.Fatalf("re-Parse: %v", err)
	}
	if len(books2) != len(books) {
		t.Fatalf("round-trip length: got %d, want %d", len(books2), len(books))
	}
	for i := range books {
		if books[i] != books2[i] {
			t.Errorf("[%d] mismatch: %+v vs %+v", i, books[i], books2[i])
		}
	}
}

func TestMarshal_NilIsEmptyList(t *testing.T) {
	data, err := catalog.Marshal(nil)
	if err != nil {
		t.Fatalf("Marshal nil: %v", err)
	}
	if string(data) != "[]" {
		t.Errorf("Marshal(nil) = %q, want %q", data, "[]")
	}
}

func TestMarshal_UsesStoredFieldNames(t *testing.T) {
	data, _ := catalog.Marshal([]catalog.Book{{ID: "a", CoverURL: "u", Category: catalog.ToRead}})
	if !strings.Contains(string(data), `"coverUrl":"u"`) || !strings.Contains(string(data), `"category":"toRead"`) {
		t.Errorf("unexpected encoding: %s", data)
	}
}

func TestMarshalYAML(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	data, err := catalog.MarshalYAML(books)
	if err != nil {
		t.Fatalf("MarshalYAML: %v", err)
	}
	if !strings.Contains(string(data), "- id: sicp") {
		t.Errorf("YAML missing first entry:\n%s", data)
	}
	if !strings.Contains(string(data), "category: reading") {
		t.Errorf("YAML missing category:\n%s", data)
	}
}

// --- Append / Remove / Move ---

func TestAppend_New(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	out, added := catalog.Append(books, catalog.Book{ID: "new", Category: catalog.ToRead})
	if !added {
		t.Error("Append returned added=false for new book")
	}
	if len(out) != 4 || out[3].ID != "new" {
		t.Errorf("Append result = %v", ids(out))
	}
	if len(books) != 3 {
		t.Error("Append modified its input")
	}
}

func TestAppend_DuplicateIsNoop(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	out, added := catalog.Append(books, catalog.Book{ID: "dune", Title: "Dune (again)", Category: catalog.ToRead})
	if added {
		t.Error("Append returned added=true for existing id")
	}
	if len(out) != 3 {
		t.Errorf("expected 3 books, got %d", len(out))
	}
	if out[1].Title != "Dune" {
		t.Errorf("existing book was replaced: %q", out[1].Title)
	}
}

func TestRemove_Existing(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	out, ok := catalog.Remove(books, "dune")
	if !ok {
		t.Error("Remove returned ok=false for existing book")
	}
	if got := ids(out); strings.Join(got, ",") != "sicp,hobbit" {
		t.Errorf("remaining = %v", got)
	}
	if books[1].ID != "dune" {
		t.Error("Remove modified its input")
	}
}

func TestRemove_Missing(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	out, ok := catalog.Remove(books, "nope")
	if ok {
		t.Error("Remove returned ok=true for missing book")
	}
	if len(out) != 3 {
		t.Errorf("expected 3 books after no-op remove, got %d", len(out))
	}
}

func TestMove(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	out, ok := catalog.Move(books, "sicp", catalog.Completed)
	if !ok {
		t.Fatal("Move returned ok=false for existing book")
	}
	if out[0].Category != catalog.Completed {
		t.Errorf("category = %q, want %q", out[0].Category, catalog.Completed)
	}
	if books[0].Category != catalog.ToRead {
		t.Error("Move modified its input")
	}
}

func TestMove_Missing(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	if _, ok := catalog.Move(books, "nope", catalog.Reading); ok {
		t.Error("Move returned ok=true for missing book")
	}
}

// --- Filter / ByID / Partition ---

func TestFilter_Genre(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	got := catalog.Filter{Genre: "Fiction"}.Apply(books)
	if strings.Join(ids(got), ",") != "dune,hobbit" {
		t.Errorf("genre filter = %v", ids(got))
	}
}

func TestFilter_GenreCaseSensitive(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	if got := (catalog.Filter{Genre: "fiction"}).Apply(books); len(got) != 0 {
		t.Errorf("lowercase genre should not match, got %v", ids(got))
	}
}

func TestFilter_GenreSubstring(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	got := catalog.Filter{Genre: "Science Fiction"}.Apply(books)
	if len(got) != 1 || got[0].ID != "dune" {
		t.Errorf("substring filter = %v", ids(got))
	}
}

func TestFilter_Category(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	got := catalog.Filter{Category: catalog.Completed}.Apply(books)
	if len(got) != 1 || got[0].ID != "hobbit" {
		t.Errorf("category filter = %v", ids(got))
	}
}

func TestFilter_Empty(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	if got := (catalog.Filter{}).Apply(books); len(got) != 3 {
		t.Errorf("empty filter should return all books, got %d", len(got))
	}
}

func TestByID(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	if b := catalog.ByID(books, "hobbit"); b == nil || b.Title != "The Hobbit" {
		t.Errorf("ByID(hobbit) = %+v", b)
	}
	if catalog.ByID(books, "missing") != nil {
		t.Error("ByID returned non-nil for missing book")
	}
	if !catalog.Contains(books, "sicp") || catalog.Contains(books, "x") {
		t.Error("Contains mismatch")
	}
}

func TestPartition(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	books, _ = catalog.Move(books, "hobbit", catalog.Reading)
	p := catalog.Partition(books)
	if len(p[catalog.ToRead]) != 1 || len(p[catalog.Reading]) != 2 || len(p[catalog.Completed]) != 0 {
		t.Errorf("partition sizes = %d/%d/%d", len(p[catalog.ToRead]), len(p[catalog.Reading]), len(p[catalog.Completed]))
	}
	if p[catalog.Reading][0].ID != "dune" {
		t.Error("partition should preserve order")
	}
}

// --- Category ---

func TestParseCategory(t *testing.T) {
	cases := []struct {
		in   string
		want catalog.Category
	}{
		{"toRead", catalog.ToRead},
		{"to-read", catalog.ToRead},
		{"To Read", catalog.ToRead},
		{"TO_READ", catalog.ToRead},
		{"reading", catalog.Reading},
		{"Completed", catalog.Completed},
		{"done", catalog.Completed},
	}
	for _, c := range cases {
		got, err := catalog.ParseCategory(c.in)
		if err != nil {
			t.Errorf("ParseCategory(%q): %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", c.in, got, c.want)
		}
	}
	if _, err := catalog.ParseCategory("abandoned"); err == nil {
		t.Error("expected error for unknown category")
	}
}

func TestCategoryLabel(t *testing.T) {
	if catalog.ToRead.Label() != "To Read" {
		t.Errorf("ToRead.Label() = %q", catalog.ToRead.Label())
	}
	if !catalog.Completed.Valid() || catalog.Category("").Valid() {
		t.Error("Valid mismatch")
	}
}

// --- FromVolume ---

func TestFromVolume(t *testing.T) {
	v := volumes.Volume{ID: "v1", VolumeInfo: volumes.VolumeInfo{
		Title:      "Dune",
		Authors:    []string{"Frank Herbert"},
		Categories: []string{"Fiction", "Classics"},
		ImageLinks: &volumes.ImageLinks{Thumbnail: "http://img/dune"},
	}}
	b := catalog.FromVolume(v)
	want := catalog.Book{
		ID: "v1", Title: "Dune", Authors: "Frank Herbert", CoverURL: "http://img/dune",
		Genre: "Fiction, Classics", Category: catalog.ToRead,
	}
	if b != want {
		t.Errorf("FromVolume = %+v, want %+v", b, want)
	}
}

func TestFromVolume_Defaults(t *testing.T) {
	b := catalog.FromVolume(volumes.Volume{ID: "v2", VolumeInfo: volumes.VolumeInfo{Title: "Bare"}})
	if b.Authors != volumes.UnknownAuthor {
		t.Errorf("Authors = %q, want %q", b.Authors, volumes.UnknownAuthor)
	}
	if b.CoverURL != volumes.PlaceholderCover {
		t.Errorf("CoverURL = %q, want placeholder", b.CoverURL)
	}
	if b.Genre != "" {
		t.Errorf("Genre = %q, want empty", b.Genre)
	}
}

// --- Manager ---

func TestManager_LoadEmpty(t *testing.T) {
	m := catalog.NewManager(storage.NewMemoryStore(), "myBookLibrary")
	books, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(books) != 0 {
		t.Errorf("expected empty library, got %d", len(books))
	}
}

func TestManager_SaveLoad(t *testing.T) {
	store := storage.NewMemoryStore()
	m := catalog.NewManager(store, "myBookLibrary")
	books, _ := catalog.Parse(sampleJSON)
	if err := m.Save(books); err != nil {
		t.Fatalf("Save: %v", err)
	}
	raw, ok, _ := store.Get("myBookLibrary")
	if !ok || !strings.HasPrefix(raw, "[{") {
		t.Errorf("stored value = %q", raw)
	}
	got, err := m.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(got) != 3 {
		t.Errorf("expected 3 books, got %d", len(got))
	}
}

func TestManager_LoadCorrupt(t *testing.T) {
	store := storage.NewMemoryStore()
	_ = store.Set("k", "{broken")
	if _, err := catalog.NewManager(store, "k").Load(); err == nil {
		t.Error("expected error for corrupt stored value, got nil")
	}
}

func ids(books []catalog.Book) []string {
	out := make([]string, len(books))
	for i, b := range books {
		out[i] = b.ID
	}
	return out
}

func TestParseYAML_RoundTrip(t *testing.T) {
	books, _ := catalog.Parse(sampleJSON)
	data, err := catalog.MarshalYAML(books)
	if err != nil {
		t.Fatalf("MarshalYAML: %v", err)
	}
	got, err := catalog.ParseYAML(data)
	if err != nil {
		t.Fatalf("ParseYAML: %v", err)
	}
	if len(got) != len(books) {
		t.Fatalf("got %d books, want %d", len(got), len(books))
	}
	for i := range books {
		if got[i] != books[i] {
			t.Errorf("[%d] mismatch: %+v vs %+v", i, got[i], books[i])
		}
	}
}

func TestParseYAML_InvalidCategory(t *testing.T) {
	if _, err := catalog.ParseYAML([]byte("- id: a\n  category: someday\n")); err == nil {
		t.Error("expected error for unknown category, got nil")
	}
}
