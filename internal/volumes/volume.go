package volumes

import "strings"

const (
	// UnknownAuthor is shown when a volume lists no authors.
	UnknownAuthor = "Unknown Author"
	// PlaceholderCover is shown when a volume has no thumbnail.
	PlaceholderCover = "https://via.placeholder.com/128x192?text=No+Cover"
)

// Response is the volumes list payload.
type Response struct {
	Kind       string   `json:"kind"`
	TotalItems int      `json:"totalItems"`
	Items      []Volume `json:"items"`
}

// Volume is one search record.
type Volume struct {
	ID         string     `json:"id"`
	VolumeInfo VolumeInfo `json:"volumeInfo"`
}

// VolumeInfo holds the bibliographic fields. Every field is optional.
type VolumeInfo struct {
	Title         string      `json:"title"`
	Subtitle      string      `json:"subtitle,omitempty"`
	Authors       []string    `json:"authors,omitempty"`
	Publisher     string      `json:"publisher,omitempty"`
	PublishedDate string      `json:"publishedDate,omitempty"`
	Description   string      `json:"description,omitempty"`
	PageCount     int         `json:"pageCount,omitempty"`
	Categories    []string    `json:"categories,omitempty"`
	ImageLinks    *ImageLinks `json:"imageLinks,omitempty"`
	InfoLink      string      `json:"infoLink,omitempty"`
}

// ImageLinks lists cover image URLs.
type ImageLinks struct {
	SmallThumbnail string `json:"smallThumbnail,omitempty"`
	Thumbnail      string `json:"thumbnail,omitempty"`
}

// Title returns the volume title.
func (v Volume) Title() string {
	return v.VolumeInfo.Title
}

// AuthorsDisplay joins the authors, or returns UnknownAuthor.
func (v Volume) AuthorsDisplay() string {
	if len(v.VolumeInfo.Authors) == 0 {
		return UnknownAuthor
	}
	return strings.Join(v.VolumeInfo.Authors, ", ")
}

// CoverURL returns the thumbnail, or PlaceholderCover.
func (v Volume) CoverURL() string {
	if v.VolumeInfo.ImageLinks == nil || v.VolumeInfo.ImageLinks.Thumbnail == "" {
		return PlaceholderCover
	}
	return v.VolumeInfo.ImageLinks.Thumbnail
}

// GenreString joins the source categories into one comma-separated string.
func (v Volume) GenreString() string {
	return strings.Join(v.VolumeInfo.Categories, ", ")
}
