package cache

import (
	"context"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/blackwell-systems/readshelf/internal/catalog"
	"github.com/blackwell-systems/readshelf/internal/volumes"
)

// Downloader fetches cover images. *volumes.Client satisfies it.
type Downloader interface {
	DownloadCover(ctx context.Context, url string) (io.ReadCloser, error)
}

// FillResult summarizes a Fill run.
type FillResult struct {
	Downloaded int
	Cached     int
	Skipped    int // placeholder covers
	Failed     int
}

// Fill downloads the covers of books that are not cached yet. A failed
// download is logged and counted; it does not stop the run. Only a
// canceled context ends it early.
func (m *Manager) Fill(ctx context.Context, d Downloader, books []catalog.Book, log logrus.FieldLogger) (FillResult, error) {
	var res FillResult
	for _, b := range books {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		switch {
		case b.CoverURL == "" || b.CoverURL == volumes.PlaceholderCover:
			res.Skipped++
			continue
		case m.Exists(b.ID):
			res.Cached++
			continue
		}

		if err := m.fetch(ctx, d, b); err != nil {
			log.WithFields(logrus.Fields{"id": b.ID, "url": b.CoverURL}).WithError(err).Warn("cover download failed")
			res.Failed++
			continue
		}
		log.WithField("id", b.ID).Debug("cover cached")
		res.Downloaded++
	}
	return res, nil
}

func (m *Manager) fetch(ctx context.Context, d Downloader, b catalog.Book) error {
	rc, err := d.DownloadCover(ctx, b.CoverURL)
	if err != nil {
		return err
	}
	defer func() { _ = rc.Close() }()

	if _, err := m.Store(b.ID, rc); err != nil {
		return fmt.Errorf("storing cover: %w", err)
	}
	return nil
}
