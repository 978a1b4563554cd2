// Package scrape orchestrates a snapshot run: it visits every target in
// sequence through one browser session, runs the field extractors and
// assembles the resulting marsnap.Snapshot.
package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/fwojciec/marsnap"
)

// Ensure Scraper implements marsnap.Scraper.
var _ marsnap.Scraper = (*Scraper)(nil)

// Scraper runs the extraction pipeline over a fixed set of targets.
//
// A field whose element is missing is left nil and the run continues.
// A navigation failure aborts the run. The browser is closed on every
// exit path.
type Scraper struct {
	Launcher marsnap.Launcher
	Fetcher  marsnap.Fetcher
	News     marsnap.NewsExtractor
	Image    marsnap.ImageExtractor
	Facts    marsnap.FactsExtractor
	Gallery  marsnap.GalleryExtractor
	Targets  marsnap.Targets

	// Logger receives one record per field outcome. Defaults to discarding.
	Logger *slog.Logger

	// Now stamps CapturedAt. Defaults to time.Now.
	Now func() time.Time
}

// Run visits every target and returns the assembled snapshot.
func (s *Scraper) Run(ctx context.Context) (*marsnap.Snapshot, error) {
	log := s.logger()

	browser, err := s.Launcher.Launch(ctx)
	if err != nil {
		return nil, fmt.Errorf("starting browser: %w", err)
	}
	defer func() {
		if err := browser.Close(); err != nil {
			log.Warn("closing browser", "err", err)
		}
	}()

	snap := &marsnap.Snapshot{}

	html, err := browser.Load(ctx, s.Targets.News.URL, s.Targets.News.Wait)
	if err != nil {
		return nil, fmt.Errorf("news: %w", err)
	}
	headline := s.News.ExtractNews(html)
	snap.Headline = headline.Title
	snap.Summary = headline.Summary
	logField(log, "news_title", snap.Headline != nil)
	logField(log, "news_paragraph", snap.Summary != nil)

	snap.FeaturedImageURL, err = s.Image.ExtractImage(ctx, browser)
	if err != nil {
		return nil, fmt.Errorf("featured image: %w", err)
	}
	logField(log, "featured_image", snap.FeaturedImageURL != nil)

	snap.Facts = s.facts(ctx)
	logField(log, "facts", snap.Facts != nil)

	html, err = browser.Load(ctx, s.Targets.Gallery.URL, s.Targets.Gallery.Wait)
	if err != nil {
		return nil, fmt.Errorf("hemispheres: %w", err)
	}
	gallery, err := s.Gallery.ExtractGallery(ctx, html, browser)
	if err != nil {
		return nil, fmt.Errorf("hemispheres: %w", err)
	}
	if gallery == nil {
		gallery = []marsnap.GalleryItem{}
	}
	snap.Gallery = gallery
	log.Info("field extracted", "field", "hemispheres", "items", len(gallery))

	snap.CapturedAt = s.now()
	snap.Fingerprint = Fingerprint(snap)
	return snap, nil
}

// facts loads the facts page without the browser. A transport failure only
// costs this field.
func (s *Scraper) facts(ctx context.Context) *marsnap.FactsTable {
	html, err := s.Fetcher.Fetch(ctx, s.Targets.Facts.URL)
	if err != nil {
		s.logger().Warn("facts page unavailable", "url", s.Targets.Facts.URL, "err", err)
		return nil
	}
	return s.Facts.ExtractFacts(html)
}

func (s *Scraper) logger() *slog.Logger {
	if s.Logger == nil {
		return slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return s.Logger
}

func (s *Scraper) now() time.Time {
	if s.Now == nil {
		return time.Now()
	}
	return s.Now()
}

func logField(log *slog.Logger, field string, found bool) {
	if found {
		log.Info("field extracted", "field", field)
		return
	}
	log.Warn("field missing", "field", field)
}
