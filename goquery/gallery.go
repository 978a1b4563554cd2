package goquery

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/marsnap"
)

var _ marsnap.GalleryExtractor = (*GalleryExtractor)(nil)

// GalleryExtractor follows every item on the gallery index page and reads
// the full-resolution image and title of each linked sub-page.
//
// An item whose link, image or title is missing is skipped and logged.
// A sub-page that cannot be loaded aborts the extraction.
type GalleryExtractor struct {
	target marsnap.GalleryTarget
	base   *url.URL

	// Pacer gates each sub-page visit. Nil visits back to back.
	Pacer marsnap.Pacer

	// Logger receives skipped items. Defaults to discarding.
	Logger *slog.Logger
}

// NewGalleryExtractor creates a GalleryExtractor for the given target.
// Returns EINVALID if the target URL is not absolute.
func NewGalleryExtractor(target marsnap.GalleryTarget) (*GalleryExtractor, error) {
	base, err := parseBaseURL(target.URL)
	if err != nil {
		return nil, err
	}
	return &GalleryExtractor{
		target: target,
		base:   base,
		Logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}, nil
}

// ExtractGallery returns one item per index entry, in index order.
// The result is never nil.
func (e *GalleryExtractor) ExtractGallery(ctx context.Context, indexHTML string, browser marsnap.Browser) ([]marsnap.GalleryItem, error) {
	items := []marsnap.GalleryItem{}

	for i, link := range e.itemLinks(indexHTML) {
		if link == "" {
			e.Logger.Warn("gallery item skipped", "index", i, "reason", "no link")
			continue
		}

		if e.Pacer != nil {
			if err := e.Pacer.Wait(ctx); err != nil {
				return nil, err
			}
		}

		html, err := browser.Load(ctx, link, e.target.ItemWait)
		if err != nil {
			return nil, fmt.Errorf("loading gallery item %d: %w", i, err)
		}

		item, ok := e.extractItem(html)
		if !ok {
			e.Logger.Warn("gallery item skipped", "index", i, "url", link, "reason", "no image or title")
			continue
		}
		items = append(items, item)
	}

	return items, nil
}

// itemLinks returns the resolved link of every item on the index page.
// An item without a usable link is reported as "" to keep positions.
func (e *GalleryExtractor) itemLinks(indexHTML string) []string {
	doc, ok := parseDocument(indexHTML)
	if !ok {
		return nil
	}

	container := doc.Find(e.target.Container).First()
	return container.ChildrenFiltered(e.target.Item).Map(func(_ int, item *goquery.Selection) string {
		return resolveURL(e.base, firstAttr(item, e.target.Link, "href"))
	})
}

// extractItem reads the image and title of a gallery sub-page.
func (e *GalleryExtractor) extractItem(html string) (marsnap.GalleryItem, bool) {
	doc, ok := parseDocument(html)
	if !ok {
		return marsnap.GalleryItem{}, false
	}

	imageURL := resolveURL(e.base, firstAttr(doc.Selection, e.target.Image, "src"))
	title := firstText(doc.Selection, e.target.Title)
	if imageURL == "" || title == nil {
		return marsnap.GalleryItem{}, false
	}

	normalized := NormalizeTitle(*title, e.target.TitleQualifier)
	if normalized == "" {
		return marsnap.GalleryItem{}, false
	}

	return marsnap.GalleryItem{ImageURL: imageURL, Title: normalized}, true
}

// NormalizeTitle cuts title at the first occurrence of qualifier and trims
// surrounding whitespace. An empty qualifier only trims.
func NormalizeTitle(title, qualifier string) string {
	if qualifier != "" {
		if i := strings.Index(title, qualifier); i >= 0 {
			title = title[:i]
		}
	}
	return strings.TrimSpace(title)
}
