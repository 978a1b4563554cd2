package mock

import (
	"context"

	"github.com/fwojciec/marsnap"
)

var _ marsnap.NewsExtractor = (*NewsExtractor)(nil)

// NewsExtractor is a mock implementation of marsnap.NewsExtractor.
type NewsExtractor struct {
	ExtractNewsFn func(html string) marsnap.Headline
}

func (e *NewsExtractor) ExtractNews(html string) marsnap.Headline {
	return e.ExtractNewsFn(html)
}

var _ marsnap.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor is a mock implementation of marsnap.ImageExtractor.
type ImageExtractor struct {
	ExtractImageFn func(ctx context.Context, browser marsnap.Browser) (*string, error)
}

func (e *ImageExtractor) ExtractImage(ctx context.Context, browser marsnap.Browser) (*string, error) {
	return e.ExtractImageFn(ctx, browser)
}

var _ marsnap.FactsExtractor = (*FactsExtractor)(nil)

// FactsExtractor is a mock implementation of marsnap.FactsExtractor.
type FactsExtractor struct {
	ExtractFactsFn func(html string) *marsnap.FactsTable
}

func (e *FactsExtractor) ExtractFacts(html string) *marsnap.FactsTable {
	return e.ExtractFactsFn(html)
}

var _ marsnap.GalleryExtractor = (*GalleryExtractor)(nil)

// GalleryExtractor is a mock implementation of marsnap.GalleryExtractor.
type GalleryExtractor struct {
	ExtractGalleryFn func(ctx context.Context, indexHTML string, browser marsnap.Browser) ([]marsnap.GalleryItem, error)
}

func (e *GalleryExtractor) ExtractGallery(ctx context.Context, indexHTML string, browser marsnap.Browser) ([]marsnap.GalleryItem, error) {
	return e.ExtractGalleryFn(ctx, indexHTML, browser)
}
