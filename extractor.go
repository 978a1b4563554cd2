package marsnap

import "context"

// Headline is the latest news title and its teaser paragraph.
type Headline struct {
	Title   *string
	Summary *string
}

// NewsExtractor extracts the latest headline from a rendered news page.
// A field that cannot be located is nil; extraction never fails.
type NewsExtractor interface {
	ExtractNews(html string) Headline
}

// ImageExtractor reveals the featured image through the browser and
// returns its absolute URL. A missing control or image returns nil and no
// error; only navigation failures are returned.
type ImageExtractor interface {
	ExtractImage(ctx context.Context, browser Browser) (*string, error)
}

// FactsExtractor extracts the facts table from a page.
// Returns nil when the page holds no table of the expected shape.
type FactsExtractor interface {
	ExtractFacts(html string) *FactsTable
}

// GalleryExtractor follows every item on the gallery index page and returns
// one GalleryItem per sub-page in index order. Only navigation failures are
// returned as errors.
type GalleryExtractor interface {
	ExtractGallery(ctx context.Context, indexHTML string, browser Browser) ([]GalleryItem, error)
}
