package goquery

import (
	"context"
	"fmt"
	"net/url"

	"github.com/fwojciec/marsnap"
)

var _ marsnap.ImageExtractor = (*ImageExtractor)(nil)

// ImageExtractor opens the featured image of the image target by clicking
// its full-image control and reads the expanded image reference.
type ImageExtractor struct {
	target marsnap.ImageTarget
	base   *url.URL
}

// NewImageExtractor creates an ImageExtractor for the given target.
// Returns EINVALID if the target URL is not absolute.
func NewImageExtractor(target marsnap.ImageTarget) (*ImageExtractor, error) {
	base, err := parseBaseURL(target.URL)
	if err != nil {
		return nil, err
	}
	return &ImageExtractor{target: target, base: base}, nil
}

// ExtractImage loads the index page, activates the configured control and
// returns the absolute URL of the revealed image.
func (e *ImageExtractor) ExtractImage(ctx context.Context, browser marsnap.Browser) (*string, error) {
	if _, err := browser.Load(ctx, e.target.URL, e.target.Wait); err != nil {
		return nil, fmt.Errorf("loading image index: %w", err)
	}

	html, err := browser.Click(ctx, e.target.Button, e.target.ButtonIndex, e.target.ClickWait)
	if marsnap.ErrorCode(err) == marsnap.ENOTFOUND {
		return nil, nil
	} else if err != nil {
		return nil, fmt.Errorf("opening full image: %w", err)
	}

	return e.imageURL(html), nil
}

// imageURL returns the resolved src of the expanded image in html.
func (e *ImageExtractor) imageURL(html string) *string {
	doc, ok := parseDocument(html)
	if !ok {
		return nil
	}

	resolved := resolveURL(e.base, firstAttr(doc.Selection, e.target.Image, "src"))
	if resolved == "" {
		return nil
	}
	return &resolved
}
