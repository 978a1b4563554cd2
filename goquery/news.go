package goquery

import "github.com/fwojciec/marsnap"

var _ marsnap.NewsExtractor = (*NewsExtractor)(nil)

// NewsExtractor reads the first news slide of the news target.
type NewsExtractor struct {
	target marsnap.NewsTarget
}

// NewNewsExtractor creates a NewsExtractor for the given target.
func NewNewsExtractor(target marsnap.NewsTarget) *NewsExtractor {
	return &NewsExtractor{target: target}
}

// ExtractNews returns the title and teaser of the first slide. Each field is
// nil if its element is absent; both are nil without a slide.
func (e *NewsExtractor) ExtractNews(html string) marsnap.Headline {
	doc, ok := parseDocument(html)
	if !ok {
		return marsnap.Headline{}
	}

	slide := doc.Find(e.target.Container).First()
	if slide.Length() == 0 {
		return marsnap.Headline{}
	}

	return marsnap.Headline{
		Title:   firstText(slide, e.target.Title),
		Summary: firstText(slide, e.target.Summary),
	}
}
