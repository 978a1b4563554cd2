// Package goquery implements the marsnap field extractors with CSS
// selectors evaluated by goquery over rendered HTML.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/marsnap"
)

// parseDocument parses html. A document that cannot be parsed is reported
// as ok=false and treated like a page without the expected elements.
func parseDocument(html string) (*goquery.Document, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, false
	}
	return doc, true
}

// firstText returns the trimmed text of the first element matching selector
// under sel, or nil if there is none or its text is blank.
func firstText(sel *goquery.Selection, selector string) *string {
	match := sel.Find(selector).First()
	if match.Length() == 0 {
		return nil
	}
	text := strings.TrimSpace(match.Text())
	if text == "" {
		return nil
	}
	return &text
}

// firstAttr returns the trimmed attribute of the first element matching
// selector under sel, or "" if there is none.
func firstAttr(sel *goquery.Selection, selector, attr string) string {
	v, _ := sel.Find(selector).First().Attr(attr)
	return strings.TrimSpace(v)
}

// parseBaseURL parses the base URL of a target.
func parseBaseURL(rawURL string) (*url.URL, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		return nil, marsnap.Errorf(marsnap.EINVALID, "invalid base URL: %v", err)
	}
	if !base.IsAbs() {
		return nil, marsnap.Errorf(marsnap.EINVALID, "base URL %q must be absolute", rawURL)
	}
	return base, nil
}

// resolveURL resolves a relative reference against a base URL.
// Returns empty string if the reference is blank or cannot be parsed.
func resolveURL(base *url.URL, ref string) string {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return ""
	}
	u, err := url.Parse(ref)
	if err != nil {
		return ""
	}
	return base.ResolveReference(u).String()
}
