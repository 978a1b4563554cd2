// Package htmltomarkdown renders HTML fragments, chiefly the facts table,
// as Markdown.
package htmltomarkdown

import (
	"strings"

	"github.com/JohannesKaufmann/html-to-markdown/v2/converter"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/base"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/commonmark"
	"github.com/JohannesKaufmann/html-to-markdown/v2/plugin/table"
	"github.com/fwojciec/marsnap"
)

// Ensure Converter implements marsnap.Converter at compile time.
var _ marsnap.Converter = (*Converter)(nil)

// Converter wraps html-to-markdown with table support enabled.
type Converter struct {
	conv *converter.Converter
}

// NewConverter creates a new Converter.
func NewConverter() *Converter {
	conv := converter.NewConverter(
		converter.WithPlugins(
			base.NewBasePlugin(),
			commonmark.NewCommonmarkPlugin(),
			table.NewTablePlugin(),
		),
	)
	return &Converter{conv: conv}
}

// Convert transforms an HTML fragment into Markdown.
func (c *Converter) Convert(html string) (string, error) {
	if strings.TrimSpace(html) == "" {
		return "", marsnap.Errorf(marsnap.EINVALID, "empty HTML input")
	}

	result, err := c.conv.ConvertString(html)
	if err != nil {
		return "", marsnap.Errorf(marsnap.EINTERNAL, "converting html: %v", err)
	}

	return strings.TrimSpace(result), nil
}

// ConvertFacts renders a facts table as a Markdown pipe table.
// A nil table renders as the empty string.
func (c *Converter) ConvertFacts(t *marsnap.FactsTable) (string, error) {
	if t == nil || len(t.Rows) == 0 {
		return "", nil
	}
	return c.Convert(t.HTML())
}
