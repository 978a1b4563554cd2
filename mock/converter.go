package mock

import "github.com/fwojciec/marsnap"

var _ marsnap.Converter = (*Converter)(nil)

// Converter is a mock implementation of marsnap.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
