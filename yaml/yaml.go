// Package yaml loads selector table overrides from YAML files.
package yaml

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/marsnap"
	"gopkg.in/yaml.v3"
)

// LoadTargets reads a YAML file and applies it on top of
// marsnap.DefaultTargets. Keys absent from the file keep their defaults.
// Unknown keys are rejected so a misspelt selector is not silently ignored.
func LoadTargets(path string) (marsnap.Targets, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return marsnap.Targets{}, marsnap.Errorf(marsnap.ENOTFOUND, "config file %s not found", path)
	}
	if err != nil {
		return marsnap.Targets{}, marsnap.Errorf(marsnap.EINVALID, "reading config file: %v", err)
	}
	return ParseTargets(data)
}

// ParseTargets decodes YAML overrides on top of marsnap.DefaultTargets and
// validates the result.
func ParseTargets(data []byte) (marsnap.Targets, error) {
	targets := marsnap.DefaultTargets()

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&targets); err != nil && !errors.Is(err, io.EOF) {
		return marsnap.Targets{}, marsnap.Errorf(marsnap.EINVALID, "parsing config: %v", err)
	}

	if err := targets.Validate(); err != nil {
		return marsnap.Targets{}, err
	}
	return targets, nil
}
