package fs

import (
	"os"
	"path/filepath"
)

// stage collects files in a temporary sibling directory and moves them into
// place on commit, so a reader never observes a half-written export.
type stage struct {
	baseDir string
	name    string
}

func newStage(baseDir, name string) (*stage, error) {
	s := &stage{baseDir: baseDir, name: name}
	if err := os.RemoveAll(s.tempDir()); err != nil {
		return nil, err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *stage) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *stage) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

func (s *stage) save(file string, content []byte) error {
	return os.WriteFile(filepath.Join(s.tempDir(), file), content, 0644)
}

func (s *stage) commit() error {
	if err := os.RemoveAll(s.finalDir()); err != nil {
		return err
	}
	return os.Rename(s.tempDir(), s.finalDir())
}

func (s *stage) abort() error {
	return os.RemoveAll(s.tempDir())
}
