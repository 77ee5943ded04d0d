package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

var _ ports.LockStore = (*LockFileStore)(nil)

// LockFileStore implements ports.LockStore over actr.lock.yaml at the
// project root.
type LockFileStore struct {
	path string
}

// NewLockStore creates a lock store for the given project directory.
func NewLockStore(projectDir string) *LockFileStore {
	return &LockFileStore{path: filepath.Join(projectDir, domain.LockFilename)}
}

// Load reads the lock file, returning an empty lock file when none exists.
func (s *LockFileStore) Load() (*domain.LockFile, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return domain.NewLockFile(), nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read lock file"), "path", s.path)
	}

	var lock domain.LockFile
	if err := yaml.Unmarshal(data, &lock); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to parse lock file"), "path", s.path)
	}
	if lock.Entries == nil {
		lock.Entries = make(map[string]domain.LockEntry)
	}
	return &lock, nil
}

// Write persists the lock file.
func (s *LockFileStore) Write(l *domain.LockFile) error {
	data, err := yaml.Marshal(l)
	if err != nil {
		return zerr.Wrap(err, "failed to encode lock file")
	}
	if err := os.WriteFile(s.path, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write lock file"), "path", s.path)
	}
	return nil
}
