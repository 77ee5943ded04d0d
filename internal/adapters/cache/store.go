// Package cache implements the project-local, content-organized proto
// store.
package cache

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ProtoCache = (*Store)(nil)

// remoteDir is the cache layout under the project root.
const remoteDir = "protos/remote"

// Store implements ports.ProtoCache under <projectDir>/protos/remote,
// independent of any system-wide cache so the project stays self-contained
// after install.
type Store struct {
	projectDir  string
	fingerprint ports.FingerprintValidator
}

// NewStore creates a proto cache rooted under the given project directory.
func NewStore(projectDir string, fingerprint ports.FingerprintValidator) *Store {
	return &Store{projectDir: projectDir, fingerprint: fingerprint}
}

func (s *Store) serviceDir(service string) string {
	return filepath.Join(s.projectDir, remoteDir, service)
}

// CacheProto writes each file under protos/remote/<service>/, normalizing
// filenames to end in ".proto". Writing the same file set twice overwrites
// rather than duplicates.
func (s *Store) CacheProto(service string, files []domain.ProtoFile) ([]string, error) {
	dir := s.serviceDir(service)
	if err := os.MkdirAll(dir, domain.DirPerm); err != nil {
		return nil, zerr.With(zerr.Wrap(err, "failed to create cache directory"), "dir", dir)
	}

	written := make([]string, 0, len(files))
	for _, f := range files {
		path := filepath.Join(dir, normalizeProtoName(f.Name))
		if err := os.WriteFile(path, []byte(f.Content), domain.FilePerm); err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to write proto file"), "path", path)
		}
		written = append(written, path)
	}
	return written, nil
}

// normalizeProtoName ensures the on-disk name ends in ".proto".
func normalizeProtoName(name string) string {
	name = filepath.Base(name)
	if name == "" || name == "." {
		name = "service"
	}
	if !strings.HasSuffix(name, ".proto") {
		name += ".proto"
	}
	return name
}

// GetCachedProto reads one service's cached files. It returns nil when the
// directory is absent or empty. The fingerprint is recomputed from the
// file bytes at read time, so callers can rely on it for verification.
func (s *Store) GetCachedProto(service string) (*domain.CachedProto, error) {
	dir := s.serviceDir(service)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, nil
		}
		return nil, zerr.With(zerr.Wrap(err, "failed to read cache directory"), "dir", dir)
	}

	var cachedAt time.Time
	files := make([]domain.ProtoFile, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".proto") {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, zerr.With(zerr.Wrap(err, "failed to read cached proto"), "path", path)
		}
		if info, err := entry.Info(); err == nil && info.ModTime().After(cachedAt) {
			cachedAt = info.ModTime()
		}
		files = append(files, domain.ProtoFile{
			Name:    entry.Name(),
			Path:    path,
			Content: string(content),
		})
	}
	if len(files) == 0 {
		return nil, nil
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Name < files[j].Name })
	return &domain.CachedProto{
		Files:       files,
		Fingerprint: s.fingerprint.ComputeServiceFingerprint(files),
		CachedAt:    cachedAt,
	}, nil
}

// Invalidate removes one service's cache directory.
func (s *Store) Invalidate(service string) error {
	dir := s.serviceDir(service)
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to invalidate cache"), "dir", dir)
	}
	return nil
}

// Clear removes the whole protos tree.
func (s *Store) Clear() error {
	dir := filepath.Join(s.projectDir, "protos")
	if err := os.RemoveAll(dir); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to clear cache"), "dir", dir)
	}
	return nil
}
