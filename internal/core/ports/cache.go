package ports

import "go.actr.dev/actr/internal/core/domain"

// ProtoCache is the content-organized local store for installed proto
// files, rooted under the project tree so the project stays reproducible
// without network access after install.
//
//go:generate go run go.uber.org/mock/mockgen -source=cache.go -destination=mocks/mock_cache.go -package=mocks
type ProtoCache interface {
	// CacheProto writes each file under protos/remote/<service>/,
	// normalizing filenames to end in ".proto". Re-caching identical files
	// overwrites rather than duplicates. It returns the written paths.
	CacheProto(service string, files []domain.ProtoFile) ([]string, error)

	// GetCachedProto reads one service's cached files. It returns nil when
	// the directory is absent or empty. The fingerprint is recomputed from
	// the file bytes at read time.
	GetCachedProto(service string) (*domain.CachedProto, error)

	// Invalidate removes one service's cache directory.
	Invalidate(service string) error

	// Clear removes the whole protos tree.
	Clear() error
}
