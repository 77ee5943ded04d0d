package ports

import "go.actr.dev/actr/internal/core/domain"

// LockStore persists the lock file that pins installed dependencies.
//
//go:generate go run go.uber.org/mock/mockgen -source=lock.go -destination=mocks/mock_lock.go -package=mocks
type LockStore interface {
	// Load reads the lock file, returning an empty lock file when none
	// exists yet.
	Load() (*domain.LockFile, error)

	// Write persists the lock file.
	Write(l *domain.LockFile) error
}
