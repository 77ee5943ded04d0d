package ports

import "go.actr.dev/actr/internal/core/domain"

// ConfigManager handles safe, transactional mutation of the project
// manifest.
//
//go:generate go run go.uber.org/mock/mockgen -source=config.go -destination=mocks/mock_config.go -package=mocks
type ConfigManager interface {
	// Load reads and parses the manifest through the typed schema.
	Load() (*domain.Manifest, error)

	// Path returns the absolute manifest path.
	Path() string

	// UpdateDependency inserts or overwrites one dependencies.<alias> table
	// derived from the spec's URI and fingerprint. The manifest is parsed
	// generically so unrelated tables survive the rewrite.
	UpdateDependency(spec domain.DependencySpec) error

	// Backup copies the manifest to a timestamped sibling file. It fails if
	// the manifest does not exist.
	Backup() (*domain.ConfigBackup, error)

	// RestoreBackup overwrites the manifest from the backup copy and
	// consumes the handle. The restored content is not re-validated.
	RestoreBackup(b *domain.ConfigBackup) error

	// RemoveBackup deletes the backup copy and consumes the handle.
	RemoveBackup(b *domain.ConfigBackup) error

	// Validate performs structural checks on the manifest without reaching
	// the network.
	Validate() (domain.ConfigValidation, error)
}
