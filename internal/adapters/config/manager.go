// Package config implements the transactional project manifest manager.
package config

import (
	"bytes"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ConfigManager = (*Manager)(nil)

// Manager implements ports.ConfigManager over one TOML manifest file.
type Manager struct {
	path string
	log  ports.Logger
}

// NewManager creates a manager for the manifest under the given project
// directory.
func NewManager(projectDir string, log ports.Logger) *Manager {
	return &Manager{
		path: filepath.Join(projectDir, domain.ManifestFilename),
		log:  log,
	}
}

// Path returns the absolute manifest path.
func (m *Manager) Path() string {
	return m.path
}

// Load reads and parses the manifest through the typed schema.
func (m *Manager) Load() (*domain.Manifest, error) {
	var manifest domain.Manifest
	if _, err := toml.DecodeFile(m.path, &manifest); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfig, err.Error()), "path", m.path)
	}
	return &manifest, nil
}

// UpdateDependency inserts or overwrites one dependencies.<alias> table.
// The manifest is decoded generically, not through the typed schema, so
// tables and keys the schema does not know about survive the rewrite.
func (m *Manager) UpdateDependency(spec domain.DependencySpec) error {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfig, err.Error()), "path", m.path)
	}

	var doc map[string]any
	if err := toml.Unmarshal(data, &doc); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfig, err.Error()), "path", m.path)
	}

	deps, ok := doc["dependencies"].(map[string]any)
	if !ok {
		deps = make(map[string]any)
		doc["dependencies"] = deps
	}
	deps[spec.Alias] = map[string]any{
		"actr_type":   actrTypeFromSpec(spec),
		"fingerprint": spec.Fingerprint,
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(doc); err != nil {
		return zerr.Wrap(domain.ErrConfig, err.Error())
	}
	if err := os.WriteFile(m.path, buf.Bytes(), domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfig, err.Error()), "path", m.path)
	}
	return nil
}

// actrTypeFromSpec derives the manifest type string from the spec's URI,
// falling back to the spec name when the URI does not parse.
func actrTypeFromSpec(spec domain.DependencySpec) string {
	name := spec.Name
	if uri, err := domain.ParseActrURI(spec.URI); err == nil {
		name = uri.Name
	}
	if strings.Contains(name, "+") {
		return name
	}
	return domain.FormatActrType("", name)
}

// Backup copies the manifest to a timestamped sibling file. It fails if
// the manifest does not exist.
func (m *Manager) Backup() (*domain.ConfigBackup, error) {
	data, err := os.ReadFile(m.path)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfig, err.Error()), "path", m.path)
	}

	now := time.Now()
	backupPath := m.path + ".bak." + strconv.FormatInt(now.Unix(), 10)
	if err := os.WriteFile(backupPath, data, domain.FilePerm); err != nil {
		return nil, zerr.With(zerr.Wrap(domain.ErrConfig, err.Error()), "path", backupPath)
	}

	return &domain.ConfigBackup{
		OriginalPath: m.path,
		BackupPath:   backupPath,
		Timestamp:    now,
	}, nil
}

// RestoreBackup overwrites the manifest from the backup copy and consumes
// the handle. The restored content is not re-validated.
func (m *Manager) RestoreBackup(b *domain.ConfigBackup) error {
	if !b.Consume() {
		return domain.ErrBackupConsumed
	}
	data, err := os.ReadFile(b.BackupPath)
	if err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfig, err.Error()), "path", b.BackupPath)
	}
	if err := os.WriteFile(b.OriginalPath, data, domain.FilePerm); err != nil {
		return zerr.With(zerr.Wrap(domain.ErrConfig, err.Error()), "path", b.OriginalPath)
	}
	_ = os.Remove(b.BackupPath)
	m.log.Info("manifest restored from backup")
	return nil
}

// RemoveBackup deletes the backup copy and consumes the handle.
func (m *Manager) RemoveBackup(b *domain.ConfigBackup) error {
	if !b.Consume() {
		return domain.ErrBackupConsumed
	}
	if err := os.Remove(b.BackupPath); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return zerr.With(zerr.Wrap(domain.ErrConfig, err.Error()), "path", b.BackupPath)
	}
	return nil
}

// Validate performs structural checks on the manifest. Parse failures come
// back as an invalid status, not an error, so validation runs always
// produce a complete report.
func (m *Manager) Validate() (domain.ConfigValidation, error) {
	manifest, err := m.Load()
	if err != nil {
		return domain.ConfigValidation{
			Valid:  false,
			Errors: []string{"manifest unreadable: " + err.Error()},
		}, nil
	}
	return manifest.Validate(), nil
}
