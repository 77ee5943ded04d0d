package domain

import "time"

// LockFilename is the lock file name at the project root.
const LockFilename = "actr.lock.yaml"

// LockFileVersion is the current lock file schema version.
const LockFileVersion = 1

// LockFile is the reproducible snapshot of installed dependencies, written
// only after a fully successful install.
type LockFile struct {
	Version int                  `yaml:"version"`
	Entries map[string]LockEntry `yaml:"entries"`
}

// LockEntry pins one installed dependency by exact fingerprint.
type LockEntry struct {
	ActrType    string    `yaml:"actr_type"`
	Fingerprint string    `yaml:"fingerprint"`
	ProtoFiles  []string  `yaml:"proto_files,omitempty"`
	LockedAt    time.Time `yaml:"locked_at"`
}

// NewLockFile creates an empty lock file at the current schema version.
func NewLockFile() *LockFile {
	return &LockFile{
		Version: LockFileVersion,
		Entries: make(map[string]LockEntry),
	}
}

// Pin records one resolved dependency, overwriting any previous entry for
// the same alias.
func (l *LockFile) Pin(dep ResolvedDependency, lockedAt time.Time) {
	files := make([]string, 0, len(dep.ProtoFiles))
	for _, f := range dep.ProtoFiles {
		files = append(files, f.Name)
	}
	l.Entries[dep.Spec.Alias] = LockEntry{
		ActrType:    FormatActrType("", dep.Spec.Name),
		Fingerprint: dep.Fingerprint,
		ProtoFiles:  files,
		LockedAt:    lockedAt,
	}
}
