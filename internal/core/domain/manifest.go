package domain

import "time"

// ManifestFilename is the project manifest name at the project root.
const ManifestFilename = "actr.toml"

// Manifest is the typed view of the project manifest. It is used for
// reading and structural validation; mutation goes through a generic
// decode so tables this schema does not know about survive a rewrite.
type Manifest struct {
	Package      PackageSection             `toml:"package"`
	Signaling    SignalingSection           `toml:"signaling,omitempty"`
	Dependencies map[string]DependencyEntry `toml:"dependencies"`
}

// SignalingSection configures the signaling endpoint for discovery.
type SignalingSection struct {
	Server string `toml:"server,omitempty"`
	Realm  uint32 `toml:"realm,omitempty"`
}

// PackageSection identifies the project itself.
type PackageSection struct {
	Name        string `toml:"name"`
	Version     string `toml:"version"`
	Description string `toml:"description,omitempty"`
}

// DependencyEntry is one dependencies.<alias> table.
type DependencyEntry struct {
	ActrType    string `toml:"actr_type"`
	Fingerprint string `toml:"fingerprint"`
}

// Validate performs structural checks only: a non-empty package name and,
// per dependency, a non-empty alias and type name. It never reaches the
// network.
func (m *Manifest) Validate() ConfigValidation {
	v := ConfigValidation{Valid: true}
	if m.Package.Name == "" {
		v.Valid = false
		v.Errors = append(v.Errors, "package name must not be empty")
	}
	for alias, dep := range m.Dependencies {
		if alias == "" {
			v.Valid = false
			v.Errors = append(v.Errors, "dependency alias must not be empty")
		}
		if dep.ActrType == "" {
			v.Valid = false
			v.Errors = append(v.Errors, "dependency "+alias+": actr_type must not be empty")
		}
	}
	return v
}

// DependencySpecs converts the manifest's dependency tables into specs for
// resolution. The actr_type "<mfr>+<name>" yields the service name.
func (m *Manifest) DependencySpecs() []DependencySpec {
	specs := make([]DependencySpec, 0, len(m.Dependencies))
	for alias, dep := range m.Dependencies {
		name := dep.ActrType
		if _, short, ok := cutActrType(dep.ActrType); ok {
			name = short
		}
		specs = append(specs, DependencySpec{
			Name:        name,
			Alias:       alias,
			URI:         URIScheme + name + "/",
			Fingerprint: dep.Fingerprint,
		})
	}
	return specs
}

func cutActrType(actrType string) (manufacturer, name string, ok bool) {
	for i := range len(actrType) {
		if actrType[i] == '+' {
			return actrType[:i], actrType[i+1:], true
		}
	}
	return "", actrType, false
}

// ConfigBackup is a single-use handle to a manifest backup copy. Exactly
// one of RestoreBackup or RemoveBackup must consume it.
type ConfigBackup struct {
	OriginalPath string
	BackupPath   string
	Timestamp    time.Time

	consumed bool
}

// Consume marks the handle used. It returns false if the handle was
// already consumed.
func (b *ConfigBackup) Consume() bool {
	if b.consumed {
		return false
	}
	b.consumed = true
	return true
}
