package domain

// DependencySpec is a project's declared dependency on a remote service.
// The unique key within one project is Alias; two specs sharing an alias
// but differing in name or fingerprint are a conflict.
type DependencySpec struct {
	Name        string
	Alias       string
	URI         string
	Version     string
	Fingerprint string
}

// ResolvedDependency is the outcome of resolution. Fingerprint stays empty
// when unknown at resolution time and is filled in later by fingerprint
// validation.
type ResolvedDependency struct {
	Spec        DependencySpec
	Fingerprint string
	ProtoFiles  []ProtoFile
}

// ConflictType classifies a dependency conflict.
type ConflictType string

const (
	// VersionConflict: two specs share an alias but name or fingerprint
	// differ.
	VersionConflict ConflictType = "version_conflict"

	// FingerprintMismatch: two specs share a service name and both carry a
	// non-empty fingerprint, but the fingerprints differ.
	FingerprintMismatch ConflictType = "fingerprint_mismatch"
)

// ConflictReport describes one conflicting dependency pair.
type ConflictReport struct {
	DependencyA string
	DependencyB string
	Type        ConflictType
	Description string
}

// DependencyGraph is the flat dependency model: deduplicated alias nodes.
// Edges are reserved for transitive dependencies, which this version does
// not resolve, so HasCycles is always false today.
type DependencyGraph struct {
	Nodes     []string
	Edges     [][2]string
	HasCycles bool
}
