// Package resolve turns dependency specs into resolved dependencies and
// detects conflicts before any mutation happens.
package resolve

import (
	"fmt"
	"sort"

	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports"
)

var _ ports.DependencyResolver = (*Resolver)(nil)

// Resolver implements ports.DependencyResolver. Resolution is pure: no
// network, no filesystem.
type Resolver struct{}

// NewResolver creates a dependency resolver.
func NewResolver() *Resolver {
	return &Resolver{}
}

// ResolveDependencies maps specs 1:1, carrying fingerprints through when
// already known. Remote fingerprint lookup hooks in here once transitive
// resolution lands.
func (r *Resolver) ResolveDependencies(specs []domain.DependencySpec) ([]domain.ResolvedDependency, error) {
	resolved := make([]domain.ResolvedDependency, 0, len(specs))
	for _, spec := range specs {
		resolved = append(resolved, domain.ResolvedDependency{
			Spec:        spec,
			Fingerprint: spec.Fingerprint,
		})
	}
	return resolved, nil
}

// CheckConflicts scans all pairs and accumulates every conflict rather
// than short-circuiting on the first.
//
// Two dependencies conflict when they share an alias but differ in name or
// fingerprint (a version conflict), or when they share a service name and
// both carry a non-empty fingerprint that differs (a fingerprint
// mismatch).
func (r *Resolver) CheckConflicts(resolved []domain.ResolvedDependency) []domain.ConflictReport {
	conflicts := make([]domain.ConflictReport, 0)
	for i := range resolved {
		for j := i + 1; j < len(resolved); j++ {
			a, b := &resolved[i], &resolved[j]

			if a.Spec.Alias == b.Spec.Alias &&
				(a.Spec.Name != b.Spec.Name || a.Fingerprint != b.Fingerprint) {
				conflicts = append(conflicts, domain.ConflictReport{
					DependencyA: a.Spec.Alias,
					DependencyB: b.Spec.Alias,
					Type:        domain.VersionConflict,
					Description: fmt.Sprintf(
						"alias %q refers to both %q and %q",
						a.Spec.Alias, a.Spec.Name, b.Spec.Name),
				})
				continue
			}

			if a.Spec.Name == b.Spec.Name &&
				a.Fingerprint != "" && b.Fingerprint != "" &&
				a.Fingerprint != b.Fingerprint {
				conflicts = append(conflicts, domain.ConflictReport{
					DependencyA: a.Spec.Alias,
					DependencyB: b.Spec.Alias,
					Type:        domain.FingerprintMismatch,
					Description: fmt.Sprintf(
						"service %q is pinned to fingerprints %q and %q",
						a.Spec.Name, a.Fingerprint, b.Fingerprint),
				})
			}
		}
	}
	return conflicts
}

// BuildDependencyGraph builds the deduplicated alias node list, sorted for
// determinism. Edges are reserved for transitive dependencies, which this
// flat model does not resolve, so cycles cannot occur.
func (r *Resolver) BuildDependencyGraph(resolved []domain.ResolvedDependency) domain.DependencyGraph {
	seen := make(map[string]bool, len(resolved))
	nodes := make([]string, 0, len(resolved))
	for _, dep := range resolved {
		if seen[dep.Spec.Alias] {
			continue
		}
		seen[dep.Spec.Alias] = true
		nodes = append(nodes, dep.Spec.Alias)
	}
	sort.Strings(nodes)

	return domain.DependencyGraph{
		Nodes:     nodes,
		Edges:     [][2]string{},
		HasCycles: false,
	}
}
