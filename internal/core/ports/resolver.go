package ports

import "go.actr.dev/actr/internal/core/domain"

// DependencyResolver turns raw specs into resolved dependencies and
// detects conflicts before any mutation happens.
//
//go:generate go run go.uber.org/mock/mockgen -source=resolver.go -destination=mocks/mock_resolver.go -package=mocks
type DependencyResolver interface {
	// ResolveDependencies maps specs 1:1 today, carrying fingerprints
	// through when already known. It is the extension point for remote
	// fingerprint lookup.
	ResolveDependencies(specs []domain.DependencySpec) ([]domain.ResolvedDependency, error)

	// CheckConflicts scans all pairs and accumulates every conflict rather
	// than short-circuiting.
	CheckConflicts(resolved []domain.ResolvedDependency) []domain.ConflictReport

	// BuildDependencyGraph builds the deduplicated alias node list. Edges
	// are reserved for transitive dependencies.
	BuildDependencyGraph(resolved []domain.ResolvedDependency) domain.DependencyGraph
}
