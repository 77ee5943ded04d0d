package ports

import "go.actr.dev/actr/internal/core/domain"

// FingerprintValidator computes and compares content identities. Equality
// is exact-match only.
//
//go:generate go run go.uber.org/mock/mockgen -source=fingerprint.go -destination=mocks/mock_fingerprint.go -package=mocks
type FingerprintValidator interface {
	// ComputeServiceFingerprint derives the content identity of one
	// service's proto surface.
	ComputeServiceFingerprint(files []domain.ProtoFile) domain.Fingerprint

	// VerifyFingerprint reports structural equality of algorithm and value.
	VerifyFingerprint(expected, actual domain.Fingerprint) bool

	// ComputeProjectFingerprint derives one identity over every resolved
	// dependency, for drift detection across the whole project.
	ComputeProjectFingerprint(deps []domain.ResolvedDependency) domain.Fingerprint

	// GenerateLockFingerprint derives the identity recorded in a lock
	// entry.
	GenerateLockFingerprint(dep domain.ResolvedDependency) domain.Fingerprint
}
