// Package fingerprint computes content identities with xxhash.
package fingerprint

import (
	"fmt"
	"sort"

	"github.com/cespare/xxhash/v2"
	"go.actr.dev/actr/internal/core/domain"
	"go.actr.dev/actr/internal/core/ports"
)

var _ ports.FingerprintValidator = (*Validator)(nil)

// Algorithm identifies the hash used for computed fingerprints.
const Algorithm = "xxh64"

// Validator implements ports.FingerprintValidator. All comparisons are
// exact-match; semantic comparison of proto content happens elsewhere.
type Validator struct{}

// NewValidator creates a fingerprint validator.
func NewValidator() *Validator {
	return &Validator{}
}

// ComputeServiceFingerprint hashes a service's proto surface. Files are
// hashed in name order so the identity is independent of input order.
func (v *Validator) ComputeServiceFingerprint(files []domain.ProtoFile) domain.Fingerprint {
	sorted := make([]domain.ProtoFile, len(files))
	copy(sorted, files)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Name < sorted[j].Name })

	hasher := xxhash.New()
	for _, f := range sorted {
		_, _ = hasher.WriteString(f.Name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(f.Content)
		_, _ = hasher.Write([]byte{0})
	}
	return domain.Fingerprint{
		Algorithm: Algorithm,
		Value:     fmt.Sprintf("%016x", hasher.Sum64()),
	}
}

// VerifyFingerprint reports structural equality of algorithm and value.
func (v *Validator) VerifyFingerprint(expected, actual domain.Fingerprint) bool {
	return expected.Equal(actual)
}

// ComputeProjectFingerprint hashes every resolved dependency's identity in
// alias order, detecting drift across the whole project.
func (v *Validator) ComputeProjectFingerprint(deps []domain.ResolvedDependency) domain.Fingerprint {
	sorted := make([]domain.ResolvedDependency, len(deps))
	copy(sorted, deps)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Spec.Alias < sorted[j].Spec.Alias })

	hasher := xxhash.New()
	for _, dep := range sorted {
		_, _ = hasher.WriteString(dep.Spec.Alias)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(dep.Spec.Name)
		_, _ = hasher.Write([]byte{0})
		_, _ = hasher.WriteString(dep.Fingerprint)
		_, _ = hasher.Write([]byte{0})
	}
	return domain.Fingerprint{
		Algorithm: Algorithm,
		Value:     fmt.Sprintf("%016x", hasher.Sum64()),
	}
}

// GenerateLockFingerprint derives the identity recorded in a lock entry.
// When the dependency already carries a fingerprint it is pinned verbatim;
// otherwise it is computed from the resolved proto files.
func (v *Validator) GenerateLockFingerprint(dep domain.ResolvedDependency) domain.Fingerprint {
	if dep.Fingerprint != "" {
		return domain.ParseFingerprint(dep.Fingerprint)
	}
	return v.ComputeServiceFingerprint(dep.ProtoFiles)
}
