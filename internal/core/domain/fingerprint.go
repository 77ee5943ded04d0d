// Package domain contains the core domain models for the actr
// dependency-management subsystem.
package domain

import "strings"

// Fingerprint is the opaque, content-derived identity of a service's proto
// surface. It is immutable once computed; two fingerprints are equal iff
// both fields match exactly.
type Fingerprint struct {
	Algorithm string
	Value     string
}

// Equal reports whether two fingerprints are identical in both algorithm
// and value. There is no fuzzy or semantic comparison at this layer.
func (f Fingerprint) Equal(other Fingerprint) bool {
	return f.Algorithm == other.Algorithm && f.Value == other.Value
}

// IsZero reports whether the fingerprint is unset.
func (f Fingerprint) IsZero() bool {
	return f.Algorithm == "" && f.Value == ""
}

// String renders the canonical "<algorithm>:<value>" form used in URIs and
// the manifest.
func (f Fingerprint) String() string {
	if f.IsZero() {
		return ""
	}
	return f.Algorithm + ":" + f.Value
}

// ParseFingerprint parses the "<algorithm>:<value>" form. A string without
// a separator is treated as a bare value with an empty algorithm, matching
// what older manifests carry.
func ParseFingerprint(s string) Fingerprint {
	if s == "" {
		return Fingerprint{}
	}
	algo, value, ok := strings.Cut(s, ":")
	if !ok {
		return Fingerprint{Value: s}
	}
	return Fingerprint{Algorithm: algo, Value: value}
}
