package domain

import (
	"slices"
	"strings"
)

// ServiceFilter narrows discovery results client-side. All populated
// criteria must match.
type ServiceFilter struct {
	// NamePattern glob-matches either the short service name or the
	// qualified "manufacturer:name" form. '*' is the only wildcard.
	NamePattern string

	// VersionRange matches when it equals the selected version or appears
	// in the entry's tags.
	VersionRange string

	// Tags must all be present in the entry's tags.
	Tags []string
}

// Matches reports whether an entry with the given names, version, and tags
// passes the filter.
func (f *ServiceFilter) Matches(shortName, qualifiedName, version string, tags []string) bool {
	if f == nil {
		return true
	}
	if f.NamePattern != "" &&
		!GlobMatch(f.NamePattern, shortName) &&
		!GlobMatch(f.NamePattern, qualifiedName) {
		return false
	}
	if f.VersionRange != "" &&
		f.VersionRange != version &&
		!slices.Contains(tags, f.VersionRange) {
		return false
	}
	for _, tag := range f.Tags {
		if !slices.Contains(tags, tag) {
			return false
		}
	}
	return true
}

// GlobMatch matches s against a shell-style glob where '*' is the only
// wildcard. A pattern without '*' requires exact equality; leading and
// trailing literal segments anchor the match; interior segments must be
// found in order without overlap.
func GlobMatch(pattern, s string) bool {
	if !strings.Contains(pattern, "*") {
		return pattern == s
	}

	segments := strings.Split(pattern, "*")

	if lead := segments[0]; lead != "" {
		if !strings.HasPrefix(s, lead) {
			return false
		}
		s = s[len(lead):]
	}
	if trail := segments[len(segments)-1]; trail != "" {
		if !strings.HasSuffix(s, trail) {
			return false
		}
		s = s[:len(s)-len(trail)]
	}

	for _, seg := range segments[1 : len(segments)-1] {
		if seg == "" {
			continue
		}
		i := strings.Index(s, seg)
		if i < 0 {
			return false
		}
		s = s[i+len(seg):]
	}
	return true
}
