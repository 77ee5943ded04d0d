package domain

import (
	"strings"
	"time"
)

// ProtoFile is one proto definition owned by a service. Content is the full
// textual file; Services is populated lazily the first time a caller asks
// for parsed service names.
type ProtoFile struct {
	Name    string
	Path    string
	Content string

	services []string
}

// ServiceNames returns the service definitions declared in the file,
// parsing the content on first use.
func (p *ProtoFile) ServiceNames() []string {
	if p.services == nil {
		p.services = parseServiceNames(p.Content)
	}
	return p.services
}

// parseServiceNames extracts "service <Name> {" declarations. This is a
// line-level scan, not a full proto parse; semantic fingerprinting of proto
// content is delegated to the fingerprint validator.
func parseServiceNames(content string) []string {
	names := make([]string, 0, 1)
	for line := range strings.Lines(content) {
		trimmed := strings.TrimSpace(line)
		rest, ok := strings.CutPrefix(trimmed, "service ")
		if !ok {
			continue
		}
		name, _, _ := strings.Cut(rest, "{")
		name = strings.TrimSpace(name)
		if name != "" {
			names = append(names, name)
		}
	}
	return names
}

// CachedProto is the result of a cache read: the files found on disk plus
// the fingerprint recomputed from their bytes at read time.
type CachedProto struct {
	Files       []ProtoFile
	Fingerprint Fingerprint
	CachedAt    time.Time
	ExpiresAt   *time.Time
}
