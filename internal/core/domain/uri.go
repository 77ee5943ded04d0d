package domain

import (
	"strings"

	"go.trai.ch/zerr"
)

// URIScheme is the identity scheme for actr services.
const URIScheme = "actr://"

// ActrURI is a parsed service identity URI of the form
// actr://<service-name>/[?version=<v>][&fingerprint=<algo:hash>].
type ActrURI struct {
	Name        string
	Version     string
	Fingerprint string
}

// ParseActrURI parses a service identity URI. The name ends at the first
// '/' or '?'; the version and fingerprint query parameters are optional and
// order-independent; unknown parameters are ignored.
func ParseActrURI(raw string) (ActrURI, error) {
	rest, ok := strings.CutPrefix(raw, URIScheme)
	if !ok {
		return ActrURI{}, zerr.With(ErrInvalidURI, "uri", raw)
	}

	name := rest
	if i := strings.IndexAny(rest, "/?"); i >= 0 {
		name = rest[:i]
		rest = rest[i:]
	} else {
		rest = ""
	}
	if name == "" {
		return ActrURI{}, zerr.With(ErrInvalidURI, "uri", raw)
	}

	uri := ActrURI{Name: name}
	rest = strings.TrimPrefix(rest, "/")
	query, ok := strings.CutPrefix(rest, "?")
	if !ok {
		return uri, nil
	}

	for param := range strings.SplitSeq(query, "&") {
		key, value, _ := strings.Cut(param, "=")
		switch key {
		case "version":
			uri.Version = value
		case "fingerprint":
			uri.Fingerprint = value
		}
	}
	return uri, nil
}

// String renders the canonical URI form.
func (u ActrURI) String() string {
	var b strings.Builder
	b.WriteString(URIScheme)
	b.WriteString(u.Name)
	b.WriteString("/")
	sep := "?"
	if u.Version != "" {
		b.WriteString(sep + "version=" + u.Version)
		sep = "&"
	}
	if u.Fingerprint != "" {
		b.WriteString(sep + "fingerprint=" + u.Fingerprint)
	}
	return b.String()
}
