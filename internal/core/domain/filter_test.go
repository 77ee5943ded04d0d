package domain_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.actr.dev/actr/internal/core/domain"
)

func TestGlobMatch(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		s       string
		want    bool
	}{
		{name: "star matches everything", pattern: "*", s: "anything", want: true},
		{name: "star matches empty", pattern: "*", s: "", want: true},
		{name: "no star requires exact match", pattern: "user-service", s: "user-service", want: true},
		{name: "no star rejects substring", pattern: "user", s: "user-service", want: false},
		{name: "prefix anchor matches", pattern: "user-*", s: "user-service", want: true},
		{name: "prefix anchor rejects", pattern: "user-*", s: "service-user", want: false},
		{name: "suffix anchor matches", pattern: "*-service", s: "user-service", want: true},
		{name: "suffix anchor rejects", pattern: "*-service", s: "service-user", want: false},
		{name: "both anchors", pattern: "user-*-v2", s: "user-media-v2", want: true},
		{name: "interior segment in order", pattern: "a*b*c", s: "a-x-b-y-c", want: true},
		{name: "interior segment out of order", pattern: "a*c*b", s: "a-x-b-y-c", want: false},
		{name: "empty pattern matches empty", pattern: "", s: "", want: true},
		{name: "empty pattern rejects non-empty", pattern: "", s: "x", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.GlobMatch(tt.pattern, tt.s))
		})
	}
}

func TestServiceFilter_Matches(t *testing.T) {
	tags := []string{"latest", "stable", "1.2.0"}

	tests := []struct {
		name   string
		filter *domain.ServiceFilter
		want   bool
	}{
		{name: "nil filter matches everything", filter: nil, want: true},
		{name: "empty filter matches everything", filter: &domain.ServiceFilter{}, want: true},
		{
			name:   "name pattern against short name",
			filter: &domain.ServiceFilter{NamePattern: "user-*"},
			want:   true,
		},
		{
			name:   "name pattern against qualified name",
			filter: &domain.ServiceFilter{NamePattern: "actr:user-*"},
			want:   true,
		},
		{
			name:   "name pattern rejects",
			filter: &domain.ServiceFilter{NamePattern: "media-*"},
			want:   false,
		},
		{
			name:   "version range matches selected version",
			filter: &domain.ServiceFilter{VersionRange: "latest"},
			want:   true,
		},
		{
			name:   "version range matches a tag",
			filter: &domain.ServiceFilter{VersionRange: "1.2.0"},
			want:   true,
		},
		{
			name:   "version range rejects",
			filter: &domain.ServiceFilter{VersionRange: "2.0.0"},
			want:   false,
		},
		{
			name:   "all tags must be present",
			filter: &domain.ServiceFilter{Tags: []string{"stable", "latest"}},
			want:   true,
		},
		{
			name:   "missing tag rejects",
			filter: &domain.ServiceFilter{Tags: []string{"stable", "beta"}},
			want:   false,
		},
		{
			name: "criteria combine with and",
			filter: &domain.ServiceFilter{
				NamePattern:  "user-*",
				VersionRange: "latest",
				Tags:         []string{"stable"},
			},
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.filter.Matches("user-service", "actr:user-service", "latest", tags)
			assert.Equal(t, tt.want, got)
		})
	}
}
