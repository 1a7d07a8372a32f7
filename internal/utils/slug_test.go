package utils

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Sunrise PG near campus", "sunrise-pg-near-campus"},
		{"2BHK Flat, Salt Lake!", "2bhk-flat-salt-lake"},
		{"  spaced   out  ", "spaced-out"},
		{"already-a-slug", "already-a-slug"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), "Slugify(%q)", tt.in)
	}
}

func TestMakeSlugAppendsSuffix(t *testing.T) {
	slug := MakeSlug("Sunrise PG")
	assert.True(t, strings.HasPrefix(slug, "sunrise-pg-"))
	assert.Greater(t, len(slug), len("sunrise-pg-"))
}
