package client

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugifyMatchesServiceRule(t *testing.T) {
	tests := []struct {
		title    string
		expected string
	}{
		{"My New Project!", "my-new-project"},
		{"  Spaced   Out  ", "spaced-out"},
		{"Already-Hyphenated Title", "already-hyphenated-title"},
		{"C++ & Go: A Comparison", "c-go-a-comparison"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, Slugify(tt.title))
	}
}

func TestSlugifyIdempotent(t *testing.T) {
	titles := []string{"My New Project!", "Already-Hyphenated Title", "MiXeD CaSe 123"}
	for _, title := range titles {
		once := Slugify(title)
		assert.Equal(t, once, Slugify(once))
	}
}
