package usecase

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{name: "simple", input: "Amaka Accessories", expected: "amaka-accessories"},
		{name: "punctuation collapses", input: "Bob's  Shop!!", expected: "bob-s-shop"},
		{name: "leading and trailing junk", input: "  ***Shop***  ", expected: "shop"},
		{name: "digits survive", input: "Store 24/7", expected: "store-24-7"},
		{name: "only junk", input: "!!!", expected: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, Slugify(tc.input))
		})
	}
}

func TestNewSlug(t *testing.T) {
	slug := NewSlug("Amaka Accessories")

	require.True(t, strings.HasPrefix(slug, "amaka-accessories-"))

	suffix := strings.TrimPrefix(slug, "amaka-accessories-")
	assert.Len(t, suffix, slugSuffixLen)
	for _, r := range suffix {
		assert.Contains(t, tokenAlphabet, string(r))
	}
}

func TestNewSlug_EmptyNameFallsBack(t *testing.T) {
	slug := NewSlug("???")

	assert.True(t, strings.HasPrefix(slug, "store-"))
}

func TestNewSlug_Varies(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		seen[NewSlug("shop")] = true
	}

	// 20 подряд одинаковых суффиксов при 36^5 вариантов означали бы сломанный генератор
	assert.Greater(t, len(seen), 1)
}
