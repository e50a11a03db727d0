package localize_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/localize"
)

func TestInterpolate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		template string
		params   localize.M
		expected string
	}{
		{
			name:     "no placeholders and no params is identity",
			template: "Hello, World!",
			params:   nil,
			expected: "Hello, World!",
		},
		{
			name:     "no placeholders with empty params is identity",
			template: "Nothing to see here.",
			params:   localize.M{},
			expected: "Nothing to see here.",
		},
		{
			name:     "single placeholder",
			template: "Hello, {name}!",
			params:   localize.M{"name": "John"},
			expected: "Hello, John!",
		},
		{
			name:     "multiple placeholders",
			template: "Welcome, {name}! You have {count} messages.",
			params:   localize.M{"name": "Alice", "count": 5},
			expected: "Welcome, Alice! You have 5 messages.",
		},
		{
			name:     "missing param leaves placeholder untouched",
			template: "Hello, {name}! Your ID is {id}.",
			params:   localize.M{"name": "Bob"},
			expected: "Hello, Bob! Your ID is {id}.",
		},
		{
			name:     "param without placeholder is a no-op",
			template: "Hello!",
			params:   localize.M{"name": "Carol"},
			expected: "Hello!",
		},
		{
			name:     "repeated placeholders all replaced",
			template: "{name} is here. Hello, {name}!",
			params:   localize.M{"name": "Charlie"},
			expected: "Charlie is here. Hello, Charlie!",
		},
		{
			name:     "integer value stringified",
			template: "You have {count} items.",
			params:   localize.M{"count": 42},
			expected: "You have 42 items.",
		},
		{
			name:     "unbound placeholder survives other replacements",
			template: "{a} and {b}",
			params:   localize.M{"a": "A"},
			expected: "A and {b}",
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.expected, localize.Interpolate(tt.template, tt.params))
		})
	}
}

func TestInterpolateSequentialQuirk(t *testing.T) {
	t.Parallel()

	// Replacement runs per parameter over the running string, so text
	// inserted by one parameter is visible to the passes that follow it.
	// With unordered params the outcome depends on iteration order; both
	// results are valid, and the quirk is documented rather than fixed.
	result := localize.Interpolate("{outer}", localize.M{"outer": "{inner}", "inner": "deep"})
	require.Contains(t, []string{"deep", "{inner}"}, result)
}
