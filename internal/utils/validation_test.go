package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsKebabCase(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"up", true},
		{"albury-up", true},
		{"platform-1a", true},
		{"1", true},
		{"", false},
		{"Up", false},
		{"-up", false},
		{"up-", false},
		{"up--down", false},
		{"up down", false},
		{"up_down", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsKebabCase(tt.input))
		})
	}
}

func TestParseIntStrict(t *testing.T) {
	v, err := ParseIntStrict("0042")
	require.NoError(t, err)
	assert.Equal(t, 42, v)

	for _, bad := range []string{"", "+4", "4.0", "four", " 4"} {
		_, err := ParseIntStrict(bad)
		assert.Error(t, err, "input %q should fail", bad)
	}
}
