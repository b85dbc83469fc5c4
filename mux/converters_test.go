package mux

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConverters(t *testing.T) {
	tests := []struct {
		conv    string
		valid   []string
		invalid []string
	}{
		{conv: "string", valid: []string{"abc", "a-b_c"}, invalid: []string{"a/b", ""}},
		{conv: "int", valid: []string{"0", "42"}, invalid: []string{"-1", "4.2", "x"}},
		{conv: "float", valid: []string{"1.5", "0.25"}, invalid: []string{"15", ".5"}},
		{conv: "path", valid: []string{"a", "a/b/c"}, invalid: []string{"/a", ""}},
		{conv: "uuid", valid: []string{"550e8400-e29b-41d4-a716-446655440000"}, invalid: []string{"550e8400"}},
		{conv: "slug", valid: []string{"hello-world"}, invalid: []string{"-hello", "hello--world"}},
		{conv: "alpha", valid: []string{"abc"}, invalid: []string{"abc1"}},
		{conv: "alphanum", valid: []string{"abc1"}, invalid: []string{"abc-1"}},
		{conv: "date", valid: []string{"2024-01-31"}, invalid: []string{"2024-1-31"}},
		{conv: "hex", valid: []string{"deadBEEF"}, invalid: []string{"xyz"}},
		{conv: "domain", valid: []string{"example.com", "a.b.example.org"}, invalid: []string{"-bad.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.conv, func(t *testing.T) {
			c, err := lookupConverter(tt.conv)
			require.NoError(t, err)
			for _, v := range tt.valid {
				assert.True(t, c.matcher.MatchString(v), "expected %q to match", v)
			}
			for _, v := range tt.invalid {
				assert.False(t, c.matcher.MatchString(v), "expected %q not to match", v)
			}
		})
	}
}

func TestDomainConverterLength(t *testing.T) {
	c, err := lookupConverter("domain")
	require.NoError(t, err)

	label := strings.Repeat("a", 60)
	long := strings.Join([]string{label, label, label, label, label}, ".") + ".com"
	require.Greater(t, len(long), 253)
	assert.False(t, c.matcher.MatchString(long))
	assert.NotEmpty(t, c.matcher.String())
}

func TestLookupConverterUnknown(t *testing.T) {
	_, err := lookupConverter("money")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown converter "money"`)
}
