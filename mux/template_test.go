package mux

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAngleIndices(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		expected  []int
		expectErr bool
	}{
		{name: "no placeholders", input: "/foo/bar", expected: nil},
		{name: "single placeholder", input: "/foo/<id>", expected: []int{5, 9}},
		{name: "two placeholders", input: "/<a>/<b>", expected: []int{1, 4, 5, 8}},
		{name: "typed placeholder", input: "/<int:id>", expected: []int{1, 9}},
		{name: "nested placeholder", input: "/<id:<x>>", expectErr: true},
		{name: "unbalanced open", input: "/<id", expectErr: true},
		{name: "unbalanced close", input: "/id>", expectErr: true},
		{name: "empty string", input: "", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			idxs, err := angleIndices(tt.input)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.expected, idxs)
			}
		})
	}
}

func TestSplitPlaceholder(t *testing.T) {
	t.Run("default converter", func(t *testing.T) {
		conv, name := splitPlaceholder("id")
		assert.Equal(t, "string", conv)
		assert.Equal(t, "id", name)
	})

	t.Run("typed", func(t *testing.T) {
		conv, name := splitPlaceholder("int:id")
		assert.Equal(t, "int", conv)
		assert.Equal(t, "id", name)
	})
}

func TestCheckDuplicateVars(t *testing.T) {
	t.Run("no duplicates", func(t *testing.T) {
		assert.NoError(t, checkDuplicateVars([]string{"a", "b", "c"}))
	})

	t.Run("with duplicates", func(t *testing.T) {
		err := checkDuplicateVars([]string{"a", "b", "a"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicated route variable")
	})

	t.Run("empty", func(t *testing.T) {
		assert.NoError(t, checkDuplicateVars(nil))
	})
}

func TestNewRouteTemplate(t *testing.T) {
	t.Run("static path", func(t *testing.T) {
		rt, err := newRouteTemplate("/foo/bar", false, false)
		require.NoError(t, err)
		assert.Equal(t, "/foo/bar", rt.template)
		assert.True(t, rt.MatchString("/foo/bar"))
		assert.False(t, rt.MatchString("/foo/baz"))
		assert.Empty(t, rt.varsN)
	})

	t.Run("untyped placeholder", func(t *testing.T) {
		rt, err := newRouteTemplate("/users/<name>", false, false)
		require.NoError(t, err)
		assert.True(t, rt.MatchString("/users/alice"))
		assert.False(t, rt.MatchString("/users/"))
		assert.False(t, rt.MatchString("/users/a/b"))
		assert.Equal(t, []string{"name"}, rt.varsN)
	})

	t.Run("int converter", func(t *testing.T) {
		rt, err := newRouteTemplate("/users/<int:id>", false, false)
		require.NoError(t, err)
		assert.True(t, rt.MatchString("/users/42"))
		assert.False(t, rt.MatchString("/users/abc"))
	})

	t.Run("float converter", func(t *testing.T) {
		rt, err := newRouteTemplate("/prices/<float:value>", false, false)
		require.NoError(t, err)
		assert.True(t, rt.MatchString("/prices/1.5"))
		assert.False(t, rt.MatchString("/prices/15"))
	})

	t.Run("path converter spans segments", func(t *testing.T) {
		rt, err := newRouteTemplate("/files/<path:name>", false, false)
		require.NoError(t, err)
		vars := map[string]string{}
		require.True(t, rt.setVars("/files/a/b/c.txt", vars))
		assert.Equal(t, "a/b/c.txt", vars["name"])
	})

	t.Run("placeholder inside a segment", func(t *testing.T) {
		rt, err := newRouteTemplate("/docs/<name>.json", false, false)
		require.NoError(t, err)
		vars := map[string]string{}
		require.True(t, rt.setVars("/docs/users.json", vars))
		assert.Equal(t, "users", vars["name"])
	})

	t.Run("multiple placeholders", func(t *testing.T) {
		rt, err := newRouteTemplate("/users/<int:id>/posts/<uuid:pid>", false, false)
		require.NoError(t, err)
		assert.True(t, rt.MatchString("/users/42/posts/550e8400-e29b-41d4-a716-446655440000"))
		assert.Equal(t, []string{"id", "pid"}, rt.varsN)
	})

	t.Run("prefix", func(t *testing.T) {
		rt, err := newRouteTemplate("/api/v1", true, false)
		require.NoError(t, err)
		assert.True(t, rt.MatchString("/api/v1/users"))
		assert.True(t, rt.MatchString("/api/v1"))
		assert.False(t, rt.MatchString("/api/v2"))
	})

	t.Run("strict slash", func(t *testing.T) {
		rt, err := newRouteTemplate("/users/", false, true)
		require.NoError(t, err)
		assert.True(t, rt.MatchString("/users"))
		assert.True(t, rt.MatchString("/users/"))
	})

	t.Run("missing leading slash", func(t *testing.T) {
		_, err := newRouteTemplate("users", false, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "must start with a slash")
	})

	t.Run("duplicate variables", func(t *testing.T) {
		_, err := newRouteTemplate("/<id>/<int:id>", false, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "duplicated route variable")
	})

	t.Run("empty variable name", func(t *testing.T) {
		_, err := newRouteTemplate("/<>", false, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "invalid variable name")
	})

	t.Run("unknown converter", func(t *testing.T) {
		_, err := newRouteTemplate("/<money:amount>", false, false)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "unknown converter")
	})

	t.Run("percent sign in literal survives reverse", func(t *testing.T) {
		rt, err := newRouteTemplate("/100%/<id>", false, false)
		require.NoError(t, err)
		u, err := rt.url(map[string]string{"id": "x"})
		require.NoError(t, err)
		assert.Equal(t, "/100%/x", u)
	})
}

func TestRouteTemplateURL(t *testing.T) {
	rt, err := newRouteTemplate("/users/<int:id>", false, false)
	require.NoError(t, err)

	t.Run("builds path", func(t *testing.T) {
		u, err := rt.url(map[string]string{"id": "42"})
		require.NoError(t, err)
		assert.Equal(t, "/users/42", u)
	})

	t.Run("missing variable", func(t *testing.T) {
		_, err := rt.url(map[string]string{})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "missing route variable")
	})

	t.Run("value rejected by converter", func(t *testing.T) {
		_, err := rt.url(map[string]string{"id": "abc"})
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "doesn't match")
	})
}

func TestCompileRegexpCache(t *testing.T) {
	re1, err := compileRegexp(`^/cache-test/[0-9]+$`)
	require.NoError(t, err)
	re2, err := compileRegexp(`^/cache-test/[0-9]+$`)
	require.NoError(t, err)
	assert.Same(t, re1, re2)

	_, err = compileRegexp(`(`)
	assert.Error(t, err)
}
