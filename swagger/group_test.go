package swagger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBucketKey(t *testing.T) {
	tests := []struct {
		path string
		key  string
		ok   bool
	}{
		{path: "/users", key: "/users", ok: true},
		{path: "/users/<int:id>", key: "/users", ok: true},
		{path: "/user_groups/x", key: "/user_groups", ok: true},
		{path: "/api-v1/x", key: "/api", ok: true},
		{path: "/café/<id>", key: "/café", ok: true},
		{path: "/größe", key: "/größe", ok: true},
		{path: "/v2/items", key: "/v2", ok: true},
		{path: "/", ok: false},
		{path: "/<id>", ok: false},
		{path: "users", ok: false},
		{path: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			key, ok := bucketKey(tt.path)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.key, key)
		})
	}
}

func TestResourceGrouper(t *testing.T) {
	route := func(path, endpoint string) RouteDescriptor {
		return RouteDescriptor{Path: path, Endpoint: endpoint, Methods: []string{"GET"}}
	}

	t.Run("no groups includes everything", func(t *testing.T) {
		g, err := newResourceGrouper(nil, []string{"ignored"})
		require.NoError(t, err)
		assert.True(t, g.include(route("/admin/stats", "stats")))
		assert.True(t, g.include(route("/users", "list_users")))
	})

	t.Run("groups filter by raw path", func(t *testing.T) {
		g, err := newResourceGrouper([]string{"/users/"}, nil)
		require.NoError(t, err)
		assert.True(t, g.include(route("/users/<int:id>", "anything")))
		assert.False(t, g.include(route("/admin/stats", "anything")))
		assert.False(t, g.include(route("/users", "list_users")))
	})

	t.Run("group patterns are unanchored", func(t *testing.T) {
		g, err := newResourceGrouper([]string{"stats"}, nil)
		require.NoError(t, err)
		assert.True(t, g.include(route("/admin/stats", "stats")))
	})

	t.Run("allow-list applies with groups", func(t *testing.T) {
		g, err := newResourceGrouper([]string{"/users/"}, []string{"get_user"})
		require.NoError(t, err)
		assert.True(t, g.include(route("/users/<int:id>", "get_user")))
		assert.False(t, g.include(route("/users/<int:id>/friends", "list_users")))
	})

	t.Run("any matching group includes", func(t *testing.T) {
		g, err := newResourceGrouper([]string{"^/users", "^/admin"}, nil)
		require.NoError(t, err)
		assert.True(t, g.include(route("/admin/stats", "stats")))
		assert.True(t, g.include(route("/users", "users")))
		assert.False(t, g.include(route("/items", "items")))
	})

	t.Run("invalid pattern", func(t *testing.T) {
		_, err := newResourceGrouper([]string{"("}, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid group pattern")
	})

	t.Run("caller slices are not retained", func(t *testing.T) {
		allowed := []string{"get_user"}
		g, err := newResourceGrouper([]string{"/users/"}, allowed)
		require.NoError(t, err)
		allowed[0] = "other"
		assert.True(t, g.include(route("/users/<id>", "get_user")))
	})
}
