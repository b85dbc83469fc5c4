package swagger

import (
	"fmt"
	"regexp"
)

// bucketRegexp captures the first path segment.
var bucketRegexp = regexp.MustCompile(`^/([\p{L}\p{N}_]+)`)

// bucketKey returns "/" + the first path segment of a raw template.
func bucketKey(path string) (string, bool) {
	m := bucketRegexp.FindStringSubmatch(path)
	if m == nil {
		return "", false
	}
	return "/" + m[1], true
}

// resourceGrouper decides which routes are documented. It is built fresh
// for every run from the configured groups and allowed endpoints.
type resourceGrouper struct {
	groups  []*regexp.Regexp
	allowed map[string]struct{}
}

func newResourceGrouper(groups, allowedEndpoints []string) (*resourceGrouper, error) {
	g := &resourceGrouper{
		groups:  make([]*regexp.Regexp, 0, len(groups)),
		allowed: make(map[string]struct{}, len(allowedEndpoints)),
	}
	for _, pattern := range groups {
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, fmt.Errorf("swagger: invalid group pattern %q: %w", pattern, err)
		}
		g.groups = append(g.groups, re)
	}
	for _, endpoint := range allowedEndpoints {
		g.allowed[endpoint] = struct{}{}
	}
	return g, nil
}

// include reports whether the route passes the group and endpoint filters.
// The endpoint allow-list only applies when groups are configured.
func (g *resourceGrouper) include(d RouteDescriptor) bool {
	if len(g.groups) == 0 {
		return true
	}
	if !g.matchesGroup(d.Path) {
		return false
	}
	if len(g.allowed) == 0 {
		return true
	}
	_, ok := g.allowed[d.Endpoint]
	return ok
}

func (g *resourceGrouper) matchesGroup(path string) bool {
	for _, re := range g.groups {
		if re.MatchString(path) {
			return true
		}
	}
	return false
}
