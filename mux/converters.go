package mux

import (
	"fmt"
	"regexp"
)

// defaultConverter is used for placeholders without a converter prefix.
const defaultConverter = "string"

// varMatcher validates a single route variable value.
// *regexp.Regexp satisfies this interface.
type varMatcher interface {
	MatchString(string) bool
	String() string
}

// lengthMatcher wraps a regexp with an additional maximum length constraint.
type lengthMatcher struct {
	re     *regexp.Regexp
	maxLen int
}

func (m *lengthMatcher) MatchString(s string) bool {
	return len(s) <= m.maxLen && m.re.MatchString(s)
}

func (m *lengthMatcher) String() string {
	return m.re.String()
}

// converter holds the pattern a placeholder expands to and a pre-compiled
// matcher used to validate values when building URLs.
type converter struct {
	pattern string
	matcher varMatcher
}

// converters maps converter names to their compiled patterns.
// Used in route templates: <converter:name>.
var converters = func() map[string]converter {
	raw := map[string]string{
		"string":   `[^/]+`,
		"int":      `[0-9]+`,
		"float":    `[0-9]+\.[0-9]+`,
		"path":     `[^/].*?`,
		"uuid":     `[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}`,
		"slug":     `[a-zA-Z0-9]+(?:-[a-zA-Z0-9]+)*`,
		"alpha":    `[a-zA-Z]+`,
		"alphanum": `[a-zA-Z0-9]+`,
		"date":     `[0-9]{4}-[0-9]{2}-[0-9]{2}`,
		"hex":      `[0-9a-fA-F]+`,
		// RFC 1035/1123: labels 1-63 chars, total up to 253 chars.
		"domain": `(?:[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?\.)*[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?`,
	}

	maxLengths := map[string]int{
		"domain": 253,
	}

	m := make(map[string]converter, len(raw))
	for name, pattern := range raw {
		re := regexp.MustCompile(fmt.Sprintf("^%s$", pattern))

		var matcher varMatcher = re
		if maxLen, ok := maxLengths[name]; ok {
			matcher = &lengthMatcher{re: re, maxLen: maxLen}
		}

		m[name] = converter{
			pattern: pattern,
			matcher: matcher,
		}
	}

	return m
}()

// lookupConverter returns the converter registered under name.
func lookupConverter(name string) (converter, error) {
	c, ok := converters[name]
	if !ok {
		return converter{}, fmt.Errorf("mux: unknown converter %q", name)
	}
	return c, nil
}
