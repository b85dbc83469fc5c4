package mux

import (
	"bytes"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

// regexpCache caches compiled regular expressions by pattern string.
// The number of unique patterns is bounded by the number of registered
// routes, so the cache grows to a fixed size and stays there.
var regexpCache sync.Map

// compileRegexp returns a cached *regexp.Regexp for the given pattern,
// compiling and caching it on first use.
func compileRegexp(pattern string) (*regexp.Regexp, error) {
	if v, ok := regexpCache.Load(pattern); ok {
		return v.(*regexp.Regexp), nil
	}

	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}

	actual, _ := regexpCache.LoadOrStore(pattern, re)

	return actual.(*regexp.Regexp), nil
}

// varNameRegexp restricts placeholder names to identifiers.
var varNameRegexp = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_]*$`)

// routeTemplate is a compiled path template such as "/users/<int:id>".
type routeTemplate struct {
	// template is the original template string.
	template string
	// regexp is the compiled regular expression.
	regexp *regexp.Regexp
	// reverse is the template with %s placeholders for Sprintf.
	reverse string
	// varsN are the variable names in order.
	varsN []string
	// varsC are the matchers validating each variable value.
	varsC []varMatcher
	// prefix indicates a prefix match (no $ anchor).
	prefix bool
	// strictSlash indicates optional trailing slash matching.
	strictSlash bool
}

// newRouteTemplate parses a path template made of literal text and
// <converter:name> or <name> placeholders.
func newRouteTemplate(tpl string, prefix, strictSlash bool) (*routeTemplate, error) {
	if !strings.HasPrefix(tpl, "/") {
		return nil, fmt.Errorf("mux: path template %q must start with a slash", tpl)
	}

	idxs, err := angleIndices(tpl)
	if err != nil {
		return nil, err
	}

	var (
		pattern bytes.Buffer
		reverse bytes.Buffer
		varsN   []string
		varsC   []varMatcher
		end     int
	)

	pattern.WriteByte('^')

	for i := 0; i < len(idxs); i += 2 {
		raw := tpl[end:idxs[i]]
		end = idxs[i+1]

		convName, name := splitPlaceholder(tpl[idxs[i]+1 : end-1])
		if !varNameRegexp.MatchString(name) {
			return nil, fmt.Errorf("mux: invalid variable name %q in %q", name, tpl)
		}

		conv, err := lookupConverter(convName)
		if err != nil {
			return nil, err
		}

		fmt.Fprintf(&pattern, "%s(%s)", regexp.QuoteMeta(raw), conv.pattern)
		reverse.WriteString(strings.ReplaceAll(raw, "%", "%%"))
		reverse.WriteString("%s")

		varsN = append(varsN, name)
		varsC = append(varsC, conv.matcher)
	}

	raw := tpl[end:]

	// For strictSlash, strip the trailing slash from the pattern so it can
	// be replaced with an optional [/]? group. The reverse template keeps
	// the original template for URL building.
	rawForPattern := raw
	if strictSlash && !prefix && strings.HasSuffix(rawForPattern, "/") {
		rawForPattern = strings.TrimSuffix(rawForPattern, "/")
	}

	pattern.WriteString(regexp.QuoteMeta(rawForPattern))
	reverse.WriteString(strings.ReplaceAll(raw, "%", "%%"))

	if !prefix {
		if strictSlash {
			pattern.WriteString("[/]?")
		}
		pattern.WriteByte('$')
	}

	if err := checkDuplicateVars(varsN); err != nil {
		return nil, err
	}

	reg, err := compileRegexp(pattern.String())
	if err != nil {
		return nil, err
	}

	return &routeTemplate{
		template:    tpl,
		regexp:      reg,
		reverse:     reverse.String(),
		varsN:       varsN,
		varsC:       varsC,
		prefix:      prefix,
		strictSlash: strictSlash,
	}, nil
}

// splitPlaceholder splits the inside of a placeholder into converter and
// variable name. Placeholders without a colon use the default converter.
func splitPlaceholder(inner string) (string, string) {
	conv, name, ok := strings.Cut(inner, ":")
	if !ok {
		return defaultConverter, inner
	}
	return conv, name
}

// MatchString reports whether the path matches the template.
func (t *routeTemplate) MatchString(path string) bool {
	return t.regexp.MatchString(path)
}

// setVars extracts variables from path and writes them into dst.
// Returns true if the path matched.
func (t *routeTemplate) setVars(path string, dst map[string]string) bool {
	matches := t.regexp.FindStringSubmatch(path)
	if matches == nil {
		return false
	}
	for i, name := range t.varsN {
		if i+1 < len(matches) {
			dst[name] = matches[i+1]
		}
	}
	return true
}

// url builds a path from the template and the given variable values.
func (t *routeTemplate) url(values map[string]string) (string, error) {
	urlValues := make([]any, len(t.varsN))
	for i, name := range t.varsN {
		v, ok := values[name]
		if !ok {
			return "", fmt.Errorf("mux: missing route variable %q", name)
		}
		if !t.varsC[i].MatchString(v) {
			return "", fmt.Errorf("mux: variable %q doesn't match, expected %q", name, t.varsC[i].String())
		}
		urlValues[i] = v
	}
	return fmt.Sprintf(t.reverse, urlValues...), nil
}

// angleIndices returns the start and end+1 indices of each <...> pair in s.
// Placeholders cannot nest; unbalanced or nested brackets are an error.
func angleIndices(s string) ([]int, error) {
	var (
		idxs []int
		open bool
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '<':
			if open {
				return nil, fmt.Errorf("mux: nested placeholder in %q", s)
			}
			open = true
			idxs = append(idxs, i)
		case '>':
			if !open {
				return nil, fmt.Errorf("mux: unbalanced angle brackets in %q", s)
			}
			open = false
			idxs = append(idxs, i+1)
		}
	}
	if open {
		return nil, fmt.Errorf("mux: unbalanced angle brackets in %q", s)
	}
	return idxs, nil
}

// checkDuplicateVars returns an error if any variable name is repeated.
func checkDuplicateVars(vars []string) error {
	seen := make(map[string]bool, len(vars))
	for _, v := range vars {
		if seen[v] {
			return fmt.Errorf("mux: duplicated route variable %q", v)
		}
		seen[v] = true
	}
	return nil
}
