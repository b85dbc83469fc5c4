package swagger

import (
	"regexp"
	"strings"
)

// placeholderRegexp matches router placeholders: <name> or <converter:name>.
var placeholderRegexp = regexp.MustCompile(`<([^<>]+)>`)

// NormalizePath rewrites router placeholders to {name} form, dropping the
// converter prefix. Templates without placeholders are returned unchanged.
//
//	/users/<int:id>/posts/<slug>  ->  /users/{id}/posts/{slug}
func NormalizePath(tpl string) string {
	return placeholderRegexp.ReplaceAllStringFunc(tpl, func(m string) string {
		return "{" + placeholderName(m[1:len(m)-1]) + "}"
	})
}

// PathPlaceholders returns the placeholder names of tpl in order.
func PathPlaceholders(tpl string) []string {
	matches := placeholderRegexp.FindAllStringSubmatch(tpl, -1)
	names := make([]string, 0, len(matches))
	for _, m := range matches {
		names = append(names, placeholderName(m[1]))
	}
	return names
}

// placeholderName strips everything up to and including the last colon.
func placeholderName(inner string) string {
	if i := strings.LastIndexByte(inner, ':'); i >= 0 {
		return inner[i+1:]
	}
	return inner
}
