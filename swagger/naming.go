package swagger

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// CamelCase converts a snake_case or space separated identifier to
// camelCase. Underscores and whitespace separate words. The first word is
// lower-cased; later words are capitalized, so the rest of each word is
// lower-cased too.
//
//	get_user_by_id  ->  getUserById
//	get_user_ID     ->  getUserId
func CamelCase(s string) string {
	words := strings.FieldsFunc(s, isWordBoundary)
	if len(words) == 0 {
		return ""
	}

	var b strings.Builder
	b.WriteString(strings.ToLower(words[0]))
	for _, w := range words[1:] {
		b.WriteString(capitalize(w))
	}
	return b.String()
}

// Summarize turns an endpoint name into a human readable summary.
//
//	get_user  ->  Get user
func Summarize(endpoint string) string {
	return upperFirst(strings.ReplaceAll(endpoint, "_", " "))
}

// snakeCase converts a Go identifier to snake_case.
//
//	getUserByID  ->  get_user_by_id
func snakeCase(s string) string {
	runes := []rune(s)
	var b strings.Builder
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prev != '_' && (unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower)) {
				b.WriteByte('_')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

func isWordBoundary(r rune) bool {
	return r == '_' || unicode.IsSpace(r)
}

// capitalize upper-cases the first rune of s and lower-cases the rest.
func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + strings.ToLower(s[size:])
}

// upperFirst upper-cases the first rune of s.
func upperFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 || r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
