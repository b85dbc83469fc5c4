package swagger

import (
	"regexp"
	"strings"
)

// DefaultStopMarker ends documentation text. The marker line and every
// line after it are dropped.
const DefaultStopMarker = "`Try it out!"

// paramTagRegexp matches ":<tag> [type] <name>: <description>". Type and
// name are Unicode words.
var paramTagRegexp = regexp.MustCompile(`^:(arg|argument|param|parameter|query)(?:\s+([\p{L}\p{N}_]+))?\s+([\p{L}\p{N}_]+):\s*(.*)$`)

// DocBlock is parsed handler documentation.
type DocBlock struct {
	// Lines are the non-tag lines in order, trimmed.
	Lines []string
	// Parameters are the tagged parameters in order.
	Parameters []Parameter
}

// Notes returns the description lines joined by newlines.
func (b DocBlock) Notes() string {
	return strings.Join(b.Lines, "\n")
}

// DocParser parses handler documentation text.
type DocParser struct {
	// StopMarker overrides DefaultStopMarker when set.
	StopMarker string
}

// ParseDocString parses text with the default stop marker.
func ParseDocString(text string) DocBlock {
	return DocParser{}.Parse(text)
}

// Parse splits text into description lines and parameters. Tag lines that
// do not fully match the tag syntax are kept as description. Empty text
// yields an empty block.
func (p DocParser) Parse(text string) DocBlock {
	marker := p.StopMarker
	if marker == "" {
		marker = DefaultStopMarker
	}

	block := DocBlock{
		Lines:      []string{},
		Parameters: []Parameter{},
	}

	for _, line := range strings.FieldsFunc(text, isLineBreak) {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, marker) {
			break
		}

		m := paramTagRegexp.FindStringSubmatch(line)
		if m == nil {
			block.Lines = append(block.Lines, line)
			continue
		}

		param := Parameter{
			Name:        m[3],
			Description: upperFirst(m[4]),
			Type:        m[2],
			ParamType:   LocationPath,
			Required:    true,
		}
		if m[1] == "query" {
			param.ParamType = LocationQuery
			param.Required = false
		}
		block.Parameters = append(block.Parameters, param)
	}

	return block
}

// isLineBreak reports whether r ends a line. Besides \n and \r it accepts
// the vertical tab, form feed, file/group/record separators, NEL and the
// Unicode line and paragraph separators.
func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', '\x1c', '\x1d', '\x1e', '\u0085', '\u2028', '\u2029':
		return true
	}
	return false
}
