package swagger

import (
	"net/http"
	"strings"
)

// RouteDescriptor describes one registered route. The generator never
// modifies it.
type RouteDescriptor struct {
	// Path is the raw router template, e.g. "/users/<int:id>".
	Path string
	// Endpoint is the endpoint name, e.g. "get_user".
	Endpoint string
	// Methods is the route method set. HEAD and OPTIONS are ignored.
	Methods []string
	// Handler is the qualified handler name, e.g. "main.getUser". It is
	// used to look up documentation when Doc is empty.
	Handler string
	// Doc is the handler documentation text.
	Doc string
}

// operationMethods returns the upper-cased, deduplicated methods in
// declared order without HEAD and OPTIONS.
func (d RouteDescriptor) operationMethods() []string {
	methods := make([]string, 0, len(d.Methods))
	for _, m := range d.Methods {
		m = strings.ToUpper(strings.TrimSpace(m))
		if m == "" || m == http.MethodHead || m == http.MethodOptions {
			continue
		}
		if !contains(methods, m) {
			methods = append(methods, m)
		}
	}
	return methods
}

// routeBuilder turns descriptors into operations.
type routeBuilder struct {
	parser DocParser
	docs   DocSource
}

// doc resolves the documentation text of a route.
func (b routeBuilder) doc(d RouteDescriptor) string {
	if d.Doc != "" {
		return d.Doc
	}
	if b.docs != nil && d.Handler != "" {
		if text, ok := b.docs.Doc(d.Handler); ok {
			return text
		}
	}
	return ""
}

// build returns the normalized path and one operation per method.
func (b routeBuilder) build(d RouteDescriptor) (string, []Operation) {
	path := NormalizePath(d.Path)
	block := b.parser.Parse(b.doc(d))
	notes := block.Notes()
	summary := Summarize(d.Endpoint)
	nickname := CamelCase(d.Endpoint)

	methods := d.operationMethods()
	ops := make([]Operation, 0, len(methods))
	for _, m := range methods {
		params := make([]Parameter, len(block.Parameters))
		copy(params, block.Parameters)
		ops = append(ops, Operation{
			Method:     m,
			Summary:    summary,
			Notes:      notes,
			Nickname:   nickname,
			Parameters: params,
		})
	}
	return path, ops
}

// pathIndex accumulates operations per normalized path, keeping paths in
// first-seen order and operations in append order.
type pathIndex struct {
	order   []string
	entries map[string]*API
}

func newPathIndex() *pathIndex {
	return &pathIndex{entries: make(map[string]*API)}
}

func (ix *pathIndex) add(path string, ops ...Operation) {
	entry, ok := ix.entries[path]
	if !ok {
		entry = &API{Path: path, Operations: []Operation{}}
		ix.entries[path] = entry
		ix.order = append(ix.order, path)
	}
	entry.Operations = append(entry.Operations, ops...)
}

func (ix *pathIndex) apis() []API {
	apis := make([]API, 0, len(ix.order))
	for _, p := range ix.order {
		apis = append(apis, *ix.entries[p])
	}
	return apis
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
