package mux

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"golang.org/x/net/http/httpguts"
)

// parentRoute is the interface implemented by types that can serve as
// a route's parent (Router or Route via subrouter).
type parentRoute interface {
	getPathTemplate() *routeTemplate
}

// Route stores information to match a request and build URLs.
type Route struct {
	parent      parentRoute
	handler     http.Handler
	tpl         *routeTemplate
	methods     []string
	name        string
	doc         string
	err         error
	namedRoutes map[string]*Route

	strictSlash bool

	staticCtxOnce sync.Once
	staticCtx     *routeContext
}

// Match matches this route against the request.
//
// A route whose path matches but whose method set does not accept the
// request method records ErrMethodMismatch so the router can answer
// 405 (or the automatic OPTIONS reply) instead of 404.
func (r *Route) Match(req *http.Request, match *RouteMatch) bool {
	if r.err != nil {
		return false
	}

	path := req.URL.Path
	if r.tpl != nil && !r.tpl.MatchString(path) {
		return false
	}

	// Subrouter mounts delegate method checks to their own routes.
	if router, ok := r.handler.(*Router); ok {
		return router.Match(req, match)
	}

	if !r.acceptsMethod(req.Method) {
		match.MatchErr = ErrMethodMismatch
		return false
	}

	match.Route = r
	match.Handler = r.handler
	match.MatchErr = nil
	if r.tpl != nil && len(r.tpl.varsN) > 0 {
		if match.Vars == nil {
			match.Vars = make(map[string]string, len(r.tpl.varsN))
		}
		r.tpl.setVars(path, match.Vars)
	}

	return true
}

// declaredMethods returns the explicitly declared methods, defaulting to GET.
func (r *Route) declaredMethods() []string {
	if len(r.methods) == 0 {
		return []string{http.MethodGet}
	}
	return r.methods
}

// acceptsMethod reports whether the route handler serves method.
// GET routes also serve HEAD. OPTIONS is answered by the router unless
// declared explicitly.
func (r *Route) acceptsMethod(method string) bool {
	declared := r.declaredMethods()
	if matchInArray(declared, method) {
		return true
	}
	return method == http.MethodHead && matchInArray(declared, http.MethodGet)
}

// addTemplate compiles tpl as the route path, prefixed by the parent
// subrouter's template if any.
func (r *Route) addTemplate(tpl string, prefix bool) error {
	if r.err != nil {
		return r.err
	}

	if r.parent != nil {
		if pt := r.parent.getPathTemplate(); pt != nil {
			tpl = strings.TrimRight(pt.template, "/") + tpl
		}
	}

	rt, err := newRouteTemplate(tpl, prefix, r.strictSlash)
	if err != nil {
		return err
	}
	r.tpl = rt
	return nil
}

// Handler sets a handler for the route.
func (r *Route) Handler(handler http.Handler) *Route {
	if r.err == nil {
		r.handler = handler
	}
	return r
}

// HandlerFunc sets a handler function for the route.
func (r *Route) HandlerFunc(f func(http.ResponseWriter, *http.Request)) *Route {
	return r.Handler(http.HandlerFunc(f))
}

// GetHandler returns the handler for the route, if any.
func (r *Route) GetHandler() http.Handler {
	return r.handler
}

// Name sets the endpoint name for the route, used to build URLs.
// Returns an error if the route already has a name.
func (r *Route) Name(name string) *Route {
	if r.name != "" {
		r.err = fmt.Errorf("mux: route already has name %q, can't set %q", r.name, name)
		return r
	}
	if r.err == nil {
		r.name = name
		if r.namedRoutes != nil {
			r.namedRoutes[name] = r
		}
	}
	return r
}

// GetName returns the endpoint name for the route, if any.
func (r *Route) GetName() string {
	return r.name
}

// Doc attaches documentation text to the route. The text follows the
// handler docstring conventions understood by the swagger package.
func (r *Route) Doc(text string) *Route {
	if r.err == nil {
		r.doc = text
	}
	return r
}

// GetDoc returns the documentation text attached to the route.
func (r *Route) GetDoc() string {
	return r.doc
}

// Path adds a path template to the route per RFC 3986 Section 3.3.
// Placeholders use the <converter:name> or <name> form.
func (r *Route) Path(tpl string) *Route {
	r.err = r.addTemplate(tpl, false)
	return r
}

// PathPrefix adds a path prefix template to the route.
func (r *Route) PathPrefix(tpl string) *Route {
	r.err = r.addTemplate(tpl, true)
	return r
}

// Methods sets the methods the route accepts. Method names are request
// method tokens per RFC 9110 Section 9.1. Calling Methods again replaces
// the previous set.
func (r *Route) Methods(methods ...string) *Route {
	if r.err != nil {
		return r
	}
	set := make([]string, 0, len(methods))
	for _, m := range methods {
		m = strings.ToUpper(m)
		if !httpguts.ValidHeaderFieldName(m) {
			r.err = fmt.Errorf("mux: invalid method %q", m)
			return r
		}
		if !matchInArray(set, m) {
			set = append(set, m)
		}
	}
	r.methods = set
	return r
}

// Subrouter creates a new Router for the route. Routes registered on it
// inherit the route's path template as prefix.
func (r *Route) Subrouter() *Router {
	router := &Router{
		parent:      r,
		namedRoutes: r.namedRoutes,
		strictSlash: r.strictSlash,
	}
	r.handler = router
	return router
}

// URL builds a URL path for the route from key/value pairs of route
// variables. Values are validated against the placeholder converters.
func (r *Route) URL(pairs ...string) (*url.URL, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.tpl == nil {
		return nil, errors.New("mux: route doesn't have a path")
	}
	values, err := mapFromPairsToString(pairs...)
	if err != nil {
		return nil, err
	}
	path, err := r.tpl.url(values)
	if err != nil {
		return nil, err
	}
	return &url.URL{Path: path}, nil
}

// GetPathTemplate returns the template for the route path, if defined.
func (r *Route) GetPathTemplate() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.tpl == nil {
		return "", errors.New("mux: route doesn't have a path")
	}
	return r.tpl.template, nil
}

// GetPathRegexp returns the compiled regexp for the route path, if defined.
func (r *Route) GetPathRegexp() (string, error) {
	if r.err != nil {
		return "", r.err
	}
	if r.tpl == nil {
		return "", errors.New("mux: route doesn't have a path")
	}
	return r.tpl.regexp.String(), nil
}

// GetMethods returns the full method set of the route: the declared
// methods (GET when none were declared), HEAD when GET is accepted, and
// OPTIONS, which the router answers for every route.
func (r *Route) GetMethods() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	declared := r.declaredMethods()
	methods := make([]string, 0, len(declared)+2)
	methods = append(methods, declared...)
	if matchInArray(declared, http.MethodGet) && !matchInArray(declared, http.MethodHead) {
		methods = append(methods, http.MethodHead)
	}
	if !matchInArray(declared, http.MethodOptions) {
		methods = append(methods, http.MethodOptions)
	}
	return methods, nil
}

// GetVarNames returns the placeholder names of the route path in order.
func (r *Route) GetVarNames() ([]string, error) {
	if r.err != nil {
		return nil, r.err
	}
	if r.tpl == nil {
		return nil, nil
	}
	return append([]string(nil), r.tpl.varsN...), nil
}

// GetError returns any error that was set on the route.
func (r *Route) GetError() error {
	return r.err
}

// IsSubrouter reports whether the route mounts a subrouter.
func (r *Route) IsSubrouter() bool {
	_, ok := r.handler.(*Router)
	return ok
}

func (r *Route) getPathTemplate() *routeTemplate {
	return r.tpl
}
