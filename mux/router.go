package mux

import (
	"net/http"
	"sort"
	"strings"
	"sync"
)

// Router registers routes to be matched and dispatches a handler.
//
// It implements the http.Handler interface, so it can be registered to serve
// requests:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/users/<int:id>", handler).Name("get_user")
//	http.ListenAndServe(":8080", r)
type Router struct {
	// NotFoundHandler is called when no route matches.
	// If nil, http.NotFoundHandler() is used.
	NotFoundHandler http.Handler

	// MethodNotAllowedHandler is called when a route matches the path
	// but not the method. If nil, a default 405 handler is used.
	// Per RFC 9110 Section 15.5.6, the Allow header is always set before
	// this handler is invoked.
	MethodNotAllowedHandler http.Handler

	parent      parentRoute
	routes      []*Route
	namedRoutes map[string]*Route
	middlewares []MiddlewareFunc

	// handlerCache caches the middleware-wrapped handler per route
	// to avoid re-wrapping on every request.
	handlerCache sync.Map // map[*Route]http.Handler

	strictSlash bool
	skipClean   bool
}

// NewRouter returns a new router instance.
func NewRouter() *Router {
	return &Router{
		namedRoutes: make(map[string]*Route),
	}
}

// ServeHTTP dispatches the handler registered in the matched route.
//
// OPTIONS requests for a path that has routes but no explicit OPTIONS
// handler are answered with 200 and an Allow header.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	// Normalize the request path per RFC 3986 Section 5.2.4
	// (removing dot segments) unless SkipClean is enabled.
	if !r.skipClean {
		if cleaned := cleanPath(req.URL.Path); cleaned != req.URL.Path {
			u := *req.URL
			u.Path = cleaned
			u.RawPath = ""
			req = req.Clone(req.Context())
			req.URL = &u
		}
	}

	var match RouteMatch
	var handler http.Handler

	switch {
	case r.Match(req, &match):
		handler = match.Handler
		if handler == nil {
			handler = defaultNotFoundHandler
		}
		req = setRouteContext(req, match.Route, match.Vars)
	case match.methodNotAllowed:
		// RFC 9110 Section 15.5.6: a 405 response MUST carry Allow.
		w.Header().Set("Allow", strings.Join(r.allowedMethods(req.URL.Path), ", "))
		if req.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}
		handler = r.MethodNotAllowedHandler
		if handler == nil {
			handler = defaultMethodNotAllowedHandler
		}
	default:
		handler = r.NotFoundHandler
		if handler == nil {
			handler = defaultNotFoundHandler
		}
	}

	if match.Route != nil && match.Route.strictSlash && match.Route.tpl != nil {
		tplHasSlash := strings.HasSuffix(match.Route.tpl.template, "/")
		urlHasSlash := strings.HasSuffix(req.URL.Path, "/")
		if tplHasSlash != urlHasSlash && strings.TrimSuffix(req.URL.Path, "/") != "" {
			u := *req.URL
			if tplHasSlash {
				u.Path += "/"
			} else {
				u.Path = strings.TrimSuffix(u.Path, "/")
			}
			// RFC 9110 Section 15.4.9: 308 preserves the request method.
			http.Redirect(w, req, u.String(), http.StatusPermanentRedirect)
			return
		}
	}

	handler.ServeHTTP(w, req)
}

// Match attempts to match the given request against the router's routes.
// Distinguishes 404 Not Found from 405 Method Not Allowed by tracking
// method mismatches independently across route iteration.
func (r *Router) Match(req *http.Request, match *RouteMatch) bool {
	var methodNotAllowed bool
	for _, route := range r.routes {
		if route.Match(req, match) {
			if match.Handler != nil && len(r.middlewares) > 0 {
				if cached, ok := r.handlerCache.Load(match.Route); ok {
					match.Handler = cached.(http.Handler)
				} else {
					wrapped := r.applyMiddleware(match.Handler)
					r.handlerCache.Store(match.Route, wrapped)
					match.Handler = wrapped
				}
			}
			return true
		}
		if match.MatchErr == ErrMethodMismatch {
			methodNotAllowed = true
		}
	}

	if methodNotAllowed {
		match.MatchErr = ErrMethodMismatch
		match.methodNotAllowed = true
		return false
	}

	match.MatchErr = ErrNotFound
	return false
}

// allowedMethods returns the sorted union of method sets of every route
// whose template matches path.
func (r *Router) allowedMethods(path string) []string {
	var allowed []string
	for _, route := range r.routes {
		if route.err != nil {
			continue
		}
		if route.tpl != nil && !route.tpl.MatchString(path) {
			continue
		}
		if sub, ok := route.handler.(*Router); ok {
			for _, m := range sub.allowedMethods(path) {
				if !matchInArray(allowed, m) {
					allowed = append(allowed, m)
				}
			}
			continue
		}
		methods, _ := route.GetMethods()
		for _, m := range methods {
			if !matchInArray(allowed, m) {
				allowed = append(allowed, m)
			}
		}
	}
	sort.Strings(allowed)
	return allowed
}

// StrictSlash defines the trailing slash behavior for new routes.
// When true, if the route path is "/path/", accessing "/path" will redirect
// to "/path/" and vice versa with 308 Permanent Redirect.
func (r *Router) StrictSlash(value bool) *Router {
	r.strictSlash = value
	return r
}

// SkipClean disables dot-segment cleaning of request paths.
func (r *Router) SkipClean(value bool) *Router {
	r.skipClean = value
	return r
}

// NewRoute creates an empty route for configuration.
func (r *Router) NewRoute() *Route {
	route := &Route{
		parent:      r,
		namedRoutes: r.namedRoutes,
		strictSlash: r.strictSlash,
	}
	r.routes = append(r.routes, route)
	return route
}

// Handle registers a new route with a path template and handler.
func (r *Router) Handle(path string, handler http.Handler) *Route {
	return r.NewRoute().Path(path).Handler(handler)
}

// HandleFunc registers a new route with a path template and handler
// function.
func (r *Router) HandleFunc(path string, f func(http.ResponseWriter, *http.Request)) *Route {
	return r.NewRoute().Path(path).HandlerFunc(f)
}

// Path registers a new route with a path template.
func (r *Router) Path(tpl string) *Route {
	return r.NewRoute().Path(tpl)
}

// PathPrefix registers a new route with a path prefix template.
func (r *Router) PathPrefix(tpl string) *Route {
	return r.NewRoute().PathPrefix(tpl)
}

// Methods registers a new route accepting the given methods.
func (r *Router) Methods(methods ...string) *Route {
	return r.NewRoute().Methods(methods...)
}

// Name registers a new route with the given endpoint name.
func (r *Router) Name(name string) *Route {
	return r.NewRoute().Name(name)
}

// Get returns a route registered with the given endpoint name.
func (r *Router) Get(name string) *Route {
	return r.namedRoutes[name]
}

// Walk walks the router and all its subrouters, calling walkFn for each
// route in registration order.
func (r *Router) Walk(walkFn WalkFunc) error {
	return r.walk(walkFn, nil)
}

func (r *Router) walk(walkFn WalkFunc, ancestors []*Route) error {
	for _, route := range r.routes {
		err := walkFn(route, r, ancestors)
		if err == SkipRouter {
			continue
		}
		if err != nil {
			return err
		}
		if sr, ok := route.handler.(*Router); ok {
			if err := sr.walk(walkFn, append(ancestors, route)); err != nil {
				return err
			}
		}
	}
	return nil
}

func (r *Router) getPathTemplate() *routeTemplate {
	if r.parent != nil {
		return r.parent.getPathTemplate()
	}
	return nil
}

// applyMiddleware wraps the handler with all registered middleware.
func (r *Router) applyMiddleware(handler http.Handler) http.Handler {
	for i := len(r.middlewares) - 1; i >= 0; i-- {
		handler = r.middlewares[i].Middleware(handler)
	}
	return handler
}

// Use appends a MiddlewareFunc to the chain. Middleware is applied to
// matched handlers only.
func (r *Router) Use(mwf ...MiddlewareFunc) {
	r.middlewares = append(r.middlewares, mwf...)
}
