package swagger

import (
	"net/http"
	"reflect"
	"runtime"
	"sort"
	"strings"

	"github.com/vitalvas/routedoc/mux"
)

// RoutesFromRouter walks r and returns one descriptor per documentable
// route in registration order. Subrouter mounts, invalid routes, routes
// without a path or handler, and excluded routes are skipped.
//
// The endpoint is the route name or, for unnamed routes, the snake_case
// name of the handler function.
func RoutesFromRouter(r *mux.Router, exclude ...*mux.Route) []RouteDescriptor {
	skip := make(map[*mux.Route]struct{}, len(exclude))
	for _, route := range exclude {
		skip[route] = struct{}{}
	}

	var routes []RouteDescriptor
	_ = r.Walk(func(route *mux.Route, _ *mux.Router, _ []*mux.Route) error {
		if _, ok := skip[route]; ok {
			return mux.SkipRouter
		}
		if route.IsSubrouter() || route.GetError() != nil || route.GetHandler() == nil {
			return nil
		}

		tpl, err := route.GetPathTemplate()
		if err != nil {
			return nil
		}
		methods, err := route.GetMethods()
		if err != nil {
			return nil
		}

		handler := handlerName(route.GetHandler())
		endpoint := route.GetName()
		if endpoint == "" {
			endpoint = defaultEndpoint(handler)
		}

		routes = append(routes, RouteDescriptor{
			Path:     tpl,
			Endpoint: endpoint,
			Methods:  methods,
			Handler:  handler,
			Doc:      route.GetDoc(),
		})
		return nil
	})
	return routes
}

// SortRoutes sorts routes by raw path, keeping registration order for
// equal paths.
func SortRoutes(routes []RouteDescriptor) {
	sort.SliceStable(routes, func(i, j int) bool {
		return routes[i].Path < routes[j].Path
	})
}

// handlerName returns the qualified name of a handler in "pkg.Func" or
// "pkg.Recv.Method" form.
func handlerName(h http.Handler) string {
	v := reflect.ValueOf(h)
	if v.Kind() == reflect.Func {
		fn := runtime.FuncForPC(v.Pointer())
		if fn == nil {
			return ""
		}
		return shortFuncName(fn.Name())
	}

	t := reflect.TypeOf(h)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return ""
	}
	return shortFuncName(t.PkgPath()+"."+t.Name()) + ".ServeHTTP"
}

// shortFuncName trims a runtime function name to the form used by
// SourceDocs:
//
//	github.com/acme/api/users.(*Service).Get-fm  ->  users.Service.Get
func shortFuncName(name string) string {
	if i := strings.LastIndexByte(name, '/'); i >= 0 {
		name = name[i+1:]
	}
	name = strings.TrimSuffix(name, "-fm")
	name = strings.ReplaceAll(name, "(*", "")
	name = strings.ReplaceAll(name, ")", "")
	return name
}

// defaultEndpoint derives an endpoint name from a handler name. Anonymous
// functions are named after their enclosing function plus the closure
// suffix, so two closures in one function get distinct endpoints:
//
//	main.listItems              ->  list_items
//	main.statsHandler.ServeHTTP ->  stats_handler
//	main.newRouter.func2        ->  new_router_func2
//
// Use Route.Name to give closures a meaningful endpoint.
func defaultEndpoint(handler string) string {
	parts := strings.FieldsFunc(handler, func(r rune) bool { return r == '.' })
	if len(parts) == 0 {
		return ""
	}
	if len(parts) > 1 {
		parts = parts[1:]
	}

	last := len(parts) - 1
	if parts[last] == "ServeHTTP" && last > 0 {
		return snakeCase(parts[last-1])
	}

	i := last
	for i > 0 && isClosureSegment(parts[i]) {
		i--
	}
	return strings.Join(append([]string{snakeCase(parts[i])}, parts[i+1:]...), "_")
}

// isClosureSegment reports whether s is a compiler-generated closure name
// segment such as "func1" or the "2" of "func1.2".
func isClosureSegment(s string) bool {
	s = strings.TrimPrefix(s, "func")
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
