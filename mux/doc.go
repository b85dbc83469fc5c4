// Package mux implements a request router and dispatcher that matches
// incoming HTTP requests against path templates and dispatches them to
// handlers.
//
// The package implements routing semantics based on:
//   - RFC 9110 (HTTP Semantics)
//   - RFC 3986 (URIs)
//   - RFC 7538 (308 Permanent Redirect)
//
// Beyond dispatching, every route is an inspectable record: its path
// template, endpoint name, full method set and attached documentation
// text can be read back, which is what the swagger package uses to build
// API documents from a live router.
//
// # Router
//
// Create a new router and register handlers:
//
//	r := mux.NewRouter()
//	r.HandleFunc("/users", ListUsers).Name("list_users")
//	r.HandleFunc("/users/<int:id>", GetUser).Methods(http.MethodGet, http.MethodDelete)
//	http.ListenAndServe(":8080", r)
//
// # Path Templates
//
// Placeholders are written in angle brackets, optionally prefixed by a
// converter name and a colon:
//
//	/users/<id>              string converter, one path segment
//	/users/<int:id>          digits only
//	/files/<path:name>       spans slashes
//
// Available converters:
//
//	string   - any text without a slash (default)
//	int      - unsigned integer (e.g. 42)
//	float    - decimal number with a fraction (e.g. 3.14)
//	path     - text including slashes (e.g. a/b/c.txt)
//	uuid     - RFC 4122 UUID
//	slug     - URL-safe slug (e.g. my-post-title)
//	alpha    - alphabetic characters
//	alphanum - alphanumeric characters
//	date     - ISO 8601 date (e.g. 2024-01-15)
//	hex      - hexadecimal string
//	domain   - domain name per RFC 1123
//
// An unknown converter, an invalid variable name or a repeated variable
// makes the route invalid; the error is available from Route.GetError.
//
// Variables are stored in the request context:
//
//	id := mux.Vars(r)["id"]
//
// # Methods
//
// A route without Methods accepts GET. Routes that accept GET also serve
// HEAD, and the router answers OPTIONS for every matching path with an
// Allow header listing the union of method sets. A request whose path
// matches but whose method does not receives 405 with Allow set.
//
// Route.GetMethods reports the full set including the implicit HEAD and
// OPTIONS.
//
// # Documentation Text
//
// Doc attaches free text to a route. The swagger package reads it as the
// handler docstring:
//
//	r.HandleFunc("/users/<int:id>", GetUser).Doc(`Returns one user.
//	:param int id: the user id
//	:query string fields: fields to include`)
//
// # Subrouters
//
// PathPrefix combined with Subrouter groups routes under a shared prefix.
// Named routes are shared with the parent router:
//
//	api := r.PathPrefix("/api").Subrouter()
//	api.HandleFunc("/items", ListItems)
//
// # Walking Routes
//
// Walk visits every route in registration order, descending into
// subrouters. Return SkipRouter to skip a subrouter.
//
//	r.Walk(func(route *mux.Route, router *mux.Router, ancestors []*mux.Route) error {
//		tpl, _ := route.GetPathTemplate()
//		methods, _ := route.GetMethods()
//		fmt.Println(tpl, methods)
//		return nil
//	})
//
// # Middleware
//
// Middleware wraps matched handlers only:
//
//	r.Use(loggingMiddleware)
//	r.Use(mux.CORSMethodMiddleware(r))
//
// # URL Building
//
// Named routes can build URLs; values are checked against the converters:
//
//	u, err := r.Get("get_user").URL("id", "42")
package mux
