// Package swagger derives Swagger 1.2 documents from the route table of an
// HTTP router.
//
// Each route is described by a RouteDescriptor: its raw path template, its
// endpoint name, its method set and the documentation text of its handler.
// Routes are bucketed by their first path segment. Every bucket becomes one
// API declaration, and the buckets together are listed in a resource
// listing:
//
//	api-doc.json   resource listing
//	users.json     API declaration for /users
//	admin.json     API declaration for /admin
//
// # Documentation Text
//
// Handler documentation is free text with optional parameter tags, one per
// line:
//
//	Returns a single user.
//	:param int id: the user id
//	:query string fields: comma separated field list
//	`Try it out!
//
// Lines tagged with arg, argument, param or parameter describe required path
// parameters; lines tagged with query describe optional query parameters.
// Every other line is kept as operation notes. A line starting with the stop
// marker ends the text.
//
// # Generating
//
//	gen := swagger.NewGenerator(cfg, swagger.WithLogger(logger))
//	res, err := gen.Generate(swagger.RoutesFromRouter(r))
//	if err != nil {
//		return err
//	}
//	err = res.WriteFiles("docs", swagger.FormatJSON)
//
// # Serving
//
// A Spec serves the documents from the router it documents:
//
//	swagger.NewSpec(gen).Handle(r, "/docs", nil)
//	// /docs/               Swagger UI
//	// /docs/api-doc.json   resource listing
//	// /docs/users.json     API declaration
package swagger
