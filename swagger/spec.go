package swagger

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/google/uuid"
)

// Generator turns route descriptors into Swagger 1.2 documents. It keeps no
// state between runs and may be reused.
type Generator struct {
	cfg    Config
	cfgErr error
	logger *slog.Logger
	docs   DocSource
}

// Option configures a Generator.
type Option func(*Generator)

// WithLogger sets the logger. The default discards all records.
func WithLogger(logger *slog.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// WithDocSource sets the source consulted for routes without Doc text.
func WithDocSource(src DocSource) Option {
	return func(g *Generator) {
		g.docs = src
	}
}

// NewGenerator creates a generator. Zero fields of cfg take the values of
// DefaultConfig. Configuration errors are reported by Generate.
func NewGenerator(cfg Config, opts ...Option) *Generator {
	g := &Generator{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	g.cfg, g.cfgErr = cfg.withDefaults()
	if g.cfgErr == nil {
		g.cfgErr = g.cfg.Validate()
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Config returns the effective configuration.
func (g *Generator) Config() Config {
	return g.cfg
}

// Resource is one API declaration and the file name it is written under.
type Resource struct {
	// Name is the bucket key without the leading slash.
	Name        string
	Declaration APIDeclaration
}

// Result is the output of one generation run.
type Result struct {
	// RunID identifies the run in log records.
	RunID     string
	Listing   ResourceListing
	Resources []Resource
}

// Resource returns the declaration of the named resource.
func (r *Result) Resource(name string) (APIDeclaration, bool) {
	for _, res := range r.Resources {
		if res.Name == name {
			return res.Declaration, true
		}
	}
	return APIDeclaration{}, false
}

// bucket collects the paths of one resource.
type bucket struct {
	key   string
	paths *pathIndex
}

// Generate groups routes into resources and assembles the documents.
// Routes are processed in the given order unless Config.SortRoutes is set.
// Routes whose path has no first segment are skipped.
func (g *Generator) Generate(routes []RouteDescriptor) (*Result, error) {
	if g.cfgErr != nil {
		return nil, g.cfgErr
	}

	runID := uuid.NewString()
	logger := g.logger.With("run_id", runID)

	grouper, err := newResourceGrouper(g.cfg.Groups, g.cfg.AllowedEndpoints)
	if err != nil {
		return nil, err
	}

	if g.cfg.SortRoutes {
		routes = append([]RouteDescriptor(nil), routes...)
		SortRoutes(routes)
	}

	builder := routeBuilder{
		parser: DocParser{StopMarker: g.cfg.StopMarker},
		docs:   g.docs,
	}

	var (
		buckets  []*bucket
		byKey    = make(map[string]*bucket)
		included int
	)
	for _, route := range routes {
		key, ok := bucketKey(route.Path)
		if !ok {
			logger.Debug("skipping route without resource segment", "path", route.Path, "endpoint", route.Endpoint)
			continue
		}
		if !grouper.include(route) {
			logger.Debug("route filtered out", "path", route.Path, "endpoint", route.Endpoint)
			continue
		}

		b, ok := byKey[key]
		if !ok {
			b = &bucket{key: key, paths: newPathIndex()}
			byKey[key] = b
			buckets = append(buckets, b)
		}

		path, ops := builder.build(route)
		if len(ops) > 0 {
			b.paths.add(path, ops...)
		}
		included++
	}

	res := g.assemble(runID, buckets)

	if g.cfg.ValidateOutput {
		if err := res.Validate(); err != nil {
			return nil, err
		}
	}

	logger.Info("generated swagger documents",
		"routes", len(routes),
		"included", included,
		"resources", len(res.Resources),
	)
	return res, nil
}

func (g *Generator) assemble(runID string, buckets []*bucket) *Result {
	res := &Result{
		RunID: runID,
		Listing: ResourceListing{
			APIVersion:     g.cfg.APIVersion,
			SwaggerVersion: g.cfg.SwaggerVersion,
			APIs:           make([]ResourceRef, 0, len(buckets)),
		},
		Resources: make([]Resource, 0, len(buckets)),
	}

	for _, b := range buckets {
		name := strings.TrimPrefix(b.key, "/")
		res.Listing.APIs = append(res.Listing.APIs, ResourceRef{
			Path:        b.key,
			Description: fmt.Sprintf("Operations on %s endpoints", name),
		})
		res.Resources = append(res.Resources, Resource{
			Name: name,
			Declaration: APIDeclaration{
				APIVersion:     g.cfg.APIVersion,
				SwaggerVersion: g.cfg.SwaggerVersion,
				BasePath:       g.cfg.BasePath,
				ResourcePath:   b.key,
				Produces:       append([]string{}, g.cfg.Produces...),
				APIs:           b.paths.apis(),
			},
		})
	}
	return res
}

// Run generates documents for routes and writes them to Config.OutputDir
// in Config.Format.
func (g *Generator) Run(routes []RouteDescriptor) (*Result, error) {
	res, err := g.Generate(routes)
	if err != nil {
		return nil, err
	}
	if err := res.WriteFiles(g.cfg.OutputDir, g.cfg.Format); err != nil {
		return nil, err
	}
	g.logger.Info("wrote swagger documents",
		"run_id", res.RunID,
		"dir", g.cfg.OutputDir,
		"format", string(g.cfg.Format),
		"files", len(res.Resources)+1,
	)
	return res, nil
}
