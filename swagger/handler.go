package swagger

import (
	"encoding/json"
	"fmt"
	"html"
	"net/http"
	"sort"
	"strings"
	"sync"

	"github.com/vitalvas/routedoc/mux"
)

// HandleConfig configures the endpoints registered by Handle.
type HandleConfig struct {
	// Title overrides the HTML page title (default: "API documentation").
	Title string

	// YAML also serves every document with a .yaml extension.
	YAML bool

	// DisableDocs disables the interactive HTML docs UI endpoint.
	DisableDocs bool

	// SwaggerUIConfig provides additional SwaggerUi options. They are
	// rendered as JavaScript object properties next to url and dom_id:
	//
	//	new SwaggerUi({url: "...", dom_id: "swagger-ui-container", "docExpansion": "list"});
	SwaggerUIConfig map[string]any
}

func (cfg HandleConfig) title() string {
	if cfg.Title == "" {
		return "API documentation"
	}
	return cfg.Title
}

// Spec serves the documents generated from the router it is mounted on.
type Spec struct {
	gen *Generator
}

// NewSpec creates a Spec that generates documents with gen.
func NewSpec(gen *Generator) *Spec {
	return &Spec{gen: gen}
}

// documentSet is the lazily built set of encoded documents keyed by file
// name.
type documentSet struct {
	once  sync.Once
	files map[string][]byte
	err   error
}

func (d *documentSet) load(build func() (map[string][]byte, error)) (map[string][]byte, error) {
	d.once.Do(func() {
		defer func() {
			if rv := recover(); rv != nil {
				d.err = fmt.Errorf("swagger: build documents: %v", rv)
			}
		}()
		d.files, d.err = build()
	})
	return d.files, d.err
}

// Handle registers the documentation endpoints under basePath:
//
//	<basePath>/                   Swagger UI (unless DisableDocs)
//	<basePath>/api-doc.json       resource listing
//	<basePath>/<name>.json        API declaration of resource <name>
//	<basePath>/api-doc.json/<name> API declaration, as Swagger UI requests it
//
// With YAML set, .yaml variants are registered as well. Documents are
// generated once on first request from the routes registered on r at that
// time; the documentation routes themselves are not documented. Pass nil
// cfg for defaults.
func (s *Spec) Handle(r *mux.Router, basePath string, cfg *HandleConfig) {
	if cfg == nil {
		cfg = &HandleConfig{}
	}
	basePath = strings.TrimRight(basePath, "/")

	var (
		own  []*mux.Route
		docs documentSet
	)

	formats := []Format{FormatJSON}
	if cfg.YAML {
		formats = append(formats, FormatYAML)
	}

	build := func() (map[string][]byte, error) {
		res, err := s.gen.Generate(RoutesFromRouter(r, own...))
		if err != nil {
			return nil, err
		}
		files := make(map[string][]byte)
		for _, f := range formats {
			data, err := Encode(res.Listing, f)
			if err != nil {
				return nil, err
			}
			files[FileName(ListingName, f)] = data
			for _, rs := range res.Resources {
				data, err := Encode(rs.Declaration, f)
				if err != nil {
					return nil, err
				}
				files[FileName(rs.Name, f)] = data
			}
		}
		return files, nil
	}

	serve := func(w http.ResponseWriter, req *http.Request, name string, format Format) {
		files, err := docs.load(build)
		if err != nil {
			http.Error(w, "failed to build swagger documents", http.StatusInternalServerError)
			return
		}
		data, ok := files[name]
		if !ok {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Content-Type", contentType(format))
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}

	for _, format := range formats {
		format := format
		listing := FileName(ListingName, format)

		own = append(own,
			r.HandleFunc(basePath+"/"+listing, func(w http.ResponseWriter, req *http.Request) {
				serve(w, req, listing, format)
			}),
			r.HandleFunc(basePath+"/"+listing+"/<name>", func(w http.ResponseWriter, req *http.Request) {
				serve(w, req, FileName(mux.Vars(req)["name"], format), format)
			}),
			r.HandleFunc(basePath+"/<name>."+string(format), func(w http.ResponseWriter, req *http.Request) {
				serve(w, req, FileName(mux.Vars(req)["name"], format), format)
			}),
		)
	}

	if !cfg.DisableDocs {
		own = append(own, s.registerDocs(r, basePath, cfg, basePath+"/"+FileName(ListingName, FormatJSON))...)
	}
}

// registerDocs registers the Swagger UI page and returns its routes.
func (s *Spec) registerDocs(r *mux.Router, basePath string, cfg *HandleConfig, specURL string) []*mux.Route {
	var (
		once sync.Once
		data []byte
	)
	handler := func(w http.ResponseWriter, _ *http.Request) {
		once.Do(func() {
			data = []byte(swaggerUITemplate(cfg.title(), specURL, cfg.SwaggerUIConfig))
		})
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(data)
	}
	if basePath == "" {
		return []*mux.Route{r.HandleFunc("/", handler)}
	}
	return []*mux.Route{
		r.HandleFunc(basePath, handler),
		r.HandleFunc(basePath+"/", handler),
	}
}

func contentType(format Format) string {
	if format == FormatYAML {
		return "application/x-yaml"
	}
	return "application/json"
}

func swaggerUITemplate(title, specPath string, config map[string]any) string {
	var extra string
	if len(config) > 0 {
		keys := make([]string, 0, len(config))
		for k := range config {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		var buf strings.Builder
		for _, k := range keys {
			v, err := json.Marshal(config[k])
			if err != nil {
				continue
			}
			fmt.Fprintf(&buf, ", %q: %s", k, v)
		}
		extra = buf.String()
	}

	const dist = "https://unpkg.com/swagger-ui@2.2.10/dist"

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>%[1]s</title>
<link rel="stylesheet" href="%[2]s/css/screen.css">
<script src="%[2]s/lib/object-assign-pollyfill.js"></script>
<script src="%[2]s/lib/jquery-1.8.0.min.js"></script>
<script src="%[2]s/lib/jquery.slideto.min.js"></script>
<script src="%[2]s/lib/jquery.wiggle.min.js"></script>
<script src="%[2]s/lib/jquery.ba-bbq.min.js"></script>
<script src="%[2]s/lib/handlebars-4.0.5.js"></script>
<script src="%[2]s/lib/lodash.min.js"></script>
<script src="%[2]s/lib/backbone-min.js"></script>
<script src="%[2]s/lib/highlight.9.1.0.pack.js"></script>
<script src="%[2]s/lib/jsoneditor.min.js"></script>
<script src="%[2]s/lib/marked.js"></script>
<script src="%[2]s/swagger-ui.min.js"></script>
</head>
<body class="swagger-section">
<div id="swagger-ui-container" class="swagger-ui-wrap"></div>
<script>
new SwaggerUi({url: %[3]q, dom_id: "swagger-ui-container"%[4]s}).load();
</script>
</body>
</html>`, html.EscapeString(title), dist, specPath, extra)
}
