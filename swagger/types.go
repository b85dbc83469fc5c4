package swagger

// Location is where a parameter is carried in the request.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#524-parameter-object
type Location string

const (
	LocationPath  Location = "path"
	LocationQuery Location = "query"
)

// ResourceListing is the root document listing every resource.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#51-resource-listing
type ResourceListing struct {
	APIVersion     string        `json:"apiVersion" yaml:"apiVersion"`
	SwaggerVersion string        `json:"swaggerVersion" yaml:"swaggerVersion"`
	APIs           []ResourceRef `json:"apis" yaml:"apis"`
}

// ResourceRef points at one API declaration from the resource listing.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#512-resource-object
type ResourceRef struct {
	Path        string `json:"path" yaml:"path"`
	Description string `json:"description" yaml:"description"`
}

// APIDeclaration describes the operations of one resource.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#52-api-declaration
type APIDeclaration struct {
	APIVersion     string   `json:"apiVersion" yaml:"apiVersion"`
	SwaggerVersion string   `json:"swaggerVersion" yaml:"swaggerVersion"`
	BasePath       string   `json:"basePath" yaml:"basePath"`
	ResourcePath   string   `json:"resourcePath" yaml:"resourcePath"`
	Produces       []string `json:"produces" yaml:"produces"`
	APIs           []API    `json:"apis" yaml:"apis"`
}

// API groups the operations sharing one normalized path.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#522-api-object
type API struct {
	Path       string      `json:"path" yaml:"path"`
	Operations []Operation `json:"operations" yaml:"operations"`
}

// Operation is one HTTP method on a path.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#523-operation-object
type Operation struct {
	Method     string      `json:"method" yaml:"method"`
	Summary    string      `json:"summary" yaml:"summary"`
	Notes      string      `json:"notes" yaml:"notes"`
	Nickname   string      `json:"nickname" yaml:"nickname"`
	Parameters []Parameter `json:"parameters" yaml:"parameters"`
}

// Parameter is a parameter declared in handler documentation.
//
// See: https://github.com/OAI/OpenAPI-Specification/blob/main/versions/1.2.md#524-parameter-object
type Parameter struct {
	Name          string   `json:"name" yaml:"name"`
	Description   string   `json:"description" yaml:"description"`
	Required      bool     `json:"required" yaml:"required"`
	Type          string   `json:"type" yaml:"type"`
	ParamType     Location `json:"paramType" yaml:"paramType"`
	AllowMultiple bool     `json:"allowMultiple" yaml:"allowMultiple"`
}
