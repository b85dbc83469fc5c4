package swagger

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"dario.cat/mergo"
	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Format selects the serialization of written documents.
type Format string

const (
	FormatJSON Format = "json"
	FormatYAML Format = "yaml"
)

// ErrUnknownFormat is returned for formats other than json and yaml.
var ErrUnknownFormat = errors.New("swagger: unknown format")

// Config controls document generation. Zero fields take the values of
// DefaultConfig.
type Config struct {
	APIVersion     string   `json:"api_version" yaml:"api_version" toml:"api_version"`
	SwaggerVersion string   `json:"swagger_version" yaml:"swagger_version" toml:"swagger_version"`
	BasePath       string   `json:"base_path" yaml:"base_path" toml:"base_path"`
	Produces       []string `json:"produces" yaml:"produces" toml:"produces"`

	// Groups are regular expressions searched in raw path templates. When
	// set, only matching routes are documented.
	Groups []string `json:"groups" yaml:"groups" toml:"groups"`
	// AllowedEndpoints further restricts grouped routes by endpoint name.
	// Ignored without Groups.
	AllowedEndpoints []string `json:"allowed_endpoints" yaml:"allowed_endpoints" toml:"allowed_endpoints"`

	StopMarker string `json:"stop_marker" yaml:"stop_marker" toml:"stop_marker"`

	// SortRoutes sorts routes by raw path before grouping.
	SortRoutes bool `json:"sort_routes" yaml:"sort_routes" toml:"sort_routes"`
	// ValidateOutput checks generated documents against the Swagger 1.2
	// schemas.
	ValidateOutput bool `json:"validate" yaml:"validate" toml:"validate"`

	OutputDir string `json:"output_dir" yaml:"output_dir" toml:"output_dir"`
	Format    Format `json:"format" yaml:"format" toml:"format"`
}

// DefaultConfig returns the default generation settings.
func DefaultConfig() Config {
	return Config{
		APIVersion:     "1.0.0",
		SwaggerVersion: "1.2",
		BasePath:       ":5000",
		Produces:       []string{"application/json"},
		StopMarker:     DefaultStopMarker,
		OutputDir:      ".",
		Format:         FormatJSON,
	}
}

// withDefaults returns a copy of cfg with zero fields filled from
// DefaultConfig. Slices are copied so the result shares no storage with cfg.
func (cfg Config) withDefaults() (Config, error) {
	out := cfg
	out.Produces = cloneStrings(cfg.Produces)
	out.Groups = cloneStrings(cfg.Groups)
	out.AllowedEndpoints = cloneStrings(cfg.AllowedEndpoints)

	if err := mergo.Merge(&out, DefaultConfig()); err != nil {
		return Config{}, fmt.Errorf("swagger: merge defaults: %w", err)
	}
	return out, nil
}

// Validate checks the output format and compiles every group pattern.
func (cfg Config) Validate() error {
	switch cfg.Format {
	case "", FormatJSON, FormatYAML:
	default:
		return fmt.Errorf("%w %q", ErrUnknownFormat, cfg.Format)
	}
	for _, pattern := range cfg.Groups {
		if _, err := regexp.Compile(pattern); err != nil {
			return fmt.Errorf("swagger: invalid group pattern %q: %w", pattern, err)
		}
	}
	return nil
}

// LoadConfig reads a YAML, JSON or TOML configuration file, chosen by
// extension, and fills unset fields with defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("swagger: read config: %w", err)
	}

	var cfg Config
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &cfg)
	case ".json":
		err = json.Unmarshal(data, &cfg)
	case ".toml":
		err = toml.Unmarshal(data, &cfg)
	default:
		return Config{}, fmt.Errorf("swagger: unsupported config extension %q", ext)
	}
	if err != nil {
		return Config{}, fmt.Errorf("swagger: parse config %s: %w", path, err)
	}

	cfg, err = cfg.withDefaults()
	if err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append([]string(nil), s...)
}
