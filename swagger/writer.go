package swagger

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ListingName is the base file name of the resource listing.
const ListingName = "api-doc"

// Encode serializes v with two-space indentation and a trailing newline.
func Encode(v any, format Format) ([]byte, error) {
	var buf bytes.Buffer
	switch format {
	case FormatJSON, "":
		enc := json.NewEncoder(&buf)
		enc.SetEscapeHTML(false)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
	case FormatYAML:
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return nil, err
		}
		if err := enc.Close(); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
	}
	return buf.Bytes(), nil
}

// FileName returns the file name of a document in the given format.
func FileName(name string, format Format) string {
	if format == "" {
		format = FormatJSON
	}
	return name + "." + string(format)
}

// WriteFiles writes one file per resource and the resource listing into
// dir, creating it if needed. The first failure aborts the write.
// Concurrent writes into the same dir are not synchronized.
func (r *Result) WriteFiles(dir string, format Format) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("swagger: create %s: %w", dir, err)
	}

	for _, res := range r.Resources {
		if err := writeDocument(dir, FileName(res.Name, format), res.Declaration, format); err != nil {
			return err
		}
	}
	return writeDocument(dir, FileName(ListingName, format), r.Listing, format)
}

func writeDocument(dir, name string, v any, format Format) error {
	data, err := Encode(v, format)
	if err != nil {
		return fmt.Errorf("swagger: encode %s: %w", name, err)
	}
	if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
		return fmt.Errorf("swagger: write %s: %w", name, err)
	}
	return nil
}
