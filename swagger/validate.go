package swagger

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

//go:embed schemas/*.json
var schemaFS embed.FS

const (
	listingSchemaFile     = "resource-listing.json"
	declarationSchemaFile = "api-declaration.json"
)

var (
	schemaOnce        sync.Once
	listingSchema     *jsonschema.Schema
	declarationSchema *jsonschema.Schema
	schemaErr         error
)

func compileSchemas() error {
	schemaOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		for _, name := range []string{listingSchemaFile, declarationSchemaFile} {
			data, err := schemaFS.ReadFile("schemas/" + name)
			if err != nil {
				schemaErr = err
				return
			}
			doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
			if err != nil {
				schemaErr = fmt.Errorf("swagger: parse schema %s: %w", name, err)
				return
			}
			if err := compiler.AddResource(name, doc); err != nil {
				schemaErr = fmt.Errorf("swagger: add schema %s: %w", name, err)
				return
			}
		}

		listingSchema, schemaErr = compiler.Compile(listingSchemaFile)
		if schemaErr != nil {
			return
		}
		declarationSchema, schemaErr = compiler.Compile(declarationSchemaFile)
	})
	return schemaErr
}

// Validate checks the resource listing and every API declaration against
// the Swagger 1.2 document schemas.
func (r *Result) Validate() error {
	if err := compileSchemas(); err != nil {
		return err
	}
	if err := validateDocument(listingSchema, r.Listing); err != nil {
		return fmt.Errorf("swagger: invalid %s: %w", FileName(ListingName, FormatJSON), err)
	}
	for _, res := range r.Resources {
		if err := validateDocument(declarationSchema, res.Declaration); err != nil {
			return fmt.Errorf("swagger: invalid %s: %w", FileName(res.Name, FormatJSON), err)
		}
	}
	return nil
}

// validateDocument validates the JSON form of v.
func validateDocument(schema *jsonschema.Schema, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return err
	}
	inst, err := jsonschema.UnmarshalJSON(bytes.NewReader(data))
	if err != nil {
		return err
	}
	return schema.Validate(inst)
}
