package config

import (
	"encoding/json"

	"github.com/invopop/jsonschema"
)

// GenerateSchema generates the JSON Schema for the hookline configuration.
// It reflects the Config struct from types.go; the result is embedded by the
// schema package (see tools/schema-generator).
func GenerateSchema() ([]byte, error) {
	r := &jsonschema.Reflector{
		// Reject unknown fields so typos in hook records surface at
		// validation time instead of being silently dropped.
		AllowAdditionalProperties: false,
		// Expand struct references instead of using $ref for a flatter schema.
		ExpandedStruct: true,
		// Use YAML field names for property names
		FieldNameTag: "yaml",
	}

	schema := r.Reflect(&Config{})
	schema.Title = "Hookline Configuration"
	schema.Description = "Schema for .hookline.yaml hook configuration files."
	schema.Version = "http://json-schema.org/draft-07/schema#"

	return json.MarshalIndent(schema, "", "  ")
}
