package main

import (
	"encoding/json"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/hookline/hookline/config"
)

// Constraints the struct reflector cannot express. They are patched into the
// generated document so regenerating never weakens the embedded schema.
var (
	stageEnum     = []interface{}{"commit", "push"}
	formatEnum    = []interface{}{"text", "json"}
	hookIDPattern = "^[a-zA-Z0-9][a-zA-Z0-9._-]*$"
)

func main() {
	base, err := config.GenerateSchema()
	if err != nil {
		log.Fatalf("Error generating schema: %v", err)
	}

	var schema map[string]interface{}
	if err := json.Unmarshal(base, &schema); err != nil {
		log.Fatalf("Error parsing generated schema: %v", err)
	}

	promoteDefinitions(schema)
	patchConstraints(schema)

	out, err := json.MarshalIndent(schema, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling schema: %v", err)
	}
	out = append(out, '\n')

	outputPath := filepath.Join("schema", "hookline.embedded.schema.json")
	if err := os.WriteFile(outputPath, out, 0644); err != nil {
		log.Fatalf("Error writing schema file: %v", err)
	}

	log.Printf("Successfully generated schema at %s", outputPath)
}

// promoteDefinitions moves the reflector's $defs block to draft-07's
// definitions keyword and rewrites every $ref accordingly.
func promoteDefinitions(schema map[string]interface{}) {
	defs, ok := schema["$defs"]
	if !ok {
		return
	}
	delete(schema, "$defs")
	schema["definitions"] = defs
	rewriteRefs(schema)
}

func rewriteRefs(node interface{}) {
	switch v := node.(type) {
	case map[string]interface{}:
		if ref, ok := v["$ref"].(string); ok {
			v["$ref"] = strings.Replace(ref, "#/$defs/", "#/definitions/", 1)
		}
		for _, child := range v {
			rewriteRefs(child)
		}
	case []interface{}:
		for _, child := range v {
			rewriteRefs(child)
		}
	}
}

func patchConstraints(schema map[string]interface{}) {
	root := properties(schema)
	setItemsEnum(root, "default_stages", stageEnum)

	// The logging section may be inlined or referenced depending on the
	// reflector's layout; patch whichever form is present.
	if logging, ok := root["logging"].(map[string]interface{}); ok {
		setEnum(properties(logging), "format", formatEnum)
	}

	defs, _ := schema["definitions"].(map[string]interface{})
	if logging, ok := defs["Config"].(map[string]interface{}); ok {
		setEnum(properties(logging), "format", formatEnum)
	}
	if hook, ok := defs["Hook"].(map[string]interface{}); ok {
		props := properties(hook)
		setItemsEnum(props, "stages", stageEnum)
		if id, ok := props["id"].(map[string]interface{}); ok {
			id["pattern"] = hookIDPattern
		}
	}
}

func properties(node map[string]interface{}) map[string]interface{} {
	props, _ := node["properties"].(map[string]interface{})
	return props
}

func setEnum(props map[string]interface{}, field string, values []interface{}) {
	if f, ok := props[field].(map[string]interface{}); ok {
		f["enum"] = values
	}
}

func setItemsEnum(props map[string]interface{}, field string, values []interface{}) {
	if f, ok := props[field].(map[string]interface{}); ok {
		if items, ok := f["items"].(map[string]interface{}); ok {
			items["enum"] = values
		}
	}
}
