package contracts

import (
	"bytes"
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

//go:embed schemas
var schemasFS embed.FS

const schemaBaseURL = "https://aimlinkproperty.com/"

// Ключи схем исходящих запросов.
const (
	PropertyCreateV1 = "PropertyCreate/1.0.0"
	PropertyUpdateV1 = "PropertyUpdate/1.0.0"
	LeadCreateV1     = "LeadCreate/1.0.0"
	LeadStatusV1     = "LeadStatus/1.0.0"
)

var compiledSchemas = make(map[string]*jsonschema.Schema)

func init() {
	compiler := jsonschema.NewCompiler()
	compiler.AssertFormat = true

	var paths []string
	err := fs.WalkDir(schemasFS, "schemas", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".json") {
			return nil
		}
		data, err := schemasFS.ReadFile(path)
		if err != nil {
			return err
		}
		if err := compiler.AddResource(schemaBaseURL+path, bytes.NewReader(data)); err != nil {
			return fmt.Errorf("add schema resource %s: %w", path, err)
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		log.Fatalf("error loading payload schemas: %v", err)
	}

	for _, path := range paths {
		schema, err := compiler.Compile(schemaBaseURL + path)
		if err != nil {
			log.Fatalf("could not compile schema %s: %v", path, err)
		}
		compiledSchemas[keyFromPath(path)] = schema
	}
}

// keyFromPath: "schemas/property-create/v1.json" -> "PropertyCreate/1.0.0".
func keyFromPath(path string) string {
	trimmed := strings.TrimSuffix(strings.TrimPrefix(path, "schemas/"), ".json")
	parts := strings.Split(trimmed, "/")
	if len(parts) != 2 {
		return ""
	}

	caser := cases.Title(language.English)
	var name strings.Builder
	for _, p := range strings.Split(parts[0], "-") {
		name.WriteString(caser.String(p))
	}
	return fmt.Sprintf("%s/%s.0.0", name.String(), strings.TrimPrefix(parts[1], "v"))
}

// Validate проверяет тело запроса по схеме до отправки на сервер.
func Validate(key string, body []byte) error {
	schema, ok := compiledSchemas[key]
	if !ok {
		return fmt.Errorf("schema %q not found", key)
	}

	var v interface{}
	if err := json.Unmarshal(body, &v); err != nil {
		return fmt.Errorf("payload is not a valid JSON: %w", err)
	}
	if err := schema.Validate(v); err != nil {
		return fmt.Errorf("payload schema validation failed: %w", err)
	}
	return nil
}
