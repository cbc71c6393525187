package carthage

import (
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed schemas/binary-project.v1.schema.json
var schemaFS embed.FS

// ValidateJSONDir validates every .json file in dir against the Carthage
// binary project schema. Publishing a malformed spec breaks every downstream
// Carthage user, so this runs before any distribution tree is produced.
func ValidateJSONDir(dir string) error {
	schemaBytes, err := schemaFS.ReadFile("schemas/binary-project.v1.schema.json")
	if err != nil {
		return fmt.Errorf("failed to load JSON schema: %w", err)
	}
	schemaLoader := gojsonschema.NewBytesLoader(schemaBytes)

	entries, err := os.ReadDir(dir)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", dir, err)
	}

	validated := 0
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		docBytes, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", entry.Name(), err)
		}
		result, err := gojsonschema.Validate(schemaLoader, gojsonschema.NewBytesLoader(docBytes))
		if err != nil {
			return fmt.Errorf("validation error in %s: %w", entry.Name(), err)
		}
		if !result.Valid() {
			var msgs []string
			for _, desc := range result.Errors() {
				msgs = append(msgs, desc.String())
			}
			return fmt.Errorf("%s is not a valid binary project spec: %s", entry.Name(), strings.Join(msgs, "; "))
		}
		validated++
	}

	if validated == 0 {
		return fmt.Errorf("no .json specs found in %s", dir)
	}
	return nil
}
