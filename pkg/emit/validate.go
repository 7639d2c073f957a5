package emit

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/flowforge/flowforge/api"
)

var (
	blueprintSchemaOnce sync.Once
	blueprintSchema     *openapi3.Schema
	blueprintSchemaErr  error
)

func loadBlueprintSchema() (*openapi3.Schema, error) {
	blueprintSchemaOnce.Do(func() {
		loader := openapi3.NewLoader()
		doc, err := loader.LoadFromData(api.Spec)
		if err != nil {
			blueprintSchemaErr = fmt.Errorf("failed to load api spec: %w", err)
			return
		}
		if err := doc.Validate(loader.Context); err != nil {
			blueprintSchemaErr = fmt.Errorf("api spec is invalid: %w", err)
			return
		}
		ref := doc.Components.Schemas["Blueprint"]
		if ref == nil || ref.Value == nil {
			blueprintSchemaErr = fmt.Errorf("api spec has no Blueprint schema")
			return
		}
		blueprintSchema = ref.Value
	})
	return blueprintSchema, blueprintSchemaErr
}

// ValidateDocument checks that raw JSON conforms to the published
// Blueprint schema. This guards the document shape; graph semantics
// are the analysis engine's job.
func ValidateDocument(data []byte) error {
	schema, err := loadBlueprintSchema()
	if err != nil {
		return err
	}

	var value any
	if err := json.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("document is not valid JSON: %w", err)
	}

	if err := schema.VisitJSON(value); err != nil {
		return fmt.Errorf("document does not match the blueprint schema: %w", err)
	}
	return nil
}
