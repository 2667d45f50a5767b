package catalog

import (
	"fmt"

	"github.com/xeipuuv/gojsonschema"
)

// catalogSchema is the JSON Schema for the product catalog document.
// Every record must carry the full bilingual field set; a missing field is
// a fatal load error, not a default.
const catalogSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "title": "Product Catalog",
  "type": "object",
  "required": ["products"],
  "properties": {
    "products": {
      "type": "array",
      "items": {
        "type": "object",
        "required": ["id", "name", "name_ar", "price", "currency", "category", "units_sold", "description", "description_ar"],
        "properties": {
          "id": {"type": "string", "minLength": 1},
          "name": {"type": "string", "minLength": 1},
          "name_ar": {"type": "string", "minLength": 1},
          "price": {"type": "number", "minimum": 0},
          "currency": {"type": "string", "minLength": 1},
          "category": {"type": "string"},
          "units_sold": {"type": "integer", "minimum": 0},
          "description": {"type": "string"},
          "description_ar": {"type": "string"}
        }
      }
    }
  }
}`

// validateSchema checks the raw catalog document against the JSON Schema
// and returns an error listing every violation.
func validateSchema(data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(catalogSchema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedCatalog, err)
	}
	if result.Valid() {
		return nil
	}

	msg := ""
	for _, violation := range result.Errors() {
		if msg != "" {
			msg += "; "
		}
		msg += violation.String()
	}
	return fmt.Errorf("%w: %s", ErrInvalidCatalog, msg)
}
