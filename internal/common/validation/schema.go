// internal/common/validation/schema.go
package validation

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// dispositionRequestSchema validates the payload of a disposition write.
const dispositionRequestSchema = `{
	"type": "object",
	"properties": {
		"viewerId": {"type": "string", "minLength": 1},
		"targetId": {"type": "string", "minLength": 1},
		"disposition": {"type": "string", "enum": ["like", "dislike"]}
	},
	"required": ["viewerId", "targetId", "disposition"],
	"additionalProperties": false
}`

// profileDocumentSchema validates an externally supplied profile document
// before it enters a candidate pool.
const profileDocumentSchema = `{
	"type": "object",
	"properties": {
		"id": {"type": "string", "minLength": 1},
		"name": {"type": "string"},
		"type": {
			"type": "string",
			"enum": ["startup", "research", "investor", "individual",
				"accelerator", "incubator", "corporate", "government"]
		},
		"tags": {"type": "array", "items": {"type": "string"}},
		"location": {"type": "string"},
		"organization": {"type": "string"},
		"description": {"type": "string"}
	},
	"required": ["id", "type", "tags"]
}`

// ValidateDispositionRequest checks a raw disposition payload against the
// request schema and returns a descriptive error on the first failure.
func ValidateDispositionRequest(payload []byte) error {
	return validate(dispositionRequestSchema, gojsonschema.NewBytesLoader(payload))
}

// ValidateProfileDocument checks a decoded profile document for the fields
// the scorer requires.
func ValidateProfileDocument(doc map[string]interface{}) error {
	return validate(profileDocumentSchema, gojsonschema.NewGoLoader(doc))
}

func validate(schema string, document gojsonschema.JSONLoader) error {
	result, err := gojsonschema.Validate(gojsonschema.NewStringLoader(schema), document)
	if err != nil {
		return fmt.Errorf("schema validation error: %w", err)
	}
	if result.Valid() {
		return nil
	}

	msgs := make([]string, 0, len(result.Errors()))
	for _, desc := range result.Errors() {
		msgs = append(msgs, desc.String())
	}
	return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
}
