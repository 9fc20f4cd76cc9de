package testharness

import (
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

// RequestSchema describes the accepted request document. Unknown fields are allowed.
const RequestSchema = `{"type":"object","properties":{"input":{"type":"string"}},"required":["input"]}`

// ResponseSchema describes the emitted response document.
const ResponseSchema = `{"type":"object","properties":{"class":{"enum":["` + ResponseClass + `"]},` +
	`"output":{"type":"string"}},"required":["class","output"]}`

// ValidateRequest checks data against RequestSchema.
func ValidateRequest(data []byte) error {
	if err := validateSchema(RequestSchema, data); err != nil {
		return fmt.Errorf("%w: %w", ErrParse, err)
	}

	return nil
}

// ValidateResponse checks data against ResponseSchema.
func ValidateResponse(data []byte) error {
	if err := validateSchema(ResponseSchema, data); err != nil {
		return fmt.Errorf("%w: %w", ErrSerialize, err)
	}

	return nil
}

type schemaError struct {
	details []string
}

func (e *schemaError) Error() string {
	return strings.Join(e.details, "; ")
}

func validateSchema(schema string, data []byte) error {
	schemaLoader := gojsonschema.NewStringLoader(schema)
	docLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, docLoader)
	if err != nil {
		return fmt.Errorf("validate schema: %w", err)
	}

	if result.Valid() {
		return nil
	}

	errs := make([]string, 0, len(result.Errors()))
	for _, err := range result.Errors() {
		errs = append(errs, err.String())
	}

	return &schemaError{details: errs}
}
