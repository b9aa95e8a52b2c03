package server

import (
	"bytes"
	"embed"
	"encoding/json"
	"errors"
	"fmt"

	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"

	"github.com/jacksmith/todo/internal/ops"
)

//go:embed schema/*.json
var schemaFiles embed.FS

// bodySchema pairs a compiled request schema with the error reported when a
// body does not conform to it.
type bodySchema struct {
	schema  *jsonschema.Schema
	invalid *ops.ValidationError
}

var (
	createSchema = mustCompileSchema("schema/create.json", &ops.ValidationError{
		Field:   "text",
		Message: "must be a non-empty string",
	})
	updateSchema = mustCompileSchema("schema/update.json", &ops.ValidationError{
		Message: "invalid input: id must be a string, text (if provided) must be a string, and completed (if provided) must be a boolean",
	})
)

// errNotObject is reported when the body is not JSON at all.
var errNotObject = &ops.ValidationError{Field: "body", Message: "must be a JSON object"}

func mustCompileSchema(name string, invalid *ops.ValidationError) *bodySchema {
	data, err := schemaFiles.ReadFile(name)
	if err != nil {
		panic(fmt.Sprintf("read schema %s: %v", name, err))
	}

	compiler := jsonschema.NewCompiler()
	compiler.Draft = jsonschema.Draft7
	if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
		panic(fmt.Sprintf("add schema %s: %v", name, err))
	}
	schema, err := compiler.Compile(name)
	if err != nil {
		panic(fmt.Sprintf("compile schema %s: %v", name, err))
	}
	return &bodySchema{schema: schema, invalid: invalid}
}

// decode checks body against the schema and then decodes it into dst.
// The returned detail is the raw schema failure, for logging.
func (b *bodySchema) decode(body []byte, dst any) (detail string, err error) {
	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return err.Error(), errNotObject
	}

	if err := b.schema.Validate(doc); err != nil {
		var ve *jsonschema.ValidationError
		if errors.As(err, &ve) {
			return ve.Error(), b.invalid
		}
		return err.Error(), b.invalid
	}

	if err := json.Unmarshal(body, dst); err != nil {
		return err.Error(), b.invalid
	}
	return "", nil
}
