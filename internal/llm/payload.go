package llm

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// payloadSchema checks the raw body of a provider that returns JSON
// without an SDK to decode it.
type payloadSchema struct {
	name   string
	schema *jsonschema.Schema
}

func compilePayloadSchema(name, definition string) (*payloadSchema, error) {
	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader([]byte(definition)))
	if err != nil {
		return nil, fmt.Errorf("parse %s schema: %w", name, err)
	}
	c := jsonschema.NewCompiler()
	url := "mem://" + name + ".json"
	if err := c.AddResource(url, doc); err != nil {
		return nil, fmt.Errorf("load %s schema: %w", name, err)
	}
	s, err := c.Compile(url)
	if err != nil {
		return nil, fmt.Errorf("compile %s schema: %w", name, err)
	}
	return &payloadSchema{name: name, schema: s}, nil
}

func mustCompilePayloadSchema(name, definition string) *payloadSchema {
	s, err := compilePayloadSchema(name, definition)
	if err != nil {
		panic(err)
	}
	return s
}

// decode validates raw and unmarshals it into v. Any failure is an
// *ErrInvalidResponse carrying the raw body.
func (s *payloadSchema) decode(raw []byte, v any) error {
	invalid := func(err error) error {
		return &ErrInvalidResponse{Content: string(raw), Err: err}
	}

	doc, err := jsonschema.UnmarshalJSON(bytes.NewReader(raw))
	if err != nil {
		return invalid(fmt.Errorf("malformed JSON: %w", err))
	}
	if err := s.schema.Validate(doc); err != nil {
		return invalid(fmt.Errorf("%s payload: %w", s.name, err))
	}
	if err := json.Unmarshal(raw, v); err != nil {
		return invalid(err)
	}
	return nil
}
