package schema

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/katalvlaran/navedge/corner"
	"github.com/katalvlaran/navedge/geom"
)

// ErrInvalidDocument indicates a document that is not valid JSON or violates the schema.
var ErrInvalidDocument = errors.New("schema: invalid document")

//go:embed boundary.schema.json
var boundarySchema []byte

// Raw returns a copy of the embedded JSON Schema.
func Raw() []byte {
	return append([]byte(nil), boundarySchema...)
}

// Document is the decoded boundary document.
type Document struct {
	Origin   geom.Vec3      `json:"origin"`
	Radius   float64        `json:"radius,omitempty"`
	Segments []geom.Segment `json:"segments"`
	Interior [][]geom.Vec3  `json:"interior,omitempty"`
}

// Locator returns a PolygonLocator over d.Interior, or nil when no polygon is given.
func (d Document) Locator() corner.InteriorLocator {
	if len(d.Interior) == 0 {
		return nil
	}

	return corner.NewPolygonLocator(d.Interior)
}

// Validator checks documents against the compiled boundary schema.
// It is safe for concurrent use.
type Validator struct {
	schema *gojsonschema.Schema
}

// NewValidator compiles the embedded schema.
func NewValidator() (*Validator, error) {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(boundarySchema))
	if err != nil {
		return nil, fmt.Errorf("schema: compile: %w", err)
	}

	return &Validator{schema: s}, nil
}

// Validate reports every schema violation in data, wrapped in ErrInvalidDocument.
func (v *Validator) Validate(data []byte) error {
	result, err := v.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, desc := range result.Errors() {
			msgs = append(msgs, desc.String())
		}
		return fmt.Errorf("%w: %s", ErrInvalidDocument, strings.Join(msgs, "; "))
	}

	return nil
}

// Decode validates data and unmarshals it into a Document.
func (v *Validator) Decode(data []byte) (Document, error) {
	if err := v.Validate(data); err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, fmt.Errorf("%w: %v", ErrInvalidDocument, err)
	}

	return doc, nil
}
