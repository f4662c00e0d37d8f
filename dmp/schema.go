package dmp

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/xeipuuv/gojsonschema"

	"github.com/rda-dmp-common/madmp/dmp/specdata"
)

// Schema cross-check modes. The cross-check runs the published JSON Schema
// of a revision next to the native engine; the native engine owns the
// verdict unless the mode is strict.
const (
	SchemaCheckStrict   = "strict"
	SchemaCheckWarnings = "warnings"
	SchemaCheckDisabled = "disabled"
)

// SchemaValidator checks a wrapped document stream against the JSON Schema
// published with a revision.
type SchemaValidator interface {
	// Validate returns the findings of the cross-check. The error reports
	// problems running the check, not problems with the document.
	Validate(stream []byte, version string) ([]Violation, error)

	// Strict reports whether findings should fail documents instead of
	// being surfaced as warnings.
	Strict() bool
}

// NewSchemaValidator returns the validator of a cross-check mode.
func NewSchemaValidator(mode string) (SchemaValidator, error) {
	switch mode {
	case SchemaCheckDisabled:
		return &noOpSchemaValidator{}, nil
	case SchemaCheckStrict, SchemaCheckWarnings:
		return newSchemaValidatorImpl(mode == SchemaCheckStrict)
	default:
		return nil, fmt.Errorf("unknown schema check mode %q", mode)
	}
}

// noOpSchemaValidator is used when the cross-check is disabled.
type noOpSchemaValidator struct{}

var _ SchemaValidator = (*noOpSchemaValidator)(nil)

func (v *noOpSchemaValidator) Validate(stream []byte, version string) ([]Violation, error) {
	return nil, nil
}

func (v *noOpSchemaValidator) Strict() bool { return false }

// schemaValidatorImpl validates streams against the schema documents
// bundled under specdata, compiled once at construction.
type schemaValidatorImpl struct {
	strict  bool
	schemas map[string]*gojsonschema.Schema
}

var _ SchemaValidator = (*schemaValidatorImpl)(nil)

func newSchemaValidatorImpl(strict bool) (*schemaValidatorImpl, error) {
	v := &schemaValidatorImpl{
		strict:  strict,
		schemas: make(map[string]*gojsonschema.Schema),
	}
	for _, version := range Versions() {
		name := fmt.Sprintf("schemas/%s/maDMP-schema.json", version)
		blob, err := specdata.Asset(name)
		if err != nil {
			return nil, errors.Wrapf(err, "schema document %s is not bundled", name)
		}
		schema, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(blob))
		if err != nil {
			return nil, errors.Wrapf(err, "error compiling schema %s", name)
		}
		v.schemas[version] = schema
	}
	return v, nil
}

func (v *schemaValidatorImpl) Validate(stream []byte, version string) ([]Violation, error) {
	schema, ok := v.schemas[version]
	if !ok {
		return nil, &UnknownVersionError{Version: version, Supported: Versions()}
	}
	result, err := schema.Validate(gojsonschema.NewBytesLoader(stream))
	if err != nil {
		return nil, errors.Wrap(err, "error running the schema cross-check")
	}
	if result.Valid() {
		return nil, nil
	}
	findings := make([]Violation, 0, len(result.Errors()))
	for _, re := range result.Errors() {
		findings = append(findings, Violation{
			Path:    re.Field(),
			Rule:    re.Type(),
			Message: re.Description(),
		})
	}
	return findings, nil
}

func (v *schemaValidatorImpl) Strict() bool { return v.strict }
