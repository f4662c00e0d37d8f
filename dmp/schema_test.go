package dmp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rda-dmp-common/madmp/dmp"
	"github.com/rda-dmp-common/madmp/dmp/specdata"
)

func TestSchemaValidatorModes(t *testing.T) {
	t.Parallel()

	v, err := dmp.NewSchemaValidator(dmp.SchemaCheckStrict)
	require.NoError(t, err)
	assert.True(t, v.Strict())

	v, err = dmp.NewSchemaValidator(dmp.SchemaCheckWarnings)
	require.NoError(t, err)
	assert.False(t, v.Strict())

	v, err = dmp.NewSchemaValidator(dmp.SchemaCheckDisabled)
	require.NoError(t, err)
	assert.False(t, v.Strict())

	_, err = dmp.NewSchemaValidator("lenient")
	require.EqualError(t, err, `unknown schema check mode "lenient"`)
}

// TestSchemaCrossCheckExamples keeps the bundled schema documents in
// agreement with the native engine: every canonical example must satisfy
// both.
func TestSchemaCrossCheckExamples(t *testing.T) {
	t.Parallel()

	v, err := dmp.NewSchemaValidator(dmp.SchemaCheckWarnings)
	require.NoError(t, err)

	tests := []struct {
		version string
		name    string
	}{
		{"1.0", "examples/1.0/ex1-minimal.json"},
		{"1.0", "examples/1.0/ex2-funded-project.json"},
		{"1.1", "examples/1.1/ex1-minimal.json"},
		{"1.1", "examples/1.1/ex9-long.json"},
		{"1.1", "examples/1.1/ex10-fairsharing.json"},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			findings, err := v.Validate(specdata.MustAsset(tc.name), tc.version)
			require.NoError(t, err)
			assert.Empty(t, findings)
		})
	}
}

func TestSchemaCrossCheckFindings(t *testing.T) {
	t.Parallel()

	v, err := dmp.NewSchemaValidator(dmp.SchemaCheckStrict)
	require.NoError(t, err)

	findings, err := v.Validate([]byte(`{"dmp": {"title": "No dataset"}}`), "1.1")
	require.NoError(t, err)
	assert.NotEmpty(t, findings)
}

func TestSchemaCrossCheckRevisionDeltas(t *testing.T) {
	t.Parallel()

	v, err := dmp.NewSchemaValidator(dmp.SchemaCheckWarnings)
	require.NoError(t, err)

	// A 1.0 document with object funding must not satisfy the 1.1 schema,
	// which publishes funding as a sequence.
	blob := specdata.MustAsset("examples/1.0/ex2-funded-project.json")

	findings, err := v.Validate(blob, "1.0")
	require.NoError(t, err)
	assert.Empty(t, findings)

	findings, err = v.Validate(blob, "1.1")
	require.NoError(t, err)
	assert.NotEmpty(t, findings)
}

func TestSchemaCrossCheckUnknownVersion(t *testing.T) {
	t.Parallel()

	v, err := dmp.NewSchemaValidator(dmp.SchemaCheckWarnings)
	require.NoError(t, err)

	_, err = v.Validate([]byte(`{"dmp": {}}`), "1.5")
	var uerr *dmp.UnknownVersionError
	require.ErrorAs(t, err, &uerr)
}

func TestSchemaCheckDisabledIsNoOp(t *testing.T) {
	t.Parallel()

	v, err := dmp.NewSchemaValidator(dmp.SchemaCheckDisabled)
	require.NoError(t, err)

	findings, err := v.Validate([]byte(`not even json`), "1.1")
	require.NoError(t, err)
	assert.Empty(t, findings)
}
