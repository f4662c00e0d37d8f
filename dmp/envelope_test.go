package dmp_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rda-dmp-common/madmp/dmp"
	"github.com/rda-dmp-common/madmp/dmp/specdata"
)

func TestOpen(t *testing.T) {
	t.Parallel()

	e, err := dmp.Open(specdata.MustAsset("examples/1.1/ex1-minimal.json"))
	require.NoError(t, err)

	assert.Equal(t, "Minimal data management plan", e.Attributes.Title)
	assert.Equal(t, "eng", e.Attributes.Language)
	assert.Equal(t, "2019-03-13T13:13:00Z", e.Attributes.Created)
	assert.Equal(t, "2020-07-27T09:30:00Z", e.Attributes.Modified)
	assert.NotEmpty(t, e.DMP)
}

func TestOpenErrors(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"Broken syntax":        `{true: false}`,
		"Missing wrapper":      `{"title": "no wrapper"}`,
		"Null wrapper":         `{"dmp": null}`,
		"Wrong attribute type": `{"dmp": {"title": 42}}`,
	}
	for name, payload := range tests {
		payload := payload
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := dmp.Open([]byte(payload))
			var merr *dmp.MalformedJSONError
			require.ErrorAs(t, err, &merr)
		})
	}
}
