package app

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rda-dmp-common/madmp/dmp"
	"github.com/rda-dmp-common/madmp/dmp/specdata"

	"github.com/prometheus/client_golang/prometheus"
	promtestutil "github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testService(t *testing.T, mode string) *service {
	t.Helper()

	config := &Config{}
	config.Validator.DefaultVersion = dmp.DefaultVersion
	config.Validator.SchemaCheck = mode

	svc, err := newService(logrus.StandardLogger(), config, prometheus.NewRegistry())
	require.NoError(t, err)

	return svc
}

func postDocument(svc *service, target string, stream []byte) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(stream))
	w := httptest.NewRecorder()
	svc.ServeHTTP(w, req)
	return w
}

func decodeResponse(t *testing.T, w *httptest.ResponseRecorder) validateResponse {
	t.Helper()
	var resp validateResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	return resp
}

func TestServiceValidate(t *testing.T) {
	svc := testService(t, dmp.SchemaCheckWarnings)

	w := postDocument(svc, "/v1/validate", specdata.MustAsset("examples/1.1/ex1-minimal.json"))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Valid)
	assert.Equal(t, "1.1", resp.Version)
	assert.Empty(t, resp.Violations)
	assert.Empty(t, resp.Findings)
	assert.Equal(t, float64(1), promtestutil.ToFloat64(svc.receivedDocuments))
	assert.Equal(t, float64(0), promtestutil.ToFloat64(svc.invalidDocuments))
}

func TestServiceValidateVersionParam(t *testing.T) {
	svc := testService(t, dmp.SchemaCheckWarnings)

	w := postDocument(svc, "/v1/validate?version=1.0", specdata.MustAsset("examples/1.0/ex2-funded-project.json"))

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Valid)
	assert.Equal(t, "1.0", resp.Version)
}

func TestServiceValidateUnknownVersion(t *testing.T) {
	svc := testService(t, dmp.SchemaCheckWarnings)

	w := postDocument(svc, "/v1/validate?version=1.5", specdata.MustAsset("examples/1.1/ex1-minimal.json"))

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "supported versions")
}

func TestServiceValidateViolations(t *testing.T) {
	svc := testService(t, dmp.SchemaCheckWarnings)

	w := postDocument(svc, "/v1/validate", []byte(`{"dmp": {}}`))

	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	resp := decodeResponse(t, w)
	assert.False(t, resp.Valid)
	assert.NotEmpty(t, resp.Violations)
	assert.Equal(t, float64(1), promtestutil.ToFloat64(svc.invalidDocuments))
}

func TestServiceValidateMalformed(t *testing.T) {
	svc := testService(t, dmp.SchemaCheckWarnings)

	w := postDocument(svc, "/v1/validate", []byte(`{"dmp": [}`))

	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestServiceSchemaCheckModes(t *testing.T) {
	// An explicitly empty optional enum passes the native engine, which
	// treats it as absent, but the published schema rejects it.
	doc := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(specdata.MustAsset("examples/1.1/ex1-minimal.json"), &doc))
	dataset := doc["dmp"].(map[string]interface{})["dataset"].([]interface{})[0].(map[string]interface{})
	dataset["language"] = ""
	stream, err := json.Marshal(doc)
	require.NoError(t, err)

	t.Run("warnings", func(t *testing.T) {
		svc := testService(t, dmp.SchemaCheckWarnings)
		w := postDocument(svc, "/v1/validate", stream)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Valid)
		assert.NotEmpty(t, resp.Findings)
	})

	t.Run("strict", func(t *testing.T) {
		svc := testService(t, dmp.SchemaCheckStrict)
		w := postDocument(svc, "/v1/validate", stream)
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		resp := decodeResponse(t, w)
		assert.False(t, resp.Valid)
		assert.Empty(t, resp.Violations)
		assert.NotEmpty(t, resp.Findings)
		assert.Equal(t, float64(1), promtestutil.ToFloat64(svc.invalidDocuments))
	})

	t.Run("disabled", func(t *testing.T) {
		svc := testService(t, dmp.SchemaCheckDisabled)
		w := postDocument(svc, "/v1/validate", stream)
		require.Equal(t, http.StatusOK, w.Code)
		resp := decodeResponse(t, w)
		assert.True(t, resp.Valid)
		assert.Empty(t, resp.Findings)
	})
}

func TestServiceValidateLint(t *testing.T) {
	doc := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(specdata.MustAsset("examples/1.1/ex1-minimal.json"), &doc))
	inner := doc["dmp"].(map[string]interface{})
	inner["created"] = "2020-03-13T13:13:00Z"
	inner["modified"] = "2019-03-13T13:13:00Z"
	stream, err := json.Marshal(doc)
	require.NoError(t, err)

	svc := testService(t, dmp.SchemaCheckWarnings)
	w := postDocument(svc, "/v1/validate", stream)

	require.Equal(t, http.StatusOK, w.Code)
	resp := decodeResponse(t, w)
	assert.True(t, resp.Valid)
	require.Len(t, resp.Lint, 1)
	assert.Equal(t, "modified", resp.Lint[0].Path)
}

func TestServiceVersions(t *testing.T) {
	svc := testService(t, dmp.SchemaCheckWarnings)

	req := httptest.NewRequest(http.MethodGet, "/v1/versions", nil)
	w := httptest.NewRecorder()
	svc.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	var resp versionsResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []string{"1.0", "1.1"}, resp.Versions)
	assert.Equal(t, "1.1", resp.Default)
}

func TestServiceMethodNotAllowed(t *testing.T) {
	svc := testService(t, dmp.SchemaCheckWarnings)

	req := httptest.NewRequest(http.MethodGet, "/v1/validate", nil)
	w := httptest.NewRecorder()
	svc.ServeHTTP(w, req)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/versions", nil)
	w = httptest.NewRecorder()
	svc.ServeHTTP(w, req)
	require.Equal(t, http.StatusMethodNotAllowed, w.Code)
}
