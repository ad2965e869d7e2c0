package server_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/relgraph"
	"github.com/katalvlaran/relgraph/classify"
	"github.com/katalvlaran/relgraph/config"
	"github.com/katalvlaran/relgraph/server"
	"github.com/katalvlaran/relgraph/uniqueness"
)

func init() {
	gin.SetMode(gin.TestMode)
}

const triangleBody = `{
  "scene": "triangle",
  "objects": [{"index": 0, "color": "red"}, {"index": 1}, {"index": 2}],
  "relations": [
    {"from": 0, "to": 1, "labels": ["left"]},
    {"from": 1, "to": 0, "labels": ["right"]},
    {"from": 1, "to": 2, "labels": ["front"]},
    {"from": 2, "to": 1, "labels": ["behind"]},
    {"from": 0, "to": 2, "labels": ["left", "front"]},
    {"from": 2, "to": 0, "labels": ["right", "behind"]}
  ]
}`

func do(t *testing.T, r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeError(t *testing.T, w *httptest.ResponseRecorder) server.ErrorResponse {
	t.Helper()
	var resp server.ErrorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	r := server.NewRouter(config.Default(), nil)
	w := do(t, r, http.MethodGet, "/v1/health", "")

	require.Equal(t, http.StatusOK, w.Code)
	var resp server.HealthResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "healthy", resp.Status)
	assert.Equal(t, relgraph.Version, resp.Version)
}

func TestAnalyze_Triangle(t *testing.T) {
	r := server.NewRouter(config.Default(), nil)
	w := do(t, r, http.MethodPost, "/v1/analyze", triangleBody)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	var rep uniqueness.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, "triangle", rep.Scene)
	assert.NotEmpty(t, rep.ID)
	assert.Equal(t, 1.0, rep.Coverage)
	assert.Equal(t, 3, rep.Counts[classify.Both])
	assert.Equal(t, 6, rep.Summary.Edge2Global)

	o0, ok := rep.Object(0)
	require.True(t, ok)
	assert.Equal(t, "red", o0.Color)
}

func TestAnalyze_InvertOverride(t *testing.T) {
	r := server.NewRouter(config.Default(), nil)
	body := strings.Replace(triangleBody, `"scene": "triangle",`, `"scene": "triangle", "invert_labels": true,`, 1)
	w := do(t, r, http.MethodPost, "/v1/analyze", body)
	require.Equal(t, http.StatusOK, w.Code)

	var rep uniqueness.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.True(t, rep.Inverted)
}

func TestAnalyze_Clevr(t *testing.T) {
	r := server.NewRouter(config.Default(), nil)
	body := `{"clevr": {
	  "image_filename": "CLEVR_val_000001.png",
	  "objects": [{"color": "red"}, {"color": "blue"}],
	  "relationships": {"left": [[1], []], "right": [[], [0]]}
	}}`
	w := do(t, r, http.MethodPost, "/v1/analyze", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rep uniqueness.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, "CLEVR_val_000001.png", rep.Scene)
	assert.Equal(t, 2, rep.Summary.TotalEdges)
	assert.Equal(t, 2, rep.Counts[classify.Only1Hop])
}

func TestAnalyze_Errors(t *testing.T) {
	r := server.NewRouter(config.Default(), nil)
	cases := []struct {
		name   string
		body   string
		status int
		code   string
	}{
		{"malformed json", `{"objects": [`, http.StatusBadRequest, "INVALID_REQUEST"},
		{"unknown label", `{"objects": [{"index": 0}, {"index": 1}], "relations": [{"from": 0, "to": 1, "labels": ["above"]}]}`,
			http.StatusBadRequest, "INVALID_REQUEST"},
		{"self loop", `{"objects": [{"index": 0}], "relations": [{"from": 0, "to": 0, "labels": ["left"]}]}`,
			http.StatusUnprocessableEntity, "INVALID_GRAPH"},
		{"duplicate object", `{"objects": [{"index": 0}, {"index": 0}]}`,
			http.StatusUnprocessableEntity, "INVALID_GRAPH"},
		{"bad scene", `{"clevr": {"objects": [{}], "relationships": {"above": [[]]}}}`,
			http.StatusUnprocessableEntity, "INVALID_SCENE"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := do(t, r, http.MethodPost, "/v1/analyze", tc.body)
			require.Equal(t, tc.status, w.Code, w.Body.String())
			assert.Equal(t, tc.code, decodeError(t, w).Code)
		})
	}
}

func TestAnalyze_DropInvalid(t *testing.T) {
	cfg := config.Default()
	cfg.Graph.DropInvalid = true
	r := server.NewRouter(cfg, nil)

	body := `{"objects": [{"index": 0}, {"index": 1}], "relations": [
	  {"from": 0, "to": 0, "labels": ["left"]},
	  {"from": 0, "to": 1, "labels": ["left"]}]}`
	w := do(t, r, http.MethodPost, "/v1/analyze", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var rep uniqueness.Report
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &rep))
	assert.Equal(t, 1, rep.Summary.TotalEdges)
}

func TestAnalyze_BodyTooLarge(t *testing.T) {
	cfg := config.Default()
	cfg.Server.MaxBodyBytes = 32
	r := server.NewRouter(cfg, nil)

	w := do(t, r, http.MethodPost, "/v1/analyze", triangleBody)
	require.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	assert.Equal(t, "BODY_TOO_LARGE", decodeError(t, w).Code)
}

func TestMetrics(t *testing.T) {
	r := server.NewRouter(config.Default(), nil)
	require.Equal(t, http.StatusOK, do(t, r, http.MethodPost, "/v1/analyze", triangleBody).Code)

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)
	assert.True(t, bytes.Contains(w.Body.Bytes(), []byte(`relgraph_analyses_total{result="ok"}`)))
	assert.Contains(t, w.Body.String(), "relgraph_analysis_duration_seconds")
}
