package server

import (
	"github.com/katalvlaran/relgraph/core"
	"github.com/katalvlaran/relgraph/scene"
)

// AnalyzeRequest is the body of POST /v1/analyze. Either Objects (with
// Relations) or Clevr is given; Clevr wins when both are present.
type AnalyzeRequest struct {
	Scene     string          `json:"scene,omitempty"`
	Objects   []core.Object   `json:"objects"`
	Relations []core.Relation `json:"relations"`
	Clevr     *scene.Scene    `json:"clevr,omitempty"`
	// InvertLabels overrides the configured default when set.
	InvertLabels *bool `json:"invert_labels,omitempty"`
}

// ErrorResponse is returned for every non-2xx answer.
type ErrorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

// HealthResponse is returned by GET /v1/health.
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}
