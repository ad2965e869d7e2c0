// Package server exposes the uniqueness pipeline over HTTP.
//
// Routes (see RegisterRoutes):
//
//	POST /v1/analyze   body: AnalyzeRequest, returns uniqueness.Report
//	GET  /v1/health    liveness and version
//	GET  /metrics      Prometheus exposition
//
// Input errors map to 4xx with an ErrorResponse{Error, Code}:
// malformed JSON → 400 INVALID_REQUEST, oversize body → 413
// BODY_TOO_LARGE, graph or scene violations → 422 INVALID_GRAPH /
// INVALID_SCENE.
package server
