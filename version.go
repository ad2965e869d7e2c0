package relgraph

// Version is reported by `relgraph version` and GET /v1/health.
const Version = "0.1.0"
