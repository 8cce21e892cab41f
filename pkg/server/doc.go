// Package server implements the HTTP surface of the evaluation service.
//
// The server exposes machine listings and throughput evaluations over a
// small JSON API, plus the usual operational endpoints:
//
//	GET  /health          - liveness probe
//	GET  /ready           - readiness probe
//	GET  /metrics         - Prometheus metrics
//	GET  /v1/machines     - registered machine definitions
//	GET  /v1/recipes      - known recipe identifiers
//	POST /v1/evaluations  - evaluate one machine against one recipe
//	GET  /v1/evaluations  - evaluate every eligible machine for a recipe
//
// API endpoints run through a middleware chain providing request IDs,
// rate limiting, Prometheus instrumentation, structured request logging,
// API version negotiation, and panic recovery.
package server
