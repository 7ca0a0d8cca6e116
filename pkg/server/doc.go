// Package server exposes the configuration validator over HTTP.
//
// Routes: POST /v1/validate accepts raw configuration text and returns
// the JSON validation report; /health, /ready, and /metrics serve the
// usual operational endpoints. API requests pass through request-ID
// tagging and token-bucket rate limiting.
package server
