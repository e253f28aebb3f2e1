// Package api serves a memorable identifier generator over HTTP.
//
//	GET /v1/ids?count=N     {"ids": [...]}
//	GET /v1/lists           {"lists": [{"name": "Animals", "size": 274}, ...]}
//	GET /v1/lists/{name}    {"name": "Colours", "words": [...]}
//	GET /healthz, /readyz, /metrics
//
// Errors are JSON {"error": "..."}: 400 for bad input or an unusable
// configuration, 404 for an unknown list, 409 when the generator runs out of
// attempts, 429 when the client's rate limit is spent and 500 for anything
// else. With a rate limiter every requested identifier costs one token.
package api
