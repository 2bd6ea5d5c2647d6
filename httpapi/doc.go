// Package httpapi exposes an awareness.Analyzer over HTTP.
//
// Routes:
//
//	POST /v1/analyze              analyze a boundary document, publish and return the snapshot
//	POST /v1/rebuild              query the analyzer's source at {"origin": {...}}
//	GET  /v1/snapshots/latest     the latest published snapshot
//	GET  /v1/snapshots/{id}       the latest snapshot if its ID matches
//	GET  /v1/schema               the boundary document JSON Schema
//	GET  /healthz                 liveness
//
// Errors are returned as {"error": "..."} with a matching status code.
//
// Lifecycle:
//
//	ListenAndServe (or Serve with a prepared listener) blocks until its
//	context is cancelled, then drains in-flight requests. A listener
//	failure is returned to the caller instead of being logged.
package httpapi
