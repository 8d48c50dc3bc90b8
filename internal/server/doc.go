// Package server exposes the strength engine and passphrase generator over
// a small JSON HTTP API.
//
// Endpoints:
//   - POST /v1/analyze  {"username": "...", "password": "..."} -> AnalysisResult
//   - POST /v1/generate -> {"password": "...", "analysis": AnalysisResult}
//   - GET  /healthz     -> {"status": "ok"}
//
// Request bodies are size-limited, connections are capped with
// netutil.LimitListener, and access logs record only method, path, status
// and request ID. Request bodies are never logged.
package server
