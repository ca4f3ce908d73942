// Package http provides the HTTP surface of the Tombolos static gateway.
//
// The router is assembled once at startup and never mutated: the entry
// point, a health check, the favicon pair, a table of named asset routes,
// and a generic /static mount over the asset root.
//
// # Routes
//
//   - GET /          → index.html, or a 200 placeholder page when absent
//   - GET /health    → {"status":"healthy","app":"<app name>"}
//   - GET /favicon.svg → favicon.svg, or {"error":"Favicon not found"}
//   - GET /favicon.ico → favicon.ico, falling back to favicon.svg
//   - GET /<named asset> → the named file with its declared media type
//   - GET /static/*  → any file beneath the asset root, type by extension
//
// Missing named assets and unknown /static paths return a JSON 404 through
// the standard error envelope. Traversal attempts are rejected with 400
// before any filesystem access.
//
// # CORS
//
// Every response participates in the configured cross-origin policy; the
// default configuration allows all origins, methods, and headers with
// credentials, matching the gateway's public-asset role.
package http
