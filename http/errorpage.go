package http

import (
	"io"
	"net/http"
)

const indexFallbackHTML = `<h1>Tombolos Web Map</h1><p>Index file not found.</p>`

// writeIndexFallback answers the root route with a 200 placeholder page when
// index.html is not deployed. Deliberately not a 404: the gateway itself is
// up, only the frontend bundle is missing.
func writeIndexFallback(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, indexFallbackHTML)
}

// writeFaviconNotFound mirrors the historical favicon fallback: a 200 JSON
// error object rather than the standard envelope.
func writeFaviconNotFound(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = io.WriteString(w, `{"error":"Favicon not found"}`)
}
