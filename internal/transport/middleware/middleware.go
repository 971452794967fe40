// Package middleware holds the HTTP middleware mounted by the REST router.
package middleware

import (
	"encoding/json"
	"net/http"
)

// Middleware wraps an http.Handler.
type Middleware = func(http.Handler) http.Handler

type errorBody struct {
	Error string `json:"error"`
}

// writeError writes the same {"error": "..."} body the REST handlers use.
func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorBody{Error: msg})
}
