package middleware

import (
	"encoding/json"
	"net/http"
)

// writeJSONError emits the same {"error": msg} shape the handler layer uses,
// so middleware rejections look no different to clients.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
