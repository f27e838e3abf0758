package middleware

import (
	"encoding/json"
	"net/http"
)

type errorEnvelope struct {
	Status  bool   `json:"status"`
	Message string `json:"message"`
}

// writeJSONError writes a {status:false, message} response with the correct Content-Type.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorEnvelope{Message: msg})
}
