package middleware

import (
	"bytes"
	"encoding/json"
	"io"
	"mime"
	"net/http"

	"github.com/hotel-booking-api/internal/domain"
)

const maxBodyBytes = 1 << 20

// RequireJSONBody rejects requests whose body is not a non-empty JSON object.
// The body is buffered and restored so handlers can decode it again.
func RequireJSONBody(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mt, _, err := mime.ParseMediaType(r.Header.Get("Content-Type"))
		if err != nil || mt != "application/json" {
			writeJSONError(w, http.StatusBadRequest, domain.MsgInvalidBody)
			return
		}
		raw, err := io.ReadAll(io.LimitReader(r.Body, maxBodyBytes+1))
		if err != nil || len(raw) > maxBodyBytes {
			writeJSONError(w, http.StatusBadRequest, domain.MsgInvalidBody)
			return
		}
		var fields map[string]json.RawMessage
		if err := json.Unmarshal(raw, &fields); err != nil || len(fields) == 0 {
			writeJSONError(w, http.StatusBadRequest, domain.MsgInvalidBody)
			return
		}
		r.Body = io.NopCloser(bytes.NewReader(raw))
		next.ServeHTTP(w, r)
	})
}
