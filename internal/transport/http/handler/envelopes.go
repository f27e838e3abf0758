package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/hotel-booking-api/internal/domain"
)

// Envelope is the response wrapper shared by every endpoint:
// {status:true, result} on success and {status:false, message} on failure.
type Envelope struct {
	Status  bool   `json:"status"`
	Result  any    `json:"result,omitempty"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeOK(w http.ResponseWriter, result any) {
	writeJSON(w, http.StatusOK, Envelope{Status: true, Result: result})
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, Envelope{Message: msg})
}

// httpError maps domain errors to a status code and a client-safe message.
// Anything unrecognised is logged and reported as a 500.
func httpError(w http.ResponseWriter, r *http.Request, err error) {
	var de *domain.Error
	hasMsg := errors.As(err, &de) && de.Message != ""

	switch {
	case errors.Is(err, domain.ErrBadRequest):
		msg := domain.MsgInvalidBody
		if hasMsg {
			msg = de.Message
		}
		writeError(w, http.StatusBadRequest, msg)
	case errors.Is(err, domain.ErrUnauthorized):
		writeError(w, http.StatusUnauthorized, domain.MsgLoginRequired)
	case errors.Is(err, domain.ErrNotFound):
		msg := domain.MsgOrderNotFound
		if hasMsg {
			msg = de.Message
		}
		writeError(w, http.StatusNotFound, msg)
	case errors.Is(err, domain.ErrMailerNotConfigured):
		slog.Error("mail transport not configured", "request_id", chimiddleware.GetReqID(r.Context()), "err", err)
		writeError(w, http.StatusServiceUnavailable, domain.MsgMailerDisabled)
	case errors.Is(err, domain.ErrMailerUnavailable):
		slog.Error("mail transport unavailable", "request_id", chimiddleware.GetReqID(r.Context()), "err", err)
		writeError(w, http.StatusBadGateway, domain.MsgMailerUnavailable)
	default:
		slog.Error("unhandled error", "method", r.Method, "path", r.URL.Path,
			"request_id", chimiddleware.GetReqID(r.Context()), "err", err)
		writeError(w, http.StatusInternalServerError, domain.MsgInternal)
	}
}

// decode reads a JSON request body into dst. Shape errors are reported as a 400.
func decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, domain.MsgInvalidBody)
		return false
	}
	return true
}
