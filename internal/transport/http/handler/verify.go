package handler

import (
	"net/http"

	"github.com/hotel-booking-api/internal/application/verify"
	"github.com/hotel-booking-api/internal/domain"
)

// VerifyHandler serves the e-mail verification and order confirmation endpoints.
type VerifyHandler struct {
	svc verify.Service
}

func NewVerifyHandler(svc verify.Service) *VerifyHandler { return &VerifyHandler{svc: svc} }

type emailExistsResult struct {
	IsEmailExists bool `json:"isEmailExists"`
}

func (h *VerifyHandler) CheckEmail(w http.ResponseWriter, r *http.Request) {
	var req domain.EmailRequest
	if !decode(w, r, &req) {
		return
	}
	exists, err := h.svc.CheckEmailExists(r.Context(), req.Email)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeOK(w, emailExistsResult{IsEmailExists: exists})
}

func (h *VerifyHandler) GenerateEmailCode(w http.ResponseWriter, r *http.Request) {
	var req domain.EmailRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.svc.SendVerificationCode(r.Context(), req.Email); err != nil {
		httpError(w, r, err)
		return
	}
	writeOK(w, nil)
}

func (h *VerifyHandler) SendOrderEmail(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req domain.OrderEmailRequest
	if !decode(w, r, &req) {
		return
	}
	if err := h.svc.SendOrderEmail(r.Context(), userID, req); err != nil {
		httpError(w, r, err)
		return
	}
	writeOK(w, nil)
}
