package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/hotel-booking-api/internal/application/order"
	"github.com/hotel-booking-api/internal/domain"
	"github.com/hotel-booking-api/internal/transport/http/middleware"
)

// OrderHandler serves the signed-in user's orders.
type OrderHandler struct {
	svc order.Service
}

func NewOrderHandler(svc order.Service) *OrderHandler { return &OrderHandler{svc: svc} }

func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	orders, err := h.svc.List(r.Context(), userID)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeOK(w, orders)
}

func (h *OrderHandler) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	o, err := h.svc.Get(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeOK(w, o)
}

func (h *OrderHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	var req domain.CreateOrderRequest
	if !decode(w, r, &req) {
		return
	}
	o, err := h.svc.Create(r.Context(), userID, req)
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeOK(w, o)
}

func (h *OrderHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, ok := currentUser(w, r)
	if !ok {
		return
	}
	o, err := h.svc.Cancel(r.Context(), userID, chi.URLParam(r, "id"))
	if err != nil {
		httpError(w, r, err)
		return
	}
	writeOK(w, o)
}

func currentUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	claims, ok := middleware.ClaimsFromContext(r.Context())
	if !ok || claims.UserID == "" {
		writeError(w, http.StatusUnauthorized, domain.MsgLoginRequired)
		return "", false
	}
	return claims.UserID, true
}
