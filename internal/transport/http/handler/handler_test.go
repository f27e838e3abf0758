package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/hotel-booking-api/internal/domain"
	jwtinfra "github.com/hotel-booking-api/internal/infrastructure/jwt"
	"github.com/hotel-booking-api/internal/transport/http/middleware"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// --- mocks ---

type mockVerifySvc struct{ mock.Mock }

func (m *mockVerifySvc) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockVerifySvc) SendVerificationCode(ctx context.Context, email string) error {
	return m.Called(ctx, email).Error(0)
}

func (m *mockVerifySvc) SendOrderEmail(ctx context.Context, userID string, req domain.OrderEmailRequest) error {
	return m.Called(ctx, userID, req).Error(0)
}

type mockOrderSvc struct{ mock.Mock }

func (m *mockOrderSvc) List(ctx context.Context, userID string) ([]domain.Order, error) {
	args := m.Called(ctx, userID)
	orders, _ := args.Get(0).([]domain.Order)
	return orders, args.Error(1)
}

func (m *mockOrderSvc) Get(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderSvc) Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error) {
	args := m.Called(ctx, userID, req)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockOrderSvc) Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, userID, orderID)
	if o, _ := args.Get(0).(*domain.Order); o != nil {
		return o, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- helpers ---

// asUser stands in for the auth middleware.
func asUser(userID string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := middleware.WithClaims(r.Context(), &jwtinfra.Claims{UserID: userID})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func newTestRouter(vs *mockVerifySvc, os *mockOrderSvc) http.Handler {
	vh := NewVerifyHandler(vs)
	oh := NewOrderHandler(os)
	r := chi.NewRouter()
	r.Post("/verify/email", vh.CheckEmail)
	r.Post("/verify/generateEmailCode", vh.GenerateEmailCode)
	r.Post("/anon/sendOrderEmail", vh.SendOrderEmail)
	r.Group(func(r chi.Router) {
		r.Use(asUser("u1"))
		r.Get("/orders", oh.List)
		r.Get("/orders/{id}", oh.Get)
		r.Post("/orders", oh.Create)
		r.Delete("/orders/{id}", oh.Cancel)
		r.Post("/orders/sendOrderEmail", vh.SendOrderEmail)
	})
	return r
}

func do(h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

// --- verify ---

func TestCheckEmail_InvalidEmail(t *testing.T) {
	vs := &mockVerifySvc{}
	vs.On("CheckEmailExists", mock.Anything, "not-an-email").
		Return(false, domain.NewError(domain.ErrBadRequest, domain.MsgInvalidEmail))

	rr := do(newTestRouter(vs, nil), http.MethodPost, "/verify/email", `{"email":"not-an-email"}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":false,"message":"Email 格式不正確"}`, rr.Body.String())
}

func TestCheckEmail_Exists(t *testing.T) {
	vs := &mockVerifySvc{}
	vs.On("CheckEmailExists", mock.Anything, "a@x.com").Return(true, nil)

	rr := do(newTestRouter(vs, nil), http.MethodPost, "/verify/email", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":true,"result":{"isEmailExists":true}}`, rr.Body.String())
}

func TestCheckEmail_MalformedBody(t *testing.T) {
	vs := &mockVerifySvc{}
	rr := do(newTestRouter(vs, nil), http.MethodPost, "/verify/email", `{"email":42}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":false,"message":"欄位未填寫正確"}`, rr.Body.String())
	vs.AssertNotCalled(t, "CheckEmailExists", mock.Anything, mock.Anything)
}

func TestGenerateEmailCode_Success(t *testing.T) {
	vs := &mockVerifySvc{}
	vs.On("SendVerificationCode", mock.Anything, "a@x.com").Return(nil)

	rr := do(newTestRouter(vs, nil), http.MethodPost, "/verify/generateEmailCode", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":true}`, rr.Body.String())
}

func TestGenerateEmailCode_MailerNotConfigured(t *testing.T) {
	vs := &mockVerifySvc{}
	vs.On("SendVerificationCode", mock.Anything, "a@x.com").
		Return(fmt.Errorf("mail: %w", domain.ErrMailerNotConfigured))

	rr := do(newTestRouter(vs, nil), http.MethodPost, "/verify/generateEmailCode", `{"email":"a@x.com"}`)

	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
	assert.JSONEq(t, `{"status":false,"message":"Email 服務未啟用"}`, rr.Body.String())
}

func TestSendOrderEmail_PassesUserAndBody(t *testing.T) {
	vs := &mockVerifySvc{}
	req := domain.OrderEmailRequest{Email: "b@y.com", Name: "Bob"}
	vs.On("SendOrderEmail", mock.Anything, "u1", req).Return(nil)

	rr := do(newTestRouter(vs, nil), http.MethodPost, "/orders/sendOrderEmail", `{"email":"b@y.com","name":"Bob"}`)

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"status":true}`, rr.Body.String())
	vs.AssertExpectations(t)
}

func TestSendOrderEmail_NoClaims(t *testing.T) {
	vs := &mockVerifySvc{}
	rr := do(newTestRouter(vs, nil), http.MethodPost, "/anon/sendOrderEmail", `{"email":"b@y.com","name":"Bob"}`)

	assert.Equal(t, http.StatusUnauthorized, rr.Code)
	vs.AssertNotCalled(t, "SendOrderEmail", mock.Anything, mock.Anything, mock.Anything)
}

func TestSendOrderEmail_UserGone(t *testing.T) {
	vs := &mockVerifySvc{}
	vs.On("SendOrderEmail", mock.Anything, "u1", mock.Anything).
		Return(domain.NewError(domain.ErrNotFound, domain.MsgUserNotFound))

	rr := do(newTestRouter(vs, nil), http.MethodPost, "/orders/sendOrderEmail", `{"email":"a@x.com","name":"Amy"}`)

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":false,"message":"此使用者不存在"}`, rr.Body.String())
}

// --- orders ---

func TestOrders_List(t *testing.T) {
	os := &mockOrderSvc{}
	os.On("List", mock.Anything, "u1").Return([]domain.Order{{OrderID: "o1", OrderUserID: "u1"}}, nil)

	rr := do(newTestRouter(nil, os), http.MethodGet, "/orders", "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"_id":"o1"`)
	assert.Contains(t, rr.Body.String(), `"status":true`)
}

func TestOrders_GetNotFound(t *testing.T) {
	os := &mockOrderSvc{}
	os.On("Get", mock.Anything, "u1", "o9").Return(nil, domain.NewError(domain.ErrNotFound, domain.MsgOrderNotFound))

	rr := do(newTestRouter(nil, os), http.MethodGet, "/orders/o9", "")

	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.JSONEq(t, `{"status":false,"message":"此訂單不存在"}`, rr.Body.String())
}

func TestOrders_CreateBadDates(t *testing.T) {
	os := &mockOrderSvc{}
	os.On("Create", mock.Anything, "u1", mock.AnythingOfType("domain.CreateOrderRequest")).
		Return(nil, domain.NewError(domain.ErrBadRequest, domain.MsgCheckOutBeforeIn))

	rr := do(newTestRouter(nil, os), http.MethodPost, "/orders",
		`{"roomId":"r1","checkInDate":"2026-11-03","checkOutDate":"2026-11-01","peopleNum":2}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.JSONEq(t, `{"status":false,"message":"checkOutDate 需晚於 checkInDate"}`, rr.Body.String())
}

func TestOrders_CancelStoreFailureIs500(t *testing.T) {
	os := &mockOrderSvc{}
	os.On("Cancel", mock.Anything, "u1", "o1").Return(nil, errors.New("throttled"))

	rr := do(newTestRouter(nil, os), http.MethodDelete, "/orders/o1", "")

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.JSONEq(t, `{"status":false,"message":"系統錯誤，請稍後再試"}`, rr.Body.String())
	assert.NotContains(t, rr.Body.String(), "throttled")
}

// --- httpError ---

func TestHTTPError_Mapping(t *testing.T) {
	cases := []struct {
		err    error
		status int
		msg    string
	}{
		{fmt.Errorf("x: %w", domain.ErrBadRequest), 400, domain.MsgInvalidBody},
		{domain.NewError(domain.ErrBadRequest, domain.MsgInvalidEmail), 400, domain.MsgInvalidEmail},
		{fmt.Errorf("x: %w", domain.ErrUnauthorized), 401, domain.MsgLoginRequired},
		{domain.NewError(domain.ErrNotFound, domain.MsgRoomNotFound), 404, domain.MsgRoomNotFound},
		{fmt.Errorf("dial: %w", domain.ErrMailerUnavailable), 502, domain.MsgMailerUnavailable},
		{fmt.Errorf("cfg: %w", domain.ErrMailerNotConfigured), 503, domain.MsgMailerDisabled},
		{errors.New("boom"), 500, domain.MsgInternal},
	}
	for _, tc := range cases {
		rr := httptest.NewRecorder()
		httpError(rr, httptest.NewRequest(http.MethodGet, "/", nil), tc.err)
		assert.Equal(t, tc.status, rr.Code, tc.err.Error())
		assert.JSONEq(t, fmt.Sprintf(`{"status":false,"message":%q}`, tc.msg), rr.Body.String())
	}
}

func TestHealth(t *testing.T) {
	rr := httptest.NewRecorder()
	NewHealthHandler().Check(rr, httptest.NewRequest(http.MethodGet, "/health", nil))
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), `"status":true`)
}
