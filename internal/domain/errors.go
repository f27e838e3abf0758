package domain

import "errors"

// Sentinel errors for domain-level error discrimination.
// Services wrap these so handlers can map to HTTP status codes without leaking infrastructure details.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")

	// ErrMailerNotConfigured means the mail account credentials are absent.
	ErrMailerNotConfigured = errors.New("mailer not configured")
	// ErrMailerUnavailable means the relay refused the connection or the login.
	ErrMailerUnavailable = errors.New("mailer unavailable")
)

// Error pairs a sentinel kind with the message shown to API clients.
type Error struct {
	Kind    error
	Message string
}

// NewError returns an error that matches kind under errors.Is and carries msg
// as its client-facing message.
func NewError(kind error, msg string) error {
	return &Error{Kind: kind, Message: msg}
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Kind }

// Client-facing messages.
const (
	MsgInvalidEmail      = "Email 格式不正確"
	MsgInvalidBody       = "欄位未填寫正確"
	MsgUserNotFound      = "此使用者不存在"
	MsgOrderNotFound     = "此訂單不存在"
	MsgRoomNotFound      = "此房型不存在"
	MsgInvalidCheckIn    = "checkInDate 格式錯誤"
	MsgInvalidCheckOut   = "checkOutDate 格式錯誤"
	MsgCheckOutBeforeIn  = "checkOutDate 需晚於 checkInDate"
	MsgLoginRequired     = "請重新登入"
	MsgMailerDisabled    = "Email 服務未啟用"
	MsgMailerUnavailable = "Email 服務暫時無法使用"
	MsgInternal          = "系統錯誤，請稍後再試"
)
