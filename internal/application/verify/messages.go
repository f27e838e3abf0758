package verify

import (
	"fmt"
	"html"

	"github.com/hotel-booking-api/internal/infrastructure/smtp"
)

const (
	subjectVerificationCode = "Node 驗證碼"
	subjectOrderConfirmed   = "🌿 享樂飯店 - 訂購成功信"
)

func verificationCodeMessage(to, code string) smtp.Message {
	return smtp.Message{
		To:      to,
		Subject: subjectVerificationCode,
		HTML:    fmt.Sprintf("<p>使用 %s 做為 Node 帳戶密碼安全性驗證碼</p>", code),
	}
}

// memberOrderMessage greets the account holder booking for themselves.
func memberOrderMessage(to, memberName string) smtp.Message {
	return smtp.Message{
		To:      to,
		Subject: subjectOrderConfirmed,
		HTML: fmt.Sprintf("<p>Hi 親愛的會員 %s：</p>\n<p>您已訂購成功!</p>",
			html.EscapeString(memberName)),
	}
}

// guestOrderMessage greets someone the account holder booked for, with the
// account holder on cc.
func guestOrderMessage(to, cc, guestName string) smtp.Message {
	return smtp.Message{
		To:      to,
		Cc:      cc,
		Subject: subjectOrderConfirmed,
		HTML: fmt.Sprintf("<p>Hi 親愛的朋友 %s，您已訂購成功!</p>\n<p>歡迎加入會員!</p>",
			html.EscapeString(guestName)),
	}
}
