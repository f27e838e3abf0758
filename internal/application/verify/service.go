package verify

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/hotel-booking-api/internal/domain"
	"github.com/hotel-booking-api/internal/infrastructure/smtp"
	"github.com/hotel-booking-api/internal/pkg/token"
	"github.com/hotel-booking-api/internal/pkg/validate"
)

type Service interface {
	// CheckEmailExists reports whether an account uses email.
	CheckEmailExists(ctx context.Context, email string) (bool, error)
	// SendVerificationCode stores a fresh token on the account registered
	// under email and mails the matching code. An unknown address is not an error.
	SendVerificationCode(ctx context.Context, email string) error
	// SendOrderEmail mails the order confirmation for the account userID.
	SendOrderEmail(ctx context.Context, userID string, req domain.OrderEmailRequest) error
}

type userStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	FindAndSetVerificationToken(ctx context.Context, filter domain.UserFilter, token string) (*domain.User, error)
}

type service struct {
	users    userStore
	mailer   smtp.Mailer
	newToken func() (token.EmailToken, error)
}

type ServiceDeps struct {
	UserRepo userStore
	Mailer   smtp.Mailer
	// NewToken defaults to token.NewEmailToken.
	NewToken func() (token.EmailToken, error)
}

func NewService(deps ServiceDeps) Service {
	s := &service{
		users:    deps.UserRepo,
		mailer:   deps.Mailer,
		newToken: deps.NewToken,
	}
	if s.newToken == nil {
		s.newToken = token.NewEmailToken
	}
	return s
}

func (s *service) CheckEmailExists(ctx context.Context, email string) (bool, error) {
	if err := validate.Email(email); err != nil {
		return false, err
	}
	u, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		return false, err
	}
	return u != nil, nil
}

func (s *service) SendVerificationCode(ctx context.Context, email string) error {
	if err := validate.Email(email); err != nil {
		return err
	}
	et, err := s.newToken()
	if err != nil {
		return err
	}
	u, err := s.users.FindAndSetVerificationToken(ctx, domain.UserFilter{Email: email}, et.Token)
	if err != nil {
		return err
	}
	if u == nil {
		return nil
	}
	if err := s.mailer.Send(ctx, verificationCodeMessage(email, et.Code)); err != nil {
		slog.Warn("verification token stored but code not delivered", "user_id", u.UserID, "err", err)
		return err
	}
	return nil
}

func (s *service) SendOrderEmail(ctx context.Context, userID string, req domain.OrderEmailRequest) error {
	if userID == "" {
		return fmt.Errorf("order email without user: %w", domain.ErrUnauthorized)
	}
	if err := validate.Struct(req); err != nil {
		return err
	}
	et, err := s.newToken()
	if err != nil {
		return err
	}
	u, err := s.users.FindAndSetVerificationToken(ctx, domain.UserFilter{ID: userID}, et.Token)
	if err != nil {
		return err
	}
	if u == nil {
		return domain.NewError(domain.ErrNotFound, domain.MsgUserNotFound)
	}

	var msg smtp.Message
	if u.Email == req.Email {
		msg = memberOrderMessage(u.Email, u.Name)
	} else {
		msg = guestOrderMessage(req.Email, u.Email, req.Name)
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		slog.Warn("order email not delivered", "user_id", u.UserID, "err", err)
		return err
	}
	return nil
}
