package validate

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/hotel-booking-api/internal/domain"
)

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during init()
// before the first call to Struct.
var v = validator.New()

// Struct validates the given struct using its validate tags.
// Returns a domain.ErrBadRequest error whose message is client-safe, or nil.
// Field-level detail is only logged.
// A failing email field yields domain.MsgInvalidEmail so every endpoint reports
// malformed addresses the same way.
func Struct(s interface{}) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	var msgs []string
	for _, fe := range ve {
		if fe.Tag() == "email" {
			return domain.NewError(domain.ErrBadRequest, domain.MsgInvalidEmail)
		}
		msgs = append(msgs, fmt.Sprintf("field '%s' failed '%s'", fe.Namespace(), fe.Tag()))
	}
	slog.Debug("request validation failed", "fields", strings.Join(msgs, "; "))
	return domain.NewError(domain.ErrBadRequest, domain.MsgInvalidBody)
}

// Email reports whether s is a syntactically well-formed address.
func Email(s string) error {
	if err := v.Var(s, "required,email"); err != nil {
		return domain.NewError(domain.ErrBadRequest, domain.MsgInvalidEmail)
	}
	return nil
}
