package token

import (
	"crypto/rand"
	"fmt"
	"math/big"

	"golang.org/x/crypto/bcrypt"
)

// EmailToken is a verification code meant for the recipient's eyes and the
// opaque token persisted on the user record in its place.
type EmailToken struct {
	Code  string
	Token string
}

// NewEmailToken returns a fresh 6-digit code and a salted bcrypt hash of it.
// Two calls never share a token, even when the codes collide.
func NewEmailToken() (EmailToken, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return EmailToken{}, fmt.Errorf("generate email code: %w", err)
	}
	code := fmt.Sprintf("%06d", n.Int64())
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return EmailToken{}, fmt.Errorf("derive email token: %w", err)
	}
	return EmailToken{Code: code, Token: string(hash)}, nil
}

// MatchEmailCode reports whether code is the one token was derived from.
func MatchEmailCode(token, code string) bool {
	return bcrypt.CompareHashAndPassword([]byte(token), []byte(code)) == nil
}
