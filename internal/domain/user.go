package domain

import "time"

type User struct {
	UserID            string    `json:"_id" dynamodbav:"user_id"`
	Email             string    `json:"email" dynamodbav:"email"`
	Name              string    `json:"name" dynamodbav:"name"`
	VerificationToken *string   `json:"-" dynamodbav:"verification_token"`
	CreatedAt         time.Time `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt         time.Time `json:"updatedAt" dynamodbav:"updated_at"`
}

// UserFilter selects a single user either by e-mail or by id. Exactly one
// field must be set.
type UserFilter struct {
	Email string
	ID    string
}

// EmailRequest is the body of the verification endpoints.
type EmailRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// OrderEmailRequest is the body of POST /orders/sendOrderEmail.
type OrderEmailRequest struct {
	Email string `json:"email" validate:"required,email"`
	Name  string `json:"name" validate:"required"`
}
