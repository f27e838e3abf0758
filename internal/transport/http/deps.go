package http

import (
	"context"

	"github.com/hotel-booking-api/internal/domain"
)

// UserRepository is the minimal interface the router requires from a user store.
type UserRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	// FindAndSetVerificationToken writes token on the matching account and
	// returns the updated document, or nil when nothing matched.
	FindAndSetVerificationToken(ctx context.Context, filter domain.UserFilter, token string) (*domain.User, error)
}

// OrderRepository is the minimal interface the router requires from an order store.
type OrderRepository interface {
	Put(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error)
}

// RoomRepository is the minimal interface the router requires from a room store.
type RoomRepository interface {
	Get(ctx context.Context, roomID string) (*domain.RoomType, error)
}
