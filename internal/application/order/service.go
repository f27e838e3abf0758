package order

import (
	"context"
	"errors"
	"time"

	"github.com/hotel-booking-api/internal/domain"
	"github.com/hotel-booking-api/internal/pkg/id"
	"github.com/hotel-booking-api/internal/pkg/validate"
)

type Service interface {
	List(ctx context.Context, userID string) ([]domain.Order, error)
	Get(ctx context.Context, userID, orderID string) (*domain.Order, error)
	Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error)
	Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error)
}

type orderStore interface {
	Put(ctx context.Context, o *domain.Order) error
	Get(ctx context.Context, orderID string) (*domain.Order, error)
	ListActiveByUser(ctx context.Context, userID string) ([]domain.Order, error)
	Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error)
}

type roomStore interface {
	Get(ctx context.Context, roomID string) (*domain.RoomType, error)
}

type service struct {
	orders orderStore
	rooms  roomStore
	now    func() time.Time
}

type ServiceDeps struct {
	OrderRepo orderStore
	RoomRepo  roomStore
}

func NewService(deps ServiceDeps) Service {
	return &service{orders: deps.OrderRepo, rooms: deps.RoomRepo, now: time.Now}
}

func (s *service) List(ctx context.Context, userID string) ([]domain.Order, error) {
	return s.orders.ListActiveByUser(ctx, userID)
}

// Get hides orders that belong to someone else or were cancelled behind the
// same not-found answer as missing ones.
func (s *service) Get(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	o, err := s.orders.Get(ctx, orderID)
	if err != nil {
		return nil, orderNotFound(err)
	}
	if o.OrderUserID != userID || o.Status == domain.OrderStatusCancelled {
		return nil, domain.NewError(domain.ErrNotFound, domain.MsgOrderNotFound)
	}
	return o, nil
}

func (s *service) Create(ctx context.Context, userID string, req domain.CreateOrderRequest) (*domain.Order, error) {
	if err := validate.Struct(req); err != nil {
		return nil, err
	}
	checkIn, err := time.Parse(domain.DateLayout, req.CheckInDate)
	if err != nil {
		return nil, domain.NewError(domain.ErrBadRequest, domain.MsgInvalidCheckIn)
	}
	checkOut, err := time.Parse(domain.DateLayout, req.CheckOutDate)
	if err != nil {
		return nil, domain.NewError(domain.ErrBadRequest, domain.MsgInvalidCheckOut)
	}
	if !checkOut.After(checkIn) {
		return nil, domain.NewError(domain.ErrBadRequest, domain.MsgCheckOutBeforeIn)
	}

	room, err := s.rooms.Get(ctx, req.RoomID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.NewError(domain.ErrNotFound, domain.MsgRoomNotFound)
		}
		return nil, err
	}
	if room.Status != domain.RoomStatusActive {
		return nil, domain.NewError(domain.ErrNotFound, domain.MsgRoomNotFound)
	}

	now := s.now().UTC()
	o := &domain.Order{
		OrderID:      id.NewAt(now),
		RoomID:       room.RoomID,
		CheckInDate:  req.CheckInDate,
		CheckOutDate: req.CheckOutDate,
		PeopleNum:    req.PeopleNum,
		UserInfo:     req.UserInfo,
		OrderUserID:  userID,
		Status:       domain.OrderStatusActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.orders.Put(ctx, o); err != nil {
		return nil, err
	}
	return o, nil
}

func (s *service) Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	o, err := s.orders.Cancel(ctx, userID, orderID)
	if err != nil {
		return nil, orderNotFound(err)
	}
	return o, nil
}

func orderNotFound(err error) error {
	if errors.Is(err, domain.ErrNotFound) {
		return domain.NewError(domain.ErrNotFound, domain.MsgOrderNotFound)
	}
	return err
}
