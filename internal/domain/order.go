package domain

import "time"

const (
	OrderStatusActive    = 0
	OrderStatusCancelled = -1
)

// DateLayout is the wire format of check-in/check-out dates.
const DateLayout = "2006-01-02"

type Address struct {
	Zipcode int    `json:"zipcode" dynamodbav:"zipcode" validate:"required"`
	Detail  string `json:"detail" dynamodbav:"detail" validate:"required"`
}

type OrderUserInfo struct {
	Name    string  `json:"name" dynamodbav:"name" validate:"required"`
	Phone   string  `json:"phone" dynamodbav:"phone" validate:"required"`
	Email   string  `json:"email" dynamodbav:"email" validate:"required,email"`
	Address Address `json:"address" dynamodbav:"address" validate:"required"`
}

type Order struct {
	OrderID      string        `json:"_id" dynamodbav:"order_id"`
	RoomID       string        `json:"roomId" dynamodbav:"room_id"`
	CheckInDate  string        `json:"checkInDate" dynamodbav:"check_in_date"`
	CheckOutDate string        `json:"checkOutDate" dynamodbav:"check_out_date"`
	PeopleNum    int           `json:"peopleNum" dynamodbav:"people_num"`
	UserInfo     OrderUserInfo `json:"userInfo" dynamodbav:"user_info"`
	OrderUserID  string        `json:"orderUserId" dynamodbav:"order_user_id"`
	Status       int           `json:"status" dynamodbav:"status"`
	CreatedAt    time.Time     `json:"createdAt" dynamodbav:"created_at"`
	UpdatedAt    time.Time     `json:"updatedAt" dynamodbav:"updated_at"`
}

type CreateOrderRequest struct {
	RoomID       string        `json:"roomId" validate:"required"`
	CheckInDate  string        `json:"checkInDate" validate:"required"`
	CheckOutDate string        `json:"checkOutDate" validate:"required"`
	PeopleNum    int           `json:"peopleNum" validate:"required,min=1"`
	UserInfo     OrderUserInfo `json:"userInfo" validate:"required"`
}
