package domain

// RoomType is a bookable room category. Status 1 = on sale, -1 = withdrawn.
type RoomType struct {
	RoomID      string `json:"_id" dynamodbav:"room_id"`
	Name        string `json:"name" dynamodbav:"name"`
	Description string `json:"description" dynamodbav:"description"`
	Price       int    `json:"price" dynamodbav:"price"`
	MaxPeople   int    `json:"maxPeople" dynamodbav:"max_people"`
	Status      int    `json:"status" dynamodbav:"status"`
}

const RoomStatusActive = 1
