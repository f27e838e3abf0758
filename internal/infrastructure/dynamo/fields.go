package dynamo

// DynamoDB attribute names used in key, condition and update expressions.
const (
	fieldUserID            = "user_id"
	fieldEmail             = "email"
	fieldVerificationToken = "verification_token"
	fieldUpdatedAt         = "updated_at"
	fieldOrderID           = "order_id"
	fieldOrderUserID       = "order_user_id"
	fieldStatus            = "status"
	fieldRoomID            = "room_id"
)

const (
	indexEmail       = "email-index"
	indexOrderUserID = "order_user_id-index"
)
