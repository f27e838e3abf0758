package dynamo

import (
	"context"
	"fmt"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/hotel-booking-api/internal/domain"
)

// RoomRepo reads room types. Rooms are managed elsewhere; this service only
// checks that a booked room exists.
type RoomRepo struct {
	client    API
	tableName string
}

func NewRoomRepo(client API, tableName string) *RoomRepo {
	return &RoomRepo{client: client, tableName: tableName}
}

func (r *RoomRepo) Get(ctx context.Context, roomID string) (*domain.RoomType, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey(fieldRoomID, roomID),
	})
	if err != nil {
		return nil, fmt.Errorf("get room: %w", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("room not found: %w", domain.ErrNotFound)
	}
	var rt domain.RoomType
	if err := attributevalue.UnmarshalMap(out.Item, &rt); err != nil {
		return nil, fmt.Errorf("unmarshal room: %w", err)
	}
	return &rt, nil
}
