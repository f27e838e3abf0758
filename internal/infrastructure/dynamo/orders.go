package dynamo

import (
	"context"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hotel-booking-api/internal/domain"
)

// OrderRepo provides typed DynamoDB operations for the orders table.
// PK: order_id. GSI order_user_id-index: order_user_id + order_id.
type OrderRepo struct {
	client    API
	tableName string
	now       func() time.Time
}

func NewOrderRepo(client API, tableName string) *OrderRepo {
	return &OrderRepo{client: client, tableName: tableName, now: time.Now}
}

func (r *OrderRepo) Put(ctx context.Context, o *domain.Order) error {
	item, err := attributevalue.MarshalMap(o)
	if err != nil {
		return fmt.Errorf("marshal order: %w", err)
	}
	_, err = r.client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:                aws.String(r.tableName),
		Item:                     item,
		ConditionExpression:      aws.String("attribute_not_exists(#pk)"),
		ExpressionAttributeNames: map[string]string{"#pk": fieldOrderID},
	})
	if err != nil {
		return fmt.Errorf("put order: %w", err)
	}
	return nil
}

func (r *OrderRepo) Get(ctx context.Context, orderID string) (*domain.Order, error) {
	out, err := r.client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(r.tableName),
		Key:       strKey(fieldOrderID, orderID),
	})
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	if out.Item == nil {
		return nil, fmt.Errorf("order not found: %w", domain.ErrNotFound)
	}
	var o domain.Order
	if err := attributevalue.UnmarshalMap(out.Item, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}

// ListActiveByUser returns the user's non-cancelled orders, newest first.
func (r *OrderRepo) ListActiveByUser(ctx context.Context, userID string) ([]domain.Order, error) {
	input := &dynamodb.QueryInput{
		TableName:              aws.String(r.tableName),
		IndexName:              aws.String(indexOrderUserID),
		KeyConditionExpression: aws.String("#u = :u"),
		FilterExpression:       aws.String("#s <> :cancelled"),
		ExpressionAttributeNames: map[string]string{
			"#u": fieldOrderUserID,
			"#s": fieldStatus,
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":u":         &types.AttributeValueMemberS{Value: userID},
			":cancelled": &types.AttributeValueMemberN{Value: fmt.Sprint(domain.OrderStatusCancelled)},
		},
		ScanIndexForward: aws.Bool(false),
	}
	orders := []domain.Order{}
	for {
		out, err := r.client.Query(ctx, input)
		if err != nil {
			return nil, fmt.Errorf("query orders: %w", err)
		}
		var page []domain.Order
		if err := attributevalue.UnmarshalListOfMaps(out.Items, &page); err != nil {
			return nil, fmt.Errorf("unmarshal orders: %w", err)
		}
		orders = append(orders, page...)
		if len(out.LastEvaluatedKey) == 0 {
			return orders, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// Cancel flips an active order owned by userID to cancelled and returns it.
// Orders that are missing, foreign or already cancelled yield domain.ErrNotFound.
func (r *OrderRepo) Cancel(ctx context.Context, userID, orderID string) (*domain.Order, error) {
	ue, err := buildUpdateExpr(map[string]interface{}{
		fieldStatus:    domain.OrderStatusCancelled,
		fieldUpdatedAt: r.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	ue.Names["#owner"] = fieldOrderUserID
	ue.Names["#cur"] = fieldStatus
	ue.Values[":owner"] = &types.AttributeValueMemberS{Value: userID}
	ue.Values[":active"] = &types.AttributeValueMemberN{Value: fmt.Sprint(domain.OrderStatusActive)}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey(fieldOrderID, orderID),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String("#owner = :owner AND #cur = :active"),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, fmt.Errorf("order not cancellable: %w", domain.ErrNotFound)
		}
		return nil, fmt.Errorf("cancel order: %w", err)
	}
	var o domain.Order
	if err := attributevalue.UnmarshalMap(out.Attributes, &o); err != nil {
		return nil, fmt.Errorf("unmarshal order: %w", err)
	}
	return &o, nil
}
