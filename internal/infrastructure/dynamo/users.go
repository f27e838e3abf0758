package dynamo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/hotel-booking-api/internal/domain"
)

// UserRepo provides typed DynamoDB operations for the users table.
type UserRepo struct {
	client    API
	tableName string
	now       func() time.Time
}

func NewUserRepo(client API, tableName string) *UserRepo {
	return &UserRepo{client: client, tableName: tableName, now: time.Now}
}

// GetByEmail returns nil, nil when no user has the address.
func (r *UserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	out, err := r.client.Query(ctx, &dynamodb.QueryInput{
		TableName:                 aws.String(r.tableName),
		IndexName:                 aws.String(indexEmail),
		KeyConditionExpression:    aws.String("#a = :v"),
		ExpressionAttributeNames:  map[string]string{"#a": fieldEmail},
		ExpressionAttributeValues: map[string]types.AttributeValue{":v": &types.AttributeValueMemberS{Value: email}},
		Limit:                     aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("query user by email: %w", err)
	}
	if len(out.Items) == 0 {
		return nil, nil
	}
	var u domain.User
	if err := attributevalue.UnmarshalMap(out.Items[0], &u); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &u, nil
}

// FindAndSetVerificationToken sets verification_token on the user selected by
// filter and returns the document as it is after the write. It returns nil, nil
// when no user matches. Concurrent calls on the same user are last-writer-wins.
func (r *UserRepo) FindAndSetVerificationToken(ctx context.Context, filter domain.UserFilter, token string) (*domain.User, error) {
	switch {
	case filter.ID != "" && filter.Email != "":
		return nil, errors.New("user filter: set either id or email, not both")
	case filter.ID != "":
		return r.setToken(ctx, filter.ID, "", token)
	case filter.Email != "":
		u, err := r.GetByEmail(ctx, filter.Email)
		if err != nil || u == nil {
			return nil, err
		}
		// The index is eventually consistent; re-check the address on the
		// primary record so a user whose email just changed is not updated.
		return r.setToken(ctx, u.UserID, filter.Email, token)
	default:
		return nil, errors.New("user filter: id or email required")
	}
}

func (r *UserRepo) setToken(ctx context.Context, userID, email, token string) (*domain.User, error) {
	ue, err := buildUpdateExpr(map[string]interface{}{
		fieldVerificationToken: token,
		fieldUpdatedAt:         r.now().UTC(),
	})
	if err != nil {
		return nil, err
	}
	cond := "attribute_exists(#pk)"
	ue.Names["#pk"] = fieldUserID
	if email != "" {
		cond += " AND #em = :em"
		ue.Names["#em"] = fieldEmail
		ue.Values[":em"] = &types.AttributeValueMemberS{Value: email}
	}

	out, err := r.client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:                 aws.String(r.tableName),
		Key:                       strKey(fieldUserID, userID),
		UpdateExpression:          aws.String(ue.Expr),
		ConditionExpression:       aws.String(cond),
		ExpressionAttributeNames:  ue.Names,
		ExpressionAttributeValues: ue.Values,
		ReturnValues:              types.ReturnValueAllNew,
	})
	if err != nil {
		if isConditionFailed(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("set verification token: %w", err)
	}
	var u domain.User
	if err := attributevalue.UnmarshalMap(out.Attributes, &u); err != nil {
		return nil, fmt.Errorf("unmarshal user: %w", err)
	}
	return &u, nil
}
