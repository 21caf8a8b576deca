package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/storage"
)

// CreatePurchase stores a purchase record keyed by its order id.
func (s *Store) CreatePurchase(ctx context.Context, purchase *models.PurchaseRecord) error {
	if err := purchase.Validate(); err != nil {
		return err
	}

	slog.Log(ctx, slog.LevelDebug, "creating purchase record", "order_id", purchase.OrderID, "referral_code", purchase.ReferralCode)

	item, err := attributevalue.MarshalMap(purchase)
	if err != nil {
		return fmt.Errorf("failed to marshal purchase: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.PurchasesTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(order_id)"), // One record per order.
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create purchase in DynamoDB: %w", err)
	}

	return nil
}

// ListPurchasesByReferralCode retrieves all purchases attributed to a referral code, newest first.
func (s *Store) ListPurchasesByReferralCode(ctx context.Context, referralCode string) ([]models.PurchaseRecord, error) {
	items, err := s.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.PurchasesTableName),
		IndexName:              aws.String(referralCodeIndex),
		KeyConditionExpression: aws.String("referral_code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: referralCode},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query purchases by referral code: %w", err)
	}

	var purchases []models.PurchaseRecord
	if err := attributevalue.UnmarshalListOfMaps(items, &purchases); err != nil {
		return nil, fmt.Errorf("failed to unmarshal purchases: %w", err)
	}

	sort.SliceStable(purchases, func(i, j int) bool { return purchases[i].OccurredAt.After(purchases[j].OccurredAt) })
	return purchases, nil
}
