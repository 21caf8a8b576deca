package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/storage"
)

func (s *Store) GetPartner(ctx context.Context, referralCode string) (*models.Partner, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.PartnersTableName),
		Key:       partnerKey(referralCode),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get partner from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return nil, fmt.Errorf("partner %s: %w", referralCode, storage.ErrNotFound)
	}

	var partner models.Partner
	if err := attributevalue.UnmarshalMap(result.Item, &partner); err != nil {
		return nil, fmt.Errorf("failed to unmarshal partner: %w", err)
	}

	return &partner, nil
}

func (s *Store) CreatePartner(ctx context.Context, partner *models.Partner) error {
	if err := partner.Validate(); err != nil {
		return err
	}

	item, err := attributevalue.MarshalMap(partner)
	if err != nil {
		return fmt.Errorf("failed to marshal partner: %w", err)
	}

	_, err = s.Client.PutItem(ctx, &dynamodb.PutItemInput{
		TableName:           aws.String(s.PartnersTableName),
		Item:                item,
		ConditionExpression: aws.String("attribute_not_exists(referral_code)"),
	})
	if err != nil {
		var condCheckFailed *types.ConditionalCheckFailedException
		if errors.As(err, &condCheckFailed) {
			return storage.ErrAlreadyExists
		}
		return fmt.Errorf("failed to create partner in DynamoDB: %w", err)
	}

	return nil
}

func (s *Store) ListPartners(ctx context.Context) ([]models.Partner, error) {
	items, err := s.scanAll(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.PartnersTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan partners: %w", err)
	}

	return unmarshalPartners(items)
}

func (s *Store) ListPartnersByStatus(ctx context.Context, status models.PartnerStatus) ([]models.Partner, error) {
	items, err := s.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.PartnersTableName),
		IndexName:              aws.String(partnerStatusIndex),
		KeyConditionExpression: aws.String("#status = :status"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(status)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query partners by status: %w", err)
	}

	return unmarshalPartners(items)
}

// ApprovePartner flips a pending applicant to approved.
func (s *Store) ApprovePartner(ctx context.Context, referralCode string, at time.Time) (*models.Partner, error) {
	ts, err := attributevalue.Marshal(at)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.PartnersTableName),
		Key:                 partnerKey(referralCode),
		UpdateExpression:    aws.String("SET #status = :approved, updated_at = :at"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":approved": &types.AttributeValueMemberS{Value: string(models.PartnerApproved)},
			":pending":  &types.AttributeValueMemberS{Value: string(models.PartnerPending)},
			":at":       ts,
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		return nil, partnerTransitionError(referralCode, err)
	}

	var partner models.Partner
	if err := attributevalue.UnmarshalMap(result.Attributes, &partner); err != nil {
		return nil, fmt.Errorf("failed to unmarshal partner: %w", err)
	}

	return &partner, nil
}

// DeletePendingPartner removes an applicant that has not been processed yet.
func (s *Store) DeletePendingPartner(ctx context.Context, referralCode string) error {
	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:           aws.String(s.PartnersTableName),
		Key:                 partnerKey(referralCode),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":pending": &types.AttributeValueMemberS{Value: string(models.PartnerPending)},
		},
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		return partnerTransitionError(referralCode, err)
	}
	return nil
}

func partnerTransitionError(referralCode string, err error) error {
	var condCheckFailed *types.ConditionalCheckFailedException
	if errors.As(err, &condCheckFailed) {
		if len(condCheckFailed.Item) == 0 {
			return fmt.Errorf("partner %s: %w", referralCode, storage.ErrNotFound)
		}
		return storage.ErrPartnerNotPending
	}
	return fmt.Errorf("failed to update partner %s: %w", referralCode, err)
}

func partnerKey(referralCode string) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"referral_code": &types.AttributeValueMemberS{Value: referralCode},
	}
}

func unmarshalPartners(items []map[string]types.AttributeValue) ([]models.Partner, error) {
	var partners []models.Partner
	if err := attributevalue.UnmarshalListOfMaps(items, &partners); err != nil {
		return nil, fmt.Errorf("failed to unmarshal partners: %w", err)
	}

	sort.Slice(partners, func(i, j int) bool {
		return partners[i].CreatedAt.After(partners[j].CreatedAt)
	})
	return partners, nil
}
