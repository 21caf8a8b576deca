package dynamodb

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/storage"
)

// GetWithdrawal locates a withdrawal request through the id index and then reads the base item
// with strong consistency, so a found request always carries its latest status. The index itself
// is eventually consistent: a request created moments ago can still report ErrNotFound.
func (s *Store) GetWithdrawal(ctx context.Context, id string) (*models.WithdrawalRequest, error) {
	result, err := s.Client.Query(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.WithdrawalsTableName),
		IndexName:              aws.String(withdrawalIDIndex),
		KeyConditionExpression: aws.String("id = :id"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":id": &types.AttributeValueMemberS{Value: id},
		},
		Limit: aws.Int32(1),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal from DynamoDB: %w", err)
	}

	if len(result.Items) == 0 {
		return nil, fmt.Errorf("withdrawal %s: %w", id, storage.ErrNotFound)
	}

	var indexed models.WithdrawalRequest
	if err := attributevalue.UnmarshalMap(result.Items[0], &indexed); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawal: %w", err)
	}

	item, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName:      aws.String(s.WithdrawalsTableName),
		Key:            withdrawalKey(&indexed),
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get withdrawal from DynamoDB: %w", err)
	}

	// Deleted after the index was read.
	if item.Item == nil {
		return nil, fmt.Errorf("withdrawal %s: %w", id, storage.ErrNotFound)
	}

	var w models.WithdrawalRequest
	if err := attributevalue.UnmarshalMap(item.Item, &w); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawal: %w", err)
	}

	return &w, nil
}

// ListWithdrawalsByReferralCode reads the code's partition with strong consistency so that a
// withdrawal committed a moment ago is always counted against the balance.
func (s *Store) ListWithdrawalsByReferralCode(ctx context.Context, referralCode string) ([]models.WithdrawalRequest, error) {
	items, err := s.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.WithdrawalsTableName),
		KeyConditionExpression: aws.String("referral_code = :code"),
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":code": &types.AttributeValueMemberS{Value: referralCode},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query withdrawals by referral code: %w", err)
	}

	return unmarshalWithdrawals(items)
}

// ListWithdrawals retrieves every withdrawal request.
func (s *Store) ListWithdrawals(ctx context.Context) ([]models.WithdrawalRequest, error) {
	items, err := s.scanAll(ctx, &dynamodb.ScanInput{
		TableName: aws.String(s.WithdrawalsTableName),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan withdrawals: %w", err)
	}

	return unmarshalWithdrawals(items)
}

// ListPendingWithdrawalsOlderThan queries the status index for pending requests older than cutoff.
// requested_at is stored in RFC3339Nano, which trims trailing zeros, so strings within the same
// second do not sort by time. The key condition uses the next whole second as its bound and the
// result is filtered exactly in Go.
func (s *Store) ListPendingWithdrawalsOlderThan(ctx context.Context, cutoff time.Time) ([]models.WithdrawalRequest, error) {
	bound := cutoff.UTC().Truncate(time.Second).Add(time.Second)

	items, err := s.queryAll(ctx, &dynamodb.QueryInput{
		TableName:              aws.String(s.WithdrawalsTableName),
		IndexName:              aws.String(statusRequestedGSI),
		KeyConditionExpression: aws.String("#status = :status AND requested_at < :cutoff"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":status": &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":cutoff": &types.AttributeValueMemberS{Value: bound.Format(time.RFC3339Nano)},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to query stale withdrawals: %w", err)
	}

	all, err := unmarshalWithdrawals(items)
	if err != nil {
		return nil, err
	}

	stale := all[:0]
	for _, w := range all {
		if w.RequestedAt.Before(cutoff) {
			stale = append(stale, w)
		}
	}
	return stale, nil
}

// GetAccount reads the per-code concurrency token. A missing item is version 0.
func (s *Store) GetAccount(ctx context.Context, referralCode string) (*models.Account, error) {
	result, err := s.Client.GetItem(ctx, &dynamodb.GetItemInput{
		TableName: aws.String(s.AccountsTableName),
		Key: map[string]types.AttributeValue{
			"referral_code": &types.AttributeValueMemberS{Value: referralCode},
		},
		ConsistentRead: aws.Bool(true),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to get account from DynamoDB: %w", err)
	}

	if result.Item == nil {
		return &models.Account{ReferralCode: referralCode}, nil
	}

	var account models.Account
	if err := attributevalue.UnmarshalMap(result.Item, &account); err != nil {
		return nil, fmt.Errorf("failed to unmarshal account: %w", err)
	}

	return &account, nil
}

// CreateWithdrawal bumps the account version and puts the request in one transaction.
func (s *Store) CreateWithdrawal(ctx context.Context, w *models.WithdrawalRequest, expectedVersion int64) error {
	if err := w.Validate(); err != nil {
		return err
	}

	slog.Log(ctx, slog.LevelDebug, "creating withdrawal", "id", w.Id, "referral_code", w.ReferralCode, "expected_version", expectedVersion)

	item, err := attributevalue.MarshalMap(w)
	if err != nil {
		return fmt.Errorf("failed to marshal withdrawal: %w", err)
	}

	now, err := attributevalue.Marshal(w.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	transactItems := []types.TransactWriteItem{
		{
			// Advance the account version. Fails if another withdrawal committed since our read.
			Update: &types.Update{
				TableName: aws.String(s.AccountsTableName),
				Key: map[string]types.AttributeValue{
					"referral_code": &types.AttributeValueMemberS{Value: w.ReferralCode},
				},
				UpdateExpression:    aws.String("SET version = :next, updated_at = :now"),
				ConditionExpression: aws.String("attribute_not_exists(referral_code) OR version = :version"),
				ExpressionAttributeValues: map[string]types.AttributeValue{
					":version": &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion)},
					":next":    &types.AttributeValueMemberN{Value: fmt.Sprintf("%d", expectedVersion+1)},
					":now":     now,
				},
			},
		},
		{
			Put: &types.Put{
				TableName:           aws.String(s.WithdrawalsTableName),
				Item:                item,
				ConditionExpression: aws.String("attribute_not_exists(id)"),
			},
		},
	}

	_, err = s.Client.TransactWriteItems(ctx, &dynamodb.TransactWriteItemsInput{
		TransactItems: transactItems,
	})
	if err != nil {
		var tce *types.TransactionCanceledException
		if errors.As(err, &tce) {
			for i, reason := range tce.CancellationReasons {
				if aws.ToString(reason.Code) != conditionalCheckFailed {
					continue
				}
				if i == 0 {
					return storage.ErrVersionConflict
				}
				return storage.ErrAlreadyExists
			}
		}
		return fmt.Errorf("failed to execute withdrawal transaction: %w", err)
	}

	return nil
}

// MarkWithdrawalPaid conditionally moves a pending request to paid.
func (s *Store) MarkWithdrawalPaid(ctx context.Context, w *models.WithdrawalRequest, paidAt time.Time) (*models.WithdrawalRequest, error) {
	at, err := attributevalue.Marshal(paidAt)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal timestamp: %w", err)
	}

	result, err := s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
		TableName:           aws.String(s.WithdrawalsTableName),
		Key:                 withdrawalKey(w),
		UpdateExpression:    aws.String("SET #status = :paid, paid_at = :at, updated_at = :at"),
		ConditionExpression: aws.String("#status = :pending"),
		ExpressionAttributeNames: map[string]string{
			"#status": "status",
		},
		ExpressionAttributeValues: map[string]types.AttributeValue{
			":paid":    &types.AttributeValueMemberS{Value: string(models.PAID)},
			":pending": &types.AttributeValueMemberS{Value: string(models.PENDING)},
			":at":      at,
		},
		ReturnValues:                        types.ReturnValueAllNew,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		return nil, s.transitionError(w.Id, err)
	}

	var updated models.WithdrawalRequest
	if err := attributevalue.UnmarshalMap(result.Attributes, &updated); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawal: %w", err)
	}

	return &updated, nil
}

// RejectWithdrawal deletes or archives a pending request according to the store policy.
func (s *Store) RejectWithdrawal(ctx context.Context, w *models.WithdrawalRequest, rejectedAt time.Time) error {
	pending := map[string]types.AttributeValue{
		":pending": &types.AttributeValueMemberS{Value: string(models.PENDING)},
	}
	names := map[string]string{"#status": "status"}

	if s.Policy == storage.RejectArchive {
		at, err := attributevalue.Marshal(rejectedAt)
		if err != nil {
			return fmt.Errorf("failed to marshal timestamp: %w", err)
		}
		pending[":rejected"] = &types.AttributeValueMemberS{Value: string(models.REJECTED)}
		pending[":at"] = at

		_, err = s.Client.UpdateItem(ctx, &dynamodb.UpdateItemInput{
			TableName:                           aws.String(s.WithdrawalsTableName),
			Key:                                 withdrawalKey(w),
			UpdateExpression:                    aws.String("SET #status = :rejected, rejected_at = :at, updated_at = :at"),
			ConditionExpression:                 aws.String("#status = :pending"),
			ExpressionAttributeNames:            names,
			ExpressionAttributeValues:           pending,
			ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
		})
		if err != nil {
			return s.transitionError(w.Id, err)
		}
		return nil
	}

	_, err := s.Client.DeleteItem(ctx, &dynamodb.DeleteItemInput{
		TableName:                           aws.String(s.WithdrawalsTableName),
		Key:                                 withdrawalKey(w),
		ConditionExpression:                 aws.String("#status = :pending"),
		ExpressionAttributeNames:            names,
		ExpressionAttributeValues:           pending,
		ReturnValuesOnConditionCheckFailure: types.ReturnValuesOnConditionCheckFailureAllOld,
	})
	if err != nil {
		return s.transitionError(w.Id, err)
	}
	return nil
}

func (s *Store) RejectionPolicy() storage.RejectionPolicy {
	return s.Policy
}

// transitionError maps a failed conditional write to ErrNotFound when the item is gone
// and ErrNotPending when it exists in another status.
func (s *Store) transitionError(id string, err error) error {
	var condCheckFailed *types.ConditionalCheckFailedException
	if errors.As(err, &condCheckFailed) {
		if len(condCheckFailed.Item) == 0 {
			return fmt.Errorf("withdrawal %s: %w", id, storage.ErrNotFound)
		}
		return storage.ErrNotPending
	}
	return fmt.Errorf("failed to update withdrawal %s: %w", id, err)
}

func withdrawalKey(w *models.WithdrawalRequest) map[string]types.AttributeValue {
	return map[string]types.AttributeValue{
		"referral_code": &types.AttributeValueMemberS{Value: w.ReferralCode},
		"id":            &types.AttributeValueMemberS{Value: w.Id},
	}
}

func unmarshalWithdrawals(items []map[string]types.AttributeValue) ([]models.WithdrawalRequest, error) {
	var withdrawals []models.WithdrawalRequest
	if err := attributevalue.UnmarshalListOfMaps(items, &withdrawals); err != nil {
		return nil, fmt.Errorf("failed to unmarshal withdrawals: %w", err)
	}

	sort.Slice(withdrawals, func(i, j int) bool {
		return withdrawals[i].RequestedAt.After(withdrawals[j].RequestedAt)
	})
	return withdrawals, nil
}
