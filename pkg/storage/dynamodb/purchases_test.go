package dynamodb

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/aws/aws-sdk-go-v2/feature/dynamodb/attributevalue"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/referral-ledger/pkg/models"
	"github.com/chris/referral-ledger/pkg/storage"
	"github.com/chris/referral-ledger/pkg/storage/dynamodb/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTables = Tables{
	Purchases:   "purchases",
	Withdrawals: "withdrawals",
	Accounts:    "accounts",
	Partners:    "partners",
}

func TestCreatePurchase(t *testing.T) {
	purchase := &models.PurchaseRecord{
		OrderID:      "order-1",
		ReferralCode: "R1",
		Buyer:        "Ayesha",
		Amount:       models.MustParseMoney("1250.50"),
		OccurredAt:   time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC),
	}

	t.Run("Success", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables, storage.RejectDelete)

		mockClient.On("PutItem", mock.Anything, mock.MatchedBy(func(in *dynamodb.PutItemInput) bool {
			amount, ok := in.Item["amount"].(*types.AttributeValueMemberN)
			return *in.TableName == "purchases" &&
				*in.ConditionExpression == "attribute_not_exists(order_id)" &&
				ok && amount.Value == "1250.5"
		})).Once().Return(&dynamodb.PutItemOutput{}, nil)

		err := store.CreatePurchase(context.Background(), purchase)

		assert.NoError(t, err)
		mockClient.AssertExpectations(t)
	})

	t.Run("Duplicate Order", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables, storage.RejectDelete)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, &types.ConditionalCheckFailedException{})

		err := store.CreatePurchase(context.Background(), purchase)

		assert.ErrorIs(t, err, storage.ErrAlreadyExists)
	})

	t.Run("Invalid Record", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables, storage.RejectDelete)

		err := store.CreatePurchase(context.Background(), &models.PurchaseRecord{OrderID: "order-2"})

		assert.ErrorIs(t, err, models.ErrInvalidRecord)
		mockClient.AssertNotCalled(t, "PutItem", mock.Anything, mock.Anything)
	})

	t.Run("PutItem Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables, storage.RejectDelete)

		mockClient.On("PutItem", mock.Anything, mock.Anything).Return(nil, errors.New("throttled"))

		err := store.CreatePurchase(context.Background(), purchase)

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to create purchase")
	})
}

func TestListPurchasesByReferralCode(t *testing.T) {
	first, _ := attributevalue.MarshalMap(models.PurchaseRecord{OrderID: "o1", ReferralCode: "R1", Amount: models.MoneyFromInt(100)})
	second, _ := attributevalue.MarshalMap(models.PurchaseRecord{OrderID: "o2", ReferralCode: "R1", Amount: models.MustParseMoney("0.99")})
	cursor := map[string]types.AttributeValue{"order_id": &types.AttributeValueMemberS{Value: "o1"}}

	t.Run("Follows Pages", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables, storage.RejectDelete)

		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return *in.IndexName == referralCodeIndex && in.ExclusiveStartKey == nil
		})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{first}, LastEvaluatedKey: cursor}, nil)
		mockClient.On("Query", mock.Anything, mock.MatchedBy(func(in *dynamodb.QueryInput) bool {
			return in.ExclusiveStartKey != nil
		})).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{second}}, nil)

		purchases, err := store.ListPurchasesByReferralCode(context.Background(), "R1")

		require.NoError(t, err)
		require.Len(t, purchases, 2)
		assert.Equal(t, "100.00", purchases[0].Amount.StringFixed(2))
		assert.Equal(t, "0.99", purchases[1].Amount.StringFixed(2))
		mockClient.AssertExpectations(t)
	})

	t.Run("Newest First", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables, storage.RejectDelete)

		at := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		older, _ := attributevalue.MarshalMap(models.PurchaseRecord{OrderID: "o1", ReferralCode: "R1", Amount: models.MoneyFromInt(1), OccurredAt: at})
		newer, _ := attributevalue.MarshalMap(models.PurchaseRecord{OrderID: "o2", ReferralCode: "R1", Amount: models.MoneyFromInt(2), OccurredAt: at.Add(time.Hour)})
		mockClient.On("Query", mock.Anything, mock.Anything).Once().Return(&dynamodb.QueryOutput{Items: []map[string]types.AttributeValue{older, newer}}, nil)

		purchases, err := store.ListPurchasesByReferralCode(context.Background(), "R1")

		require.NoError(t, err)
		require.Len(t, purchases, 2)
		assert.Equal(t, "o2", purchases[0].OrderID)
		assert.Equal(t, "o1", purchases[1].OrderID)
	})

	t.Run("Query Fails", func(t *testing.T) {
		mockClient := new(mocks.DynamoDBAPI)
		store := New(mockClient, testTables, storage.RejectDelete)

		mockClient.On("Query", mock.Anything, mock.Anything).Return(nil, errors.New("boom"))

		_, err := store.ListPurchasesByReferralCode(context.Background(), "R1")

		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to query purchases")
	})
}
