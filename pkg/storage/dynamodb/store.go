package dynamodb

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb/types"
	"github.com/chris/referral-ledger/pkg/storage"
)

// DynamoDBAPI is the subset of the DynamoDB client used by Store.
type DynamoDBAPI interface {
	GetItem(ctx context.Context, params *dynamodb.GetItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.GetItemOutput, error)
	PutItem(ctx context.Context, params *dynamodb.PutItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.PutItemOutput, error)
	UpdateItem(ctx context.Context, params *dynamodb.UpdateItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.UpdateItemOutput, error)
	DeleteItem(ctx context.Context, params *dynamodb.DeleteItemInput, optFns ...func(*dynamodb.Options)) (*dynamodb.DeleteItemOutput, error)
	Query(ctx context.Context, params *dynamodb.QueryInput, optFns ...func(*dynamodb.Options)) (*dynamodb.QueryOutput, error)
	Scan(ctx context.Context, params *dynamodb.ScanInput, optFns ...func(*dynamodb.Options)) (*dynamodb.ScanOutput, error)
	TransactWriteItems(ctx context.Context, params *dynamodb.TransactWriteItemsInput, optFns ...func(*dynamodb.Options)) (*dynamodb.TransactWriteItemsOutput, error)
}

// Tables names the DynamoDB tables backing the store.
type Tables struct {
	Purchases   string
	Withdrawals string
	Accounts    string
	Partners    string
}

// Store implements the Storage interface using AWS DynamoDB.
type Store struct {
	Client               DynamoDBAPI
	PurchasesTableName   string
	WithdrawalsTableName string
	AccountsTableName    string
	PartnersTableName    string
	Policy               storage.RejectionPolicy
}

// New creates a new Store.
func New(client DynamoDBAPI, tables Tables, policy storage.RejectionPolicy) *Store {
	if !policy.IsValid() {
		policy = storage.RejectDelete
	}
	return &Store{
		Client:               client,
		PurchasesTableName:   tables.Purchases,
		WithdrawalsTableName: tables.Withdrawals,
		AccountsTableName:    tables.Accounts,
		PartnersTableName:    tables.Partners,
		Policy:               policy,
	}
}

// Make sure we conform to the interface
var _ storage.Storage = (*Store)(nil)

const (
	referralCodeIndex  = "referral_code-index"
	withdrawalIDIndex  = "id-index"
	statusRequestedGSI = "status-requested_at-index"
	partnerStatusIndex = "status-index"

	conditionalCheckFailed = "ConditionalCheckFailed"
)

// queryAll follows LastEvaluatedKey until the result set is exhausted.
func (s *Store) queryAll(ctx context.Context, input *dynamodb.QueryInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := s.Client.Query(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}

// scanAll follows LastEvaluatedKey until the table is exhausted.
func (s *Store) scanAll(ctx context.Context, input *dynamodb.ScanInput) ([]map[string]types.AttributeValue, error) {
	var items []map[string]types.AttributeValue
	for {
		out, err := s.Client.Scan(ctx, input)
		if err != nil {
			return nil, err
		}
		items = append(items, out.Items...)
		if len(out.LastEvaluatedKey) == 0 {
			return items, nil
		}
		input.ExclusiveStartKey = out.LastEvaluatedKey
	}
}
