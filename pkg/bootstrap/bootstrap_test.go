package bootstrap

import (
	"context"
	"testing"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/chris/referral-ledger/pkg/config"
	"github.com/chris/referral-ledger/pkg/events"
	"github.com/chris/referral-ledger/pkg/storage"
	dydbstore "github.com/chris/referral-ledger/pkg/storage/dynamodb"
	"github.com/chris/referral-ledger/pkg/storage/memory"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Storage:  config.StorageConfig{Backend: config.BackendMemory, RejectionPolicy: storage.RejectArchive},
		Ledger:   config.LedgerConfig{CommissionRate: decimal.RequireFromString("0.2"), MaxRetries: 5},
		Partners: config.PartnersConfig{BcryptCost: 4},
	}
}

func countingLoader(calls *int) AWSConfigLoader {
	return func(ctx context.Context) (aws.Config, error) {
		*calls++
		return aws.Config{Region: "us-east-1"}, nil
	}
}

func TestNew(t *testing.T) {
	t.Run("Memory backend without SQS", func(t *testing.T) {
		calls := 0
		app, err := New(context.Background(), testConfig(), prometheus.NewRegistry(), countingLoader(&calls))
		require.NoError(t, err)

		assert.Equal(t, 0, calls)
		assert.IsType(t, &memory.Store{}, app.Store)
		assert.IsType(t, events.NoOpPublisher{}, app.Publisher)
		assert.Equal(t, storage.RejectArchive, app.Store.RejectionPolicy())
		assert.Equal(t, "0.2", app.Ledger.Rate.String())
		assert.Equal(t, 5, app.Ledger.MaxRetries)
		assert.NotNil(t, app.Directory)
	})

	t.Run("DynamoDB and SQS share one SDK config", func(t *testing.T) {
		cfg := testConfig()
		cfg.Storage = config.StorageConfig{
			Backend:              config.BackendDynamoDB,
			PurchasesTableName:   "purchases",
			WithdrawalsTableName: "withdrawals",
			AccountsTableName:    "accounts",
			PartnersTableName:    "partners",
			RejectionPolicy:      storage.RejectDelete,
		}
		cfg.Events.SQSQueueURL = "https://sqs.us-east-1.amazonaws.com/123/ledger-events"

		calls := 0
		app, err := New(context.Background(), cfg, prometheus.NewRegistry(), countingLoader(&calls))
		require.NoError(t, err)

		assert.Equal(t, 1, calls)
		store, ok := app.Store.(*dydbstore.Store)
		require.True(t, ok)
		assert.Equal(t, "withdrawals", store.WithdrawalsTableName)
		publisher, ok := app.Publisher.(*events.SQSPublisher)
		require.True(t, ok)
		assert.Equal(t, cfg.Events.SQSQueueURL, publisher.QueueURL)
	})

	t.Run("SDK config failure", func(t *testing.T) {
		cfg := testConfig()
		cfg.Events.SQSQueueURL = "https://sqs.example/queue"

		_, err := New(context.Background(), cfg, nil, func(ctx context.Context) (aws.Config, error) {
			return aws.Config{}, assert.AnError
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unable to load SDK config")
	})

	t.Run("Unknown backend", func(t *testing.T) {
		cfg := testConfig()
		cfg.Storage.Backend = "postgres"

		_, err := New(context.Background(), cfg, nil, nil)
		require.Error(t, err)
	})
}
