// Package bootstrap builds the service graph shared by the HTTP server and the lambdas.
package bootstrap

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/referral-ledger/pkg/config"
	"github.com/chris/referral-ledger/pkg/events"
	"github.com/chris/referral-ledger/pkg/ledger"
	"github.com/chris/referral-ledger/pkg/metrics"
	"github.com/chris/referral-ledger/pkg/partners"
	"github.com/chris/referral-ledger/pkg/storage"
	dydbstore "github.com/chris/referral-ledger/pkg/storage/dynamodb"
	"github.com/chris/referral-ledger/pkg/storage/memory"
	"github.com/prometheus/client_golang/prometheus"
)

// App holds the wired services.
type App struct {
	Config    *config.Config
	Store     storage.Storage
	Publisher events.Publisher
	Metrics   *metrics.LedgerMetrics
	Directory *partners.Directory
	Ledger    *ledger.Ledger
}

// AWSConfigLoader loads SDK configuration.
type AWSConfigLoader func(ctx context.Context) (aws.Config, error)

// DefaultAWSConfig loads the SDK's default credential chain.
func DefaultAWSConfig(ctx context.Context) (aws.Config, error) {
	return awsconfig.LoadDefaultConfig(ctx)
}

// New builds the service graph. The AWS config is loaded at most once and only when
// DynamoDB or SQS is configured.
func New(ctx context.Context, cfg *config.Config, reg prometheus.Registerer, loadAWS AWSConfigLoader) (*App, error) {
	if loadAWS == nil {
		loadAWS = DefaultAWSConfig
	}
	sdk := &lazyAWS{ctx: ctx, load: loadAWS}

	store, err := newStore(cfg.Storage, sdk)
	if err != nil {
		return nil, err
	}
	publisher, err := newPublisher(cfg.Events, sdk)
	if err != nil {
		return nil, err
	}

	m := metrics.NewLedgerMetrics(reg)
	directory := partners.NewDirectory(store, partners.NewBcryptHasher(cfg.Partners.BcryptCost))
	l := ledger.New(store, directory, publisher, m, ledger.Config{
		CommissionRate: cfg.Ledger.CommissionRate,
		MaxRetries:     cfg.Ledger.MaxRetries,
	})

	return &App{
		Config:    cfg,
		Store:     store,
		Publisher: publisher,
		Metrics:   m,
		Directory: directory,
		Ledger:    l,
	}, nil
}

// newStore returns the configured storage backend.
func newStore(cfg config.StorageConfig, sdk *lazyAWS) (storage.Storage, error) {
	switch cfg.Backend {
	case config.BackendDynamoDB:
		awsCfg, err := sdk.get()
		if err != nil {
			return nil, err
		}
		tables := dydbstore.Tables{
			Purchases:   cfg.PurchasesTableName,
			Withdrawals: cfg.WithdrawalsTableName,
			Accounts:    cfg.AccountsTableName,
			Partners:    cfg.PartnersTableName,
		}
		slog.Info("using DynamoDB storage", "withdrawals_table", tables.Withdrawals, "rejection_policy", cfg.RejectionPolicy)
		return dydbstore.New(dynamodb.NewFromConfig(awsCfg), tables, cfg.RejectionPolicy), nil
	case config.BackendMemory:
		slog.Warn("using in-memory storage, data is lost on restart", "rejection_policy", cfg.RejectionPolicy)
		return memory.New(cfg.RejectionPolicy), nil
	default:
		return nil, fmt.Errorf("unknown storage backend %q", cfg.Backend)
	}
}

// newPublisher returns an SQS publisher when a queue is configured and a no-op otherwise.
func newPublisher(cfg config.EventsConfig, sdk *lazyAWS) (events.Publisher, error) {
	if cfg.SQSQueueURL == "" {
		slog.Info("SQS_QUEUE_URL not set, withdrawal events are not published")
		return events.NoOpPublisher{}, nil
	}
	awsCfg, err := sdk.get()
	if err != nil {
		return nil, err
	}
	return events.NewSQSPublisher(sqs.NewFromConfig(awsCfg), cfg.SQSQueueURL), nil
}

type lazyAWS struct {
	ctx    context.Context
	load   AWSConfigLoader
	loaded *aws.Config
}

func (l *lazyAWS) get() (aws.Config, error) {
	if l.loaded != nil {
		return *l.loaded, nil
	}
	cfg, err := l.load(l.ctx)
	if err != nil {
		return aws.Config{}, fmt.Errorf("unable to load SDK config: %w", err)
	}
	l.loaded = &cfg
	return cfg, nil
}
