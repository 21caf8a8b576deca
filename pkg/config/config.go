package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/chris/referral-ledger/pkg/storage"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
	"golang.org/x/crypto/bcrypt"
)

const (
	BackendMemory   = "memory"
	BackendDynamoDB = "dynamodb"
)

type Config struct {
	App      AppConfig
	HTTP     HTTPConfig
	Storage  StorageConfig
	Ledger   LedgerConfig
	Events   EventsConfig
	Reminder ReminderConfig
	Partners PartnersConfig
}

type AppConfig struct {
	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

type HTTPConfig struct {
	Port               string   `envconfig:"HTTP_PORT" default:"8080"`
	CORSAllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"*"`
}

type StorageConfig struct {
	Backend              string                  `envconfig:"STORAGE_BACKEND" default:"memory"`
	PurchasesTableName   string                  `envconfig:"DYNAMODB_PURCHASES_TABLE_NAME"`
	WithdrawalsTableName string                  `envconfig:"DYNAMODB_WITHDRAWALS_TABLE_NAME"`
	AccountsTableName    string                  `envconfig:"DYNAMODB_ACCOUNTS_TABLE_NAME"`
	PartnersTableName    string                  `envconfig:"DYNAMODB_PARTNERS_TABLE_NAME"`
	RejectionPolicy      storage.RejectionPolicy `envconfig:"WITHDRAWAL_REJECTION_POLICY" default:"delete"`
}

type LedgerConfig struct {
	CommissionRate decimal.Decimal `envconfig:"LEDGER_COMMISSION_RATE" default:"0.10"`
	MaxRetries     int             `envconfig:"LEDGER_MAX_RETRIES" default:"3"`
}

type EventsConfig struct {
	// SQSQueueURL is optional for the HTTP server; events are dropped when unset.
	SQSQueueURL string `envconfig:"SQS_QUEUE_URL"`
}

type ReminderConfig struct {
	StaleAfter time.Duration `envconfig:"REMINDER_STALE_AFTER" default:"72h"`
}

type PartnersConfig struct {
	BcryptCost int `envconfig:"PARTNER_BCRYPT_COST" default:"10"`
}

// Load reads an optional .env file and then the process environment.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks cross-field constraints envconfig cannot express.
func (c *Config) Validate() error {
	var errs []error

	switch c.Storage.Backend {
	case BackendMemory:
	case BackendDynamoDB:
		if c.Storage.PurchasesTableName == "" || c.Storage.WithdrawalsTableName == "" ||
			c.Storage.AccountsTableName == "" || c.Storage.PartnersTableName == "" {
			errs = append(errs, errors.New("one or more DynamoDB table name environment variables are not set"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown STORAGE_BACKEND %q", c.Storage.Backend))
	}

	if !c.Storage.RejectionPolicy.IsValid() {
		errs = append(errs, fmt.Errorf("unknown WITHDRAWAL_REJECTION_POLICY %q", c.Storage.RejectionPolicy))
	}
	if !c.Ledger.CommissionRate.IsPositive() || c.Ledger.CommissionRate.GreaterThan(decimal.NewFromInt(1)) {
		errs = append(errs, fmt.Errorf("LEDGER_COMMISSION_RATE must be in (0, 1], got %s", c.Ledger.CommissionRate))
	}
	if c.Ledger.MaxRetries < 0 {
		errs = append(errs, errors.New("LEDGER_MAX_RETRIES must not be negative"))
	}
	if c.Reminder.StaleAfter <= 0 {
		errs = append(errs, errors.New("REMINDER_STALE_AFTER must be positive"))
	}
	if c.Partners.BcryptCost < bcrypt.MinCost || c.Partners.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("PARTNER_BCRYPT_COST must be between %d and %d", bcrypt.MinCost, bcrypt.MaxCost))
	}

	return errors.Join(errs...)
}

// SlogLevel maps LOG_LEVEL to a slog level, defaulting to info.
func (a AppConfig) SlogLevel() slog.Level {
	switch strings.ToLower(a.LogLevel) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
