package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/chris/referral-ledger/pkg/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.HTTP.Port)
		assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
		assert.Equal(t, BackendMemory, cfg.Storage.Backend)
		assert.Equal(t, storage.RejectDelete, cfg.Storage.RejectionPolicy)
		assert.Equal(t, "0.1", cfg.Ledger.CommissionRate.String())
		assert.Equal(t, 3, cfg.Ledger.MaxRetries)
		assert.Equal(t, 72*time.Hour, cfg.Reminder.StaleAfter)
		assert.Equal(t, 10, cfg.Partners.BcryptCost)
		assert.Empty(t, cfg.Events.SQSQueueURL)
	})

	t.Run("DynamoDB backend", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "dynamodb")
		t.Setenv("DYNAMODB_PURCHASES_TABLE_NAME", "purchases")
		t.Setenv("DYNAMODB_WITHDRAWALS_TABLE_NAME", "withdrawals")
		t.Setenv("DYNAMODB_ACCOUNTS_TABLE_NAME", "accounts")
		t.Setenv("DYNAMODB_PARTNERS_TABLE_NAME", "partners")
		t.Setenv("WITHDRAWAL_REJECTION_POLICY", "archive")
		t.Setenv("LEDGER_COMMISSION_RATE", "0.15")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example.com,https://b.example.com")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "accounts", cfg.Storage.AccountsTableName)
		assert.Equal(t, storage.RejectArchive, cfg.Storage.RejectionPolicy)
		assert.Equal(t, "0.15", cfg.Ledger.CommissionRate.String())
		assert.Len(t, cfg.HTTP.CORSAllowedOrigins, 2)
	})

	t.Run("DynamoDB backend missing tables", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "dynamodb")
		t.Setenv("DYNAMODB_PURCHASES_TABLE_NAME", "purchases")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "table name")
	})

	t.Run("Invalid values", func(t *testing.T) {
		t.Setenv("STORAGE_BACKEND", "postgres")
		t.Setenv("WITHDRAWAL_REJECTION_POLICY", "shred")
		t.Setenv("LEDGER_COMMISSION_RATE", "1.5")
		t.Setenv("PARTNER_BCRYPT_COST", "99")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "STORAGE_BACKEND")
		assert.Contains(t, err.Error(), "WITHDRAWAL_REJECTION_POLICY")
		assert.Contains(t, err.Error(), "LEDGER_COMMISSION_RATE")
		assert.Contains(t, err.Error(), "PARTNER_BCRYPT_COST")
	})

	t.Run("Unparseable duration", func(t *testing.T) {
		t.Setenv("REMINDER_STALE_AFTER", "soon")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "parsing config")
	})
}

func TestSlogLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, AppConfig{LogLevel: "DEBUG"}.SlogLevel())
	assert.Equal(t, slog.LevelWarn, AppConfig{LogLevel: "warn"}.SlogLevel())
	assert.Equal(t, slog.LevelInfo, AppConfig{LogLevel: ""}.SlogLevel())
}
