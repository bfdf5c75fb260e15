package config

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/shopspring/decimal"
)

// ErrInvalidConfig is returned when a loaded value is out of range.
var ErrInvalidConfig = errors.New("invalid config")

func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Info("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		logger.Debug("No environment file specified, trying default .env")
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		logger.Debug("Looking for environment file", "path", path)
		foundPath, err := FindEnvTest(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Debug("No valid environment files found, using default .env")
	if err := godotenv.Load(); err != nil {
		logger.Debug("No .env file found in current directory")
	}
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if cfg.Env == "" {
		cfg.Env = "development"
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	slog.Default().Info("App config loaded",
		"env", cfg.Env,
		"branch", cfg.Bank.BranchCode,
		"withdrawal_limit", cfg.Bank.WithdrawalLimit,
		"daily_withdrawal_limit", cfg.Bank.DailyWithdrawalLimit,
		"daily_transaction_limit", cfg.Bank.DailyTransactionLimit,
		"timezone", cfg.Bank.Timezone,
		"metrics_addr", cfg.Metrics.Addr,
	)
	return &cfg, nil
}

// Validate checks the bank rules for values envconfig cannot reject by type.
func (a *App) Validate() error {
	b := a.Bank
	if b == nil {
		return fmt.Errorf("%w: missing bank section", ErrInvalidConfig)
	}
	if b.BranchCode == "" {
		return fmt.Errorf("%w: empty branch code", ErrInvalidConfig)
	}
	limit, err := decimal.NewFromString(b.WithdrawalLimit)
	if err != nil || !limit.IsPositive() {
		return fmt.Errorf("%w: withdrawal limit %q", ErrInvalidConfig, b.WithdrawalLimit)
	}
	if b.DailyWithdrawalLimit < 0 || b.DailyTransactionLimit < 0 {
		return fmt.Errorf("%w: daily limits cannot be negative", ErrInvalidConfig)
	}
	if _, err := b.Location(); err != nil {
		return err
	}
	return nil
}

// Location resolves the reference timezone of the accounting day.
func (b *Bank) Location() (*time.Location, error) {
	loc, err := time.LoadLocation(b.Timezone)
	if err != nil {
		return nil, fmt.Errorf("%w: timezone %q: %v", ErrInvalidConfig, b.Timezone, err)
	}
	return loc, nil
}
