package config

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	_ "time/tzdata"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	slog.SetDefault(slog.New(slog.NewTextHandler(io.Discard, nil)))
	os.Exit(m.Run())
}

func TestLoad_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, "0001", cfg.Bank.BranchCode)
	assert.Equal(t, "500.00", cfg.Bank.WithdrawalLimit)
	assert.Equal(t, 3, cfg.Bank.DailyWithdrawalLimit)
	assert.Equal(t, 10, cfg.Bank.DailyTransactionLimit)
	assert.Equal(t, "America/Sao_Paulo", cfg.Bank.Timezone)
	assert.Equal(t, "text", cfg.Log.Format)
	assert.Equal(t, "stderr", cfg.Log.Output)
	assert.Empty(t, cfg.Metrics.Addr)
	assert.Equal(t, "ledger", cfg.Metrics.Namespace)

	loc, err := cfg.Bank.Location()
	require.NoError(t, err)
	assert.Equal(t, "America/Sao_Paulo", loc.String())
}

func TestLoad_FromEnvFile(t *testing.T) {
	dir := t.TempDir()
	nested := filepath.Join(dir, "a", "b")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	env := "BANK_BRANCH_CODE=0042\nBANK_WITHDRAWAL_LIMIT=250.00\nBANK_DAILY_WITHDRAWAL_LIMIT=5\nMETRICS_ADDR=:9090\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env.test"), []byte(env), 0o600))
	t.Chdir(nested)
	// godotenv never overrides variables that are already set.
	for _, k := range []string{"BANK_BRANCH_CODE", "BANK_WITHDRAWAL_LIMIT", "BANK_DAILY_WITHDRAWAL_LIMIT", "METRICS_ADDR"} {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}

	found, err := FindEnvTest(".env.test")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, ".env.test"), found)

	cfg, err := Load("missing.env", ".env.test")
	require.NoError(t, err)
	assert.Equal(t, "0042", cfg.Bank.BranchCode)
	assert.Equal(t, "250.00", cfg.Bank.WithdrawalLimit)
	assert.Equal(t, 5, cfg.Bank.DailyWithdrawalLimit)
	assert.Equal(t, ":9090", cfg.Metrics.Addr)
}

func TestLoad_Overrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("BANK_BRANCH_CODE", "0042")
	t.Setenv("BANK_WITHDRAWAL_LIMIT", "250.00")
	t.Setenv("BANK_DAILY_TRANSACTION_LIMIT", "0")
	t.Setenv("BANK_TIMEZONE", "UTC")
	t.Setenv("LOG_FORMAT", "json")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "0042", cfg.Bank.BranchCode)
	assert.Equal(t, "250.00", cfg.Bank.WithdrawalLimit)
	assert.Zero(t, cfg.Bank.DailyTransactionLimit)
	assert.Equal(t, "json", cfg.Log.Format)
}

func TestValidate(t *testing.T) {
	valid := func() *App {
		return &App{Bank: &Bank{
			BranchCode:      "0001",
			WithdrawalLimit: "500.00",
			Timezone:        "America/Sao_Paulo",
		}}
	}

	tests := []struct {
		name   string
		mutate func(a *App)
		ok     bool
	}{
		{"valid", func(*App) {}, true},
		{"missing bank", func(a *App) { a.Bank = nil }, false},
		{"empty branch", func(a *App) { a.Bank.BranchCode = "" }, false},
		{"zero limit", func(a *App) { a.Bank.WithdrawalLimit = "0" }, false},
		{"bad limit", func(a *App) { a.Bank.WithdrawalLimit = "lots" }, false},
		{"negative daily", func(a *App) { a.Bank.DailyWithdrawalLimit = -1 }, false},
		{"unknown timezone", func(a *App) { a.Bank.Timezone = "Mars/Olympus" }, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a := valid()
			tc.mutate(a)
			err := a.Validate()
			if tc.ok {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, ErrInvalidConfig)
		})
	}
}
