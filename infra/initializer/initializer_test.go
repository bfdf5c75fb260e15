package initializer

import (
	"bytes"
	"context"
	"strings"
	"testing"

	_ "time/tzdata"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.App {
	return &config.App{
		Env: "test",
		Log: &config.Log{Format: "text", Output: "discard"},
		Bank: &config.Bank{
			BranchCode:            "0001",
			WithdrawalLimit:       "500.00",
			DailyWithdrawalLimit:  3,
			DailyTransactionLimit: 10,
			Timezone:              "America/Sao_Paulo",
		},
		Metrics: &config.Metrics{Namespace: "ledger_test"},
	}
}

func TestAccountDefaults(t *testing.T) {
	defaults, err := accountDefaults(testConfig().Bank)
	require.NoError(t, err)
	assert.Equal(t, "0001", defaults.Branch)
	assert.Equal(t, "America/Sao_Paulo", defaults.Location.String())
	assert.Equal(t, 10, defaults.DailyTransactionLimit)
	policy, ok := defaults.Policy.(account.CheckingPolicy)
	require.True(t, ok)
	assert.Equal(t, money.Must(50000, money.DefaultCurrency), policy.MaxAmount)
	assert.Equal(t, 3, policy.MaxDailyWithdrawals)

	fallback, err := accountDefaults(nil)
	require.NoError(t, err)
	assert.Equal(t, account.DefaultBranch, fallback.Branch)

	bad := testConfig().Bank
	bad.WithdrawalLimit = "1.234"
	_, err = accountDefaults(bad)
	assert.ErrorIs(t, err, money.ErrTooManyDecimals)

	bad = testConfig().Bank
	bad.Timezone = "Nowhere/Land"
	_, err = accountDefaults(bad)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestInitializeDependencies(t *testing.T) {
	deps, err := InitializeDependencies(testConfig())
	require.NoError(t, err)
	require.NotNil(t, deps.Registry)
	require.NotNil(t, deps.EventBus)
	require.NotNil(t, deps.MetricsRegistry)

	a := app.New(deps, testConfig())
	ctx := context.Background()
	_, err = a.CustomerService.Register(ctx, commands.RegisterCustomerCommand{TaxID: "12345678901", Name: "Ana"})
	require.NoError(t, err)
	acc, err := a.AccountService.Open(ctx, commands.OpenAccountCommand{TaxID: "12345678901"})
	require.NoError(t, err)
	assert.Equal(t, "0001", acc.Branch())
	_, err = a.AccountService.Deposit(ctx, commands.DepositCommand{TaxID: "12345678901", AccountNumber: 1, Amount: "10"})
	require.NoError(t, err)

	expected := `
# HELP ledger_test_accounts_opened_total Total number of opened checking accounts
# TYPE ledger_test_accounts_opened_total counter
ledger_test_accounts_opened_total 1
# HELP ledger_test_transactions_total Total number of transactions per kind and outcome
# TYPE ledger_test_transactions_total counter
ledger_test_transactions_total{kind="deposit",outcome="applied"} 1
`
	require.NoError(t, testutil.GatherAndCompare(deps.MetricsRegistry, strings.NewReader(expected),
		"ledger_test_accounts_opened_total", "ledger_test_transactions_total"))
}

func TestInitializeDependencies_InvalidBank(t *testing.T) {
	cfg := testConfig()
	cfg.Bank.Timezone = "Nowhere/Land"
	_, err := InitializeDependencies(cfg)
	assert.ErrorIs(t, err, config.ErrInvalidConfig)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&config.Log{Format: "json", Level: 0, Prefix: "[ledger]"}, &buf)
	logger.Info("hello", "taxID", "12345678901")
	out := buf.String()
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "12345678901")

	buf.Reset()
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}
