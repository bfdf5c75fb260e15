package app_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/amirasaad/ledger/pkg/registry"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_WiresSubscribers(t *testing.T) {
	t.Parallel()
	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, nil))
	collector := mocks.NewMockCollector(t)

	a := app.New(&app.Deps{
		Registry: registry.New(registry.DefaultAccountDefaults()),
		EventBus: eventbus.NewSimpleEventBus(logger),
		Metrics:  collector,
		Logger:   logger,
	}, nil)
	require.NotNil(t, a.CustomerService)
	require.NotNil(t, a.AccountService)

	collector.EXPECT().RecordCustomerRegistered().Return().Once()
	collector.EXPECT().RecordAccountOpened().Return().Once()
	collector.EXPECT().RecordTransaction("deposit", metrics.OutcomeApplied).Return().Once()
	collector.EXPECT().RecordTransaction("withdrawal", metrics.OutcomeRejected).Return().Once()

	ctx := context.Background()
	_, err := a.CustomerService.Register(ctx, commands.RegisterCustomerCommand{TaxID: "12345678901", Name: "Ana"})
	require.NoError(t, err)
	acc, err := a.AccountService.Open(ctx, commands.OpenAccountCommand{TaxID: "12345678901"})
	require.NoError(t, err)
	_, err = a.AccountService.Deposit(ctx, commands.DepositCommand{TaxID: "12345678901", AccountNumber: acc.Number(), Amount: "50"})
	require.NoError(t, err)
	_, err = a.AccountService.Withdraw(ctx, commands.WithdrawCommand{TaxID: "12345678901", AccountNumber: acc.Number(), Amount: "80"})
	require.Error(t, err)

	out := logs.String()
	assert.Contains(t, out, "customer registered")
	assert.Contains(t, out, "account opened")
	assert.Contains(t, out, "transaction applied")
	assert.Contains(t, out, "transaction rejected")
}

func TestNew_DefaultsCollectorAndLogger(t *testing.T) {
	t.Parallel()
	deps := &app.Deps{
		Registry: registry.New(registry.DefaultAccountDefaults()),
		EventBus: eventbus.NewSimpleEventBus(nil),
	}
	a := app.New(deps, nil)
	assert.IsType(t, metrics.NoOpCollector{}, a.Deps.Metrics)
	assert.NotNil(t, a.Deps.Logger)
}
