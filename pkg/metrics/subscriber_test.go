package metrics_test

import (
	"context"
	"testing"

	"github.com/amirasaad/ledger/internal/fixtures/mocks"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/metrics"
	"github.com/stretchr/testify/require"
)

func TestSubscribe(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	bus := eventbus.NewSimpleEventBus(nil)
	collector := mocks.NewMockCollector(t)
	metrics.Subscribe(bus, collector)

	collector.EXPECT().RecordCustomerRegistered().Return().Once()
	collector.EXPECT().RecordAccountOpened().Return().Once()
	collector.EXPECT().RecordTransaction("deposit", metrics.OutcomeApplied).Return().Once()
	collector.EXPECT().RecordTransaction("withdrawal", metrics.OutcomeRejected).Return().Once()

	require.NoError(t, bus.Publish(ctx, events.CustomerRegistered{}))
	require.NoError(t, bus.Publish(ctx, events.AccountOpened{}))
	require.NoError(t, bus.Publish(ctx, events.TransactionApplied{Kind: account.KindDeposit}))
	require.NoError(t, bus.Publish(ctx, events.TransactionRejected{Kind: account.KindWithdrawal}))
}

func TestSubscribe_NilCollector(t *testing.T) {
	t.Parallel()
	bus := eventbus.NewSimpleEventBus(nil)
	metrics.Subscribe(bus, nil)
	require.NoError(t, bus.Publish(context.Background(), events.AccountOpened{}))
}
