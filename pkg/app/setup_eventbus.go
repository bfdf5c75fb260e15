// Package app wires the services together and registers the event Bus
// subscribers for auditing and metrics.
package app

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/metrics"
)

// setupEventBus registers all event handlers with the provided event Bus.
func (a *App) setupEventBus() {
	bus := a.Deps.EventBus
	logger := a.Deps.Logger

	a.setupAuditHandlers(bus, logger)
	metrics.Subscribe(bus, a.Deps.Metrics)
}

func (a *App) setupAuditHandlers(bus eventbus.Bus, logger *slog.Logger) {
	audit := logger.With("component", "audit")

	bus.Subscribe(events.EventTypeCustomerRegistered, func(_ context.Context, e events.Event) {
		if ev, ok := e.(events.CustomerRegistered); ok {
			audit.Info("customer registered", "event_id", ev.ID, "taxID", ev.TaxID)
		}
	})
	bus.Subscribe(events.EventTypeAccountOpened, func(_ context.Context, e events.Event) {
		if ev, ok := e.(events.AccountOpened); ok {
			audit.Info("account opened", "event_id", ev.ID, "taxID", ev.TaxID, "branch", ev.Branch, "account", ev.AccountNumber)
		}
	})
	bus.Subscribe(events.EventTypeTransactionApplied, func(_ context.Context, e events.Event) {
		if ev, ok := e.(events.TransactionApplied); ok {
			audit.Info("transaction applied",
				"event_id", ev.ID,
				"account", ev.AccountNumber,
				"kind", ev.Kind,
				"amount", ev.Amount.String(),
				"balance", ev.Balance.String(),
			)
		}
	})
	bus.Subscribe(events.EventTypeTransactionRejected, func(_ context.Context, e events.Event) {
		if ev, ok := e.(events.TransactionRejected); ok {
			audit.Warn("transaction rejected",
				"event_id", ev.ID,
				"account", ev.AccountNumber,
				"kind", ev.Kind,
				"amount", ev.Amount.String(),
				"reason", ev.Reason,
			)
		}
	})
}
