package metrics

import (
	"context"

	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
)

// Subscribe feeds c from the domain events published on bus.
func Subscribe(bus eventbus.Bus, c Collector) {
	if c == nil {
		c = NoOpCollector{}
	}
	bus.Subscribe(events.EventTypeCustomerRegistered, func(context.Context, events.Event) {
		c.RecordCustomerRegistered()
	})
	bus.Subscribe(events.EventTypeAccountOpened, func(context.Context, events.Event) {
		c.RecordAccountOpened()
	})
	bus.Subscribe(events.EventTypeTransactionApplied, func(_ context.Context, e events.Event) {
		if ev, ok := e.(events.TransactionApplied); ok {
			c.RecordTransaction(string(ev.Kind), OutcomeApplied)
		}
	})
	bus.Subscribe(events.EventTypeTransactionRejected, func(_ context.Context, e events.Event) {
		if ev, ok := e.(events.TransactionRejected); ok {
			c.RecordTransaction(string(ev.Kind), OutcomeRejected)
		}
	})
}
