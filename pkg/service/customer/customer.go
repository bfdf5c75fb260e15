// Package customer provides the registration workflow on top of the registry.
package customer

import (
	"context"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/registry"
)

// Service registers and looks up customers.
type Service struct {
	registry *registry.Registry
	bus      eventbus.Bus
	logger   *slog.Logger
}

// NewService creates a new Service with the provided dependencies.
func NewService(reg *registry.Registry, bus eventbus.Bus, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{registry: reg, bus: bus, logger: logger.With("service", "customer")}
}

// Register validates the command and adds the customer to the registry.
// Malformed and duplicate tax ids surface as customer.ErrMalformedTaxID and
// customer.ErrDuplicateTaxID.
func (s *Service) Register(ctx context.Context, cmd commands.RegisterCustomerCommand) (*customer.Customer, error) {
	logger := s.logger.With("taxID", cmd.TaxID)
	logger.Info("Register started")
	c, err := s.registry.RegisterCustomer(customer.Registration{
		TaxID:     cmd.TaxID,
		Name:      cmd.Name,
		BirthDate: cmd.BirthDate,
		Address: customer.Address{
			Street:       cmd.Street,
			Neighborhood: cmd.Neighborhood,
			CityState:    cmd.CityState,
		},
	})
	if err != nil {
		logger.Warn("Register failed", "error", err)
		return nil, err
	}
	if err := s.bus.Publish(ctx, events.CustomerRegistered{
		Meta:  events.NewMeta(),
		TaxID: c.TaxID(),
		Name:  c.Name(),
	}); err != nil {
		logger.Error("publish CustomerRegistered failed", "error", err)
	}
	logger.Info("Register completed")
	return c, nil
}

// Lookup returns the registered customer with the given tax id.
func (s *Service) Lookup(_ context.Context, taxID string) (*customer.Customer, error) {
	c, err := s.registry.FindCustomer(taxID)
	if err != nil {
		s.logger.Debug("Lookup failed", "taxID", taxID, "error", err)
		return nil, err
	}
	return c, nil
}

// List returns every customer in registration order.
func (s *Service) List(_ context.Context) []*customer.Customer {
	return s.registry.Customers()
}
