// Package account provides business logic for interacting with accounts on
// behalf of registered customers. It defines the Service struct and its methods
// for opening checking accounts, depositing and withdrawing funds, and reading
// statements.
//
// Every transaction attempt that reaches the domain publishes either a
// TransactionApplied or a TransactionRejected event.
package account

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/amirasaad/ledger/pkg/commands"
	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/domain/events"
	"github.com/amirasaad/ledger/pkg/eventbus"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/amirasaad/ledger/pkg/registry"
)

// Service provides account operations for registered customers.
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
	return &Service{registry: reg, bus: bus, logger: logger.With("service", "account")}
}

// Open opens a checking account for a registered customer.
func (s *Service) Open(ctx context.Context, cmd commands.OpenAccountCommand) (*account.Account, error) {
	logger := s.logger.With("taxID", cmd.TaxID)
	logger.Info("Open started")
	acc, err := s.registry.OpenCheckingAccount(cmd.TaxID)
	if err != nil {
		logger.Warn("Open failed", "error", err)
		return nil, err
	}
	s.publish(ctx, logger, events.AccountOpened{
		Meta:          events.NewMeta(),
		TaxID:         cmd.TaxID,
		Branch:        acc.Branch(),
		AccountNumber: acc.Number(),
	})
	logger.Info("Open completed", "account", acc.Number())
	return acc, nil
}

// Deposit credits the account and returns the new balance.
func (s *Service) Deposit(ctx context.Context, cmd commands.DepositCommand) (money.Money, error) {
	return s.transact(ctx, cmd.TaxID, cmd.AccountNumber, account.KindDeposit, cmd.Amount)
}

// Withdraw debits the account and returns the new balance.
func (s *Service) Withdraw(ctx context.Context, cmd commands.WithdrawCommand) (money.Money, error) {
	return s.transact(ctx, cmd.TaxID, cmd.AccountNumber, account.KindWithdrawal, cmd.Amount)
}

// Statement returns the ledger snapshot of an account owned by the customer.
func (s *Service) Statement(_ context.Context, q commands.StatementQuery) (account.Statement, error) {
	_, acc, err := s.resolve(q.TaxID, q.AccountNumber)
	if err != nil {
		s.logger.Debug("Statement failed", "taxID", q.TaxID, "account", q.AccountNumber, "error", err)
		return account.Statement{}, err
	}
	if acc.OwnerID() != q.TaxID {
		return account.Statement{}, account.ErrNotOwner
	}
	return acc.Statement(), nil
}

// List returns every account in opening order.
func (s *Service) List(_ context.Context) []*account.Account {
	return s.registry.Accounts()
}

func (s *Service) transact(
	ctx context.Context,
	taxID string,
	number int,
	kind account.Kind,
	raw string,
) (money.Money, error) {
	logger := s.logger.With("taxID", taxID, "account", number, "kind", kind)
	logger.Info("transaction started", "amount", raw)

	owner, acc, err := s.resolve(taxID, number)
	if err != nil {
		logger.Warn("transaction failed: lookup", "error", err)
		return money.Money{}, err
	}
	amount, err := money.Parse(raw, acc.Balance().Currency())
	if err != nil {
		logger.Warn("transaction failed: amount", "error", err)
		return money.Money{}, fmt.Errorf("%w: %w", account.ErrInvalidAmount, err)
	}

	var tx account.Transaction
	switch kind {
	case account.KindDeposit:
		tx = account.NewDeposit(amount)
	case account.KindWithdrawal:
		tx = account.NewWithdrawal(amount)
	default:
		return money.Money{}, fmt.Errorf("%w: %s", account.ErrUnknownKind, kind)
	}

	err = owner.Realize(acc, tx)
	s.publish(ctx, logger, events.NewTransactionEvent(taxID, acc, tx, err))
	if err != nil {
		logger.Warn("transaction rejected", "error", err)
		return money.Money{}, err
	}
	balance := acc.Balance()
	logger.Info("transaction applied", "balance", balance.String())
	return balance, nil
}

// resolve looks up the customer and the account independently; ownership is
// checked by the caller.
func (s *Service) resolve(taxID string, number int) (*customer.Customer, *account.Account, error) {
	c, err := s.registry.FindCustomer(taxID)
	if err != nil {
		return nil, nil, err
	}
	acc, err := s.registry.FindAccount(number)
	if err != nil {
		return nil, nil, err
	}
	return c, acc, nil
}

func (s *Service) publish(ctx context.Context, logger *slog.Logger, e events.Event) {
	if err := s.bus.Publish(ctx, e); err != nil {
		logger.Error("publish failed", "event_type", e.Type(), "error", err)
	}
}

// IsRuleViolation reports whether err is a rejection by an account rule, as
// opposed to a lookup or input problem.
func IsRuleViolation(err error) bool {
	for _, target := range []error{
		account.ErrInsufficientFunds,
		account.ErrWithdrawalLimitExceeded,
		account.ErrDailyWithdrawalLimitExceeded,
		account.ErrDailyTransactionLimitExceeded,
		account.ErrNotOwner,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
