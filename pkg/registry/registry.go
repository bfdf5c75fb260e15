package registry

import (
	"fmt"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/money"
)

// AccountDefaults configures every checking account the registry opens.
type AccountDefaults struct {
	Branch                string
	Currency              money.Currency
	Policy                account.WithdrawalPolicy
	DailyTransactionLimit int
	Location              *time.Location
	Clock                 account.Clock
}

// DefaultAccountDefaults mirrors the checking account defaults in UTC.
func DefaultAccountDefaults() AccountDefaults {
	return AccountDefaults{
		Branch:   account.DefaultBranch,
		Currency: money.DefaultCurrency,
		Policy:   account.NewCheckingPolicy(),
		Location: time.UTC,
		Clock:    time.Now,
	}
}

// Registry is a thread-safe index of customers and accounts.
// Customers are kept in registration order and accounts in opening order.
type Registry struct {
	mu        sync.RWMutex
	defaults  AccountDefaults
	customers map[string]*customer.Customer
	order     []string
	accounts  map[int]*account.Account
	numbers   []int
}

// New creates an empty registry. Zero fields of defaults fall back to
// DefaultAccountDefaults.
func New(defaults AccountDefaults) *Registry {
	base := DefaultAccountDefaults()
	if defaults.Branch == "" {
		defaults.Branch = base.Branch
	}
	if defaults.Currency.Code == "" {
		defaults.Currency = base.Currency
	}
	if defaults.Policy == nil {
		defaults.Policy = base.Policy
	}
	if defaults.Location == nil {
		defaults.Location = base.Location
	}
	if defaults.Clock == nil {
		defaults.Clock = base.Clock
	}
	return &Registry{
		defaults:  defaults,
		customers: make(map[string]*customer.Customer),
		accounts:  make(map[int]*account.Account),
	}
}

// RegisterCustomer validates r and adds the customer. A malformed tax id
// yields customer.ErrMalformedTaxID, a taken one customer.ErrDuplicateTaxID.
func (r *Registry) RegisterCustomer(reg customer.Registration) (*customer.Customer, error) {
	c, err := customer.New(reg)
	if err != nil {
		return nil, err
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.customers[c.TaxID()]; exists {
		return nil, fmt.Errorf("%w: %s", customer.ErrDuplicateTaxID, c.TaxID())
	}
	r.customers[c.TaxID()] = c
	r.order = append(r.order, c.TaxID())
	return c, nil
}

// FindCustomer returns the customer with the given tax id.
func (r *Registry) FindCustomer(taxID string) (*customer.Customer, error) {
	if err := customer.ValidateTaxID(taxID); err != nil {
		return nil, err
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.customers[taxID]
	if !ok {
		return nil, fmt.Errorf("%w: %s", customer.ErrCustomerNotFound, taxID)
	}
	return c, nil
}

// Customers returns every customer in registration order.
func (r *Registry) Customers() []*customer.Customer {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*customer.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.customers[id])
	}
	return out
}

// NextAccountNumber returns the number the next opened account will get.
func (r *Registry) NextAccountNumber() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.numbers) + 1
}

// OpenCheckingAccount opens an account for an already registered customer.
// Number allocation and indexing happen under one lock.
func (r *Registry) OpenCheckingAccount(taxID string) (*account.Account, error) {
	c, err := r.FindCustomer(taxID)
	if err != nil {
		return nil, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	number := len(r.numbers) + 1
	acc, err := account.New().
		WithNumber(number).
		WithBranch(r.defaults.Branch).
		WithOwner(c.TaxID()).
		WithCurrency(r.defaults.Currency).
		WithPolicy(r.defaults.Policy).
		WithDailyTransactionLimit(r.defaults.DailyTransactionLimit).
		WithLocation(r.defaults.Location).
		WithClock(r.defaults.Clock).
		Build()
	if err != nil {
		return nil, err
	}
	if err := c.AddAccount(acc); err != nil {
		return nil, err
	}
	r.accounts[number] = acc
	r.numbers = append(r.numbers, number)
	return acc, nil
}

// FindAccount returns the account with the given number.
func (r *Registry) FindAccount(number int) (*account.Account, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	acc, ok := r.accounts[number]
	if !ok {
		return nil, fmt.Errorf("%w: %d", account.ErrAccountNotFound, number)
	}
	return acc, nil
}

// Accounts returns every account in opening order.
func (r *Registry) Accounts() []*account.Account {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]*account.Account, 0, len(r.numbers))
	for _, n := range r.numbers {
		out = append(out, r.accounts[n])
	}
	return out
}

// Count returns the number of registered customers and opened accounts.
func (r *Registry) Count() (customers, accounts int) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.customers), len(r.accounts)
}
