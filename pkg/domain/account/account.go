package account

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/money"
	"github.com/google/uuid"
)

// DefaultBranch is the branch code shared by every account.
const DefaultBranch = "0001"

// Clock returns the current instant.
type Clock func() time.Time

// Account owns a balance and the log of transactions applied to it.
// It acts as an aggregate root, ensuring all state changes are consistent and valid.
//
// Invariants:
//   - An account always has an owner (the owning customer's tax id) and a number >= 1.
//   - The balance never goes negative as the result of an applied transaction.
//   - Every balance mutation is paired with exactly one log append, or neither happens.
//   - All operations are serialized by a mutex.
type Account struct {
	mu sync.Mutex

	number    int
	branch    string
	ownerID   string
	balance   money.Money
	log       Log
	policy    WithdrawalPolicy
	maxDaily  int
	clock     Clock
	location  *time.Location
	createdAt time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	number   int
	branch   string
	ownerID  string
	currency money.Currency
	policy   WithdrawalPolicy
	maxDaily int
	clock    Clock
	location *time.Location
}

// New creates a new Builder with sensible defaults: the default branch,
// the default currency, no withdrawal rules and the system clock in UTC.
func New() *Builder {
	return &Builder{
		branch:   DefaultBranch,
		currency: money.DefaultCurrency,
		policy:   Unrestricted{},
		clock:    time.Now,
		location: time.UTC,
	}
}

// WithNumber sets the account number. This is a mandatory field.
func (b *Builder) WithNumber(n int) *Builder {
	b.number = n
	return b
}

// WithBranch overrides the branch code.
func (b *Builder) WithBranch(branch string) *Builder {
	b.branch = branch
	return b
}

// WithOwner sets the owning customer's tax id. This is a mandatory field.
func (b *Builder) WithOwner(taxID string) *Builder {
	b.ownerID = taxID
	return b
}

// WithCurrency sets the currency the account books in.
func (b *Builder) WithCurrency(c money.Currency) *Builder {
	b.currency = c
	return b
}

// WithPolicy sets the withdrawal rules.
func (b *Builder) WithPolicy(p WithdrawalPolicy) *Builder {
	b.policy = p
	return b
}

// WithDailyTransactionLimit caps the number of transactions of any kind per
// accounting day. Zero disables the ceiling.
func (b *Builder) WithDailyTransactionLimit(n int) *Builder {
	b.maxDaily = n
	return b
}

// WithClock replaces the time source, mostly for tests.
func (b *Builder) WithClock(c Clock) *Builder {
	b.clock = c
	return b
}

// WithLocation sets the reference timezone that defines the accounting day.
func (b *Builder) WithLocation(loc *time.Location) *Builder {
	b.location = loc
	return b
}

// Build validates the invariants and returns the new Account.
func (b *Builder) Build() (*Account, error) {
	if b.number < 1 {
		return nil, errors.New("account number must be >= 1")
	}
	if b.ownerID == "" {
		return nil, errors.New("owner is required")
	}
	if b.maxDaily < 0 {
		return nil, errors.New("daily transaction limit cannot be negative")
	}
	balance, err := money.New(0, b.currency)
	if err != nil {
		return nil, err
	}
	policy := b.policy
	if policy == nil {
		policy = Unrestricted{}
	}
	clock := b.clock
	if clock == nil {
		clock = time.Now
	}
	loc := b.location
	if loc == nil {
		loc = time.UTC
	}
	return &Account{
		number:    b.number,
		branch:    b.branch,
		ownerID:   b.ownerID,
		balance:   balance,
		policy:    policy,
		maxDaily:  b.maxDaily,
		clock:     clock,
		location:  loc,
		createdAt: clock().UTC(),
	}, nil
}

// Number returns the account number.
func (a *Account) Number() int { return a.number }

// Branch returns the branch code.
func (a *Account) Branch() string { return a.branch }

// OwnerID returns the tax id of the owning customer.
func (a *Account) OwnerID() string { return a.ownerID }

// CreatedAt returns when the account was opened.
func (a *Account) CreatedAt() time.Time { return a.createdAt }

// Policy returns the withdrawal rules of the account.
func (a *Account) Policy() WithdrawalPolicy { return a.policy }

// Balance returns the current balance.
func (a *Account) Balance() money.Money {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.balance
}

// Log returns a copy of the account's transaction log.
func (a *Account) Log() *Log {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.log.clone()
}

// Apply applies t to the account. It is the same as t.Apply(a).
func (a *Account) Apply(t Transaction) error {
	return t.Apply(a)
}

// Deposit credits amount to the balance.
func (a *Account) Deposit(amount money.Money) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	now, err := a.precheck(amount)
	if err != nil {
		return err
	}
	next, err := a.balance.Add(amount)
	if err != nil {
		return err
	}
	a.commit(KindDeposit, amount, next, now)
	return nil
}

// Withdraw debits amount from the balance. Rules are checked in order:
// amount validity, daily transaction ceiling, withdrawal policy, balance.
func (a *Account) Withdraw(amount money.Money) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	now, err := a.precheck(amount)
	if err != nil {
		return err
	}
	if err := a.policy.Check(amount, &a.log, now); err != nil {
		return err
	}
	short, err := a.balance.LessThan(amount)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCurrencyMismatch, err)
	}
	if short {
		return fmt.Errorf("%w: balance %s, requested %s", ErrInsufficientFunds, a.balance, amount)
	}
	next, err := a.balance.Subtract(amount)
	if err != nil {
		return err
	}
	a.commit(KindWithdrawal, amount, next, now)
	return nil
}

// precheck runs the account-level rules shared by every kind and returns the
// current instant in the reference timezone. Caller holds a.mu.
func (a *Account) precheck(amount money.Money) (time.Time, error) {
	if !amount.IsPositive() {
		return time.Time{}, ErrInvalidAmount
	}
	if !a.balance.IsSameCurrency(amount) {
		return time.Time{}, ErrCurrencyMismatch
	}
	now := a.clock().In(a.location)
	if a.maxDaily > 0 {
		if today := a.log.CountWhere(OnDay(now)); today >= a.maxDaily {
			return time.Time{}, fmt.Errorf("%w: %d of %d", ErrDailyTransactionLimitExceeded, today, a.maxDaily)
		}
	}
	return now, nil
}

// commit mutates the balance and appends the log entry together. Caller holds a.mu.
func (a *Account) commit(k Kind, amount, next money.Money, now time.Time) {
	a.balance = next
	a.log.append(Entry{
		ID:        uuid.New(),
		Kind:      k,
		Amount:    amount,
		Timestamp: now.UTC(),
	})
}

// Statement is a read-only projection of an account's ledger.
type Statement struct {
	Branch  string
	Number  int
	OwnerID string
	Entries []Entry
	Balance money.Money
}

// Statement returns a consistent snapshot of the log and balance.
func (a *Account) Statement() Statement {
	a.mu.Lock()
	defer a.mu.Unlock()
	return Statement{
		Branch:  a.branch,
		Number:  a.number,
		OwnerID: a.ownerID,
		Entries: a.log.Entries(),
		Balance: a.balance,
	}
}
