package account

import (
	"fmt"
	"time"

	"github.com/amirasaad/ledger/pkg/money"
)

// DefaultMaxDailyWithdrawals is the checking account daily withdrawal count.
const DefaultMaxDailyWithdrawals = 3

// DefaultMaxWithdrawal returns the checking account per-withdrawal ceiling, 500.00.
func DefaultMaxWithdrawal() money.Money {
	return money.Must(50000, money.BRLCurrency)
}

// WithdrawalPolicy holds the variant-specific withdrawal rules of an account.
// Check runs after amount validation and before the balance check; now is
// already expressed in the account's reference timezone.
type WithdrawalPolicy interface {
	Check(amount money.Money, log *Log, now time.Time) error
}

// Unrestricted applies no rule beyond the base balance check.
type Unrestricted struct{}

// Check always passes.
func (Unrestricted) Check(money.Money, *Log, time.Time) error { return nil }

// CheckingPolicy caps the amount of a single withdrawal and the number of
// withdrawals per accounting day. A zero MaxDailyWithdrawals disables the
// daily count.
type CheckingPolicy struct {
	MaxAmount           money.Money
	MaxDailyWithdrawals int
}

// NewCheckingPolicy returns the policy with default ceilings.
func NewCheckingPolicy() CheckingPolicy {
	return CheckingPolicy{
		MaxAmount:           DefaultMaxWithdrawal(),
		MaxDailyWithdrawals: DefaultMaxDailyWithdrawals,
	}
}

// Check rejects on the per-transaction ceiling first, then on the daily count.
func (p CheckingPolicy) Check(amount money.Money, log *Log, now time.Time) error {
	over, err := amount.GreaterThan(p.MaxAmount)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrCurrencyMismatch, err)
	}
	if over {
		return fmt.Errorf("%w: %s > %s", ErrWithdrawalLimitExceeded, amount, p.MaxAmount)
	}
	if p.MaxDailyWithdrawals <= 0 {
		return nil
	}
	today := log.CountWhere(And(OfKind(KindWithdrawal), OnDay(now)))
	if today >= p.MaxDailyWithdrawals {
		return fmt.Errorf("%w: %d of %d", ErrDailyWithdrawalLimitExceeded, today, p.MaxDailyWithdrawals)
	}
	return nil
}
