package account

import (
	"fmt"

	"github.com/amirasaad/ledger/pkg/money"
)

// Kind tags a transaction. The set of kinds is closed.
type Kind string

const (
	KindDeposit    Kind = "deposit"
	KindWithdrawal Kind = "withdrawal"
)

// String returns the kind tag.
func (k Kind) String() string { return string(k) }

// Transaction is an immutable request to change an account balance.
// It carries no reference to an account; it is applied to one.
type Transaction struct {
	kind   Kind
	amount money.Money
}

// NewDeposit builds a deposit transaction. Amount validity is checked when
// the transaction is applied, so construction never fails.
func NewDeposit(amount money.Money) Transaction {
	return Transaction{kind: KindDeposit, amount: amount}
}

// NewWithdrawal builds a withdrawal transaction.
func NewWithdrawal(amount money.Money) Transaction {
	return Transaction{kind: KindWithdrawal, amount: amount}
}

// Kind returns the transaction's tag.
func (t Transaction) Kind() Kind { return t.kind }

// Amount returns the transaction's amount.
func (t Transaction) Amount() money.Money { return t.amount }

// Apply applies the transaction to acc. On success exactly one entry is
// appended to the account log; on failure the account is left untouched.
func (t Transaction) Apply(acc *Account) error {
	if acc == nil {
		return ErrNilAccount
	}
	switch t.kind {
	case KindDeposit:
		return acc.Deposit(t.amount)
	case KindWithdrawal:
		return acc.Withdraw(t.amount)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownKind, t.kind)
	}
}

// String renders the transaction for logs.
func (t Transaction) String() string {
	return fmt.Sprintf("%s %s", t.kind, t.amount)
}

// Applied reports whether an Apply result means the effect took place.
func Applied(err error) bool { return err == nil }
