package account

import "errors"

var (
	// ErrInvalidAmount is returned when a transaction amount is zero or negative.
	ErrInvalidAmount = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when a withdrawal exceeds the current balance.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrWithdrawalLimitExceeded is returned when a single withdrawal exceeds the
	// account's per-transaction ceiling.
	ErrWithdrawalLimitExceeded = errors.New("withdrawal exceeds per-transaction limit")

	// ErrDailyWithdrawalLimitExceeded is returned when the number of withdrawals
	// for the accounting day has reached the account's ceiling.
	ErrDailyWithdrawalLimitExceeded = errors.New("daily withdrawal limit exceeded")

	// ErrDailyTransactionLimitExceeded is returned when the number of transactions
	// of any kind for the accounting day has reached the account's ceiling.
	ErrDailyTransactionLimitExceeded = errors.New("daily transaction limit exceeded")

	// ErrCurrencyMismatch is returned when the transaction currency differs from the account currency.
	ErrCurrencyMismatch = errors.New("currency mismatch")

	// ErrNotOwner is returned when a customer attempts to operate an account they do not own.
	ErrNotOwner = errors.New("not owner")

	// ErrNilAccount is returned when a transaction is applied to a nil account.
	ErrNilAccount = errors.New("nil account")

	// ErrUnknownKind is returned when a transaction carries an unsupported kind tag.
	ErrUnknownKind = errors.New("unknown transaction kind")

	// ErrAccountNotFound is returned when an account cannot be found.
	ErrAccountNotFound = errors.New("account not found")
)
