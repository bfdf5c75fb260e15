package events

import (
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/google/uuid"
)

// Meta carries the fields shared by every event.
type Meta struct {
	ID        uuid.UUID
	Timestamp time.Time
}

// NewMeta stamps a fresh event id and the current UTC time.
func NewMeta() Meta {
	return Meta{ID: uuid.New(), Timestamp: time.Now().UTC()}
}

// CustomerRegistered is emitted after a customer is added to the registry.
type CustomerRegistered struct {
	Meta
	TaxID string
	Name  string
}

func (e CustomerRegistered) Type() string { return EventTypeCustomerRegistered.String() }

// AccountOpened is emitted after a checking account is opened and linked.
type AccountOpened struct {
	Meta
	TaxID         string
	Branch        string
	AccountNumber int
}

func (e AccountOpened) Type() string { return EventTypeAccountOpened.String() }

// TransactionApplied is emitted after a transaction changed an account.
type TransactionApplied struct {
	Meta
	TaxID         string
	AccountNumber int
	Kind          account.Kind
	Amount        money.Money
	Balance       money.Money
}

func (e TransactionApplied) Type() string { return EventTypeTransactionApplied.String() }

// TransactionRejected is emitted when a rule refused a transaction.
// Reason is the error text; Cause keeps the error for errors.Is checks.
type TransactionRejected struct {
	Meta
	TaxID         string
	AccountNumber int
	Kind          account.Kind
	Amount        money.Money
	Reason        string
	Cause         error
}

func (e TransactionRejected) Type() string { return EventTypeTransactionRejected.String() }

// NewTransactionEvent builds the applied or rejected event for the outcome of t.
func NewTransactionEvent(taxID string, acc *account.Account, t account.Transaction, err error) Event {
	if acc == nil {
		return TransactionRejected{
			Meta:   NewMeta(),
			TaxID:  taxID,
			Kind:   t.Kind(),
			Amount: t.Amount(),
			Reason: errText(err),
			Cause:  err,
		}
	}
	if err != nil {
		return TransactionRejected{
			Meta:          NewMeta(),
			TaxID:         taxID,
			AccountNumber: acc.Number(),
			Kind:          t.Kind(),
			Amount:        t.Amount(),
			Reason:        err.Error(),
			Cause:         err,
		}
	}
	return TransactionApplied{
		Meta:          NewMeta(),
		TaxID:         taxID,
		AccountNumber: acc.Number(),
		Kind:          t.Kind(),
		Amount:        t.Amount(),
		Balance:       acc.Balance(),
	}
}

func errText(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}
