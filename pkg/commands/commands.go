// Package commands contains command DTOs for service and handler orchestration.
package commands

// RegisterCustomerCommand is a DTO for customer registration.
type RegisterCustomerCommand struct {
	TaxID        string
	Name         string
	BirthDate    string
	Street       string
	Neighborhood string
	CityState    string
}

// OpenAccountCommand is a DTO for opening a checking account.
type OpenAccountCommand struct {
	TaxID string
}

// DepositCommand is a DTO for deposit operations (command pattern).
// Amount is the decimal text as typed, e.g. "100.50" or "100,50".
type DepositCommand struct {
	TaxID         string
	AccountNumber int
	Amount        string
}

// WithdrawCommand is a DTO for withdraw operations (command pattern).
type WithdrawCommand struct {
	TaxID         string
	AccountNumber int
	Amount        string
}

// StatementQuery selects the account whose statement is read.
type StatementQuery struct {
	TaxID         string
	AccountNumber int
}
