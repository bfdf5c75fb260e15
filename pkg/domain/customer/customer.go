package customer

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/go-playground/validator/v10"
)

var (
	// ErrMalformedTaxID is returned when a tax id is not exactly 11 digits.
	ErrMalformedTaxID = errors.New("tax id must contain exactly 11 digits")
	// ErrInvalidRegistration is returned when other registration fields are invalid.
	ErrInvalidRegistration = errors.New("invalid registration")
	// ErrDuplicateTaxID is returned when a customer with the same tax id already exists.
	ErrDuplicateTaxID = errors.New("customer already registered")
	// ErrCustomerNotFound is returned when a customer cannot be found.
	ErrCustomerNotFound = errors.New("customer not found")
)

// BirthDateLayout is the layout birth dates are entered in (dd/mm/yyyy).
const BirthDateLayout = "02/01/2006"

var validate = validator.New(validator.WithRequiredStructEnabled())

// Address is the customer's postal address.
type Address struct {
	Street       string `json:"street"`
	Neighborhood string `json:"neighborhood"`
	CityState    string `json:"city_state"`
}

// String joins the non-empty parts, e.g. "Rua A, 10 - Centro - Belo Horizonte/MG".
func (a Address) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{a.Street, a.Neighborhood, a.CityState} {
		if p = strings.TrimSpace(p); p != "" {
			parts = append(parts, p)
		}
	}
	return strings.Join(parts, " - ")
}

// Registration is the data handed over by the registration workflow.
type Registration struct {
	TaxID     string `validate:"required,len=11,number"`
	Name      string `validate:"required"`
	BirthDate string `validate:"omitempty,datetime=02/01/2006"`
	Address   Address
}

// Customer owns zero or more accounts. Identity fields are immutable after
// creation and the account list only grows.
type Customer struct {
	mu sync.RWMutex

	taxID     string
	name      string
	birthDate string
	address   Address
	accounts  []*account.Account
	createdAt time.Time
}

// ValidateTaxID reports whether id is an 11 digit tax id.
func ValidateTaxID(id string) error {
	if err := validate.Var(id, "required,len=11,number"); err != nil {
		return fmt.Errorf("%w: %q", ErrMalformedTaxID, id)
	}
	return nil
}

// New validates the registration and creates a Customer.
func New(r Registration) (*Customer, error) {
	r.TaxID = strings.TrimSpace(r.TaxID)
	r.Name = strings.TrimSpace(r.Name)
	r.BirthDate = strings.TrimSpace(r.BirthDate)

	if err := ValidateTaxID(r.TaxID); err != nil {
		return nil, err
	}
	if err := validate.Struct(r); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			return nil, fmt.Errorf("%w: %s failed on %q", ErrInvalidRegistration, verrs[0].Field(), verrs[0].Tag())
		}
		return nil, fmt.Errorf("%w: %v", ErrInvalidRegistration, err)
	}
	return &Customer{
		taxID:     r.TaxID,
		name:      r.Name,
		birthDate: r.BirthDate,
		address:   r.Address,
		createdAt: time.Now().UTC(),
	}, nil
}

// TaxID returns the customer's unique identifier.
func (c *Customer) TaxID() string { return c.taxID }

// Name returns the display name.
func (c *Customer) Name() string { return c.name }

// BirthDate returns the birth date as entered.
func (c *Customer) BirthDate() string { return c.birthDate }

// Address returns the postal address.
func (c *Customer) Address() Address { return c.address }

// CreatedAt returns the registration instant.
func (c *Customer) CreatedAt() time.Time { return c.createdAt }

// AddAccount appends acc to the owned accounts. The account must name this
// customer as owner; number uniqueness is the registry's concern.
func (c *Customer) AddAccount(acc *account.Account) error {
	if acc == nil {
		return account.ErrNilAccount
	}
	if acc.OwnerID() != c.taxID {
		return account.ErrNotOwner
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.accounts = append(c.accounts, acc)
	return nil
}

// Accounts returns the owned accounts in opening order.
func (c *Customer) Accounts() []*account.Account {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*account.Account, len(c.accounts))
	copy(out, c.accounts)
	return out
}

// Account returns the owned account with the given number.
func (c *Customer) Account(number int) (*account.Account, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	for _, acc := range c.accounts {
		if acc.Number() == number {
			return acc, nil
		}
	}
	return nil, account.ErrAccountNotFound
}

// Realize applies t to acc on behalf of the customer. Accounts owned by
// someone else are rejected with account.ErrNotOwner.
func (c *Customer) Realize(acc *account.Account, t account.Transaction) error {
	if acc == nil {
		return account.ErrNilAccount
	}
	if acc.OwnerID() != c.taxID {
		return account.ErrNotOwner
	}
	return t.Apply(acc)
}
