package cli

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/domain/account"
	"github.com/amirasaad/ledger/pkg/domain/customer"
	"github.com/amirasaad/ledger/pkg/money"
	"github.com/fatih/color"
)

// TimestampLayout is how log entries are printed (dd/mm/yyyy HH:MM:SS).
const TimestampLayout = "02/01/2006 15:04:05"

type palette struct {
	success  *color.Color
	rejected *color.Color
	failure  *color.Color
	info     *color.Color
}

func newPalette(enabled bool) palette {
	p := palette{
		success:  color.New(color.FgGreen),
		rejected: color.New(color.FgRed, color.Bold),
		failure:  color.New(color.FgYellow),
		info:     color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.success, p.rejected, p.failure, p.info} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

var kindLabels = map[account.Kind]string{
	account.KindDeposit:    "Deposit",
	account.KindWithdrawal: "Withdrawal",
}

// FormatEntry renders one log entry in loc.
func FormatEntry(e account.Entry, loc *time.Location) string {
	label, ok := kindLabels[e.Kind]
	if !ok {
		label = string(e.Kind)
	}
	return fmt.Sprintf("[%s] %s: %s", e.Timestamp.In(loc).Format(TimestampLayout), label, e.Amount.Format())
}

// FormatStatement renders the statement block printed by the menu.
func FormatStatement(st account.Statement, loc *time.Location) string {
	var b strings.Builder
	b.WriteString("\n================ STATEMENT ================\n")
	fmt.Fprintf(&b, "Branch: %s  Account: %d\n", st.Branch, st.Number)
	if len(st.Entries) == 0 {
		b.WriteString("No transactions recorded.\n")
	}
	for _, e := range st.Entries {
		b.WriteString(FormatEntry(e, loc))
		b.WriteByte('\n')
	}
	fmt.Fprintf(&b, "\nBalance: %s\n", st.Balance.Format())
	b.WriteString("===========================================\n")
	return b.String()
}

// FormatAccountLine renders one row of the account listing.
func FormatAccountLine(branch string, number int, holder string) string {
	return fmt.Sprintf("Branch: %s\tAccount: %d\tHolder: %s\n", branch, number, holder)
}

var descriptions = []struct {
	target error
	text   string
}{
	{account.ErrInsufficientFunds, "insufficient funds."},
	{account.ErrWithdrawalLimitExceeded, "amount exceeds the per-withdrawal limit."},
	{account.ErrDailyWithdrawalLimitExceeded, "daily withdrawal limit reached."},
	{account.ErrDailyTransactionLimitExceeded, "daily transaction limit reached."},
	{money.ErrTooManyDecimals, "amount has more than two decimal places."},
	{account.ErrInvalidAmount, "the amount must be a positive number."},
	{account.ErrNotOwner, "the account does not belong to this customer."},
	{account.ErrAccountNotFound, "account not found."},
	{customer.ErrMalformedTaxID, "the tax id must contain exactly 11 digits."},
	{customer.ErrDuplicateTaxID, "a customer with this tax id already exists."},
	{customer.ErrCustomerNotFound, "customer not found."},
	{customer.ErrInvalidRegistration, "invalid registration data."},
}

// Describe turns a service error into the message shown to the user.
func Describe(err error) string {
	for _, d := range descriptions {
		if errors.Is(err, d.target) {
			return d.text
		}
	}
	return err.Error()
}
