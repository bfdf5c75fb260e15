// Package cli is the interactive teller menu on top of the application services.
package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/commands"
	accountsvc "github.com/amirasaad/ledger/pkg/service/account"
	"github.com/fatih/color"
	"golang.org/x/term"
)

const menu = `
================ MENU ================
[1] Deposit
[2] Withdraw
[3] Statement
[4] Register customer
[5] Open checking account
[6] List accounts
[0] Quit
=> `

// CLI reads menu choices from in and writes the results to out.
type CLI struct {
	app     *app.App
	in      *bufio.Scanner
	out     io.Writer
	loc     *time.Location
	palette palette
}

// Option customizes a CLI.
type Option func(*CLI)

// WithLocation sets the timezone statements are printed in.
func WithLocation(loc *time.Location) Option {
	return func(c *CLI) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// WithColor forces colored output on or off.
func WithColor(enabled bool) Option {
	return func(c *CLI) { c.palette = newPalette(enabled) }
}

// New creates a CLI. Color is enabled only when out is a terminal.
func New(a *app.App, in io.Reader, out io.Writer, opts ...Option) *CLI {
	c := &CLI{
		app:     a,
		in:      bufio.NewScanner(in),
		out:     out,
		loc:     time.UTC,
		palette: newPalette(IsTerminal(out)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Run loops over the menu until the user quits, input ends or ctx is done.
func (c *CLI) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		choice, ok := c.prompt(menu)
		if !ok {
			return c.in.Err()
		}
		switch choice {
		case "1":
			c.deposit(ctx)
		case "2":
			c.withdraw(ctx)
		case "3":
			c.statement(ctx)
		case "4":
			c.registerCustomer(ctx)
		case "5":
			c.openAccount(ctx)
		case "6":
			c.listAccounts(ctx)
		case "0", "q":
			c.println(c.palette.info, "Goodbye.")
			return nil
		default:
			c.println(c.palette.failure, "Invalid option, please select one of the menu entries.")
		}
	}
}

// prompt prints label and returns the next trimmed line. It returns false
// when the input is exhausted.
func (c *CLI) prompt(label string) (string, bool) {
	fmt.Fprint(c.out, label)
	if !c.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(c.in.Text()), true
}

// selectAccount asks for the tax id and account number of the operation.
func (c *CLI) selectAccount() (string, int, bool) {
	taxID, ok := c.prompt("Customer tax id (digits only): ")
	if !ok {
		return "", 0, false
	}
	raw, ok := c.prompt("Account number: ")
	if !ok {
		return "", 0, false
	}
	number, err := strconv.Atoi(raw)
	if err != nil || number < 1 {
		c.println(c.palette.failure, "Invalid account number.")
		return "", 0, false
	}
	return taxID, number, true
}

func (c *CLI) deposit(ctx context.Context) {
	taxID, number, ok := c.selectAccount()
	if !ok {
		return
	}
	amount, ok := c.prompt("Deposit amount: ")
	if !ok {
		return
	}
	balance, err := c.app.AccountService.Deposit(ctx, commands.DepositCommand{
		TaxID:         taxID,
		AccountNumber: number,
		Amount:        amount,
	})
	if err != nil {
		c.fail(err)
		return
	}
	c.println(c.palette.success, "Deposit completed. Balance: "+balance.Format())
}

func (c *CLI) withdraw(ctx context.Context) {
	taxID, number, ok := c.selectAccount()
	if !ok {
		return
	}
	amount, ok := c.prompt("Withdrawal amount: ")
	if !ok {
		return
	}
	balance, err := c.app.AccountService.Withdraw(ctx, commands.WithdrawCommand{
		TaxID:         taxID,
		AccountNumber: number,
		Amount:        amount,
	})
	if err != nil {
		c.fail(err)
		return
	}
	c.println(c.palette.success, "Withdrawal completed. Balance: "+balance.Format())
}

func (c *CLI) statement(ctx context.Context) {
	taxID, number, ok := c.selectAccount()
	if !ok {
		return
	}
	st, err := c.app.AccountService.Statement(ctx, commands.StatementQuery{TaxID: taxID, AccountNumber: number})
	if err != nil {
		c.fail(err)
		return
	}
	fmt.Fprint(c.out, FormatStatement(st, c.loc))
}

func (c *CLI) registerCustomer(ctx context.Context) {
	var cmd commands.RegisterCustomerCommand
	fields := []struct {
		label string
		dst   *string
	}{
		{"Tax id (digits only): ", &cmd.TaxID},
		{"Full name: ", &cmd.Name},
		{"Birth date (dd/mm/yyyy): ", &cmd.BirthDate},
		{"Street and number: ", &cmd.Street},
		{"Neighborhood: ", &cmd.Neighborhood},
		{"City/State: ", &cmd.CityState},
	}
	for _, f := range fields {
		v, ok := c.prompt(f.label)
		if !ok {
			return
		}
		*f.dst = v
	}
	cust, err := c.app.CustomerService.Register(ctx, cmd)
	if err != nil {
		c.fail(err)
		return
	}
	c.println(c.palette.success, fmt.Sprintf("Customer %s registered.", cust.Name()))
}

func (c *CLI) openAccount(ctx context.Context) {
	taxID, ok := c.prompt("Customer tax id (digits only): ")
	if !ok {
		return
	}
	acc, err := c.app.AccountService.Open(ctx, commands.OpenAccountCommand{TaxID: taxID})
	if err != nil {
		c.fail(err)
		return
	}
	c.println(c.palette.success, fmt.Sprintf("Account %s/%d opened.", acc.Branch(), acc.Number()))
}

func (c *CLI) listAccounts(ctx context.Context) {
	accounts := c.app.AccountService.List(ctx)
	if len(accounts) == 0 {
		c.println(c.palette.info, "No accounts opened yet.")
		return
	}
	for _, acc := range accounts {
		holder := acc.OwnerID()
		if cust, err := c.app.CustomerService.Lookup(ctx, acc.OwnerID()); err == nil {
			holder = cust.Name()
		}
		fmt.Fprint(c.out, FormatAccountLine(acc.Branch(), acc.Number(), holder))
	}
}

// fail reports err in red when an account rule refused the operation and in
// yellow for lookup or input problems.
func (c *CLI) fail(err error) {
	p := c.palette.failure
	if accountsvc.IsRuleViolation(err) {
		p = c.palette.rejected
	}
	c.println(p, "Operation failed: "+Describe(err))
}

func (c *CLI) println(p *color.Color, msg string) {
	p.Fprintln(c.out, msg) //nolint:errcheck
}
