// Package menu implements the interactive console surface: a five-choice
// loop that gathers validated input and dispatches into the ledger. It
// owns no bookkeeping state of its own; it only reads, validates, calls
// and prints.
package menu

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"deposit_book/internal/domain"
	"deposit_book/internal/ledger"
	"deposit_book/pkg/validator"
)

// RuleSet holds the two selectable rule values. Each is shared across
// every depositor created with the same strategy choice.
type RuleSet struct {
	Normal domain.DepositRule
	Fixed  domain.DepositRule
}

// Menu drives the console loop. Prompts and results go to out, complaints
// and failures to errOut.
type Menu struct {
	ledger *ledger.Ledger
	rules  RuleSet
	in     *bufio.Scanner
	out    io.Writer
	errOut io.Writer
}

func New(l *ledger.Ledger, rules RuleSet, in io.Reader, out, errOut io.Writer) *Menu {
	return &Menu{
		ledger: l,
		rules:  rules,
		in:     bufio.NewScanner(in),
		out:    out,
		errOut: errOut,
	}
}

// Run blocks until the user picks Exit or the input stream ends.
func (m *Menu) Run(ctx context.Context) error {
	for {
		m.printf("\nSelect an option:\n")
		m.printf("1. Add Depositor\n")
		m.printf("2. List Depositors\n")
		m.printf("3. View Total Deposits\n")
		m.printf("4. Deposit Amount\n")
		m.printf("5. Exit\n")
		m.printf("Enter your choice: ")

		choice, ok := m.readLine()
		if !ok {
			return m.in.Err()
		}

		switch choice {
		case "1":
			if !m.addDepositor(ctx) {
				return m.in.Err()
			}
		case "2":
			m.listDepositors(ctx)
		case "3":
			m.viewTotalDeposits(ctx)
		case "4":
			if !m.depositAmount(ctx) {
				return m.in.Err()
			}
		case "5":
			m.printf("Exiting program.\n")
			return nil
		default:
			m.errorf("Invalid choice. Please try again.\n")
		}
	}
}

// addDepositor collects a name and a strategy choice, each behind its own
// retry loop, then registers the depositor. Returns false when the input
// stream ends mid-prompt.
func (m *Menu) addDepositor(ctx context.Context) bool {
	name, ok := m.promptName()
	if !ok {
		return false
	}

	rule, ok := m.promptRule()
	if !ok {
		return false
	}

	id, err := m.ledger.AddDepositor(ctx, name, rule)
	if err != nil {
		m.errorf("Error: %v\n", err)
		return true
	}

	m.printf("Depositor added successfully! User ID: %s\n", id)
	return true
}

func (m *Menu) listDepositors(ctx context.Context) {
	entries, err := m.ledger.ListDepositors(ctx)
	if err != nil {
		m.errorf("Error: %v\n", err)
		return
	}

	if len(entries) == 0 {
		m.printf("No depositors were added.\n")
		return
	}

	m.printf("\nList of depositors:\n")
	for _, e := range entries {
		m.printf("Depositor ID: %s, Name: %s, Deposit Amount: %g\n", e.ID, e.Name, e.Deposit)
	}
}

func (m *Menu) viewTotalDeposits(ctx context.Context) {
	total, err := m.ledger.TotalDeposits(ctx)
	if err != nil {
		m.errorf("Error: %v\n", err)
		return
	}

	if total == 0 {
		m.printf("No deposits have been made yet.\n")
		return
	}

	m.printf("Total deposits: %g\n", total)
}

// depositAmount reads a depositor ID and a validated amount, then credits
// the account. A found account whose rule rejects the amount is still a
// found account: the failure is reported and the loop continues.
func (m *Menu) depositAmount(ctx context.Context) bool {
	m.printf("Enter depositor ID to deposit to: ")
	id, ok := m.readLine()
	if !ok {
		return false
	}

	amount, ok := m.promptAmount()
	if !ok {
		return false
	}

	found, err := m.ledger.DepositToAccount(ctx, id, amount)
	if !found {
		m.errorf("No depositor found with the ID: %s\n", id)
		return true
	}
	if err != nil {
		m.errorf("Error: %v\n", err)
		return true
	}

	m.printf("Deposit of %g made to account ID: %s\n", amount, id)
	return true
}

func (m *Menu) promptName() (string, bool) {
	for {
		m.printf("Enter depositor name (letters only): ")
		name, ok := m.readLine()
		if !ok {
			return "", false
		}

		if validator.IsAlphabeticName(name) {
			return name, true
		}
		m.errorf("Invalid name. Only letters are allowed. Please try again.\n")
	}
}

func (m *Menu) promptRule() (domain.DepositRule, bool) {
	for {
		m.printf("Choose deposit strategy (1: Normal, 2: Fixed): ")
		choice, ok := m.readLine()
		if !ok {
			return domain.DepositRule{}, false
		}

		switch choice {
		case "1":
			return m.rules.Normal, true
		case "2":
			return m.rules.Fixed, true
		}
		m.errorf("Invalid strategy choice. Please try again.\n")
	}
}

func (m *Menu) promptAmount() (float64, bool) {
	for {
		m.printf("Enter deposit amount: ")
		line, ok := m.readLine()
		if !ok {
			return 0, false
		}

		amount, err := validator.ParseAmount(line)
		if err != nil {
			m.errorf("Invalid amount. Please enter a numeric value.\n")
			continue
		}
		if err := validator.ValidateNonNegative(amount); err != nil {
			m.errorf("Amount cannot be negative. Please try again.\n")
			continue
		}

		return amount, true
	}
}

func (m *Menu) readLine() (string, bool) {
	if !m.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(m.in.Text()), true
}

func (m *Menu) printf(format string, args ...any) {
	fmt.Fprintf(m.out, format, args...)
}

func (m *Menu) errorf(format string, args ...any) {
	fmt.Fprintf(m.errOut, format, args...)
}
