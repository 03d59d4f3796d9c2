package domain

import (
	"fmt"
	"math/rand/v2"
	"time"
)

// Depositor is one bookkeeping record. The assigned rule is fixed at
// creation time and shared with every depositor using the same strategy.
type Depositor struct {
	ID        string
	Name      string
	Balance   float64
	Rule      DepositRule
	CreatedAt time.Time
}

func NewDepositor(name string, rule DepositRule) *Depositor {
	return &Depositor{
		ID:   GenerateDepositorID(),
		Name: name,
		Rule: rule,
	}
}

// Deposit credits the rule-transformed amount to the stored balance.
// The raw amount is never added directly.
func (d *Depositor) Deposit(amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}

	credited, err := d.Rule.Apply(amount)
	if err != nil {
		return err
	}

	d.Balance += credited
	return nil
}

// CurrentDeposit re-applies the rule to the stored balance. Amounts
// credited by Deposit already passed through the rule once, so a fixed
// bonus compounds into the displayed total.
func (d *Depositor) CurrentDeposit() (float64, error) {
	return d.Rule.Apply(d.Balance)
}

// GenerateDepositorID draws a uniform six-digit number and prefixes it
// with "PZ". Existing records are never consulted, so two depositors may
// end up with the same ID.
func GenerateDepositorID() string {
	return fmt.Sprintf("PZ%d", 100000+rand.IntN(900000))
}
