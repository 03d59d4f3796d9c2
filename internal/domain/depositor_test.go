package domain

import (
	"errors"
	"regexp"
	"testing"
)

func TestDepositor_Deposit_NegativeAmount(t *testing.T) {
	d := NewDepositor("Alice", NormalRule())

	err := d.Deposit(-5)

	if !errors.Is(err, ErrNegativeAmount) {
		t.Fatalf("expected ErrNegativeAmount, got %v", err)
	}
	if d.Balance != 0 {
		t.Errorf("expected balance unchanged, got %g", d.Balance)
	}
}

func TestDepositor_Deposit_NormalRule(t *testing.T) {
	d := NewDepositor("Alice", NormalRule())

	if err := d.Deposit(75); err != nil {
		t.Fatalf("unexpected error on Deposit: %v", err)
	}

	if d.Balance != 75 {
		t.Errorf("expected balance 75, got %g", d.Balance)
	}
	deposit, err := d.CurrentDeposit()
	if err != nil {
		t.Fatalf("unexpected error on CurrentDeposit: %v", err)
	}
	if deposit != 75 {
		t.Errorf("expected deposit 75, got %g", deposit)
	}
}

// A fixed-rule deposit passes through the rule once when credited and
// again when displayed: deposit 50 stores 150 and shows 250.
func TestDepositor_Deposit_FixedRuleCompounds(t *testing.T) {
	d := NewDepositor("Bob", FixedRule(100, 1_000_000))

	if err := d.Deposit(50); err != nil {
		t.Fatalf("unexpected error on Deposit: %v", err)
	}

	if d.Balance != 150 {
		t.Errorf("expected balance 150, got %g", d.Balance)
	}
	deposit, err := d.CurrentDeposit()
	if err != nil {
		t.Fatalf("unexpected error on CurrentDeposit: %v", err)
	}
	if deposit != 250 {
		t.Errorf("expected deposit 250, got %g", deposit)
	}
}

func TestDepositor_Deposit_FixedRuleTooLarge(t *testing.T) {
	d := NewDepositor("Bob", FixedRule(100, 1_000_000))

	err := d.Deposit(2_000_000)

	if !errors.Is(err, ErrAmountTooLarge) {
		t.Fatalf("expected ErrAmountTooLarge, got %v", err)
	}
	if d.Balance != 0 {
		t.Errorf("expected balance unchanged, got %g", d.Balance)
	}
}

func TestGenerateDepositorID_Format(t *testing.T) {
	format := regexp.MustCompile(`^PZ[0-9]{6}$`)

	for i := 0; i < 100; i++ {
		id := GenerateDepositorID()
		if !format.MatchString(id) {
			t.Fatalf("expected PZ followed by six digits, got %q", id)
		}
	}
}
