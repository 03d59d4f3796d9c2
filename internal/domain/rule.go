package domain

type RuleKind string

const (
	RuleNormal RuleKind = "normal"
	RuleFixed  RuleKind = "fixed"
)

// DepositRule is a pure calculation applied to every deposited amount.
// Rules are shared immutable values; a depositor never owns or mutates one.
type DepositRule struct {
	Kind    RuleKind
	Bonus   float64
	Ceiling float64
}

// NormalRule credits deposits unchanged and never fails.
func NormalRule() DepositRule {
	return DepositRule{Kind: RuleNormal}
}

// FixedRule adds a fixed bonus to every deposit up to the ceiling and
// rejects anything above it.
func FixedRule(bonus, ceiling float64) DepositRule {
	return DepositRule{Kind: RuleFixed, Bonus: bonus, Ceiling: ceiling}
}

// Apply returns the amount to credit for the given deposit amount.
func (r DepositRule) Apply(amount float64) (float64, error) {
	switch r.Kind {
	case RuleFixed:
		if amount > r.Ceiling {
			return 0, ErrAmountTooLarge
		}
		return amount + r.Bonus, nil
	default:
		return amount, nil
	}
}
