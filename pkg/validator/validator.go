package validator

import (
	"errors"
	"strconv"
	"unicode"
)

var (
	ErrNotAlphabetic  = errors.New("name must contain letters only")
	ErrNotNumeric     = errors.New("not a numeric value")
	ErrNegativeAmount = errors.New("amount cannot be negative")
)

// IsAlphabeticName reports whether every rune in s is a letter. An empty
// string passes: there is nothing to reject.
func IsAlphabeticName(s string) bool {
	for _, r := range s {
		if !unicode.IsLetter(r) {
			return false
		}
	}
	return true
}

// ParseAmount parses s as a decimal number. The whole string must be
// consumable; trailing characters make it non-numeric. Negative values
// parse here and are rejected by ValidateNonNegative afterward.
func ParseAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, ErrNotNumeric
	}
	return amount, nil
}

func ValidateNonNegative(amount float64) error {
	if amount < 0 {
		return ErrNegativeAmount
	}
	return nil
}
