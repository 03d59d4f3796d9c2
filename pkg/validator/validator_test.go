package validator

import (
	"errors"
	"testing"
)

func TestIsAlphabeticName_AcceptsLetters(t *testing.T) {
	for _, name := range []string{"Alice", "bob", "McGregor", "Åsa"} {
		if !IsAlphabeticName(name) {
			t.Errorf("expected %q to be accepted", name)
		}
	}
}

func TestIsAlphabeticName_RejectsDigitsAndSymbols(t *testing.T) {
	for _, name := range []string{"Al1ce", "bob!", "a b", "PZ123456", "-"} {
		if IsAlphabeticName(name) {
			t.Errorf("expected %q to be rejected", name)
		}
	}
}

// The empty string has nothing to reject and passes. Known gap inherited
// from the loop-over-empty-sequence check; a nameless depositor can be
// created through the prompt.
func TestIsAlphabeticName_EmptyStringPasses(t *testing.T) {
	if !IsAlphabeticName("") {
		t.Error("expected empty string to pass")
	}
}

func TestParseAmount_AcceptsNumbers(t *testing.T) {
	cases := map[string]float64{
		"12":   12,
		"12.5": 12.5,
		"0":    0,
	}
	for input, want := range cases {
		got, err := ParseAmount(input)
		if err != nil {
			t.Fatalf("unexpected error on ParseAmount(%q): %v", input, err)
		}
		if got != want {
			t.Errorf("expected %g for %q, got %g", want, input, got)
		}
	}
}

func TestParseAmount_RejectsTrailingCharacters(t *testing.T) {
	for _, input := range []string{"12a", "abc", "1.2.3", ""} {
		if _, err := ParseAmount(input); !errors.Is(err, ErrNotNumeric) {
			t.Errorf("expected ErrNotNumeric for %q, got %v", input, err)
		}
	}
}

// Negative strings are numeric; rejection happens at the semantic layer.
func TestParseAmount_NegativeParsesButFailsNonNegative(t *testing.T) {
	amount, err := ParseAmount("-5")
	if err != nil {
		t.Fatalf("unexpected error on ParseAmount: %v", err)
	}
	if err := ValidateNonNegative(amount); !errors.Is(err, ErrNegativeAmount) {
		t.Errorf("expected ErrNegativeAmount, got %v", err)
	}
}

func TestValidateNonNegative_AcceptsZero(t *testing.T) {
	if err := ValidateNonNegative(0); err != nil {
		t.Errorf("expected zero to be accepted, got %v", err)
	}
}
