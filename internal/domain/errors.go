package domain

import "errors"

var (
	ErrNegativeAmount = errors.New("deposit amount cannot be negative")
	ErrAmountTooLarge = errors.New("the maximum deposit amount for the fixed account is 1,000,000, please deposit less")
)
