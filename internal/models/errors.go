package models

import "errors"

// ErrInvalidInput indicates a loan request that fails its basic validity
// constraints (non-positive principal or term, negative rate or extra payment).
var ErrInvalidInput = errors.New("invalid loan input")

// ErrNonAmortizingPayment indicates a scheduled payment that does not exceed
// the interest accruing on the current balance, so the principal would never
// decrease.
var ErrNonAmortizingPayment = errors.New("payment does not cover accruing interest")
