package models

import (
	"fmt"
	"math"
)

// LoanInput represents a loan calculation request
type LoanInput struct {
	Principal    float64 `json:"principal"`
	AnnualRate   float64 `json:"annual_rate"`
	TermMonths   int     `json:"term_months"`
	ExtraPayment float64 `json:"extra_payment"`
}

// ScheduleEntry represents one month of an amortization schedule
type ScheduleEntry struct {
	Month     int     `json:"month"`
	Payment   float64 `json:"payment"`
	Interest  float64 `json:"interest"`
	Principal float64 `json:"principal"`
	Balance   float64 `json:"balance"`
}

// LoanResult represents the computed amortization outcome
type LoanResult struct {
	MonthlyPayment float64         `json:"monthly_payment"`
	TotalPayment   float64         `json:"total_payment"`
	TotalInterest  float64         `json:"total_interest"`
	PayoffMonths   int             `json:"payoff_months"`
	APR            float64         `json:"apr"`
	Schedule       []ScheduleEntry `json:"schedule,omitempty"`
}

// Validate validates loan request data
func (l *LoanInput) Validate() error {
	if l.Principal <= 0 {
		return fmt.Errorf("%w: principal must be positive", ErrInvalidInput)
	}

	if l.TermMonths <= 0 {
		return fmt.Errorf("%w: term must be positive", ErrInvalidInput)
	}

	if l.AnnualRate < 0 {
		return fmt.Errorf("%w: interest rate cannot be negative", ErrInvalidInput)
	}

	if l.ExtraPayment < 0 {
		return fmt.Errorf("%w: extra payment cannot be negative", ErrInvalidInput)
	}

	return nil
}

// MonthlyRate converts the annual percentage rate to a monthly decimal fraction
func (l *LoanInput) MonthlyRate() float64 {
	return l.AnnualRate / 100 / 12
}

// CalculateMonthlyPayment calculates the monthly payment for an annuity loan
func CalculateMonthlyPayment(principal float64, annualInterestRate float64, termMonths int) float64 {
	// Convert annual interest rate to monthly and from percentage to decimal
	monthlyInterestRate := annualInterestRate / 100 / 12

	// Straight-line when the loan carries no interest
	if monthlyInterestRate == 0 {
		return principal / float64(termMonths)
	}

	return principal * monthlyInterestRate * math.Pow(1+monthlyInterestRate, float64(termMonths)) /
		(math.Pow(1+monthlyInterestRate, float64(termMonths)) - 1)
}

// RoundToTwoDecimal rounds a monetary value to two decimal places
func RoundToTwoDecimal(value float64) float64 {
	return math.Round(value*100) / 100
}

// RoundToThreeDecimal rounds a rate to three decimal places for display
func RoundToThreeDecimal(value float64) float64 {
	return math.Round(value*1000) / 1000
}
