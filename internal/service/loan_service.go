package service

import (
	"context"
	"fmt"
	"math"

	"github.com/sirupsen/logrus"

	"loan-service/configs"
	"loan-service/internal/models"
)

const (
	// balanceEpsilon is the two-cent-scale tolerance below which a balance
	// counts as paid off, absorbing floating-point residue.
	balanceEpsilon = 0.005

	// extraSafetyMonths bounds how far past the nominal term the loop may run
	// to accommodate rounding drift.
	extraSafetyMonths = 600

	// absoluteMaxMonths (300 years) is an unconditional fail-safe against a
	// non-terminating loop.
	absoluteMaxMonths = 3600
)

// LoanSvc is an implementation of the service.LoanService interface
type LoanSvc struct {
	logger *logrus.Logger
	config *configs.Config
}

// NewLoanService creates a new LoanSvc
func NewLoanService(deps Dependencies) *LoanSvc {
	return &LoanSvc{
		logger: deps.Logger,
		config: deps.Config,
	}
}

// Calculate computes the full amortization schedule for a fixed-rate loan.
// The scheduled payment is the annuity payment plus any extra payment, held
// constant for every month except possibly the last, where it is clamped so
// the balance lands exactly on zero.
func (s *LoanSvc) Calculate(ctx context.Context, input *models.LoanInput) (*models.LoanResult, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	monthlyRate := input.MonthlyRate()
	basePayment := models.CalculateMonthlyPayment(input.Principal, input.AnnualRate, input.TermMonths)
	payment := basePayment + input.ExtraPayment

	schedule, totalInterest, err := amortize(input.Principal, monthlyRate, payment, input.TermMonths+extraSafetyMonths)
	if err != nil {
		return nil, err
	}

	// Totals sum the already-rounded per-entry payments
	totalPayment := 0.0
	for _, entry := range schedule {
		totalPayment += entry.Payment
	}

	result := &models.LoanResult{
		MonthlyPayment: models.RoundToTwoDecimal(payment),
		TotalPayment:   models.RoundToTwoDecimal(totalPayment),
		TotalInterest:  models.RoundToTwoDecimal(totalInterest),
		PayoffMonths:   len(schedule),
		APR:            models.RoundToThreeDecimal(input.AnnualRate),
		Schedule:       schedule,
	}

	s.logger.Debugf("Loan calculated: principal %.2f at %.3f%% over %d months, payoff in %d months",
		input.Principal, input.AnnualRate, input.TermMonths, result.PayoffMonths)

	return result, nil
}

// amortize runs the balance-reduction loop. Entries accumulate in a local
// slice that is only handed back on success, so a mid-loop failure never
// leaks a partial schedule.
func amortize(principal, monthlyRate, payment float64, safetyCap int) ([]models.ScheduleEntry, float64, error) {
	balance := principal
	totalInterest := 0.0
	month := 0

	var schedule []models.ScheduleEntry

	for balance > balanceEpsilon && month < safetyCap {
		month++

		// Interest accrues on the balance before this month's reduction
		interestComponent := balance * monthlyRate
		principalComponent := payment - interestComponent

		// A payment that cannot outpace accruing interest would loop forever
		if principalComponent <= 0 && monthlyRate > 0 {
			return nil, 0, fmt.Errorf("%w: payment %.2f is below monthly interest %.2f",
				models.ErrNonAmortizingPayment, payment, interestComponent)
		}

		actualPayment := payment
		if principalComponent > balance {
			// Final month: pay off exactly the remaining balance
			principalComponent = balance
			actualPayment = interestComponent + principalComponent
		}

		balance -= principalComponent
		totalInterest += interestComponent

		schedule = append(schedule, models.ScheduleEntry{
			Month:     month,
			Payment:   models.RoundToTwoDecimal(actualPayment),
			Interest:  models.RoundToTwoDecimal(interestComponent),
			Principal: models.RoundToTwoDecimal(principalComponent),
			Balance:   models.RoundToTwoDecimal(math.Max(balance, 0)),
		})

		if month > absoluteMaxMonths {
			break
		}
	}

	return schedule, totalInterest, nil
}
