package service

import (
	"context"

	"github.com/sirupsen/logrus"

	"loan-service/configs"
	"loan-service/internal/models"
)

// LoanService defines methods for the amortization engine
type LoanService interface {
	Calculate(ctx context.Context, input *models.LoanInput) (*models.LoanResult, error)
}

// Dependencies contains dependencies for services
type Dependencies struct {
	Logger *logrus.Logger
	Config *configs.Config
}

// Service is a composition of all services
type Service struct {
	Loan LoanService
}

// NewService creates a new service with all sub-services
func NewService(deps Dependencies) *Service {
	return &Service{
		Loan: NewLoanService(deps),
	}
}
