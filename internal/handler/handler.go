package handler

import (
	"github.com/sirupsen/logrus"

	"loan-service/configs"
	"loan-service/internal/service"
)

// Dependencies contains handler dependencies
type Dependencies struct {
	Services *service.Service
	Logger   *logrus.Logger
	Config   *configs.Config
}

// Handler contains all HTTP handlers for the application
type Handler struct {
	Loan   *LoanHandler
	Status *StatusHandler
}

// NewHandler creates a new Handler with all subhandlers
func NewHandler(deps Dependencies) *Handler {
	return &Handler{
		Loan:   NewLoanHandler(deps.Services.Loan, deps.Logger, deps.Config),
		Status: NewStatusHandler(deps.Logger, deps.Config),
	}
}
