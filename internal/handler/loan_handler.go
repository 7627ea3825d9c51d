package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"loan-service/configs"
	"loan-service/internal/models"
	"loan-service/internal/service"
	"loan-service/pkg/utils"
)

// LoanHandler handles loan calculation HTTP requests
type LoanHandler struct {
	loanService service.LoanService
	logger      *logrus.Logger
	config      *configs.Config
}

// NewLoanHandler creates a new LoanHandler
func NewLoanHandler(loanService service.LoanService, logger *logrus.Logger, config *configs.Config) *LoanHandler {
	return &LoanHandler{
		loanService: loanService,
		logger:      logger,
		config:      config,
	}
}

// Calculate handles amortization schedule computation
func (h *LoanHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	// Parse request body
	var input models.LoanInput
	decoder := json.NewDecoder(r.Body)
	if err := decoder.Decode(&input); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "invalid request payload")
		return
	}
	defer r.Body.Close()

	// Run the engine
	result, err := h.loanService.Calculate(r.Context(), &input)
	if err != nil {
		h.logger.Warnf("Failed to calculate loan: %v", err)

		// Both engine failures are client errors, not server ones
		if errors.Is(err, models.ErrInvalidInput) || errors.Is(err, models.ErrNonAmortizingPayment) {
			utils.RespondWithError(w, http.StatusBadRequest, err.Error())
			return
		}

		utils.RespondWithError(w, http.StatusInternalServerError, "failed to calculate loan")
		return
	}

	// The schedule itself is optional on the wire; totals always ship
	if r.URL.Query().Get("include_schedule") == "false" {
		result.Schedule = nil
	}

	utils.RespondWithJSON(w, http.StatusOK, result)
}
