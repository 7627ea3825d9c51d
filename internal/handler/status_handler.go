package handler

import (
	"net/http"

	"github.com/sirupsen/logrus"

	"loan-service/configs"
	"loan-service/pkg/utils"
)

// StatusHandler handles the greeting and status endpoints
type StatusHandler struct {
	logger *logrus.Logger
	config *configs.Config
}

// NewStatusHandler creates a new StatusHandler
func NewStatusHandler(logger *logrus.Logger, config *configs.Config) *StatusHandler {
	return &StatusHandler{
		logger: logger,
		config: config,
	}
}

// Home handles the root greeting
func (h *StatusHandler) Home(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Hello from the loan service!",
	})
}

// Hello handles the API greeting
func (h *StatusHandler) Hello(w http.ResponseWriter, r *http.Request) {
	utils.RespondWithJSON(w, http.StatusOK, map[string]string{
		"message": "Hello from the backend API!",
	})
}

// Status reports backend health and environment setup. The calculator keeps
// no state, so the database fields only reflect whether the variables are set.
func (h *StatusHandler) Status(w http.ResponseWriter, r *http.Request) {
	response := map[string]interface{}{
		"backend":           "running",
		"database":          "not used (no persistence for calculator)",
		"database_url":      presence(h.config.Database.URL),
		"database_name":     presence(h.config.Database.Name),
		"connection_status": "no database required",
		"collections":       []string{},
	}

	utils.RespondWithJSON(w, http.StatusOK, response)
}

func presence(value string) string {
	if value == "" {
		return "not set"
	}
	return "set"
}
