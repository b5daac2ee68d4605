package controllers

import (
	"errors"
	"net/http"

	"creditapp-backend/services"
	"creditapp-backend/utils"

	"github.com/gin-gonic/gin"
)

// handleServiceError translates domain failures into transport responses.
// Ownership mismatches answer exactly like an unknown code so a valid credit
// code never confirms its own existence to the wrong customer; the service
// layer has already logged the mismatch.
func handleServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrCustomerNotFound):
		utils.RespondWithError(c, http.StatusNotFound, "Customer not found")
	case errors.Is(err, services.ErrCreditNotFound),
		errors.Is(err, services.ErrOwnershipMismatch):
		utils.RespondWithError(c, http.StatusNotFound, "Credit not found")
	case errors.Is(err, services.ErrInvalidInstallmentDate),
		errors.Is(err, services.ErrInvalidInstallments):
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondWithError(c, http.StatusUnauthorized, err.Error())
	case errors.Is(err, services.ErrStorageConflict):
		utils.RespondWithError(c, http.StatusConflict, "Resource already exists")
	default:
		utils.RespondWithError(c, http.StatusInternalServerError, "Internal server error")
	}
}
