package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"jobboard-api/internal/services"
)

// respondError maps service errors onto HTTP statuses. Unrecognized
// errors are store failures and come back as 500 with the raw message;
// the services never retry, so there is nothing else to do here.
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, services.ErrDuplicateApplication),
		errors.Is(err, services.ErrJobClosed),
		errors.Is(err, services.ErrEmailTaken):
		status = http.StatusBadRequest
	case errors.Is(err, services.ErrInvalidCredentials):
		status = http.StatusUnauthorized
	case errors.Is(err, services.ErrUnauthorized):
		status = http.StatusForbidden
	case errors.Is(err, services.ErrJobNotFound),
		errors.Is(err, services.ErrUserNotFound),
		errors.Is(err, services.ErrCompanyNotFound),
		errors.Is(err, services.ErrApplicantNotFound):
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
