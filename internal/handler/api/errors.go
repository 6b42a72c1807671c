package api

import (
	"net/http"

	"barbershop-booking/internal/domain/appointment"
	"barbershop-booking/internal/domain/policy"
	"barbershop-booking/internal/handler/httperr"
	"barbershop-booking/internal/pkg/errs"
	"barbershop-booking/internal/usecase/commands"
	"barbershop-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

// abortWithUseCaseError maps use case errors to HTTP responses. Messages of
// validation and lifecycle errors are meant for customers and are passed through.
func abortWithUseCaseError(c *gin.Context, err error) {
	var (
		missing    *commands.MissingFieldsError
		validation *policy.ValidationError
		transition *appointment.InvalidTransitionError
	)

	switch {
	case errs.As(err, &missing):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, missing.Error(), gin.H{"fields": missing.Fields})
	case errs.As(err, &validation):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, validation.Message, gin.H{"reason": validation.Reason})
	case errs.As(err, &transition):
		httperr.AbortWithError(c, http.StatusConflict, err, transition.Reason(), gin.H{
			"state":  transition.State,
			"action": transition.Action,
		})
	case errs.Is(err, policy.ErrInvalidPolicy):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, err.Error(), nil)
	case errs.Is(err, appointment.ErrNegativePrice):
		httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Price cannot be negative", nil)
	case errs.Is(err, appointment.ErrUnknownAction):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown action", nil)
	case errs.Is(err, queries.ErrUnknownService):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Unknown service", nil)
	case errs.Is(err, queries.ErrAppointmentNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Appointment not found", nil)
	default:
		httperr.AbortInternal(c, err)
	}
}
