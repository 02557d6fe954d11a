package http

import (
	"errors"
	"net/http"

	"aquasphere/internal/core/domain/model/order"
	"aquasphere/internal/metrics"
	"aquasphere/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps an application error to an HTTP status. Storage failures are
// checked first because their cause may wrap anything.
func statusFor(err error) int {
	switch {
	case errors.Is(err, errs.ErrStorageFailure):
		return http.StatusInternalServerError
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, order.ErrIllegalTransition):
		return http.StatusConflict
	case errors.Is(err, order.ErrInvalidTarget),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// rejectionReason is the metrics label for a failed transition.
func rejectionReason(err error) string {
	switch {
	case errors.Is(err, errs.ErrStorageFailure):
		return metrics.ReasonStorageFailure
	case errors.Is(err, errs.ErrObjectNotFound):
		return metrics.ReasonNotFound
	case errors.Is(err, order.ErrIllegalTransition):
		return metrics.ReasonIllegalTransition
	case errors.Is(err, order.ErrInvalidTarget):
		return metrics.ReasonInvalidTarget
	default:
		return metrics.ReasonValidation
	}
}

// writeError answers with {success:false, message}. Internal errors are logged
// and reported with a generic message.
func (s *Server) writeError(c echo.Context, err error, fallback string) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(c.Request().Context(), fallback,
			"method", c.Request().Method,
			"path", c.Path(),
			"error", err,
		)
		return c.JSON(status, failure(fallback))
	}

	return c.JSON(status, failure(err.Error()))
}
