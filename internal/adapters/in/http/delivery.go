package http

import (
	"net/http"
	"time"

	"aquasphere/internal/core/application/usecases/queries"

	"github.com/labstack/echo/v4"
)

const (
	estimateDateLayout  = "2006-01-02T15:04:05"
	estimateShortLayout = "Jan 02"
)

// EstimateDelivery handles POST /api/v1/delivery/estimate.
func (s *Server) EstimateDelivery(c echo.Context) error {
	var req estimateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, failure("Invalid request body"))
	}

	if req.Latitude == nil || req.Longitude == nil {
		return c.JSON(http.StatusBadRequest, failure("Latitude and longitude are required"))
	}

	var orderedAt time.Time
	if req.OrderedAt != nil {
		orderedAt = *req.OrderedAt
	}

	query, err := queries.NewEstimateDeliveryQuery(*req.Latitude, *req.Longitude, req.OrderSize, orderedAt)
	if err != nil {
		return c.JSON(http.StatusBadRequest, failure(err.Error()))
	}

	estimate, err := s.estimateDeliveryHandler.Handle(c.Request().Context(), query)
	if err != nil {
		return s.writeError(c, err, "Failed to estimate delivery")
	}

	return c.JSON(http.StatusOK, estimateDeliveryResponse{
		response:                   response{Success: true},
		DistanceKm:                 estimate.DistanceKm,
		DeliveryTimeMinutes:        estimate.Minutes,
		DeliveryTimeHours:          estimate.Hours,
		ShippingFee:                estimate.Fee,
		DeliveryDateRange:          estimate.DateRange(),
		DeliveryStartDate:          estimate.StartDate.Format(estimateDateLayout),
		DeliveryEndDate:            estimate.EndDate.Format(estimateDateLayout),
		DeliveryStartDateFormatted: estimate.StartDate.Format(estimateShortLayout),
		DeliveryEndDateFormatted:   estimate.EndDate.Format(estimateShortLayout),
	})
}
