package queries

import (
	"context"

	"aquasphere/internal/core/domain/services"
)

type EstimateDeliveryQueryHandler struct {
	estimator services.DeliveryEstimator
}

func NewEstimateDeliveryQueryHandler(estimator services.DeliveryEstimator) EstimateDeliveryQueryHandler {
	return EstimateDeliveryQueryHandler{estimator: estimator}
}

func (h EstimateDeliveryQueryHandler) Handle(
	_ context.Context,
	query EstimateDeliveryQuery,
) (services.Estimate, error) {
	if err := query.Validate(); err != nil {
		return services.Estimate{}, err
	}

	return h.estimator.Estimate(query.Destination(), query.OrderSize(), query.OrderedAt())
}
