package queries

import (
	"errors"
	"time"

	"aquasphere/internal/core/domain/model/kernel"
	"aquasphere/internal/pkg/guard"
)

var ErrEstimateDeliveryQueryIsNotConstructed = errors.New(
	"EstimateDeliveryQuery must be created via NewEstimateDeliveryQuery constructor",
)

// EstimateDeliveryQuery asks for a delivery quote to a location.
type EstimateDeliveryQuery struct {
	destination kernel.Location
	orderSize   int
	orderedAt   time.Time

	guard guard.ConstructorGuard
}

// NewEstimateDeliveryQuery validates the coordinates. An orderSize below 1
// counts as one item; a zero orderedAt means now.
func NewEstimateDeliveryQuery(
	latitude, longitude float64,
	orderSize int,
	orderedAt time.Time,
) (EstimateDeliveryQuery, error) {
	destination, err := kernel.NewLocation(latitude, longitude)
	if err != nil {
		return EstimateDeliveryQuery{}, err
	}

	if orderSize < 1 {
		orderSize = 1
	}
	if orderedAt.IsZero() {
		orderedAt = time.Now()
	}

	return EstimateDeliveryQuery{
		destination: destination,
		orderSize:   orderSize,
		orderedAt:   orderedAt,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

func (q EstimateDeliveryQuery) Validate() error {
	return q.guard.Validate(ErrEstimateDeliveryQueryIsNotConstructed)
}

func (q EstimateDeliveryQuery) Destination() kernel.Location {
	return q.destination
}

func (q EstimateDeliveryQuery) OrderSize() int {
	return q.orderSize
}

func (q EstimateDeliveryQuery) OrderedAt() time.Time {
	return q.orderedAt
}
