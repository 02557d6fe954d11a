package services

import (
	"errors"
	"math"
	"time"

	"aquasphere/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

const (
	baseMinutes       = 15.0
	minutesPerKm      = 2.5
	minutesPerItem    = 0.5
	minimumMinutes    = 20.0
	baseFee           = 50.0
	feePerMinute      = 0.5
	sameDayCutoffHour = 14
	sameDayMaxHours   = 4.0
	nextDayMaxHours   = 8.0
	hoursPerTravelDay = 8.0
	dateRangeLayout   = "Jan 02"
)

// The refilling station in Santo Tomas, Batangas.
const (
	defaultHubLatitude  = 14.0703
	defaultHubLongitude = 121.3253
)

// ErrEstimatorIsNotConfigured is returned by the zero-value DeliveryEstimator.
var ErrEstimatorIsNotConfigured = errors.New("DeliveryEstimator must be created via NewDeliveryEstimator")

// Manila is the shop's time zone. Delivery windows are cut at 14:00 local time.
var Manila = time.FixedZone("PHT", 8*60*60)

// Estimate is the quoted delivery time and fee for one destination.
type Estimate struct {
	DistanceKm float64
	Minutes    float64
	Hours      float64
	Fee        decimal.Decimal
	StartDate  time.Time
	EndDate    time.Time
}

// DateRange renders the window as "Oct 17 - Oct 18".
func (e Estimate) DateRange() string {
	return e.StartDate.Format(dateRangeLayout) + " - " + e.EndDate.Format(dateRangeLayout)
}

// DeliveryEstimator quotes deliveries from a single hub using straight-line
// distance. It has no state besides the hub and may be shared.
//
// Rules:
//   - minutes = max(20, 15 + 2.5 per km + 0.5 per item)
//   - fee = 50 + 0.5 per minute, rounded to centavos
//   - under 4 hours and ordered before 14:00: delivered the same day
//   - under 8 hours, or ordered from 14:00 on: delivered the next day
//     (one more day of processing after the cutoff)
//   - otherwise one day of processing plus a day per 8 hours, with a two-day window
//
// Example usage:
//
//	hub, _ := kernel.NewLocation(14.0703, 121.3253)
//	estimator, _ := services.NewDeliveryEstimator(hub)
//	dest, _ := kernel.NewLocation(14.1122, 121.1504)
//	estimate, err := estimator.Estimate(dest, 4, time.Now())
type DeliveryEstimator struct {
	hub kernel.Location
}

func NewDeliveryEstimator(hub kernel.Location) (DeliveryEstimator, error) {
	if err := hub.Validate(); err != nil {
		return DeliveryEstimator{}, err
	}
	return DeliveryEstimator{hub: hub}, nil
}

// DefaultHub is the location of the AquaSphere station.
func DefaultHub() kernel.Location {
	hub, _ := kernel.NewLocation(defaultHubLatitude, defaultHubLongitude)
	return hub
}

func (e DeliveryEstimator) Hub() kernel.Location {
	return e.hub
}

// Estimate quotes a delivery of orderSize items to destination for an order
// placed at orderedAt. An orderSize below 1 counts as 1.
func (e DeliveryEstimator) Estimate(destination kernel.Location, orderSize int, orderedAt time.Time) (Estimate, error) {
	if err := e.hub.Validate(); err != nil {
		return Estimate{}, ErrEstimatorIsNotConfigured
	}

	km, err := e.hub.Distance(destination)
	if err != nil {
		return Estimate{}, err
	}

	if orderSize < 1 {
		orderSize = 1
	}

	minutes := math.Max(minimumMinutes, baseMinutes+km*minutesPerKm+float64(orderSize)*minutesPerItem)
	hours := minutes / 60
	fee := decimal.NewFromFloat(baseFee).Add(decimal.NewFromFloat(minutes).Mul(decimal.NewFromFloat(feePerMinute)))

	start, end := deliveryWindow(hours, orderedAt.In(Manila))

	return Estimate{
		DistanceKm: roundTo(km, 2),
		Minutes:    roundTo(minutes, 2),
		Hours:      roundTo(hours, 2),
		Fee:        fee.Round(2),
		StartDate:  start,
		EndDate:    end,
	}, nil
}

func deliveryWindow(hours float64, orderedAt time.Time) (time.Time, time.Time) {
	var processingDays, deliveryDays, windowDays int

	afterCutoff := orderedAt.Hour() >= sameDayCutoffHour
	switch {
	case hours < sameDayMaxHours && !afterCutoff:
		processingDays, deliveryDays, windowDays = 0, 0, 1
	case hours < nextDayMaxHours || afterCutoff:
		deliveryDays, windowDays = 1, 1
		if afterCutoff {
			processingDays = 1
		}
	default:
		processingDays = 1
		deliveryDays = max(1, int(hours/hoursPerTravelDay))
		windowDays = 2
	}

	start := orderedAt.AddDate(0, 0, processingDays+deliveryDays)
	return start, start.AddDate(0, 0, windowDays)
}

func roundTo(v float64, places int) float64 {
	p := math.Pow(10, float64(places))
	return math.Round(v*p) / p
}
