// Package services provides domain services: business calculations that need
// more than one value object and belong to no single aggregate.
//
// The package includes:
//   - DeliveryEstimator: distance-based delivery time, shipping fee and
//     delivery window for a customer location
package services
