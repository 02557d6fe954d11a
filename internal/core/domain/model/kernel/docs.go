// Package kernel provides the shared value objects of the AquaSphere domain.
//
// The package includes:
//   - UUID: identifier for orders and users, wrapping github.com/google/uuid
//   - Location: a validated latitude/longitude pair with great-circle distance
//
// Both types are immutable and have invalid zero values, so a struct field that
// was never assigned is caught by Validate.
package kernel
