// Package order implements the Order aggregate and its lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root; owns identity, owner, payment method, line items and status
//   - Status: the closed set of lifecycle states and their parsing rules
//   - Actor: who is asking for a change (the owning customer or an admin)
//   - the transition policy deciding which actor may move an order from one status to another
//   - HistoryEntry: the immutable record produced by every status change
//
// Lifecycle:
//
//	                 ┌──────────── admin: any → any ────────────┐
//	pending ──owner──> cancelled                                 │
//	preparing ──owner──> cancellation_requested ──admin──> cancelled
//	pending → preparing → shipped → out_for_delivery → delivered   (admin)
//	paid (admin, payment confirmations)
//
// Key business rules:
//   - A new order starts in pending and records a pending history entry
//   - Every successful status change records exactly one history entry
//   - History timestamps never go backwards for a given order
//   - delivered and cancelled are terminal for customers; admins are not restricted
//   - A customer acting on an order they do not own gets a not-found error, never a
//     hint that the order exists
package order
