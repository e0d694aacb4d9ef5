// Package order provides the domain model for order tracking. It implements
// the Order entity together with its closed Status enumeration.
//
// The package includes:
//   - Order: the entity holding identity, customer, amount, date, and status
//   - Status: a closed set of lifecycle states (Pending, Processing,
//     Completed, Cancelled) that makes invalid statuses unrepresentable
//
// Key business rules:
//   - Orders must have a valid unique identifier, a customer name of at least
//     two characters after trimming, and a strictly positive amount
//   - Orders are created in Pending status with a creation timestamp
//   - Orders are immutable once created; no update path exists in scope
//
// Construction goes through NewOrder (fresh orders) or RestoreOrder
// (rehydration from persistence); both enforce the invariants above.
package order
