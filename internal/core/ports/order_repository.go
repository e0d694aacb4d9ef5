package ports

import (
	"context"

	"ordertrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for orders, independent of
// backing technology. Uniqueness of order ids is upheld by the collision-
// resistant identifier scheme; implementations may still reject a duplicate
// key defensively, surfaced as a storage conflict.
type OrderRepository interface {
	// Add durably records a fully-formed order. It never rejects on
	// data-shape grounds (validation happens upstream); it fails only on
	// storage-level problems: errs.ErrStorageConflict for a duplicate key,
	// errs.ErrStorageUnavailable for anything else.
	Add(ctx context.Context, aggregate *order.Order) error

	// GetAll returns a snapshot of every stored order in insertion order.
	// The snapshot is internally consistent: a concurrently appended order
	// is either fully visible or absent, never partial.
	GetAll(ctx context.Context) ([]*order.Order, error)
}
