// Package memory provides an in-memory implementation of the order store for
// local development and tests. It honors the same contract as the postgres
// adapter: atomic appends, defensive duplicate-key rejection, and snapshots
// in insertion order.
package memory

import (
	"context"
	"sync"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"
)

// OrderRepository is a mutex-guarded in-memory order store.
type OrderRepository struct {
	mu     sync.RWMutex
	orders []*order.Order
	byID   map[string]struct{}
}

// NewOrderRepository creates an empty in-memory repository.
func NewOrderRepository() *OrderRepository {
	return &OrderRepository{
		byID: make(map[string]struct{}),
	}
}

// Add records a fully-formed order. Duplicate ids are rejected with a
// storage conflict; the id scheme makes this unreachable in practice.
func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return errs.NewStorageUnavailableError("orders.add", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := aggregate.ID().String()
	if _, exists := r.byID[id]; exists {
		return errs.NewStorageConflictError("orderId", id, nil)
	}

	r.byID[id] = struct{}{}
	r.orders = append(r.orders, aggregate)
	return nil
}

// GetAll returns a snapshot of all stored orders in insertion order.
func (r *OrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	if err := ctx.Err(); err != nil {
		return nil, errs.NewStorageUnavailableError("orders.snapshot", err)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]*order.Order, len(r.orders))
	copy(snapshot, r.orders)
	return snapshot, nil
}

var _ ports.OrderRepository = (*OrderRepository)(nil)
