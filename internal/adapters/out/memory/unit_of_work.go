package memory

import (
	"context"

	"ordertrack/internal/core/ports"
)

// UnitOfWorkFactory creates units of work sharing one in-memory repository.
type UnitOfWorkFactory struct {
	repo *OrderRepository
}

// NewUnitOfWorkFactory creates a factory over the given repository.
func NewUnitOfWorkFactory(repo *OrderRepository) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{repo: repo}
}

// Create returns a new unit of work. Each append is already atomic under the
// repository mutex, so the transaction calls are no-ops.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{repo: f.repo}
}

// UnitOfWork is the in-memory transaction boundary. Single appends need no
// coordination beyond the repository's own locking.
type UnitOfWork struct {
	repo *OrderRepository
}

// Begin starts the logical transaction.
func (u *UnitOfWork) Begin(_ context.Context) error { return nil }

// Commit completes the logical transaction.
func (u *UnitOfWork) Commit(_ context.Context) error { return nil }

// Rollback is a no-op: nothing is buffered between Begin and Commit.
func (u *UnitOfWork) Rollback(_ context.Context) error { return nil }

// OrderRepository returns the repository bound to this unit of work.
func (u *UnitOfWork) OrderRepository() ports.OrderRepository {
	return u.repo
}

var (
	_ ports.UnitOfWork        = (*UnitOfWork)(nil)
	_ ports.UnitOfWorkFactory = (*UnitOfWorkFactory)(nil)
)
