// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work wraps a single database transaction and hands
// out repositories bound to it; the command layer controls the lifecycle
// explicitly (Begin, Commit, deferred Rollback).
package postgres

import (
	"context"
	"errors"

	"ordertrack/internal/adapters/out/postgres/orderrepo"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// ErrTransactionNotStarted is returned when Commit or Rollback is called
// without an active transaction.
var ErrTransactionNotStarted = errors.New("transaction has not been started")

// GormUnitOfWorkFactory creates a fresh unit of work per request, keeping
// concurrent operations isolated.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory over the given database handle.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create returns a new, not-yet-started unit of work.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{db: f.db}
}

// GormUnitOfWork is a transaction boundary over a GORM connection.
type GormUnitOfWork struct {
	db        *gorm.DB
	tx        *gorm.DB
	committed bool
}

// Begin starts a database transaction.
func (u *GormUnitOfWork) Begin(ctx context.Context) error {
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errs.NewStorageUnavailableError("tx.begin", tx.Error)
	}

	u.tx = tx
	u.committed = false
	return nil
}

// Commit commits the current transaction.
func (u *GormUnitOfWork) Commit(_ context.Context) error {
	if u.tx == nil {
		return ErrTransactionNotStarted
	}

	if err := u.tx.Commit().Error; err != nil {
		return errs.NewStorageUnavailableError("tx.commit", err)
	}

	u.committed = true
	return nil
}

// Rollback rolls back the current transaction. After a successful commit it
// is a no-op, which lets callers defer it unconditionally.
func (u *GormUnitOfWork) Rollback(_ context.Context) error {
	if u.tx == nil {
		return ErrTransactionNotStarted
	}
	if u.committed {
		return nil
	}

	if err := u.tx.Rollback().Error; err != nil {
		return errs.NewStorageUnavailableError("tx.rollback", err)
	}
	return nil
}

// OrderRepository returns an order repository bound to the current
// transaction, or to the plain connection before Begin is called.
func (u *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	if u.tx != nil {
		return orderrepo.NewGormOrderRepository(u.tx)
	}
	return orderrepo.NewGormOrderRepository(u.db)
}

var (
	_ ports.UnitOfWork        = (*GormUnitOfWork)(nil)
	_ ports.UnitOfWorkFactory = (*GormUnitOfWorkFactory)(nil)
)
