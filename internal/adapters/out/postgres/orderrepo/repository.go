package orderrepo

import (
	"context"
	"errors"
	"time"

	"ordertrack/internal/core/domain/model/order"
	"ordertrack/internal/core/ports"
	"ordertrack/internal/pkg/errs"

	"gorm.io/gorm"
)

// storageTimeout bounds every storage call. The core never retries; an
// expired deadline surfaces as a storage-unavailable failure.
const storageTimeout = 5 * time.Second

// GormOrderRepository implements ports.OrderRepository using GORM.
type GormOrderRepository struct {
	db *gorm.DB
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB) *GormOrderRepository {
	return &GormOrderRepository{db: db}
}

// Add saves a new order to the database. A duplicate key is surfaced as a
// storage conflict; every other failure as storage unavailable.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return errs.NewStorageConflictError("orderId", dto.OrderID, err)
		}
		return errs.NewStorageUnavailableError("orders.add", err)
	}

	return nil
}

// GetAll returns all stored orders in insertion order. The read runs as a
// single statement, so the snapshot is internally consistent.
func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	ctx, cancel := context.WithTimeout(ctx, storageTimeout)
	defer cancel()

	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT
			seq,
			order_id,
			customer_name,
			order_amount,
			order_date,
			status
		FROM orders
		ORDER BY seq
	`).Rows()
	if err != nil {
		return nil, errs.NewStorageUnavailableError("orders.snapshot", err)
	}
	defer rows.Close()

	orders := make([]*order.Order, 0)
	for rows.Next() {
		var dto OrderDTO
		if err = rows.Scan(
			&dto.Seq,
			&dto.OrderID,
			&dto.CustomerName,
			&dto.OrderAmount,
			&dto.OrderDate,
			&dto.Status,
		); err != nil {
			return nil, errs.NewStorageUnavailableError("orders.snapshot", err)
		}

		aggregate, restoreErr := toDomain(dto)
		if restoreErr != nil {
			return nil, restoreErr
		}
		orders = append(orders, aggregate)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageUnavailableError("orders.snapshot", err)
	}

	return orders, nil
}

var _ ports.OrderRepository = (*GormOrderRepository)(nil)
