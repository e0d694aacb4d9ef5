// Package orderrepo provides data transfer objects and mapping functions for
// order persistence. It implements the repository pattern for the order
// domain entity, converting between the aggregate and its database row.
package orderrepo

import (
	"time"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/core/domain/model/order"
)

// OrderDTO is the database representation of an order. Seq is a bigserial
// assigned by the database on insert; it exists solely so snapshots can be
// read back in insertion order and never leaves this adapter.
type OrderDTO struct {
	Seq          int64     `gorm:"column:seq;autoIncrement;->"`
	OrderID      string    `gorm:"column:order_id;primaryKey"`
	CustomerName string    `gorm:"column:customer_name"`
	OrderAmount  float64   `gorm:"column:order_amount;type:numeric(12,2)"`
	OrderDate    time.Time `gorm:"column:order_date"`
	Status       string    `gorm:"column:status;index"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// fromDomain converts an order aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	return OrderDTO{
		OrderID:      aggregate.ID().String(),
		CustomerName: aggregate.CustomerName(),
		OrderAmount:  aggregate.OrderAmount(),
		OrderDate:    aggregate.OrderDate(),
		Status:       aggregate.Status().String(),
	}
}

// toDomain converts a database row back into an order aggregate, re-checking
// the domain invariants so a corrupt row surfaces as an error here.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	status, ok := order.StatusFromString(dto.Status)
	if !ok {
		status = order.Unknown // RestoreOrder rejects it with a proper error
	}

	return order.RestoreOrder(id, dto.CustomerName, dto.OrderAmount, dto.OrderDate.UTC(), status)
}
