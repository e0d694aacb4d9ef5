package order

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"ordertrack/internal/core/domain/model/kernel"
	"ordertrack/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through NewOrder or RestoreOrder. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// minCustomerNameLength is the minimum customer name length after trimming.
const minCustomerNameLength = 2

// Order represents one customer transaction. It is the sole entity of the
// system: created exactly once, never mutated or deleted within scope.
//
// Order maintains these invariants:
//   - orderId is valid, unique and never empty
//   - customerName is at least 2 characters after trimming
//   - orderAmount is strictly positive
//   - orderDate is set at creation and never backdated
//   - status is drawn from the closed Status enumeration
//
// The struct uses private fields so invariants can only be established
// through the constructors.
type Order struct {
	// id is the unique identifier assigned at creation
	id kernel.OrderID

	// customerName is the trimmed name of the ordering customer
	customerName string

	// orderAmount is the order total (always > 0)
	orderAmount float64

	// orderDate is the UTC creation timestamp
	orderDate time.Time

	// status is the current state in the order lifecycle
	status Status

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates an Order in Pending status with validation. This is the
// only way to create a brand-new order; persistence rehydration goes through
// RestoreOrder instead.
//
// Parameters:
//   - id: unique identifier (must be a constructed OrderID)
//   - customerName: customer name, trimmed by the caller, length >= 2
//   - orderAmount: order total, strictly greater than 0
//   - orderDate: creation timestamp (UTC, assigned by the caller at creation time)
//
// Returns the created order, or a validation error if any parameter breaks
// an invariant.
func NewOrder(id kernel.OrderID, customerName string, orderAmount float64, orderDate time.Time) (*Order, error) {
	order := &Order{
		status:        Pending,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setOrderAmount(orderAmount),
		order.setOrderDate(orderDate),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// RestoreOrder reconstructs an Order from persistence, including its stored
// status. The same invariants apply: a corrupt row fails here instead of
// leaking an invalid aggregate into the application.
func RestoreOrder(
	id kernel.OrderID,
	customerName string,
	orderAmount float64,
	orderDate time.Time,
	status Status,
) (*Order, error) {
	order := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerName(customerName),
		order.setOrderAmount(orderAmount),
		order.setOrderDate(orderDate),
		order.setStatus(status),
	); err != nil {
		return nil, err
	}

	return order, nil
}

// Validate ensures the Order instance was properly constructed.
// Returns ErrOrderIsNotConstructed when the struct was instantiated directly.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.OrderID {
	return o.id
}

// CustomerName returns the trimmed customer name.
func (o *Order) CustomerName() string {
	return o.customerName
}

// OrderAmount returns the order total.
func (o *Order) OrderAmount() float64 {
	return o.orderAmount
}

// OrderDate returns the creation timestamp.
func (o *Order) OrderDate() time.Time {
	return o.orderDate
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

func (o *Order) setID(id kernel.OrderID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setCustomerName(customerName string) error {
	trimmed := strings.TrimSpace(customerName)
	if utf8.RuneCountInString(trimmed) < minCustomerNameLength {
		return errs.NewValueIsInvalidErrorWithCause("customerName",
			fmt.Errorf("%q is shorter than %d characters", trimmed, minCustomerNameLength))
	}
	o.customerName = trimmed
	return nil
}

func (o *Order) setOrderAmount(orderAmount float64) error {
	if orderAmount <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("orderAmount",
			fmt.Errorf("%v is not greater than 0", orderAmount))
	}
	o.orderAmount = orderAmount
	return nil
}

func (o *Order) setOrderDate(orderDate time.Time) error {
	if orderDate.IsZero() {
		return errs.NewValueIsRequiredError("orderDate")
	}
	o.orderDate = orderDate
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
