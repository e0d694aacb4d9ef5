package commands

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"ordertrack/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrCustomerNameIsTooShort = errors.New("customer name must be at least 2 characters after trimming")
	ErrOrderAmountIsInvalid   = errors.New("order amount must be greater than 0")
)

// CreateOrderCommand represents a validated request to create a new order.
// It carries the normalized draft produced by the validation layer; the
// handler assigns identity, timestamp and initial status.
//
// Example:
//
//	draft, err := validation.ValidateCreateOrder(body.CustomerName, body.OrderAmount)
//	if err != nil {
//	    return err // accumulated field violations
//	}
//	cmd, err := commands.NewCreateOrderCommand(draft.CustomerName, draft.OrderAmount)
//	if err != nil {
//	    return err
//	}
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerName string
	orderAmount  float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to record a new order.
// The customer name is trimmed; it must be at least 2 characters afterwards,
// and the amount must be strictly positive. These guards duplicate the
// boundary validation on purpose: a command constructed from code paths that
// bypass the validator still cannot carry an invalid draft.
func NewCreateOrderCommand(customerName string, orderAmount float64) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setCustomerName(customerName),
		orderCommand.setOrderAmount(orderAmount),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// CustomerName returns the trimmed customer name.
func (c CreateOrderCommand) CustomerName() string {
	return c.customerName
}

// OrderAmount returns the order total.
func (c CreateOrderCommand) OrderAmount() float64 {
	return c.orderAmount
}

func (c *CreateOrderCommand) setCustomerName(customerName string) error {
	trimmed := strings.TrimSpace(customerName)
	if utf8.RuneCountInString(trimmed) < 2 {
		return fmt.Errorf("%w: got %q", ErrCustomerNameIsTooShort, trimmed)
	}

	c.customerName = trimmed
	return nil
}

func (c *CreateOrderCommand) setOrderAmount(orderAmount float64) error {
	if orderAmount <= 0 {
		return fmt.Errorf("%w: got %v", ErrOrderAmountIsInvalid, orderAmount)
	}

	c.orderAmount = orderAmount
	return nil
}
