// Package queries contains read-only operations over the order store.
// Queries never modify state; they take a snapshot and compute on it.
package queries

import (
	"errors"

	"ordertrack/internal/pkg/guard"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves stored orders with optional filtering. Both
// filters are permissive: any string is accepted, including status values
// outside the enumeration (which simply match nothing). Listing never fails
// because of client-supplied filter noise.
type GetOrdersQuery struct {
	customerName string
	status       string

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query with an optional case-insensitive
// customer-name substring filter and an optional exact status filter.
// Empty strings mean "no filter". Filters are matched verbatim, whitespace
// included: a filter of " corp" only matches names containing " corp".
func NewGetOrdersQuery(customerName, status string) GetOrdersQuery {
	return GetOrdersQuery{
		customerName: customerName,
		status:       status,
		guard:        guard.NewConstructorGuard(),
	}
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrdersQueryIsNotConstructed if validation fails.
func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// CustomerName returns the customer-name substring filter ("" when absent).
func (q GetOrdersQuery) CustomerName() string {
	return q.customerName
}

// Status returns the exact status filter ("" when absent).
func (q GetOrdersQuery) Status() string {
	return q.status
}
