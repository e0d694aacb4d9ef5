package kernel

import (
	"strings"

	"ordertrack/internal/pkg/errs"

	"github.com/google/uuid"
)

// ErrOrderIDIsNotConstructed indicates that an OrderID was not created through
// one of the constructor functions. It is returned when validating a
// zero-value OrderID.
var ErrOrderIDIsNotConstructed = errs.NewValueIsRequiredError(
	"OrderID must be created via NewOrderID or OrderIDFromString",
)

// idPrefix is the public prefix of every generated order identifier.
const idPrefix = "ORD-"

// OrderID is a value object identifying a single order. Identifiers look like
// "ORD-1A2B3C4D": the prefix followed by the uppercased first segment of a
// random UUIDv4. The scheme is collision-resistant, so concurrent creations
// need no coordination to stay unique.
//
// The zero value is invalid; construct through NewOrderID or
// OrderIDFromString. OrderID is immutable and safe for concurrent use.
type OrderID struct {
	id string
}

// NewOrderID generates a fresh order identifier.
//
// Example:
//
//	id := kernel.NewOrderID()
//	fmt.Println(id.String()) // e.g. "ORD-550E8400"
func NewOrderID() OrderID {
	raw := uuid.New().String()
	segment := strings.ToUpper(strings.SplitN(raw, "-", 2)[0])
	return OrderID{id: idPrefix + segment}
}

// OrderIDFromString reconstructs an OrderID from its string form, typically
// when rehydrating an order from persistence. Only emptiness is rejected:
// stored identifiers are trusted as written.
func OrderIDFromString(s string) (OrderID, error) {
	if s == "" {
		return OrderID{}, errs.NewValueIsRequiredError("orderId")
	}
	return OrderID{id: s}, nil
}

// String returns the textual form of the identifier.
func (o OrderID) String() string {
	return o.id
}

// IsEqual compares two order identifiers for equality.
func (o OrderID) IsEqual(other OrderID) bool {
	return o.id == other.id
}

// Validate returns ErrOrderIDIsNotConstructed for a zero-value OrderID.
func (o OrderID) Validate() error {
	if o.id == "" {
		return ErrOrderIDIsNotConstructed
	}
	return nil
}
