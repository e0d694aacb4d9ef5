package order

import (
	"fmt"

	"ordertrack/internal/pkg/errs"
)

// Status is the lifecycle state of an order, modeled as a closed enumeration
// so that invalid states are unrepresentable in storage. Every order starts
// as Pending; no endpoint in scope transitions it further, but Processing,
// Completed and Cancelled remain valid stored values that listing and
// filtering must understand.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned at creation.
	Pending

	// Processing indicates the order is being worked on.
	Processing

	// Completed indicates the order was fulfilled.
	Completed

	// Cancelled indicates the order was withdrawn.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string
// representations, including Unknown for display purposes.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Processing: "Processing",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// getValidStatusStrings returns only the statuses a stored order may carry.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "Pending",
		Processing: "Processing",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
	}
}

// Validate checks that the Status is a member of the closed enumeration.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status. It implements
// fmt.Stringer and is safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// StatusFromString parses a stored or caller-supplied status string.
// Matching is exact and case-sensitive, mirroring the closed enumeration.
// The second return value reports whether the input named a valid status;
// callers that filter permissively treat false as "matches nothing" rather
// than an error.
func StatusFromString(value string) (Status, bool) {
	for status, str := range getValidStatusStrings() {
		if str == value {
			return status, true
		}
	}
	return Unknown, false
}
