// Package kernel contains shared value objects used across the domain model.
//
// It currently provides OrderID, the immutable identifier assigned to every
// order at creation time. Value objects here enforce their own invariants
// through constructor functions and Validate methods, so aggregates can rely
// on them without re-checking.
package kernel
