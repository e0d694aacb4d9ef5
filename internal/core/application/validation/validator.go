// Package validation checks order-creation requests against the field rules
// and produces either a normalized draft or the full, ordered list of field
// violations. It is pure: no side effects and no store access.
//
// Rules are evaluated independently rather than short-circuited, so a request
// with a short customer name and a bad amount reports both problems in one
// failure. Struct rules run through github.com/go-playground/validator; this
// package maps its tag-level errors onto the application's violation taxonomy.
package validation

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"

	"ordertrack/internal/pkg/errs"

	validatorv10 "github.com/go-playground/validator/v10"
)

// Human-readable violation messages. The customer-facing copy matches the
// original order form.
const (
	msgCustomerNameTooShort   = "Customer name must be at least 2 characters."
	msgOrderAmountNotNumber   = "Order amount must be a number."
	msgOrderAmountNotPositive = "Order amount must be a positive number."
)

var (
	locCustomerName = []string{"body", "customerName"}
	locOrderAmount  = []string{"body", "orderAmount"}
)

// OrderDraft is the normalized outcome of a successful validation:
// a trimmed customer name and a coerced numeric amount, ready to be turned
// into a creation command.
type OrderDraft struct {
	CustomerName string  `validate:"required,min=2"`
	OrderAmount  float64 `validate:"required,gt=0"`
}

var validate = validatorv10.New()

// violationList accumulates violations and only materializes a failure at the
// end, decoupling rule evaluation from error construction.
type violationList struct {
	violations []errs.Violation
}

func (l *violationList) add(loc []string, message, violationType string) {
	l.violations = append(l.violations, errs.Violation{
		Loc:     loc,
		Message: message,
		Type:    violationType,
	})
}

func (l *violationList) err() error {
	if len(l.violations) == 0 {
		return nil
	}
	return errs.NewValidationError(l.violations)
}

// ValidateCreateOrder checks a creation request. Both inputs arrive as the
// caller supplied them: the name untrimmed, the amount untyped (JSON number,
// numeric string, or absent). On success it returns the normalized draft;
// on failure, an *errs.ValidationError listing every violation in field order.
func ValidateCreateOrder(customerName string, orderAmount any) (OrderDraft, error) {
	amount, isNumeric := coerceAmount(orderAmount)

	draft := OrderDraft{
		CustomerName: strings.TrimSpace(customerName),
		OrderAmount:  amount,
	}

	var nameList, amountList violationList

	if err := validate.Struct(draft); err != nil {
		var fieldErrors validatorv10.ValidationErrors
		if !errors.As(err, &fieldErrors) {
			return OrderDraft{}, err
		}

		for _, fieldError := range fieldErrors {
			switch fieldError.StructField() {
			case "CustomerName":
				nameList.add(locCustomerName, msgCustomerNameTooShort, errs.ViolationTooShort)
			case "OrderAmount":
				if isNumeric {
					amountList.add(locOrderAmount, msgOrderAmountNotPositive, errs.ViolationNotPositive)
				}
			}
		}
	}

	// A non-numeric amount supersedes any positivity complaint on the
	// zero placeholder it was coerced to.
	if !isNumeric {
		amountList = violationList{}
		amountList.add(locOrderAmount, msgOrderAmountNotNumber, errs.ViolationNotANumber)
	}

	combined := violationList{violations: append(nameList.violations, amountList.violations...)}
	if err := combined.err(); err != nil {
		return OrderDraft{}, err
	}

	return draft, nil
}

// coerceAmount turns the untyped boundary value into a float64. JSON numbers
// decode as float64; numeric strings and json.Number are accepted the way the
// original boundary coerced them. Missing values, anything unparseable and
// non-finite values report false: ParseFloat accepts spellings like "Inf" and
// "NaN", but an amount must be a finite number.
func coerceAmount(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		if !isFinite(v) {
			return 0, false
		}
		return v, true
	case json.Number:
		parsed, err := v.Float64()
		if err != nil || !isFinite(parsed) {
			return 0, false
		}
		return parsed, true
	case string:
		parsed, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || !isFinite(parsed) {
			return 0, false
		}
		return parsed, true
	default:
		return 0, false
	}
}

func isFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
