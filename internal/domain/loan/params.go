package loan

import (
	"fmt"
	"time"
)

const (
	MinTermMonths = 1
	MaxTermMonths = 480
)

// Parameters describes a loan to amortize. Payment is optional; when
// nil a monthly payment is derived from the amount, rate and term. A
// supplied payment is used verbatim even if it does not amortize the
// balance correctly. FirstPaymentDate defaults to the current time when
// zero.
type Parameters struct {
	LoanAmount       float64
	AnnualRate       float64
	TermMonths       int
	Payment          *float64
	FirstPaymentDate time.Time
	OddDaysAmount    float64
}

// ValidationResult carries the outcome of a parameter check. Errors
// lists every violated rule so a caller can surface all problems at
// once.
type ValidationResult struct {
	Valid  bool
	Errors []string
}

// ValidateParameters checks every bound independently and never
// short-circuits.
func ValidateParameters(p Parameters) ValidationResult {
	var errs []string

	if p.LoanAmount <= 0 {
		errs = append(errs, "loan amount must be greater than zero")
	}
	if p.AnnualRate < 0 || p.AnnualRate > 1 {
		errs = append(errs, "annual rate must be a fraction between 0 and 1")
	}
	if p.TermMonths < MinTermMonths || p.TermMonths > MaxTermMonths {
		errs = append(errs, fmt.Sprintf("term months must be between %d and %d", MinTermMonths, MaxTermMonths))
	}
	if p.Payment != nil && *p.Payment <= 0 {
		errs = append(errs, "payment must be greater than zero when supplied")
	}

	return ValidationResult{Valid: len(errs) == 0, Errors: errs}
}
