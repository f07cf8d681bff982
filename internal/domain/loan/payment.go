package loan

import (
	"fmt"
	"math"

	"fincalc-engine/internal/pkg/apperrors"
	"fincalc-engine/internal/pkg/money"
)

const monthsPerYear = 12

// MonthlyPayment returns the payment that amortizes loanAmount over
// termMonths at the given annual rate fraction, rounded to cents. A
// zero rate falls back to a straight-line split. A non-positive term is
// a contract violation callers are expected to reject upstream; it is
// still guarded here rather than dividing by zero.
func MonthlyPayment(loanAmount, annualRate float64, termMonths int) (float64, error) {
	if termMonths <= 0 {
		return 0, fmt.Errorf("%w: term months must be positive", apperrors.ErrInvalidArgument)
	}

	if annualRate == 0 {
		return money.RoundCents(loanAmount / float64(termMonths)), nil
	}

	monthlyRate := annualRate / monthsPerYear
	compound := math.Pow(1+monthlyRate, float64(termMonths))
	payment := loanAmount * monthlyRate * compound / (compound - 1)

	return money.RoundCents(payment), nil
}
