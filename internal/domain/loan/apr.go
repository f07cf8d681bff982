package loan

import (
	"math"

	"fincalc-engine/internal/pkg/money"
)

const (
	aprMaxIterations = 100
	aprToleranceUSD  = 0.10
	daysPerMonth     = 30.0
)

// SolveAPR recovers the implied annual rate from a known payment stream
// by bisecting candidate percent values over [0, 100]. The payment
// stream is discounted on a flat 30-day-month basis; deferredDays shift
// every payment date and oddDaysAmount is a fixed adjustment to the
// amount financed.
//
// The search runs a fixed 100 iterations with an early exit once the
// discounted stream is within ten cents of the amount financed. It
// always returns a rate, even when the tolerance was never met; callers
// that need a residual guarantee must check the result themselves. The
// returned rate is a fraction rounded to four decimal places.
func SolveAPR(termMonths int, loanAmount, payment float64, deferredDays int, oddDaysAmount float64) float64 {
	low, high := 0.0, 100.0
	mid := 50.0

	for i := 0; i < aprMaxIterations; i++ {
		monthlyRate := mid / 100 / monthsPerYear

		discountedSum := 0.0
		for period := 1; period <= termMonths; period++ {
			daysToPayment := float64(period*int(daysPerMonth) + deferredDays)
			discountedSum += payment * math.Pow(1+monthlyRate, -daysToPayment/daysPerMonth)
		}

		difference := loanAmount - discountedSum - oddDaysAmount

		if math.Abs(difference) <= aprToleranceUSD {
			return money.RoundTo(mid/100, 4)
		}

		if difference > aprToleranceUSD {
			high = mid
		} else {
			low = mid
		}
		mid = (low + high) / 2
	}

	return money.RoundTo(mid/100, 4)
}
