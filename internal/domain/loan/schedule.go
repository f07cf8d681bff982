package loan

import (
	"fmt"
	"time"

	"fincalc-engine/internal/pkg/apperrors"
	"fincalc-engine/internal/pkg/money"
)

// ScheduleEntry is one period of an amortization schedule. All monetary
// fields are rounded to cents at the point of computation.
type ScheduleEntry struct {
	PeriodNumber     int
	DueDate          time.Time
	BeginningBalance float64
	PaymentDue       float64
	PrincipalDue     float64
	InterestDue      float64
	EndingBalance    float64
}

// Schedule is the realized payment schedule for a loan. Entries may be
// shorter than the nominal term when rounding dust pays the loan off
// early.
type Schedule struct {
	LoanAmount    float64
	AnnualRate    float64
	Payment       float64
	TermMonths    int
	TotalInterest float64
	TotalPayments float64
	Entries       []ScheduleEntry
}

// GenerateSchedule walks the loan period by period and produces a
// balance-consistent schedule. Invariants held for every entry n:
//
//	beginningBalance(n) == endingBalance(n-1)
//	paymentDue(n) == principalDue(n) + interestDue(n)
//	endingBalance(n) == beginningBalance(n) - principalDue(n)
//	endingBalance(last) == 0
//
// Due dates advance by exactly one calendar month from the previous
// entry's date, not a fixed day count.
func GenerateSchedule(p Parameters) (*Schedule, error) {
	if p.TermMonths <= 0 {
		return nil, fmt.Errorf("%w: term months must be positive", apperrors.ErrInvalidArgument)
	}

	payment, err := resolvePayment(p)
	if err != nil {
		return nil, err
	}

	monthlyRate := p.AnnualRate / monthsPerYear

	dueDate := p.FirstPaymentDate
	if dueDate.IsZero() {
		dueDate = time.Now()
	}

	schedule := &Schedule{
		LoanAmount: p.LoanAmount,
		AnnualRate: p.AnnualRate,
		Payment:    payment,
		TermMonths: p.TermMonths,
		Entries:    make([]ScheduleEntry, 0, p.TermMonths),
	}

	balance := p.LoanAmount
	totalInterest := 0.0

	for period := 1; period <= p.TermMonths; period++ {
		beginning := balance
		interest := money.RoundCents(beginning * monthlyRate)
		principal := money.RoundCents(payment - interest)

		// Final nominal period, or the rounded principal would
		// overshoot the remaining balance: pay the balance off in
		// full instead.
		if period == p.TermMonths || beginning < principal {
			principal = beginning
		}

		paymentDue := money.RoundCents(principal + interest)
		balance = money.RoundCents(beginning - principal)

		schedule.Entries = append(schedule.Entries, ScheduleEntry{
			PeriodNumber:     period,
			DueDate:          dueDate,
			BeginningBalance: beginning,
			PaymentDue:       paymentDue,
			PrincipalDue:     principal,
			InterestDue:      interest,
			EndingBalance:    balance,
		})

		totalInterest += interest

		if balance <= 0 {
			break
		}
		dueDate = dueDate.AddDate(0, 1, 0)
	}

	schedule.TotalInterest = money.RoundCents(totalInterest)
	schedule.TotalPayments = money.RoundCents(float64(len(schedule.Entries)) * payment)

	return schedule, nil
}

func resolvePayment(p Parameters) (float64, error) {
	if p.Payment != nil {
		return *p.Payment, nil
	}
	return MonthlyPayment(p.LoanAmount, p.AnnualRate, p.TermMonths)
}
