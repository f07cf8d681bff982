package loan

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertScheduleInvariants(t *testing.T, schedule *Schedule) {
	t.Helper()
	require.NotEmpty(t, schedule.Entries)

	principalSum := 0.0
	for i, entry := range schedule.Entries {
		assert.Equal(t, i+1, entry.PeriodNumber)
		assert.InDelta(t, entry.PrincipalDue+entry.InterestDue, entry.PaymentDue, 0.001)
		assert.InDelta(t, entry.BeginningBalance-entry.PrincipalDue, entry.EndingBalance, 0.001)
		assert.GreaterOrEqual(t, entry.EndingBalance, 0.0)
		if i > 0 {
			assert.Equal(t, schedule.Entries[i-1].EndingBalance, entry.BeginningBalance)
		}
		principalSum += entry.PrincipalDue
	}

	last := schedule.Entries[len(schedule.Entries)-1]
	assert.Equal(t, 0.0, last.EndingBalance)
	assert.InDelta(t, schedule.LoanAmount, principalSum, 0.02)
}

func TestGenerateSchedule(t *testing.T) {
	firstPayment := time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

	t.Run("amortizes a standard loan over the full term", func(t *testing.T) {
		schedule, err := GenerateSchedule(Parameters{
			LoanAmount:       100_000,
			AnnualRate:       0.085,
			TermMonths:       360,
			FirstPaymentDate: firstPayment,
		})
		require.NoError(t, err)

		assert.Len(t, schedule.Entries, 360)
		assert.Equal(t, 768.91, schedule.Payment)
		assertScheduleInvariants(t, schedule)
	})

	t.Run("zero rate pays no interest", func(t *testing.T) {
		schedule, err := GenerateSchedule(Parameters{
			LoanAmount:       100_000,
			AnnualRate:       0,
			TermMonths:       12,
			FirstPaymentDate: firstPayment,
		})
		require.NoError(t, err)

		assert.Len(t, schedule.Entries, 12)
		assert.Equal(t, 0.0, schedule.TotalInterest)
		// Rounding dust lands in the final payoff period.
		assert.Equal(t, 8333.37, schedule.Entries[11].PrincipalDue)
		assertScheduleInvariants(t, schedule)
	})

	t.Run("due dates advance by one calendar month", func(t *testing.T) {
		schedule, err := GenerateSchedule(Parameters{
			LoanAmount:       10_000,
			AnnualRate:       0.06,
			TermMonths:       6,
			FirstPaymentDate: firstPayment,
		})
		require.NoError(t, err)

		for i, entry := range schedule.Entries {
			assert.Equal(t, firstPayment.AddDate(0, i, 0), entry.DueDate)
		}
	})

	t.Run("oversized supplied payment pays off early", func(t *testing.T) {
		payment := 500.0
		schedule, err := GenerateSchedule(Parameters{
			LoanAmount:       1_000,
			AnnualRate:       0.12,
			TermMonths:       12,
			Payment:          &payment,
			FirstPaymentDate: firstPayment,
		})
		require.NoError(t, err)

		assert.Len(t, schedule.Entries, 3)
		final := schedule.Entries[2]
		assert.Equal(t, 15.10, final.PrincipalDue)
		assert.Equal(t, 15.25, final.PaymentDue)
		assertScheduleInvariants(t, schedule)

		assert.Equal(t, 1500.00, schedule.TotalPayments)
	})

	t.Run("supplied payment is used verbatim", func(t *testing.T) {
		payment := 750.0
		schedule, err := GenerateSchedule(Parameters{
			LoanAmount:       100_000,
			AnnualRate:       0.085,
			TermMonths:       360,
			Payment:          &payment,
			FirstPaymentDate: firstPayment,
		})
		require.NoError(t, err)
		assert.Equal(t, 750.0, schedule.Payment)
	})

	t.Run("total interest is the rounded sum of period interest", func(t *testing.T) {
		schedule, err := GenerateSchedule(Parameters{
			LoanAmount:       50_000,
			AnnualRate:       0.06,
			TermMonths:       120,
			FirstPaymentDate: firstPayment,
		})
		require.NoError(t, err)

		sum := 0.0
		for _, entry := range schedule.Entries {
			sum += entry.InterestDue
		}
		assert.InDelta(t, sum, schedule.TotalInterest, 0.005)
	})

	t.Run("rejects a zero term", func(t *testing.T) {
		_, err := GenerateSchedule(Parameters{LoanAmount: 1000, TermMonths: 0})
		assert.Error(t, err)
	})

	t.Run("defaults the first due date to now", func(t *testing.T) {
		schedule, err := GenerateSchedule(Parameters{
			LoanAmount: 1_000,
			AnnualRate: 0,
			TermMonths: 2,
		})
		require.NoError(t, err)
		assert.WithinDuration(t, time.Now(), schedule.Entries[0].DueDate, time.Minute)
	})
}
