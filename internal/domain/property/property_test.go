package property

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew(t *testing.T) {
	t.Run("total value is the sum of improvement and land", func(t *testing.T) {
		p := New(80_000, 20_000, 120_000, 32.7767, -96.7970)
		assert.Equal(t, 100_000.0, p.TotalValue)
		assert.Equal(t, 120_000.0, p.MarketValue)
		assert.True(t, p.IsActive)
		assert.False(t, p.AddressCorrected)
	})

	t.Run("zero market value falls back to total value", func(t *testing.T) {
		p := New(60_000, 15_000, 0, 32.7767, -96.7970)
		assert.Equal(t, 75_000.0, p.MarketValue)
	})
}

func TestPropertyUpdatesAreCopies(t *testing.T) {
	original := New(80_000, 20_000, 120_000, 32.7767, -96.7970)

	t.Run("WithValues recomputes totals on the copy only", func(t *testing.T) {
		next := original.WithValues(90_000, 30_000, 0)
		assert.Equal(t, 120_000.0, next.TotalValue)
		assert.Equal(t, 120_000.0, next.MarketValue)
		assert.Equal(t, next.CreatedAt, original.CreatedAt)

		assert.Equal(t, 100_000.0, original.TotalValue)
		assert.Equal(t, 80_000.0, original.ImprovementValue)
	})

	t.Run("WithTaxInfo leaves the receiver untouched", func(t *testing.T) {
		next := original.WithTaxInfo(5_000, true, true)
		assert.Equal(t, 5_000.0, next.PLEAmountDue)
		assert.True(t, next.ExistingTaxLoan)
		assert.True(t, next.InForeclosure)

		assert.Equal(t, 0.0, original.PLEAmountDue)
		assert.False(t, original.ExistingTaxLoan)
		assert.False(t, original.InForeclosure)
	})

	t.Run("MarkAddressCorrected", func(t *testing.T) {
		next := original.MarkAddressCorrected()
		assert.True(t, next.AddressCorrected)
		assert.False(t, original.AddressCorrected)
	})

	t.Run("Deactivate and Reactivate round trip", func(t *testing.T) {
		inactive := original.Deactivate()
		assert.False(t, inactive.IsActive)
		assert.True(t, original.IsActive)

		assert.True(t, inactive.Reactivate().IsActive)
		assert.False(t, inactive.IsActive)
	})

	t.Run("updates refresh UpdatedAt", func(t *testing.T) {
		next := original.WithValues(1, 2, 3)
		assert.False(t, next.UpdatedAt.Before(original.UpdatedAt))
	})
}
