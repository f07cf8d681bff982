package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundCents(t *testing.T) {
	tests := []struct {
		name string
		in   float64
		want float64
	}{
		{"rounds down below half", 10.114, 10.11},
		{"rounds half up away from zero", 10.115, 10.12},
		{"rounds half down away from zero", -10.115, -10.12},
		{"already two decimals", 10.11, 10.11},
		{"zero", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, RoundCents(tt.in), 1e-9)
		})
	}
}

func TestRoundTo(t *testing.T) {
	assert.InDelta(t, 0.0851, RoundTo(0.08505, 4), 1e-12)
	assert.InDelta(t, 0.085, RoundTo(0.085049, 4), 1e-12)
	assert.InDelta(t, -0.0851, RoundTo(-0.08505, 4), 1e-12)
}

func TestFormatUSD(t *testing.T) {
	assert.Equal(t, "$8333.33", FormatUSD(8333.33))
	assert.Equal(t, "$0.00", FormatUSD(0))
	assert.Equal(t, "$-12.50", FormatUSD(-12.5))
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "8333.33", FormatAmount(8333.33))
	assert.Equal(t, "100000.00", FormatAmount(100000))
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "8.50%", FormatPercent(0.085, 2))
	assert.Equal(t, "8.5000%", FormatPercent(0.085, 4))
	assert.Equal(t, "0%", FormatPercent(0, 0))
}
