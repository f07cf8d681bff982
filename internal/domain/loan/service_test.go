package loan

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"testing"
	"time"

	"fincalc-engine/internal/event"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, nil))

type MockCache struct {
	mock.Mock
}

func (_m *MockCache) Get(ctx context.Context, key string) (string, bool) {
	ret := _m.Called(ctx, key)
	return ret.String(0), ret.Bool(1)
}

func (_m *MockCache) Set(ctx context.Context, key string, value string) {
	_m.Called(ctx, key, value)
}

type MockPublisher struct {
	mock.Mock
}

func (_m *MockPublisher) PublishScheduleGenerated(ctx context.Context, ev event.ScheduleGeneratedEvent) error {
	ret := _m.Called(ctx, ev)
	return ret.Error(0)
}

func (_m *MockPublisher) PublishPropertyScored(ctx context.Context, ev event.PropertyScoredEvent) error {
	ret := _m.Called(ctx, ev)
	return ret.Error(0)
}

func TestCalculationServiceValidate(t *testing.T) {
	svc := NewCalculationService(nil, nil, logger)

	result := svc.Validate(context.Background(), Parameters{LoanAmount: -1, AnnualRate: 2, TermMonths: 0})
	assert.False(t, result.Valid)
	assert.Len(t, result.Errors, 3)
}

func TestCalculationServiceMonthlyPayment(t *testing.T) {
	svc := NewCalculationService(nil, nil, logger)

	payment, err := svc.MonthlyPayment(context.Background(), 100_000, 0, 12)
	require.NoError(t, err)
	assert.Equal(t, 8333.33, payment)

	_, err = svc.MonthlyPayment(context.Background(), 100_000, 0.085, 0)
	assert.Error(t, err)
}

func TestCalculationServiceGenerateSchedule(t *testing.T) {
	firstPayment := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)

	t.Run("rejects invalid parameters", func(t *testing.T) {
		svc := NewCalculationService(nil, nil, logger)

		_, err := svc.GenerateSchedule(context.Background(), Parameters{LoanAmount: 0, TermMonths: 12})
		assert.Error(t, err)
	})

	t.Run("publishes an event on success", func(t *testing.T) {
		pub := new(MockPublisher)
		pub.On("PublishScheduleGenerated", mock.Anything, mock.MatchedBy(func(ev event.ScheduleGeneratedEvent) bool {
			return ev.TermMonths == 12 && ev.RealizedPeriods == 12
		})).Return(nil)

		svc := NewCalculationService(nil, pub, logger)

		schedule, err := svc.GenerateSchedule(context.Background(), Parameters{
			LoanAmount:       10_000,
			AnnualRate:       0.06,
			TermMonths:       12,
			FirstPaymentDate: firstPayment,
		})
		require.NoError(t, err)
		assert.Len(t, schedule.Entries, 12)
		pub.AssertExpectations(t)
	})

	t.Run("a failed publish does not fail the calculation", func(t *testing.T) {
		pub := new(MockPublisher)
		pub.On("PublishScheduleGenerated", mock.Anything, mock.Anything).Return(errors.New("broker down"))

		svc := NewCalculationService(nil, pub, logger)

		schedule, err := svc.GenerateSchedule(context.Background(), Parameters{
			LoanAmount:       10_000,
			AnnualRate:       0.06,
			TermMonths:       12,
			FirstPaymentDate: firstPayment,
		})
		require.NoError(t, err)
		assert.NotNil(t, schedule)
	})
}

func TestCalculationServiceSolveAPR(t *testing.T) {
	query := APRQuery{TermMonths: 120, LoanAmount: 50_000, Payment: 555.10}

	t.Run("computes and stores on cache miss", func(t *testing.T) {
		cache := new(MockCache)
		cache.On("Get", mock.Anything, mock.Anything).Return("", false)
		cache.On("Set", mock.Anything, mock.Anything, mock.Anything).Return()

		svc := NewCalculationService(cache, nil, logger)

		rate, err := svc.SolveAPR(context.Background(), query)
		require.NoError(t, err)
		assert.InDelta(t, 0.06, rate, 0.0001)
		cache.AssertExpectations(t)
	})

	t.Run("serves a cached result without recomputing", func(t *testing.T) {
		cache := new(MockCache)
		cache.On("Get", mock.Anything, mock.Anything).Return("0.0425", true)

		svc := NewCalculationService(cache, nil, logger)

		rate, err := svc.SolveAPR(context.Background(), query)
		require.NoError(t, err)
		assert.Equal(t, 0.0425, rate)
		cache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("works without a cache", func(t *testing.T) {
		svc := NewCalculationService(nil, nil, logger)

		rate, err := svc.SolveAPR(context.Background(), query)
		require.NoError(t, err)
		assert.InDelta(t, 0.06, rate, 0.0001)
	})

	t.Run("rejects invalid query shapes", func(t *testing.T) {
		svc := NewCalculationService(nil, nil, logger)

		_, err := svc.SolveAPR(context.Background(), APRQuery{TermMonths: 0, LoanAmount: 1000, Payment: 100})
		assert.Error(t, err)

		_, err = svc.SolveAPR(context.Background(), APRQuery{TermMonths: 12, LoanAmount: 0, Payment: 100})
		assert.Error(t, err)
	})
}
