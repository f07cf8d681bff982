package loan

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"time"

	"fincalc-engine/internal/event"
	"fincalc-engine/internal/infrastructure/monitoring"
	"fincalc-engine/internal/pkg/apperrors"
)

// APRQuery carries the already-known payment stream an APR is solved
// from.
type APRQuery struct {
	TermMonths    int
	LoanAmount    float64
	Payment       float64
	DeferredDays  int
	OddDaysAmount float64
}

// Cache is the result cache consumed by the service. Implementations
// must be safe for concurrent use; a nil cache disables caching.
type Cache interface {
	Get(ctx context.Context, key string) (string, bool)
	Set(ctx context.Context, key string, value string)
}

type CalculationService interface {
	Validate(ctx context.Context, params Parameters) ValidationResult

	MonthlyPayment(ctx context.Context, loanAmount, annualRate float64, termMonths int) (float64, error)

	GenerateSchedule(ctx context.Context, params Parameters) (*Schedule, error)

	SolveAPR(ctx context.Context, query APRQuery) (float64, error)
}

var _ CalculationService = (*calculationService)(nil)

type calculationService struct {
	cache  Cache
	pub    event.Publisher
	logger *slog.Logger
}

// NewCalculationService wraps the pure calculation core with logging,
// metrics, optional result caching and optional event publication. Both
// cache and publisher may be nil.
func NewCalculationService(cache Cache, publisher event.Publisher, logger *slog.Logger) CalculationService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewCalculationService, using default stderr handler")
	}

	return &calculationService{
		cache:  cache,
		pub:    publisher,
		logger: logger.With(slog.String("component", "calculationService")),
	}
}

func (s *calculationService) Validate(ctx context.Context, params Parameters) ValidationResult {
	result := ValidateParameters(params)
	if !result.Valid {
		s.logger.InfoContext(ctx, "Loan parameters rejected", "violations", len(result.Errors))
	}
	return result
}

func (s *calculationService) MonthlyPayment(ctx context.Context, loanAmount, annualRate float64, termMonths int) (float64, error) {
	payment, err := MonthlyPayment(loanAmount, annualRate, termMonths)
	if err != nil {
		s.logger.ErrorContext(ctx, "Monthly payment calculation failed", "error", err)
		return 0, err
	}
	return payment, nil
}

func (s *calculationService) GenerateSchedule(ctx context.Context, params Parameters) (*Schedule, error) {
	start := time.Now()

	if result := ValidateParameters(params); !result.Valid {
		s.logger.ErrorContext(ctx, "Schedule generation rejected", "violations", result.Errors)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, result.Errors)
	}

	schedule, err := GenerateSchedule(params)
	if err != nil {
		s.logger.ErrorContext(ctx, "Schedule generation failed", "error", err)
		return nil, err
	}

	monitoring.RecordScheduleGenerated(time.Since(start))
	s.logger.InfoContext(ctx, "Schedule generated",
		"loanAmount", schedule.LoanAmount,
		"termMonths", schedule.TermMonths,
		"realizedPeriods", len(schedule.Entries),
	)

	s.publishScheduleGenerated(ctx, schedule)

	return schedule, nil
}

func (s *calculationService) publishScheduleGenerated(ctx context.Context, schedule *Schedule) {
	if s.pub == nil {
		return
	}

	ev := event.ScheduleGeneratedEvent{
		LoanAmount:      schedule.LoanAmount,
		AnnualRate:      schedule.AnnualRate,
		Payment:         schedule.Payment,
		TermMonths:      schedule.TermMonths,
		RealizedPeriods: len(schedule.Entries),
		TotalInterest:   schedule.TotalInterest,
		Timestamp:       time.Now(),
	}
	if err := s.pub.PublishScheduleGenerated(ctx, ev); err != nil {
		// Event delivery is best effort; the schedule was computed fine.
		s.logger.WarnContext(ctx, "Failed to publish schedule generated event", "error", err)
	}
}

func (s *calculationService) SolveAPR(ctx context.Context, query APRQuery) (float64, error) {
	start := time.Now()

	if query.TermMonths <= 0 {
		return 0, fmt.Errorf("%w: term months must be positive", apperrors.ErrInvalidArgument)
	}
	if query.LoanAmount <= 0 || query.Payment <= 0 {
		return 0, fmt.Errorf("%w: loan amount and payment must be greater than zero", apperrors.ErrInvalidArgument)
	}

	key := aprCacheKey(query)
	if s.cache != nil {
		if cached, ok := s.cache.Get(ctx, key); ok {
			if rate, err := strconv.ParseFloat(cached, 64); err == nil {
				monitoring.RecordAPRSolve("hit", time.Since(start))
				s.logger.DebugContext(ctx, "APR solve served from cache", "key", key)
				return rate, nil
			}
		}
	}

	rate := SolveAPR(query.TermMonths, query.LoanAmount, query.Payment, query.DeferredDays, query.OddDaysAmount)

	if s.cache != nil {
		s.cache.Set(ctx, key, strconv.FormatFloat(rate, 'f', 4, 64))
	}

	monitoring.RecordAPRSolve("miss", time.Since(start))
	s.logger.InfoContext(ctx, "APR solved", "termMonths", query.TermMonths, "rate", rate)

	return rate, nil
}

func aprCacheKey(q APRQuery) string {
	return fmt.Sprintf("apr:%d:%.2f:%.2f:%d:%.2f", q.TermMonths, q.LoanAmount, q.Payment, q.DeferredDays, q.OddDaysAmount)
}
