package property

import (
	"context"
	"log/slog"
	"os"
	"time"

	"fincalc-engine/internal/event"
	"fincalc-engine/internal/infrastructure/monitoring"
)

type ScoringService interface {
	Score(ctx context.Context, p *Property) int

	CheckEligibility(ctx context.Context, p *Property) EligibilityResult

	Distance(ctx context.Context, lat1, lng1, lat2, lng2 float64) float64
}

var _ ScoringService = (*scoringService)(nil)

type scoringService struct {
	pub    event.Publisher
	logger *slog.Logger
}

// NewScoringService wraps the pure scoring model with logging, metrics
// and optional event publication. The publisher may be nil.
func NewScoringService(publisher event.Publisher, logger *slog.Logger) ScoringService {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
		logger.Warn("Warning: No logger provided to NewScoringService, using default stderr handler")
	}

	return &scoringService{
		pub:    publisher,
		logger: logger.With(slog.String("component", "scoringService")),
	}
}

func (s *scoringService) Score(ctx context.Context, p *Property) int {
	start := time.Now()

	score := p.Score()

	monitoring.RecordPropertyScored(time.Since(start))
	s.logger.InfoContext(ctx, "Property scored", "score", score, "marketValue", p.effectiveMarketValue())

	if s.pub != nil {
		ev := event.PropertyScoredEvent{
			Score:       score,
			MarketValue: p.effectiveMarketValue(),
			Timestamp:   time.Now(),
		}
		if err := s.pub.PublishPropertyScored(ctx, ev); err != nil {
			s.logger.WarnContext(ctx, "Failed to publish property scored event", "error", err)
		}
	}

	return score
}

func (s *scoringService) CheckEligibility(ctx context.Context, p *Property) EligibilityResult {
	start := time.Now()

	result := p.Eligibility()

	monitoring.RecordEligibilityCheck(result.Eligible, time.Since(start))
	s.logger.InfoContext(ctx, "Eligibility checked", "eligible", result.Eligible, "reasons", len(result.Reasons))

	return result
}

func (s *scoringService) Distance(ctx context.Context, lat1, lng1, lat2, lng2 float64) float64 {
	return DistanceMiles(lat1, lng1, lat2, lng2)
}
