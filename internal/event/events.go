package event

import "time"

// ScheduleGeneratedEvent announces a freshly generated amortization
// schedule to downstream consumers (CRM fan-out, notifications).
type ScheduleGeneratedEvent struct {
	LoanAmount      float64   `json:"loanAmount"`
	AnnualRate      float64   `json:"annualRate"`
	Payment         float64   `json:"payment"`
	TermMonths      int       `json:"termMonths"`
	RealizedPeriods int       `json:"realizedPeriods"`
	TotalInterest   float64   `json:"totalInterest"`
	Timestamp       time.Time `json:"timestamp"`
}

// PropertyScoredEvent announces a completed property scoring run.
type PropertyScoredEvent struct {
	Score       int       `json:"score"`
	MarketValue float64   `json:"marketValue"`
	Eligible    *bool     `json:"eligible,omitempty"`
	Timestamp   time.Time `json:"timestamp"`
}
