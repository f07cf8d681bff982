// Package property implements the investment scoring model over
// immutable property value objects. A Property is never mutated in
// place: every update produces a fresh copy with a new UpdatedAt, so
// callers holding the old value are unaffected.
package property

import "time"

type Property struct {
	ImprovementValue float64
	LandValue        float64
	TotalValue       float64
	MarketValue      float64
	Latitude         float64
	Longitude        float64
	PLEAmountDue     float64
	ExistingTaxLoan  bool
	InForeclosure    bool
	IsActive         bool
	AddressCorrected bool
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// New constructs an active property. TotalValue is always the sum of
// improvement and land values; a zero marketValue defaults to the total
// value.
func New(improvementValue, landValue, marketValue, latitude, longitude float64) *Property {
	total := improvementValue + landValue
	if marketValue == 0 {
		marketValue = total
	}

	now := time.Now()
	return &Property{
		ImprovementValue: improvementValue,
		LandValue:        landValue,
		TotalValue:       total,
		MarketValue:      marketValue,
		Latitude:         latitude,
		Longitude:        longitude,
		IsActive:         true,
		CreatedAt:        now,
		UpdatedAt:        now,
	}
}

func (p *Property) clone() *Property {
	next := *p
	next.UpdatedAt = time.Now()
	return &next
}

// WithValues returns a copy with updated valuation figures. TotalValue
// is recomputed; a zero marketValue again falls back to the new total.
func (p *Property) WithValues(improvementValue, landValue, marketValue float64) *Property {
	next := p.clone()
	next.ImprovementValue = improvementValue
	next.LandValue = landValue
	next.TotalValue = improvementValue + landValue
	if marketValue == 0 {
		marketValue = next.TotalValue
	}
	next.MarketValue = marketValue
	return next
}

// WithTaxInfo returns a copy with updated tax lien data.
func (p *Property) WithTaxInfo(pleAmountDue float64, existingTaxLoan, inForeclosure bool) *Property {
	next := p.clone()
	next.PLEAmountDue = pleAmountDue
	next.ExistingTaxLoan = existingTaxLoan
	next.InForeclosure = inForeclosure
	return next
}

// MarkAddressCorrected returns a copy flagged as address-corrected.
func (p *Property) MarkAddressCorrected() *Property {
	next := p.clone()
	next.AddressCorrected = true
	return next
}

// Deactivate returns an inactive copy.
func (p *Property) Deactivate() *Property {
	next := p.clone()
	next.IsActive = false
	return next
}

// Reactivate returns an active copy.
func (p *Property) Reactivate() *Property {
	next := p.clone()
	next.IsActive = true
	return next
}

// effectiveMarketValue guards the ratio math: a zero market value falls
// back to the total value before any division.
func (p *Property) effectiveMarketValue() float64 {
	if p.MarketValue > 0 {
		return p.MarketValue
	}
	return p.TotalValue
}
