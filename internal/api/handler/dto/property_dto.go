package dto

import (
	"fmt"

	"fincalc-engine/internal/domain/property"
)

type PropertyRequest struct {
	ImprovementValue float64 `json:"improvementValue"`
	LandValue        float64 `json:"landValue"`
	MarketValue      float64 `json:"marketValue,omitempty"`
	Latitude         float64 `json:"latitude"`
	Longitude        float64 `json:"longitude"`
	PLEAmountDue     float64 `json:"pleAmountDue,omitempty"`
	ExistingTaxLoan  bool    `json:"existingTaxLoan,omitempty"`
	InForeclosure    bool    `json:"inForeclosure,omitempty"`
	IsActive         *bool   `json:"isActive,omitempty"`
}

func (r *PropertyRequest) Validate() error {
	if r.ImprovementValue < 0 {
		return fmt.Errorf("improvementValue must not be negative")
	}
	if r.LandValue < 0 {
		return fmt.Errorf("landValue must not be negative")
	}
	if r.MarketValue < 0 {
		return fmt.Errorf("marketValue must not be negative")
	}
	if r.PLEAmountDue < 0 {
		return fmt.Errorf("pleAmountDue must not be negative")
	}
	return nil
}

// ToProperty builds the immutable domain value object via its
// constructor and update methods, so the total-value invariant and the
// market-value fallback are enforced in one place.
func (r *PropertyRequest) ToProperty() *property.Property {
	p := property.New(r.ImprovementValue, r.LandValue, r.MarketValue, r.Latitude, r.Longitude)
	p = p.WithTaxInfo(r.PLEAmountDue, r.ExistingTaxLoan, r.InForeclosure)
	if r.IsActive != nil && !*r.IsActive {
		p = p.Deactivate()
	}
	return p
}

type ScoreResponse struct {
	Score int `json:"score"`
}

type EligibilityResponse struct {
	Eligible bool     `json:"eligible"`
	Reasons  []string `json:"reasons"`
}

func NewEligibilityResponse(result property.EligibilityResult) EligibilityResponse {
	reasons := result.Reasons
	if reasons == nil {
		reasons = []string{}
	}
	return EligibilityResponse{Eligible: result.Eligible, Reasons: reasons}
}

type DistanceResponse struct {
	Miles float64 `json:"miles"`
}
