package property

import "math"

const (
	baseScore = 50
	minScore  = 0
	maxScore  = 100

	earthRadiusMiles = 3958.8

	minEligibleMarketValue = 10_000
	maxTaxBurdenRatio      = 0.25
)

// Score rates a property's investment quality on a 0-100 scale.
// Starting from a base of 50: market value earns a single bonus at the
// highest threshold crossed, the tax-to-value ratio and ownership flags
// adjust downward, and a high improvement share of total value adjusts
// upward. The result is clamped to [0, 100].
func (p *Property) Score() int {
	score := baseScore
	marketValue := p.effectiveMarketValue()

	switch {
	case marketValue > 100_000:
		score += 30
	case marketValue > 50_000:
		score += 20
	case marketValue > 25_000:
		score += 10
	}

	if marketValue > 0 {
		taxRatio := p.PLEAmountDue / marketValue
		switch {
		case taxRatio < 0.05:
			score += 10
		case taxRatio > 0.20:
			score -= 20
		case taxRatio > 0.10:
			score -= 10
		}
	}

	if p.ExistingTaxLoan {
		score -= 15
	}
	if p.InForeclosure {
		score -= 30
	}

	if p.TotalValue > 0 {
		improvementRatio := p.ImprovementValue / p.TotalValue
		if improvementRatio > 0.7 {
			score += 15
		} else if improvementRatio < 0.3 {
			score -= 10
		}
	}

	if score < minScore {
		score = minScore
	}
	if score > maxScore {
		score = maxScore
	}
	return score
}

// EligibilityResult carries the verdict and every reason the property
// failed, so a caller can surface all problems at once.
type EligibilityResult struct {
	Eligible bool
	Reasons  []string
}

// Eligibility checks every rule independently and never short-circuits.
func (p *Property) Eligibility() EligibilityResult {
	var reasons []string
	marketValue := p.effectiveMarketValue()

	if marketValue < minEligibleMarketValue {
		reasons = append(reasons, "market value too low")
	}
	if p.InForeclosure {
		reasons = append(reasons, "property is in foreclosure")
	}
	if p.PLEAmountDue > marketValue*maxTaxBurdenRatio {
		reasons = append(reasons, "tax burden exceeds 25% of market value")
	}
	if p.Latitude == 0 || p.Longitude == 0 {
		reasons = append(reasons, "invalid coordinates")
	}
	if !p.IsActive {
		reasons = append(reasons, "property is inactive")
	}

	return EligibilityResult{Eligible: len(reasons) == 0, Reasons: reasons}
}

// DistanceMiles returns the great-circle distance between two points
// using the Haversine formula.
func DistanceMiles(lat1, lng1, lat2, lng2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLng := toRadians(lng2 - lng1)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(toRadians(lat1))*math.Cos(toRadians(lat2))*
			math.Sin(dLng/2)*math.Sin(dLng/2)
	c := 2 * math.Atan2(math.Sqrt(a), math.Sqrt(1-a))

	return earthRadiusMiles * c
}

// DistanceTo returns the distance in miles from this property to
// another point.
func (p *Property) DistanceTo(latitude, longitude float64) float64 {
	return DistanceMiles(p.Latitude, p.Longitude, latitude, longitude)
}

func toRadians(degrees float64) float64 {
	return degrees * math.Pi / 180
}
