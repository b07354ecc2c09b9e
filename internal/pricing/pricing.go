// Package pricing implements the technical premium model for content
// rights risks. Rates come from the static rate table, keyed by territory
// and risk grade, with a deliberate fallback to the UK book rate when no
// entry exists for the requested combination.
package pricing

import (
	"math"

	"github.com/google/uuid"

	"github.com/vznlabdev/cr-dashboard-broker/internal/models"
)

const (
	// assumedLossRatio backs the burning cost line of the breakdown.
	assumedLossRatio = 0.10
	// marketLoading is the uplift from technical to indicated market premium.
	marketLoading = 0.05
)

// defaultRate applies when the table has no usable row at all.
var defaultRate = models.RateTableRow{RatePerMillion: 50, MinPremium: 25000}

// Result is one priced scenario.
type Result struct {
	CalculationID    string           `json:"calculation_id"`
	InsuredValue     float64          `json:"insured_value"`
	RiskScore        float64          `json:"risk_score"`
	RiskGrade        models.RiskGrade `json:"risk_grade"`
	Territory        models.Territory `json:"territory"`
	RatePerMillion   float64          `json:"rate_per_million"`
	MinPremium       float64          `json:"min_premium"`
	TechnicalPremium float64          `json:"technical_premium"`
	BurningCost      float64          `json:"burning_cost"`
	MarketPremium    float64          `json:"market_premium"`
	RatePct          float64          `json:"rate_pct"`
}

type Calculator struct {
	rates []models.RateTableRow
}

func NewCalculator(rates []models.RateTableRow) *Calculator {
	return &Calculator{rates: rates}
}

// GradeForScore bands a 1..100 risk score into a pricing grade. Lower
// scores are better risks.
func GradeForScore(score float64) models.RiskGrade {
	switch {
	case score <= 40:
		return models.GradeA
	case score <= 70:
		return models.GradeB
	default:
		return models.GradeC
	}
}

// resolveRate finds the rate row for a territory and grade. When there is
// no exact match the first UK row in the table applies regardless of grade,
// keeping quotes anchored to the home book; only an empty table falls back
// to the house default.
func (c *Calculator) resolveRate(territory models.Territory, grade models.RiskGrade) models.RateTableRow {
	for _, r := range c.rates {
		if r.Territory == territory && r.RiskGrade == grade {
			return r
		}
	}
	for _, r := range c.rates {
		if r.Territory == models.TerritoryUK {
			return r
		}
	}
	return defaultRate
}

// Calculate prices one scenario. The technical premium is floored at the
// row's minimum, the burning cost and market premium derive from it, and
// the rate percentage guards against a zero insured value.
func (c *Calculator) Calculate(insuredValue, riskScore float64, territory models.Territory) Result {
	insuredValue = ClampInsuredValue(insuredValue)
	riskScore = ClampRiskScore(riskScore)

	grade := GradeForScore(riskScore)
	rate := c.resolveRate(territory, grade)

	technical := math.Max(rate.MinPremium, insuredValue/1_000_000*rate.RatePerMillion)
	market := technical * (1 + marketLoading)

	var ratePct float64
	if insuredValue > 0 {
		ratePct = market / insuredValue * 100
	}

	return Result{
		CalculationID:    uuid.NewString(),
		InsuredValue:     insuredValue,
		RiskScore:        riskScore,
		RiskGrade:        grade,
		Territory:        territory,
		RatePerMillion:   rate.RatePerMillion,
		MinPremium:       rate.MinPremium,
		TechnicalPremium: technical,
		BurningCost:      technical * assumedLossRatio,
		MarketPremium:    market,
		RatePct:          ratePct,
	}
}

// ClampInsuredValue floors the insured value at zero. NaN reads as zero.
func ClampInsuredValue(v float64) float64 {
	if math.IsNaN(v) || v < 0 {
		return 0
	}
	return v
}

// ClampRiskScore pins the score into [1, 100]. NaN reads as the midpoint.
func ClampRiskScore(v float64) float64 {
	if math.IsNaN(v) {
		return 50
	}
	if v < 1 {
		return 1
	}
	if v > 100 {
		return 100
	}
	return v
}
