// Package analytics computes the derived numbers the dashboard displays.
// Every function is a pure reduction with explicit guards: degenerate input
// yields a defined zero or sentinel value, never NaN and never a panic.
package analytics

import (
	"math"
	"sort"
	"time"

	"github.com/vznlabdev/cr-dashboard-broker/internal/models"
)

// GradeUnknown is displayed when there is nothing to average.
const GradeUnknown = "—"

// AverageRiskGrade maps each client's grade onto its ordinal (F=1 … A=6),
// averages, rounds to the nearest grade and maps back to a letter.
func AverageRiskGrade(clients []models.Client) string {
	if len(clients) == 0 {
		return GradeUnknown
	}
	sum := 0
	for _, c := range clients {
		sum += c.RiskGrade.Ordinal()
	}
	avg := float64(sum) / float64(len(clients))
	grade := models.GradeFromOrdinal(int(math.Round(avg)))
	if grade == "" {
		return GradeUnknown
	}
	return string(grade)
}

func TotalGWP(clients []models.Client) float64 {
	var total float64
	for _, c := range clients {
		total += c.GWP
	}
	return total
}

// YearOverYearChange returns the percentage change from prior to current.
// A zero prior has no defined change and reads as 0.
func YearOverYearChange(current, prior float64) float64 {
	if prior == 0 {
		return 0
	}
	return (current - prior) / prior * 100
}

// SLABand is the tri-state indicator derived from stage compliance.
type SLABand string

const (
	SLAOnTrack SLABand = "on-track"
	SLAAtRisk  SLABand = "at-risk"
	SLABreach  SLABand = "breach"
)

// SLACompliance returns the stage's compliance percentage, rounded to the
// nearest integer. A stage with no active items is fully compliant.
func SLACompliance(step models.ProcessStep) int {
	if step.ActiveCount == 0 {
		return 100
	}
	pct := float64(step.ActiveCount-step.OverdueCount) / float64(step.ActiveCount) * 100
	return int(math.Round(pct))
}

func SLAIndicator(step models.ProcessStep) SLABand {
	pct := SLACompliance(step)
	switch {
	case pct >= 90:
		return SLAOnTrack
	case pct >= 70:
		return SLAAtRisk
	default:
		return SLABreach
	}
}

// PendingRenewals counts active and pending-renewal policies whose expiry
// falls within [ref, ref+horizonDays], both bounds inclusive. Policies with
// unparseable expiry dates are skipped.
func PendingRenewals(policies []models.Policy, ref time.Time, horizonDays int) int {
	horizon := ref.AddDate(0, 0, horizonDays)
	count := 0
	for _, p := range policies {
		if p.Status != models.PolicyActive && p.Status != models.PolicyPendingRenewal {
			continue
		}
		exp, err := time.Parse("2006-01-02", p.ExpiryDate)
		if err != nil {
			continue
		}
		if !exp.Before(ref) && !exp.After(horizon) {
			count++
		}
	}
	return count
}

// AverageDaysOpen averages DaysOpen over submissions still working the
// market (submitted or quoted), rounded to the nearest day.
func AverageDaysOpen(subs []models.Submission) int {
	sum, n := 0, 0
	for _, s := range subs {
		if s.Status == models.SubmissionSubmitted || s.Status == models.SubmissionQuoted {
			sum += s.DaysOpen
			n++
		}
	}
	if n == 0 {
		return 0
	}
	return int(math.Round(float64(sum) / float64(n)))
}

// FunnelStage is one step of the submission → quote → bind conversion funnel.
type FunnelStage struct {
	Stage string  `json:"stage"`
	Count int     `json:"count"`
	Pct   float64 `json:"pct"`
}

func ConversionFunnel(conv models.PipelineConversion) []FunnelStage {
	pct := func(n int) float64 {
		if conv.SubmissionsTotal == 0 {
			return 0
		}
		return float64(n) / float64(conv.SubmissionsTotal) * 100
	}
	return []FunnelStage{
		{Stage: "Submissions", Count: conv.SubmissionsTotal, Pct: 100},
		{Stage: "Quotes", Count: conv.QuotesReceived, Pct: pct(conv.QuotesReceived)},
		{Stage: "Binds", Count: conv.Binds, Pct: pct(conv.Binds)},
	}
}

// RenewalTrend is the renewal-rate movement from the prior year to the
// latest year, in percentage points. Fewer than two years reads as 0.
func RenewalTrend(years []models.HistoricYear) float64 {
	if len(years) < 2 {
		return 0
	}
	latest := years[len(years)-1]
	prior := years[len(years)-2]
	return (latest.RenewalRate - prior.RenewalRate) * 100
}

// GWPTrend is the year-over-year GWP change of the latest historic year.
func GWPTrend(years []models.HistoricYear) float64 {
	if len(years) < 2 {
		return 0
	}
	return YearOverYearChange(years[len(years)-1].GWP, years[len(years)-2].GWP)
}

// AvgAccountPremium is a year's GWP spread over its accounts.
func AvgAccountPremium(y models.HistoricYear) float64 {
	if y.AccountCount == 0 {
		return 0
	}
	return y.GWP / float64(y.AccountCount)
}

// LargeLosses returns claims ordered by incurred amount, largest first.
// Ties keep their original relative order.
func LargeLosses(claims []models.Claim) []models.Claim {
	out := make([]models.Claim, len(claims))
	copy(out, claims)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].IncurredAmount > out[j].IncurredAmount
	})
	return out
}

// GradeCount is one slice of the risk-grade distribution donut.
type GradeCount struct {
	Grade models.RiskGrade `json:"grade"`
	Count int              `json:"count"`
}

// RiskGradeDistribution counts clients per grade, best grade first.
// Grades with no clients are omitted.
func RiskGradeDistribution(clients []models.Client) []GradeCount {
	counts := map[models.RiskGrade]int{}
	for _, c := range clients {
		counts[c.RiskGrade]++
	}
	grades := []models.RiskGrade{models.GradeA, models.GradeB, models.GradeC, models.GradeD, models.GradeE, models.GradeF}
	var out []GradeCount
	for _, g := range grades {
		if counts[g] > 0 {
			out = append(out, GradeCount{Grade: g, Count: counts[g]})
		}
	}
	return out
}
