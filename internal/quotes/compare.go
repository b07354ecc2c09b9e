// Package quotes builds the side-by-side quote comparison grid.
package quotes

import (
	"strconv"

	"github.com/vznlabdev/cr-dashboard-broker/internal/models"
)

// Cell is one quote's value for a comparison row.
type Cell struct {
	QuoteID string `json:"quote_id"`
	Value   string `json:"value"`
	Best    bool   `json:"best"`
}

// Row is one metric across every quote.
type Row struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Values []Cell `json:"values"`
}

// Comparison is the full grid for one submission's quotes. The best ids
// are empty when no quote is in a comparable state.
type Comparison struct {
	Quotes           []models.Quote `json:"quotes"`
	Rows             []Row          `json:"rows"`
	BestPremiumID    string         `json:"best_premium_id"`
	BestDeductibleID string         `json:"best_deductible_id"`
}

// Compare builds the grid over the given quotes in their input order.
// With no quotes there is no grid: the rows come back empty rather than
// as six valueless entries. Only pending and accepted quotes compete for
// best-value flags: the lowest premium wins, the highest deductible wins,
// and the first quote in input order takes a tie. Declined and expired
// quotes still appear in the grid but are never flagged.
func Compare(qs []models.Quote) Comparison {
	if len(qs) == 0 {
		return Comparison{Quotes: []models.Quote{}, Rows: []Row{}}
	}

	bestPremiumID, bestDeductibleID := bestQuotes(qs)

	rows := []Row{
		buildRow("premium", "Premium", qs, func(q models.Quote) (string, bool) {
			return money(q.PremiumQuoted), q.ID == bestPremiumID
		}),
		buildRow("deductible", "Deductible", qs, func(q models.Quote) (string, bool) {
			return money(q.Deductible), q.ID == bestDeductibleID
		}),
		buildRow("line_size", "Line Size", qs, func(q models.Quote) (string, bool) {
			// LineSize is already a percentage, per the dataset convention.
			return strconv.FormatFloat(q.LineSize, 'f', -1, 64) + "%", false
		}),
		buildRow("lead_follow", "Lead / Follow", qs, func(q models.Quote) (string, bool) {
			return string(q.LeadOrFollow), false
		}),
		buildRow("expiry", "Quote Expiry", qs, func(q models.Quote) (string, bool) {
			return q.ExpiryDate, false
		}),
		buildRow("status", "Status", qs, func(q models.Quote) (string, bool) {
			return string(q.Status), false
		}),
	}

	return Comparison{
		Quotes:           qs,
		Rows:             rows,
		BestPremiumID:    bestPremiumID,
		BestDeductibleID: bestDeductibleID,
	}
}

func isComparable(q models.Quote) bool {
	return q.Status == models.QuotePending || q.Status == models.QuoteAccepted
}

func bestQuotes(qs []models.Quote) (premiumID, deductibleID string) {
	for _, q := range qs {
		if !isComparable(q) {
			continue
		}
		if premiumID == "" {
			premiumID, deductibleID = q.ID, q.ID
			continue
		}
		if q.PremiumQuoted < premiumByID(qs, premiumID) {
			premiumID = q.ID
		}
		if q.Deductible > deductibleByID(qs, deductibleID) {
			deductibleID = q.ID
		}
	}
	return premiumID, deductibleID
}

func premiumByID(qs []models.Quote, id string) float64 {
	for _, q := range qs {
		if q.ID == id {
			return q.PremiumQuoted
		}
	}
	return 0
}

func deductibleByID(qs []models.Quote, id string) float64 {
	for _, q := range qs {
		if q.ID == id {
			return q.Deductible
		}
	}
	return 0
}

func buildRow(key, label string, qs []models.Quote, value func(models.Quote) (string, bool)) Row {
	cells := make([]Cell, 0, len(qs))
	for _, q := range qs {
		v, best := value(q)
		cells = append(cells, Cell{QuoteID: q.ID, Value: v, Best: best})
	}
	return Row{Key: key, Label: label, Values: cells}
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
