// Package markets builds the syndicate appetite and capacity views.
package markets

import (
	"math"

	"github.com/vznlabdev/cr-dashboard-broker/internal/models"
)

// AppetiteMatrix is the syndicate-by-territory appetite grid. Axis order
// follows first appearance in the underlying data, not alphabetical order,
// so the grid reads the same as the source table.
type AppetiteMatrix struct {
	Syndicates  []string           `json:"syndicates"`
	Territories []models.Territory `json:"territories"`
	cells       map[string]models.AppetiteLevel
}

func appetiteKey(syndicate string, territory models.Territory) string {
	return syndicate + "|" + string(territory)
}

// BuildAppetiteMatrix indexes the appetite cells. Axes come from the cells
// themselves in first-seen order.
func BuildAppetiteMatrix(cells []models.AppetiteCell) *AppetiteMatrix {
	m := &AppetiteMatrix{cells: make(map[string]models.AppetiteLevel, len(cells))}
	seenSyn := map[string]bool{}
	seenTer := map[models.Territory]bool{}
	for _, c := range cells {
		if !seenSyn[c.Syndicate] {
			seenSyn[c.Syndicate] = true
			m.Syndicates = append(m.Syndicates, c.Syndicate)
		}
		if !seenTer[c.Territory] {
			seenTer[c.Territory] = true
			m.Territories = append(m.Territories, c.Territory)
		}
		m.cells[appetiteKey(c.Syndicate, c.Territory)] = c.Appetite
	}
	return m
}

// Level reads one cell. Missing combinations read as declined, so the grid
// never shows a blank.
func (m *AppetiteMatrix) Level(syndicate string, territory models.Territory) models.AppetiteLevel {
	if lvl, ok := m.cells[appetiteKey(syndicate, territory)]; ok {
		return lvl
	}
	return models.AppetiteDeclined
}

// AppetiteGridRow is one rendered matrix row for transport.
type AppetiteGridRow struct {
	Syndicate string                 `json:"syndicate"`
	Levels    []models.AppetiteLevel `json:"levels"`
}

// Grid flattens the matrix into rows matching the Territories axis.
func (m *AppetiteMatrix) Grid() []AppetiteGridRow {
	rows := make([]AppetiteGridRow, 0, len(m.Syndicates))
	for _, s := range m.Syndicates {
		row := AppetiteGridRow{Syndicate: s, Levels: make([]models.AppetiteLevel, 0, len(m.Territories))}
		for _, t := range m.Territories {
			row.Levels = append(row.Levels, m.Level(s, t))
		}
		rows = append(rows, row)
	}
	return rows
}

// CoverageAppetite is one syndicate's coverage appetite and the contacts
// who place business there.
type CoverageAppetite struct {
	SyndicateKey    string                                       `json:"syndicate_key"`
	SyndicateName   string                                       `json:"syndicate_name"`
	SyndicateNumber string                                       `json:"syndicate_number"`
	Appetite        map[models.CoverageType]models.AppetiteLevel `json:"appetite"`
	Contacts        []models.SyndicateContact                    `json:"contacts"`
}

// BuildCoverageMatrix groups contacts by syndicate. The first contact seen
// for a syndicate defines its row and appetite; later contacts for the same
// syndicate only join the contact list. Row order follows the contact list.
func BuildCoverageMatrix(contacts []models.SyndicateContact) []CoverageAppetite {
	var rows []CoverageAppetite
	index := map[string]int{}
	for _, c := range contacts {
		key := c.SyndicateKey()
		if i, ok := index[key]; ok {
			rows[i].Contacts = append(rows[i].Contacts, c)
			continue
		}
		index[key] = len(rows)
		rows = append(rows, CoverageAppetite{
			SyndicateKey:    key,
			SyndicateName:   c.SyndicateName,
			SyndicateNumber: c.SyndicateNumber,
			Appetite:        c.Appetite,
			Contacts:        []models.SyndicateContact{c},
		})
	}
	return rows
}

// CapacityRow is one coverage line's capacity position.
type CapacityRow struct {
	CoverageType models.CoverageType `json:"coverage_type"`
	Label        string              `json:"label"`
	Available    float64             `json:"available"`
	Placed       float64             `json:"placed"`
	Remaining    float64             `json:"remaining"`
	PctFilled    int                 `json:"pct_filled"`
}

// BuildCapacityView derives remaining capacity and fill percentage per
// coverage line. Remaining goes negative when a line is overplaced; that is
// real information and is never clamped.
func BuildCapacityView(rows []models.CoverageCapacity) []CapacityRow {
	out := make([]CapacityRow, 0, len(rows))
	for _, r := range rows {
		pct := 0
		if r.AvailableCapacity != 0 {
			pct = int(math.Round(r.PlacedCapacity / r.AvailableCapacity * 100))
		}
		out = append(out, CapacityRow{
			CoverageType: r.CoverageType,
			Label:        r.Label,
			Available:    r.AvailableCapacity,
			Placed:       r.PlacedCapacity,
			Remaining:    r.AvailableCapacity - r.PlacedCapacity,
			PctFilled:    pct,
		})
	}
	return out
}

// TerritorySummary is the headline block on the markets page.
type TerritorySummary struct {
	TotalGWP          float64                    `json:"total_gwp"`
	TotalAccounts     int                        `json:"total_accounts"`
	ActiveTerritories int                        `json:"active_territories"`
	LargestMarket     *models.TerritoryBreakdown `json:"largest_market,omitempty"`
}

// SummarizeTerritories totals the territory breakdown. Territories with no
// premium do not count as active; the largest market is by GWP with the
// first row winning ties.
func SummarizeTerritories(rows []models.TerritoryBreakdown) TerritorySummary {
	var sum TerritorySummary
	for i, r := range rows {
		sum.TotalGWP += r.GWP
		sum.TotalAccounts += r.AccountCount
		if r.GWP > 0 {
			sum.ActiveTerritories++
		}
		if sum.LargestMarket == nil || r.GWP > sum.LargestMarket.GWP {
			row := rows[i]
			sum.LargestMarket = &row
		}
	}
	return sum
}
