// Package dataset holds the static book of business. All data ships embedded
// in the binary and is decoded once at startup; nothing mutates it afterwards.
package dataset

import (
	"embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/vznlabdev/cr-dashboard-broker/internal/models"
)

//go:embed data/*.yaml
var dataFS embed.FS

// Data is the full immutable dataset backing every dashboard view.
type Data struct {
	Clients     []models.Client             `yaml:"clients"`
	Submissions []models.Submission         `yaml:"submissions"`
	Quotes      []models.Quote              `yaml:"quotes"`
	Policies    []models.Policy             `yaml:"policies"`
	Claims      []models.Claim              `yaml:"claims"`
	Wordings    []models.Wording            `yaml:"wordings"`
	Alerts      []models.AlertItem          `yaml:"alerts"`
	RiskScores  map[string]models.RiskScores `yaml:"risk_scores"`

	RateTable          []models.RateTableRow     `yaml:"rate_table"`
	LossRatioByYear    []models.LossRatioRow     `yaml:"loss_ratio_by_year"`
	AvgRateBySyndicate []models.SyndicateRateRow `yaml:"avg_rate_by_syndicate"`
	YoYRateChange      []models.YoYRateChangeRow `yaml:"yoy_rate_change"`
	LimitBandsPricing  []models.LimitBand        `yaml:"limit_bands_pricing"`

	TerritoryBreakdown []models.TerritoryBreakdown `yaml:"territory_breakdown"`
	AppetiteMatrix     []models.AppetiteCell       `yaml:"appetite_matrix"`
	LimitBandsMarket   []models.LimitBand          `yaml:"limit_bands_market"`
	PremiumBandsMarket []models.PremiumBand        `yaml:"premium_bands_market"`
	RegulatoryFlags    []models.RegulatoryFlag     `yaml:"regulatory_flags"`

	CapacityByCoverage []models.CoverageCapacity      `yaml:"capacity_by_coverage"`
	RelationshipScores []models.SyndicateRelationship `yaml:"relationship_scores"`

	ProcessSteps      []models.ProcessStep            `yaml:"process_steps"`
	ReferralTriggers  []models.ReferralTrigger        `yaml:"referral_triggers"`
	AuthorityMatrix   []models.AuthorityRow           `yaml:"authority_matrix"`
	DocumentChecklist []models.DocumentChecklistStage `yaml:"document_checklist"`

	HistoricYears      []models.HistoricYear      `yaml:"historic_years"`
	LimitBandsHistoric []models.LimitBand         `yaml:"limit_bands_historic"`
	Conversion         models.PipelineConversion  `yaml:"pipeline_conversion"`
	DeclineRates       []models.DeclineRateRow    `yaml:"decline_rate_by_syndicate"`

	BrokerTeam         []models.BrokerTeamMember      `yaml:"broker_team"`
	SyndicateContacts  []models.SyndicateContact      `yaml:"syndicate_contacts"`
	DelegatedAuthority []models.DelegatedAuthorityRow `yaml:"delegated_authority"`
}

var dataFiles = []string{
	"data/book.yaml",
	"data/pricing.yaml",
	"data/markets.yaml",
	"data/positioning.yaml",
	"data/processes.yaml",
	"data/historic.yaml",
	"data/people.yaml",
}

// Load decodes the embedded dataset. Each file contributes its own sections,
// so decoding them all into the same struct merges the book.
func Load() (*Data, error) {
	var d Data
	for _, name := range dataFiles {
		raw, err := dataFS.ReadFile(name)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", name, err)
		}
		if err := yaml.Unmarshal(raw, &d); err != nil {
			return nil, fmt.Errorf("decode %s: %w", name, err)
		}
	}
	if err := d.verify(); err != nil {
		return nil, err
	}
	return &d, nil
}

// verify checks cross-entity references so a broken edit to the data files
// fails at startup instead of rendering empty views.
func (d *Data) verify() error {
	clientIDs := make(map[string]bool, len(d.Clients))
	for _, c := range d.Clients {
		if c.ID == "" {
			return fmt.Errorf("client %q has no id", c.Name)
		}
		if clientIDs[c.ID] {
			return fmt.Errorf("duplicate client id %s", c.ID)
		}
		clientIDs[c.ID] = true
	}

	subIDs := make(map[string]bool, len(d.Submissions))
	for _, s := range d.Submissions {
		if !clientIDs[s.ClientID] {
			return fmt.Errorf("submission %s references unknown client %s", s.ID, s.ClientID)
		}
		subIDs[s.ID] = true
	}

	for _, q := range d.Quotes {
		if !subIDs[q.SubmissionID] {
			return fmt.Errorf("quote %s references unknown submission %s", q.ID, q.SubmissionID)
		}
	}

	policyIDs := make(map[string]bool, len(d.Policies))
	for _, p := range d.Policies {
		if !clientIDs[p.ClientID] {
			return fmt.Errorf("policy %s references unknown client %s", p.ID, p.ClientID)
		}
		policyIDs[p.ID] = true
	}

	for _, c := range d.Claims {
		if !policyIDs[c.PolicyID] {
			return fmt.Errorf("claim %s references unknown policy %s", c.ID, c.PolicyID)
		}
	}

	if len(d.RateTable) == 0 {
		return fmt.Errorf("rate table is empty")
	}
	return nil
}
