package models

// PortfolioShare is one slice of a client's content portfolio mix.
// Percentages are informal and should sum to roughly 100.
type PortfolioShare struct {
	Type       PortfolioMixType `json:"type" yaml:"type"`
	Percentage float64          `json:"percentage" yaml:"percentage"`
}

type Client struct {
	ID                string           `json:"id" yaml:"id"`
	Name              string           `json:"name" yaml:"name"`
	Industry          string           `json:"industry" yaml:"industry"`
	ContactName       string           `json:"contact_name" yaml:"contact_name"`
	ContactEmail      string           `json:"contact_email" yaml:"contact_email"`
	Territory         Territory        `json:"territory" yaml:"territory"`
	RiskGrade         RiskGrade        `json:"risk_grade" yaml:"risk_grade"`
	ActivePolicies    int              `json:"active_policies" yaml:"active_policies"`
	TotalLimit        float64          `json:"total_limit" yaml:"total_limit"`
	GWP               float64          `json:"gwp" yaml:"gwp"`
	RenewalDate       string           `json:"renewal_date" yaml:"renewal_date"`
	BrokerHandler     string           `json:"broker_handler" yaml:"broker_handler"`
	TotalAssets       float64          `json:"total_assets" yaml:"total_assets"`
	AIAssetPercentage float64          `json:"ai_asset_percentage" yaml:"ai_asset_percentage"`
	PortfolioMix      []PortfolioShare `json:"portfolio_mix" yaml:"portfolio_mix"`
}

type Submission struct {
	ID                string           `json:"id" yaml:"id"`
	ClientID          string           `json:"client_id" yaml:"client_id"`
	ClientName        string           `json:"client_name" yaml:"client_name"`
	CoverageType      CoverageType     `json:"coverage_type" yaml:"coverage_type"`
	LimitRequested    float64          `json:"limit_requested" yaml:"limit_requested"`
	PremiumIndication float64          `json:"premium_indication" yaml:"premium_indication"`
	Status            SubmissionStatus `json:"status" yaml:"status"`
	Syndicates        []string         `json:"syndicates" yaml:"syndicates"`
	DateSubmitted     string           `json:"date_submitted" yaml:"date_submitted"`
	DaysOpen          int              `json:"days_open" yaml:"days_open"`
	RiskGrade         RiskGrade        `json:"risk_grade" yaml:"risk_grade"`
	Territory         Territory        `json:"territory" yaml:"territory"`
}

type Quote struct {
	ID              string       `json:"id" yaml:"id"`
	SubmissionID    string       `json:"submission_id" yaml:"submission_id"`
	SyndicateName   string       `json:"syndicate_name" yaml:"syndicate_name"`
	SyndicateID     string       `json:"syndicate_id" yaml:"syndicate_id"`
	LeadOrFollow    LeadOrFollow `json:"lead_or_follow" yaml:"lead_or_follow"`
	// LineSize is a percentage of the risk, e.g. 40 for a 40% line.
	LineSize        float64      `json:"line_size" yaml:"line_size"`
	PremiumQuoted   float64      `json:"premium_quoted" yaml:"premium_quoted"`
	Deductible      float64      `json:"deductible" yaml:"deductible"`
	KeyExclusions   []string     `json:"key_exclusions" yaml:"key_exclusions"`
	Subjectivities  []string     `json:"subjectivities" yaml:"subjectivities"`
	ExpiryDate      string       `json:"expiry_date" yaml:"expiry_date"`
	Status          QuoteStatus  `json:"status" yaml:"status"`
}

type Policy struct {
	ID            string       `json:"id" yaml:"id"`
	PolicyNumber  string       `json:"policy_number" yaml:"policy_number"`
	ClientID      string       `json:"client_id" yaml:"client_id"`
	ClientName    string       `json:"client_name" yaml:"client_name"`
	SyndicateName string       `json:"syndicate_name" yaml:"syndicate_name"`
	CoverageType  CoverageType `json:"coverage_type" yaml:"coverage_type"`
	Limit         float64      `json:"limit" yaml:"limit"`
	Premium       float64      `json:"premium" yaml:"premium"`
	Deductible    float64      `json:"deductible" yaml:"deductible"`
	InceptionDate string       `json:"inception_date" yaml:"inception_date"`
	ExpiryDate    string       `json:"expiry_date" yaml:"expiry_date"`
	Status        PolicyStatus `json:"status" yaml:"status"`
	Territory     Territory    `json:"territory" yaml:"territory"`
}

type Claim struct {
	ID             string      `json:"id" yaml:"id"`
	PolicyID       string      `json:"policy_id" yaml:"policy_id"`
	ClientName     string      `json:"client_name" yaml:"client_name"`
	ClaimType      string      `json:"claim_type" yaml:"claim_type"`
	IncurredAmount float64     `json:"incurred_amount" yaml:"incurred_amount"`
	PaidAmount     float64     `json:"paid_amount" yaml:"paid_amount"`
	ReserveAmount  float64     `json:"reserve_amount" yaml:"reserve_amount"`
	DateReported   string      `json:"date_reported" yaml:"date_reported"`
	Status         ClaimStatus `json:"status" yaml:"status"`
}

type Wording struct {
	ID                    string        `json:"id" yaml:"id"`
	Name                  string        `json:"name" yaml:"name"`
	Version               string        `json:"version" yaml:"version"`
	Status                WordingStatus `json:"status" yaml:"status"`
	CoverageType          CoverageType  `json:"coverage_type" yaml:"coverage_type"`
	LastModified          string        `json:"last_modified" yaml:"last_modified"`
	Author                string        `json:"author" yaml:"author"`
	SyndicateRequirements []string      `json:"syndicate_requirements" yaml:"syndicate_requirements"`
	Endorsements          []string      `json:"endorsements" yaml:"endorsements"`
}

type SyndicateContact struct {
	ID                   string                         `json:"id" yaml:"id"`
	Name                 string                         `json:"name" yaml:"name"`
	SyndicateName        string                         `json:"syndicate_name" yaml:"syndicate_name"`
	SyndicateNumber      string                         `json:"syndicate_number" yaml:"syndicate_number"`
	Role                 string                         `json:"role" yaml:"role"`
	Email                string                         `json:"email" yaml:"email"`
	Phone                string                         `json:"phone" yaml:"phone"`
	RelationshipStrength RelationshipStrength           `json:"relationship_strength" yaml:"relationship_strength"`
	Appetite             map[CoverageType]AppetiteLevel `json:"appetite" yaml:"appetite"`
	Territories          []Territory                    `json:"territories" yaml:"territories"`
	AvgQuoteTurnaround   int                            `json:"avg_quote_turnaround" yaml:"avg_quote_turnaround"`
}

// SyndicateKey is the display key used across matrices, e.g. "Beazley (2623)".
func (c SyndicateContact) SyndicateKey() string {
	return c.SyndicateName + " (" + c.SyndicateNumber + ")"
}

type BrokerTeamMember struct {
	ID             string         `json:"id" yaml:"id"`
	Name           string         `json:"name" yaml:"name"`
	Role           string         `json:"role" yaml:"role"`
	Specialization []CoverageType `json:"specialization" yaml:"specialization"`
	ClientCount    int            `json:"client_count" yaml:"client_count"`
	GWPHandled     float64        `json:"gwp_handled" yaml:"gwp_handled"`
	HitRatio       float64        `json:"hit_ratio" yaml:"hit_ratio"`
}

type ProcessStep struct {
	Stage        ProcessStage `json:"stage" yaml:"stage"`
	Label        string       `json:"label" yaml:"label"`
	AvgDays      int          `json:"avg_days" yaml:"avg_days"`
	SLADays      int          `json:"sla_days" yaml:"sla_days"`
	ActiveCount  int          `json:"active_count" yaml:"active_count"`
	OverdueCount int          `json:"overdue_count" yaml:"overdue_count"`
}

type LimitBand struct {
	Band         string  `json:"band" yaml:"band"`
	AccountCount int     `json:"account_count" yaml:"account_count"`
	TotalGWP     float64 `json:"total_gwp" yaml:"total_gwp"`
	AvgPremium   float64 `json:"avg_premium,omitempty" yaml:"avg_premium,omitempty"`
}

type PremiumBand struct {
	Band         string `json:"band" yaml:"band"`
	AccountCount int    `json:"account_count" yaml:"account_count"`
}

// AccountSnapshot is a largest/smallest account marker on a historic year.
type AccountSnapshot struct {
	Name    string  `json:"name" yaml:"name"`
	Limit   float64 `json:"limit" yaml:"limit"`
	Premium float64 `json:"premium" yaml:"premium"`
}

type HistoricYear struct {
	Year            int             `json:"year" yaml:"year"`
	GWP             float64         `json:"gwp" yaml:"gwp"`
	AccountCount    int             `json:"account_count" yaml:"account_count"`
	RenewalRate     float64         `json:"renewal_rate" yaml:"renewal_rate"`
	LossRatio       float64         `json:"loss_ratio" yaml:"loss_ratio"`
	IncurredClaims  float64         `json:"incurred_claims" yaml:"incurred_claims"`
	PaidClaims      float64         `json:"paid_claims" yaml:"paid_claims"`
	LargestAccount  AccountSnapshot `json:"largest_account" yaml:"largest_account"`
	SmallestAccount AccountSnapshot `json:"smallest_account" yaml:"smallest_account"`
	AvgAccountSize  float64         `json:"avg_account_size" yaml:"avg_account_size"`
}

// RiskScores holds the CR scoring model dimensions per client, scale 0-100.
type RiskScores struct {
	Documentation       int `json:"documentation" yaml:"documentation"`
	ToolSafety          int `json:"tool_safety" yaml:"tool_safety"`
	CopyrightCheck      int `json:"copyright_check" yaml:"copyright_check"`
	AIModelTrust        int `json:"ai_model_trust" yaml:"ai_model_trust"`
	TrainingDataQuality int `json:"training_data_quality" yaml:"training_data_quality"`
}

type AlertItem struct {
	ID          string `json:"id" yaml:"id"`
	Type        string `json:"type" yaml:"type"`
	Title       string `json:"title" yaml:"title"`
	Description string `json:"description" yaml:"description"`
	EntityID    string `json:"entity_id" yaml:"entity_id"`
	DueDate     string `json:"due_date,omitempty" yaml:"due_date,omitempty"`
	Severity    string `json:"severity" yaml:"severity"`
}

type TerritoryBreakdown struct {
	Territory         Territory `json:"territory" yaml:"territory"`
	GWP               float64   `json:"gwp" yaml:"gwp"`
	AccountCount      int       `json:"account_count" yaml:"account_count"`
	AvgPremium        float64   `json:"avg_premium" yaml:"avg_premium"`
	AvgLimit          float64   `json:"avg_limit" yaml:"avg_limit"`
	DominantSyndicate string    `json:"dominant_syndicate" yaml:"dominant_syndicate"`
}

// AppetiteCell is one (syndicate, territory) entry of the market appetite matrix.
type AppetiteCell struct {
	Syndicate string        `json:"syndicate" yaml:"syndicate"`
	Territory Territory     `json:"territory" yaml:"territory"`
	Appetite  AppetiteLevel `json:"appetite" yaml:"appetite"`
}

type CoverageCapacity struct {
	CoverageType      CoverageType `json:"coverage_type" yaml:"coverage_type"`
	Label             string       `json:"label" yaml:"label"`
	AvailableCapacity float64      `json:"available_capacity" yaml:"available_capacity"`
	PlacedCapacity    float64      `json:"placed_capacity" yaml:"placed_capacity"`
}

type SyndicateRelationship struct {
	SyndicateKey       string `json:"syndicate_key" yaml:"syndicate_key"`
	SyndicateName      string `json:"syndicate_name" yaml:"syndicate_name"`
	SyndicateNumber    string `json:"syndicate_number" yaml:"syndicate_number"`
	KeyContact         string `json:"key_contact" yaml:"key_contact"`
	ResponsivenessScore int   `json:"responsiveness_score" yaml:"responsiveness_score"`
	AvgQuoteTurnaround int    `json:"avg_quote_turnaround" yaml:"avg_quote_turnaround"`
	ClaimHandlingRating int   `json:"claim_handling_rating" yaml:"claim_handling_rating"`
}

type RateTableRow struct {
	Territory      Territory `json:"territory" yaml:"territory"`
	RiskGrade      RiskGrade `json:"risk_grade" yaml:"risk_grade"`
	RatePerMillion float64   `json:"rate_per_million" yaml:"rate_per_million"`
	MinPremium     float64   `json:"min_premium" yaml:"min_premium"`
}

type LossRatioRow struct {
	Year          int     `json:"year" yaml:"year"`
	Incurred      float64 `json:"incurred" yaml:"incurred"`
	Paid          float64 `json:"paid" yaml:"paid"`
	Premium       float64 `json:"premium" yaml:"premium"`
	LossRatio     float64 `json:"loss_ratio" yaml:"loss_ratio"`
	CombinedRatio float64 `json:"combined_ratio" yaml:"combined_ratio"`
}

type SyndicateRateRow struct {
	Syndicate  string  `json:"syndicate" yaml:"syndicate"`
	AvgRatePct float64 `json:"avg_rate_pct" yaml:"avg_rate_pct"`
}

type YoYRateChangeRow struct {
	Year          int     `json:"year" yaml:"year"`
	RateChangePct float64 `json:"rate_change_pct" yaml:"rate_change_pct"`
}

type PipelineConversion struct {
	SubmissionsTotal int     `json:"submissions_total" yaml:"submissions_total"`
	QuotesReceived   int     `json:"quotes_received" yaml:"quotes_received"`
	Binds            int     `json:"binds" yaml:"binds"`
	DeclineRate      float64 `json:"decline_rate" yaml:"decline_rate"`
	AvgDaysToBind    int     `json:"avg_days_to_bind" yaml:"avg_days_to_bind"`
}

type DeclineRateRow struct {
	Syndicate   string  `json:"syndicate" yaml:"syndicate"`
	DeclineRate float64 `json:"decline_rate" yaml:"decline_rate"`
}

type ReferralTrigger struct {
	TriggerCondition       string `json:"trigger_condition" yaml:"trigger_condition"`
	AuthorityLevelRequired string `json:"authority_level_required" yaml:"authority_level_required"`
	EscalationPath         string `json:"escalation_path" yaml:"escalation_path"`
}

type AuthorityRow struct {
	Role                  string `json:"role" yaml:"role"`
	MaxBindingLimit       string `json:"max_binding_limit" yaml:"max_binding_limit"`
	CoverageTypes         string `json:"coverage_types" yaml:"coverage_types"`
	TerritoryRestrictions string `json:"territory_restrictions" yaml:"territory_restrictions"`
	ExpiryDate            string `json:"expiry_date" yaml:"expiry_date"`
}

type DelegatedAuthorityRow struct {
	ID              string `json:"id" yaml:"id"`
	AuthorityHolder string `json:"authority_holder" yaml:"authority_holder"`
	Syndicate       string `json:"syndicate" yaml:"syndicate"`
	MaxLimit        string `json:"max_limit" yaml:"max_limit"`
	CoverageTypes   string `json:"coverage_types" yaml:"coverage_types"`
	Territories     string `json:"territories" yaml:"territories"`
	ExpiryDate      string `json:"expiry_date" yaml:"expiry_date"`
	Status          string `json:"status" yaml:"status"`
}

type DocumentItem struct {
	Name     string `json:"name" yaml:"name"`
	Required bool   `json:"required" yaml:"required"`
	Checked  bool   `json:"checked" yaml:"checked"`
}

type DocumentChecklistStage struct {
	Stage     ProcessStage   `json:"stage" yaml:"stage"`
	Label     string         `json:"label" yaml:"label"`
	Documents []DocumentItem `json:"documents" yaml:"documents"`
}

type RegulatoryFlag struct {
	Territory        Territory `json:"territory" yaml:"territory"`
	KeyRegulations   string    `json:"key_regulations" yaml:"key_regulations"`
	ComplianceStatus string    `json:"compliance_status" yaml:"compliance_status"`
	Notes            string    `json:"notes" yaml:"notes"`
}
