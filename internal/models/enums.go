package models

type SubmissionStatus string

const (
	SubmissionDraft     SubmissionStatus = "draft"
	SubmissionSubmitted SubmissionStatus = "submitted"
	SubmissionQuoted    SubmissionStatus = "quoted"
	SubmissionBound     SubmissionStatus = "bound"
	SubmissionDeclined  SubmissionStatus = "declined"
	SubmissionExpired   SubmissionStatus = "expired"
)

// SubmissionStatuses is the kanban column order.
var SubmissionStatuses = []SubmissionStatus{
	SubmissionDraft,
	SubmissionSubmitted,
	SubmissionQuoted,
	SubmissionBound,
	SubmissionDeclined,
	SubmissionExpired,
}

type PolicyStatus string

const (
	PolicyActive         PolicyStatus = "active"
	PolicyExpired        PolicyStatus = "expired"
	PolicyCancelled      PolicyStatus = "cancelled"
	PolicyPendingRenewal PolicyStatus = "pending_renewal"
)

type QuoteStatus string

const (
	QuotePending  QuoteStatus = "pending"
	QuoteAccepted QuoteStatus = "accepted"
	QuoteDeclined QuoteStatus = "declined"
	QuoteExpired  QuoteStatus = "expired"
)

type ClaimStatus string

const (
	ClaimOpen     ClaimStatus = "open"
	ClaimClosed   ClaimStatus = "closed"
	ClaimReserved ClaimStatus = "reserved"
)

type WordingStatus string

const (
	WordingDraft       WordingStatus = "draft"
	WordingUnderReview WordingStatus = "under_review"
	WordingApproved    WordingStatus = "approved"
	WordingSuperseded  WordingStatus = "superseded"
)

type RiskGrade string

const (
	GradeA RiskGrade = "A"
	GradeB RiskGrade = "B"
	GradeC RiskGrade = "C"
	GradeD RiskGrade = "D"
	GradeE RiskGrade = "E"
	GradeF RiskGrade = "F"
)

// Ordinal maps grades onto 1..6 for averaging and sorting; A is best (6),
// F is worst (1). Unknown grades map to 0 so they sort below F.
func (g RiskGrade) Ordinal() int {
	switch g {
	case GradeA:
		return 6
	case GradeB:
		return 5
	case GradeC:
		return 4
	case GradeD:
		return 3
	case GradeE:
		return 2
	case GradeF:
		return 1
	default:
		return 0
	}
}

// GradeFromOrdinal is the inverse of Ordinal. Out-of-range values return "".
func GradeFromOrdinal(n int) RiskGrade {
	switch n {
	case 6:
		return GradeA
	case 5:
		return GradeB
	case 4:
		return GradeC
	case 3:
		return GradeD
	case 2:
		return GradeE
	case 1:
		return GradeF
	default:
		return ""
	}
}

type AppetiteLevel string

const (
	AppetiteHot      AppetiteLevel = "hot"
	AppetiteWarm     AppetiteLevel = "warm"
	AppetiteCold     AppetiteLevel = "cold"
	AppetiteDeclined AppetiteLevel = "declined"
)

type Territory string

const (
	TerritoryUK    Territory = "UK"
	TerritoryEU    Territory = "EU"
	TerritoryUS    Territory = "US"
	TerritoryAPAC  Territory = "APAC"
	TerritoryMEA   Territory = "MEA"
	TerritoryLATAM Territory = "LATAM"
)

// Territories is the display order used across all views.
var Territories = []Territory{
	TerritoryUK,
	TerritoryEU,
	TerritoryUS,
	TerritoryAPAC,
	TerritoryMEA,
	TerritoryLATAM,
}

type CoverageType string

const (
	CoverageAIContentIP   CoverageType = "ai_content_ip"
	CoverageDeepfake      CoverageType = "deepfake_liability"
	CoverageCopyright     CoverageType = "copyright_infringement"
	CoverageNILP          CoverageType = "nilp_protection"
	CoverageComprehensive CoverageType = "comprehensive"
)

var CoverageTypes = []CoverageType{
	CoverageAIContentIP,
	CoverageDeepfake,
	CoverageCopyright,
	CoverageNILP,
	CoverageComprehensive,
}

// Label returns the display name for a coverage type.
func (c CoverageType) Label() string {
	switch c {
	case CoverageAIContentIP:
		return "AI Content IP"
	case CoverageDeepfake:
		return "Deepfake Liability"
	case CoverageCopyright:
		return "Copyright Infringement"
	case CoverageNILP:
		return "NILP Protection"
	case CoverageComprehensive:
		return "Comprehensive"
	default:
		return string(c)
	}
}

type ProcessStage string

const (
	StageIntake         ProcessStage = "intake"
	StageRiskAssessment ProcessStage = "risk_assessment"
	StageMarketApproach ProcessStage = "market_approach"
	StageQuote          ProcessStage = "quote"
	StageNegotiate      ProcessStage = "negotiate"
	StageBind           ProcessStage = "bind"
	StageIssue          ProcessStage = "issue"
)

type PortfolioMixType string

const (
	MixPureHuman   PortfolioMixType = "Pure Human"
	MixAIAssisted  PortfolioMixType = "AI-Assisted"
	MixHybrid      PortfolioMixType = "Hybrid"
	MixAIGenerated PortfolioMixType = "AI-Generated"
)

type RelationshipStrength string

const (
	RelationshipStrong   RelationshipStrength = "strong"
	RelationshipModerate RelationshipStrength = "moderate"
	RelationshipNew      RelationshipStrength = "new"
)

type LeadOrFollow string

const (
	Lead   LeadOrFollow = "lead"
	Follow LeadOrFollow = "follow"
)
