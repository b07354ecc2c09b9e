// Package book is the read model over the insurance book. It wraps the
// loaded dataset and answers the list, lookup and rollup queries the
// dashboard pages are built from. The underlying data never changes after
// load, so every method returns fresh slices and callers may do as they
// please with them.
package book

import (
	"sort"
	"strings"
	"time"

	"github.com/vznlabdev/cr-dashboard-broker/internal/analytics"
	"github.com/vznlabdev/cr-dashboard-broker/internal/dataset"
	"github.com/vznlabdev/cr-dashboard-broker/internal/models"
)

// ReferenceDate anchors every "today" style calculation so the book reads
// the same on any machine. It sits inside the dataset's date range.
var ReferenceDate = time.Date(2025, time.February, 10, 0, 0, 0, 0, time.UTC)

// RenewalHorizonDays is the lookahead window for the renewals KPI.
const RenewalHorizonDays = 90

type Store struct {
	data *dataset.Data
}

func NewStore(data *dataset.Data) *Store {
	return &Store{data: data}
}

func (s *Store) Data() *dataset.Data { return s.data }

// FilterAll is the parameter value that disables an equality filter.
const FilterAll = "all"

type ClientListParams struct {
	Query   string
	SortBy  string // name, industry, active_policies, total_limit, gwp, risk_grade, renewal_date, broker_handler
	SortDir string // "asc" (default) or "desc"
}

type ClientListResult struct {
	Clients      []models.Client `json:"clients"`
	Total        int             `json:"total"`
	TotalGWP     float64         `json:"total_gwp"`
	AvgRiskGrade string          `json:"avg_risk_grade"`
}

// ListClients filters then sorts the client book. The search matches name,
// industry or broker handler, case-insensitively. An unrecognised sort key
// leaves the dataset order untouched; the sort itself is stable so equal
// keys keep their relative order. The summary figures are computed over the
// filtered set, not the whole book.
func (s *Store) ListClients(p ClientListParams) ClientListResult {
	clients := filterClients(s.data.Clients, p.Query)
	sortClients(clients, p.SortBy, p.SortDir)
	return ClientListResult{
		Clients:      clients,
		Total:        len(clients),
		TotalGWP:     analytics.TotalGWP(clients),
		AvgRiskGrade: analytics.AverageRiskGrade(clients),
	}
}

func filterClients(clients []models.Client, query string) []models.Client {
	out := make([]models.Client, 0, len(clients))
	q := strings.ToLower(strings.TrimSpace(query))
	for _, c := range clients {
		if q != "" &&
			!strings.Contains(strings.ToLower(c.Name), q) &&
			!strings.Contains(strings.ToLower(c.Industry), q) &&
			!strings.Contains(strings.ToLower(c.BrokerHandler), q) {
			continue
		}
		out = append(out, c)
	}
	return out
}

func sortClients(clients []models.Client, sortBy, dir string) {
	var less func(a, b models.Client) bool
	switch sortBy {
	case "name":
		less = func(a, b models.Client) bool { return lessFold(a.Name, b.Name) }
	case "industry":
		less = func(a, b models.Client) bool { return lessFold(a.Industry, b.Industry) }
	case "active_policies":
		less = func(a, b models.Client) bool { return a.ActivePolicies < b.ActivePolicies }
	case "total_limit":
		less = func(a, b models.Client) bool { return a.TotalLimit < b.TotalLimit }
	case "gwp":
		less = func(a, b models.Client) bool { return a.GWP < b.GWP }
	case "risk_grade":
		// Ordinal order: F..A ascending, so "asc" lists worst grades first.
		less = func(a, b models.Client) bool { return a.RiskGrade.Ordinal() < b.RiskGrade.Ordinal() }
	case "renewal_date":
		less = func(a, b models.Client) bool { return a.RenewalDate < b.RenewalDate }
	case "broker_handler":
		less = func(a, b models.Client) bool { return lessFold(a.BrokerHandler, b.BrokerHandler) }
	default:
		return
	}
	if dir == "desc" {
		inner := less
		less = func(a, b models.Client) bool { return inner(b, a) }
	}
	sort.SliceStable(clients, func(i, j int) bool { return less(clients[i], clients[j]) })
}

// lessFold orders strings case-insensitively by lowercased byte
// comparison. That is ASCII case folding, not locale collation; the
// book's names are ASCII so the distinction never bites here.
func lessFold(a, b string) bool {
	return strings.ToLower(a) < strings.ToLower(b)
}

type SubmissionListParams struct {
	Status    string // submission status or "all"
	Territory string // territory code or "all"
	DateFrom  string // inclusive ISO date lower bound
	DateTo    string // inclusive ISO date upper bound
	Query     string // matches client name or submission id
}

type SubmissionListResult struct {
	Submissions []models.Submission `json:"submissions"`
	Total       int                 `json:"total"`
}

// ListSubmissions applies the pipeline filters in order: status, territory,
// submitted-date window, then free text. Date bounds compare as ISO strings
// and are inclusive; an empty bound is skipped. The result keeps dataset
// order, newest data last.
func (s *Store) ListSubmissions(p SubmissionListParams) SubmissionListResult {
	out := make([]models.Submission, 0, len(s.data.Submissions))
	q := strings.ToLower(strings.TrimSpace(p.Query))
	for _, sub := range s.data.Submissions {
		if p.Status != "" && p.Status != FilterAll && string(sub.Status) != p.Status {
			continue
		}
		if p.Territory != "" && p.Territory != FilterAll && string(sub.Territory) != p.Territory {
			continue
		}
		if p.DateFrom != "" && sub.DateSubmitted < p.DateFrom {
			continue
		}
		if p.DateTo != "" && sub.DateSubmitted > p.DateTo {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(sub.ClientName), q) &&
			!strings.Contains(strings.ToLower(sub.ID), q) {
			continue
		}
		out = append(out, sub)
	}
	return SubmissionListResult{Submissions: out, Total: len(out)}
}

// KanbanColumn is one pipeline lane, in fixed status order.
type KanbanColumn struct {
	Status      models.SubmissionStatus `json:"status"`
	Submissions []models.Submission     `json:"submissions"`
}

// Kanban buckets the given submissions into the six pipeline lanes. Every
// lane is present even when empty, and each lane keeps input order.
func Kanban(subs []models.Submission) []KanbanColumn {
	cols := make([]KanbanColumn, len(models.SubmissionStatuses))
	index := make(map[models.SubmissionStatus]int, len(cols))
	for i, st := range models.SubmissionStatuses {
		cols[i] = KanbanColumn{Status: st, Submissions: []models.Submission{}}
		index[st] = i
	}
	for _, s := range subs {
		if i, ok := index[s.Status]; ok {
			cols[i].Submissions = append(cols[i].Submissions, s)
		}
	}
	return cols
}

// RecentSubmissions returns the newest n submissions by submitted date.
func (s *Store) RecentSubmissions(n int) []models.Submission {
	out := make([]models.Submission, len(s.data.Submissions))
	copy(out, s.data.Submissions)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].DateSubmitted > out[j].DateSubmitted
	})
	if len(out) > n {
		out = out[:n]
	}
	return out
}

// ClientDetail pairs a client with its related records.
type ClientDetail struct {
	Client      models.Client       `json:"client"`
	RiskScores  *models.RiskScores  `json:"risk_scores,omitempty"`
	Policies    []models.Policy     `json:"policies"`
	Submissions []models.Submission `json:"submissions"`
}

// Client resolves one client by id along with its policies, submissions and
// scoring breakdown. Clients without a scoring record return a nil score.
func (s *Store) Client(id string) (ClientDetail, bool) {
	var detail ClientDetail
	found := false
	for _, c := range s.data.Clients {
		if c.ID == id {
			detail.Client = c
			found = true
			break
		}
	}
	if !found {
		return ClientDetail{}, false
	}
	if scores, ok := s.data.RiskScores[id]; ok {
		sc := scores
		detail.RiskScores = &sc
	}
	detail.Policies = []models.Policy{}
	for _, p := range s.data.Policies {
		if p.ClientID == id {
			detail.Policies = append(detail.Policies, p)
		}
	}
	detail.Submissions = []models.Submission{}
	for _, sub := range s.data.Submissions {
		if sub.ClientID == id {
			detail.Submissions = append(detail.Submissions, sub)
		}
	}
	return detail, true
}

// Submission resolves one submission by id.
func (s *Store) Submission(id string) (models.Submission, bool) {
	for _, sub := range s.data.Submissions {
		if sub.ID == id {
			return sub, true
		}
	}
	return models.Submission{}, false
}

// QuotesForSubmission returns the quotes on a submission in dataset order.
func (s *Store) QuotesForSubmission(submissionID string) []models.Quote {
	out := []models.Quote{}
	for _, q := range s.data.Quotes {
		if q.SubmissionID == submissionID {
			out = append(out, q)
		}
	}
	return out
}

// SubmissionsWithQuotes lists submissions that have at least one quote,
// for the comparison picker.
func (s *Store) SubmissionsWithQuotes() []models.Submission {
	quoted := map[string]bool{}
	for _, q := range s.data.Quotes {
		quoted[q.SubmissionID] = true
	}
	out := []models.Submission{}
	for _, sub := range s.data.Submissions {
		if quoted[sub.ID] {
			out = append(out, sub)
		}
	}
	return out
}

// TerritoryGWP is one row of the book-by-territory breakdown.
type TerritoryGWP struct {
	Territory models.Territory `json:"territory"`
	GWP       float64          `json:"gwp"`
	Accounts  int              `json:"accounts"`
}

// GWPByTerritory lists territories carrying premium, in display order.
func (s *Store) GWPByTerritory() []TerritoryGWP {
	out := []TerritoryGWP{}
	for _, row := range s.data.TerritoryBreakdown {
		if row.GWP > 0 {
			out = append(out, TerritoryGWP{Territory: row.Territory, GWP: row.GWP, Accounts: row.AccountCount})
		}
	}
	return out
}

// DashboardStats is the headline KPI block on the landing page.
type DashboardStats struct {
	TotalGWP          float64                `json:"total_gwp"`
	GWPTrendPct       float64                `json:"gwp_trend_pct"`
	ClientCount       int                    `json:"client_count"`
	OpenSubmissions   int                    `json:"open_submissions"`
	AvgDaysOpen       int                    `json:"avg_days_open"`
	PendingRenewals   int                    `json:"pending_renewals"`
	AvgRiskGrade      string                 `json:"avg_risk_grade"`
	GWPByTerritory    []TerritoryGWP         `json:"gwp_by_territory"`
	RiskGrades        []analytics.GradeCount `json:"risk_grades"`
	RecentSubmissions []models.Submission    `json:"recent_submissions"`
	Alerts            []models.AlertItem     `json:"alerts"`
}

// Stats assembles the dashboard KPIs. The GWP trend compares the live book
// total against the prior historic year; open submissions are those still
// with the market (submitted or quoted).
func (s *Store) Stats() DashboardStats {
	total := analytics.TotalGWP(s.data.Clients)

	var priorGWP float64
	if n := len(s.data.HistoricYears); n >= 2 {
		priorGWP = s.data.HistoricYears[n-2].GWP
	}

	open := 0
	for _, sub := range s.data.Submissions {
		if sub.Status == models.SubmissionSubmitted || sub.Status == models.SubmissionQuoted {
			open++
		}
	}

	return DashboardStats{
		TotalGWP:          total,
		GWPTrendPct:       analytics.YearOverYearChange(total, priorGWP),
		ClientCount:       len(s.data.Clients),
		OpenSubmissions:   open,
		AvgDaysOpen:       analytics.AverageDaysOpen(s.data.Submissions),
		PendingRenewals:   analytics.PendingRenewals(s.data.Policies, ReferenceDate, RenewalHorizonDays),
		AvgRiskGrade:      analytics.AverageRiskGrade(s.data.Clients),
		GWPByTerritory:    s.GWPByTerritory(),
		RiskGrades:        analytics.RiskGradeDistribution(s.data.Clients),
		RecentSubmissions: s.RecentSubmissions(10),
		Alerts:            s.data.Alerts,
	}
}
