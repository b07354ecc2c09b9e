package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"

	"github.com/vznlabdev/cr-dashboard-broker/internal/book"
	"github.com/vznlabdev/cr-dashboard-broker/internal/dataset"
)

func testServer(t *testing.T) *Server {
	t.Helper()
	data, err := dataset.Load()
	if err != nil {
		t.Fatalf("load dataset: %v", err)
	}
	return NewServer(book.NewStore(data))
}

func get(t *testing.T, s *Server, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder, into interface{}) {
	t.Helper()
	if err := json.Unmarshal(rec.Body.Bytes(), into); err != nil {
		t.Fatalf("decode response: %v\n%s", err, rec.Body.String())
	}
}

func TestHealth(t *testing.T) {
	rec := get(t, testServer(t), "/health")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestListClients_SortAndSearch(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/api/v1/clients?sort=gwp&dir=desc")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var result book.ClientListResult
	decode(t, rec, &result)
	if result.Total == 0 {
		t.Fatal("expected clients")
	}
	for i := 1; i < len(result.Clients); i++ {
		if result.Clients[i].GWP > result.Clients[i-1].GWP {
			t.Fatalf("gwp not descending at %d", i)
		}
	}

	rec = get(t, s, "/api/v1/clients?q=zzz-no-such-client")
	decode(t, rec, &result)
	if result.Total != 0 {
		t.Fatalf("expected no matches, got %d", result.Total)
	}
	if result.AvgRiskGrade != "—" {
		t.Fatalf("expected grade placeholder on empty set, got %s", result.AvgRiskGrade)
	}
}

func TestGetClient_NotFound(t *testing.T) {
	rec := get(t, testServer(t), "/api/v1/clients/cl-999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	var body map[string]string
	decode(t, rec, &body)
	if body["error"] == "" {
		t.Fatal("expected an error message")
	}
}

func TestKanban_ColumnsAlwaysPresent(t *testing.T) {
	rec := get(t, testServer(t), "/api/v1/submissions/kanban?status=bound")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var body struct {
		Columns []book.KanbanColumn `json:"columns"`
	}
	decode(t, rec, &body)
	if len(body.Columns) != 6 {
		t.Fatalf("expected 6 lanes, got %d", len(body.Columns))
	}
}

func TestCompareQuotes_RequiresSubmission(t *testing.T) {
	s := testServer(t)

	rec := get(t, s, "/api/v1/quotes/compare")
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 without submission, got %d", rec.Code)
	}

	rec = get(t, s, "/api/v1/quotes/compare?submission=sub-999")
	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 for unknown submission, got %d", rec.Code)
	}

	rec = get(t, s, "/api/v1/quotes/compare?submission=sub-001")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestCalculate_ReferenceScenario(t *testing.T) {
	s := testServer(t)
	body := `{"insured_value":"500000","risk_score":"35","territory":"UK"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var result struct {
		TechnicalPremium float64 `json:"technical_premium"`
		BurningCost      float64 `json:"burning_cost"`
		MarketPremium    float64 `json:"market_premium"`
		RatePct          float64 `json:"rate_pct"`
		RiskGrade        string  `json:"risk_grade"`
	}
	decode(t, rec, &result)
	if result.TechnicalPremium != 25000 || result.BurningCost != 2500 || result.MarketPremium != 26250 {
		t.Fatalf("unexpected breakdown: %+v", result)
	}
	if result.RatePct < 5.249 || result.RatePct > 5.251 {
		t.Fatalf("expected 5.25%% rate, got %v", result.RatePct)
	}
	if result.RiskGrade != "A" {
		t.Fatalf("expected grade A, got %s", result.RiskGrade)
	}
}

func TestCalculate_NonNumericInputsUseDefaults(t *testing.T) {
	s := testServer(t)
	body := `{"insured_value":"lots","risk_score":"","territory":""}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/pricing/calculate", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	s.Echo.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	var result struct {
		InsuredValue float64 `json:"insured_value"`
		RiskScore    float64 `json:"risk_score"`
		Territory    string  `json:"territory"`
	}
	decode(t, rec, &result)
	if result.InsuredValue != 0 {
		t.Fatalf("expected insured value 0, got %v", result.InsuredValue)
	}
	if result.RiskScore != 50 {
		t.Fatalf("expected default score 50, got %v", result.RiskScore)
	}
	if result.Territory != "UK" {
		t.Fatalf("expected UK default, got %s", result.Territory)
	}
}

func TestStats(t *testing.T) {
	rec := get(t, testServer(t), "/api/v1/stats")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var stats book.DashboardStats
	decode(t, rec, &stats)
	if stats.TotalGWP <= 0 || stats.ClientCount == 0 {
		t.Fatalf("empty stats: %+v", stats)
	}
}

func TestWordings_StatusFilter(t *testing.T) {
	s := testServer(t)
	var body struct {
		Total int `json:"total"`
	}

	decode(t, get(t, s, "/api/v1/wordings"), &body)
	all := body.Total
	if all == 0 {
		t.Fatal("expected wordings")
	}

	decode(t, get(t, s, "/api/v1/wordings?status=approved"), &body)
	if body.Total == 0 || body.Total >= all {
		t.Fatalf("expected a proper subset for approved, got %d of %d", body.Total, all)
	}

	decode(t, get(t, s, "/api/v1/wordings?status=all"), &body)
	if body.Total != all {
		t.Fatalf("expected status=all to match %d, got %d", all, body.Total)
	}
}
