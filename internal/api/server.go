// Package api exposes the dashboard's read API over HTTP. Every endpoint
// is a view over the static book; the only POST is the pricing calculator,
// which prices a scenario without storing anything.
package api

import (
	"net/http"
	"os"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/vznlabdev/cr-dashboard-broker/internal/analytics"
	"github.com/vznlabdev/cr-dashboard-broker/internal/book"
	"github.com/vznlabdev/cr-dashboard-broker/internal/markets"
	"github.com/vznlabdev/cr-dashboard-broker/internal/models"
	"github.com/vznlabdev/cr-dashboard-broker/internal/pricing"
	"github.com/vznlabdev/cr-dashboard-broker/internal/quotes"
)

type Server struct {
	Store      *book.Store
	Calculator *pricing.Calculator
	Echo       *echo.Echo
}

// jsonSerializer swaps echo's default codec for goccy's drop-in encoder.
type jsonSerializer struct{}

func (jsonSerializer) Serialize(c echo.Context, i interface{}, indent string) error {
	enc := json.NewEncoder(c.Response())
	if indent != "" {
		enc.SetIndent("", indent)
	}
	return enc.Encode(i)
}

func (jsonSerializer) Deserialize(c echo.Context, i interface{}) error {
	err := json.NewDecoder(c.Request().Body).Decode(i)
	if ute, ok := err.(*json.UnmarshalTypeError); ok {
		return echo.NewHTTPError(http.StatusBadRequest, "unmarshal type error: "+ute.Error()).SetInternal(err)
	}
	if se, ok := err.(*json.SyntaxError); ok {
		return echo.NewHTTPError(http.StatusBadRequest, "syntax error: "+se.Error()).SetInternal(err)
	}
	return err
}

func NewServer(store *book.Store) *Server {
	e := echo.New()
	e.HideBanner = true
	e.JSONSerializer = jsonSerializer{}
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// CORS: allow frontend origins from env or default to localhost
	allowedOrigins := []string{"http://localhost:5173"}
	if extra := os.Getenv("CORS_ORIGINS"); extra != "" {
		for _, o := range strings.Split(extra, ",") {
			o = strings.TrimSpace(o)
			if o != "" {
				allowedOrigins = append(allowedOrigins, o)
			}
		}
	}
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	s := &Server{
		Store:      store,
		Calculator: pricing.NewCalculator(store.Data().RateTable),
		Echo:       e,
	}

	s.routes()
	return s
}

func (s *Server) routes() {
	s.Echo.GET("/health", s.handleHealth)
	api := s.Echo.Group("/api/v1")
	api.GET("/clients", s.handleListClients)
	api.GET("/clients/:id", s.handleGetClient)
	api.GET("/submissions", s.handleListSubmissions)
	api.GET("/submissions/kanban", s.handleKanban)
	api.GET("/quotes/compare", s.handleCompareQuotes)
	api.GET("/pricing/rates", s.handlePricingRates)
	api.POST("/pricing/calculate", s.handleCalculate)
	api.GET("/markets", s.handleMarkets)
	api.GET("/positioning", s.handlePositioning)
	api.GET("/processes", s.handleProcesses)
	api.GET("/results", s.handleResults)
	api.GET("/people", s.handlePeople)
	api.GET("/wordings", s.handleWordings)
	api.GET("/stats", s.handleStats)
	api.GET("/alerts", s.handleAlerts)
}

// Start runs the HTTP server on the given port.
func (s *Server) Start(port string) error {
	return s.Echo.Start(":" + port)
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.String(http.StatusOK, "OK")
}

func (s *Server) handleListClients(c echo.Context) error {
	result := s.Store.ListClients(book.ClientListParams{
		Query:   c.QueryParam("q"),
		SortBy:  c.QueryParam("sort"),
		SortDir: c.QueryParam("dir"),
	})
	return c.JSON(http.StatusOK, result)
}

func (s *Server) handleGetClient(c echo.Context) error {
	detail, ok := s.Store.Client(c.Param("id"))
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "client not found"})
	}
	return c.JSON(http.StatusOK, detail)
}

func submissionParams(c echo.Context) book.SubmissionListParams {
	return book.SubmissionListParams{
		Status:    c.QueryParam("status"),
		Territory: c.QueryParam("territory"),
		DateFrom:  c.QueryParam("from"),
		DateTo:    c.QueryParam("to"),
		Query:     c.QueryParam("q"),
	}
}

func (s *Server) handleListSubmissions(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Store.ListSubmissions(submissionParams(c)))
}

func (s *Server) handleKanban(c echo.Context) error {
	result := s.Store.ListSubmissions(submissionParams(c))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"columns": book.Kanban(result.Submissions),
		"total":   result.Total,
	})
}

func (s *Server) handleCompareQuotes(c echo.Context) error {
	subID := c.QueryParam("submission")
	if subID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "submission query parameter is required"})
	}
	sub, ok := s.Store.Submission(subID)
	if !ok {
		return c.JSON(http.StatusNotFound, map[string]string{"error": "submission not found"})
	}
	comparison := quotes.Compare(s.Store.QuotesForSubmission(subID))
	return c.JSON(http.StatusOK, map[string]interface{}{
		"submission":  sub,
		"comparison":  comparison,
		"submissions": s.Store.SubmissionsWithQuotes(),
	})
}

func (s *Server) handlePricingRates(c echo.Context) error {
	d := s.Store.Data()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"rate_table":            d.RateTable,
		"loss_ratio_by_year":    d.LossRatioByYear,
		"avg_rate_by_syndicate": d.AvgRateBySyndicate,
		"yoy_rate_change":       d.YoYRateChange,
		"limit_bands":           d.LimitBandsPricing,
	})
}

type calculateRequest struct {
	// Values arrive as raw form strings; anything non-numeric falls back to
	// the calculator defaults rather than erroring.
	InsuredValue string `json:"insured_value"`
	RiskScore    string `json:"risk_score"`
	Territory    string `json:"territory"`
}

func (s *Server) handleCalculate(c echo.Context) error {
	var req calculateRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request"})
	}
	territory := models.Territory(req.Territory)
	if territory == "" {
		territory = models.TerritoryUK
	}
	result := s.Calculator.Calculate(
		parseFloatOr(req.InsuredValue, 0),
		parseFloatOr(req.RiskScore, 50),
		territory,
	)
	return c.JSON(http.StatusOK, result)
}

// parseFloatOr parses a form value, falling back when it is not a number.
func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return fallback
	}
	return v
}

func (s *Server) handleMarkets(c echo.Context) error {
	d := s.Store.Data()
	matrix := markets.BuildAppetiteMatrix(d.AppetiteMatrix)
	return c.JSON(http.StatusOK, map[string]interface{}{
		"summary":              markets.SummarizeTerritories(d.TerritoryBreakdown),
		"territory_breakdown":  d.TerritoryBreakdown,
		"appetite_syndicates":  matrix.Syndicates,
		"appetite_territories": matrix.Territories,
		"appetite_grid":        matrix.Grid(),
		"limit_bands":          d.LimitBandsMarket,
		"premium_bands":        d.PremiumBandsMarket,
		"regulatory_flags":     d.RegulatoryFlags,
	})
}

func (s *Server) handlePositioning(c echo.Context) error {
	d := s.Store.Data()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"capacity":        markets.BuildCapacityView(d.CapacityByCoverage),
		"relationships":   d.RelationshipScores,
		"coverage_matrix": markets.BuildCoverageMatrix(d.SyndicateContacts),
	})
}

// processStepView decorates a process step with its SLA reading.
type processStepView struct {
	models.ProcessStep
	CompliancePct int               `json:"compliance_pct"`
	Indicator     analytics.SLABand `json:"indicator"`
}

func (s *Server) handleProcesses(c echo.Context) error {
	d := s.Store.Data()
	steps := make([]processStepView, 0, len(d.ProcessSteps))
	for _, step := range d.ProcessSteps {
		steps = append(steps, processStepView{
			ProcessStep:   step,
			CompliancePct: analytics.SLACompliance(step),
			Indicator:     analytics.SLAIndicator(step),
		})
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"steps":              steps,
		"referral_triggers":  d.ReferralTriggers,
		"authority_matrix":   d.AuthorityMatrix,
		"document_checklist": d.DocumentChecklist,
	})
}

func (s *Server) handleResults(c echo.Context) error {
	d := s.Store.Data()
	var latest models.HistoricYear
	if n := len(d.HistoricYears); n > 0 {
		latest = d.HistoricYears[n-1]
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"historic_years":    d.HistoricYears,
		"gwp_trend_pct":     analytics.GWPTrend(d.HistoricYears),
		"renewal_trend_pts": analytics.RenewalTrend(d.HistoricYears),
		"avg_premium":       analytics.AvgAccountPremium(latest),
		"funnel":            analytics.ConversionFunnel(d.Conversion),
		"conversion":        d.Conversion,
		"decline_rates":     d.DeclineRates,
		"large_losses":      analytics.LargeLosses(d.Claims),
		"limit_bands":       d.LimitBandsHistoric,
	})
}

func (s *Server) handlePeople(c echo.Context) error {
	d := s.Store.Data()
	return c.JSON(http.StatusOK, map[string]interface{}{
		"broker_team":         d.BrokerTeam,
		"syndicate_contacts":  d.SyndicateContacts,
		"delegated_authority": d.DelegatedAuthority,
	})
}

func (s *Server) handleWordings(c echo.Context) error {
	d := s.Store.Data()
	status := c.QueryParam("status")
	out := []models.Wording{}
	for _, w := range d.Wordings {
		if status != "" && status != book.FilterAll && string(w.Status) != status {
			continue
		}
		out = append(out, w)
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"wordings": out,
		"total":    len(out),
	})
}

func (s *Server) handleStats(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Store.Stats())
}

func (s *Server) handleAlerts(c echo.Context) error {
	return c.JSON(http.StatusOK, s.Store.Data().Alerts)
}
