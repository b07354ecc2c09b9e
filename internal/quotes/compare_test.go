package quotes

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/vznlabdev/cr-dashboard-broker/internal/models"
)

func testQuotes() []models.Quote {
	return []models.Quote{
		{ID: "q1", SyndicateName: "Beazley", LeadOrFollow: models.Lead, LineSize: 40, PremiumQuoted: 120000, Deductible: 50000, ExpiryDate: "2025-03-01", Status: models.QuotePending},
		{ID: "q2", SyndicateName: "Hiscox", LeadOrFollow: models.Follow, LineSize: 30, PremiumQuoted: 95000, Deductible: 75000, ExpiryDate: "2025-03-10", Status: models.QuoteAccepted},
		{ID: "q3", SyndicateName: "Brit", LeadOrFollow: models.Follow, LineSize: 27.5, PremiumQuoted: 80000, Deductible: 100000, ExpiryDate: "2025-02-20", Status: models.QuoteDeclined},
	}
}

func TestCompare_BestFlagsIgnoreDeclinedQuotes(t *testing.T) {
	c := Compare(testQuotes())

	// q3 has both the lowest premium and the highest deductible but is
	// declined, so q2 wins both.
	if c.BestPremiumID != "q2" {
		t.Fatalf("expected best premium q2, got %s", c.BestPremiumID)
	}
	if c.BestDeductibleID != "q2" {
		t.Fatalf("expected best deductible q2, got %s", c.BestDeductibleID)
	}
}

func TestCompare_RowsCoverEveryQuoteInOrder(t *testing.T) {
	c := Compare(testQuotes())

	wantKeys := []string{"premium", "deductible", "line_size", "lead_follow", "expiry", "status"}
	if len(c.Rows) != len(wantKeys) {
		t.Fatalf("expected %d rows, got %d", len(wantKeys), len(c.Rows))
	}
	for i, key := range wantKeys {
		if c.Rows[i].Key != key {
			t.Fatalf("row %d: expected key %s, got %s", i, key, c.Rows[i].Key)
		}
		if len(c.Rows[i].Values) != 3 {
			t.Fatalf("row %s: expected 3 cells, got %d", key, len(c.Rows[i].Values))
		}
		for j, want := range []string{"q1", "q2", "q3"} {
			if c.Rows[i].Values[j].QuoteID != want {
				t.Fatalf("row %s cell %d: expected %s, got %s", key, j, want, c.Rows[i].Values[j].QuoteID)
			}
		}
	}

	want := Row{Key: "premium", Label: "Premium", Values: []Cell{
		{QuoteID: "q1", Value: "120000"},
		{QuoteID: "q2", Value: "95000", Best: true},
		{QuoteID: "q3", Value: "80000"},
	}}
	if diff := cmp.Diff(want, c.Rows[0]); diff != "" {
		t.Fatalf("premium row mismatch (-want +got):\n%s", diff)
	}
}

func TestCompare_LineSizeIsAlreadyAPercentage(t *testing.T) {
	// The book stores line sizes as percent figures (40 means a 40% line),
	// so the cell shows the stored value with no rescaling.
	c := Compare(testQuotes())

	want := Row{Key: "line_size", Label: "Line Size", Values: []Cell{
		{QuoteID: "q1", Value: "40%"},
		{QuoteID: "q2", Value: "30%"},
		{QuoteID: "q3", Value: "27.5%"},
	}}
	if diff := cmp.Diff(want, c.Rows[2]); diff != "" {
		t.Fatalf("line size row mismatch (-want +got):\n%s", diff)
	}
}

func TestCompare_TieTakesFirstQuote(t *testing.T) {
	qs := []models.Quote{
		{ID: "q1", PremiumQuoted: 90000, Deductible: 60000, Status: models.QuotePending},
		{ID: "q2", PremiumQuoted: 90000, Deductible: 60000, Status: models.QuoteAccepted},
	}
	c := Compare(qs)
	if c.BestPremiumID != "q1" {
		t.Fatalf("expected premium tie to take q1, got %s", c.BestPremiumID)
	}
	if c.BestDeductibleID != "q1" {
		t.Fatalf("expected deductible tie to take q1, got %s", c.BestDeductibleID)
	}
}

func TestCompare_NoQuotes(t *testing.T) {
	c := Compare(nil)
	if c.BestPremiumID != "" || c.BestDeductibleID != "" {
		t.Fatalf("expected empty best ids, got %q and %q", c.BestPremiumID, c.BestDeductibleID)
	}
	// With nothing to compare there is no grid at all, not a grid of
	// empty rows.
	if len(c.Rows) != 0 {
		t.Fatalf("expected no rows with no quotes, got %d", len(c.Rows))
	}
	if c.Rows == nil || c.Quotes == nil {
		t.Fatal("expected empty slices, not nil")
	}
}

func TestCompare_NoComparableQuotes(t *testing.T) {
	qs := []models.Quote{
		{ID: "q1", PremiumQuoted: 90000, Status: models.QuoteDeclined},
		{ID: "q2", PremiumQuoted: 80000, Status: models.QuoteExpired},
	}
	c := Compare(qs)
	if c.BestPremiumID != "" || c.BestDeductibleID != "" {
		t.Fatalf("expected no best ids, got %q and %q", c.BestPremiumID, c.BestDeductibleID)
	}
	for _, cell := range c.Rows[0].Values {
		if cell.Best {
			t.Fatalf("cell %s flagged best with no comparable quotes", cell.QuoteID)
		}
	}
}
