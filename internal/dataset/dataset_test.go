package dataset

import (
	"testing"

	"github.com/vznlabdev/cr-dashboard-broker/internal/models"
)

func TestLoad(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(d.Clients) == 0 || len(d.Submissions) == 0 || len(d.Quotes) == 0 {
		t.Fatal("book sections missing")
	}
	if len(d.RateTable) == 0 {
		t.Fatal("rate table missing")
	}
	if len(d.AppetiteMatrix) == 0 || len(d.SyndicateContacts) == 0 {
		t.Fatal("market sections missing")
	}
	if len(d.HistoricYears) < 2 {
		t.Fatalf("expected at least 2 historic years, got %d", len(d.HistoricYears))
	}
	if len(d.ProcessSteps) == 0 {
		t.Fatal("process steps missing")
	}
}

func TestLoad_CrossReferences(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	clients := map[string]bool{}
	for _, c := range d.Clients {
		clients[c.ID] = true
	}
	subs := map[string]bool{}
	for _, s := range d.Submissions {
		if !clients[s.ClientID] {
			t.Fatalf("submission %s references unknown client %s", s.ID, s.ClientID)
		}
		subs[s.ID] = true
	}
	for _, q := range d.Quotes {
		if !subs[q.SubmissionID] {
			t.Fatalf("quote %s references unknown submission %s", q.ID, q.SubmissionID)
		}
	}
	for id := range d.RiskScores {
		if !clients[id] {
			t.Fatalf("risk scores reference unknown client %s", id)
		}
	}
}

func TestLoad_RateTableHasUKAnchor(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	// The pricing fallback depends on a UK row existing.
	for _, r := range d.RateTable {
		if r.Territory == models.TerritoryUK {
			if r.RatePerMillion <= 0 || r.MinPremium <= 0 {
				t.Fatalf("UK anchor row has degenerate rates: %+v", r)
			}
			return
		}
	}
	t.Fatal("no UK row in rate table")
}

func TestLoad_HistoricYearsAreOrdered(t *testing.T) {
	d, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for i := 1; i < len(d.HistoricYears); i++ {
		if d.HistoricYears[i].Year <= d.HistoricYears[i-1].Year {
			t.Fatalf("historic years out of order at %d: %d then %d",
				i, d.HistoricYears[i-1].Year, d.HistoricYears[i].Year)
		}
	}
}
