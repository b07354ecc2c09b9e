// Command report prints a book-of-business summary to the terminal:
// portfolio KPIs, pipeline lanes, SLA compliance and capacity positions.
// It reads the same embedded dataset as the server.
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/vznlabdev/cr-dashboard-broker/internal/analytics"
	"github.com/vznlabdev/cr-dashboard-broker/internal/book"
	"github.com/vznlabdev/cr-dashboard-broker/internal/dataset"
	"github.com/vznlabdev/cr-dashboard-broker/internal/markets"
)

func main() {
	data, err := dataset.Load()
	if err != nil {
		log.Fatal(err)
	}
	store := book.NewStore(data)
	stats := store.Stats()

	fmt.Printf("CR Dashboard book as at %s\n\n", book.ReferenceDate.Format("2006-01-02"))
	fmt.Printf("Total GWP:         %12.0f  (%+.1f%% vs prior year)\n", stats.TotalGWP, stats.GWPTrendPct)
	fmt.Printf("Clients:           %12d  (avg grade %s)\n", stats.ClientCount, stats.AvgRiskGrade)
	fmt.Printf("Open submissions:  %12d  (avg %d days open)\n", stats.OpenSubmissions, stats.AvgDaysOpen)
	fmt.Printf("Pending renewals:  %12d  (next %d days)\n\n", stats.PendingRenewals, book.RenewalHorizonDays)

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Portfolio by territory")
	t.AppendHeader(table.Row{"Territory", "GWP", "Accounts"})
	for _, row := range stats.GWPByTerritory {
		t.AppendRow(table.Row{row.Territory, row.GWP, row.Accounts})
	}
	t.Render()
	fmt.Println()

	t = table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Pipeline")
	t.AppendHeader(table.Row{"Lane", "Submissions", "Limit requested"})
	for _, col := range book.Kanban(data.Submissions) {
		var limit float64
		for _, s := range col.Submissions {
			limit += s.LimitRequested
		}
		t.AppendRow(table.Row{col.Status, len(col.Submissions), limit})
	}
	t.Render()
	fmt.Println()

	t = table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Placement SLA")
	t.AppendHeader(table.Row{"Stage", "Active", "Overdue", "Compliance", "Status"})
	for _, step := range data.ProcessSteps {
		t.AppendRow(table.Row{
			step.Label,
			step.ActiveCount,
			step.OverdueCount,
			fmt.Sprintf("%d%%", analytics.SLACompliance(step)),
			analytics.SLAIndicator(step),
		})
	}
	t.Render()
	fmt.Println()

	t = table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.SetTitle("Capacity by coverage")
	t.AppendHeader(table.Row{"Coverage", "Available", "Placed", "Remaining", "Filled"})
	for _, row := range markets.BuildCapacityView(data.CapacityByCoverage) {
		t.AppendRow(table.Row{row.Label, row.Available, row.Placed, row.Remaining, fmt.Sprintf("%d%%", row.PctFilled)})
	}
	t.Render()
}
