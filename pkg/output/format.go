// Package output provides utilities for formatting and displaying allocation results.
package output

import (
	"fmt"
	"strings"

	"github.com/the-cloud-architect/contractor-calculator/internal/allocation"
	"github.com/the-cloud-architect/contractor-calculator/pkg/mathutil"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// PrettyFormat outputs a human-readable rather than machine-readable table.
func PrettyFormat(in allocation.Inputs, result allocation.Result, points []allocation.TrendPoint) {
	fmt.Print(PrettyString(in, result, points))
}

// PrettyString renders the allocation summary and price sweep as a
// human-readable table.
func PrettyString(in allocation.Inputs, result allocation.Result, points []allocation.TrendPoint) string {
	p := message.NewPrinter(language.English)
	breakdown := result.Breakdown()

	var b strings.Builder
	b.WriteString("--- Deal allocation ---\n")
	p.Fprintf(&b, "Price           | $%.2fk\n", in.Price)
	p.Fprintf(&b, "Total base cost | $%.2fk\n", result.TotalBaseCost)
	p.Fprintf(&b, "Margin          | $%.2fk", result.Margin)
	if mathutil.IsNegative(result.Margin) {
		b.WriteString(" (loss)")
	}
	b.WriteString("\n\n")
	b.WriteString("Party      | Cost     | Share  | Profit    | Return\n")
	b.WriteString("_____      | ____     | _____  | ______    | ______\n")
	p.Fprintf(&b, "Investor   | $%.2fk | %.1f%% | $%.2fk | %.2f%%\n",
		result.InvestorCost, result.InvestorRatioPct, result.InvestorProfit, result.InvestorProfitPercent)
	p.Fprintf(&b, "Contractor | $%.2fk | %.1f%% | $%.2fk | %.2f%%\n",
		result.ContractorCost, result.ContractorRatioPct, result.ContractorProfit, result.ContractorProfitPercent)
	b.WriteString("\n")
	p.Fprintf(&b, "Contractor revenue       | $%.2fk\n", breakdown.ContractorRevenue)
	p.Fprintf(&b, "Investor capital at risk | $%.2fk\n", breakdown.InvestorCapitalAtRisk)

	if len(points) > 0 {
		b.WriteString("\n--- Price sweep ---\n")
		b.WriteString("Price      | Investor profit | Contractor profit\n")
		b.WriteString("_____      | _______________ | _________________\n")
		for _, point := range points {
			p.Fprintf(&b, "$%.2fk | $%.2fk | $%.2fk\n",
				point.Price, point.InvestorProfit, point.ContractorProfit)
		}
	}

	return b.String()
}

// CsvFormat outputs in comma-separated value format.
func CsvFormat(points []allocation.TrendPoint) {
	fmt.Print(CsvString(points))
}

// CsvString renders the price sweep in comma-separated value format.
func CsvString(points []allocation.TrendPoint) string {
	var b strings.Builder
	b.WriteString(`"price","investor profit","contractor profit","margin"`)
	b.WriteString("\n")
	// Round to cents before formatting; consumers parse these values.
	for _, point := range points {
		fmt.Fprintf(&b, `"%.2f","%.2f","%.2f","%.2f"`,
			mathutil.Round(point.Price), mathutil.Round(point.InvestorProfit),
			mathutil.Round(point.ContractorProfit), mathutil.Round(point.Margin))
		b.WriteString("\n")
	}
	return b.String()
}
