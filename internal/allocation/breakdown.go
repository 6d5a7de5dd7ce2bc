package allocation

// Breakdown holds the secondary display quantities derived from a Result.
// These are presentation-layer conveniences, not part of the split itself.
type Breakdown struct {
	// ContractorRevenue is the contractor's total take: labor cost plus
	// the contractor's share of the margin.
	ContractorRevenue float64 `json:"contractorRevenue"`

	// InvestorCapitalAtRisk is the capital the investor has committed,
	// acquisition plus material cost.
	InvestorCapitalAtRisk float64 `json:"investorCapitalAtRisk"`

	// TotalLoss is the margin under its display name; negative values
	// indicate a loss on the deal.
	TotalLoss float64 `json:"totalLoss"`
}

// Breakdown derives the display quantities from the result.
func (r Result) Breakdown() Breakdown {
	return Breakdown{
		ContractorRevenue:     r.ContractorCost + r.ContractorProfit,
		InvestorCapitalAtRisk: r.InvestorCost,
		TotalLoss:             r.Margin,
	}
}
