// Package allocation implements the proportional profit split between the
// two parties on a renovation deal: the investor, who fronts the acquisition
// and material cost, and the contractor, who fronts the labor. The margin on
// the sale is distributed in proportion to each party's share of the total
// base cost, so both parties carry profit and loss alike.
package allocation

import (
	"errors"

	"github.com/the-cloud-architect/contractor-calculator/pkg/mathutil"
)

// ErrZeroBaseCost is returned when all three cost inputs sum to zero; the
// proportional split is undefined because there is no cost base to
// partition.
var ErrZeroBaseCost = errors.New("total base cost is zero")

// Inputs holds the four scalar inputs to the allocation. All values share
// one caller-defined unit convention (typically thousands of currency
// units). Negative values are accepted arithmetically; they represent
// accounting edge cases such as refunds.
type Inputs struct {
	Price           float64 `json:"price"`
	AcquisitionCost float64 `json:"acquisitionCost"`
	LaborCost       float64 `json:"laborCost"`
	MaterialCost    float64 `json:"materialCost"`
}

// Result is the computed profit/loss distribution for one set of inputs.
// The unrounded ratios drive the split; the Pct fields are rounded to one
// decimal for display only.
type Result struct {
	TotalBaseCost  float64 `json:"totalBaseCost"`
	InvestorCost   float64 `json:"investorCost"`
	ContractorCost float64 `json:"contractorCost"`
	Margin         float64 `json:"margin"`

	InvestorRatio   float64 `json:"investorRatio"`
	ContractorRatio float64 `json:"contractorRatio"`

	InvestorProfit   float64 `json:"investorProfit"`
	ContractorProfit float64 `json:"contractorProfit"`

	InvestorProfitPercent   float64 `json:"investorProfitPercent"`
	ContractorProfitPercent float64 `json:"contractorProfitPercent"`

	InvestorRatioPct   float64 `json:"investorRatioPct"`
	ContractorRatioPct float64 `json:"contractorRatioPct"`
}

// Allocate computes the proportional profit distribution for the given
// inputs. The margin (price minus total base cost) is split according to
// each party's share of the base cost, so the two profits always sum back
// to the margin.
//
// When the total base cost is zero the split is degenerate and
// ErrZeroBaseCost is returned. When only one party's cost is zero that
// party's profit is necessarily zero and its profit percent is reported
// as zero rather than NaN.
func Allocate(in Inputs) (Result, error) {
	totalBaseCost := in.AcquisitionCost + in.LaborCost + in.MaterialCost
	if totalBaseCost == 0 {
		return Result{}, ErrZeroBaseCost
	}

	investorCost := in.AcquisitionCost + in.MaterialCost
	contractorCost := in.LaborCost

	investorRatio := investorCost / totalBaseCost
	contractorRatio := contractorCost / totalBaseCost

	margin := in.Price - totalBaseCost

	investorProfit := investorRatio * margin
	contractorProfit := contractorRatio * margin

	return Result{
		TotalBaseCost:  totalBaseCost,
		InvestorCost:   investorCost,
		ContractorCost: contractorCost,
		Margin:         margin,

		InvestorRatio:   investorRatio,
		ContractorRatio: contractorRatio,

		InvestorProfit:   investorProfit,
		ContractorProfit: contractorProfit,

		// A party with no cost at risk has zero profit by construction;
		// CalculatePercentage reports zero for it instead of dividing by
		// zero.
		InvestorProfitPercent:   mathutil.CalculatePercentage(investorProfit, investorCost),
		ContractorProfitPercent: mathutil.CalculatePercentage(contractorProfit, contractorCost),

		InvestorRatioPct:   mathutil.RoundRatio(investorRatio * 100),
		ContractorRatioPct: mathutil.RoundRatio(contractorRatio * 100),
	}, nil
}
