package allocation

import (
	"fmt"

	"github.com/the-cloud-architect/contractor-calculator/pkg/constants"
)

// PriceRange describes a price sweep: Steps+1 equally spaced sample points
// between Min and Max inclusive.
type PriceRange struct {
	Min   float64
	Max   float64
	Steps int
}

// DefaultPriceRange returns the conventional sweep for a deal with the
// given total base cost: half the cost up to twice the cost, 20 steps.
func DefaultPriceRange(totalBaseCost float64) PriceRange {
	return PriceRange{
		Min:   constants.DefaultTrendMinFactor * totalBaseCost,
		Max:   constants.DefaultTrendMaxFactor * totalBaseCost,
		Steps: constants.DefaultTrendSteps,
	}
}

// TrendPoint is one sample of the trend series: the allocation outcome at
// a single swept price with costs held fixed.
type TrendPoint struct {
	Price            float64 `json:"price"`
	InvestorProfit   float64 `json:"investorProfit"`
	ContractorProfit float64 `json:"contractorProfit"`
	Margin           float64 `json:"margin"`
}

// TrendSeries evaluates the allocation at each price in the range, holding
// the three cost inputs from in fixed. The Price field of in is ignored.
// The returned points are ordered by ascending price. A non-positive step
// count falls back to the default; counts above MaxTrendSteps are rejected
// since the step count sizes the result.
func TrendSeries(in Inputs, rng PriceRange) ([]TrendPoint, error) {
	if rng.Steps <= 0 {
		rng.Steps = constants.DefaultTrendSteps
	}
	if rng.Steps > constants.MaxTrendSteps {
		return nil, fmt.Errorf("step count %d exceeds limit of %d", rng.Steps, constants.MaxTrendSteps)
	}
	if rng.Max < rng.Min {
		return nil, fmt.Errorf("invalid price range: max %.2f below min %.2f", rng.Max, rng.Min)
	}

	stride := (rng.Max - rng.Min) / float64(rng.Steps)
	points := make([]TrendPoint, 0, rng.Steps+1)
	for i := 0; i <= rng.Steps; i++ {
		in.Price = rng.Min + float64(i)*stride
		result, err := Allocate(in)
		if err != nil {
			return nil, err
		}
		points = append(points, TrendPoint{
			Price:            in.Price,
			InvestorProfit:   result.InvestorProfit,
			ContractorProfit: result.ContractorProfit,
			Margin:           result.Margin,
		})
	}
	return points, nil
}
