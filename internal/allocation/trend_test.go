package allocation

import (
	"errors"
	"testing"

	"github.com/the-cloud-architect/contractor-calculator/pkg/constants"
	"github.com/the-cloud-architect/contractor-calculator/pkg/mathutil"
)

func TestDefaultPriceRange(t *testing.T) {
	rng := DefaultPriceRange(160)
	if rng.Min != 80 {
		t.Errorf("min = %v, expected 80", rng.Min)
	}
	if rng.Max != 320 {
		t.Errorf("max = %v, expected 320", rng.Max)
	}
	if rng.Steps != constants.DefaultTrendSteps {
		t.Errorf("steps = %v, expected %v", rng.Steps, constants.DefaultTrendSteps)
	}
}

func TestTrendSeries(t *testing.T) {
	in := Inputs{AcquisitionCost: 80, LaborCost: 40, MaterialCost: 40}
	points, err := TrendSeries(in, DefaultPriceRange(160))
	if err != nil {
		t.Fatalf("TrendSeries returned error: %v", err)
	}

	if len(points) != constants.DefaultTrendSteps+1 {
		t.Fatalf("expected %d points, got %d", constants.DefaultTrendSteps+1, len(points))
	}
	if points[0].Price != 80 {
		t.Errorf("first price = %v, expected 80", points[0].Price)
	}
	if !mathutil.WithinTolerance(points[len(points)-1].Price, 320, constants.ProfitTolerance) {
		t.Errorf("last price = %v, expected 320", points[len(points)-1].Price)
	}

	for i, point := range points {
		if i > 0 && point.Price <= points[i-1].Price {
			t.Errorf("prices not strictly increasing at index %d: %v after %v", i, point.Price, points[i-1].Price)
		}
		sum := point.InvestorProfit + point.ContractorProfit
		if !mathutil.WithinTolerance(sum, point.Margin, constants.ProfitTolerance) {
			t.Errorf("point %d: profits sum to %v, expected margin %v", i, sum, point.Margin)
		}
		if !mathutil.WithinTolerance(point.Margin, point.Price-160, constants.ProfitTolerance) {
			t.Errorf("point %d: margin = %v, expected %v", i, point.Margin, point.Price-160)
		}
	}

	// The default sweep spans half to twice the base cost, so it must
	// cross break-even somewhere in the middle.
	sawLoss, sawProfit := false, false
	for _, point := range points {
		if point.Margin < 0 {
			sawLoss = true
		}
		if point.Margin > 0 {
			sawProfit = true
		}
	}
	if !sawLoss || !sawProfit {
		t.Error("default sweep should cover both loss and profit territory")
	}
}

func TestTrendSeriesDefaultSteps(t *testing.T) {
	in := Inputs{AcquisitionCost: 80, LaborCost: 40, MaterialCost: 40}
	points, err := TrendSeries(in, PriceRange{Min: 100, Max: 200})
	if err != nil {
		t.Fatalf("TrendSeries returned error: %v", err)
	}
	if len(points) != constants.DefaultTrendSteps+1 {
		t.Errorf("expected fallback to %d steps, got %d points", constants.DefaultTrendSteps, len(points))
	}
}

func TestTrendSeriesStepLimit(t *testing.T) {
	in := Inputs{AcquisitionCost: 80, LaborCost: 40, MaterialCost: 40}

	// At the limit the sweep still runs.
	points, err := TrendSeries(in, PriceRange{Min: 80, Max: 320, Steps: constants.MaxTrendSteps})
	if err != nil {
		t.Fatalf("TrendSeries returned error at the step limit: %v", err)
	}
	if len(points) != constants.MaxTrendSteps+1 {
		t.Errorf("expected %d points, got %d", constants.MaxTrendSteps+1, len(points))
	}

	// Above the limit the request is rejected before any allocation; huge
	// counts would otherwise size the result slice directly.
	for _, steps := range []int{constants.MaxTrendSteps + 1, 10000000, 2000000000} {
		if _, err := TrendSeries(in, PriceRange{Min: 80, Max: 320, Steps: steps}); err == nil {
			t.Errorf("expected error for %d steps", steps)
		}
	}
}

func TestTrendSeriesInvalidRange(t *testing.T) {
	in := Inputs{AcquisitionCost: 80, LaborCost: 40, MaterialCost: 40}
	if _, err := TrendSeries(in, PriceRange{Min: 200, Max: 100, Steps: 10}); err == nil {
		t.Fatal("expected error for inverted range")
	}
}

func TestTrendSeriesZeroBaseCost(t *testing.T) {
	_, err := TrendSeries(Inputs{}, PriceRange{Min: 0, Max: 100, Steps: 10})
	if !errors.Is(err, ErrZeroBaseCost) {
		t.Fatalf("expected ErrZeroBaseCost, got %v", err)
	}
}

func TestTrendSeriesIgnoresInputPrice(t *testing.T) {
	costs := Inputs{AcquisitionCost: 80, LaborCost: 40, MaterialCost: 40}
	withPrice := costs
	withPrice.Price = 999

	a, err := TrendSeries(costs, DefaultPriceRange(160))
	if err != nil {
		t.Fatalf("TrendSeries returned error: %v", err)
	}
	b, err := TrendSeries(withPrice, DefaultPriceRange(160))
	if err != nil {
		t.Fatalf("TrendSeries returned error: %v", err)
	}

	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("point %d differs when input price changes: %+v vs %+v", i, a[i], b[i])
		}
	}
}
