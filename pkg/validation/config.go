// Package validation provides configuration validation utilities.
package validation

import (
	"fmt"

	"github.com/the-cloud-architect/contractor-calculator/pkg/constants"
)

// ValidateOutputFormat checks that the requested output format is supported.
func ValidateOutputFormat(format string) error {
	switch format {
	case constants.OutputFormatPretty, constants.OutputFormatCSV:
		return nil
	default:
		return fmt.Errorf("invalid output format: %s (supported: %s, %s)",
			format, constants.OutputFormatPretty, constants.OutputFormatCSV)
	}
}

// SliderInfo describes one dashboard control for validation purposes. Cost
// marks the three cost inputs whose minimums guard the engine against a
// zero base cost.
type SliderInfo struct {
	Name string
	Min  float64
	Max  float64
	Step float64
	Cost bool
}

// ValidateSliders checks the dashboard control ranges and returns warnings
func ValidateSliders(sliders []SliderInfo) []string {
	var warnings []string

	for _, slider := range sliders {
		if slider.Min > slider.Max {
			warnings = append(warnings, fmt.Sprintf("Slider '%s' has inverted range (%.2f > %.2f)",
				slider.Name, slider.Min, slider.Max))
		}
		if slider.Step < 0 {
			warnings = append(warnings, fmt.Sprintf("Slider '%s' has negative step %.2f",
				slider.Name, slider.Step))
		}
		if slider.Cost && slider.Min <= 0 {
			warnings = append(warnings, fmt.Sprintf("Slider '%s' allows a minimum of %.2f - a zero total base cost is a degenerate input the engine rejects",
				slider.Name, slider.Min))
		}
	}

	return warnings
}

// ValidateTrend checks the price-sweep settings and returns warnings
func ValidateTrend(steps int, minFactor, maxFactor float64) []string {
	var warnings []string

	if steps <= 0 {
		warnings = append(warnings, fmt.Sprintf("Trend steps %d is not positive - the default of %d will be used",
			steps, constants.DefaultTrendSteps))
	}
	if steps > constants.MaxTrendSteps {
		warnings = append(warnings, fmt.Sprintf("Trend steps %d exceeds the limit of %d - sweeps will be rejected",
			steps, constants.MaxTrendSteps))
	}
	if minFactor >= maxFactor {
		warnings = append(warnings, fmt.Sprintf("Trend range factors are inverted (%.2f >= %.2f)",
			minFactor, maxFactor))
	}
	if minFactor < 0 {
		warnings = append(warnings, fmt.Sprintf("Trend minimum factor %.2f is negative - the sweep will include negative prices",
			minFactor))
	}

	return warnings
}

// ValidateDeal checks the default deal costs and returns warnings
func ValidateDeal(acquisitionCost, laborCost, materialCost float64) []string {
	var warnings []string

	if acquisitionCost+laborCost+materialCost == 0 {
		warnings = append(warnings, "Deal costs sum to zero - the engine will reject this as a degenerate input")
	}
	for name, cost := range map[string]float64{
		"acquisitionCost": acquisitionCost,
		"laborCost":       laborCost,
		"materialCost":    materialCost,
	} {
		if cost < 0 {
			warnings = append(warnings, fmt.Sprintf("Deal cost '%s' is negative (%.2f) - treated as a refund",
				name, cost))
		}
	}

	return warnings
}
