package validation

import (
	"strings"
	"testing"
)

func TestValidateOutputFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"Pretty format", "pretty", false},
		{"CSV format", "csv", false},
		{"Unknown format", "xml", true},
		{"Empty format", "", true},
		{"Uppercase not accepted", "PRETTY", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateOutputFormat(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateOutputFormat(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func TestValidateSliders(t *testing.T) {
	sliders := []SliderInfo{
		{Name: "price", Min: 0, Max: 500, Step: 5, Cost: false},
		{Name: "laborCost", Min: 10, Max: 150, Step: 5, Cost: true},
	}
	if warnings := ValidateSliders(sliders); len(warnings) != 0 {
		t.Errorf("expected no warnings for sane sliders, got %v", warnings)
	}

	bad := []SliderInfo{
		{Name: "acquisitionCost", Min: 200, Max: 20, Step: 5, Cost: true},
		{Name: "materialCost", Min: 0, Max: 150, Step: -1, Cost: true},
	}
	warnings := ValidateSliders(bad)
	if len(warnings) != 3 {
		t.Fatalf("expected 3 warnings, got %d: %v", len(warnings), warnings)
	}

	var sawInverted, sawStep, sawZeroMin bool
	for _, warning := range warnings {
		if strings.Contains(warning, "inverted range") {
			sawInverted = true
		}
		if strings.Contains(warning, "negative step") {
			sawStep = true
		}
		if strings.Contains(warning, "degenerate input") {
			sawZeroMin = true
		}
	}
	if !sawInverted || !sawStep || !sawZeroMin {
		t.Errorf("missing expected warning kinds in %v", warnings)
	}
}

func TestValidateTrend(t *testing.T) {
	if warnings := ValidateTrend(20, 0.5, 2.0); len(warnings) != 0 {
		t.Errorf("expected no warnings for default trend settings, got %v", warnings)
	}

	warnings := ValidateTrend(0, 2.0, 0.5)
	if len(warnings) != 2 {
		t.Fatalf("expected 2 warnings, got %d: %v", len(warnings), warnings)
	}

	warnings = ValidateTrend(10, -0.5, 2.0)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "negative prices") {
		t.Errorf("expected negative-factor warning, got %v", warnings)
	}

	warnings = ValidateTrend(5000, 0.5, 2.0)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "exceeds the limit") {
		t.Errorf("expected step-limit warning, got %v", warnings)
	}
}

func TestValidateDeal(t *testing.T) {
	if warnings := ValidateDeal(80, 40, 40); len(warnings) != 0 {
		t.Errorf("expected no warnings for default deal, got %v", warnings)
	}

	warnings := ValidateDeal(0, 0, 0)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "degenerate") {
		t.Errorf("expected degenerate warning, got %v", warnings)
	}

	warnings = ValidateDeal(80, -40, 40)
	if len(warnings) != 1 || !strings.Contains(warnings[0], "refund") {
		t.Errorf("expected refund warning, got %v", warnings)
	}
}
