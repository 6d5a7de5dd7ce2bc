// Package config defines the data structures related to configuration and
// includes functions for loading and validating the config.
package config

import (
	"fmt"
	"io"

	"github.com/spf13/viper"
	"github.com/the-cloud-architect/contractor-calculator/pkg/constants"
	"github.com/the-cloud-architect/contractor-calculator/pkg/validation"
)

// Configuration holds all configuration for contractor-calculator.
type Configuration struct {
	Deal    DealConfig    `yaml:"deal,omitempty"`
	Sliders SlidersConfig `yaml:"sliders,omitempty"`
	Trend   TrendConfig   `yaml:"trend,omitempty"`
	Logging LoggingConfig `yaml:"logging,omitempty"`
	Output  OutputConfig  `yaml:"output,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `yaml:"level,omitempty"`      // debug, info, warn, error
	Format     string `yaml:"format,omitempty"`     // json, console
	OutputFile string `yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `yaml:"format,omitempty"` // pretty, csv
}

// DealConfig holds the default values for the four deal inputs, expressed
// in thousands of currency units.
type DealConfig struct {
	Price           float64 `yaml:"price,omitempty" json:"price"`
	AcquisitionCost float64 `yaml:"acquisitionCost,omitempty" json:"acquisitionCost"`
	LaborCost       float64 `yaml:"laborCost,omitempty" json:"laborCost"`
	MaterialCost    float64 `yaml:"materialCost,omitempty" json:"materialCost"`
}

// SliderRange describes one dashboard control: the bounds the UI enforces
// on an input and the step it moves in.
type SliderRange struct {
	Min  float64 `yaml:"min" json:"min"`
	Max  float64 `yaml:"max" json:"max"`
	Step float64 `yaml:"step,omitempty" json:"step"`
}

// SlidersConfig holds the dashboard control ranges per input.
type SlidersConfig struct {
	Price           SliderRange `yaml:"price,omitempty" json:"price"`
	AcquisitionCost SliderRange `yaml:"acquisitionCost,omitempty" json:"acquisitionCost"`
	LaborCost       SliderRange `yaml:"laborCost,omitempty" json:"laborCost"`
	MaterialCost    SliderRange `yaml:"materialCost,omitempty" json:"materialCost"`
}

// TrendConfig holds the price-sweep settings for the trend series.
type TrendConfig struct {
	Steps     int     `yaml:"steps,omitempty" json:"steps"`
	MinFactor float64 `yaml:"minFactor,omitempty" json:"minFactor"`
	MaxFactor float64 `yaml:"maxFactor,omitempty" json:"maxFactor"`
}

// LoadConfiguration takes a file path as input and loads the YAML-formatted
// configuration there.
func LoadConfiguration(configPath string) (*Configuration, error) {
	v := viper.New()
	v.SetConfigFile(configPath)
	v.AutomaticEnv()

	v.SetConfigType("yml")

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("error reading config file, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// LoadConfigurationFromReader loads a YAML-formatted configuration from an
// in-memory reader, bypassing the filesystem.
func LoadConfigurationFromReader(r io.Reader) (*Configuration, error) {
	v := viper.New()
	v.SetConfigType("yml")

	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("error reading config data, %s", err)
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %s", err)
	}

	configuration.ApplyDefaults()
	return &configuration, nil
}

// DefaultConfiguration returns the built-in configuration used when no
// config file is supplied.
func DefaultConfiguration() *Configuration {
	conf := &Configuration{}
	conf.ApplyDefaults()
	return conf
}

// ApplyDefaults fills any unset section with the built-in defaults. A deal
// section with every value zero is treated as unset; a zero-cost deal is
// degenerate and rejected by the engine anyway.
func (conf *Configuration) ApplyDefaults() {
	if conf.Deal == (DealConfig{}) {
		conf.Deal = DealConfig{
			Price:           constants.DefaultPrice,
			AcquisitionCost: constants.DefaultAcquisitionCost,
			LaborCost:       constants.DefaultLaborCost,
			MaterialCost:    constants.DefaultMaterialCost,
		}
	}

	if conf.Sliders.Price == (SliderRange{}) {
		conf.Sliders.Price = SliderRange{Min: constants.DefaultPriceSliderMin, Max: constants.DefaultPriceSliderMax, Step: constants.DefaultSliderStep}
	}
	if conf.Sliders.AcquisitionCost == (SliderRange{}) {
		conf.Sliders.AcquisitionCost = SliderRange{Min: constants.DefaultAcquisitionSliderMin, Max: constants.DefaultAcquisitionSliderMax, Step: constants.DefaultSliderStep}
	}
	if conf.Sliders.LaborCost == (SliderRange{}) {
		conf.Sliders.LaborCost = SliderRange{Min: constants.DefaultLaborSliderMin, Max: constants.DefaultLaborSliderMax, Step: constants.DefaultSliderStep}
	}
	if conf.Sliders.MaterialCost == (SliderRange{}) {
		conf.Sliders.MaterialCost = SliderRange{Min: constants.DefaultMaterialSliderMin, Max: constants.DefaultMaterialSliderMax, Step: constants.DefaultSliderStep}
	}

	if conf.Trend.Steps == 0 {
		conf.Trend.Steps = constants.DefaultTrendSteps
	}
	if conf.Trend.MinFactor == 0 {
		conf.Trend.MinFactor = constants.DefaultTrendMinFactor
	}
	if conf.Trend.MaxFactor == 0 {
		conf.Trend.MaxFactor = constants.DefaultTrendMaxFactor
	}
}

// ValidateConfiguration performs general validation of the configuration and returns warnings
func (conf *Configuration) ValidateConfiguration() []string {
	sliders := []validation.SliderInfo{
		{Name: "price", Min: conf.Sliders.Price.Min, Max: conf.Sliders.Price.Max, Step: conf.Sliders.Price.Step, Cost: false},
		{Name: "acquisitionCost", Min: conf.Sliders.AcquisitionCost.Min, Max: conf.Sliders.AcquisitionCost.Max, Step: conf.Sliders.AcquisitionCost.Step, Cost: true},
		{Name: "laborCost", Min: conf.Sliders.LaborCost.Min, Max: conf.Sliders.LaborCost.Max, Step: conf.Sliders.LaborCost.Step, Cost: true},
		{Name: "materialCost", Min: conf.Sliders.MaterialCost.Min, Max: conf.Sliders.MaterialCost.Max, Step: conf.Sliders.MaterialCost.Step, Cost: true},
	}

	warnings := validation.ValidateSliders(sliders)
	warnings = append(warnings, validation.ValidateTrend(conf.Trend.Steps, conf.Trend.MinFactor, conf.Trend.MaxFactor)...)
	warnings = append(warnings, validation.ValidateDeal(conf.Deal.AcquisitionCost, conf.Deal.LaborCost, conf.Deal.MaterialCost)...)
	return warnings
}
