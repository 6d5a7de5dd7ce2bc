package main

import (
	"flag"
	"fmt"
	"math"
	"os"

	"github.com/the-cloud-architect/contractor-calculator/internal/allocation"
	"github.com/the-cloud-architect/contractor-calculator/internal/config"
	"github.com/the-cloud-architect/contractor-calculator/internal/logging"
	"github.com/the-cloud-architect/contractor-calculator/pkg/constants"
	"github.com/the-cloud-architect/contractor-calculator/pkg/output"
	"github.com/the-cloud-architect/contractor-calculator/pkg/validation"
	"go.uber.org/zap"
)

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	price := flag.Float64("price", math.NaN(), "sale price override (thousands)")
	acquisition := flag.Float64("acquisition", math.NaN(), "acquisition cost override (thousands)")
	labor := flag.Float64("labor", math.NaN(), "labor cost override (thousands)")
	material := flag.Float64("material", math.NaN(), "material cost override (thousands)")
	noTrend := flag.Bool("no-trend", false, "skip the price sweep")
	flag.Parse()

	// Load the config file; fall back to built-in defaults when it is absent.
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		if _, statErr := os.Stat(*configLocation); os.IsNotExist(statErr) {
			conf = config.DefaultConfiguration()
		} else {
			fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
			return
		}
	}

	// Initialize logging based on config and CLI override
	logger, err := logging.NewLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty
	}

	if err := validation.ValidateOutputFormat(outputFormat); err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Apply CLI input overrides on top of the configured deal.
	in := allocation.Inputs{
		Price:           conf.Deal.Price,
		AcquisitionCost: conf.Deal.AcquisitionCost,
		LaborCost:       conf.Deal.LaborCost,
		MaterialCost:    conf.Deal.MaterialCost,
	}
	if !math.IsNaN(*price) {
		in.Price = *price
	}
	if !math.IsNaN(*acquisition) {
		in.AcquisitionCost = *acquisition
	}
	if !math.IsNaN(*labor) {
		in.LaborCost = *labor
	}
	if !math.IsNaN(*material) {
		in.MaterialCost = *material
	}

	result, err := allocation.Allocate(in)
	if err != nil {
		logger.Fatal("failed to compute allocation",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	var points []allocation.TrendPoint
	if !*noTrend {
		rng := allocation.PriceRange{
			Min:   conf.Trend.MinFactor * result.TotalBaseCost,
			Max:   conf.Trend.MaxFactor * result.TotalBaseCost,
			Steps: conf.Trend.Steps,
		}
		points, err = allocation.TrendSeries(in, rng)
		if err != nil {
			logger.Fatal("failed to compute trend series",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(in, result, points)
	case constants.OutputFormatCSV:
		output.CsvFormat(points)
	}
}
