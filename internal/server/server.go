// Package server provides the HTTP dashboard and JSON API for the calculator.
package server

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"strings"
	"time"

	"github.com/the-cloud-architect/contractor-calculator/internal/allocation"
	"github.com/the-cloud-architect/contractor-calculator/internal/config"
	"github.com/the-cloud-architect/contractor-calculator/internal/metrics"
	"github.com/the-cloud-architect/contractor-calculator/pkg/constants"
	"github.com/the-cloud-architect/contractor-calculator/pkg/output"
	"go.uber.org/zap"
)

//go:embed static/*
var staticFiles embed.FS

type handler struct {
	logger         *zap.Logger
	conf           *config.Configuration
	maxRequestSize int64
	version        string
}

// NewHandler constructs the HTTP handler that serves the web UI and allocation API.
func NewHandler(logger *zap.Logger, conf *config.Configuration, maxRequestSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if conf == nil {
		conf = config.DefaultConfiguration()
	}

	if maxRequestSize <= 0 {
		maxRequestSize = constants.DefaultMaxRequestSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{logger: logger, conf: conf, maxRequestSize: maxRequestSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Allocation API endpoint
	mux.HandleFunc("/api/allocate", h.handleAllocate)

	// Price-sweep API endpoint for the trend chart
	mux.HandleFunc("/api/trend", h.handleTrend)

	// Defaults endpoint for initializing the dashboard controls
	mux.HandleFunc("/api/defaults", h.handleDefaults)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	// Prometheus metrics
	mux.Handle("/metrics", metrics.Handler())

	// Static assets (web UI)
	sub, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic(fmt.Sprintf("failed to prepare embedded static files: %v", err))
	}
	fileServer := http.FileServer(http.FS(sub))
	mux.Handle("/", fileServer)

	return metrics.Middleware(mux)
}

type allocateRequest struct {
	Price           float64 `json:"price"`
	AcquisitionCost float64 `json:"acquisitionCost"`
	LaborCost       float64 `json:"laborCost"`
	MaterialCost    float64 `json:"materialCost"`
}

type allocateResponse struct {
	allocation.Result
	allocation.Breakdown
	Duration string `json:"duration"`
}

type trendRequest struct {
	allocateRequest
	Steps     int     `json:"steps,omitempty"`
	MinFactor float64 `json:"minFactor,omitempty"`
	MaxFactor float64 `json:"maxFactor,omitempty"`
}

type trendResponse struct {
	Points   []allocation.TrendPoint `json:"points"`
	CSV      string                  `json:"csv"`
	Duration string                  `json:"duration"`
}

type defaultsResponse struct {
	Deal    config.DealConfig    `json:"deal"`
	Sliders config.SlidersConfig `json:"sliders"`
	Trend   config.TrendConfig   `json:"trend"`
}

func (h *handler) handleAllocate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var req allocateRequest
	if !h.decodeRequest(w, r, &req, "server.handleAllocate") {
		return
	}

	result, err := allocation.Allocate(allocation.Inputs{
		Price:           req.Price,
		AcquisitionCost: req.AcquisitionCost,
		LaborCost:       req.LaborCost,
		MaterialCost:    req.MaterialCost,
	})
	if err != nil {
		if errors.Is(err, allocation.ErrZeroBaseCost) {
			metrics.DegenerateInputsTotal.Inc()
			h.respondError(w, http.StatusUnprocessableEntity, err.Error(), "server.handleAllocate")
			return
		}
		h.respondError(w, http.StatusInternalServerError, err.Error(), "server.handleAllocate")
		return
	}

	metrics.AllocationsTotal.WithLabelValues(metrics.Outcome(result.Margin)).Inc()
	elapsed := time.Since(start)

	h.logger.Info("allocation computed",
		zap.String("op", "server.handleAllocate"),
		zap.Float64("price", req.Price),
		zap.Float64("totalBaseCost", result.TotalBaseCost),
		zap.Float64("margin", result.Margin),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, allocateResponse{
		Result:    result,
		Breakdown: result.Breakdown(),
		Duration:  elapsed.String(),
	})
}

func (h *handler) handleTrend(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()

	var req trendRequest
	if !h.decodeRequest(w, r, &req, "server.handleTrend") {
		return
	}

	in := allocation.Inputs{
		AcquisitionCost: req.AcquisitionCost,
		LaborCost:       req.LaborCost,
		MaterialCost:    req.MaterialCost,
	}
	totalBaseCost := req.AcquisitionCost + req.LaborCost + req.MaterialCost

	rng := allocation.PriceRange{
		Min:   h.conf.Trend.MinFactor * totalBaseCost,
		Max:   h.conf.Trend.MaxFactor * totalBaseCost,
		Steps: h.conf.Trend.Steps,
	}
	if req.Steps > 0 {
		rng.Steps = req.Steps
	}
	if req.MinFactor != 0 {
		rng.Min = req.MinFactor * totalBaseCost
	}
	if req.MaxFactor != 0 {
		rng.Max = req.MaxFactor * totalBaseCost
	}

	points, err := allocation.TrendSeries(in, rng)
	if err != nil {
		if errors.Is(err, allocation.ErrZeroBaseCost) {
			metrics.DegenerateInputsTotal.Inc()
			h.respondError(w, http.StatusUnprocessableEntity, err.Error(), "server.handleTrend")
			return
		}
		h.respondError(w, http.StatusBadRequest, err.Error(), "server.handleTrend")
		return
	}

	metrics.TrendSweepsTotal.Inc()
	elapsed := time.Since(start)

	h.logger.Info("trend series computed",
		zap.String("op", "server.handleTrend"),
		zap.Int("points", len(points)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, trendResponse{
		Points:   points,
		CSV:      output.CsvString(points),
		Duration: elapsed.String(),
	})
}

func (h *handler) handleDefaults(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, defaultsResponse{
		Deal:    h.conf.Deal,
		Sliders: h.conf.Sliders,
		Trend:   h.conf.Trend,
	})
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

// decodeRequest decodes a JSON body into dst within the configured size
// limit, responding with an error and returning false on failure.
func (h *handler) decodeRequest(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	if h.maxRequestSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxRequestSize)
	}

	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("request exceeds limit of %d bytes", h.maxRequestSize), op)
			return false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to decode request: %v", err), op)
		return false
	}
	return true
}

func (h *handler) respondError(w http.ResponseWriter, status int, msg string, op string) {
	if h.logger != nil {
		h.logger.Error("request failed",
			zap.String("op", op),
			zap.Int("status", status),
			zap.String("error", msg),
		)
	}

	h.writeJSON(w, status, map[string]string{"error": msg})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
