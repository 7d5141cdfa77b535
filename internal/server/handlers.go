package server

import (
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"DCASimulator/internal/chart"
	"DCASimulator/internal/engine"
	"DCASimulator/internal/model"
	"DCASimulator/internal/report"
	"DCASimulator/internal/series"
)

// Handler serves simulation requests against a default parameter set and
// price series captured once at startup.
type Handler struct {
	defaults model.Parameters
	series   model.PriceSeries
}

// NewHandler creates a Handler with the given defaults.
func NewHandler(defaults model.Parameters, s model.PriceSeries) *Handler {
	return &Handler{defaults: defaults, series: s}
}

// SimulateRequest optionally overrides the default parameters and/or the
// default price series. Overrides are wholesale, never field-by-field.
type SimulateRequest struct {
	Parameters *model.Parameters `json:"parameters"`
	Prices     []float64         `json:"prices"`
	StartDate  string            `json:"start_date"` // YYYY-MM-DD, required with prices
}

// SimulateResponse carries the full per-period table plus the run summary.
type SimulateResponse struct {
	Parameters model.Parameters          `json:"parameters"`
	Summary    model.Summary             `json:"summary"`
	Snapshots  []model.PortfolioSnapshot `json:"snapshots"`
}

// Healthz reports liveness.
func (h *Handler) Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetDataset returns the default price series.
func (h *Handler) GetDataset(c *gin.Context) {
	c.JSON(http.StatusOK, h.series)
}

// Simulate runs the engine and returns snapshots plus summary.
func (h *Handler) Simulate(c *gin.Context) {
	params, snaps, ok := h.run(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, SimulateResponse{
		Parameters: params,
		Summary:    report.Summarize(params.InitialCapital, snaps),
		Snapshots:  snaps,
	})
}

// PortfolioChart renders the total-value trajectory as PNG.
func (h *Handler) PortfolioChart(c *gin.Context) {
	params, snaps, ok := h.run(c)
	if !ok {
		return
	}
	img, err := chart.Portfolio(snaps, params.InitialCapital)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render chart: " + err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

// PriceChart renders the price series with trigger markers as PNG.
func (h *Handler) PriceChart(c *gin.Context) {
	_, snaps, ok := h.run(c)
	if !ok {
		return
	}
	img, err := chart.PriceTriggers(snaps)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "render chart: " + err.Error()})
		return
	}
	c.Data(http.StatusOK, "image/png", img)
}

// run parses the request, resolves series and parameters, and executes the
// simulation. On failure it writes the error response and returns ok=false.
func (h *Handler) run(c *gin.Context) (model.Parameters, []model.PortfolioSnapshot, bool) {
	var req SimulateRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "bad request: " + err.Error()})
		return model.Parameters{}, nil, false
	}

	s := h.series
	if len(req.Prices) > 0 {
		start, err := time.Parse("2006-01-02", req.StartDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "start_date must be YYYY-MM-DD when prices are supplied"})
			return model.Parameters{}, nil, false
		}
		s, err = series.New(req.Prices, start)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return model.Parameters{}, nil, false
		}
	}

	params := h.defaults
	if req.Parameters != nil {
		params = *req.Parameters
	}

	snaps, err := engine.Simulate(s, params)
	if err != nil {
		status := http.StatusInternalServerError
		if errors.Is(err, model.ErrInvalidParameters) || errors.Is(err, model.ErrInvalidSeries) {
			status = http.StatusBadRequest
		}
		c.JSON(status, gin.H{"error": err.Error()})
		return model.Parameters{}, nil, false
	}
	return params, snaps, true
}
