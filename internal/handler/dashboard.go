package handler

import (
	"errors"
	"net/http"
	"strconv"

	"vgs-buy-tracker/internal/domain"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"
)

// GetDashboard godoc
// @Summary      Get the full buy-signal dashboard
// @Description  Metrics, the last 90 decorated rows, and the chart series in one payload
// @Tags         dashboard
// @Produce      json
// @Param        window     query  int     false  "SMA window in days (5-60)"            default(20)
// @Param        threshold  query  number  false  "Percent below SMA to trigger (-10..-1)"  default(-3)
// @Param        amount     query  number  false  "Investment per trigger (500-10000)"   default(1500)
// @Param        ymin       query  number  false  "Chart vertical axis lower bound"
// @Param        ymax       query  number  false  "Chart vertical axis upper bound"
// @Success      200  {object}  domain.Dashboard
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/dashboard [get]
func (h *Handler) GetDashboard(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-dashboard")
	defer span.End()

	params, ok := parseParams(c)
	if !ok {
		return
	}
	span.SetAttributes(attribute.Int("sma_window", params.SMAWindow))

	yMin, ok := optionalFloat(c, "ymin")
	if !ok {
		return
	}
	yMax, ok := optionalFloat(c, "ymax")
	if !ok {
		return
	}

	dash, err := h.dashboard.GetDashboard(ctx, params, yMin, yMax)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, dash)
}

// GetSimulation godoc
// @Summary      Get the dollar-cost-averaging outcome
// @Description  Runs the simulation for the given parameters without the table and chart
// @Tags         dashboard
// @Produce      json
// @Param        window     query  int     false  "SMA window in days (5-60)"            default(20)
// @Param        threshold  query  number  false  "Percent below SMA to trigger (-10..-1)"  default(-3)
// @Param        amount     query  number  false  "Investment per trigger (500-10000)"   default(1500)
// @Success      200  {object}  domain.SimulationResult
// @Failure      400  {object}  map[string]string
// @Failure      503  {object}  map[string]string
// @Router       /api/simulation [get]
func (h *Handler) GetSimulation(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-simulation")
	defer span.End()

	params, ok := parseParams(c)
	if !ok {
		return
	}

	sim, err := h.dashboard.GetSimulation(ctx, params)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, sim)
}

// parseParams reads the three engine parameters, falling back to the
// defaults and clamping to the documented domains. A non-numeric value is a
// 400; parseParams writes the response itself and reports ok=false.
func parseParams(c *gin.Context) (domain.Params, bool) {
	params := domain.DefaultParams()

	if v := c.Query("window"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "window must be an integer"})
			return params, false
		}
		params.SMAWindow = n
	}
	if v := c.Query("threshold"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "threshold must be a number"})
			return params, false
		}
		params.Threshold = n
	}
	if v := c.Query("amount"); v != "" {
		n, err := strconv.ParseFloat(v, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "amount must be a number"})
			return params, false
		}
		params.InvestmentAmount = n
	}

	return params.Clamp(), true
}

func optionalFloat(c *gin.Context, name string) (*float64, bool) {
	v := c.Query(name)
	if v == "" {
		return nil, true
	}
	n, err := strconv.ParseFloat(v, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " must be a number"})
		return nil, false
	}
	return &n, true
}

func respondPipelineError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrDataUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "no valid price data available for " + domain.DefaultSymbol + ", please try again later",
		})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
}
