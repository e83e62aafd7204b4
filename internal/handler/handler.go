package handler

import (
	"vgs-buy-tracker/internal/service"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"
)

type Handler struct {
	tracer    trace.Tracer
	dashboard *service.DashboardService
	history   service.HistoryLoader
}

func New(tracer trace.Tracer, dashboard *service.DashboardService, history service.HistoryLoader) *Handler {
	return &Handler{
		tracer:    tracer,
		dashboard: dashboard,
		history:   history,
	}
}

// RegisterRoutes mounts the API. The health endpoint stays open; the /api
// group requires X-API-Key when apiKey is non-empty.
func (h *Handler) RegisterRoutes(r *gin.Engine, apiKey string) {
	r.GET("/health", h.Health)

	api := r.Group("/api", APIKeyAuth(apiKey))
	api.GET("/dashboard", h.GetDashboard)
	api.GET("/history", h.GetHistory)
	api.GET("/simulation", h.GetSimulation)
}
