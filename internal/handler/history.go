package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetHistory godoc
// @Summary      Get the raw daily price history
// @Description  Returns the trailing daily bars the signals are computed from, with the synthetic-data flag
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  domain.History
// @Failure      503  {object}  map[string]string
// @Router       /api/history [get]
func (h *Handler) GetHistory(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-history")
	defer span.End()

	hist, err := h.history.GetHistory(ctx)
	if err != nil {
		respondPipelineError(c, err)
		return
	}

	c.JSON(http.StatusOK, hist)
}
