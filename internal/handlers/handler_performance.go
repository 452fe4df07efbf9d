package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/dto"
	"github.com/primeblocks/investment-backend/internal/middleware"
)

type performanceHandler struct {
	performanceService portssvc.PerformanceSvcFacade
}

func newPerformanceHandler(ps portssvc.PerformanceSvcFacade) *performanceHandler {
	return &performanceHandler{performanceService: ps}
}

func registerPerformanceRoutes(rg *gin.RouterGroup, performanceService portssvc.PerformanceSvcFacade) {
	h := newPerformanceHandler(performanceService)
	rg.GET("/performance", h.history)
}

// history godoc
// @Summary Get the authenticated investor's portfolio performance
// @Description Returns recent daily snapshots, most recent first
// @Tags performance
// @Produce  json
// @Param   days query int false "Number of days to return (default 30, max 365)"
// @Success 200 {object} dto.PerformanceResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /performance [get]
func (h *performanceHandler) history(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	days, _ := strconv.Atoi(c.DefaultQuery("days", "30"))

	snaps, err := h.performanceService.History(c.Request.Context(), userID, days)
	if err != nil {
		logger.Error("Failed to retrieve performance history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve performance history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToPerformanceResponse(snaps))
}
