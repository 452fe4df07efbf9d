package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/dto"
	"github.com/primeblocks/investment-backend/internal/middleware"
)

type profitHistoryHandler struct {
	profitService portssvc.ProfitSvcFacade
}

func newProfitHistoryHandler(ps portssvc.ProfitSvcFacade) *profitHistoryHandler {
	return &profitHistoryHandler{profitService: ps}
}

func registerProfitHistoryRoutes(rg *gin.RouterGroup, profitService portssvc.ProfitSvcFacade) {
	h := newProfitHistoryHandler(profitService)
	rg.GET("/profit-history", h.listOwnEntries)
}

// listOwnEntries godoc
// @Summary List the authenticated investor's profit accruals
// @Description Returns per-accrual history records, newest first
// @Tags profit-history
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListProfitEntriesResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /profit-history [get]
func (h *profitHistoryHandler) listOwnEntries(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	entries, err := h.profitService.ListHistoryForUser(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list profit history", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve profit history"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListProfitEntriesResponse(entries))
}
