package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/primeblocks/investment-backend/internal/apperrors"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/dto"
	"github.com/primeblocks/investment-backend/internal/middleware"
)

type depositHandler struct {
	depositService portssvc.DepositSvcFacade
}

func newDepositHandler(ds portssvc.DepositSvcFacade) *depositHandler {
	return &depositHandler{depositService: ds}
}

func registerDepositRoutes(rg *gin.RouterGroup, depositService portssvc.DepositSvcFacade) {
	h := newDepositHandler(depositService)

	deposits := rg.Group("/deposits")
	{
		deposits.POST("", h.createRequest)
		deposits.GET("", h.listOwnRequests)
	}
}

// createRequest godoc
// @Summary File a deposit request
// @Description Records a claim of an external payment for admin review
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateDepositRequest true "Deposit details"
// @Success 201 {object} dto.DepositRequestResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /deposits [post]
func (h *depositHandler) createRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	request, err := h.depositService.CreateRequest(c.Request.Context(), userID, req)
	if err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to create deposit request", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create deposit request"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToDepositRequestResponse(request))
}

// listOwnRequests godoc
// @Summary List the authenticated investor's deposit requests
// @Tags deposits
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListDepositRequestsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /deposits [get]
func (h *depositHandler) listOwnRequests(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	requests, err := h.depositService.ListForUser(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list deposit requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deposit requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListDepositRequestsResponse(requests))
}
