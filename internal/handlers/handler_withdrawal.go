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

type withdrawalHandler struct {
	withdrawalService portssvc.WithdrawalSvcFacade
}

func newWithdrawalHandler(ws portssvc.WithdrawalSvcFacade) *withdrawalHandler {
	return &withdrawalHandler{withdrawalService: ws}
}

func registerWithdrawalRoutes(rg *gin.RouterGroup, withdrawalService portssvc.WithdrawalSvcFacade) {
	h := newWithdrawalHandler(withdrawalService)

	withdrawals := rg.Group("/withdrawals")
	{
		withdrawals.POST("", h.createRequest)
		withdrawals.GET("", h.listOwnRequests)
	}
}

// createRequest godoc
// @Summary File a withdrawal request
// @Description Records a payout request for admin review; the amount must be covered by the current balance
// @Tags withdrawals
// @Accept  json
// @Produce  json
// @Param   request body dto.CreateWithdrawalRequest true "Withdrawal details"
// @Success 201 {object} dto.WithdrawalRequestResponse
// @Failure 400 {object} map[string]string "Invalid input or insufficient balance"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /withdrawals [post]
func (h *withdrawalHandler) createRequest(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateWithdrawalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	request, err := h.withdrawalService.CreateRequest(c.Request.Context(), userID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Insufficient balance for this withdrawal"})
		default:
			logger.Error("Failed to create withdrawal request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create withdrawal request"})
		}
		return
	}

	c.JSON(http.StatusCreated, dto.ToWithdrawalRequestResponse(request))
}

// listOwnRequests godoc
// @Summary List the authenticated investor's withdrawal requests
// @Tags withdrawals
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListWithdrawalRequestsResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /withdrawals [get]
func (h *withdrawalHandler) listOwnRequests(c *gin.Context) {
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

	requests, err := h.withdrawalService.ListForUser(c.Request.Context(), userID, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list withdrawal requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve withdrawal requests"})
		return
	}

	c.JSON(http.StatusOK, dto.ToListWithdrawalRequestsResponse(requests))
}
