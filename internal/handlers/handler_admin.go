package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/primeblocks/investment-backend/internal/apperrors"
	"github.com/primeblocks/investment-backend/internal/core/domain"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/dto"
	"github.com/primeblocks/investment-backend/internal/middleware"
)

// adminHandler covers the administrator surface: stats, user management,
// request review, job settings, and the manual profit-run trigger.
type adminHandler struct {
	services *portssvc.ServiceContainer
}

func newAdminHandler(services *portssvc.ServiceContainer) *adminHandler {
	return &adminHandler{services: services}
}

func registerAdminRoutes(rg *gin.RouterGroup, services *portssvc.ServiceContainer) {
	h := newAdminHandler(services)

	admin := rg.Group("/admin", middleware.RequireAdmin(services.User))
	{
		admin.GET("/stats", h.stats)
		admin.GET("/users", h.listUsers)
		admin.POST("/users/:id/adjust-balance", h.adjustBalance)

		admin.GET("/settings", h.listSettings)
		admin.PUT("/settings", h.updateSettings)

		admin.GET("/deposits", h.listDeposits)
		admin.POST("/deposits/:id/approve", h.approveDeposit)
		admin.POST("/deposits/:id/reject", h.rejectDeposit)

		admin.GET("/withdrawals", h.listWithdrawals)
		admin.POST("/withdrawals/:id/approve", h.approveWithdrawal)
		admin.POST("/withdrawals/:id/reject", h.rejectWithdrawal)

		admin.GET("/kyc", h.listKyc)
		admin.POST("/kyc/:id/review", h.reviewKyc)

		admin.POST("/profit-run", h.runProfitDistribution)
	}
}

// stats godoc
// @Summary Platform summary statistics
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.AdminStatsResponse
// @Failure 403 {object} map[string]string "Administrator access required"
// @Security BearerAuth
// @Router /admin/stats [get]
func (h *adminHandler) stats(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	stats, err := h.services.Admin.Stats(c.Request.Context())
	if err != nil {
		logger.Error("Failed to compute admin stats", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve stats"})
		return
	}
	c.JSON(http.StatusOK, stats)
}

// listUsers godoc
// @Summary List investor accounts
// @Tags admin
// @Produce  json
// @Param   limit query int false "Page size (default 20)"
// @Param   offset query int false "Page offset"
// @Success 200 {object} dto.ListUsersResponse
// @Failure 403 {object} map[string]string "Administrator access required"
// @Security BearerAuth
// @Router /admin/users [get]
func (h *adminHandler) listUsers(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	users, err := h.services.User.ListUsers(c.Request.Context(), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list users", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve users"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListUsersResponse(users))
}

// adjustBalance godoc
// @Summary Manually adjust an account balance
// @Description Applies a signed credit or debit with an audit ledger entry
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   id path string true "User ID"
// @Param   adjustment body dto.AdjustBalanceRequest true "Adjustment details"
// @Success 204 "Adjusted"
// @Failure 400 {object} map[string]string "Invalid input or uncoverable debit"
// @Failure 404 {object} map[string]string "User not found"
// @Security BearerAuth
// @Router /admin/users/{id}/adjust-balance [post]
func (h *adminHandler) adjustBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)
	userID := c.Param("id")

	var req dto.AdjustBalanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	err := h.services.Admin.AdjustBalance(c.Request.Context(), userID, adminID, req)
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Balance cannot cover the debit"})
		default:
			logger.Error("Failed to adjust balance", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to adjust balance"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// listSettings godoc
// @Summary List job settings
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.ListSettingsResponse
// @Failure 403 {object} map[string]string "Administrator access required"
// @Security BearerAuth
// @Router /admin/settings [get]
func (h *adminHandler) listSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	settings, err := h.services.Admin.ListSettings(c.Request.Context())
	if err != nil {
		logger.Error("Failed to list settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve settings"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListSettingsResponse(settings))
}

// updateSettings godoc
// @Summary Update job settings
// @Description Upserts the provided key/value pairs; unknown keys are rejected
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   settings body dto.UpdateSettingsRequest true "Settings to update"
// @Success 204 "Updated"
// @Failure 400 {object} map[string]string "Unknown setting key"
// @Security BearerAuth
// @Router /admin/settings [put]
func (h *adminHandler) updateSettings(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	var req dto.UpdateSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	if err := h.services.Admin.UpdateSettings(c.Request.Context(), adminID, req.Settings); err != nil {
		if errors.Is(err, apperrors.ErrValidation) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		logger.Error("Failed to update settings", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update settings"})
		return
	}
	c.Status(http.StatusNoContent)
}

// listDeposits godoc
// @Summary List deposit requests by review state
// @Tags admin
// @Produce  json
// @Param   status query string false "pending (default), approved, or rejected"
// @Success 200 {object} dto.ListDepositRequestsResponse
// @Failure 403 {object} map[string]string "Administrator access required"
// @Security BearerAuth
// @Router /admin/deposits [get]
func (h *adminHandler) listDeposits(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, ok := bindListRequestsParams(c)
	if !ok {
		return
	}

	requests, err := h.services.Deposit.ListByStatus(c.Request.Context(), domain.RequestStatus(params.Status), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list deposit requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve deposit requests"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListDepositRequestsResponse(requests))
}

// approveDeposit godoc
// @Summary Approve a pending deposit request
// @Description Credits the account and marks the request approved in one transaction
// @Tags admin
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 204 "Approved"
// @Failure 400 {object} map[string]string "Request is not pending"
// @Failure 404 {object} map[string]string "Request not found"
// @Security BearerAuth
// @Router /admin/deposits/{id}/approve [post]
func (h *adminHandler) approveDeposit(c *gin.Context) {
	adminID, _ := middleware.GetUserIDFromContext(c)
	h.reviewRequest(c, func() error {
		return h.services.Deposit.Approve(c.Request.Context(), c.Param("id"), adminID)
	})
}

// rejectDeposit godoc
// @Summary Reject a pending deposit request
// @Tags admin
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 204 "Rejected"
// @Failure 400 {object} map[string]string "Request is not pending"
// @Failure 404 {object} map[string]string "Request not found"
// @Security BearerAuth
// @Router /admin/deposits/{id}/reject [post]
func (h *adminHandler) rejectDeposit(c *gin.Context) {
	adminID, _ := middleware.GetUserIDFromContext(c)
	h.reviewRequest(c, func() error {
		return h.services.Deposit.Reject(c.Request.Context(), c.Param("id"), adminID)
	})
}

// listWithdrawals godoc
// @Summary List withdrawal requests by review state
// @Tags admin
// @Produce  json
// @Param   status query string false "pending (default), approved, or rejected"
// @Success 200 {object} dto.ListWithdrawalRequestsResponse
// @Failure 403 {object} map[string]string "Administrator access required"
// @Security BearerAuth
// @Router /admin/withdrawals [get]
func (h *adminHandler) listWithdrawals(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	params, ok := bindListRequestsParams(c)
	if !ok {
		return
	}

	requests, err := h.services.Withdrawal.ListByStatus(c.Request.Context(), domain.RequestStatus(params.Status), params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list withdrawal requests", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve withdrawal requests"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListWithdrawalRequestsResponse(requests))
}

// approveWithdrawal godoc
// @Summary Approve a pending withdrawal request
// @Description Debits the account after re-checking the balance under lock
// @Tags admin
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 204 "Approved"
// @Failure 400 {object} map[string]string "Request is not pending or balance cannot cover it"
// @Failure 404 {object} map[string]string "Request not found"
// @Security BearerAuth
// @Router /admin/withdrawals/{id}/approve [post]
func (h *adminHandler) approveWithdrawal(c *gin.Context) {
	adminID, _ := middleware.GetUserIDFromContext(c)
	h.reviewRequest(c, func() error {
		return h.services.Withdrawal.Approve(c.Request.Context(), c.Param("id"), adminID)
	})
}

// rejectWithdrawal godoc
// @Summary Reject a pending withdrawal request
// @Tags admin
// @Produce  json
// @Param   id path string true "Request ID"
// @Success 204 "Rejected"
// @Failure 400 {object} map[string]string "Request is not pending"
// @Failure 404 {object} map[string]string "Request not found"
// @Security BearerAuth
// @Router /admin/withdrawals/{id}/reject [post]
func (h *adminHandler) rejectWithdrawal(c *gin.Context) {
	adminID, _ := middleware.GetUserIDFromContext(c)
	h.reviewRequest(c, func() error {
		return h.services.Withdrawal.Reject(c.Request.Context(), c.Param("id"), adminID)
	})
}

// reviewRequest funnels the shared error mapping for request review actions.
func (h *adminHandler) reviewRequest(c *gin.Context, action func() error) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if err := action(); err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "Request not found or not pending"})
		case errors.Is(err, apperrors.ErrValidation):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		case errors.Is(err, apperrors.ErrInsufficientFunds):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Balance cannot cover this withdrawal"})
		default:
			logger.Error("Failed to review request", slog.String("error", err.Error()))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process request"})
		}
		return
	}
	c.Status(http.StatusNoContent)
}

// listKyc godoc
// @Summary List identity verifications by review state
// @Tags admin
// @Produce  json
// @Param   status query string false "under_review (default), approved, or rejected"
// @Success 200 {object} dto.ListKycResponse
// @Failure 403 {object} map[string]string "Administrator access required"
// @Security BearerAuth
// @Router /admin/kyc [get]
func (h *adminHandler) listKyc(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	status := domain.KycStatus(c.DefaultQuery("status", string(domain.KycUnderReview)))
	var params dto.ListUsersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	verifications, err := h.services.Kyc.ListByStatus(c.Request.Context(), status, params.Limit, params.Offset)
	if err != nil {
		logger.Error("Failed to list kyc verifications", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve verifications"})
		return
	}
	c.JSON(http.StatusOK, dto.ToListKycResponse(verifications))
}

// reviewKyc godoc
// @Summary Record a decision on an identity verification
// @Tags admin
// @Accept  json
// @Produce  json
// @Param   id path string true "Verification ID"
// @Param   decision body dto.ReviewKycRequest true "approved or rejected"
// @Success 204 "Recorded"
// @Failure 404 {object} map[string]string "Verification not found or not under review"
// @Security BearerAuth
// @Router /admin/kyc/{id}/review [post]
func (h *adminHandler) reviewKyc(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	adminID, _ := middleware.GetUserIDFromContext(c)

	var req dto.ReviewKycRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	err := h.services.Kyc.Review(c.Request.Context(), c.Param("id"), adminID, domain.KycStatus(req.Status))
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Verification not found or not under review"})
			return
		}
		logger.Error("Failed to review kyc verification", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to record decision"})
		return
	}
	c.Status(http.StatusNoContent)
}

// runProfitDistribution godoc
// @Summary Trigger a profit distribution run
// @Description Runs one end-to-end pass over eligible accounts and returns the tallies
// @Tags admin
// @Produce  json
// @Success 200 {object} dto.ProfitRunResponse
// @Failure 403 {object} map[string]string "Administrator access required"
// @Failure 500 {object} map[string]string "Run failed before processing any account"
// @Security BearerAuth
// @Router /admin/profit-run [post]
func (h *adminHandler) runProfitDistribution(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	result, err := h.services.Profit.RunProfitDistribution(c.Request.Context())
	if err != nil {
		logger.Error("Profit distribution run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitRunResponse(result))
}

// bindListRequestsParams parses the shared status/limit/offset query for the
// admin request listings, defaulting status to pending.
func bindListRequestsParams(c *gin.Context) (dto.ListRequestsParams, bool) {
	var params dto.ListRequestsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return params, false
	}
	if params.Status == "" {
		params.Status = string(domain.RequestPending)
	}
	return params, true
}
