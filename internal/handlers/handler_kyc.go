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

type kycHandler struct {
	kycService portssvc.KycSvcFacade
}

func newKycHandler(ks portssvc.KycSvcFacade) *kycHandler {
	return &kycHandler{kycService: ks}
}

func registerKycRoutes(rg *gin.RouterGroup, kycService portssvc.KycSvcFacade) {
	h := newKycHandler(kycService)

	kyc := rg.Group("/kyc")
	{
		kyc.POST("", h.submit)
		kyc.GET("", h.getOwn)
	}
}

// submit godoc
// @Summary Submit identity verification
// @Description Creates or replaces the caller's verification and resets it to under_review
// @Tags kyc
// @Accept  json
// @Produce  json
// @Param   submission body dto.SubmitKycRequest true "Identity details"
// @Success 201 {object} dto.KycResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Security BearerAuth
// @Router /kyc [post]
func (h *kycHandler) submit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.SubmitKycRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	verification, err := h.kycService.Submit(c.Request.Context(), userID, req)
	if err != nil {
		logger.Error("Failed to submit kyc verification", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit verification"})
		return
	}

	c.JSON(http.StatusCreated, dto.ToKycResponse(verification))
}

// getOwn godoc
// @Summary Get the authenticated investor's verification status
// @Tags kyc
// @Produce  json
// @Success 200 {object} dto.KycResponse
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 404 {object} map[string]string "No verification on file"
// @Security BearerAuth
// @Router /kyc [get]
func (h *kycHandler) getOwn(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	verification, err := h.kycService.GetForUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No verification on file"})
			return
		}
		logger.Error("Failed to retrieve kyc verification", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to retrieve verification"})
		return
	}

	c.JSON(http.StatusOK, dto.ToKycResponse(verification))
}
