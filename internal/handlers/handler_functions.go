package handlers

import (
	"crypto/subtle"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	portssvc "github.com/primeblocks/investment-backend/internal/core/ports/services"
	"github.com/primeblocks/investment-backend/internal/dto"
	"github.com/primeblocks/investment-backend/internal/middleware"
)

// profitJobHandler exposes the scheduled profit job over HTTP so external
// schedulers can trigger a run.
type profitJobHandler struct {
	profitService portssvc.ProfitSvcFacade
	triggerToken  string
}

func newProfitJobHandler(ps portssvc.ProfitSvcFacade, triggerToken string) *profitJobHandler {
	return &profitJobHandler{profitService: ps, triggerToken: triggerToken}
}

// trigger godoc
// @Summary Run the profit-increment job
// @Description Executes one pass over eligible accounts. Any HTTP method is accepted; when a trigger token is configured it must be supplied as a bearer token.
// @Tags functions
// @Produce  json
// @Success 200 {object} dto.ProfitRunResponse
// @Failure 401 {object} map[string]string "Invalid trigger token"
// @Failure 500 {object} map[string]string "Run failed before processing any account"
// @Router /functions/auto-increment-profits [post]
func (h *profitJobHandler) trigger(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	if h.triggerToken != "" && !h.tokenMatches(c.GetHeader("Authorization")) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid trigger token"})
		return
	}

	result, err := h.profitService.RunProfitDistribution(c.Request.Context())
	if err != nil {
		logger.Error("Profit distribution run failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitRunResponse(result))
}

func (h *profitJobHandler) tokenMatches(authHeader string) bool {
	token := strings.TrimPrefix(authHeader, "Bearer ")
	return subtle.ConstantTimeCompare([]byte(token), []byte(h.triggerToken)) == 1
}

// contactHandler relays support form submissions.
type contactHandler struct {
	contactService portssvc.ContactSvcFacade
}

func newContactHandler(cs portssvc.ContactSvcFacade) *contactHandler {
	return &contactHandler{contactService: cs}
}

// submit godoc
// @Summary Relay a contact form submission
// @Description Stores the inquiry durably, then attempts the relay email on a best-effort basis
// @Tags functions
// @Accept  json
// @Produce  json
// @Param   inquiry body dto.ContactRequest true "Inquiry"
// @Success 200 {object} dto.ContactResponse
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 429 {object} map[string]string "Rate limit exceeded"
// @Router /functions/send-contact-email [post]
func (h *contactHandler) submit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	sent, err := h.contactService.Submit(c.Request.Context(), req)
	if err != nil {
		logger.Error("Failed to store contact message", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to submit message"})
		return
	}

	msg := "Message received; our team will get back to you shortly"
	if sent {
		msg = "Message sent successfully"
	}
	c.JSON(http.StatusOK, dto.ContactResponse{Success: true, Message: msg})
}
