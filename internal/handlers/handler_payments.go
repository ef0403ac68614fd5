package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
	"github.com/SscSPs/stripe_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// paymentHandler handles checkout and payouts on the platform account.
type paymentHandler struct {
	paymentService portssvc.PlatformPaymentSvc
	tracker        middleware.AnalyticsTracker
}

// RegisterPaymentRoutes registers platform payment routes.
func RegisterPaymentRoutes(rg *gin.RouterGroup, paymentService portssvc.PlatformPaymentSvc, tracker middleware.AnalyticsTracker) {
	h := &paymentHandler{paymentService: paymentService, tracker: tracker}

	payments := rg.Group("/payments")
	{
		payments.POST("/intents", h.createPaymentIntent)
		payments.POST("/payouts", h.createPlatformPayout)
	}
}

// createPaymentIntent godoc
// @Summary Create a payment intent
// @Description Starts a card checkout into the platform balance. The client completes it with Stripe.js using clientSecret.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   intent body dto.CreatePaymentIntentRequest true "Payment details"
// @Success 201 {object} domain.PaymentIntent
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 502 {object} map[string]string "Stripe request failed"
// @Security BearerAuth
// @Router /payments/intents [post]
func (h *paymentHandler) createPaymentIntent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePaymentIntentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePaymentIntent", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	pi, err := h.paymentService.CreatePaymentIntent(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create payment intent")
		return
	}

	middleware.TrackEvent(c, h.tracker, "payment_intent_created", map[string]any{
		"amount":   pi.Amount,
		"currency": pi.Currency,
	})
	c.JSON(http.StatusCreated, pi)
}

// createPlatformPayout godoc
// @Summary Pay out the platform balance
// @Description Creates a payout from the platform's own Stripe balance. Restricted to platform admins. No wallet is changed.
// @Tags payments
// @Accept  json
// @Produce  json
// @Param   payout body dto.CreatePlatformPayoutRequest true "Payout details"
// @Success 201 {object} domain.Payout
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Caller is not a platform admin"
// @Failure 502 {object} map[string]string "Stripe request failed"
// @Security BearerAuth
// @Router /payments/payouts [post]
func (h *paymentHandler) createPlatformPayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePlatformPayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePlatformPayout", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	payout, err := h.paymentService.CreatePlatformPayout(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create platform payout")
		return
	}

	logger.Info("Platform payout created", slog.String("payout_id", payout.ID))
	c.JSON(http.StatusCreated, payout)
}
