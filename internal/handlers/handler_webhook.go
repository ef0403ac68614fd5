package handlers

import (
	"errors"
	"io"
	"log/slog"
	"net/http"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// Stripe keeps webhook payloads well under this.
const maxWebhookBodyBytes = 64 << 10

type webhookHandler struct {
	parser     portssvc.EventParser
	reconciler portssvc.ReconcilerSvc
}

// RegisterWebhookRoutes mounts the public Stripe webhook endpoint. Extra handlers
// (rate limiting) run before the webhook itself.
func RegisterWebhookRoutes(r gin.IRouter, parser portssvc.EventParser, reconciler portssvc.ReconcilerSvc, pre ...gin.HandlerFunc) {
	h := &webhookHandler{parser: parser, reconciler: reconciler}
	handlers := append(append([]gin.HandlerFunc{}, pre...), h.handleStripeEvent)
	r.POST("/webhooks/stripe", handlers...)
}

// handleStripeEvent godoc
// @Summary Receive Stripe webhook events
// @Description Verifies the Stripe-Signature header and reconciles transfer and payout lifecycle events with the local wallet. Unsupported event types are acknowledged and ignored.
// @Tags webhooks
// @Accept  json
// @Produce  json
// @Param   Stripe-Signature header string true "Stripe signature header"
// @Success 200 {object} map[string]interface{} "Event received"
// @Failure 400 {object} map[string]string "Invalid signature or payload"
// @Failure 429 {object} map[string]string "Too many requests"
// @Failure 500 {object} map[string]string "Event could not be applied"
// @Failure 503 {object} map[string]string "Temporary failure, Stripe retries"
// @Router /webhooks/stripe [post]
func (h *webhookHandler) handleStripeEvent(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	payload, err := io.ReadAll(http.MaxBytesReader(c.Writer, c.Request.Body, maxWebhookBodyBytes))
	if err != nil {
		logger.Warn("Failed to read webhook body", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read request body"})
		return
	}

	event, err := h.parser.ParseEvent(payload, c.GetHeader("Stripe-Signature"))
	if err != nil {
		if errors.Is(err, apperrors.ErrPartialReversal) {
			logger.Warn("Partial transfer reversal not applied to wallet", slog.String("reason", err.Error()))
			c.JSON(http.StatusOK, gin.H{"received": true, "ignored": true})
			return
		}
		if errors.Is(err, apperrors.ErrUnsupportedEvent) {
			logger.Debug("Ignoring unsupported webhook event", slog.String("reason", err.Error()))
			c.JSON(http.StatusOK, gin.H{"received": true, "ignored": true})
			return
		}
		logger.Warn("Rejected webhook payload", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
		return
	}

	logger = logger.With(slog.String("event_id", event.EventID), slog.String("event_type", event.Type))

	err = h.reconciler.ApplyEvent(c.Request.Context(), *event)
	switch {
	case err == nil:
		c.JSON(http.StatusOK, gin.H{"received": true})
	case errors.Is(err, apperrors.ErrRecordNotFound), errors.Is(err, apperrors.ErrValidation):
		// Redelivery cannot fix these, so acknowledge.
		logger.Warn("Webhook event ignored", slog.String("reason", err.Error()))
		c.JSON(http.StatusOK, gin.H{"received": true, "ignored": true})
	case errors.Is(err, apperrors.ErrInvalidEvent):
		logger.Warn("Rejected webhook event", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid webhook payload"})
	case apperrors.IsRetryable(err):
		logger.Error("Webhook event not applied, will be redelivered", slog.String("error", err.Error()))
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Temporary failure"})
	default:
		logger.Error("Webhook event failed", slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process event"})
	}
}
