package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

type walletHandler struct {
	reconciler portssvc.ReconcilerSvc
}

// RegisterWalletRoutes registers routes that read the local wallet mirror.
func RegisterWalletRoutes(rg *gin.RouterGroup, reconciler portssvc.ReconcilerSvc) {
	h := &walletHandler{reconciler: reconciler}
	rg.GET("/wallets/:walletID/balance", h.getBalance)
}

// getBalance godoc
// @Summary Get wallet balance
// @Description Returns the locally mirrored balance and the net amount still pending
// @Tags wallets
// @Produce  json
// @Param   walletID path string true "Wallet ID"
// @Success 200 {object} domain.LocalBalance
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 403 {object} map[string]string "Wallet belongs to another user"
// @Failure 404 {object} map[string]string "Wallet not found"
// @Security BearerAuth
// @Router /wallets/{walletID}/balance [get]
func (h *walletHandler) getBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	walletID := c.Param("walletID")
	logger = logger.With(slog.String("wallet_id", walletID))

	balance, err := h.reconciler.GetBalance(c.Request.Context(), walletID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Wallet not found"})
			return
		}
		respondError(c, logger, err, "Failed to get wallet balance")
		return
	}

	if balance.UserID != userID {
		logger.Warn("User forbidden to read wallet", slog.String("owner_id", balance.UserID))
		c.JSON(http.StatusForbidden, gin.H{"error": "Forbidden"})
		return
	}

	c.JSON(http.StatusOK, balance)
}
