package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
	"github.com/SscSPs/stripe_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// connectHandler handles Stripe Connect onboarding and money movement.
type connectHandler struct {
	connectService portssvc.ConnectSvcFacade
	tracker        middleware.AnalyticsTracker
}

// RegisterConnectRoutes registers routes related to the caller's Connect account.
func RegisterConnectRoutes(rg *gin.RouterGroup, connectService portssvc.ConnectSvcFacade, tracker middleware.AnalyticsTracker) {
	h := &connectHandler{connectService: connectService, tracker: tracker}

	connect := rg.Group("/connect")
	{
		connect.POST("/accounts", h.createConnectAccount)
		connect.POST("/account-links", h.createAccountLink)
		connect.POST("/bank-accounts", h.addBankAccount)
		connect.GET("/balance", h.getConnectBalance)
		connect.POST("/transfers", h.createTransfer)
		connect.POST("/payouts", h.createPayout)
		connect.GET("/payouts/:payoutID", h.getPayout)
		connect.POST("/payouts/:payoutID/cancel", h.cancelPayout)
	}
}

// createConnectAccount godoc
// @Summary Create a Connect account
// @Description Creates a Custom Stripe Connect account for the caller and provisions the wallet. Returns the existing account when one is already linked.
// @Tags connect
// @Accept  json
// @Produce  json
// @Param   account body dto.CreateConnectAccountRequest true "Account details"
// @Success 200 {object} dto.ConnectAccountResponse "Existing account"
// @Success 201 {object} dto.ConnectAccountResponse "Created account"
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 401 {object} map[string]string "Unauthorized"
// @Failure 502 {object} map[string]string "Stripe request failed"
// @Security BearerAuth
// @Router /connect/accounts [post]
func (h *connectHandler) createConnectAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		logger.Error("User ID not found in context")
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateConnectAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateConnectAccount", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	req.ClientIP = c.ClientIP()

	resp, err := h.connectService.CreateConnectAccount(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create Connect account")
		return
	}

	status := http.StatusCreated
	if resp.IsExisting {
		status = http.StatusOK
	} else {
		middleware.TrackEvent(c, h.tracker, "connect_account_created", map[string]any{"connect_account_id": resp.Account.ID})
	}
	logger.Info("Connect account ready", slog.String("connect_account_id", resp.Account.ID), slog.Bool("existing", resp.IsExisting))
	c.JSON(status, resp)
}

// createAccountLink godoc
// @Summary Create an onboarding link
// @Description Returns a Stripe hosted onboarding URL for the caller's Connect account
// @Tags connect
// @Accept  json
// @Produce  json
// @Param   link body dto.CreateAccountLinkRequest true "Redirect URLs"
// @Success 200 {object} domain.AccountLink
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No Connect account"
// @Security BearerAuth
// @Router /connect/account-links [post]
func (h *connectHandler) createAccountLink(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateAccountLinkRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateAccountLink", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	link, err := h.connectService.CreateAccountLink(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create account link")
		return
	}
	c.JSON(http.StatusOK, link)
}

// addBankAccount godoc
// @Summary Attach a bank account
// @Tags connect
// @Accept  json
// @Produce  json
// @Param   bankAccount body dto.AddBankAccountRequest true "Bank account token"
// @Success 201 {object} domain.BankAccount
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 404 {object} map[string]string "No Connect account"
// @Security BearerAuth
// @Router /connect/bank-accounts [post]
func (h *connectHandler) addBankAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.AddBankAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}

	bank, err := h.connectService.AddBankAccount(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to add bank account")
		return
	}
	c.JSON(http.StatusCreated, bank)
}

// getConnectBalance godoc
// @Summary Get Connect and wallet balance
// @Description Returns the Stripe balance of the caller's Connect account next to the local wallet mirror
// @Tags connect
// @Produce  json
// @Success 200 {object} dto.ConnectBalanceResponse
// @Failure 404 {object} map[string]string "No Connect account"
// @Security BearerAuth
// @Router /connect/balance [get]
func (h *connectHandler) getConnectBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	balance, err := h.connectService.GetConnectBalance(c.Request.Context(), userID)
	if err != nil {
		respondError(c, logger, err, "Failed to get balance")
		return
	}
	c.JSON(http.StatusOK, balance)
}

// createTransfer godoc
// @Summary Deposit into the wallet
// @Description Transfers platform funds to the caller's Connect account and records a pending deposit. The wallet is credited immediately and reversed if the transfer fails.
// @Tags connect
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} domain.TransactionRecord
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 403 {object} map[string]string "Destination is not the caller's account"
// @Failure 502 {object} map[string]string "Stripe request failed"
// @Security BearerAuth
// @Router /connect/transfers [post]
func (h *connectHandler) createTransfer(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransfer", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	req.IPAddress = c.ClientIP()

	record, err := h.connectService.CreateTransfer(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create transfer")
		return
	}

	middleware.TrackEvent(c, h.tracker, "deposit_requested", map[string]any{
		"amount":   record.Amount.String(),
		"currency": record.CurrencyCode,
	})
	logger.Info("Transfer created", slog.String("external_id", record.ExternalID))
	c.JSON(http.StatusCreated, record)
}

// createPayout godoc
// @Summary Withdraw from the wallet
// @Description Creates a payout on the caller's Connect account and records a pending withdrawal. The wallet is debited immediately and refunded if the payout fails or is canceled.
// @Tags connect
// @Accept  json
// @Produce  json
// @Param   payout body dto.CreatePayoutRequest true "Payout details"
// @Success 201 {object} domain.TransactionRecord
// @Failure 400 {object} map[string]string "Invalid input"
// @Failure 422 {object} map[string]string "Insufficient wallet balance"
// @Failure 502 {object} map[string]string "Stripe request failed"
// @Security BearerAuth
// @Router /connect/payouts [post]
func (h *connectHandler) createPayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var req dto.CreatePayoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreatePayout", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format: " + err.Error()})
		return
	}
	req.IPAddress = c.ClientIP()

	record, err := h.connectService.CreateConnectedPayout(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, logger, err, "Failed to create payout")
		return
	}

	middleware.TrackEvent(c, h.tracker, "withdraw_requested", map[string]any{
		"amount":   record.Amount.String(),
		"currency": record.CurrencyCode,
	})
	logger.Info("Payout created", slog.String("external_id", record.ExternalID))
	c.JSON(http.StatusCreated, record)
}

// getPayout godoc
// @Summary Get a payout
// @Tags connect
// @Produce  json
// @Param   payoutID path string true "Stripe payout ID"
// @Success 200 {object} domain.Payout
// @Failure 404 {object} map[string]string "Payout not found"
// @Security BearerAuth
// @Router /connect/payouts/{payoutID} [get]
func (h *connectHandler) getPayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payout, err := h.connectService.GetPayout(c.Request.Context(), userID, c.Param("payoutID"))
	if err != nil {
		respondError(c, logger, err, "Failed to get payout")
		return
	}
	c.JSON(http.StatusOK, payout)
}

// cancelPayout godoc
// @Summary Cancel a pending payout
// @Description Asks Stripe to cancel the payout. The wallet refund is applied when the payout.canceled event arrives.
// @Tags connect
// @Produce  json
// @Param   payoutID path string true "Stripe payout ID"
// @Success 200 {object} domain.Payout
// @Failure 404 {object} map[string]string "Payout not found"
// @Security BearerAuth
// @Router /connect/payouts/{payoutID}/cancel [post]
func (h *connectHandler) cancelPayout(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	payoutID := c.Param("payoutID")
	payout, err := h.connectService.CancelPayout(c.Request.Context(), userID, payoutID)
	if err != nil {
		respondError(c, logger, err, "Failed to cancel payout")
		return
	}
	logger.Info("Payout cancel requested", slog.String("payout_id", payoutID))
	c.JSON(http.StatusOK, payout)
}
