package handlers

import (
	"context"
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
	"github.com/SscSPs/stripe_wallet_app/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler serves the caller's deposit and withdraw history.
type transactionHandler struct {
	recordService     portssvc.RecordQuerySvc
	statisticsService portssvc.StatisticsSvc
}

// RegisterTransactionRoutes registers the record listing and statistics routes.
func RegisterTransactionRoutes(rg *gin.RouterGroup, recordService portssvc.RecordQuerySvc, statisticsService portssvc.StatisticsSvc) {
	h := &transactionHandler{recordService: recordService, statisticsService: statisticsService}

	txns := rg.Group("/transactions")
	{
		txns.GET("/deposits", h.listDeposits)
		txns.GET("/withdraws", h.listWithdraws)
		txns.GET("/statistics", h.getStatistics)
	}
}

// listDeposits godoc
// @Summary List deposits
// @Description Lists the caller's deposit records, newest first. With status=SUCCESS the time range applies to the completion time.
// @Tags transactions
// @Produce  json
// @Param   currencyCode query string false "Currency code"
// @Param   method query string false "Deposit method"
// @Param   status query string false "Record status" Enums(PENDING, SUCCESS, FAILED, CANCELLED, REJECTED)
// @Param   transactionId query string false "Substring of the Stripe transfer ID"
// @Param   startTime query string false "Range start (RFC3339)"
// @Param   endTime query string false "Range end (RFC3339)"
// @Param   pageIndex query int false "Page index" default(1)
// @Param   pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /transactions/deposits [get]
func (h *transactionHandler) listDeposits(c *gin.Context) {
	h.list(c, h.recordService.ListDeposits, "deposits")
}

// listWithdraws godoc
// @Summary List withdrawals
// @Description Lists the caller's withdraw records, newest first. With status=SUCCESS the time range applies to the completion time.
// @Tags transactions
// @Produce  json
// @Param   currencyCode query string false "Currency code"
// @Param   method query string false "Payout method"
// @Param   status query string false "Record status" Enums(PENDING, SUCCESS, FAILED, CANCELLED, REJECTED)
// @Param   transactionId query string false "Substring of the Stripe payout ID"
// @Param   startTime query string false "Range start (RFC3339)"
// @Param   endTime query string false "Range end (RFC3339)"
// @Param   pageIndex query int false "Page index" default(1)
// @Param   pageSize query int false "Page size" default(20)
// @Success 200 {object} dto.ListRecordsResponse
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /transactions/withdraws [get]
func (h *transactionHandler) listWithdraws(c *gin.Context) {
	h.list(c, h.recordService.ListWithdraws, "withdraws")
}

type listFunc func(ctx context.Context, userID string, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error)

func (h *transactionHandler) list(c *gin.Context, fn listFunc, what string) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.ListRecordsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for "+what, slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := fn(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to list "+what)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getStatistics godoc
// @Summary Transaction statistics
// @Description Aggregates the caller's successful deposits and withdrawals completed in the range, grouped by day, month or year
// @Tags transactions
// @Produce  json
// @Param   startTime query string true "Range start (RFC3339)"
// @Param   endTime query string true "Range end (RFC3339)"
// @Param   granularity query string false "Bucket size" Enums(DAY, MONTH, YEAR)
// @Param   currencyCode query string false "Currency code"
// @Success 200 {object} domain.TransactionStatistics
// @Failure 400 {object} map[string]string "Invalid query parameters"
// @Security BearerAuth
// @Router /transactions/statistics [get]
func (h *transactionHandler) getStatistics(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
		return
	}

	var params dto.StatisticsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query params for statistics", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid query parameters: " + err.Error()})
		return
	}

	stats, err := h.statisticsService.GetTransactionStatistics(c.Request.Context(), userID, params)
	if err != nil {
		respondError(c, logger, err, "Failed to compute statistics")
		return
	}
	c.JSON(http.StatusOK, stats)
}
