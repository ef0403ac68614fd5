package services

import (
	"context"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
)

// RecordQuerySvc lists the caller's transaction records.
type RecordQuerySvc interface {
	ListDeposits(ctx context.Context, userID string, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error)
	ListWithdraws(ctx context.Context, userID string, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error)
}

// StatisticsSvc aggregates successful records.
type StatisticsSvc interface {
	GetTransactionStatistics(ctx context.Context, userID string, params dto.StatisticsParams) (*domain.TransactionStatistics, error)
}
