package repositories

import (
	"context"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordReader defines read operations on transaction records
type RecordReader interface {
	// ListRecords returns one page of records matching q, newest first, and the total match count.
	ListRecords(ctx context.Context, q domain.RecordQuery) ([]domain.TransactionRecord, int64, error)

	// ListCompletedRecords returns the SUCCESS records completed within the query range.
	ListCompletedRecords(ctx context.Context, q domain.StatisticsQuery) ([]domain.TransactionRecord, error)

	// SumPendingByWallet returns the net signed amount of PENDING records that were applied to the wallet.
	SumPendingByWallet(ctx context.Context, walletID string) (decimal.Decimal, error)
}

// RecordRepositoryFacade combines all record-related repository interfaces
type RecordRepositoryFacade interface {
	RecordReader
}
