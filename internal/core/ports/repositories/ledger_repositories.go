package repositories

import (
	"context"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
)

// LedgerTxStore is the view of the store inside one database transaction.
// Rows returned by the ForUpdate methods stay locked until the transaction ends.
type LedgerTxStore interface {
	// FindRecordByExternalIDForUpdate locks the record. Returns apperrors.ErrNotFound when absent.
	FindRecordByExternalIDForUpdate(ctx context.Context, externalID string) (*domain.TransactionRecord, error)

	// FindWalletByIDForUpdate locks the wallet. Returns apperrors.ErrNotFound when absent.
	FindWalletByIDForUpdate(ctx context.Context, walletID string) (*domain.Wallet, error)

	// InsertRecord stores a new record together with the wallet whose balance it changed.
	// Returns apperrors.ErrDuplicate when the external id is already recorded.
	InsertRecord(ctx context.Context, record domain.TransactionRecord, wallet domain.Wallet) error

	// SaveAtomic persists a mutated record and, when non-nil, its wallet. Both updates are
	// guarded by the version read under lock; a stale version yields apperrors.ErrConflict.
	SaveAtomic(ctx context.Context, record domain.TransactionRecord, wallet *domain.Wallet) error
}

// LedgerUnitOfWork runs fn inside a database transaction. The transaction commits when
// fn returns nil and rolls back otherwise, so record and wallet changes land together.
type LedgerUnitOfWork interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context, store LedgerTxStore) error) error
}
