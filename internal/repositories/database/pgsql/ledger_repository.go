package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stripe_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/stripe_wallet_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxLedger runs record and wallet mutations in one database transaction.
type PgxLedger struct {
	BaseRepository
}

func newPgxLedger(pool *pgxpool.Pool) *PgxLedger {
	return &PgxLedger{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.LedgerUnitOfWork = (*PgxLedger)(nil)

// RunInTx commits when fn returns nil and rolls back otherwise.
func (l *PgxLedger) RunInTx(ctx context.Context, fn func(ctx context.Context, store portsrepo.LedgerTxStore) error) error {
	tx, err := l.Begin(ctx)
	if err != nil {
		return err
	}
	defer l.Rollback(ctx, tx) // no-op once committed

	if err := fn(ctx, &pgxLedgerTx{tx: tx}); err != nil {
		return err
	}
	return l.Commit(ctx, tx)
}

type pgxLedgerTx struct {
	tx pgx.Tx
}

var _ portsrepo.LedgerTxStore = (*pgxLedgerTx)(nil)

func (s *pgxLedgerTx) FindRecordByExternalIDForUpdate(ctx context.Context, externalID string) (*domain.TransactionRecord, error) {
	query := `SELECT ` + recordColumns + ` FROM transaction_records WHERE external_id = $1 FOR UPDATE;`
	rec, err := scanRecord(s.tx.QueryRow(ctx, query, externalID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to lock record "+externalID)
	}
	return rec, nil
}

func (s *pgxLedgerTx) FindWalletByIDForUpdate(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1 FOR UPDATE;`
	w, err := scanWallet(s.tx.QueryRow(ctx, query, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to lock wallet "+walletID)
	}
	return w, nil
}

// InsertRecord stores the record and writes the wallet's new balance.
func (s *pgxLedgerTx) InsertRecord(ctx context.Context, record domain.TransactionRecord, wallet domain.Wallet) error {
	m := mapping.ToModelRecord(record)

	query := `
		INSERT INTO transaction_records (` + recordColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, 1, $19, $20, $21, $22);
	`
	_, err := s.tx.Exec(ctx, query,
		m.RecordID,
		m.WalletID,
		m.UserID,
		m.ExternalID,
		m.Amount,
		m.CurrencyCode,
		m.Direction,
		m.Status,
		m.AppliedToBalance,
		m.RequestedAt,
		m.CompletedAt,
		m.FailureCode,
		m.FailureMessage,
		m.Method,
		m.Channel,
		m.IPAddress,
		m.BankAccountID,
		m.Remark,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to insert record "+m.ExternalID)
	}
	return s.updateWallet(ctx, wallet)
}

// SaveAtomic writes the record and, when given, the wallet. Both updates check the
// version that was read under lock.
func (s *pgxLedgerTx) SaveAtomic(ctx context.Context, record domain.TransactionRecord, wallet *domain.Wallet) error {
	m := mapping.ToModelRecord(record)

	query := `
		UPDATE transaction_records
		SET status = $3, applied_to_balance = $4, completed_at = $5, failure_code = $6, failure_message = $7,
		    version = version + 1, last_updated_at = $8, last_updated_by = $9
		WHERE external_id = $1 AND version = $2;
	`
	tag, err := s.tx.Exec(ctx, query,
		m.ExternalID,
		m.Version,
		m.Status,
		m.AppliedToBalance,
		m.CompletedAt,
		m.FailureCode,
		m.FailureMessage,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update record "+m.ExternalID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("record %s version %d: %w", m.ExternalID, m.Version, apperrors.ErrConflict)
	}

	if wallet == nil {
		return nil
	}
	return s.updateWallet(ctx, *wallet)
}

func (s *pgxLedgerTx) updateWallet(ctx context.Context, wallet domain.Wallet) error {
	query := `
		UPDATE wallets
		SET balance = $3, version = version + 1, last_updated_at = $4, last_updated_by = $5
		WHERE wallet_id = $1 AND version = $2;
	`
	tag, err := s.tx.Exec(ctx, query,
		wallet.WalletID,
		wallet.Version,
		wallet.Balance,
		wallet.LastUpdatedAt,
		wallet.LastUpdatedBy,
	)
	if err != nil {
		return mapPgError(err, "failed to update wallet "+wallet.WalletID)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("wallet %s version %d: %w", wallet.WalletID, wallet.Version, apperrors.ErrConflict)
	}
	return nil
}
