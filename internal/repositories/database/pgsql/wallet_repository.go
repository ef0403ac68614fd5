package pgsql

import (
	"context"
	"errors"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stripe_wallet_app/internal/core/ports/repositories"
	"github.com/SscSPs/stripe_wallet_app/internal/models"
	"github.com/SscSPs/stripe_wallet_app/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const walletColumns = `wallet_id, user_id, user_name, balance, currency_code, connect_account_id, version,
		created_at, created_by, last_updated_at, last_updated_by`

type PgxWalletRepository struct {
	BaseRepository
}

func newPgxWalletRepository(pool *pgxpool.Pool) *PgxWalletRepository {
	return &PgxWalletRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.WalletRepositoryFacade = (*PgxWalletRepository)(nil)

func scanWallet(row pgx.Row) (*domain.Wallet, error) {
	var m models.Wallet
	if err := row.Scan(
		&m.WalletID,
		&m.UserID,
		&m.UserName,
		&m.Balance,
		&m.CurrencyCode,
		&m.ConnectAccountID,
		&m.Version,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	); err != nil {
		return nil, err
	}
	w := mapping.ToDomainWallet(m)
	return &w, nil
}

func (r *PgxWalletRepository) FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE wallet_id = $1;`
	w, err := scanWallet(r.Pool.QueryRow(ctx, query, walletID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to find wallet "+walletID)
	}
	return w, nil
}

func (r *PgxWalletRepository) FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error) {
	query := `SELECT ` + walletColumns + ` FROM wallets WHERE user_id = $1;`
	w, err := scanWallet(r.Pool.QueryRow(ctx, query, userID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, mapPgError(err, "failed to find wallet for user "+userID)
	}
	return w, nil
}

// UpsertWallet creates the user's wallet, or refreshes the Connect account link of the
// existing one. The balance column is never written here.
func (r *PgxWalletRepository) UpsertWallet(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error) {
	m := mapping.ToModelWallet(wallet)

	query := `
		INSERT INTO wallets (wallet_id, user_id, user_name, balance, currency_code, connect_account_id, version,
		                     created_at, created_by, last_updated_at, last_updated_by)
		VALUES ($1, $2, $3, $4, $5, $6, 0, $7, $8, $9, $10)
		ON CONFLICT (user_id) DO UPDATE
		SET connect_account_id = COALESCE(EXCLUDED.connect_account_id, wallets.connect_account_id),
		    version = wallets.version + 1,
		    last_updated_at = EXCLUDED.last_updated_at,
		    last_updated_by = EXCLUDED.last_updated_by
		RETURNING ` + walletColumns + `;
	`
	w, err := scanWallet(r.Pool.QueryRow(ctx, query,
		m.WalletID,
		m.UserID,
		m.UserName,
		m.Balance,
		m.CurrencyCode,
		m.ConnectAccountID,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	))
	if err != nil {
		return nil, mapPgError(err, "failed to upsert wallet for user "+m.UserID)
	}
	return w, nil
}
