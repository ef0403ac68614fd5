package pgsql

import (
	portsrepo "github.com/SscSPs/stripe_wallet_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		WalletRepo:  newPgxWalletRepository(dbPool),
		RecordRepo:  newPgxRecordRepository(dbPool),
		Ledger:      newPgxLedger(dbPool),
	}
}
