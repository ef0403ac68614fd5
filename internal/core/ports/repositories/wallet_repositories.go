package repositories

import (
	"context"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
)

// WalletReader defines read operations for wallet data
type WalletReader interface {
	// FindWalletByID retrieves a wallet by id. Returns apperrors.ErrNotFound when absent.
	FindWalletByID(ctx context.Context, walletID string) (*domain.Wallet, error)

	// FindWalletByUserID retrieves the wallet owned by a user. Returns apperrors.ErrNotFound when absent.
	FindWalletByUserID(ctx context.Context, userID string) (*domain.Wallet, error)
}

// WalletWriter defines write operations for wallet data.
// Balance never changes through this interface, only through LedgerTxStore.
type WalletWriter interface {
	// UpsertWallet creates the user's wallet or refreshes its Connect account id and
	// currency, keeping the existing balance.
	UpsertWallet(ctx context.Context, wallet domain.Wallet) (*domain.Wallet, error)
}

// WalletRepositoryFacade combines all wallet-related repository interfaces
type WalletRepositoryFacade interface {
	WalletReader
	WalletWriter
}
