package repositories

import (
	"context"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
)

// AccountReader defines read operations for platform accounts
type AccountReader interface {
	// FindAccountByID retrieves an account by its id. Returns apperrors.ErrNotFound when absent.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)
}

// AccountWriter defines write operations for platform accounts
type AccountWriter interface {
	// SaveAccount inserts a new account.
	SaveAccount(ctx context.Context, account domain.Account) error

	// UpdateConnectAccountID links the account to a Stripe Connect account.
	UpdateConnectAccountID(ctx context.Context, accountID, connectAccountID, userID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountWriter
}
