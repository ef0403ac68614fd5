package services

import (
	"context"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
)

// ReconcilerSvc keeps the local wallet mirror consistent with gateway lifecycle events.
type ReconcilerSvc interface {
	// ApplyEvent applies a verified gateway event at most once.
	// Returns apperrors.ErrRecordNotFound when no local record matches the event, and a
	// retryable error (see apperrors.IsRetryable) when persistence kept failing.
	ApplyEvent(ctx context.Context, event domain.GatewayEvent) error

	// GetBalance reads the local mirror of a wallet.
	GetBalance(ctx context.Context, walletID string) (*domain.LocalBalance, error)
}
