package services

import (
	"context"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
)

// PlatformPaymentSvc handles money that moves through the platform's own Stripe balance.
// None of it touches a user wallet.
type PlatformPaymentSvc interface {
	// CreatePaymentIntent starts a card checkout. The caller confirms it client-side with the returned secret.
	CreatePaymentIntent(ctx context.Context, userID string, req dto.CreatePaymentIntentRequest) (*domain.PaymentIntent, error)

	// CreatePlatformPayout pays out from the platform balance. Only platform admins may call it.
	CreatePlatformPayout(ctx context.Context, userID string, req dto.CreatePlatformPayoutRequest) (*domain.Payout, error)
}
