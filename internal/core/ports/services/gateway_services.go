package services

import (
	"context"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
)

// PaymentGateway is the outbound port to the payment provider.
// Implementations wrap provider failures in apperrors.ErrGateway.
type PaymentGateway interface {
	CreateConnectAccount(ctx context.Context, params domain.ConnectAccountParams) (*domain.ConnectAccount, error)
	GetConnectAccount(ctx context.Context, accountID string) (*domain.ConnectAccount, error)
	CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*domain.AccountLink, error)
	CreateTransfer(ctx context.Context, params domain.TransferParams) (*domain.Transfer, error)
	CreatePayout(ctx context.Context, params domain.PayoutParams) (*domain.Payout, error)
	GetPayout(ctx context.Context, connectAccountID, payoutID string) (*domain.Payout, error)
	CancelPayout(ctx context.Context, connectAccountID, payoutID string) (*domain.Payout, error)
	GetBalance(ctx context.Context, connectAccountID string) (*domain.GatewayBalance, error)
	AddBankAccount(ctx context.Context, connectAccountID, token string) (*domain.BankAccount, error)
	CreatePaymentIntent(ctx context.Context, params domain.PaymentIntentParams) (*domain.PaymentIntent, error)
}

// EventParser verifies a signed webhook payload and turns it into a typed event.
type EventParser interface {
	// ParseEvent returns apperrors.ErrInvalidEvent for bad signatures or payloads and
	// apperrors.ErrUnsupportedEvent for event types the reconciler does not handle.
	ParseEvent(payload []byte, signatureHeader string) (*domain.GatewayEvent, error)
}
