package services

import (
	"context"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
)

// ConnectAccountSvc manages the caller's Stripe Connect account.
type ConnectAccountSvc interface {
	// CreateConnectAccount creates a Custom account for the user, or returns the existing one.
	CreateConnectAccount(ctx context.Context, userID string, req dto.CreateConnectAccountRequest) (*dto.ConnectAccountResponse, error)

	// CreateAccountLink returns a hosted onboarding link.
	CreateAccountLink(ctx context.Context, userID string, req dto.CreateAccountLinkRequest) (*domain.AccountLink, error)

	// AddBankAccount attaches a tokenized bank account as an external account.
	AddBankAccount(ctx context.Context, userID string, req dto.AddBankAccountRequest) (*domain.BankAccount, error)

	// GetConnectBalance returns the gateway balance next to the local wallet.
	GetConnectBalance(ctx context.Context, userID string) (*dto.ConnectBalanceResponse, error)
}

// ConnectMoneySvc moves money and records the optimistic wallet change.
type ConnectMoneySvc interface {
	// CreateTransfer deposits into the user's wallet.
	CreateTransfer(ctx context.Context, userID string, req dto.CreateTransferRequest) (*domain.TransactionRecord, error)

	// CreateConnectedPayout withdraws from the user's wallet.
	// Returns apperrors.ErrInsufficientFunds when the wallet does not cover the amount.
	CreateConnectedPayout(ctx context.Context, userID string, req dto.CreatePayoutRequest) (*domain.TransactionRecord, error)

	// GetPayout reads a payout of the user's Connect account.
	GetPayout(ctx context.Context, userID, payoutID string) (*domain.Payout, error)

	// CancelPayout asks the gateway to cancel a pending payout. The refund to the wallet
	// arrives with the payout.canceled event.
	CancelPayout(ctx context.Context, userID, payoutID string) (*domain.Payout, error)
}

// ConnectSvcFacade combines all Connect-related service interfaces
type ConnectSvcFacade interface {
	ConnectAccountSvc
	ConnectMoneySvc
}
