package dto

import (
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
)

// CreateConnectAccountRequest starts Connect onboarding for the caller.
type CreateConnectAccountRequest struct {
	Email        string `json:"email" binding:"required,email"`
	Country      string `json:"country" binding:"omitempty,len=2"`
	BusinessName string `json:"businessName" binding:"omitempty,max=200"`
	AcceptTOS    bool   `json:"acceptTos"`
	ClientIP     string `json:"-"` // Set by the handler
}

// ConnectAccountResponse returns the Connect account together with the local wallet.
type ConnectAccountResponse struct {
	Account    domain.ConnectAccount `json:"account"`
	Wallet     *domain.Wallet        `json:"wallet,omitempty"`
	IsExisting bool                  `json:"isExisting"`
}

// CreateAccountLinkRequest asks for a hosted onboarding link.
type CreateAccountLinkRequest struct {
	RefreshURL string `json:"refreshUrl" binding:"required,url"`
	ReturnURL  string `json:"returnUrl" binding:"required,url"`
}

// CreateTransferRequest deposits platform funds into the caller's Connect account.
type CreateTransferRequest struct {
	Amount      int64  `json:"amount" binding:"required,gt=0"` // Minor units
	Currency    string `json:"currency" binding:"omitempty,len=3"`
	Destination string `json:"destination"` // Must be the caller's Connect account when set
	Description string `json:"description" binding:"omitempty,max=500"`
	Method      string `json:"method"`
	Channel     string `json:"channel"`
	Remark      string `json:"remark" binding:"omitempty,max=500"`
	IPAddress   string `json:"-"`
}

// CreatePayoutRequest withdraws funds from the caller's Connect account to a bank account.
type CreatePayoutRequest struct {
	Amount        int64  `json:"amount" binding:"required,gt=0"`
	Currency      string `json:"currency" binding:"omitempty,len=3"`
	BankAccountID string `json:"bankAccountId"`
	Method        string `json:"method" binding:"omitempty,oneof=standard instant"`
	Description   string `json:"description" binding:"omitempty,max=500"`
	Remark        string `json:"remark" binding:"omitempty,max=500"`
	IPAddress     string `json:"-"`
}

// AddBankAccountRequest attaches a tokenized bank account to the caller's Connect account.
type AddBankAccountRequest struct {
	Token string `json:"token" binding:"required"`
}

// ConnectBalanceResponse pairs the gateway balance with the local mirror.
type ConnectBalanceResponse struct {
	Gateway domain.GatewayBalance `json:"gateway"`
	Wallet  domain.LocalBalance   `json:"wallet"`
}
