// Package stripegw adapts stripe-go to the PaymentGateway and EventParser ports.
package stripegw

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/client"
)

// Client implements portssvc.PaymentGateway on top of the Stripe API.
type Client struct {
	api *client.API
}

var _ portssvc.PaymentGateway = (*Client)(nil)

// Option configures the Stripe client.
type Option func(*stripe.BackendConfig)

// WithBaseURL points all backends at url. Used with stripe-mock or test servers.
func WithBaseURL(url string) Option {
	return func(c *stripe.BackendConfig) {
		c.URL = stripe.String(url)
	}
}

// WithHTTPClient replaces the HTTP client used for API calls.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *stripe.BackendConfig) {
		c.HTTPClient = hc
	}
}

// NewClient creates a Stripe client for secretKey. Keys are never read from globals.
func NewClient(secretKey string, opts ...Option) *Client {
	cfg := &stripe.BackendConfig{
		MaxNetworkRetries: stripe.Int64(2),
		LeveledLogger:     &stripe.LeveledLogger{Level: stripe.LevelError},
	}
	for _, opt := range opts {
		opt(cfg)
	}

	backends := &stripe.Backends{
		API:     stripe.GetBackendWithConfig(stripe.APIBackend, cfg),
		Connect: stripe.GetBackendWithConfig(stripe.ConnectBackend, cfg),
		Uploads: stripe.GetBackendWithConfig(stripe.UploadsBackend, cfg),
	}
	return &Client{api: client.New(secretKey, backends)}
}

// gatewayError wraps provider failures in apperrors.ErrGateway, keeping the HTTP status
// Stripe returned when it is a client error so handlers can surface it.
func gatewayError(op string, err error) error {
	code := http.StatusBadGateway
	msg := op + " failed"

	var stripeErr *stripe.Error
	if errors.As(err, &stripeErr) {
		if stripeErr.HTTPStatusCode >= 400 && stripeErr.HTTPStatusCode < 500 && stripeErr.HTTPStatusCode != http.StatusTooManyRequests {
			code = stripeErr.HTTPStatusCode
		}
		if stripeErr.Msg != "" {
			msg = fmt.Sprintf("%s failed: %s", op, stripeErr.Msg)
		}
	}
	if errors.Is(err, context.DeadlineExceeded) {
		code = http.StatusGatewayTimeout
	}
	return apperrors.NewAppError(code, msg, fmt.Errorf("%w: %w", apperrors.ErrGateway, err))
}

func (c *Client) CreateConnectAccount(ctx context.Context, p domain.ConnectAccountParams) (*domain.ConnectAccount, error) {
	params := &stripe.AccountParams{
		Type:         stripe.String(string(stripe.AccountTypeCustom)),
		Country:      stripe.String(p.Country),
		Email:        stripe.String(p.Email),
		BusinessType: stripe.String(string(stripe.AccountBusinessTypeIndividual)),
		Capabilities: &stripe.AccountCapabilitiesParams{
			CardPayments: &stripe.AccountCapabilitiesCardPaymentsParams{Requested: stripe.Bool(true)},
			Transfers:    &stripe.AccountCapabilitiesTransfersParams{Requested: stripe.Bool(true)},
		},
	}
	if p.BusinessName != "" {
		params.BusinessProfile = &stripe.AccountBusinessProfileParams{Name: stripe.String(p.BusinessName)}
	}
	if p.TOS != nil {
		params.TOSAcceptance = &stripe.AccountTOSAcceptanceParams{
			Date: stripe.Int64(p.TOS.Date.Unix()),
			IP:   stripe.String(p.TOS.IP),
		}
	}
	params.Context = ctx
	params.AddMetadata("user_id", p.UserID)
	params.AddMetadata("business_id", p.UserID)

	acct, err := c.api.Accounts.New(params)
	if err != nil {
		return nil, gatewayError("create connect account", err)
	}
	return toConnectAccount(acct), nil
}

func (c *Client) GetConnectAccount(ctx context.Context, accountID string) (*domain.ConnectAccount, error) {
	params := &stripe.AccountParams{}
	params.Context = ctx

	acct, err := c.api.Accounts.GetByID(accountID, params)
	if err != nil {
		return nil, gatewayError("get connect account", err)
	}
	return toConnectAccount(acct), nil
}

func (c *Client) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*domain.AccountLink, error) {
	params := &stripe.AccountLinkParams{
		Account:    stripe.String(accountID),
		RefreshURL: stripe.String(refreshURL),
		ReturnURL:  stripe.String(returnURL),
		Type:       stripe.String("account_onboarding"),
		Collect:    stripe.String("eventually_due"),
	}
	params.Context = ctx

	link, err := c.api.AccountLinks.New(params)
	if err != nil {
		return nil, gatewayError("create account link", err)
	}
	return &domain.AccountLink{URL: link.URL, ExpiresAt: time.Unix(link.ExpiresAt, 0).UTC()}, nil
}

func (c *Client) CreateTransfer(ctx context.Context, p domain.TransferParams) (*domain.Transfer, error) {
	params := &stripe.TransferParams{
		Amount:      stripe.Int64(p.Amount),
		Currency:    stripe.String(p.Currency),
		Destination: stripe.String(p.Destination),
	}
	if p.Description != "" {
		params.Description = stripe.String(p.Description)
	}
	params.Context = ctx
	if p.IdempotencyKey != "" {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	tr, err := c.api.Transfers.New(params)
	if err != nil {
		return nil, gatewayError("create transfer", err)
	}

	out := &domain.Transfer{
		ID:       tr.ID,
		Amount:   tr.Amount,
		Currency: string(tr.Currency),
		Reversed: tr.Reversed,
	}
	if tr.Destination != nil {
		out.Destination = tr.Destination.ID
	}
	return out, nil
}

func (c *Client) CreatePayout(ctx context.Context, p domain.PayoutParams) (*domain.Payout, error) {
	params := &stripe.PayoutParams{
		Amount:   stripe.Int64(p.Amount),
		Currency: stripe.String(p.Currency),
	}
	if p.Destination != "" {
		params.Destination = stripe.String(p.Destination)
	}
	if p.Method != "" {
		params.Method = stripe.String(p.Method)
	}
	if p.Description != "" {
		params.Description = stripe.String(p.Description)
	}
	if p.SourceType != "" {
		params.SourceType = stripe.String(p.SourceType)
	}
	if p.StatementDescriptor != "" {
		params.StatementDescriptor = stripe.String(p.StatementDescriptor)
	}
	params.Context = ctx
	if p.ConnectAccountID != "" {
		params.SetStripeAccount(p.ConnectAccountID)
	}
	if p.IdempotencyKey != "" {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	po, err := c.api.Payouts.New(params)
	if err != nil {
		return nil, gatewayError("create payout", err)
	}
	return toPayout(po), nil
}

func (c *Client) GetPayout(ctx context.Context, connectAccountID, payoutID string) (*domain.Payout, error) {
	params := &stripe.PayoutParams{}
	params.Context = ctx
	params.SetStripeAccount(connectAccountID)

	po, err := c.api.Payouts.Get(payoutID, params)
	if err != nil {
		return nil, gatewayError("get payout", err)
	}
	return toPayout(po), nil
}

func (c *Client) CancelPayout(ctx context.Context, connectAccountID, payoutID string) (*domain.Payout, error) {
	params := &stripe.PayoutParams{}
	params.Context = ctx
	params.SetStripeAccount(connectAccountID)

	po, err := c.api.Payouts.Cancel(payoutID, params)
	if err != nil {
		return nil, gatewayError("cancel payout", err)
	}
	return toPayout(po), nil
}

func (c *Client) GetBalance(ctx context.Context, connectAccountID string) (*domain.GatewayBalance, error) {
	params := &stripe.BalanceParams{}
	params.Context = ctx
	params.SetStripeAccount(connectAccountID)

	bal, err := c.api.Balance.Get(params)
	if err != nil {
		return nil, gatewayError("get balance", err)
	}
	return &domain.GatewayBalance{
		Available: toMoneyAmounts(bal.Available),
		Pending:   toMoneyAmounts(bal.Pending),
	}, nil
}

func (c *Client) AddBankAccount(ctx context.Context, connectAccountID, token string) (*domain.BankAccount, error) {
	params := &stripe.BankAccountParams{
		Account: stripe.String(connectAccountID),
		Token:   stripe.String(token),
	}
	params.Context = ctx

	ba, err := c.api.BankAccounts.New(params)
	if err != nil {
		return nil, gatewayError("add bank account", err)
	}
	return &domain.BankAccount{
		ID:                ba.ID,
		BankName:          ba.BankName,
		Last4:             ba.Last4,
		Country:           ba.Country,
		Currency:          string(ba.Currency),
		Status:            string(ba.Status),
		AccountHolderName: ba.AccountHolderName,
	}, nil
}

func (c *Client) CreatePaymentIntent(ctx context.Context, p domain.PaymentIntentParams) (*domain.PaymentIntent, error) {
	params := &stripe.PaymentIntentParams{
		Amount:             stripe.Int64(p.Amount),
		Currency:           stripe.String(p.Currency),
		PaymentMethodTypes: stripe.StringSlice([]string{"card"}),
		CaptureMethod:      stripe.String(string(stripe.PaymentIntentCaptureMethodAutomatic)),
		Confirm:            stripe.Bool(p.Confirm),
	}
	if p.Description != "" {
		params.Description = stripe.String(p.Description)
	}
	if p.CustomerID != "" {
		params.Customer = stripe.String(p.CustomerID)
	}
	params.Context = ctx
	if p.IdempotencyKey != "" {
		params.SetIdempotencyKey(p.IdempotencyKey)
	}
	for k, v := range p.Metadata {
		params.AddMetadata(k, v)
	}

	pi, err := c.api.PaymentIntents.New(params)
	if err != nil {
		return nil, gatewayError("create payment intent", err)
	}
	return &domain.PaymentIntent{
		ID:           pi.ID,
		ClientSecret: pi.ClientSecret,
		Amount:       pi.Amount,
		Currency:     string(pi.Currency),
		Status:       string(pi.Status),
	}, nil
}

func toConnectAccount(a *stripe.Account) *domain.ConnectAccount {
	return &domain.ConnectAccount{
		ID:               a.ID,
		Email:            a.Email,
		Country:          a.Country,
		DetailsSubmitted: a.DetailsSubmitted,
		ChargesEnabled:   a.ChargesEnabled,
		PayoutsEnabled:   a.PayoutsEnabled,
	}
}

func toPayout(po *stripe.Payout) *domain.Payout {
	out := &domain.Payout{
		ID:             po.ID,
		Amount:         po.Amount,
		Currency:       string(po.Currency),
		Status:         string(po.Status),
		Method:         string(po.Method),
		FailureCode:    string(po.FailureCode),
		FailureMessage: po.FailureMessage,
	}
	if po.Destination != nil {
		out.Destination = po.Destination.ID
	}
	if po.ArrivalDate > 0 {
		t := time.Unix(po.ArrivalDate, 0).UTC()
		out.ArrivalDate = &t
	}
	return out
}

func toMoneyAmounts(in []*stripe.Amount) []domain.MoneyAmount {
	out := make([]domain.MoneyAmount, 0, len(in))
	for _, a := range in {
		if a == nil {
			continue
		}
		out = append(out, domain.MoneyAmount{Amount: a.Amount, Currency: string(a.Currency)})
	}
	return out
}
