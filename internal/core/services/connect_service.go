package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stripe_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
	"github.com/SscSPs/stripe_wallet_app/internal/utils"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// connectService drives Stripe Connect operations and records their optimistic wallet effect.
type connectService struct {
	BaseService
	gateway         portssvc.PaymentGateway
	accountRepo     portsrepo.AccountRepositoryFacade
	walletRepo      portsrepo.WalletRepositoryFacade
	ledger          portsrepo.LedgerUnitOfWork
	balances        portssvc.ReconcilerSvc
	gatewayTimeout  time.Duration
	defaultCurrency string
	defaultCountry  string
	walletLocks     *keyedMutex
	now             func() time.Time
}

// ConnectOption is a functional option for configuring the Connect service
type ConnectOption func(*connectService)

// WithConnectTimeouts sets the store and gateway call timeouts.
func WithConnectTimeouts(store, gateway time.Duration) ConnectOption {
	return func(s *connectService) {
		s.Timeout = store
		s.gatewayTimeout = gateway
	}
}

// WithConnectDefaults sets the wallet currency and account country used when the request has none.
func WithConnectDefaults(currency, country string) ConnectOption {
	return func(s *connectService) {
		if currency != "" {
			s.defaultCurrency = strings.ToLower(currency)
		}
		if country != "" {
			s.defaultCountry = strings.ToUpper(country)
		}
	}
}

// WithBalanceReader supplies the local balance for GetConnectBalance.
func WithBalanceReader(r portssvc.ReconcilerSvc) ConnectOption {
	return func(s *connectService) {
		s.balances = r
	}
}

// NewConnectService creates the Connect service.
func NewConnectService(
	gateway portssvc.PaymentGateway,
	accountRepo portsrepo.AccountRepositoryFacade,
	walletRepo portsrepo.WalletRepositoryFacade,
	ledger portsrepo.LedgerUnitOfWork,
	opts ...ConnectOption,
) portssvc.ConnectSvcFacade {
	svc := &connectService{
		BaseService:     BaseService{Timeout: 5 * time.Second},
		gateway:         gateway,
		accountRepo:     accountRepo,
		walletRepo:      walletRepo,
		ledger:          ledger,
		gatewayTimeout:  15 * time.Second,
		defaultCurrency: "usd",
		defaultCountry:  "US",
		walletLocks:     newKeyedMutex(),
		now:             time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.ConnectSvcFacade = (*connectService)(nil)

func (s *connectService) gatewayCtx(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.gatewayTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.gatewayTimeout)
}

// connectAccountOf loads the caller's account and requires a linked Connect account.
func (s *connectService) connectAccountOf(ctx context.Context, userID string) (*domain.Account, error) {
	sctx, cancel := s.WithTimeout(ctx)
	defer cancel()

	account, err := s.accountRepo.FindAccountByID(sctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load account %s: %w", userID, err)
	}
	if !account.HasConnectAccount() {
		return nil, fmt.Errorf("%w: account %s has no Connect account", apperrors.ErrValidation, userID)
	}
	return account, nil
}

func (s *connectService) walletOf(ctx context.Context, userID string) (*domain.Wallet, error) {
	sctx, cancel := s.WithTimeout(ctx)
	defer cancel()

	wallet, err := s.walletRepo.FindWalletByUserID(sctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load wallet of %s: %w", userID, err)
	}
	return wallet, nil
}

func (s *connectService) CreateConnectAccount(ctx context.Context, userID string, req dto.CreateConnectAccountRequest) (*dto.ConnectAccountResponse, error) {
	sctx, cancel := s.WithTimeout(ctx)
	account, err := s.accountRepo.FindAccountByID(sctx, userID)
	cancel()

	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		account, err = s.provisionAccount(ctx, userID, req)
		if err != nil {
			return nil, err
		}
	case err != nil:
		return nil, fmt.Errorf("failed to load account %s: %w", userID, err)
	}

	if account.HasConnectAccount() {
		gctx, gcancel := s.gatewayCtx(ctx)
		existing, err := s.gateway.GetConnectAccount(gctx, account.StripeConnectAccountID)
		gcancel()
		if err != nil {
			return nil, err
		}
		wallet, err := s.ensureWallet(ctx, *account)
		if err != nil {
			return nil, err
		}
		return &dto.ConnectAccountResponse{Account: *existing, Wallet: wallet, IsExisting: true}, nil
	}

	params := domain.ConnectAccountParams{
		UserID:       userID,
		Email:        req.Email,
		Country:      strings.ToUpper(req.Country),
		BusinessName: req.BusinessName,
	}
	if params.Country == "" {
		params.Country = s.defaultCountry
	}
	if req.AcceptTOS {
		params.TOS = &domain.TOSAcceptance{IP: req.ClientIP, Date: s.now()}
	}

	gctx, gcancel := s.gatewayCtx(ctx)
	created, err := s.gateway.CreateConnectAccount(gctx, params)
	gcancel()
	if err != nil {
		s.LogError(ctx, err, "Failed to create Connect account", slog.String("user_id", userID))
		return nil, err
	}

	sctx, cancel = s.WithTimeout(ctx)
	err = s.accountRepo.UpdateConnectAccountID(sctx, userID, created.ID, userID)
	cancel()
	if err != nil {
		s.LogError(ctx, err, "Connect account created but not linked", slog.String("connect_account_id", created.ID))
		return nil, fmt.Errorf("failed to link Connect account %s: %w", created.ID, err)
	}
	account.StripeConnectAccountID = created.ID

	wallet, err := s.ensureWallet(ctx, *account)
	if err != nil {
		return nil, err
	}

	s.LogInfo(ctx, "Connect account created",
		slog.String("connect_account_id", created.ID),
		slog.String("wallet_id", wallet.WalletID))
	return &dto.ConnectAccountResponse{Account: *created, Wallet: wallet}, nil
}

func (s *connectService) provisionAccount(ctx context.Context, userID string, req dto.CreateConnectAccountRequest) (*domain.Account, error) {
	now := s.now()
	name := req.BusinessName
	if name == "" {
		name = req.Email
	}
	account := domain.Account{
		AccountID:   userID,
		AccountName: name,
		Email:       req.Email,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	sctx, cancel := s.WithTimeout(ctx)
	defer cancel()
	if err := s.accountRepo.SaveAccount(sctx, account); err != nil {
		return nil, fmt.Errorf("failed to create account %s: %w", userID, err)
	}
	return &account, nil
}

// ensureWallet creates the wallet on first onboarding, or re-links it, keeping the balance.
func (s *connectService) ensureWallet(ctx context.Context, account domain.Account) (*domain.Wallet, error) {
	now := s.now()
	wallet := domain.Wallet{
		WalletID:         uuid.NewString(),
		UserID:           account.AccountID,
		UserName:         account.AccountName,
		Balance:          decimal.Zero,
		CurrencyCode:     s.defaultCurrency,
		ConnectAccountID: account.StripeConnectAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     account.AccountID,
			LastUpdatedAt: now,
			LastUpdatedBy: account.AccountID,
		},
	}

	sctx, cancel := s.WithTimeout(ctx)
	defer cancel()
	saved, err := s.walletRepo.UpsertWallet(sctx, wallet)
	if err != nil {
		return nil, fmt.Errorf("failed to save wallet of %s: %w", account.AccountID, err)
	}
	return saved, nil
}

func (s *connectService) CreateAccountLink(ctx context.Context, userID string, req dto.CreateAccountLinkRequest) (*domain.AccountLink, error) {
	account, err := s.connectAccountOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	return s.gateway.CreateAccountLink(gctx, account.StripeConnectAccountID, req.RefreshURL, req.ReturnURL)
}

func (s *connectService) AddBankAccount(ctx context.Context, userID string, req dto.AddBankAccountRequest) (*domain.BankAccount, error) {
	account, err := s.connectAccountOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	bank, err := s.gateway.AddBankAccount(gctx, account.StripeConnectAccountID, req.Token)
	if err != nil {
		s.LogError(ctx, err, "Failed to add bank account", slog.String("connect_account_id", account.StripeConnectAccountID))
		return nil, err
	}
	return bank, nil
}

func (s *connectService) GetConnectBalance(ctx context.Context, userID string) (*dto.ConnectBalanceResponse, error) {
	account, err := s.connectAccountOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	wallet, err := s.walletOf(ctx, userID)
	if err != nil {
		return nil, err
	}

	gctx, cancel := s.gatewayCtx(ctx)
	gb, err := s.gateway.GetBalance(gctx, account.StripeConnectAccountID)
	cancel()
	if err != nil {
		return nil, err
	}

	resp := &dto.ConnectBalanceResponse{
		Gateway: *gb,
		Wallet: domain.LocalBalance{
			WalletID:     wallet.WalletID,
			UserID:       wallet.UserID,
			CurrencyCode: wallet.CurrencyCode,
			Available:    wallet.Balance,
			Pending:      decimal.Zero,
		},
	}
	if s.balances != nil {
		local, err := s.balances.GetBalance(ctx, wallet.WalletID)
		if err != nil {
			return nil, err
		}
		resp.Wallet = *local
	}
	return resp, nil
}

func (s *connectService) CreateTransfer(ctx context.Context, userID string, req dto.CreateTransferRequest) (*domain.TransactionRecord, error) {
	account, err := s.connectAccountOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	if req.Destination != "" && req.Destination != account.StripeConnectAccountID {
		return nil, fmt.Errorf("%w: destination %s is not the caller's Connect account", apperrors.ErrForbidden, req.Destination)
	}
	wallet, err := s.walletOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	currency, err := walletCurrency(*wallet, req.Currency)
	if err != nil {
		return nil, err
	}

	unlock, err := s.walletLocks.Lock(ctx, wallet.WalletID)
	if err != nil {
		return nil, fmt.Errorf("waiting for wallet lock: %w", err)
	}
	defer unlock()

	key, err := utils.NewIdempotencyKey("transfer")
	if err != nil {
		return nil, fmt.Errorf("failed to create idempotency key: %w", err)
	}

	gctx, cancel := s.gatewayCtx(ctx)
	transfer, err := s.gateway.CreateTransfer(gctx, domain.TransferParams{
		Amount:         req.Amount,
		Currency:       currency,
		Destination:    account.StripeConnectAccountID,
		Description:    req.Description,
		IdempotencyKey: key,
		Metadata:       map[string]string{"user_id": userID, "wallet_id": wallet.WalletID},
	})
	cancel()
	if err != nil {
		s.LogError(ctx, err, "Failed to create transfer", slog.String("wallet_id", wallet.WalletID))
		return nil, err
	}

	record := s.newRecord(*wallet, domain.Deposit, transfer.ID, transfer.Amount, currency)
	record.Method = req.Method
	record.Channel = req.Channel
	record.IPAddress = req.IPAddress
	record.Remark = req.Remark

	if err := s.recordOptimistic(ctx, &record); err != nil {
		s.LogError(ctx, err, "Transfer created but not recorded", slog.String("transfer_id", transfer.ID))
		return nil, err
	}
	walletMutations.WithLabelValues(string(domain.Deposit)).Inc()

	s.LogInfo(ctx, "Deposit recorded",
		slog.String("transfer_id", transfer.ID),
		slog.String("wallet_id", wallet.WalletID),
		slog.Int64("amount", transfer.Amount))
	return &record, nil
}

func (s *connectService) CreateConnectedPayout(ctx context.Context, userID string, req dto.CreatePayoutRequest) (*domain.TransactionRecord, error) {
	account, err := s.connectAccountOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	wallet, err := s.walletOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	currency, err := walletCurrency(*wallet, req.Currency)
	if err != nil {
		return nil, err
	}

	// One payout per wallet at a time so the balance check below stays meaningful.
	unlock, err := s.walletLocks.Lock(ctx, wallet.WalletID)
	if err != nil {
		return nil, fmt.Errorf("waiting for wallet lock: %w", err)
	}
	defer unlock()

	wallet, err = s.walletOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	amount := decimal.NewFromInt(req.Amount)
	if !wallet.Covers(amount) {
		return nil, fmt.Errorf("%w: balance %s, requested %s", apperrors.ErrInsufficientFunds, wallet.Balance, amount)
	}

	key, err := utils.NewIdempotencyKey("payout")
	if err != nil {
		return nil, fmt.Errorf("failed to create idempotency key: %w", err)
	}

	gctx, cancel := s.gatewayCtx(ctx)
	payout, err := s.gateway.CreatePayout(gctx, domain.PayoutParams{
		ConnectAccountID: account.StripeConnectAccountID,
		Amount:           req.Amount,
		Currency:         currency,
		Destination:      req.BankAccountID,
		Method:           req.Method,
		Description:      req.Description,
		IdempotencyKey:   key,
		Metadata:         map[string]string{"user_id": userID, "wallet_id": wallet.WalletID},
	})
	cancel()
	if err != nil {
		s.LogError(ctx, err, "Failed to create payout", slog.String("wallet_id", wallet.WalletID))
		return nil, err
	}

	record := s.newRecord(*wallet, domain.Withdraw, payout.ID, payout.Amount, currency)
	record.Method = payout.Method
	record.BankAccountID = req.BankAccountID
	if record.BankAccountID == "" {
		record.BankAccountID = payout.Destination
	}
	record.IPAddress = req.IPAddress
	record.Remark = req.Remark

	if err := s.recordOptimistic(ctx, &record); err != nil {
		s.LogError(ctx, err, "Payout created but not recorded", slog.String("payout_id", payout.ID))
		return nil, err
	}
	walletMutations.WithLabelValues(string(domain.Withdraw)).Inc()

	s.LogInfo(ctx, "Withdrawal recorded",
		slog.String("payout_id", payout.ID),
		slog.String("wallet_id", wallet.WalletID),
		slog.Int64("amount", payout.Amount))
	return &record, nil
}

func (s *connectService) newRecord(wallet domain.Wallet, dir domain.Direction, externalID string, amount int64, currency string) domain.TransactionRecord {
	now := s.now()
	return domain.TransactionRecord{
		RecordID:         uuid.NewString(),
		WalletID:         wallet.WalletID,
		UserID:           wallet.UserID,
		ExternalID:       externalID,
		Amount:           decimal.NewFromInt(amount),
		CurrencyCode:     currency,
		Direction:        dir,
		Status:           domain.StatusPending,
		AppliedToBalance: true,
		RequestedAt:      now,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     wallet.UserID,
			LastUpdatedAt: now,
			LastUpdatedBy: wallet.UserID,
		},
	}
}

// recordOptimistic inserts the PENDING record and applies its delta to the locked wallet
// in one transaction.
func (s *connectService) recordOptimistic(ctx context.Context, record *domain.TransactionRecord) error {
	sctx, cancel := s.WithTimeout(ctx)
	defer cancel()

	return s.ledger.RunInTx(sctx, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		wallet, err := store.FindWalletByIDForUpdate(ctx, record.WalletID)
		if err != nil {
			return fmt.Errorf("failed to lock wallet %s: %w", record.WalletID, err)
		}
		wallet.ApplyDelta(record.AppliedDelta(), record.UserID, s.now())
		if wallet.Balance.IsNegative() {
			s.LogWarn(ctx, "Wallet balance negative after withdrawal",
				slog.String("wallet_id", wallet.WalletID),
				slog.String("balance", wallet.Balance.String()))
		}
		return store.InsertRecord(ctx, *record, *wallet)
	})
}

func (s *connectService) GetPayout(ctx context.Context, userID, payoutID string) (*domain.Payout, error) {
	account, err := s.connectAccountOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()
	return s.gateway.GetPayout(gctx, account.StripeConnectAccountID, payoutID)
}

func (s *connectService) CancelPayout(ctx context.Context, userID, payoutID string) (*domain.Payout, error) {
	account, err := s.connectAccountOf(ctx, userID)
	if err != nil {
		return nil, err
	}
	gctx, cancel := s.gatewayCtx(ctx)
	defer cancel()

	payout, err := s.gateway.CancelPayout(gctx, account.StripeConnectAccountID, payoutID)
	if err != nil {
		s.LogError(ctx, err, "Failed to cancel payout", slog.String("payout_id", payoutID))
		return nil, err
	}
	s.LogInfo(ctx, "Payout cancel requested", slog.String("payout_id", payoutID), slog.String("status", payout.Status))
	return payout, nil
}

// walletCurrency resolves the request currency against the single-currency wallet.
func walletCurrency(wallet domain.Wallet, requested string) (string, error) {
	if requested == "" {
		return wallet.CurrencyCode, nil
	}
	c := strings.ToLower(requested)
	if c != wallet.CurrencyCode {
		return "", fmt.Errorf("%w: wallet holds %s, not %s", apperrors.ErrValidation, wallet.CurrencyCode, c)
	}
	return c, nil
}
