package services_test

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stripe_wallet_app/internal/core/ports/repositories"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// memStore is an in-memory record store. RunInTx serializes transactions and works on a
// copy that is only published on success, so a failing fn leaves no trace.
type memStore struct {
	mu       sync.Mutex
	accounts map[string]domain.Account
	wallets  map[string]domain.Wallet
	records  map[string]domain.TransactionRecord // by external id

	// saveFailures makes the next N SaveAtomic calls fail with ErrConflict.
	saveFailures int
	commits      int
}

func newMemStore() *memStore {
	return &memStore{
		accounts: map[string]domain.Account{},
		wallets:  map[string]domain.Wallet{},
		records:  map[string]domain.TransactionRecord{},
	}
}

var (
	_ portsrepo.LedgerUnitOfWork        = (*memStore)(nil)
	_ portsrepo.WalletRepositoryFacade  = (*memStore)(nil)
	_ portsrepo.RecordRepositoryFacade  = (*memStore)(nil)
	_ portsrepo.AccountRepositoryFacade = (*memStore)(nil)
)

func (m *memStore) RunInTx(ctx context.Context, fn func(ctx context.Context, store portsrepo.LedgerTxStore) error) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	tx := &memTx{parent: m, wallets: map[string]domain.Wallet{}, records: map[string]domain.TransactionRecord{}}
	for k, v := range m.wallets {
		tx.wallets[k] = v
	}
	for k, v := range m.records {
		tx.records[k] = v
	}

	if err := fn(ctx, tx); err != nil {
		return err
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	m.wallets = tx.wallets
	m.records = tx.records
	m.commits++
	return nil
}

type memTx struct {
	parent  *memStore
	wallets map[string]domain.Wallet
	records map[string]domain.TransactionRecord
}

func (t *memTx) FindRecordByExternalIDForUpdate(_ context.Context, externalID string) (*domain.TransactionRecord, error) {
	r, ok := t.records[externalID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &r, nil
}

func (t *memTx) FindWalletByIDForUpdate(_ context.Context, walletID string) (*domain.Wallet, error) {
	w, ok := t.wallets[walletID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &w, nil
}

func (t *memTx) InsertRecord(_ context.Context, record domain.TransactionRecord, wallet domain.Wallet) error {
	if _, ok := t.records[record.ExternalID]; ok {
		return apperrors.ErrDuplicate
	}
	if err := t.saveWallet(wallet); err != nil {
		return err
	}
	record.Version = 1
	t.records[record.ExternalID] = record
	return nil
}

func (t *memTx) SaveAtomic(_ context.Context, record domain.TransactionRecord, wallet *domain.Wallet) error {
	if t.parent.saveFailures > 0 {
		t.parent.saveFailures--
		return fmt.Errorf("update record %s: %w", record.RecordID, apperrors.ErrConflict)
	}
	stored, ok := t.records[record.ExternalID]
	if !ok || stored.Version != record.Version {
		return apperrors.ErrConflict
	}
	record.Version++
	t.records[record.ExternalID] = record
	if wallet != nil {
		return t.saveWallet(*wallet)
	}
	return nil
}

func (t *memTx) saveWallet(wallet domain.Wallet) error {
	stored, ok := t.wallets[wallet.WalletID]
	if !ok || stored.Version != wallet.Version {
		return apperrors.ErrConflict
	}
	wallet.Version++
	t.wallets[wallet.WalletID] = wallet
	return nil
}

func (m *memStore) FindWalletByID(_ context.Context, walletID string) (*domain.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	w, ok := m.wallets[walletID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &w, nil
}

func (m *memStore) FindWalletByUserID(_ context.Context, userID string) (*domain.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, w := range m.wallets {
		if w.UserID == userID {
			return &w, nil
		}
	}
	return nil, apperrors.ErrNotFound
}

func (m *memStore) UpsertWallet(_ context.Context, wallet domain.Wallet) (*domain.Wallet, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, w := range m.wallets {
		if w.UserID == wallet.UserID {
			w.ConnectAccountID = wallet.ConnectAccountID
			w.Version++
			m.wallets[id] = w
			return &w, nil
		}
	}
	m.wallets[wallet.WalletID] = wallet
	return &wallet, nil
}

func (m *memStore) ListRecords(_ context.Context, q domain.RecordQuery) ([]domain.TransactionRecord, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.TransactionRecord
	for _, r := range m.records {
		if r.Direction != q.Direction || (q.UserID != "" && r.UserID != q.UserID) {
			continue
		}
		if q.Status != nil && r.Status != *q.Status {
			continue
		}
		if q.TransactionID != "" && !strings.Contains(r.ExternalID, q.TransactionID) {
			continue
		}
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RequestedAt.After(out[j].RequestedAt) })
	total := int64(len(out))
	start := q.Offset()
	if start > len(out) {
		start = len(out)
	}
	end := start + q.PageSize
	if end > len(out) {
		end = len(out)
	}
	return out[start:end], total, nil
}

func (m *memStore) ListCompletedRecords(_ context.Context, q domain.StatisticsQuery) ([]domain.TransactionRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []domain.TransactionRecord
	for _, r := range m.records {
		if q.UserID != "" && r.UserID != q.UserID {
			continue
		}
		if r.Status == domain.StatusSuccess && r.CompletedAt != nil &&
			!r.CompletedAt.Before(q.StartTime) && !r.CompletedAt.After(q.EndTime) {
			out = append(out, r)
		}
	}
	return out, nil
}

func (m *memStore) SumPendingByWallet(_ context.Context, walletID string) (decimal.Decimal, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	sum := decimal.Zero
	for _, r := range m.records {
		if r.WalletID == walletID {
			sum = sum.Add(r.SignedPending())
		}
	}
	return sum, nil
}

func (m *memStore) FindAccountByID(_ context.Context, accountID string) (*domain.Account, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[accountID]
	if !ok {
		return nil, apperrors.ErrNotFound
	}
	return &a, nil
}

func (m *memStore) SaveAccount(_ context.Context, account domain.Account) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.accounts[account.AccountID]; ok {
		return apperrors.ErrDuplicate
	}
	m.accounts[account.AccountID] = account
	return nil
}

func (m *memStore) UpdateConnectAccountID(_ context.Context, accountID, connectAccountID, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	a, ok := m.accounts[accountID]
	if !ok {
		return apperrors.ErrNotFound
	}
	a.StripeConnectAccountID = connectAccountID
	m.accounts[accountID] = a
	return nil
}

// seed helpers

func (m *memStore) putAccount(a domain.Account) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.accounts[a.AccountID] = a
}

func (m *memStore) putWallet(w domain.Wallet) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.wallets[w.WalletID] = w
}

func (m *memStore) putRecord(r domain.TransactionRecord) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.records[r.ExternalID] = r
}

func (m *memStore) wallet(id string) domain.Wallet {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.wallets[id]
}

func (m *memStore) record(externalID string) domain.TransactionRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.records[externalID]
}

// --- Mock PaymentGateway ---
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) CreateConnectAccount(ctx context.Context, params domain.ConnectAccountParams) (*domain.ConnectAccount, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConnectAccount), args.Error(1)
}

func (m *MockPaymentGateway) GetConnectAccount(ctx context.Context, accountID string) (*domain.ConnectAccount, error) {
	args := m.Called(ctx, accountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.ConnectAccount), args.Error(1)
}

func (m *MockPaymentGateway) CreateAccountLink(ctx context.Context, accountID, refreshURL, returnURL string) (*domain.AccountLink, error) {
	args := m.Called(ctx, accountID, refreshURL, returnURL)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLink), args.Error(1)
}

func (m *MockPaymentGateway) CreateTransfer(ctx context.Context, params domain.TransferParams) (*domain.Transfer, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Transfer), args.Error(1)
}

func (m *MockPaymentGateway) CreatePayout(ctx context.Context, params domain.PayoutParams) (*domain.Payout, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payout), args.Error(1)
}

func (m *MockPaymentGateway) GetPayout(ctx context.Context, connectAccountID, payoutID string) (*domain.Payout, error) {
	args := m.Called(ctx, connectAccountID, payoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payout), args.Error(1)
}

func (m *MockPaymentGateway) CancelPayout(ctx context.Context, connectAccountID, payoutID string) (*domain.Payout, error) {
	args := m.Called(ctx, connectAccountID, payoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payout), args.Error(1)
}

func (m *MockPaymentGateway) GetBalance(ctx context.Context, connectAccountID string) (*domain.GatewayBalance, error) {
	args := m.Called(ctx, connectAccountID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GatewayBalance), args.Error(1)
}

func (m *MockPaymentGateway) AddBankAccount(ctx context.Context, connectAccountID, token string) (*domain.BankAccount, error) {
	args := m.Called(ctx, connectAccountID, token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockPaymentGateway) CreatePaymentIntent(ctx context.Context, params domain.PaymentIntentParams) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}

// --- Mock EventDeduper ---
type MockEventDeduper struct {
	mock.Mock
}

func (m *MockEventDeduper) Seen(ctx context.Context, eventID string) (bool, error) {
	args := m.Called(ctx, eventID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEventDeduper) Mark(ctx context.Context, eventID string, ttl time.Duration) error {
	args := m.Called(ctx, eventID, ttl)
	return args.Error(0)
}

// blockingRecords stands in for a stuck database: every call waits for ctx to end.
type blockingRecords struct{}

func (blockingRecords) ListRecords(ctx context.Context, _ domain.RecordQuery) ([]domain.TransactionRecord, int64, error) {
	<-ctx.Done()
	return nil, 0, ctx.Err()
}

func (blockingRecords) ListCompletedRecords(ctx context.Context, _ domain.StatisticsQuery) ([]domain.TransactionRecord, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingRecords) SumPendingByWallet(ctx context.Context, _ string) (decimal.Decimal, error) {
	<-ctx.Done()
	return decimal.Zero, ctx.Err()
}
