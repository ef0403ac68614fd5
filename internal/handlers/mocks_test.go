package handlers_test

import (
	"context"
	"sync"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
	"github.com/SscSPs/stripe_wallet_app/internal/middleware"
)

// --- Mock ConnectService ---
type MockConnectService struct {
	mock.Mock
}

func (m *MockConnectService) CreateConnectAccount(ctx context.Context, userID string, req dto.CreateConnectAccountRequest) (*dto.ConnectAccountResponse, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConnectAccountResponse), args.Error(1)
}

func (m *MockConnectService) CreateAccountLink(ctx context.Context, userID string, req dto.CreateAccountLinkRequest) (*domain.AccountLink, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.AccountLink), args.Error(1)
}

func (m *MockConnectService) AddBankAccount(ctx context.Context, userID string, req dto.AddBankAccountRequest) (*domain.BankAccount, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.BankAccount), args.Error(1)
}

func (m *MockConnectService) GetConnectBalance(ctx context.Context, userID string) (*dto.ConnectBalanceResponse, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ConnectBalanceResponse), args.Error(1)
}

func (m *MockConnectService) CreateTransfer(ctx context.Context, userID string, req dto.CreateTransferRequest) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionRecord), args.Error(1)
}

func (m *MockConnectService) CreateConnectedPayout(ctx context.Context, userID string, req dto.CreatePayoutRequest) (*domain.TransactionRecord, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionRecord), args.Error(1)
}

func (m *MockConnectService) GetPayout(ctx context.Context, userID, payoutID string) (*domain.Payout, error) {
	args := m.Called(ctx, userID, payoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payout), args.Error(1)
}

func (m *MockConnectService) CancelPayout(ctx context.Context, userID, payoutID string) (*domain.Payout, error) {
	args := m.Called(ctx, userID, payoutID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payout), args.Error(1)
}

var _ portssvc.ConnectSvcFacade = (*MockConnectService)(nil)

// --- Mock PlatformPaymentService ---
type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) CreatePaymentIntent(ctx context.Context, userID string, req dto.CreatePaymentIntentRequest) (*domain.PaymentIntent, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PaymentIntent), args.Error(1)
}

func (m *MockPaymentService) CreatePlatformPayout(ctx context.Context, userID string, req dto.CreatePlatformPayoutRequest) (*domain.Payout, error) {
	args := m.Called(ctx, userID, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payout), args.Error(1)
}

var _ portssvc.PlatformPaymentSvc = (*MockPaymentService)(nil)

// --- Mock RecordQueryService ---
type MockRecordService struct {
	mock.Mock
}

func (m *MockRecordService) ListDeposits(ctx context.Context, userID string, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListRecordsResponse), args.Error(1)
}

func (m *MockRecordService) ListWithdraws(ctx context.Context, userID string, params dto.ListRecordsParams) (*dto.ListRecordsResponse, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.ListRecordsResponse), args.Error(1)
}

var _ portssvc.RecordQuerySvc = (*MockRecordService)(nil)

// --- Mock StatisticsService ---
type MockStatisticsService struct {
	mock.Mock
}

func (m *MockStatisticsService) GetTransactionStatistics(ctx context.Context, userID string, params dto.StatisticsParams) (*domain.TransactionStatistics, error) {
	args := m.Called(ctx, userID, params)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.TransactionStatistics), args.Error(1)
}

var _ portssvc.StatisticsSvc = (*MockStatisticsService)(nil)

// --- Mock Reconciler ---
type MockReconciler struct {
	mock.Mock
}

func (m *MockReconciler) ApplyEvent(ctx context.Context, event domain.GatewayEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockReconciler) GetBalance(ctx context.Context, walletID string) (*domain.LocalBalance, error) {
	args := m.Called(ctx, walletID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.LocalBalance), args.Error(1)
}

var _ portssvc.ReconcilerSvc = (*MockReconciler)(nil)

// --- Mock EventParser ---
type MockEventParser struct {
	mock.Mock
}

func (m *MockEventParser) ParseEvent(payload []byte, signatureHeader string) (*domain.GatewayEvent, error) {
	args := m.Called(payload, signatureHeader)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.GatewayEvent), args.Error(1)
}

var _ portssvc.EventParser = (*MockEventParser)(nil)

// recordingTracker keeps tracked analytics events in memory.
type recordingTracker struct {
	mu     sync.Mutex
	events []string
}

func (t *recordingTracker) Enabled() bool { return true }

func (t *recordingTracker) Track(_ string, event string, _ map[string]any) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.events = append(t.events, event)
}

func (t *recordingTracker) tracked() []string {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]string(nil), t.events...)
}

var _ middleware.AnalyticsTracker = (*recordingTracker)(nil)
