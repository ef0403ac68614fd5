package services_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/core/services"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	testUserID   = "user-1"
	testWalletID = "wal-1"
	testConnect  = "acct_1"
)

type ReconcilerTestSuite struct {
	suite.Suite
	store      *memStore
	gateway    *MockPaymentGateway
	reconciler portssvc.ReconcilerSvc
	connect    portssvc.ConnectSvcFacade
}

func (suite *ReconcilerTestSuite) SetupTest() {
	suite.store = newMemStore()
	suite.gateway = new(MockPaymentGateway)
	suite.reconciler = services.NewReconcilerService(suite.store, suite.store, suite.store,
		services.WithRetryPolicy(3, 0),
		services.WithAttemptTimeout(time.Second),
	)
	suite.connect = services.NewConnectService(suite.gateway, suite.store, suite.store, suite.store,
		services.WithBalanceReader(suite.reconciler),
	)

	suite.store.putAccount(domain.Account{AccountID: testUserID, AccountName: "Test", StripeConnectAccountID: testConnect})
	suite.seedWallet(0)
}

func (suite *ReconcilerTestSuite) seedWallet(balance int64) {
	suite.store.putWallet(domain.Wallet{
		WalletID:         testWalletID,
		UserID:           testUserID,
		Balance:          decimal.NewFromInt(balance),
		CurrencyCode:     "usd",
		ConnectAccountID: testConnect,
	})
}

func (suite *ReconcilerTestSuite) deposit(id string, amount int64) *domain.TransactionRecord {
	suite.gateway.On("CreateTransfer", mock.Anything, mock.MatchedBy(func(p domain.TransferParams) bool {
		return p.Destination == testConnect && p.Amount == amount && p.Currency == "usd" && p.IdempotencyKey != ""
	})).Return(&domain.Transfer{ID: id, Amount: amount, Currency: "usd", Destination: testConnect}, nil).Once()

	rec, err := suite.connect.CreateTransfer(context.Background(), testUserID, dto.CreateTransferRequest{Amount: amount})
	suite.Require().NoError(err)
	return rec
}

func (suite *ReconcilerTestSuite) withdraw(id string, amount int64) *domain.TransactionRecord {
	suite.gateway.On("CreatePayout", mock.Anything, mock.MatchedBy(func(p domain.PayoutParams) bool {
		return p.ConnectAccountID == testConnect && p.Amount == amount
	})).Return(&domain.Payout{ID: id, Amount: amount, Currency: "usd", Status: "pending", Method: "standard"}, nil).Once()

	rec, err := suite.connect.CreateConnectedPayout(context.Background(), testUserID, dto.CreatePayoutRequest{Amount: amount})
	suite.Require().NoError(err)
	return rec
}

func event(object domain.GatewayObject, kind domain.EventKind, externalID string) domain.GatewayEvent {
	return domain.GatewayEvent{
		EventID:    "evt_" + uuid.NewString(),
		Type:       string(object) + "." + string(kind),
		Object:     object,
		Kind:       kind,
		ExternalID: externalID,
	}
}

func (suite *ReconcilerTestSuite) balance() decimal.Decimal {
	return suite.store.wallet(testWalletID).Balance
}

func (suite *ReconcilerTestSuite) assertBalance(want int64) {
	got := suite.balance()
	suite.Truef(got.Equal(decimal.NewFromInt(want)), "balance = %s, want %d", got, want)
}

// --- Test Cases ---

func (suite *ReconcilerTestSuite) TestDepositPaid_KeepsBalanceAndCompletes() {
	ctx := context.Background()
	rec := suite.deposit("tr_a", 5000)
	suite.Equal(domain.StatusPending, rec.Status)
	suite.True(rec.AppliedToBalance)
	suite.assertBalance(5000)

	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, event(domain.ObjectTransfer, domain.EventPaid, "tr_a")))
	stored := suite.store.record("tr_a")
	suite.Equal(domain.StatusSuccess, stored.Status)
	suite.Require().NotNil(stored.CompletedAt)
	completedAt := *stored.CompletedAt
	suite.assertBalance(5000)

	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, event(domain.ObjectTransfer, domain.EventPaid, "tr_a")))
	suite.Equal(completedAt, *suite.store.record("tr_a").CompletedAt)
	suite.assertBalance(5000)
}

func (suite *ReconcilerTestSuite) TestDepositFailed_ReversesExactlyOnce() {
	ctx := context.Background()
	suite.deposit("tr_b", 5000)

	failed := event(domain.ObjectTransfer, domain.EventFailed, "tr_b")
	failed.Failure = domain.FailureInfo{Code: "account_closed", Message: "The destination account is closed."}

	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, failed))
	suite.assertBalance(0)
	stored := suite.store.record("tr_b")
	suite.Equal(domain.StatusFailed, stored.Status)
	suite.False(stored.AppliedToBalance)
	suite.Equal("account_closed", stored.FailureCode)

	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, event(domain.ObjectTransfer, domain.EventFailed, "tr_b")))
	suite.assertBalance(0)
}

func (suite *ReconcilerTestSuite) TestWithdrawCanceled_RefundsWallet() {
	ctx := context.Background()
	suite.seedWallet(10000)
	suite.withdraw("po_c", 2000)
	suite.assertBalance(8000)

	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, event(domain.ObjectPayout, domain.EventCanceled, "po_c")))
	suite.assertBalance(10000)
	suite.Equal(domain.StatusRejected, suite.store.record("po_c").Status)

	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, event(domain.ObjectPayout, domain.EventCanceled, "po_c")))
	suite.assertBalance(10000)
}

func (suite *ReconcilerTestSuite) TestUnknownRecord_NotFoundWithoutMutation() {
	ctx := context.Background()
	suite.deposit("tr_d", 700)
	commits := suite.store.commits

	err := suite.reconciler.ApplyEvent(ctx, event(domain.ObjectTransfer, domain.EventFailed, "tr_missing"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrRecordNotFound)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.False(apperrors.IsRetryable(err))
	suite.Equal(commits, suite.store.commits)
	suite.assertBalance(700)
	suite.Equal(domain.StatusPending, suite.store.record("tr_d").Status)
}

func (suite *ReconcilerTestSuite) TestCreatedAfterPaid_DoesNotRegress() {
	ctx := context.Background()
	suite.deposit("tr_e", 100)

	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, event(domain.ObjectTransfer, domain.EventPaid, "tr_e")))
	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, event(domain.ObjectTransfer, domain.EventCreated, "tr_e")))

	suite.Equal(domain.StatusSuccess, suite.store.record("tr_e").Status)
	suite.assertBalance(100)
}

func (suite *ReconcilerTestSuite) TestPayoutPaidThenFailed_Refunds() {
	ctx := context.Background()
	suite.seedWallet(3000)
	suite.withdraw("po_f", 1000)

	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, event(domain.ObjectPayout, domain.EventPaid, "po_f")))
	suite.assertBalance(2000)
	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, event(domain.ObjectPayout, domain.EventFailed, "po_f")))
	suite.assertBalance(3000)
	suite.Equal(domain.StatusFailed, suite.store.record("po_f").Status)
}

func (suite *ReconcilerTestSuite) TestConcurrentReplay_ReversesOnce() {
	suite.deposit("tr_g", 5000)

	var wg sync.WaitGroup
	errs := make(chan error, 25)
	for i := 0; i < 25; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- suite.reconciler.ApplyEvent(context.Background(), event(domain.ObjectTransfer, domain.EventFailed, "tr_g"))
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		suite.NoError(err)
	}
	suite.assertBalance(0)
	suite.Equal(domain.StatusFailed, suite.store.record("tr_g").Status)
}

func (suite *ReconcilerTestSuite) TestConflict_RetriedUntilApplied() {
	suite.deposit("tr_h", 400)
	suite.store.saveFailures = 2

	err := suite.reconciler.ApplyEvent(context.Background(), event(domain.ObjectTransfer, domain.EventFailed, "tr_h"))

	suite.Require().NoError(err)
	suite.assertBalance(0)
	suite.Equal(0, suite.store.saveFailures)
}

func (suite *ReconcilerTestSuite) TestConflict_ExhaustedRetriesRollBack() {
	suite.deposit("tr_i", 400)
	suite.store.saveFailures = 3

	err := suite.reconciler.ApplyEvent(context.Background(), event(domain.ObjectTransfer, domain.EventFailed, "tr_i"))

	suite.Require().Error(err)
	suite.True(apperrors.IsRetryable(err))
	suite.ErrorIs(err, apperrors.ErrConflict)
	suite.assertBalance(400)
	stored := suite.store.record("tr_i")
	suite.Equal(domain.StatusPending, stored.Status)
	suite.True(stored.AppliedToBalance)

	// Redelivery after the conflict clears applies normally.
	suite.Require().NoError(suite.reconciler.ApplyEvent(context.Background(), event(domain.ObjectTransfer, domain.EventFailed, "tr_i")))
	suite.assertBalance(0)
}

func (suite *ReconcilerTestSuite) TestObjectMismatch_Rejected() {
	suite.deposit("tr_j", 250)

	err := suite.reconciler.ApplyEvent(context.Background(), event(domain.ObjectPayout, domain.EventFailed, "tr_j"))

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.assertBalance(250)
}

func (suite *ReconcilerTestSuite) TestReversalAmountMustCoverRecord() {
	ctx := context.Background()
	suite.deposit("tr_p", 5000)
	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, event(domain.ObjectTransfer, domain.EventPaid, "tr_p")))

	partial := event(domain.ObjectTransfer, domain.EventCanceled, "tr_p")
	partial.Amount = 1000
	err := suite.reconciler.ApplyEvent(ctx, partial)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.assertBalance(5000)
	suite.Equal(domain.StatusSuccess, suite.store.record("tr_p").Status)

	full := event(domain.ObjectTransfer, domain.EventCanceled, "tr_p")
	full.Amount = 5000
	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, full))
	suite.assertBalance(0)
	suite.Equal(domain.StatusCancelled, suite.store.record("tr_p").Status)
}

func (suite *ReconcilerTestSuite) TestMissingExternalID_Invalid() {
	err := suite.reconciler.ApplyEvent(context.Background(), event(domain.ObjectPayout, domain.EventPaid, ""))
	suite.ErrorIs(err, apperrors.ErrInvalidEvent)
}

func (suite *ReconcilerTestSuite) TestGetBalance_NetPending() {
	ctx := context.Background()
	suite.seedWallet(10000)
	suite.deposit("tr_k", 5000)
	suite.withdraw("po_k", 2000)
	suite.deposit("tr_l", 100)
	suite.Require().NoError(suite.reconciler.ApplyEvent(ctx, event(domain.ObjectTransfer, domain.EventPaid, "tr_l")))

	bal, err := suite.reconciler.GetBalance(ctx, testWalletID)

	suite.Require().NoError(err)
	suite.Equal(testUserID, bal.UserID)
	suite.True(bal.Available.Equal(decimal.NewFromInt(13100)), bal.Available.String())
	suite.True(bal.Pending.Equal(decimal.NewFromInt(3000)), bal.Pending.String())
}

func (suite *ReconcilerTestSuite) TestGetBalance_UnknownWallet() {
	_, err := suite.reconciler.GetBalance(context.Background(), "nope")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func TestReconcilerTestSuite(t *testing.T) {
	suite.Run(t, new(ReconcilerTestSuite))
}

// --- Dedup ---

func TestReconciler_SkipsSeenEvents(t *testing.T) {
	store := newMemStore()
	store.putWallet(domain.Wallet{WalletID: testWalletID, UserID: testUserID, Balance: decimal.NewFromInt(500), CurrencyCode: "usd"})
	store.putRecord(domain.TransactionRecord{
		RecordID: "rec-1", WalletID: testWalletID, UserID: testUserID, ExternalID: "tr_seen",
		Amount: decimal.NewFromInt(500), Direction: domain.Deposit, Status: domain.StatusPending, AppliedToBalance: true,
	})
	deduper := new(MockEventDeduper)
	reconciler := services.NewReconcilerService(store, store, store, services.WithEventDeduper(deduper, time.Hour))

	seen := event(domain.ObjectTransfer, domain.EventFailed, "tr_seen")
	deduper.On("Seen", mock.Anything, seen.EventID).Return(true, nil).Once()

	require.NoError(t, reconciler.ApplyEvent(context.Background(), seen))
	assert.Equal(t, domain.StatusPending, store.record("tr_seen").Status)
	deduper.AssertNotCalled(t, "Mark", mock.Anything, mock.Anything, mock.Anything)

	fresh := event(domain.ObjectTransfer, domain.EventFailed, "tr_seen")
	deduper.On("Seen", mock.Anything, fresh.EventID).Return(false, nil).Once()
	deduper.On("Mark", mock.Anything, fresh.EventID, time.Hour).Return(nil).Once()

	require.NoError(t, reconciler.ApplyEvent(context.Background(), fresh))
	assert.Equal(t, domain.StatusFailed, store.record("tr_seen").Status)
	assert.True(t, store.wallet(testWalletID).Balance.IsZero())
	deduper.AssertExpectations(t)
}

func TestReconciler_DedupFailureFallsThrough(t *testing.T) {
	store := newMemStore()
	store.putWallet(domain.Wallet{WalletID: testWalletID, UserID: testUserID, Balance: decimal.NewFromInt(80), CurrencyCode: "usd"})
	store.putRecord(domain.TransactionRecord{
		RecordID: "rec-2", WalletID: testWalletID, UserID: testUserID, ExternalID: "tr_redis",
		Amount: decimal.NewFromInt(80), Direction: domain.Deposit, Status: domain.StatusPending, AppliedToBalance: true,
	})
	deduper := new(MockEventDeduper)
	reconciler := services.NewReconcilerService(store, store, store, services.WithEventDeduper(deduper, time.Minute))

	ev := event(domain.ObjectTransfer, domain.EventPaid, "tr_redis")
	deduper.On("Seen", mock.Anything, ev.EventID).Return(false, assert.AnError).Once()
	deduper.On("Mark", mock.Anything, ev.EventID, time.Minute).Return(assert.AnError).Once()

	require.NoError(t, reconciler.ApplyEvent(context.Background(), ev))
	assert.Equal(t, domain.StatusSuccess, store.record("tr_redis").Status)
	deduper.AssertExpectations(t)
}
