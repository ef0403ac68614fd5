package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/core/services"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ConnectServiceTestSuite struct {
	suite.Suite
	store   *memStore
	gateway *MockPaymentGateway
	service portssvc.ConnectSvcFacade
}

func (suite *ConnectServiceTestSuite) SetupTest() {
	suite.store = newMemStore()
	suite.gateway = new(MockPaymentGateway)
	reconciler := services.NewReconcilerService(suite.store, suite.store, suite.store)
	suite.service = services.NewConnectService(suite.gateway, suite.store, suite.store, suite.store,
		services.WithConnectDefaults("EUR", "de"),
		services.WithBalanceReader(reconciler),
	)
}

func (suite *ConnectServiceTestSuite) linkedUser(balance int64) {
	suite.store.putAccount(domain.Account{AccountID: testUserID, AccountName: "Linked", StripeConnectAccountID: testConnect})
	suite.store.putWallet(domain.Wallet{
		WalletID: testWalletID, UserID: testUserID, Balance: decimal.NewFromInt(balance),
		CurrencyCode: "eur", ConnectAccountID: testConnect,
	})
}

func (suite *ConnectServiceTestSuite) TestCreateConnectAccount_ProvisionsAccountAndWallet() {
	ctx := context.Background()
	req := dto.CreateConnectAccountRequest{Email: "jo@example.com", AcceptTOS: true, ClientIP: "203.0.113.9"}

	suite.gateway.On("CreateConnectAccount", mock.Anything, mock.MatchedBy(func(p domain.ConnectAccountParams) bool {
		return p.UserID == testUserID && p.Email == req.Email && p.Country == "DE" && p.TOS != nil && p.TOS.IP == req.ClientIP
	})).Return(&domain.ConnectAccount{ID: "acct_new", Email: req.Email, Country: "DE"}, nil).Once()

	resp, err := suite.service.CreateConnectAccount(ctx, testUserID, req)

	suite.Require().NoError(err)
	suite.False(resp.IsExisting)
	suite.Equal("acct_new", resp.Account.ID)
	suite.Require().NotNil(resp.Wallet)
	suite.Equal("eur", resp.Wallet.CurrencyCode)
	suite.True(resp.Wallet.Balance.IsZero())
	suite.Equal("acct_new", resp.Wallet.ConnectAccountID)

	account, err := suite.store.FindAccountByID(ctx, testUserID)
	suite.Require().NoError(err)
	suite.Equal("acct_new", account.StripeConnectAccountID)
	suite.gateway.AssertExpectations(suite.T())
}

func (suite *ConnectServiceTestSuite) TestCreateConnectAccount_ReturnsExisting() {
	suite.linkedUser(1200)
	suite.gateway.On("GetConnectAccount", mock.Anything, testConnect).
		Return(&domain.ConnectAccount{ID: testConnect, PayoutsEnabled: true}, nil).Once()

	resp, err := suite.service.CreateConnectAccount(context.Background(), testUserID, dto.CreateConnectAccountRequest{Email: "x@example.com"})

	suite.Require().NoError(err)
	suite.True(resp.IsExisting)
	suite.True(resp.Wallet.Balance.Equal(decimal.NewFromInt(1200)))
	suite.gateway.AssertNotCalled(suite.T(), "CreateConnectAccount", mock.Anything, mock.Anything)
}

func (suite *ConnectServiceTestSuite) TestCreateTransfer_RejectsForeignDestination() {
	suite.linkedUser(0)

	_, err := suite.service.CreateTransfer(context.Background(), testUserID, dto.CreateTransferRequest{Amount: 10, Destination: "acct_other"})

	suite.ErrorIs(err, apperrors.ErrForbidden)
	suite.gateway.AssertNotCalled(suite.T(), "CreateTransfer", mock.Anything, mock.Anything)
}

func (suite *ConnectServiceTestSuite) TestCreateTransfer_RejectsOtherCurrency() {
	suite.linkedUser(0)

	_, err := suite.service.CreateTransfer(context.Background(), testUserID, dto.CreateTransferRequest{Amount: 10, Currency: "USD"})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ConnectServiceTestSuite) TestCreateTransfer_GatewayErrorLeavesWallet() {
	suite.linkedUser(50)
	suite.gateway.On("CreateTransfer", mock.Anything, mock.AnythingOfType("domain.TransferParams")).
		Return(nil, apperrors.ErrGateway).Once()

	_, err := suite.service.CreateTransfer(context.Background(), testUserID, dto.CreateTransferRequest{Amount: 10})

	suite.ErrorIs(err, apperrors.ErrGateway)
	suite.True(suite.store.wallet(testWalletID).Balance.Equal(decimal.NewFromInt(50)))
	suite.Equal(0, suite.store.commits)
}

func (suite *ConnectServiceTestSuite) TestCreateTransfer_WithoutConnectAccount() {
	suite.store.putAccount(domain.Account{AccountID: testUserID})

	_, err := suite.service.CreateTransfer(context.Background(), testUserID, dto.CreateTransferRequest{Amount: 10})

	suite.ErrorIs(err, apperrors.ErrValidation)
}

func (suite *ConnectServiceTestSuite) TestCreateConnectedPayout_InsufficientFunds() {
	suite.linkedUser(999)

	_, err := suite.service.CreateConnectedPayout(context.Background(), testUserID, dto.CreatePayoutRequest{Amount: 1000})

	suite.ErrorIs(err, apperrors.ErrInsufficientFunds)
	suite.gateway.AssertNotCalled(suite.T(), "CreatePayout", mock.Anything, mock.Anything)
}

func (suite *ConnectServiceTestSuite) TestCreateConnectedPayout_RecordsPendingWithdraw() {
	suite.linkedUser(1000)
	suite.gateway.On("CreatePayout", mock.Anything, mock.MatchedBy(func(p domain.PayoutParams) bool {
		return p.Amount == 1000 && p.Currency == "eur" && p.Destination == "ba_1" && p.Method == "instant"
	})).Return(&domain.Payout{ID: "po_1", Amount: 1000, Currency: "eur", Status: "pending", Method: "instant", Destination: "ba_1"}, nil).Once()

	rec, err := suite.service.CreateConnectedPayout(context.Background(), testUserID, dto.CreatePayoutRequest{
		Amount: 1000, BankAccountID: "ba_1", Method: "instant", Remark: "rent", IPAddress: "198.51.100.1",
	})

	suite.Require().NoError(err)
	suite.Equal(domain.Withdraw, rec.Direction)
	suite.Equal(domain.StatusPending, rec.Status)
	suite.Equal("ba_1", rec.BankAccountID)
	suite.Equal("rent", suite.store.record("po_1").Remark)
	suite.True(suite.store.wallet(testWalletID).Balance.IsZero())
}

func (suite *ConnectServiceTestSuite) TestCancelPayout_DoesNotTouchWallet() {
	suite.linkedUser(300)
	suite.gateway.On("CancelPayout", mock.Anything, testConnect, "po_9").
		Return(&domain.Payout{ID: "po_9", Status: "canceled"}, nil).Once()

	payout, err := suite.service.CancelPayout(context.Background(), testUserID, "po_9")

	suite.Require().NoError(err)
	suite.Equal("canceled", payout.Status)
	suite.True(suite.store.wallet(testWalletID).Balance.Equal(decimal.NewFromInt(300)))
}

func (suite *ConnectServiceTestSuite) TestGetConnectBalance_CombinesGatewayAndLocal() {
	suite.linkedUser(700)
	suite.gateway.On("GetBalance", mock.Anything, testConnect).Return(&domain.GatewayBalance{
		Available: []domain.MoneyAmount{{Amount: 650, Currency: "eur"}},
		Pending:   []domain.MoneyAmount{{Amount: 50, Currency: "eur"}},
	}, nil).Once()

	resp, err := suite.service.GetConnectBalance(context.Background(), testUserID)

	suite.Require().NoError(err)
	suite.Equal(int64(650), resp.Gateway.Available[0].Amount)
	suite.True(resp.Wallet.Available.Equal(decimal.NewFromInt(700)))
	suite.True(resp.Wallet.Pending.IsZero())
}

func (suite *ConnectServiceTestSuite) TestAddBankAccount() {
	suite.linkedUser(0)
	suite.gateway.On("AddBankAccount", mock.Anything, testConnect, "btok_1").
		Return(&domain.BankAccount{ID: "ba_2", Last4: "6789"}, nil).Once()

	bank, err := suite.service.AddBankAccount(context.Background(), testUserID, dto.AddBankAccountRequest{Token: "btok_1"})

	suite.Require().NoError(err)
	suite.Equal("6789", bank.Last4)
}

func TestConnectServiceTestSuite(t *testing.T) {
	suite.Run(t, new(ConnectServiceTestSuite))
}
