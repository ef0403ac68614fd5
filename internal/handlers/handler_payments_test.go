package handlers_test

import (
	"fmt"
	"net/http"

	"github.com/stretchr/testify/mock"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
)

// --- Platform payments ---

func (s *APIHandlerTestSuite) TestCreatePaymentIntent() {
	s.payments.On("CreatePaymentIntent", mock.Anything, testUserID, mock.MatchedBy(func(r dto.CreatePaymentIntentRequest) bool {
		return r.Amount == 1500 && r.Currency == "usd" && r.Metadata["order_id"] == "order-9"
	})).Return(&domain.PaymentIntent{ID: "pi_1", ClientSecret: "pi_1_secret", Amount: 1500, Currency: "usd"}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/payments/intents", map[string]any{
		"amount": 1500, "currency": "usd", "metadata": map[string]string{"order_id": "order-9"},
	})

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), `"clientSecret":"pi_1_secret"`)
	s.Contains(w.Body.String(), `"paymentIntentId":"pi_1"`)
	s.Contains(s.tracker.tracked(), "payment_intent_created")
}

func (s *APIHandlerTestSuite) TestCreatePaymentIntent_InvalidAmount() {
	w := s.do(http.MethodPost, "/api/v1/payments/intents", map[string]any{"amount": 0})

	s.Equal(http.StatusBadRequest, w.Code)
	s.payments.AssertNotCalled(s.T(), "CreatePaymentIntent", mock.Anything, mock.Anything, mock.Anything)
}

func (s *APIHandlerTestSuite) TestCreatePlatformPayout() {
	s.payments.On("CreatePlatformPayout", mock.Anything, testUserID, mock.Anything).
		Return(&domain.Payout{ID: "po_plat", Amount: 9000, Status: "pending"}, nil).Once()

	w := s.do(http.MethodPost, "/api/v1/payments/payouts", map[string]any{"amount": 9000, "sourceType": "bank_account"})

	s.Equal(http.StatusCreated, w.Code)
	s.Contains(w.Body.String(), `"po_plat"`)
}

func (s *APIHandlerTestSuite) TestCreatePlatformPayout_NotAdmin() {
	s.payments.On("CreatePlatformPayout", mock.Anything, testUserID, mock.Anything).
		Return(nil, fmt.Errorf("%w: not an admin", apperrors.ErrForbidden)).Once()

	w := s.do(http.MethodPost, "/api/v1/payments/payouts", map[string]any{"amount": 9000})

	s.Equal(http.StatusForbidden, w.Code)
}

func (s *APIHandlerTestSuite) TestCreatePlatformPayout_InvalidSourceType() {
	w := s.do(http.MethodPost, "/api/v1/payments/payouts", map[string]any{"amount": 10, "sourceType": "cash"})
	s.Equal(http.StatusBadRequest, w.Code)
}
