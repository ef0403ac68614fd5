package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/dto"
	"github.com/SscSPs/stripe_wallet_app/internal/utils"
)

type platformPaymentService struct {
	BaseService
	gateway         portssvc.PaymentGateway
	admins          map[string]struct{}
	defaultCurrency string
}

// PaymentOption is a functional option for configuring the platform payment service
type PaymentOption func(*platformPaymentService)

// WithPlatformAdmins sets the users allowed to pay out from the platform balance.
func WithPlatformAdmins(userIDs ...string) PaymentOption {
	return func(s *platformPaymentService) {
		for _, id := range userIDs {
			s.admins[id] = struct{}{}
		}
	}
}

// WithPaymentCurrency sets the currency used when a request has none.
func WithPaymentCurrency(currency string) PaymentOption {
	return func(s *platformPaymentService) {
		if currency != "" {
			s.defaultCurrency = strings.ToLower(currency)
		}
	}
}

// NewPlatformPaymentService creates the platform payment service. gatewayTimeout bounds each Stripe call.
func NewPlatformPaymentService(gateway portssvc.PaymentGateway, gatewayTimeout time.Duration, opts ...PaymentOption) portssvc.PlatformPaymentSvc {
	svc := &platformPaymentService{
		BaseService:     BaseService{Timeout: gatewayTimeout},
		gateway:         gateway,
		admins:          make(map[string]struct{}),
		defaultCurrency: "usd",
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.PlatformPaymentSvc = (*platformPaymentService)(nil)

func (s *platformPaymentService) currency(requested string) string {
	if requested == "" {
		return s.defaultCurrency
	}
	return strings.ToLower(requested)
}

// withUser copies metadata and tags it with the caller. Callers cannot override user_id.
func withUser(metadata map[string]string, userID string) map[string]string {
	out := make(map[string]string, len(metadata)+1)
	for k, v := range metadata {
		out[k] = v
	}
	out["user_id"] = userID
	return out
}

func (s *platformPaymentService) CreatePaymentIntent(ctx context.Context, userID string, req dto.CreatePaymentIntentRequest) (*domain.PaymentIntent, error) {
	key, err := utils.NewIdempotencyKey("payment_intent")
	if err != nil {
		return nil, fmt.Errorf("failed to create idempotency key: %w", err)
	}

	gctx, cancel := s.WithTimeout(ctx)
	defer cancel()
	pi, err := s.gateway.CreatePaymentIntent(gctx, domain.PaymentIntentParams{
		Amount:         req.Amount,
		Currency:       s.currency(req.Currency),
		Description:    req.Description,
		CustomerID:     req.CustomerID,
		Confirm:        req.Confirm,
		IdempotencyKey: key,
		Metadata:       withUser(req.Metadata, userID),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create payment intent")
		return nil, err
	}

	s.LogInfo(ctx, "Payment intent created", slog.String("payment_intent_id", pi.ID), slog.Int64("amount", pi.Amount))
	return pi, nil
}

func (s *platformPaymentService) CreatePlatformPayout(ctx context.Context, userID string, req dto.CreatePlatformPayoutRequest) (*domain.Payout, error) {
	if _, ok := s.admins[userID]; !ok {
		return nil, fmt.Errorf("%w: user %s may not pay out the platform balance", apperrors.ErrForbidden, userID)
	}

	key, err := utils.NewIdempotencyKey("platform_payout")
	if err != nil {
		return nil, fmt.Errorf("failed to create idempotency key: %w", err)
	}

	gctx, cancel := s.WithTimeout(ctx)
	defer cancel()
	payout, err := s.gateway.CreatePayout(gctx, domain.PayoutParams{
		Amount:              req.Amount,
		Currency:            s.currency(req.Currency),
		Destination:         req.Destination,
		Method:              req.Method,
		SourceType:          req.SourceType,
		StatementDescriptor: req.StatementDescriptor,
		Description:         req.Description,
		IdempotencyKey:      key,
		Metadata:            withUser(req.Metadata, userID),
	})
	if err != nil {
		s.LogError(ctx, err, "Failed to create platform payout")
		return nil, err
	}

	s.LogInfo(ctx, "Platform payout created", slog.String("payout_id", payout.ID), slog.Int64("amount", payout.Amount))
	return payout, nil
}
