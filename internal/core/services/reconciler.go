package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/stripe_wallet_app/internal/apperrors"
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	portsrepo "github.com/SscSPs/stripe_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/shopspring/decimal"
)

const (
	defaultMaxAttempts    = 3
	defaultRetryBackoff   = 200 * time.Millisecond
	defaultAttemptTimeout = 5 * time.Second
)

// reconcilerService applies gateway lifecycle events to transaction records and wallets.
type reconcilerService struct {
	BaseService
	ledger     portsrepo.LedgerUnitOfWork
	walletRepo portsrepo.WalletReader
	recordRepo portsrepo.RecordReader
	deduper    portsrepo.EventDeduper
	dedupTTL   time.Duration

	maxAttempts int
	backoff     time.Duration
	locks       *keyedMutex
	now         func() time.Time
}

// ReconcilerOption is a functional option for configuring the reconciler
type ReconcilerOption func(*reconcilerService)

// WithEventDeduper short-circuits redelivered events seen within ttl.
func WithEventDeduper(d portsrepo.EventDeduper, ttl time.Duration) ReconcilerOption {
	return func(s *reconcilerService) {
		s.deduper = d
		s.dedupTTL = ttl
	}
}

// WithRetryPolicy sets the number of attempts and the linear backoff between them.
func WithRetryPolicy(maxAttempts int, backoff time.Duration) ReconcilerOption {
	return func(s *reconcilerService) {
		if maxAttempts > 0 {
			s.maxAttempts = maxAttempts
		}
		if backoff >= 0 {
			s.backoff = backoff
		}
	}
}

// WithAttemptTimeout bounds each attempt, including the store round trips it makes.
func WithAttemptTimeout(d time.Duration) ReconcilerOption {
	return func(s *reconcilerService) {
		s.Timeout = d
	}
}

// WithClock overrides time.Now.
func WithClock(now func() time.Time) ReconcilerOption {
	return func(s *reconcilerService) {
		s.now = now
	}
}

// NewReconcilerService creates the ledger reconciler.
func NewReconcilerService(ledger portsrepo.LedgerUnitOfWork, walletRepo portsrepo.WalletReader, recordRepo portsrepo.RecordReader, opts ...ReconcilerOption) portssvc.ReconcilerSvc {
	svc := &reconcilerService{
		BaseService: BaseService{Timeout: defaultAttemptTimeout},
		ledger:      ledger,
		walletRepo:  walletRepo,
		recordRepo:  recordRepo,
		maxAttempts: defaultMaxAttempts,
		backoff:     defaultRetryBackoff,
		locks:       newKeyedMutex(),
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(svc)
	}
	return svc
}

var _ portssvc.ReconcilerSvc = (*reconcilerService)(nil)

func (s *reconcilerService) ApplyEvent(ctx context.Context, event domain.GatewayEvent) error {
	logger := s.GetLogger(ctx).With(
		slog.String("event_id", event.EventID),
		slog.String("event_type", event.Type),
		slog.String("external_id", event.ExternalID),
	)
	kind := string(event.Kind)

	if event.ExternalID == "" {
		reconciledEvents.WithLabelValues(kind, outcomeRejected).Inc()
		return fmt.Errorf("%w: event %s has no object id", apperrors.ErrInvalidEvent, event.EventID)
	}

	if s.seen(ctx, logger, event.EventID) {
		reconciledEvents.WithLabelValues(kind, outcomeDuplicate).Inc()
		logger.Debug("Event already processed, skipping")
		return nil
	}

	unlock, err := s.locks.Lock(ctx, event.ExternalID)
	if err != nil {
		reconciledEvents.WithLabelValues(kind, outcomeFailed).Inc()
		return fmt.Errorf("waiting for event lock on %s: %w", event.ExternalID, err)
	}
	defer unlock()

	var tr domain.Transition
	err = s.withRetry(ctx, logger, func(attemptCtx context.Context) error {
		var err error
		tr, err = s.applyOnce(attemptCtx, event)
		return err
	})

	switch {
	case errors.Is(err, apperrors.ErrRecordNotFound):
		reconciledEvents.WithLabelValues(kind, outcomeNotFound).Inc()
		logger.Warn("No transaction record for event")
		return err
	case errors.Is(err, apperrors.ErrValidation):
		reconciledEvents.WithLabelValues(kind, outcomeRejected).Inc()
		logger.Warn("Event does not match its transaction record", slog.String("error", err.Error()))
		return err
	case err != nil:
		reconciledEvents.WithLabelValues(kind, outcomeFailed).Inc()
		logger.Error("Failed to apply event", slog.String("error", err.Error()))
		return err
	}

	if tr.Changed {
		reconciledEvents.WithLabelValues(kind, outcomeApplied).Inc()
		logger.Info("Event applied",
			slog.String("from", string(tr.From)),
			slog.String("to", string(tr.To)),
			slog.Bool("reversed", tr.Reversed),
			slog.String("balance_delta", tr.BalanceDelta.String()))
	} else {
		reconciledEvents.WithLabelValues(kind, outcomeNoop).Inc()
		logger.Debug("Event left record unchanged", slog.String("status", string(tr.From)))
	}

	s.mark(ctx, logger, event.EventID)
	return nil
}

// applyOnce runs one attempt in its own database transaction.
// Lock order is record then wallet, matching the creation path's wallet-only lock.
func (s *reconcilerService) applyOnce(ctx context.Context, event domain.GatewayEvent) (domain.Transition, error) {
	var tr domain.Transition

	err := s.ledger.RunInTx(ctx, func(ctx context.Context, store portsrepo.LedgerTxStore) error {
		record, err := store.FindRecordByExternalIDForUpdate(ctx, event.ExternalID)
		if err != nil {
			if errors.Is(err, apperrors.ErrNotFound) {
				return fmt.Errorf("%w: %s", apperrors.ErrRecordNotFound, event.ExternalID)
			}
			return fmt.Errorf("failed to lock record %s: %w", event.ExternalID, err)
		}

		if want := event.Object.Direction(); record.Direction != want {
			return fmt.Errorf("%w: %s event for %s record %s", apperrors.ErrValidation, event.Object, record.Direction, record.RecordID)
		}
		// A reversal takes back the whole record amount, so the event must cover all of it.
		if reversesRecord(event.Kind) && event.Amount > 0 && !record.Amount.Equal(decimal.NewFromInt(event.Amount)) {
			return fmt.Errorf("%w: %s amount %d does not match record %s amount %s",
				apperrors.ErrValidation, event.Type, event.Amount, record.RecordID, record.Amount)
		}

		tr = record.ApplyEvent(event.Kind, event.Failure, domain.SystemActor, s.now())
		if !tr.Changed {
			return nil
		}

		var wallet *domain.Wallet
		if !tr.BalanceDelta.IsZero() {
			wallet, err = store.FindWalletByIDForUpdate(ctx, record.WalletID)
			if err != nil {
				return fmt.Errorf("failed to lock wallet %s of record %s: %w", record.WalletID, record.RecordID, err)
			}
			wallet.ApplyDelta(tr.BalanceDelta, domain.SystemActor, s.now())
		}

		return store.SaveAtomic(ctx, *record, wallet)
	})
	if err != nil {
		return domain.Transition{}, err
	}

	if tr.Reversed {
		balanceReversals.WithLabelValues(string(event.Object.Direction())).Inc()
	}
	return tr, nil
}

func reversesRecord(kind domain.EventKind) bool {
	return kind == domain.EventFailed || kind == domain.EventCanceled
}

// withRetry retries op on retryable errors with linear backoff. Each attempt gets its
// own timeout; a deadline hit mid-attempt is retried because the transaction rolled back.
func (s *reconcilerService) withRetry(ctx context.Context, logger *slog.Logger, op func(ctx context.Context) error) error {
	var err error
	for attempt := 1; attempt <= s.maxAttempts; attempt++ {
		attemptCtx, cancel := s.WithTimeout(ctx)
		err = op(attemptCtx)
		cancel()

		if err == nil || !apperrors.IsRetryable(err) {
			return err
		}
		if attempt == s.maxAttempts {
			break
		}

		reconcileRetries.Inc()
		logger.Warn("Retrying reconcile attempt",
			slog.Int("attempt", attempt),
			slog.String("error", err.Error()))

		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", apperrors.ErrTransient, errors.Join(err, ctx.Err()))
		case <-time.After(s.backoff * time.Duration(attempt)):
		}
	}
	return fmt.Errorf("reconcile gave up after %d attempts: %w", s.maxAttempts, err)
}

func (s *reconcilerService) seen(ctx context.Context, logger *slog.Logger, eventID string) bool {
	if s.deduper == nil || eventID == "" {
		return false
	}
	seen, err := s.deduper.Seen(ctx, eventID)
	if err != nil {
		logger.Warn("Event dedup lookup failed", slog.String("error", err.Error()))
		return false
	}
	return seen
}

func (s *reconcilerService) mark(ctx context.Context, logger *slog.Logger, eventID string) {
	if s.deduper == nil || eventID == "" {
		return
	}
	if err := s.deduper.Mark(ctx, eventID, s.dedupTTL); err != nil {
		logger.Warn("Failed to remember processed event", slog.String("error", err.Error()))
	}
}

func (s *reconcilerService) GetBalance(ctx context.Context, walletID string) (*domain.LocalBalance, error) {
	ctx, cancel := s.WithTimeout(ctx)
	defer cancel()

	wallet, err := s.walletRepo.FindWalletByID(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to get wallet %s: %w", walletID, err)
	}
	pending, err := s.recordRepo.SumPendingByWallet(ctx, walletID)
	if err != nil {
		return nil, fmt.Errorf("failed to sum pending records of wallet %s: %w", walletID, err)
	}

	return &domain.LocalBalance{
		WalletID:     wallet.WalletID,
		UserID:       wallet.UserID,
		CurrencyCode: wallet.CurrencyCode,
		Available:    wallet.Balance,
		Pending:      pending,
	}, nil
}
