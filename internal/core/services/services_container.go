package services

import (
	portsrepo "github.com/SscSPs/stripe_wallet_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/stripe_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/stripe_wallet_app/internal/platform/config"
)

// Adapters holds the outbound dependencies that are not repositories.
type Adapters struct {
	Gateway portssvc.PaymentGateway
	Events  portssvc.EventParser
	Deduper portsrepo.EventDeduper // Optional
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, adapters Adapters) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{Events: adapters.Events}

	reconcilerOpts := []ReconcilerOption{
		WithRetryPolicy(cfg.ReconcileMaxRetries, cfg.ReconcileRetryBackoff),
		WithAttemptTimeout(cfg.StoreTimeout),
	}
	if adapters.Deduper != nil {
		reconcilerOpts = append(reconcilerOpts, WithEventDeduper(adapters.Deduper, cfg.EventDedupTTL))
	}
	container.Reconciler = NewReconcilerService(repos.Ledger, repos.WalletRepo, repos.RecordRepo, reconcilerOpts...)

	container.Connect = NewConnectService(
		adapters.Gateway,
		repos.AccountRepo,
		repos.WalletRepo,
		repos.Ledger,
		WithConnectTimeouts(cfg.StoreTimeout, cfg.GatewayTimeout),
		WithConnectDefaults(cfg.DefaultCurrency, cfg.StripeDefaultCountry),
		WithBalanceReader(container.Reconciler),
	)

	container.Payments = NewPlatformPaymentService(
		adapters.Gateway,
		cfg.GatewayTimeout,
		WithPlatformAdmins(cfg.PlatformAdminUserIDs...),
		WithPaymentCurrency(cfg.DefaultCurrency),
	)

	container.Records = NewRecordQueryService(repos.RecordRepo, cfg.StoreTimeout)
	container.Statistics = NewStatisticsService(repos.RecordRepo, cfg.StoreTimeout)

	return container
}
