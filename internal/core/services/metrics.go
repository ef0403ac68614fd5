package services

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Reconciler outcomes
const (
	outcomeApplied   = "applied"
	outcomeNoop      = "noop"
	outcomeDuplicate = "duplicate"
	outcomeNotFound  = "not_found"
	outcomeRejected  = "rejected"
	outcomeFailed    = "failed"
)

var (
	reconciledEvents = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_reconciler_events_total",
		Help: "Gateway events handled by the reconciler, by kind and outcome.",
	}, []string{"kind", "outcome"})

	balanceReversals = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_reconciler_reversals_total",
		Help: "Optimistic balance changes undone after a failed or canceled transfer/payout.",
	}, []string{"direction"})

	reconcileRetries = promauto.NewCounter(prometheus.CounterOpts{
		Name: "wallet_reconciler_retries_total",
		Help: "Reconcile attempts retried after a conflict or transient store failure.",
	})

	walletMutations = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "wallet_optimistic_mutations_total",
		Help: "Wallet balance changes recorded when a transfer or payout is initiated.",
	}, []string{"direction"})
)
