package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Wallet is the local mirror of a user's spendable balance.
type Wallet struct {
	WalletID         string          `json:"walletID"` // Primary Key (UUID)
	UserID           string          `json:"userID"`   // FK -> accounts.account_id, unique
	UserName         string          `json:"userName"`
	Balance          decimal.Decimal `json:"balance"`      // Minor currency units, signed
	CurrencyCode     string          `json:"currencyCode"` // Lower-case, as reported by Stripe
	ConnectAccountID string          `json:"connectAccountID"`
	Version          int64           `json:"-"` // Optimistic concurrency counter
	AuditFields
}

// ApplyDelta adds delta to the balance. Callers persist the wallet together with the
// record mutation that produced the delta.
func (w *Wallet) ApplyDelta(delta decimal.Decimal, by string, now time.Time) {
	w.Balance = w.Balance.Add(delta)
	w.LastUpdatedAt = now
	w.LastUpdatedBy = by
}

// Covers reports whether the balance is at least amount.
func (w Wallet) Covers(amount decimal.Decimal) bool {
	return w.Balance.GreaterThanOrEqual(amount)
}

// LocalBalance is the wallet balance as mirrored locally.
// Authoritative values live at the gateway.
type LocalBalance struct {
	WalletID     string          `json:"walletID"`
	UserID       string          `json:"userID"`
	CurrencyCode string          `json:"currencyCode"`
	Available    decimal.Decimal `json:"available"`
	Pending      decimal.Decimal `json:"pending"` // Net signed amount of PENDING records
}
