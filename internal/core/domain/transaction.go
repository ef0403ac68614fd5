package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Direction tells whether a record moves money into or out of the wallet.
type Direction string

const (
	Deposit  Direction = "DEPOSIT"
	Withdraw Direction = "WITHDRAW"
)

// RecordStatus is the lifecycle state of a TransactionRecord.
type RecordStatus string

const (
	StatusPending   RecordStatus = "PENDING"
	StatusSuccess   RecordStatus = "SUCCESS"
	StatusFailed    RecordStatus = "FAILED"
	StatusCancelled RecordStatus = "CANCELLED" // Deposit cancelled or reversed
	StatusRejected  RecordStatus = "REJECTED"  // Withdraw cancelled
)

// IsReversal reports whether the status means the optimistic balance change was undone.
func (s RecordStatus) IsReversal() bool {
	return s == StatusFailed || s == StatusCancelled || s == StatusRejected
}

// Valid reports whether s is a known status.
func (s RecordStatus) Valid() bool {
	switch s {
	case StatusPending, StatusSuccess, StatusFailed, StatusCancelled, StatusRejected:
		return true
	}
	return false
}

// CanceledStatus is the terminal status a canceled event moves a record to.
func (d Direction) CanceledStatus() RecordStatus {
	if d == Withdraw {
		return StatusRejected
	}
	return StatusCancelled
}

// TransactionRecord is the audit trail row of one deposit or withdrawal attempt,
// keyed by the gateway's transfer/payout id.
type TransactionRecord struct {
	RecordID         string          `json:"recordID"` // Primary Key (UUID)
	WalletID         string          `json:"walletID"` // FK -> wallets.wallet_id
	UserID           string          `json:"userID"`
	ExternalID       string          `json:"externalID"` // Stripe transfer or payout id, unique
	Amount           decimal.Decimal `json:"amount"`     // Positive, minor units
	CurrencyCode     string          `json:"currencyCode"`
	Direction        Direction       `json:"direction"`
	Status           RecordStatus    `json:"status"`
	AppliedToBalance bool            `json:"appliedToBalance"`
	RequestedAt      time.Time       `json:"requestedAt"`
	CompletedAt      *time.Time      `json:"completedAt,omitempty"`
	FailureCode      string          `json:"failureCode,omitempty"`
	FailureMessage   string          `json:"failureMessage,omitempty"`
	Method           string          `json:"method,omitempty"`
	Channel          string          `json:"channel,omitempty"`
	IPAddress        string          `json:"ipAddress,omitempty"`
	BankAccountID    string          `json:"bankAccountID,omitempty"`
	Remark           string          `json:"remark,omitempty"`
	Version          int64           `json:"-"`
	AuditFields
}

// AppliedDelta is the balance change made when the record is created.
func (r TransactionRecord) AppliedDelta() decimal.Decimal {
	if r.Direction == Withdraw {
		return r.Amount.Neg()
	}
	return r.Amount
}

// SignedPending is AppliedDelta for records still PENDING and zero otherwise.
func (r TransactionRecord) SignedPending() decimal.Decimal {
	if r.Status != StatusPending || !r.AppliedToBalance {
		return decimal.Zero
	}
	return r.AppliedDelta()
}

// FailureInfo is the optional failure detail carried by failed events.
type FailureInfo struct {
	Code    string
	Message string
}

// Transition describes what ApplyEvent changed.
type Transition struct {
	From         RecordStatus
	To           RecordStatus
	Changed      bool            // Record fields must be persisted
	BalanceDelta decimal.Decimal // To be added to the owning wallet
	Reversed     bool            // The optimistic balance change was undone
}

// ApplyEvent moves the record through its state machine.
//
// created is a status echo and never regresses a terminal record. paid completes a
// pending record. failed and canceled reverse the optimistic balance change once:
// the AppliedToBalance flag is cleared together with the reversal, so a replay finds
// nothing left to undo.
func (r *TransactionRecord) ApplyEvent(kind EventKind, failure FailureInfo, by string, now time.Time) Transition {
	t := Transition{From: r.Status, To: r.Status, BalanceDelta: decimal.Zero}

	switch kind {
	case EventCreated:
		return t
	case EventPaid:
		if r.Status != StatusPending {
			return t
		}
		r.Status = StatusSuccess
		r.CompletedAt = &now
	case EventFailed, EventCanceled:
		if r.Status.IsReversal() && !r.AppliedToBalance {
			return t
		}
		if kind == EventFailed {
			r.Status = StatusFailed
			r.FailureCode = failure.Code
			r.FailureMessage = failure.Message
		} else {
			r.Status = r.Direction.CanceledStatus()
			if failure.Message != "" {
				r.FailureMessage = failure.Message
			}
		}
		r.CompletedAt = &now
		if r.AppliedToBalance {
			t.BalanceDelta = r.AppliedDelta().Neg()
			t.Reversed = true
			r.AppliedToBalance = false
		}
	default:
		return t
	}

	r.LastUpdatedAt = now
	r.LastUpdatedBy = by
	t.To = r.Status
	t.Changed = true
	return t
}
