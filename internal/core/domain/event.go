package domain

import "fmt"

// EventKind is the lifecycle step a gateway event reports.
type EventKind string

const (
	EventCreated  EventKind = "created"
	EventPaid     EventKind = "paid"
	EventFailed   EventKind = "failed"
	EventCanceled EventKind = "canceled"
)

// ParseEventKind validates a raw kind string.
func ParseEventKind(s string) (EventKind, error) {
	switch k := EventKind(s); k {
	case EventCreated, EventPaid, EventFailed, EventCanceled:
		return k, nil
	}
	return "", fmt.Errorf("unknown event kind %q", s)
}

// GatewayObject is the kind of gateway object an event is about.
type GatewayObject string

const (
	ObjectTransfer GatewayObject = "transfer"
	ObjectPayout   GatewayObject = "payout"
)

// Direction maps the gateway object to the record direction it drives.
// Transfers into a connected account are deposits, payouts out of it are withdrawals.
func (o GatewayObject) Direction() Direction {
	if o == ObjectPayout {
		return Withdraw
	}
	return Deposit
}

// GatewayEvent is a verified, parsed webhook event.
type GatewayEvent struct {
	EventID          string // Gateway event id (evt_...)
	Type             string // Raw type, e.g. payout.failed
	Object           GatewayObject
	Kind             EventKind
	ExternalID       string // Transfer or payout id
	ConnectAccountID string // Set for events from connected accounts
	Amount           int64  // Minor units
	Currency         string
	Failure          FailureInfo
}
