package domain

import "time"

// ConnectAccount is the gateway view of a connected account.
type ConnectAccount struct {
	ID               string `json:"id"`
	Email            string `json:"email"`
	Country          string `json:"country"`
	DetailsSubmitted bool   `json:"detailsSubmitted"`
	ChargesEnabled   bool   `json:"chargesEnabled"`
	PayoutsEnabled   bool   `json:"payoutsEnabled"`
}

// TOSAcceptance records the connected account holder accepting the gateway terms.
type TOSAcceptance struct {
	IP   string
	Date time.Time
}

// ConnectAccountParams are the inputs for creating a connected account.
type ConnectAccountParams struct {
	UserID       string
	Email        string
	Country      string
	BusinessName string
	TOS          *TOSAcceptance
}

// AccountLink is a hosted onboarding link.
type AccountLink struct {
	URL       string    `json:"url"`
	ExpiresAt time.Time `json:"expiresAt"`
}

// TransferParams move funds from the platform balance to a connected account.
type TransferParams struct {
	Amount         int64
	Currency       string
	Destination    string
	Description    string
	IdempotencyKey string
	Metadata       map[string]string
}

// Transfer is the gateway view of a transfer.
type Transfer struct {
	ID          string `json:"id"`
	Amount      int64  `json:"amount"`
	Currency    string `json:"currency"`
	Destination string `json:"destination"`
	Reversed    bool   `json:"reversed"`
}

// PayoutParams move funds from a connected account to its external bank account.
// An empty ConnectAccountID pays out from the platform balance.
type PayoutParams struct {
	ConnectAccountID    string
	Amount              int64
	Currency            string
	Destination         string // External account id, empty for the default one
	Method              string // standard or instant
	SourceType          string // bank_account, card or fpx; empty lets Stripe pick
	StatementDescriptor string
	Description         string
	IdempotencyKey      string
	Metadata            map[string]string
}

// Payout is the gateway view of a payout.
type Payout struct {
	ID             string     `json:"id"`
	Amount         int64      `json:"amount"`
	Currency       string     `json:"currency"`
	Status         string     `json:"status"`
	Method         string     `json:"method"`
	Destination    string     `json:"destination,omitempty"`
	ArrivalDate    *time.Time `json:"arrivalDate,omitempty"`
	FailureCode    string     `json:"failureCode,omitempty"`
	FailureMessage string     `json:"failureMessage,omitempty"`
}

// PaymentIntentParams collect a card payment into the platform balance.
type PaymentIntentParams struct {
	Amount         int64
	Currency       string
	Description    string
	CustomerID     string
	Confirm        bool
	IdempotencyKey string
	Metadata       map[string]string
}

// PaymentIntent is the gateway view of a payment intent. ClientSecret is handed to the
// browser, which confirms the payment with Stripe.js.
type PaymentIntent struct {
	ID           string `json:"paymentIntentId"`
	ClientSecret string `json:"clientSecret"`
	Amount       int64  `json:"amount"`
	Currency     string `json:"currency"`
	Status       string `json:"status"`
}

// MoneyAmount is an amount in minor units of one currency.
type MoneyAmount struct {
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// GatewayBalance is the balance of a connected account as the gateway reports it.
type GatewayBalance struct {
	Available []MoneyAmount `json:"available"`
	Pending   []MoneyAmount `json:"pending"`
}

// BankAccount is an external account attached to a connected account.
type BankAccount struct {
	ID                string `json:"id"`
	BankName          string `json:"bankName"`
	Last4             string `json:"last4"`
	Country           string `json:"country"`
	Currency          string `json:"currency"`
	Status            string `json:"status"`
	AccountHolderName string `json:"accountHolderName,omitempty"`
}
