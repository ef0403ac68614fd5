package dto

// CreatePaymentIntentRequest starts a card checkout into the platform balance.
type CreatePaymentIntentRequest struct {
	Amount      int64             `json:"amount" binding:"required,gt=0"` // Minor units
	Currency    string            `json:"currency" binding:"omitempty,len=3"`
	Description string            `json:"description" binding:"omitempty,max=500"`
	CustomerID  string            `json:"customerId"`
	Confirm     bool              `json:"confirm"`
	Metadata    map[string]string `json:"metadata" binding:"omitempty,max=20"`
}

// CreatePlatformPayoutRequest pays out from the platform balance to one of its bank accounts.
type CreatePlatformPayoutRequest struct {
	Amount              int64             `json:"amount" binding:"required,gt=0"`
	Currency            string            `json:"currency" binding:"omitempty,len=3"`
	Destination         string            `json:"destination"`
	Method              string            `json:"method" binding:"omitempty,oneof=standard instant"`
	SourceType          string            `json:"sourceType" binding:"omitempty,oneof=bank_account card fpx"`
	StatementDescriptor string            `json:"statementDescriptor" binding:"omitempty,max=22"`
	Description         string            `json:"description" binding:"omitempty,max=500"`
	Metadata            map[string]string `json:"metadata" binding:"omitempty,max=20"`
}
