package domain

// Account represents a platform user that may own a Stripe Connect account.
type Account struct {
	AccountID              string `json:"accountID"` // Primary Key (UUID)
	AccountName            string `json:"accountName"`
	Email                  string `json:"email"`
	StripeConnectAccountID string `json:"stripeConnectAccountID"` // Empty until onboarding starts
	AuditFields
}

// HasConnectAccount reports whether the user has been linked to a Connect account.
func (a Account) HasConnectAccount() bool {
	return a.StripeConnectAccountID != ""
}
