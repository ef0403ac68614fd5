package models

import "database/sql"

// Account is the accounts table row.
type Account struct {
	AccountID              string         `db:"account_id"`
	AccountName            string         `db:"account_name"`
	Email                  string         `db:"email"`
	StripeConnectAccountID sql.NullString `db:"stripe_connect_account_id"` // Nullable until onboarding
	AuditFields
}
