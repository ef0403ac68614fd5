package models

import (
	"database/sql"

	"github.com/shopspring/decimal"
)

// Wallet is the wallets table row.
type Wallet struct {
	WalletID         string          `db:"wallet_id"`
	UserID           string          `db:"user_id"`
	UserName         string          `db:"user_name"`
	Balance          decimal.Decimal `db:"balance"`
	CurrencyCode     string          `db:"currency_code"`
	ConnectAccountID sql.NullString  `db:"connect_account_id"`
	Version          int64           `db:"version"`
	AuditFields
}
