package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is the transaction_records table row.
// Optional text columns are nullable so that empty values do not take index space.
type TransactionRecord struct {
	RecordID         string          `db:"record_id"`
	WalletID         string          `db:"wallet_id"`
	UserID           string          `db:"user_id"`
	ExternalID       string          `db:"external_id"`
	Amount           decimal.Decimal `db:"amount"`
	CurrencyCode     string          `db:"currency_code"`
	Direction        string          `db:"direction"`
	Status           string          `db:"status"`
	AppliedToBalance bool            `db:"applied_to_balance"`
	RequestedAt      time.Time       `db:"requested_at"`
	CompletedAt      sql.NullTime    `db:"completed_at"`
	FailureCode      sql.NullString  `db:"failure_code"`
	FailureMessage   sql.NullString  `db:"failure_message"`
	Method           sql.NullString  `db:"method"`
	Channel          sql.NullString  `db:"channel"`
	IPAddress        sql.NullString  `db:"ip_address"`
	BankAccountID    sql.NullString  `db:"bank_account_id"`
	Remark           sql.NullString  `db:"remark"`
	Version          int64           `db:"version"`
	AuditFields
}
