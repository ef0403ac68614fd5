package mapping

import (
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	"github.com/SscSPs/stripe_wallet_app/internal/models"
)

// ToModelRecord converts a domain TransactionRecord to its row form.
func ToModelRecord(d domain.TransactionRecord) models.TransactionRecord {
	return models.TransactionRecord{
		RecordID:         d.RecordID,
		WalletID:         d.WalletID,
		UserID:           d.UserID,
		ExternalID:       d.ExternalID,
		Amount:           d.Amount,
		CurrencyCode:     d.CurrencyCode,
		Direction:        string(d.Direction),
		Status:           string(d.Status),
		AppliedToBalance: d.AppliedToBalance,
		RequestedAt:      d.RequestedAt,
		CompletedAt:      NullTime(d.CompletedAt),
		FailureCode:      NullString(d.FailureCode),
		FailureMessage:   NullString(d.FailureMessage),
		Method:           NullString(d.Method),
		Channel:          NullString(d.Channel),
		IPAddress:        NullString(d.IPAddress),
		BankAccountID:    NullString(d.BankAccountID),
		Remark:           NullString(d.Remark),
		Version:          d.Version,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainRecord converts a row into a domain TransactionRecord.
func ToDomainRecord(m models.TransactionRecord) domain.TransactionRecord {
	return domain.TransactionRecord{
		RecordID:         m.RecordID,
		WalletID:         m.WalletID,
		UserID:           m.UserID,
		ExternalID:       m.ExternalID,
		Amount:           m.Amount,
		CurrencyCode:     m.CurrencyCode,
		Direction:        domain.Direction(m.Direction),
		Status:           domain.RecordStatus(m.Status),
		AppliedToBalance: m.AppliedToBalance,
		RequestedAt:      m.RequestedAt,
		CompletedAt:      TimePtr(m.CompletedAt),
		FailureCode:      m.FailureCode.String,
		FailureMessage:   m.FailureMessage.String,
		Method:           m.Method.String,
		Channel:          m.Channel.String,
		IPAddress:        m.IPAddress.String,
		BankAccountID:    m.BankAccountID.String,
		Remark:           m.Remark.String,
		Version:          m.Version,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
