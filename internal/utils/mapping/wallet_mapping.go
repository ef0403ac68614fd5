package mapping

import (
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	"github.com/SscSPs/stripe_wallet_app/internal/models"
)

func ToModelWallet(d domain.Wallet) models.Wallet {
	return models.Wallet{
		WalletID:         d.WalletID,
		UserID:           d.UserID,
		UserName:         d.UserName,
		Balance:          d.Balance,
		CurrencyCode:     d.CurrencyCode,
		ConnectAccountID: NullString(d.ConnectAccountID),
		Version:          d.Version,
		AuditFields:      ToModelAuditFields(d.AuditFields),
	}
}

func ToDomainWallet(m models.Wallet) domain.Wallet {
	return domain.Wallet{
		WalletID:         m.WalletID,
		UserID:           m.UserID,
		UserName:         m.UserName,
		Balance:          m.Balance,
		CurrencyCode:     m.CurrencyCode,
		ConnectAccountID: m.ConnectAccountID.String,
		Version:          m.Version,
		AuditFields:      ToDomainAuditFields(m.AuditFields),
	}
}
