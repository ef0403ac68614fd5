package mapping

import (
	"github.com/SscSPs/stripe_wallet_app/internal/core/domain"
	"github.com/SscSPs/stripe_wallet_app/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:              d.AccountID,
		AccountName:            d.AccountName,
		Email:                  d.Email,
		StripeConnectAccountID: NullString(d.StripeConnectAccountID),
		AuditFields:            ToModelAuditFields(d.AuditFields),
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:              m.AccountID,
		AccountName:            m.AccountName,
		Email:                  m.Email,
		StripeConnectAccountID: m.StripeConnectAccountID.String,
		AuditFields:            ToDomainAuditFields(m.AuditFields),
	}
}
