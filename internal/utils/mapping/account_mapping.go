package mapping

import (
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/SscSPs/plot_sales_admin/internal/models"
)

// ToModelAccount converts a domain Account to a model Account
func ToModelAccount(d domain.Account) models.Account {
	return models.Account{
		AccountID:       d.AccountID,
		Name:            d.Name,
		Contact:         d.Contact,
		AssignedPlots:   d.AssignedPlots,
		DateAssigned:    d.DateAssigned,
		InitialDeposit:  d.InitialDeposit,
		PricePerPlot:    d.PricePerPlot,
		PaymentSchedule: d.PaymentSchedule,
		TotalAmountDue:  d.TotalAmountDue,
		TotalBalance:    d.TotalBalance,
		Status:          string(d.Status),
		AuditFields:     models.AuditFields(d.AuditFields), // identical fields, only tags differ
	}
}

// ToDomainAccount converts a model Account to a domain Account
func ToDomainAccount(m models.Account) domain.Account {
	return domain.Account{
		AccountID:       m.AccountID,
		Name:            m.Name,
		Contact:         m.Contact,
		AssignedPlots:   m.AssignedPlots,
		DateAssigned:    m.DateAssigned,
		InitialDeposit:  m.InitialDeposit,
		PricePerPlot:    m.PricePerPlot,
		PaymentSchedule: m.PaymentSchedule,
		TotalAmountDue:  m.TotalAmountDue,
		TotalBalance:    m.TotalBalance,
		Status:          domain.AccountStatus(m.Status),
		AuditFields:     domain.AuditFields(m.AuditFields),
	}
}

// ToDomainAccountSlice converts a slice of model Accounts to a slice of domain Accounts
func ToDomainAccountSlice(ms []models.Account) []domain.Account {
	ds := make([]domain.Account, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainAccount(m)
	}
	return ds
}
