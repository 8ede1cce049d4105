package mapping

import (
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/SscSPs/plot_sales_admin/internal/models"
)

// ToModelPayment converts a domain Payment to a model Payment
func ToModelPayment(d domain.Payment) models.Payment {
	return models.Payment{
		PaymentID:   d.PaymentID,
		AccountID:   d.AccountID,
		Amount:      d.Amount,
		PaymentDate: d.PaymentDate,
		Note:        d.Note,
		RecordedBy:  d.RecordedBy,
		CreatedAt:   d.CreatedAt,
	}
}

// ToDomainPayment converts a model Payment to a domain Payment
func ToDomainPayment(m models.Payment) domain.Payment {
	return domain.Payment{
		PaymentID:   m.PaymentID,
		AccountID:   m.AccountID,
		Amount:      m.Amount,
		PaymentDate: m.PaymentDate,
		Note:        m.Note,
		RecordedBy:  m.RecordedBy,
		CreatedAt:   m.CreatedAt,
	}
}
