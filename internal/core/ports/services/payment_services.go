package services

import (
	"context"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/SscSPs/plot_sales_admin/internal/dto"
)

// PaymentSvcFacade defines payment recording and history operations
type PaymentSvcFacade interface {
	// RecordPayment appends a payment and refreshes the account balance atomically.
	RecordPayment(ctx context.Context, accountID string, req dto.RecordPaymentRequest, recordedBy string) (*domain.PaymentReceipt, error)

	// ListPayments returns the payment history of an account.
	ListPayments(ctx context.Context, accountID string) ([]domain.Payment, error)
}
