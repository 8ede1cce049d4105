package repositories

import (
	"context"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PaymentReader defines read operations for payment data
type PaymentReader interface {
	// ListPaymentsByAccountID retrieves all payments of an account, oldest first.
	ListPaymentsByAccountID(ctx context.Context, accountID string) ([]domain.Payment, error)
}

// PaymentTransactionSupport defines payment operations that run inside a caller-owned transaction
type PaymentTransactionSupport interface {
	// SavePaymentInTx inserts a payment row.
	SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error

	// ListPaymentsByAccountIDInTx reads the payment set as seen by the transaction.
	ListPaymentsByAccountIDInTx(ctx context.Context, tx pgx.Tx, accountID string) ([]domain.Payment, error)

	// DeletePaymentsByAccountIDInTx removes every payment of an account and returns how many were removed.
	DeletePaymentsByAccountIDInTx(ctx context.Context, tx pgx.Tx, accountID string) (int64, error)
}

// PaymentRepositoryFacade combines all payment-related repository interfaces
type PaymentRepositoryFacade interface {
	PaymentReader
	PaymentTransactionSupport
}

// PaymentRepositoryWithTx extends PaymentRepositoryFacade with transaction capabilities
type PaymentRepositoryWithTx interface {
	PaymentRepositoryFacade
	TransactionManager
}
