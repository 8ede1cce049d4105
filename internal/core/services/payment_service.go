package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_sales_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/plot_sales_admin/internal/core/ports/services"
	"github.com/SscSPs/plot_sales_admin/internal/dto"
	"github.com/SscSPs/plot_sales_admin/internal/platform/config"
	"github.com/SscSPs/plot_sales_admin/internal/platform/metrics"
	"github.com/SscSPs/plot_sales_admin/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// paymentService records installments and keeps the account balance in step.
type paymentService struct {
	BaseService
	paymentRepo portsrepo.PaymentRepositoryWithTx
	accountRepo portsrepo.AccountRepositoryFacade
	policy      config.OverpaymentPolicy
	now         func() time.Time
}

// NewPaymentService creates a new payment service applying the given overpayment policy.
func NewPaymentService(paymentRepo portsrepo.PaymentRepositoryWithTx, accountRepo portsrepo.AccountRepositoryFacade, policy config.OverpaymentPolicy) portssvc.PaymentSvcFacade {
	return &paymentService{
		paymentRepo: paymentRepo,
		accountRepo: accountRepo,
		policy:      policy,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.PaymentSvcFacade = (*paymentService)(nil)

// RecordPayment inserts the payment, then reconciles and persists the account
// balance. The insert is rolled back when the account does not exist.
func (s *paymentService) RecordPayment(ctx context.Context, accountID string, req dto.RecordPaymentRequest, recordedBy string) (*domain.PaymentReceipt, error) {
	if !req.Amount.IsPositive() {
		metrics.PaymentsRecorded.WithLabelValues("rejected").Inc()
		return nil, fmt.Errorf("%w: payment amount must be positive", apperrors.ErrValidation)
	}

	now := s.now()
	payment := domain.Payment{
		PaymentID:   uuid.NewString(),
		AccountID:   accountID,
		Amount:      req.Amount,
		PaymentDate: now,
		Note:        req.Note,
		RecordedBy:  recordedBy,
		CreatedAt:   now,
	}
	if req.Date != nil {
		payment.PaymentDate = *req.Date
	}
	if rb := strings.TrimSpace(req.RecordedBy); rb != "" {
		payment.RecordedBy = rb
	}

	var receipt domain.PaymentReceipt
	err := s.inTx(ctx, s.paymentRepo, func(tx pgx.Tx) error {
		if err := s.paymentRepo.SavePaymentInTx(ctx, tx, payment); err != nil {
			return err
		}

		account, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}

		payments, err := s.paymentRepo.ListPaymentsByAccountIDInTx(ctx, tx, accountID)
		if err != nil {
			return err
		}

		rec := accounting.Reconcile(account.TotalAmountDue, account.InitialDeposit, domain.PaymentAmounts(payments), account.Status)
		if s.policy == config.OverpaymentReject && rec.Overpaid.IsPositive() {
			return fmt.Errorf("%w: payment exceeds the outstanding balance by %s", apperrors.ErrValidation, rec.Overpaid.StringFixed(2))
		}

		if err := s.accountRepo.UpdateAccountBalanceInTx(ctx, tx, accountID, rec.Balance, rec.Status, payment.RecordedBy, now); err != nil {
			return err
		}

		receipt = domain.PaymentReceipt{
			Payment:   payment,
			TotalPaid: rec.TotalPaid,
			Balance:   rec.Balance,
			Status:    rec.Status,
		}
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, apperrors.ErrNotFound), errors.Is(err, apperrors.ErrValidation):
			metrics.PaymentsRecorded.WithLabelValues("rejected").Inc()
		default:
			metrics.PaymentsRecorded.WithLabelValues("failed").Inc()
			s.LogError(ctx, err, "Failed to record payment", slog.String("account_id", accountID))
		}
		return nil, apperrors.AsPersistence(err, fmt.Sprintf("record payment for account %s", accountID))
	}

	metrics.PaymentsRecorded.WithLabelValues("recorded").Inc()
	s.LogInfo(ctx, "Payment recorded",
		slog.String("account_id", accountID),
		slog.String("payment_id", payment.PaymentID),
		slog.String("balance", receipt.Balance.String()),
		slog.String("status", string(receipt.Status)))
	return &receipt, nil
}

// ListPayments returns the payment history of an existing account.
func (s *paymentService) ListPayments(ctx context.Context, accountID string) ([]domain.Payment, error) {
	if _, err := s.accountRepo.FindAccountByID(ctx, accountID); err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByAccountID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}
	return payments, nil
}
