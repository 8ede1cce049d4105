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
	"github.com/SscSPs/plot_sales_admin/internal/platform/metrics"
	"github.com/SscSPs/plot_sales_admin/internal/utils/accounting"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// accountService implements the account mutation orchestrator and account reads.
type accountService struct {
	BaseService
	accountRepo portsrepo.AccountRepositoryWithTx
	paymentRepo portsrepo.PaymentRepositoryFacade
	plotSync    *PlotOwnershipSynchronizer
	now         func() time.Time
}

// NewAccountService creates a new account service.
func NewAccountService(
	accountRepo portsrepo.AccountRepositoryWithTx,
	paymentRepo portsrepo.PaymentRepositoryFacade,
	plotSync *PlotOwnershipSynchronizer,
) portssvc.AccountSvcFacade {
	return &accountService{
		accountRepo: accountRepo,
		paymentRepo: paymentRepo,
		plotSync:    plotSync,
		now:         func() time.Time { return time.Now().UTC() },
	}
}

var _ portssvc.AccountSvcFacade = (*accountService)(nil)

// CreateAccount validates the request, prices the assigned plots and stores the
// account together with its plot ownership in one transaction.
func (s *accountService) CreateAccount(ctx context.Context, req dto.CreateAccountRequest, adminID string) (*domain.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	totalDue, err := accounting.SumPlotPrices(req.AssignedPlots, req.PricePerPlot)
	if err != nil {
		return nil, err
	}
	rec := accounting.Reconcile(totalDue, *req.InitialDeposit, nil, domain.StatusActive)

	now := s.now()
	account := domain.Account{
		AccountID:       uuid.NewString(),
		Name:            strings.TrimSpace(req.Name),
		Contact:         strings.TrimSpace(req.Contact),
		AssignedPlots:   strings.TrimSpace(req.AssignedPlots),
		DateAssigned:    *req.DateAssigned,
		InitialDeposit:  *req.InitialDeposit,
		PricePerPlot:    strings.TrimSpace(req.PricePerPlot),
		PaymentSchedule: req.PaymentSchedule,
		TotalAmountDue:  totalDue,
		TotalBalance:    rec.Balance,
		Status:          rec.Status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     adminID,
			LastUpdatedAt: now,
			LastUpdatedBy: adminID,
		},
	}

	err = s.inTx(ctx, s.accountRepo, func(tx pgx.Tx) error {
		if err := s.accountRepo.SaveAccountInTx(ctx, tx, account); err != nil {
			return err
		}
		_, err := s.plotSync.SyncOwnership(ctx, tx, account.AccountID, nil, account.AssignedPlots)
		return err
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to create account", slog.String("contact", account.Contact))
		}
		return nil, apperrors.AsPersistence(err, "create account")
	}

	metrics.AccountMutations.WithLabelValues("create").Inc()
	s.LogInfo(ctx, "Account created", slog.String("account_id", account.AccountID))
	return &account, nil
}

// applyAccountUpdate overwrites the fields present in req.
func applyAccountUpdate(acc *domain.Account, req dto.UpdateAccountRequest) {
	if req.Name != nil {
		acc.Name = strings.TrimSpace(*req.Name)
	}
	if req.Contact != nil {
		acc.Contact = strings.TrimSpace(*req.Contact)
	}
	if req.AssignedPlots != nil {
		acc.AssignedPlots = strings.TrimSpace(*req.AssignedPlots)
	}
	if req.DateAssigned != nil {
		acc.DateAssigned = *req.DateAssigned
	}
	if req.InitialDeposit != nil {
		acc.InitialDeposit = *req.InitialDeposit
	}
	if req.PricePerPlot != nil {
		acc.PricePerPlot = strings.TrimSpace(*req.PricePerPlot)
	}
	if req.PaymentSchedule != nil {
		acc.PaymentSchedule = *req.PaymentSchedule
	}
	if req.TotalAmountDue != nil {
		acc.TotalAmountDue = *req.TotalAmountDue
	}
	if req.Status != nil {
		acc.Status = *req.Status
	}
}

// UpdateAccount applies a partial update. Plot ownership is resynced when the plot
// list is present and the balance is reconciled when a money field is present.
func (s *accountService) UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, adminID string) (*domain.Account, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	var updated domain.Account
	err := s.inTx(ctx, s.accountRepo, func(tx pgx.Tx) error {
		existing, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID)
		if err != nil {
			return err
		}

		updated = *existing
		applyAccountUpdate(&updated, req)
		updated.LastUpdatedAt = s.now()
		updated.LastUpdatedBy = adminID

		if err := s.accountRepo.UpdateAccountInTx(ctx, tx, updated); err != nil {
			return err
		}

		if req.AssignedPlots != nil {
			previous := existing.AssignedPlots
			if _, err := s.plotSync.SyncOwnership(ctx, tx, accountID, &previous, updated.AssignedPlots); err != nil {
				return err
			}
		}

		if req.InitialDeposit != nil || req.TotalAmountDue != nil {
			payments, err := s.paymentRepo.ListPaymentsByAccountIDInTx(ctx, tx, accountID)
			if err != nil {
				return err
			}
			rec := accounting.Reconcile(updated.TotalAmountDue, updated.InitialDeposit, domain.PaymentAmounts(payments), updated.Status)
			if err := s.accountRepo.UpdateAccountBalanceInTx(ctx, tx, accountID, rec.Balance, rec.Status, adminID, updated.LastUpdatedAt); err != nil {
				return err
			}
			updated.TotalBalance = rec.Balance
			updated.Status = rec.Status
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to update account", slog.String("account_id", accountID))
		}
		return nil, apperrors.AsPersistence(err, fmt.Sprintf("update account %s", accountID))
	}

	metrics.AccountMutations.WithLabelValues("update").Inc()
	s.LogInfo(ctx, "Account updated", slog.String("account_id", accountID))
	return &updated, nil
}

// DeleteAccount releases the account's plots, purges its payments and removes it.
func (s *accountService) DeleteAccount(ctx context.Context, accountID string, adminID string) error {
	var released []string
	var purged int64
	err := s.inTx(ctx, s.accountRepo, func(tx pgx.Tx) error {
		if _, err := s.accountRepo.FindAccountByIDForUpdate(ctx, tx, accountID); err != nil {
			return err
		}

		var err error
		released, err = s.plotSync.Release(ctx, tx, accountID)
		if err != nil {
			return err
		}
		purged, err = s.paymentRepo.DeletePaymentsByAccountIDInTx(ctx, tx, accountID)
		if err != nil {
			return err
		}
		return s.accountRepo.DeleteAccountInTx(ctx, tx, accountID)
	})
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to delete account", slog.String("account_id", accountID))
		}
		return apperrors.AsPersistence(err, fmt.Sprintf("delete account %s", accountID))
	}

	metrics.AccountMutations.WithLabelValues("delete").Inc()
	s.LogInfo(ctx, "Account deleted",
		slog.String("account_id", accountID),
		slog.String("deleted_by", adminID),
		slog.Int("plots_released", len(released)),
		slog.Int64("payments_purged", purged))
	return nil
}

// GetAccountByID retrieves an account by ID.
func (s *accountService) GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accountRepo.FindAccountByID(ctx, accountID)
	if err != nil {
		// ErrNotFound is an expected outcome
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find account by ID", slog.String("account_id", accountID))
		}
		return nil, err
	}
	return account, nil
}

// ListAccounts retrieves a page of accounts.
func (s *accountService) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	accounts, err := s.accountRepo.ListAccounts(ctx, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list accounts", slog.Int("limit", limit), slog.Int("offset", offset))
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	if accounts == nil {
		return []domain.Account{}, nil
	}
	s.LogDebug(ctx, "Accounts listed", slog.Int("count", len(accounts)))
	return accounts, nil
}

// GetAccountStatement returns the account, its payments and totals recomputed from them.
func (s *accountService) GetAccountStatement(ctx context.Context, accountID string) (*dto.AccountStatement, error) {
	account, err := s.GetAccountByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	payments, err := s.paymentRepo.ListPaymentsByAccountID(ctx, accountID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list payments for statement", slog.String("account_id", accountID))
		return nil, fmt.Errorf("failed to list payments: %w", err)
	}

	rec := accounting.Reconcile(account.TotalAmountDue, account.InitialDeposit, domain.PaymentAmounts(payments), account.Status)
	return &dto.AccountStatement{
		Account:   *account,
		Payments:  payments,
		TotalPaid: rec.TotalPaid,
		Balance:   rec.Balance,
		Status:    rec.Status,
	}, nil
}
