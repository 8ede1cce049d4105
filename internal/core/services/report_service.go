package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_sales_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/plot_sales_admin/internal/core/ports/services"
	"github.com/SscSPs/plot_sales_admin/internal/utils/accounting"
	"github.com/xuri/excelize/v2"
)

// AccountsSheet is the worksheet name of the accounts export.
const AccountsSheet = "Accounts"

const exportPageSize = 500

var accountExportHeaders = []string{
	"Name", "Contact", "Plots", "Date Assigned", "Total Due", "Initial Deposit", "Total Paid", "Balance", "Status",
}

type reportingService struct {
	BaseService
	accountRepo portsrepo.AccountReader
	paymentRepo portsrepo.PaymentReader
}

// NewReportingService creates a new reporting service.
func NewReportingService(accountRepo portsrepo.AccountReader, paymentRepo portsrepo.PaymentReader) portssvc.ReportingSvcFacade {
	return &reportingService{accountRepo: accountRepo, paymentRepo: paymentRepo}
}

var _ portssvc.ReportingSvcFacade = (*reportingService)(nil)

// ExportAccounts writes every account with its recomputed totals to a workbook.
func (s *reportingService) ExportAccounts(ctx context.Context) (*excelize.File, error) {
	var accounts []domain.Account
	for offset := 0; ; offset += exportPageSize {
		page, err := s.accountRepo.ListAccounts(ctx, exportPageSize, offset)
		if err != nil {
			s.LogError(ctx, err, "Failed to list accounts for export")
			return nil, fmt.Errorf("failed to list accounts: %w", err)
		}
		accounts = append(accounts, page...)
		if len(page) < exportPageSize {
			break
		}
	}

	f := excelize.NewFile()
	index, err := f.NewSheet(AccountsSheet)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return nil, fmt.Errorf("failed to drop default sheet: %w", err)
	}

	if err := f.SetSheetRow(AccountsSheet, "A1", &accountExportHeaders); err != nil {
		return nil, fmt.Errorf("failed to write header: %w", err)
	}

	for i, acc := range accounts {
		payments, err := s.paymentRepo.ListPaymentsByAccountID(ctx, acc.AccountID)
		if err != nil {
			s.LogError(ctx, err, "Failed to list payments for export", slog.String("account_id", acc.AccountID))
			return nil, fmt.Errorf("failed to list payments: %w", err)
		}
		rec := accounting.Reconcile(acc.TotalAmountDue, acc.InitialDeposit, domain.PaymentAmounts(payments), acc.Status)

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []any{
			acc.Name,
			acc.Contact,
			acc.AssignedPlots,
			acc.DateAssigned.Format("2006-01-02"),
			acc.TotalAmountDue.InexactFloat64(),
			acc.InitialDeposit.InexactFloat64(),
			rec.TotalPaid.InexactFloat64(),
			rec.Balance.InexactFloat64(),
			string(rec.Status),
		}
		if err := f.SetSheetRow(AccountsSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("failed to write row: %w", err)
		}
	}

	_ = f.SetColWidth(AccountsSheet, "A", "B", 24)
	_ = f.SetColWidth(AccountsSheet, "C", "C", 30)
	_ = f.SetColWidth(AccountsSheet, "D", "I", 15)

	s.LogInfo(ctx, "Accounts exported", slog.Int("count", len(accounts)))
	return f, nil
}
