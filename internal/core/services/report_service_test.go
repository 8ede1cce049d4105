package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/plot_sales_admin/internal/core/services"
	"github.com/SscSPs/plot_sales_admin/internal/dto"
	"github.com/SscSPs/plot_sales_admin/internal/platform/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportAccounts(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	store.addPlots("A1", "B1")
	accounts := services.NewAccountService(store, store, services.NewPlotOwnershipSynchronizer(store, config.PlotMatchLenient))
	payments := services.NewPaymentService(store, store, config.OverpaymentClamp)

	jane, err := accounts.CreateAccount(ctx, createRequest("Jane", "0700", "A1", "1000", 200), testAdminID)
	require.NoError(t, err)
	_, err = accounts.CreateAccount(ctx, createRequest("Abe", "0701", "B1", "500", 500), testAdminID)
	require.NoError(t, err)
	_, err = payments.RecordPayment(ctx, jane.AccountID, dto.RecordPaymentRequest{Amount: dec(300)}, "ops")
	require.NoError(t, err)

	f, err := services.NewReportingService(store, store).ExportAccounts(ctx)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(services.AccountsSheet)
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "Name", rows[0][0])
	assert.Equal(t, []string{"Abe", "0701", "B1", "2024-03-01", "500", "500", "500", "0", "Completed"}, rows[1])
	assert.Equal(t, []string{"Jane", "0700", "A1", "2024-03-01", "1000", "200", "500", "500", "Active"}, rows[2])
	assert.Equal(t, []string{services.AccountsSheet}, f.GetSheetList())
}
