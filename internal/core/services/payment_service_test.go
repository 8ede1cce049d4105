package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/SscSPs/plot_sales_admin/internal/core/services"
	"github.com/SscSPs/plot_sales_admin/internal/dto"
	"github.com/SscSPs/plot_sales_admin/internal/platform/config"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func seedAccount(t *testing.T, store *memStore, id string, due, deposit int64) {
	t.Helper()
	require.NoError(t, store.SaveAccountInTx(context.Background(), nil, domain.Account{
		AccountID:      id,
		Name:           "Account " + id,
		Contact:        "contact-" + id,
		TotalAmountDue: dec(due),
		InitialDeposit: dec(deposit),
		TotalBalance:   dec(due - deposit),
		Status:         domain.StatusActive,
	}))
}

func TestRecordPayment_BalanceScenario(t *testing.T) {
	ctx := context.Background()
	store := newMemStore()
	seedAccount(t, store, "acc-1", 1_000_000, 200_000)
	svc := services.NewPaymentService(store, store, config.OverpaymentClamp)

	var receipt *domain.PaymentReceipt
	var err error
	for _, amount := range []int64{300_000, 100_000} {
		receipt, err = svc.RecordPayment(ctx, "acc-1", dto.RecordPaymentRequest{Amount: dec(amount)}, "ops@example.com")
		require.NoError(t, err)
	}

	assert.True(t, dec(600_000).Equal(receipt.TotalPaid))
	assert.True(t, dec(400_000).Equal(receipt.Balance))
	assert.Equal(t, domain.StatusActive, receipt.Status)

	receipt, err = svc.RecordPayment(ctx, "acc-1", dto.RecordPaymentRequest{Amount: dec(400_000)}, "ops@example.com")
	require.NoError(t, err)

	assert.True(t, receipt.Balance.IsZero())
	assert.Equal(t, domain.StatusCompleted, receipt.Status)
	stored := store.state.accounts["acc-1"]
	assert.True(t, stored.TotalBalance.IsZero())
	assert.Equal(t, domain.StatusCompleted, stored.Status)
	assert.Equal(t, "ops@example.com", stored.LastUpdatedBy)
	assert.Equal(t, 3, store.commits)
}

func TestRecordPayment_UnknownAccountIsNotPersisted(t *testing.T) {
	store := newMemStore()
	svc := services.NewPaymentService(store, store, config.OverpaymentClamp)

	receipt, err := svc.RecordPayment(context.Background(), "9999", dto.RecordPaymentRequest{Amount: dec(100)}, "ops")

	assert.Nil(t, receipt)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.Empty(t, store.state.payments)
	assert.Equal(t, 1, store.rollbacks)
	assert.Equal(t, 0, store.commits)
}

func TestRecordPayment_NonPositiveAmount(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "acc-1", 100, 0)
	svc := services.NewPaymentService(store, store, config.OverpaymentClamp)

	for _, amount := range []int64{0, -10} {
		_, err := svc.RecordPayment(context.Background(), "acc-1", dto.RecordPaymentRequest{Amount: dec(amount)}, "ops")
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	}
	assert.Zero(t, store.begins)
}

func TestRecordPayment_OverpaymentPolicy(t *testing.T) {
	tests := []struct {
		name        string
		policy      config.OverpaymentPolicy
		wantErr     error
		wantPaid    int
		wantBalance int64
		wantStatus  domain.AccountStatus
	}{
		{name: "clamp accepts and zeroes balance", policy: config.OverpaymentClamp, wantPaid: 1, wantBalance: 0, wantStatus: domain.StatusCompleted},
		{name: "reject refuses and rolls back", policy: config.OverpaymentReject, wantErr: apperrors.ErrValidation, wantPaid: 0, wantBalance: 100, wantStatus: domain.StatusActive},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newMemStore()
			seedAccount(t, store, "acc-1", 100, 0)
			svc := services.NewPaymentService(store, store, tt.policy)

			_, err := svc.RecordPayment(context.Background(), "acc-1", dto.RecordPaymentRequest{Amount: dec(150)}, "ops")

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Len(t, store.state.payments, tt.wantPaid)
			acc := store.state.accounts["acc-1"]
			assert.True(t, dec(tt.wantBalance).Equal(acc.TotalBalance), "balance %s", acc.TotalBalance)
			assert.Equal(t, tt.wantStatus, acc.Status)
		})
	}
}

func TestRecordPayment_RecordedByAndDate(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "acc-1", 1000, 0)
	svc := services.NewPaymentService(store, store, config.OverpaymentClamp)
	paidOn := time.Date(2024, 5, 2, 10, 0, 0, 0, time.UTC)

	receipt, err := svc.RecordPayment(context.Background(), "acc-1", dto.RecordPaymentRequest{Amount: dec(10)}, "ops@example.com")
	require.NoError(t, err)
	assert.Equal(t, "ops@example.com", receipt.Payment.RecordedBy)
	assert.WithinDuration(t, time.Now(), receipt.Payment.PaymentDate, 5*time.Second)

	receipt, err = svc.RecordPayment(context.Background(), "acc-1",
		dto.RecordPaymentRequest{Amount: dec(10), Date: &paidOn, Note: "cash", RecordedBy: "clerk"}, "ops@example.com")
	require.NoError(t, err)
	assert.Equal(t, "clerk", receipt.Payment.RecordedBy)
	assert.Equal(t, paidOn, receipt.Payment.PaymentDate)
	assert.Equal(t, "cash", receipt.Payment.Note)
}

func TestRecordPayment_AccountMissingAfterInsertRollsBack(t *testing.T) {
	ctx := context.Background()
	paymentRepo := new(MockPaymentRepository)
	accountRepo := new(MockAccountRepository)
	svc := services.NewPaymentService(paymentRepo, accountRepo, config.OverpaymentClamp)

	paymentRepo.On("Begin", ctx).Return(nil, nil).Once()
	paymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.AnythingOfType("domain.Payment")).Return(nil).Once()
	accountRepo.On("FindAccountByIDForUpdate", ctx, mock.Anything, "9999").Return(nil, apperrors.ErrNotFound).Once()
	paymentRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := svc.RecordPayment(ctx, "9999", dto.RecordPaymentRequest{Amount: dec(100)}, "ops")

	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	paymentRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
	paymentRepo.AssertNotCalled(t, "Commit", mock.Anything, mock.Anything)
}

func TestRecordPayment_CommitFailure(t *testing.T) {
	ctx := context.Background()
	paymentRepo := new(MockPaymentRepository)
	accountRepo := new(MockAccountRepository)
	svc := services.NewPaymentService(paymentRepo, accountRepo, config.OverpaymentClamp)

	paymentRepo.On("Begin", ctx).Return(nil, nil).Once()
	paymentRepo.On("SavePaymentInTx", ctx, mock.Anything, mock.Anything).Return(nil).Once()
	accountRepo.On("FindAccountByIDForUpdate", ctx, mock.Anything, "acc-1").
		Return(&domain.Account{AccountID: "acc-1", TotalAmountDue: dec(100), Status: domain.StatusActive}, nil).Once()
	paymentRepo.On("ListPaymentsByAccountIDInTx", ctx, mock.Anything, "acc-1").Return([]domain.Payment{{Amount: dec(40)}}, nil).Once()
	accountRepo.On("UpdateAccountBalanceInTx", ctx, mock.Anything, "acc-1", mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(dec(60)) }), domain.StatusActive, "ops", mock.Anything).Return(nil).Once()
	paymentRepo.On("Commit", ctx, mock.Anything).Return(errors.New("serialization failure")).Once()
	paymentRepo.On("Rollback", ctx, mock.Anything).Return(nil).Once()

	_, err := svc.RecordPayment(ctx, "acc-1", dto.RecordPaymentRequest{Amount: dec(40)}, "ops")

	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	paymentRepo.AssertExpectations(t)
	accountRepo.AssertExpectations(t)
}

func TestListPayments(t *testing.T) {
	store := newMemStore()
	seedAccount(t, store, "acc-1", 1000, 0)
	svc := services.NewPaymentService(store, store, config.OverpaymentClamp)
	_, err := svc.RecordPayment(context.Background(), "acc-1", dto.RecordPaymentRequest{Amount: dec(10)}, "ops")
	require.NoError(t, err)

	payments, err := svc.ListPayments(context.Background(), "acc-1")
	require.NoError(t, err)
	assert.Len(t, payments, 1)

	_, err = svc.ListPayments(context.Background(), "missing")
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}
