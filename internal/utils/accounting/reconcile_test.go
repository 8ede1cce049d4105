package accounting_test

import (
	"math/rand"
	"testing"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/SscSPs/plot_sales_admin/internal/utils/accounting"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func TestReconcile(t *testing.T) {
	tests := []struct {
		name         string
		totalDue     decimal.Decimal
		deposit      decimal.Decimal
		payments     []decimal.Decimal
		current      domain.AccountStatus
		wantPaid     decimal.Decimal
		wantBalance  decimal.Decimal
		wantOverpaid decimal.Decimal
		wantStatus   domain.AccountStatus
	}{
		{
			name:        "partial payments keep account active",
			totalDue:    d(1_000_000),
			deposit:     d(200_000),
			payments:    []decimal.Decimal{d(300_000), d(100_000)},
			current:     domain.StatusActive,
			wantPaid:    d(600_000),
			wantBalance: d(400_000),
			wantStatus:  domain.StatusActive,
		},
		{
			name:        "final payment completes account",
			totalDue:    d(1_000_000),
			deposit:     d(200_000),
			payments:    []decimal.Decimal{d(300_000), d(100_000), d(400_000)},
			current:     domain.StatusActive,
			wantPaid:    d(1_000_000),
			wantBalance: decimal.Zero,
			wantStatus:  domain.StatusCompleted,
		},
		{
			name:         "overpayment clamps balance to zero",
			totalDue:     d(500),
			deposit:      d(400),
			payments:     []decimal.Decimal{d(300)},
			current:      domain.StatusActive,
			wantPaid:     d(700),
			wantBalance:  decimal.Zero,
			wantOverpaid: d(200),
			wantStatus:   domain.StatusCompleted,
		},
		{
			name:        "completed account reverts to active when due increases",
			totalDue:    d(2_000),
			deposit:     d(1_000),
			payments:    nil,
			current:     domain.StatusCompleted,
			wantPaid:    d(1_000),
			wantBalance: d(1_000),
			wantStatus:  domain.StatusActive,
		},
		{
			name:        "custom status is preserved while balance outstanding",
			totalDue:    d(2_000),
			deposit:     d(500),
			payments:    []decimal.Decimal{d(100)},
			current:     domain.AccountStatus("Suspended"),
			wantPaid:    d(600),
			wantBalance: d(1_400),
			wantStatus:  domain.AccountStatus("Suspended"),
		},
		{
			name:        "custom status is overridden on zero balance",
			totalDue:    d(600),
			deposit:     d(600),
			current:     domain.AccountStatus("Suspended"),
			wantPaid:    d(600),
			wantBalance: decimal.Zero,
			wantStatus:  domain.StatusCompleted,
		},
		{
			name:        "nothing due is completed immediately",
			totalDue:    decimal.Zero,
			deposit:     decimal.Zero,
			current:     domain.StatusActive,
			wantPaid:    decimal.Zero,
			wantBalance: decimal.Zero,
			wantStatus:  domain.StatusCompleted,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := accounting.Reconcile(tt.totalDue, tt.deposit, tt.payments, tt.current)
			assert.True(t, tt.wantPaid.Equal(got.TotalPaid), "total paid: want %s got %s", tt.wantPaid, got.TotalPaid)
			assert.True(t, tt.wantBalance.Equal(got.Balance), "balance: want %s got %s", tt.wantBalance, got.Balance)
			assert.True(t, tt.wantOverpaid.Equal(got.Overpaid), "overpaid: want %s got %s", tt.wantOverpaid, got.Overpaid)
			assert.Equal(t, tt.wantStatus, got.Status)
		})
	}
}

func TestReconcile_BalanceNeverNegative(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	statuses := []domain.AccountStatus{domain.StatusActive, domain.StatusCompleted, "OnHold"}

	for i := 0; i < 1000; i++ {
		totalDue := d(rng.Int63n(2_000_000))
		deposit := d(rng.Int63n(1_000_000))
		payments := make([]decimal.Decimal, rng.Intn(6))
		for j := range payments {
			payments[j] = d(rng.Int63n(500_000))
		}
		current := statuses[rng.Intn(len(statuses))]

		got := accounting.Reconcile(totalDue, deposit, payments, current)

		require.False(t, got.Balance.IsNegative(), "iteration %d: negative balance %s", i, got.Balance)
		if got.Balance.IsZero() {
			require.Equal(t, domain.StatusCompleted, got.Status, "iteration %d", i)
		} else {
			require.NotEqual(t, domain.StatusCompleted, got.Status, "iteration %d", i)
		}
	}
}

func TestSumPlotPrices(t *testing.T) {
	tests := []struct {
		name    string
		plots   string
		prices  string
		want    decimal.Decimal
		wantErr error
	}{
		{name: "parallel lists", plots: "A1,A2", prices: "500000,250000.50", want: decimal.RequireFromString("750000.50")},
		{name: "extra prices ignored", plots: "A1", prices: "100,200,300", want: d(100)},
		{name: "extra plots ignored", plots: "A1,A2,A3", prices: "100, 200", want: d(300)},
		{name: "whitespace tolerated", plots: " A1 , A2 ", prices: " 10 , 20 ", want: d(30)},
		{name: "empty lists", plots: "", prices: "", want: decimal.Zero},
		{name: "malformed price", plots: "A1", prices: "abc", wantErr: apperrors.ErrValidation},
		{name: "negative price", plots: "A1", prices: "-5", wantErr: apperrors.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := accounting.SumPlotPrices(tt.plots, tt.prices)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s got %s", tt.want, got)
		})
	}
}
