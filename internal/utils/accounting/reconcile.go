package accounting

import (
	"fmt"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/SscSPs/plot_sales_admin/internal/utils/plotlist"
	"github.com/shopspring/decimal"
)

// Reconciliation is the outcome of recomputing an account's totals.
type Reconciliation struct {
	TotalPaid decimal.Decimal
	Balance   decimal.Decimal
	// Overpaid is the amount paid beyond the total due. It is not part of the stored model.
	Overpaid decimal.Decimal
	Status   domain.AccountStatus
}

// Reconcile recomputes balance and status from the amount due, the initial deposit and
// the payment history. It has no side effects; callers persist the result.
//
// The balance never goes below zero. A zero balance always yields StatusCompleted, an
// outstanding balance moves a Completed account back to StatusActive, and any other
// status is kept as is.
func Reconcile(totalDue, initialDeposit decimal.Decimal, payments []decimal.Decimal, current domain.AccountStatus) Reconciliation {
	totalPaid := initialDeposit
	for _, amount := range payments {
		totalPaid = totalPaid.Add(amount)
	}

	diff := totalDue.Sub(totalPaid)
	balance := decimal.Max(decimal.Zero, diff)
	overpaid := decimal.Max(decimal.Zero, diff.Neg())

	status := current
	switch {
	case balance.LessThanOrEqual(decimal.Zero):
		status = domain.StatusCompleted
	case current == domain.StatusCompleted:
		status = domain.StatusActive
	}

	return Reconciliation{
		TotalPaid: totalPaid,
		Balance:   balance,
		Overpaid:  overpaid,
		Status:    status,
	}
}

// SumPlotPrices computes the total amount due for a set of plots by pairing the plot list
// with the price list positionally. Extra entries on either side are ignored.
func SumPlotPrices(plots, prices string) (decimal.Decimal, error) {
	plotTokens := plotlist.Split(plots)
	priceTokens := plotlist.Split(prices)

	n := min(len(plotTokens), len(priceTokens))
	total := decimal.Zero
	for i := 0; i < n; i++ {
		price, err := decimal.NewFromString(priceTokens[i])
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: invalid price %q for plot %s", apperrors.ErrValidation, priceTokens[i], plotTokens[i])
		}
		if price.IsNegative() {
			return decimal.Zero, fmt.Errorf("%w: price for plot %s must not be negative", apperrors.ErrValidation, plotTokens[i])
		}
		total = total.Add(price)
	}
	return total, nil
}
