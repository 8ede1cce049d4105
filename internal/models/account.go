package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Account is the accounts table row.
type Account struct {
	AccountID       string          `db:"account_id"`
	Name            string          `db:"name"`
	Contact         string          `db:"contact"`
	AssignedPlots   string          `db:"assigned_plots"`
	DateAssigned    time.Time       `db:"date_assigned"`
	InitialDeposit  decimal.Decimal `db:"initial_deposit"`
	PricePerPlot    string          `db:"price_per_plot"`
	PaymentSchedule string          `db:"payment_schedule"`
	TotalAmountDue  decimal.Decimal `db:"total_amount_due"`
	TotalBalance    decimal.Decimal `db:"total_balance"`
	Status          string          `db:"status"`
	AuditFields
}
