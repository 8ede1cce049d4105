package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AccountStatus is the lifecycle status of a purchaser account.
// Values other than the constants below are allowed when set manually and are preserved
// by reconciliation while a balance is outstanding.
type AccountStatus string

const (
	StatusActive    AccountStatus = "Active"
	StatusCompleted AccountStatus = "Completed"
)

// Account represents a plot purchaser with its financial and plot-ownership state.
type Account struct {
	AccountID       string          `json:"accountID"`
	Name            string          `json:"name"`
	Contact         string          `json:"contact"`
	AssignedPlots   string          `json:"assignedPlots"` // Comma-joined plot numbers, stored as given
	DateAssigned    time.Time       `json:"dateAssigned"`
	InitialDeposit  decimal.Decimal `json:"initialDeposit"`
	PricePerPlot    string          `json:"pricePerPlot"` // Comma-joined prices, parallel to AssignedPlots
	PaymentSchedule string          `json:"paymentSchedule"`
	TotalAmountDue  decimal.Decimal `json:"totalAmountDue"`
	TotalBalance    decimal.Decimal `json:"totalBalance"`
	Status          AccountStatus   `json:"status"`
	AuditFields
}
