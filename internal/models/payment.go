package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is the payments table row.
type Payment struct {
	PaymentID   string          `db:"payment_id"`
	AccountID   string          `db:"account_id"`
	Amount      decimal.Decimal `db:"amount"`
	PaymentDate time.Time       `db:"payment_date"`
	Note        string          `db:"note"`
	RecordedBy  string          `db:"recorded_by"`
	CreatedAt   time.Time       `db:"created_at"`
}
