package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a single installment recorded against an account. Immutable once created.
type Payment struct {
	PaymentID   string          `json:"paymentID"`
	AccountID   string          `json:"accountID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"paymentDate"`
	Note        string          `json:"note"`
	RecordedBy  string          `json:"recordedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// PaymentReceipt is a freshly recorded payment together with the account totals it produced.
type PaymentReceipt struct {
	Payment   Payment
	TotalPaid decimal.Decimal
	Balance   decimal.Decimal
	Status    AccountStatus
}

// PaymentAmounts returns the amounts of the given payments.
func PaymentAmounts(payments []Payment) []decimal.Decimal {
	amounts := make([]decimal.Decimal, len(payments))
	for i, p := range payments {
		amounts[i] = p.Amount
	}
	return amounts
}
