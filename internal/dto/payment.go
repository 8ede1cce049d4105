package dto

import (
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RecordPaymentRequest defines the data needed to record an installment.
type RecordPaymentRequest struct {
	Amount     decimal.Decimal `json:"amount"`
	Date       *time.Time      `json:"date"`       // Defaults to now
	Note       string          `json:"note"`       // Optional
	RecordedBy string          `json:"recordedBy"` // Defaults to the authenticated admin
}

// PaymentResponse defines the data returned for a payment.
type PaymentResponse struct {
	PaymentID   string          `json:"paymentID"`
	AccountID   string          `json:"accountID"`
	Amount      decimal.Decimal `json:"amount"`
	PaymentDate time.Time       `json:"date"`
	Note        string          `json:"note"`
	RecordedBy  string          `json:"recordedBy"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// PaymentResult is returned by the payment recording endpoint; callers check Success.
type PaymentResult struct {
	Success   bool                  `json:"success"`
	Error     string                `json:"error,omitempty"`
	Payment   *PaymentResponse      `json:"payment,omitempty"`
	TotalPaid *decimal.Decimal      `json:"totalPaid,omitempty"`
	Balance   *decimal.Decimal      `json:"balance,omitempty"`
	Status    *domain.AccountStatus `json:"status,omitempty"`
}

// ListPaymentsResponse wraps the payments of an account.
type ListPaymentsResponse struct {
	Payments []PaymentResponse `json:"payments"`
}

// ToPaymentResponse converts a domain.Payment to PaymentResponse DTO
func ToPaymentResponse(p *domain.Payment) PaymentResponse {
	return PaymentResponse{
		PaymentID:   p.PaymentID,
		AccountID:   p.AccountID,
		Amount:      p.Amount,
		PaymentDate: p.PaymentDate,
		Note:        p.Note,
		RecordedBy:  p.RecordedBy,
		CreatedAt:   p.CreatedAt,
	}
}

// ToListPaymentResponse converts a slice of domain.Payment to a slice of PaymentResponse DTOs
func ToListPaymentResponse(payments []domain.Payment) []PaymentResponse {
	res := make([]PaymentResponse, len(payments))
	for i, p := range payments {
		res[i] = ToPaymentResponse(&p)
	}
	return res
}

// ToPaymentResult converts a receipt into a successful PaymentResult
func ToPaymentResult(r *domain.PaymentReceipt) PaymentResult {
	payment := ToPaymentResponse(&r.Payment)
	return PaymentResult{
		Success:   true,
		Payment:   &payment,
		TotalPaid: &r.TotalPaid,
		Balance:   &r.Balance,
		Status:    &r.Status,
	}
}

// PaymentFailure builds a failed PaymentResult carrying the triggering message.
func PaymentFailure(msg string) PaymentResult {
	return PaymentResult{Success: false, Error: msg}
}
