package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateAccountRequest defines the data needed to register a purchaser.
// Pointers distinguish missing values from zero values.
type CreateAccountRequest struct {
	Name            string           `json:"name" validate:"notblank"`
	Contact         string           `json:"contact" validate:"notblank"`
	AssignedPlots   string           `json:"assignedPlots" validate:"plotlist"`
	DateAssigned    *time.Time       `json:"dateAssigned" validate:"required"`
	InitialDeposit  *decimal.Decimal `json:"initialDeposit" validate:"required"`
	PricePerPlot    string           `json:"pricePerPlot" validate:"plotlist"`
	PaymentSchedule string           `json:"paymentSchedule"` // Optional free text
}

// Validate checks that every required field is present and non-empty.
func (r CreateAccountRequest) Validate() error {
	if err := validateStruct(r); err != nil {
		return err
	}
	if r.InitialDeposit.IsNegative() {
		return fmt.Errorf("%w: invalid fields: InitialDeposit", apperrors.ErrValidation)
	}
	return nil
}

// UpdateAccountRequest is a typed partial update: nil fields keep their stored value.
// AssignedPlots set to "" is a present value and releases every plot of the account.
type UpdateAccountRequest struct {
	Name            *string               `json:"name"`
	Contact         *string               `json:"contact"`
	AssignedPlots   *string               `json:"assignedPlots"`
	DateAssigned    *time.Time            `json:"dateAssigned"`
	InitialDeposit  *decimal.Decimal      `json:"initialDeposit"`
	PricePerPlot    *string               `json:"pricePerPlot"`
	PaymentSchedule *string               `json:"paymentSchedule"`
	TotalAmountDue  *decimal.Decimal      `json:"totalAmountDue"`
	Status          *domain.AccountStatus `json:"status"`
}

// Validate rejects present-but-unusable values. Absent fields are never an error.
func (r UpdateAccountRequest) Validate() error {
	var bad []string
	if r.Name != nil && strings.TrimSpace(*r.Name) == "" {
		bad = append(bad, "Name")
	}
	if r.Contact != nil && strings.TrimSpace(*r.Contact) == "" {
		bad = append(bad, "Contact")
	}
	if r.InitialDeposit != nil && r.InitialDeposit.IsNegative() {
		bad = append(bad, "InitialDeposit")
	}
	if r.TotalAmountDue != nil && r.TotalAmountDue.IsNegative() {
		bad = append(bad, "TotalAmountDue")
	}
	if r.Status != nil && strings.TrimSpace(string(*r.Status)) == "" {
		bad = append(bad, "Status")
	}
	if len(bad) > 0 {
		return fmt.Errorf("%w: invalid fields: %s", apperrors.ErrValidation, strings.Join(bad, ", "))
	}
	return nil
}

// AccountResponse defines the data returned for an account.
type AccountResponse struct {
	AccountID       string               `json:"accountID"`
	Name            string               `json:"name"`
	Contact         string               `json:"contact"`
	AssignedPlots   string               `json:"assignedPlots"`
	DateAssigned    time.Time            `json:"dateAssigned"`
	InitialDeposit  decimal.Decimal      `json:"initialDeposit"`
	PricePerPlot    string               `json:"pricePerPlot"`
	PaymentSchedule string               `json:"paymentSchedule"`
	TotalAmountDue  decimal.Decimal      `json:"totalAmountDue"`
	TotalBalance    decimal.Decimal      `json:"totalBalance"`
	Status          domain.AccountStatus `json:"status"`
	CreatedAt       time.Time            `json:"createdAt"`
	CreatedBy       string               `json:"createdBy"`
	LastUpdatedAt   time.Time            `json:"lastUpdatedAt"`
	LastUpdatedBy   string               `json:"lastUpdatedBy"`
}

// ToAccountResponse converts a domain.Account to AccountResponse DTO
func ToAccountResponse(acc *domain.Account) AccountResponse {
	return AccountResponse{
		AccountID:       acc.AccountID,
		Name:            acc.Name,
		Contact:         acc.Contact,
		AssignedPlots:   acc.AssignedPlots,
		DateAssigned:    acc.DateAssigned,
		InitialDeposit:  acc.InitialDeposit,
		PricePerPlot:    acc.PricePerPlot,
		PaymentSchedule: acc.PaymentSchedule,
		TotalAmountDue:  acc.TotalAmountDue,
		TotalBalance:    acc.TotalBalance,
		Status:          acc.Status,
		CreatedAt:       acc.CreatedAt,
		CreatedBy:       acc.CreatedBy,
		LastUpdatedAt:   acc.LastUpdatedAt,
		LastUpdatedBy:   acc.LastUpdatedBy,
	}
}

// ToListAccountResponse converts a slice of domain.Account to a slice of AccountResponse DTOs
func ToListAccountResponse(accounts []domain.Account) []AccountResponse {
	res := make([]AccountResponse, len(accounts))
	for i, acc := range accounts {
		res[i] = ToAccountResponse(&acc)
	}
	return res
}

// ListAccountsParams defines query parameters for listing accounts.
type ListAccountsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListAccountsResponse wraps the list of accounts.
type ListAccountsResponse struct {
	Accounts []AccountResponse `json:"accounts"`
}

// AccountStatement is an account with its payment history and recomputed totals.
type AccountStatement struct {
	Account   domain.Account
	Payments  []domain.Payment
	TotalPaid decimal.Decimal
	Balance   decimal.Decimal
	Status    domain.AccountStatus
}

// AccountStatementResponse is the wire form of AccountStatement.
type AccountStatementResponse struct {
	Account   AccountResponse      `json:"account"`
	Payments  []PaymentResponse    `json:"payments"`
	TotalPaid decimal.Decimal      `json:"totalPaid"`
	Balance   decimal.Decimal      `json:"balance"`
	Status    domain.AccountStatus `json:"status"`
}

// ToAccountStatementResponse converts an AccountStatement to its response DTO
func ToAccountStatementResponse(st *AccountStatement) AccountStatementResponse {
	return AccountStatementResponse{
		Account:   ToAccountResponse(&st.Account),
		Payments:  ToListPaymentResponse(st.Payments),
		TotalPaid: st.TotalPaid,
		Balance:   st.Balance,
		Status:    st.Status,
	}
}
