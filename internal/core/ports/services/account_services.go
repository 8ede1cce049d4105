package services

import (
	"context"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/SscSPs/plot_sales_admin/internal/dto"
)

// AccountReaderSvc defines read operations for account data
type AccountReaderSvc interface {
	// GetAccountByID retrieves a specific account by its unique identifier.
	GetAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)

	// GetAccountStatement returns the account with its payments and recomputed totals.
	GetAccountStatement(ctx context.Context, accountID string) (*dto.AccountStatement, error)
}

// AccountWriterSvc defines the atomic account mutations
type AccountWriterSvc interface {
	// CreateAccount registers a purchaser and marks the assigned plots Sold.
	CreateAccount(ctx context.Context, req dto.CreateAccountRequest, adminID string) (*domain.Account, error)

	// UpdateAccount applies a partial update, resyncing plots and balance as needed.
	UpdateAccount(ctx context.Context, accountID string, req dto.UpdateAccountRequest, adminID string) (*domain.Account, error)

	// DeleteAccount releases the account's plots, purges its payments and removes it.
	DeleteAccount(ctx context.Context, accountID string, adminID string) error
}

// AccountSvcFacade combines all account-related service interfaces
type AccountSvcFacade interface {
	AccountReaderSvc
	AccountWriterSvc
}
