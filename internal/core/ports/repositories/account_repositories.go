package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/jackc/pgx/v5"
	"github.com/shopspring/decimal"
)

// AccountReader defines read operations for account data
type AccountReader interface {
	// FindAccountByID retrieves a specific account by its unique identifier.
	FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error)

	// ListAccounts retrieves a paginated list of accounts ordered by name.
	ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error)
}

// AccountTransactionSupport defines account operations that run inside a caller-owned transaction
type AccountTransactionSupport interface {
	// FindAccountByIDForUpdate selects an account and locks its row.
	FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error)

	// SaveAccountInTx inserts a new account.
	SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// UpdateAccountInTx writes every mutable column of the account.
	UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error

	// UpdateAccountBalanceInTx persists a reconciliation result.
	UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, status domain.AccountStatus, userID string, now time.Time) error

	// DeleteAccountInTx removes the account row.
	DeleteAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) error
}

// AccountRepositoryFacade combines all account-related repository interfaces
type AccountRepositoryFacade interface {
	AccountReader
	AccountTransactionSupport
}

// AccountRepositoryWithTx extends AccountRepositoryFacade with transaction capabilities
type AccountRepositoryWithTx interface {
	AccountRepositoryFacade
	TransactionManager
}
