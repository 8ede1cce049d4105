package pgsql

import (
	"context"
	"fmt"
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_sales_admin/internal/core/ports/repositories"
	"github.com/SscSPs/plot_sales_admin/internal/models"
	"github.com/SscSPs/plot_sales_admin/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

const accountColumns = `account_id, name, contact, assigned_plots, date_assigned, initial_deposit, price_per_plot,
	payment_schedule, total_amount_due, total_balance, status, created_at, created_by, last_updated_at, last_updated_by`

// PgxAccountRepository implements portsrepo.AccountRepositoryWithTx using pgx.
type PgxAccountRepository struct {
	BaseRepository
}

// newPgxAccountRepository creates a new repository for account data.
func newPgxAccountRepository(pool *pgxpool.Pool) *PgxAccountRepository {
	return &PgxAccountRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// Ensure PgxAccountRepository implements portsrepo.AccountRepositoryWithTx
var _ portsrepo.AccountRepositoryWithTx = (*PgxAccountRepository)(nil)

func scanAccount(row pgx.Row) (domain.Account, error) {
	var m models.Account
	err := row.Scan(
		&m.AccountID,
		&m.Name,
		&m.Contact,
		&m.AssignedPlots,
		&m.DateAssigned,
		&m.InitialDeposit,
		&m.PricePerPlot,
		&m.PaymentSchedule,
		&m.TotalAmountDue,
		&m.TotalBalance,
		&m.Status,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		return domain.Account{}, err
	}
	return mapping.ToDomainAccount(m), nil
}

func (r *PgxAccountRepository) findAccount(ctx context.Context, q querier, accountID string, lock bool) (*domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts WHERE account_id = $1`
	if lock {
		query += ` FOR UPDATE`
	}
	acc, err := scanAccount(q.QueryRow(ctx, query, accountID))
	if err != nil {
		return nil, classifyPgError(err, fmt.Sprintf("account %s", accountID))
	}
	return &acc, nil
}

// FindAccountByID retrieves an account by its ID.
func (r *PgxAccountRepository) FindAccountByID(ctx context.Context, accountID string) (*domain.Account, error) {
	return r.findAccount(ctx, r.Pool, accountID, false)
}

// FindAccountByIDForUpdate retrieves an account and locks its row until tx ends.
func (r *PgxAccountRepository) FindAccountByIDForUpdate(ctx context.Context, tx pgx.Tx, accountID string) (*domain.Account, error) {
	return r.findAccount(ctx, tx, accountID, true)
}

// ListAccounts retrieves a page of accounts ordered by name.
func (r *PgxAccountRepository) ListAccounts(ctx context.Context, limit int, offset int) ([]domain.Account, error) {
	query := `SELECT ` + accountColumns + ` FROM accounts ORDER BY name, account_id LIMIT $1 OFFSET $2`
	rows, err := r.Pool.Query(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query accounts: %w", err)
	}
	defer rows.Close()

	accounts := []domain.Account{}
	for rows.Next() {
		acc, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account row: %w", err)
		}
		accounts = append(accounts, acc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating account rows: %w", err)
	}
	return accounts, nil
}

// SaveAccountInTx inserts a new account.
func (r *PgxAccountRepository) SaveAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `INSERT INTO accounts (` + accountColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`

	_, err := tx.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Contact,
		m.AssignedPlots,
		m.DateAssigned,
		m.InitialDeposit,
		m.PricePerPlot,
		m.PaymentSchedule,
		m.TotalAmountDue,
		m.TotalBalance,
		m.Status,
		m.CreatedAt,
		m.CreatedBy,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return classifyPgError(err, fmt.Sprintf("failed to save account with contact %q", m.Contact))
	}
	return nil
}

// UpdateAccountInTx writes every mutable column of the account.
func (r *PgxAccountRepository) UpdateAccountInTx(ctx context.Context, tx pgx.Tx, account domain.Account) error {
	m := mapping.ToModelAccount(account)
	query := `
		UPDATE accounts
		SET name = $2, contact = $3, assigned_plots = $4, date_assigned = $5, initial_deposit = $6,
			price_per_plot = $7, payment_schedule = $8, total_amount_due = $9, total_balance = $10,
			status = $11, last_updated_at = $12, last_updated_by = $13
		WHERE account_id = $1`

	tag, err := tx.Exec(ctx, query,
		m.AccountID,
		m.Name,
		m.Contact,
		m.AssignedPlots,
		m.DateAssigned,
		m.InitialDeposit,
		m.PricePerPlot,
		m.PaymentSchedule,
		m.TotalAmountDue,
		m.TotalBalance,
		m.Status,
		m.LastUpdatedAt,
		m.LastUpdatedBy,
	)
	if err != nil {
		return classifyPgError(err, fmt.Sprintf("failed to update account %s", m.AccountID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, m.AccountID)
	}
	return nil
}

// UpdateAccountBalanceInTx persists a reconciliation result.
func (r *PgxAccountRepository) UpdateAccountBalanceInTx(ctx context.Context, tx pgx.Tx, accountID string, balance decimal.Decimal, status domain.AccountStatus, userID string, now time.Time) error {
	query := `
		UPDATE accounts
		SET total_balance = $2, status = $3, last_updated_at = $4, last_updated_by = $5
		WHERE account_id = $1`

	tag, err := tx.Exec(ctx, query, accountID, balance, string(status), now, userID)
	if err != nil {
		return classifyPgError(err, fmt.Sprintf("failed to update balance of account %s", accountID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}

// DeleteAccountInTx removes the account row. Assignments cascade.
func (r *PgxAccountRepository) DeleteAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) error {
	tag, err := tx.Exec(ctx, `DELETE FROM accounts WHERE account_id = $1`, accountID)
	if err != nil {
		return classifyPgError(err, fmt.Sprintf("failed to delete account %s", accountID))
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: account %s", apperrors.ErrNotFound, accountID)
	}
	return nil
}
