package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_sales_admin/internal/core/ports/repositories"
	"github.com/SscSPs/plot_sales_admin/internal/models"
	"github.com/SscSPs/plot_sales_admin/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxPaymentRepository implements portsrepo.PaymentRepositoryWithTx using pgx.
type PgxPaymentRepository struct {
	BaseRepository
}

func newPgxPaymentRepository(pool *pgxpool.Pool) *PgxPaymentRepository {
	return &PgxPaymentRepository{BaseRepository: BaseRepository{Pool: pool}}
}

var _ portsrepo.PaymentRepositoryWithTx = (*PgxPaymentRepository)(nil)

// SavePaymentInTx inserts a payment. A missing account surfaces as ErrNotFound.
func (r *PgxPaymentRepository) SavePaymentInTx(ctx context.Context, tx pgx.Tx, payment domain.Payment) error {
	m := mapping.ToModelPayment(payment)
	query := `
		INSERT INTO payments (payment_id, account_id, amount, payment_date, note, recorded_by, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`

	_, err := tx.Exec(ctx, query,
		m.PaymentID,
		m.AccountID,
		m.Amount,
		m.PaymentDate,
		m.Note,
		m.RecordedBy,
		m.CreatedAt,
	)
	if err != nil {
		return classifyPgError(err, fmt.Sprintf("failed to save payment for account %s", m.AccountID))
	}
	return nil
}

func (r *PgxPaymentRepository) listPayments(ctx context.Context, q querier, accountID string) ([]domain.Payment, error) {
	query := `
		SELECT payment_id, account_id, amount, payment_date, note, recorded_by, created_at
		FROM payments
		WHERE account_id = $1
		ORDER BY payment_date, created_at`

	rows, err := q.Query(ctx, query, accountID)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments of account %s: %w", accountID, err)
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var m models.Payment
		if err := rows.Scan(&m.PaymentID, &m.AccountID, &m.Amount, &m.PaymentDate, &m.Note, &m.RecordedBy, &m.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, mapping.ToDomainPayment(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

// ListPaymentsByAccountID retrieves all payments of an account, oldest first.
func (r *PgxPaymentRepository) ListPaymentsByAccountID(ctx context.Context, accountID string) ([]domain.Payment, error) {
	return r.listPayments(ctx, r.Pool, accountID)
}

// ListPaymentsByAccountIDInTx reads payments as seen by tx, including its own uncommitted inserts.
func (r *PgxPaymentRepository) ListPaymentsByAccountIDInTx(ctx context.Context, tx pgx.Tx, accountID string) ([]domain.Payment, error) {
	return r.listPayments(ctx, tx, accountID)
}

// DeletePaymentsByAccountIDInTx removes every payment of an account.
func (r *PgxPaymentRepository) DeletePaymentsByAccountIDInTx(ctx context.Context, tx pgx.Tx, accountID string) (int64, error) {
	tag, err := tx.Exec(ctx, `DELETE FROM payments WHERE account_id = $1`, accountID)
	if err != nil {
		return 0, fmt.Errorf("failed to delete payments of account %s: %w", accountID, err)
	}
	return tag.RowsAffected(), nil
}
