package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_sales_admin/internal/core/ports/repositories"
	"github.com/SscSPs/plot_sales_admin/internal/models"
	"github.com/SscSPs/plot_sales_admin/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const plotSelect = `
	SELECT p.plot_id, p.number, p.status, p.reserved_at, pa.account_id, a.name, p.created_at, p.last_updated_at
	FROM plots p
	LEFT JOIN plot_assignments pa ON pa.plot_id = p.plot_id
	LEFT JOIN accounts a ON a.account_id = pa.account_id`

// PgxPlotRepository implements portsrepo.PlotRepositoryFacade using pgx.
type PgxPlotRepository struct {
	pool *pgxpool.Pool
}

func newPgxPlotRepository(pool *pgxpool.Pool) *PgxPlotRepository {
	return &PgxPlotRepository{pool: pool}
}

var _ portsrepo.PlotRepositoryFacade = (*PgxPlotRepository)(nil)

func scanPlot(row pgx.Row) (domain.Plot, error) {
	var m models.Plot
	if err := row.Scan(&m.PlotID, &m.Number, &m.Status, &m.ReservedAt, &m.OwnerAccountID, &m.OwnerName, &m.CreatedAt, &m.LastUpdatedAt); err != nil {
		return domain.Plot{}, err
	}
	return mapping.ToDomainPlot(m), nil
}

// SavePlot inserts a new plot.
func (r *PgxPlotRepository) SavePlot(ctx context.Context, plot domain.Plot) error {
	query := `
		INSERT INTO plots (plot_id, number, status, reserved_at, created_at, last_updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)`
	_, err := r.pool.Exec(ctx, query, plot.PlotID, plot.Number, string(plot.Status), plot.ReservedAt, plot.CreatedAt, plot.LastUpdatedAt)
	if err != nil {
		return classifyPgError(err, fmt.Sprintf("plot %s", plot.Number))
	}
	return nil
}

// FindPlotByNumber retrieves a plot and its owner by plot number.
func (r *PgxPlotRepository) FindPlotByNumber(ctx context.Context, number string) (*domain.Plot, error) {
	plot, err := scanPlot(r.pool.QueryRow(ctx, plotSelect+` WHERE p.number = $1`, number))
	if err != nil {
		return nil, classifyPgError(err, fmt.Sprintf("plot %s", number))
	}
	return &plot, nil
}

// ListPlots retrieves plots ordered by number, optionally filtered by status.
func (r *PgxPlotRepository) ListPlots(ctx context.Context, status *domain.PlotStatus, limit int, offset int) ([]domain.Plot, error) {
	var statusArg any
	if status != nil {
		statusArg = string(*status)
	}
	query := plotSelect + `
		WHERE ($1::text IS NULL OR p.status = $1)
		ORDER BY p.number
		LIMIT $2 OFFSET $3`

	rows, err := r.pool.Query(ctx, query, statusArg, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query plots: %w", err)
	}
	defer rows.Close()

	plots := []domain.Plot{}
	for rows.Next() {
		plot, err := scanPlot(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan plot row: %w", err)
		}
		plots = append(plots, plot)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating plot rows: %w", err)
	}
	return plots, nil
}

// DeletePlot removes an Available plot by number.
func (r *PgxPlotRepository) DeletePlot(ctx context.Context, number string) error {
	var status string
	err := r.pool.QueryRow(ctx,
		`DELETE FROM plots WHERE number = $1 AND status = $2 RETURNING status`,
		number, string(domain.PlotAvailable),
	).Scan(&status)
	if err == nil {
		return nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return fmt.Errorf("failed to delete plot %s: %w", number, err)
	}

	// Nothing deleted: tell apart a missing plot from a sold one.
	if _, findErr := r.FindPlotByNumber(ctx, number); findErr != nil {
		return findErr
	}
	return fmt.Errorf("%w: plot %s is sold and cannot be deleted", apperrors.ErrValidation, number)
}

// ReleasePlotsByAccountInTx makes the account's plots Available and drops its assignments.
func (r *PgxPlotRepository) ReleasePlotsByAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) ([]string, error) {
	query := `
		WITH released AS (
			DELETE FROM plot_assignments WHERE account_id = $1 RETURNING plot_id
		)
		UPDATE plots p
		SET status = $2, reserved_at = NULL, last_updated_at = $3
		FROM released r
		WHERE p.plot_id = r.plot_id
		RETURNING p.number`

	rows, err := tx.Query(ctx, query, accountID, string(domain.PlotAvailable), time.Now().UTC())
	if err != nil {
		return nil, fmt.Errorf("failed to release plots of account %s: %w", accountID, err)
	}
	numbers, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		return nil, fmt.Errorf("failed to release plots of account %s: %w", accountID, err)
	}
	return numbers, nil
}

// AssignPlotInTx marks the plot Sold and points its assignment at the account.
// An existing assignment to another account is overwritten.
func (r *PgxPlotRepository) AssignPlotInTx(ctx context.Context, tx pgx.Tx, number string, accountID string, now time.Time) (bool, error) {
	var plotID string
	err := tx.QueryRow(ctx,
		`UPDATE plots SET status = $2, reserved_at = $3, last_updated_at = $3 WHERE number = $1 RETURNING plot_id`,
		number, string(domain.PlotSold), now,
	).Scan(&plotID)
	if errors.Is(err, pgx.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to mark plot %s sold: %w", number, err)
	}

	_, err = tx.Exec(ctx, `
		INSERT INTO plot_assignments (plot_id, account_id, assigned_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (plot_id) DO UPDATE SET account_id = EXCLUDED.account_id, assigned_at = EXCLUDED.assigned_at`,
		plotID, accountID, now,
	)
	if err != nil {
		return false, classifyPgError(err, fmt.Sprintf("failed to assign plot %s to account %s", number, accountID))
	}
	return true, nil
}
