package pgsql

import (
	portsrepo "github.com/SscSPs/plot_sales_admin/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider wires every pgx repository onto a shared pool.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		AccountRepo: newPgxAccountRepository(dbPool),
		PaymentRepo: newPgxPaymentRepository(dbPool),
		PlotRepo:    newPgxPlotRepository(dbPool),
		AdminRepo:   newPgxAdminRepository(dbPool),
	}
}
