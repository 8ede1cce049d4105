package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// PlotReader defines read operations for plot inventory
type PlotReader interface {
	// FindPlotByNumber retrieves a plot by its business key.
	FindPlotByNumber(ctx context.Context, number string) (*domain.Plot, error)

	// ListPlots retrieves plots ordered by number, optionally filtered by status.
	ListPlots(ctx context.Context, status *domain.PlotStatus, limit int, offset int) ([]domain.Plot, error)
}

// PlotWriter defines write operations for plot inventory
type PlotWriter interface {
	// SavePlot inserts a new plot.
	SavePlot(ctx context.Context, plot domain.Plot) error

	// DeletePlot removes an unassigned plot by number.
	DeletePlot(ctx context.Context, number string) error
}

// PlotOwnershipSupport defines ownership changes that run inside a caller-owned transaction
type PlotOwnershipSupport interface {
	// ReleasePlotsByAccountInTx makes every plot assigned to the account Available again
	// and drops the assignments. It returns the released plot numbers.
	ReleasePlotsByAccountInTx(ctx context.Context, tx pgx.Tx, accountID string) ([]string, error)

	// AssignPlotInTx marks the plot Sold and assigns it to the account.
	// It reports false when no plot has the given number.
	AssignPlotInTx(ctx context.Context, tx pgx.Tx, number string, accountID string, now time.Time) (bool, error)
}

// PlotRepositoryFacade combines all plot-related repository interfaces
type PlotRepositoryFacade interface {
	PlotReader
	PlotWriter
	PlotOwnershipSupport
}
