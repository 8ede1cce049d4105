package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
	portsrepo "github.com/SscSPs/plot_sales_admin/internal/core/ports/repositories"
	"github.com/SscSPs/plot_sales_admin/internal/platform/config"
	"github.com/SscSPs/plot_sales_admin/internal/platform/metrics"
	"github.com/SscSPs/plot_sales_admin/internal/utils/plotlist"
	"github.com/jackc/pgx/v5"
)

// SyncResult describes what an ownership sync changed.
type SyncResult struct {
	Released []string // Plot numbers made Available
	Assigned []string // Plot numbers now owned by the account, in request order
	Skipped  []string // Requested plot numbers that matched no plot
}

// PlotOwnershipSynchronizer moves plot ownership from an account's previous plot
// list to its new one. It never begins or ends transactions itself.
type PlotOwnershipSynchronizer struct {
	BaseService
	plotRepo portsrepo.PlotOwnershipSupport
	policy   config.PlotMatchPolicy
	now      func() time.Time
}

// NewPlotOwnershipSynchronizer creates a synchronizer applying the given unmatched-plot policy.
func NewPlotOwnershipSynchronizer(plotRepo portsrepo.PlotOwnershipSupport, policy config.PlotMatchPolicy) *PlotOwnershipSynchronizer {
	return &PlotOwnershipSynchronizer{
		plotRepo: plotRepo,
		policy:   policy,
		now:      func() time.Time { return time.Now().UTC() },
	}
}

// SyncOwnership releases every plot of the account when previous is non-nil,
// then assigns each plot number in next to it. It runs inside tx; any error
// must abort the caller's transaction.
func (s *PlotOwnershipSynchronizer) SyncOwnership(ctx context.Context, tx pgx.Tx, accountID string, previous *string, next string) (SyncResult, error) {
	var result SyncResult

	if previous != nil {
		released, err := s.Release(ctx, tx, accountID)
		if err != nil {
			return SyncResult{}, err
		}
		result.Released = released
	}

	now := s.now()
	for _, number := range plotlist.Split(next) {
		found, err := s.plotRepo.AssignPlotInTx(ctx, tx, number, accountID, now)
		if err != nil {
			return SyncResult{}, err
		}
		if found {
			result.Assigned = append(result.Assigned, number)
			continue
		}
		if s.policy == config.PlotMatchStrict {
			return SyncResult{}, fmt.Errorf("%w: plot %s", apperrors.ErrNotFound, number)
		}
		result.Skipped = append(result.Skipped, number)
		metrics.PlotsSkipped.Inc()
	}

	if len(result.Skipped) > 0 {
		s.GetLogger(ctx).Warn("Assigned plot numbers matched no plot",
			slog.String("account_id", accountID),
			slog.Any("plots", result.Skipped))
	}
	s.LogDebug(ctx, "Plot ownership synced",
		slog.String("account_id", accountID),
		slog.Int("released", len(result.Released)),
		slog.Int("assigned", len(result.Assigned)))
	return result, nil
}

// Release makes every plot owned by the account Available and returns their numbers.
func (s *PlotOwnershipSynchronizer) Release(ctx context.Context, tx pgx.Tx, accountID string) ([]string, error) {
	released, err := s.plotRepo.ReleasePlotsByAccountInTx(ctx, tx, accountID)
	if err != nil {
		return nil, err
	}
	return released, nil
}
