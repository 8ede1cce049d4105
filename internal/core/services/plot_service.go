package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_sales_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/plot_sales_admin/internal/core/ports/services"
	"github.com/SscSPs/plot_sales_admin/internal/dto"
	"github.com/google/uuid"
)

const (
	defaultPlotPageSize = 50
	maxPlotPageSize     = 500
)

type plotService struct {
	BaseService
	plotRepo portsrepo.PlotRepositoryFacade
}

// NewPlotService creates a new plot inventory service.
func NewPlotService(plotRepo portsrepo.PlotRepositoryFacade) portssvc.PlotSvcFacade {
	return &plotService{plotRepo: plotRepo}
}

var _ portssvc.PlotSvcFacade = (*plotService)(nil)

// CreatePlot adds an Available plot to the inventory.
func (s *plotService) CreatePlot(ctx context.Context, req dto.CreatePlotRequest) (*domain.Plot, error) {
	number := strings.TrimSpace(req.Number)
	if number == "" || strings.Contains(number, ",") {
		return nil, fmt.Errorf("%w: plot number must be non-empty and contain no commas", apperrors.ErrValidation)
	}

	now := time.Now().UTC()
	plot := domain.Plot{
		PlotID:        uuid.NewString(),
		Number:        number,
		Status:        domain.PlotAvailable,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
	if err := s.plotRepo.SavePlot(ctx, plot); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save plot", slog.String("number", number))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Plot created", slog.String("number", number))
	return &plot, nil
}

// GetPlotByNumber retrieves a plot and its owner.
func (s *plotService) GetPlotByNumber(ctx context.Context, number string) (*domain.Plot, error) {
	plot, err := s.plotRepo.FindPlotByNumber(ctx, number)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find plot", slog.String("number", number))
		}
		return nil, err
	}
	return plot, nil
}

// ListPlots retrieves a page of plots, optionally filtered by status.
func (s *plotService) ListPlots(ctx context.Context, params dto.ListPlotsParams) ([]domain.Plot, error) {
	var status *domain.PlotStatus
	if params.Status != "" {
		st := domain.PlotStatus(params.Status)
		if !st.IsValid() {
			return nil, fmt.Errorf("%w: unknown plot status %q", apperrors.ErrValidation, params.Status)
		}
		status = &st
	}

	limit := params.Limit
	if limit <= 0 {
		limit = defaultPlotPageSize
	}
	if limit > maxPlotPageSize {
		limit = maxPlotPageSize
	}
	offset := max(params.Offset, 0)

	plots, err := s.plotRepo.ListPlots(ctx, status, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list plots")
		return nil, fmt.Errorf("failed to list plots: %w", err)
	}
	return plots, nil
}

// DeletePlot removes an Available plot. Sold plots must be released first.
func (s *plotService) DeletePlot(ctx context.Context, number string) error {
	if err := s.plotRepo.DeletePlot(ctx, number); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) && !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to delete plot", slog.String("number", number))
		}
		return err
	}
	s.LogInfo(ctx, "Plot deleted", slog.String("number", number))
	return nil
}
