package services

import (
	"context"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/SscSPs/plot_sales_admin/internal/dto"
)

// PlotSvcFacade defines plot inventory operations
type PlotSvcFacade interface {
	CreatePlot(ctx context.Context, req dto.CreatePlotRequest) (*domain.Plot, error)
	GetPlotByNumber(ctx context.Context, number string) (*domain.Plot, error)
	ListPlots(ctx context.Context, params dto.ListPlotsParams) ([]domain.Plot, error)
	DeletePlot(ctx context.Context, number string) error
}
