package dto

import (
	"time"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
)

// CreatePlotRequest defines the data needed to add a plot to the inventory.
type CreatePlotRequest struct {
	Number string `json:"number" binding:"required"`
}

// ListPlotsParams defines query parameters for listing plots.
type ListPlotsParams struct {
	Status string `form:"status" binding:"omitempty,oneof=Available Sold"`
	Limit  int    `form:"limit,default=50"`
	Offset int    `form:"offset,default=0"`
}

// PlotResponse defines the data returned for a plot.
type PlotResponse struct {
	PlotID         string            `json:"plotID"`
	Number         string            `json:"number"`
	Status         domain.PlotStatus `json:"status"`
	OwnerAccountID *string           `json:"ownerAccountID"`
	OwnerName      *string           `json:"owner"`
	ReservedAt     *time.Time        `json:"reservedAt"`
	CreatedAt      time.Time         `json:"createdAt"`
	LastUpdatedAt  time.Time         `json:"lastUpdatedAt"`
}

// ListPlotsResponse wraps the list of plots.
type ListPlotsResponse struct {
	Plots []PlotResponse `json:"plots"`
}

// ToPlotResponse converts a domain.Plot to PlotResponse DTO
func ToPlotResponse(p *domain.Plot) PlotResponse {
	return PlotResponse{
		PlotID:         p.PlotID,
		Number:         p.Number,
		Status:         p.Status,
		OwnerAccountID: p.OwnerAccountID,
		OwnerName:      p.OwnerName,
		ReservedAt:     p.ReservedAt,
		CreatedAt:      p.CreatedAt,
		LastUpdatedAt:  p.LastUpdatedAt,
	}
}

// ToListPlotResponse converts a slice of domain.Plot to a ListPlotsResponse
func ToListPlotResponse(plots []domain.Plot) ListPlotsResponse {
	res := make([]PlotResponse, len(plots))
	for i, p := range plots {
		res[i] = ToPlotResponse(&p)
	}
	return ListPlotsResponse{Plots: res}
}
