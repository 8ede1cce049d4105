package mapping

import (
	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	"github.com/SscSPs/plot_sales_admin/internal/models"
)

// ToDomainPlot converts a model Plot to a domain Plot.
// Owner fields are only populated for sold plots with a live assignment.
func ToDomainPlot(m models.Plot) domain.Plot {
	p := domain.Plot{
		PlotID:        m.PlotID,
		Number:        m.Number,
		Status:        domain.PlotStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		LastUpdatedAt: m.LastUpdatedAt,
	}
	if m.ReservedAt.Valid {
		t := m.ReservedAt.Time
		p.ReservedAt = &t
	}
	if m.OwnerAccountID.Valid {
		id := m.OwnerAccountID.String
		p.OwnerAccountID = &id
	}
	if m.OwnerName.Valid {
		name := m.OwnerName.String
		p.OwnerName = &name
	}
	return p
}

// ToDomainAdmin converts a model Admin to a domain Admin
func ToDomainAdmin(m models.Admin) domain.Admin {
	return domain.Admin{
		AdminID:      m.AdminID,
		Email:        m.Email,
		Name:         m.Name,
		PasswordHash: m.PasswordHash,
		CreatedAt:    m.CreatedAt,
	}
}
