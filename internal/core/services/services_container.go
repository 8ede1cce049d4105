package services

import (
	portsrepo "github.com/SscSPs/plot_sales_admin/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/plot_sales_admin/internal/core/ports/services"
	"github.com/SscSPs/plot_sales_admin/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	plotSync := NewPlotOwnershipSynchronizer(repos.PlotRepo, cfg.PlotMatchPolicy)

	return &portssvc.ServiceContainer{
		Account:   NewAccountService(repos.AccountRepo, repos.PaymentRepo, plotSync),
		Payment:   NewPaymentService(repos.PaymentRepo, repos.AccountRepo, cfg.OverpaymentPolicy),
		Plot:      NewPlotService(repos.PlotRepo),
		Auth:      NewAuthService(cfg, repos.AdminRepo),
		Reporting: NewReportingService(repos.AccountRepo, repos.PaymentRepo),
	}
}
