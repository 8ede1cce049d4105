package repositories

import (
	"context"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
)

// AdminRepository defines persistence operations for back-office admins
type AdminRepository interface {
	FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error)
	SaveAdmin(ctx context.Context, admin domain.Admin) error
}
