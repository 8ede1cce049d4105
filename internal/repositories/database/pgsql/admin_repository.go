package pgsql

import (
	"context"
	"fmt"

	"github.com/SscSPs/plot_sales_admin/internal/core/domain"
	portsrepo "github.com/SscSPs/plot_sales_admin/internal/core/ports/repositories"
	"github.com/SscSPs/plot_sales_admin/internal/models"
	"github.com/SscSPs/plot_sales_admin/internal/utils/mapping"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxAdminRepository implements portsrepo.AdminRepository using pgx.
type PgxAdminRepository struct {
	pool *pgxpool.Pool
}

func newPgxAdminRepository(pool *pgxpool.Pool) *PgxAdminRepository {
	return &PgxAdminRepository{pool: pool}
}

var _ portsrepo.AdminRepository = (*PgxAdminRepository)(nil)

// FindAdminByEmail retrieves an admin by email.
func (r *PgxAdminRepository) FindAdminByEmail(ctx context.Context, email string) (*domain.Admin, error) {
	var m models.Admin
	err := r.pool.QueryRow(ctx,
		`SELECT admin_id, email, name, password_hash, created_at FROM admins WHERE email = $1`,
		email,
	).Scan(&m.AdminID, &m.Email, &m.Name, &m.PasswordHash, &m.CreatedAt)
	if err != nil {
		return nil, classifyPgError(err, fmt.Sprintf("admin %s", email))
	}
	admin := mapping.ToDomainAdmin(m)
	return &admin, nil
}

// SaveAdmin inserts a new admin.
func (r *PgxAdminRepository) SaveAdmin(ctx context.Context, admin domain.Admin) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO admins (admin_id, email, name, password_hash, created_at) VALUES ($1, $2, $3, $4, $5)`,
		admin.AdminID, admin.Email, admin.Name, admin.PasswordHash, admin.CreatedAt,
	)
	if err != nil {
		return classifyPgError(err, fmt.Sprintf("admin %s", admin.Email))
	}
	return nil
}
