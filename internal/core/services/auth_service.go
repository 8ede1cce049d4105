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
	"github.com/SscSPs/plot_sales_admin/internal/platform/config"
	"github.com/SscSPs/plot_sales_admin/internal/utils"
	"github.com/google/uuid"
)

// authService authenticates admins and issues access tokens.
type authService struct {
	BaseService
	cfg       *config.Config
	adminRepo portsrepo.AdminRepository
}

// NewAuthService creates a new instance of authService.
func NewAuthService(cfg *config.Config, adminRepo portsrepo.AdminRepository) portssvc.AuthSvcFacade {
	return &authService{cfg: cfg, adminRepo: adminRepo}
}

var _ portssvc.AuthSvcFacade = (*authService)(nil)

// Login verifies the admin's password and returns a signed JWT and its expiry.
func (s *authService) Login(ctx context.Context, email string, password string) (string, time.Time, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	admin, err := s.adminRepo.FindAdminByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return "", time.Time{}, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
		}
		s.LogError(ctx, err, "Failed to load admin for login")
		return "", time.Time{}, err
	}

	if !utils.CheckPasswordHash(password, admin.PasswordHash) {
		s.GetLogger(ctx).Warn("Admin login with wrong password", slog.String("admin_id", admin.AdminID))
		return "", time.Time{}, fmt.Errorf("%w: invalid email or password", apperrors.ErrUnauthorized)
	}

	expiresAt := time.Now().Add(s.cfg.JWTExpiryDuration)
	token, err := utils.GenerateJWT(admin.AdminID, admin.Email, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to generate access token", slog.String("admin_id", admin.AdminID))
		return "", time.Time{}, fmt.Errorf("failed to generate access token: %w", err)
	}

	s.LogInfo(ctx, "Admin logged in", slog.String("admin_id", admin.AdminID))
	return token, expiresAt, nil
}

// EnsureAdmin creates the admin when missing. It is safe to call on every startup.
func (s *authService) EnsureAdmin(ctx context.Context, email string, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return fmt.Errorf("%w: admin email and password are required", apperrors.ErrValidation)
	}

	_, err := s.adminRepo.FindAdminByEmail(ctx, email)
	if err == nil {
		return nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}
	admin := domain.Admin{
		AdminID:      uuid.NewString(),
		Email:        email,
		Name:         strings.SplitN(email, "@", 2)[0],
		PasswordHash: hash,
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.adminRepo.SaveAdmin(ctx, admin); err != nil {
		// Another instance may have bootstrapped the same admin concurrently.
		if errors.Is(err, apperrors.ErrDuplicate) {
			return nil
		}
		return fmt.Errorf("failed to save admin: %w", err)
	}

	s.LogInfo(ctx, "Bootstrap admin created", slog.String("admin_id", admin.AdminID))
	return nil
}
