package services

import (
	"context"
	"time"
)

// AuthSvcFacade defines admin authentication operations
type AuthSvcFacade interface {
	// Login verifies admin credentials and issues an access token with its expiry.
	Login(ctx context.Context, email string, password string) (string, time.Time, error)

	// EnsureAdmin creates the admin if no admin with that email exists.
	EnsureAdmin(ctx context.Context, email string, password string) error
}
