package pgsql

import (
	"errors"
	"testing"

	"github.com/SscSPs/plot_sales_admin/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func TestClassifyPgError(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		wantIs error
	}{
		{name: "no rows", err: pgx.ErrNoRows, wantIs: apperrors.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: "23505", ConstraintName: "accounts_contact_key"}, wantIs: apperrors.ErrDuplicate},
		{name: "foreign key violation", err: &pgconn.PgError{Code: "23503"}, wantIs: apperrors.ErrNotFound},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, classifyPgError(tt.err, "ctx"), tt.wantIs)
		})
	}

	other := classifyPgError(errors.New("conn reset"), "save account")
	assert.False(t, apperrors.IsTaxonomy(other))
	assert.Contains(t, other.Error(), "save account")
}
