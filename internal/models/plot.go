package models

import (
	"database/sql"
	"time"
)

// Plot is a plots row joined with its current assignment, if any.
type Plot struct {
	PlotID         string         `db:"plot_id"`
	Number         string         `db:"number"`
	Status         string         `db:"status"`
	ReservedAt     sql.NullTime   `db:"reserved_at"`
	OwnerAccountID sql.NullString `db:"owner_account_id"` // From plot_assignments
	OwnerName      sql.NullString `db:"owner_name"`       // From accounts, display only
	CreatedAt      time.Time      `db:"created_at"`
	LastUpdatedAt  time.Time      `db:"last_updated_at"`
}
