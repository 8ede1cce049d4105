package models

import "time"

// Admin is the admins table row.
type Admin struct {
	AdminID      string    `db:"admin_id"`
	Email        string    `db:"email"`
	Name         string    `db:"name"`
	PasswordHash string    `db:"password_hash"`
	CreatedAt    time.Time `db:"created_at"`
}
