package domain

import "time"

// Admin is a back-office user who manages accounts, plots and payments.
type Admin struct {
	AdminID      string    `json:"adminID"`
	Email        string    `json:"email"`
	Name         string    `json:"name"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
