package domain

import "time"

// PlotStatus is the sale status of a plot.
type PlotStatus string

const (
	PlotAvailable PlotStatus = "Available"
	PlotSold      PlotStatus = "Sold"
)

// Plot is a sellable unit of land inventory.
// OwnerAccountID and OwnerName are set iff Status is PlotSold.
type Plot struct {
	PlotID         string     `json:"plotID"`
	Number         string     `json:"number"`
	Status         PlotStatus `json:"status"`
	OwnerAccountID *string    `json:"ownerAccountID,omitempty"`
	OwnerName      *string    `json:"ownerName,omitempty"`
	ReservedAt     *time.Time `json:"reservedAt,omitempty"`
	CreatedAt      time.Time  `json:"createdAt"`
	LastUpdatedAt  time.Time  `json:"lastUpdatedAt"`
}

// IsValid reports whether s is a known plot status.
func (s PlotStatus) IsValid() bool {
	return s == PlotAvailable || s == PlotSold
}
