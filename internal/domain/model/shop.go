package model

import "time"

// Shop represents a laundry shop listed on the marketplace.
type Shop struct {
	ID          int64
	Name        string
	Address     string
	Description string
	Rate        float64
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
