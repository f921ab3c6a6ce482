package domain

import "time"

// Order is consumed only in aggregate form (count and revenue sum).
type Order struct {
	ID         int64
	UserID     int64
	TotalPrice float64
	CreatedAt  time.Time
}

// Summary is the admin dashboard snapshot. It is assembled from four
// independent queries and carries no consistency guarantee between fields.
type Summary struct {
	UserCount    int64
	ProductCount int64
	OrderCount   int64
	TotalRevenue float64
}
