package domain

import "time"

// Book is a catalog entry. Hidden books (Visible == false) never appear in
// public listings but stay reachable by id for the admin pages.
type Book struct {
	ID          int64
	Title       string
	Author      string
	Description string
	Price       float64
	Image       string
	Visible     bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
