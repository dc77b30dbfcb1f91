package models

import "time"

// BookingHistoryItem is one row of a user's booking history.
type BookingHistoryItem struct {
	BookingID   int64     `json:"BookingID"`
	NoOfTickets int64     `json:"NoOfTickets"`
	TotalPrice  float64   `json:"TotalPrice"`
	BookingTime time.Time `json:"BookingTime"`
	ItemName    string    `json:"ItemName"`
}

// BookingTicket carries everything printed on a booking ticket.
type BookingTicket struct {
	BookingID   int64
	Username    string
	Name        string
	Category    string
	ItemID      int64
	ItemName    string
	NoOfTickets int64
	TotalPrice  float64
	BookingTime time.Time
}
