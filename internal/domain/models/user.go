package models

// User mirrors a row of the Users table.
type User struct {
	UserID       int64
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Phone        string
}

// NewUser is the signup payload after hashing.
type NewUser struct {
	Name         string
	Username     string
	Email        string
	PasswordHash string
	Phone        string
}

// UserDetails is the public part of a user shown on the profile page.
type UserDetails struct {
	Name     string `json:"Name"`
	Email    string `json:"Email"`
	Phone    string `json:"Phone"`
	Username string `json:"Username"`
}

type Profile struct {
	UserDetails    UserDetails          `json:"userDetails"`
	BookingHistory []BookingHistoryItem `json:"bookingHistory"`
}
