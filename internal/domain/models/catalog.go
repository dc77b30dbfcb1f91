package models

import "time"

// JSON field names follow the MySQL column names the storefront already reads.

type Movie struct {
	MovieID  int64  `json:"MovieID"`
	Title    string `json:"Title"`
	Summary  string `json:"Summary"`
	Language string `json:"Language"`
	ImageURL string `json:"ImageURL"`
}

type SportsMatch struct {
	MatchID   int64      `json:"MatchID"`
	Team1ID   string     `json:"Team1ID"`
	Team2ID   string     `json:"Team2ID"`
	Price     *float64   `json:"Price"`
	StartTime *time.Time `json:"StartTime"`
	ImageURL  string     `json:"ImageURL"`
	Category  string     `json:"Category"`
	VenueID   *int64     `json:"VenueID"`
}

type Event struct {
	EventID   int64      `json:"EventID"`
	Name      string     `json:"Name"`
	Category  string     `json:"Category"`
	Price     *float64   `json:"Price"`
	StartTime *time.Time `json:"StartTime"`
	ImageURL  string     `json:"ImageURL"`
	VenueID   *int64     `json:"VenueID"`
}

type Venue struct {
	VenueID  int64  `json:"VenueID"`
	Name     string `json:"Name"`
	CityName string `json:"CityName"`
}

// Show is a movie screening slot.
type Show struct {
	ShowID     int64   `json:"ShowID"`
	VenueID    int64   `json:"VenueID"`
	ScreenInfo string  `json:"ScreenInfo"`
	StartTime  string  `json:"StartTime"`
	Price      float64 `json:"Price"`
	VenueName  string  `json:"VenueName"`
	CityName   string  `json:"CityName"`
}

type MovieDetail struct {
	Movie Movie  `json:"movie"`
	Shows []Show `json:"shows"`
}

type SportDetail struct {
	MatchID   int64      `json:"MatchID"`
	Team1ID   string     `json:"Team1ID"`
	Team2ID   string     `json:"Team2ID"`
	Price     *float64   `json:"Price"`
	StartTime *time.Time `json:"StartTime"`
	ImageURL  string     `json:"ImageURL"`
	Category  string     `json:"Category"`
	VenueName string     `json:"VenueName"`
	CityName  string     `json:"CityName"`
}

type EventDetail struct {
	EventID   int64      `json:"EventID"`
	EventName string     `json:"EventName"`
	Category  string     `json:"Category"`
	Price     *float64   `json:"Price"`
	StartTime *time.Time `json:"StartTime"`
	ImageURL  string     `json:"ImageURL"`
	VenueName string     `json:"VenueName"`
	CityName  string     `json:"CityName"`
}

// MovieInput is the admin payload for creating or updating a movie.
type MovieInput struct {
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	Language string `json:"language"`
	ImageURL string `json:"imageUrl"`
}

type SportInput struct {
	Team1    string   `json:"team1"`
	Team2    string   `json:"team2"`
	Price    *float64 `json:"price"`
	ImageURL string   `json:"imageUrl"`
	Category string   `json:"category"`
	VenueID  *int64   `json:"venueId"`
}

type EventInput struct {
	Name     string   `json:"name"`
	Category string   `json:"category"`
	Price    *float64 `json:"price"`
	ImageURL string   `json:"imageUrl"`
	VenueID  *int64   `json:"venueId"`
}
