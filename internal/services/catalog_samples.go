package services

import "flicktickets/internal/domain/models"

// Shown when the Venue table is still empty, and as the show list on movie
// details until real show scheduling lands in the schema.

func sampleVenues() []models.Venue {
	return []models.Venue{
		{VenueID: 1, Name: "PVR Orion Mall", CityName: "Bengaluru"},
		{VenueID: 2, Name: "INOX Garuda Mall", CityName: "Bengaluru"},
		{VenueID: 3, Name: "Palace Grounds", CityName: "Bengaluru"},
		{VenueID: 4, Name: "Central Auditorium", CityName: "Bengaluru"},
		{VenueID: 5, Name: "Wonderla Amusement Park", CityName: "Bengaluru"},
		{VenueID: 6, Name: "Chinnaswamy Stadium", CityName: "Bengaluru"},
		{VenueID: 7, Name: "Kanteerava Indoor Stadium", CityName: "Bengaluru"},
	}
}

func sampleShows() []models.Show {
	venues := sampleVenues()
	return []models.Show{
		{ShowID: 9001, VenueID: 1, ScreenInfo: "Screen 1", StartTime: "2025-12-01T18:00:00", Price: 350, VenueName: venues[0].Name, CityName: venues[0].CityName},
		{ShowID: 9002, VenueID: 2, ScreenInfo: "Audi 3", StartTime: "2025-12-01T21:00:00", Price: 400, VenueName: venues[1].Name, CityName: venues[1].CityName},
	}
}
