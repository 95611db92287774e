// Package catalog holds the fixed in-memory flight and movie data the
// service searches against. There is no real inventory behind this app;
// the catalog stands in for an external flight/movie provider.
package catalog

import (
	"strings"

	"github.com/okalan/surprise-trip-booking/internal/model"
)

var flights = []model.Flight{
	{
		ID:        "1",
		Airline:   "Chaos Airways",
		From:      "Mumbai",
		To:        "Goa",
		Departure: "10:30",
		Arrival:   "12:00",
		Price:     4500,
		Duration:  "1h 30m",
	},
	{
		ID:        "2",
		Airline:   "Mystery Express",
		From:      "Delhi",
		To:        "Bangkok",
		Departure: "14:15",
		Arrival:   "19:45",
		Price:     12000,
		Duration:  "4h 30m",
	},
	{
		ID:        "3",
		Airline:   "Surprise Sky",
		From:      "Bangalore",
		To:        "Singapore",
		Departure: "22:30",
		Arrival:   "04:15+1",
		Price:     15000,
		Duration:  "4h 45m",
	},
}

// SearchFlights filters the catalog by case-insensitive substring match on
// origin OR destination. The requested travel date does not narrow the
// result; every catalog flight runs daily.
func SearchFlights(from, to string) []model.Flight {
	from = strings.ToLower(strings.TrimSpace(from))
	to = strings.ToLower(strings.TrimSpace(to))
	out := []model.Flight{}
	for _, f := range flights {
		if (from != "" && strings.Contains(strings.ToLower(f.From), from)) ||
			(to != "" && strings.Contains(strings.ToLower(f.To), to)) {
			out = append(out, f)
		}
	}
	return out
}

// FlightByID resolves a catalog flight by its identifier, typically echoed
// back by the client after a search. Returns nil when unknown.
func FlightByID(id string) *model.Flight {
	for i := range flights {
		if flights[i].ID == id {
			f := flights[i]
			return &f
		}
	}
	return nil
}
