package catalog

import (
	"strings"

	"github.com/okalan/surprise-trip-booking/internal/model"
)

// DefaultGenre is used when a requested genre has no catalog entry.
const DefaultGenre = "comedy"

var movies = map[string][]model.Movie{
	"action": {
		{ID: "1", Title: "Tokyo Drift Adventure", Genre: "Action", Poster: "racing-car", Rating: 8.2},
		{ID: "2", Title: "Bangkok Heist", Genre: "Action", Poster: "explosion", Rating: 7.8},
	},
	"comedy": {
		{ID: "3", Title: "Lost in Translation Comedy", Genre: "Comedy", Poster: "laughing", Rating: 8.5},
		{ID: "4", Title: "Vacation Mishaps", Genre: "Comedy", Poster: "masks", Rating: 7.9},
	},
	"drama": {
		{ID: "5", Title: "Journey of Hearts", Genre: "Drama", Poster: "broken-heart", Rating: 8.7},
		{ID: "6", Title: "City of Dreams", Genre: "Drama", Poster: "star", Rating: 8.1},
	},
	"horror": {
		{ID: "7", Title: "Haunted Hotel", Genre: "Horror", Poster: "ghost", Rating: 7.3},
		{ID: "8", Title: "Night Terror", Genre: "Horror", Poster: "knife", Rating: 7.6},
	},
}

// MoviesByGenre returns the catalog entries for a genre (case-insensitive).
// Genres without an entry fall back to the default genre's list, so the
// result is never empty.
func MoviesByGenre(genre string) []model.Movie {
	if list, ok := movies[strings.ToLower(strings.TrimSpace(genre))]; ok {
		return list
	}
	return movies[DefaultGenre]
}
