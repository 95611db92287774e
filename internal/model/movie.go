package model

// Movie is an entry in the fixed movie catalog, keyed by genre.
type Movie struct {
	ID     string  `json:"id"`
	Title  string  `json:"title"`
	Genre  string  `json:"genre"`
	Poster string  `json:"poster"`
	Rating float64 `json:"rating"`
}

// MovieTicket is a generated bonus ticket for a catalog movie. Like
// SurpriseReturn it is derived data: the wizard keeps it in the
// session and persists only a "movie" booking row.
type MovieTicket struct {
	Movie
	Location string `json:"location"`
	Date     string `json:"date"` // YYYY-MM-DD, return departure - 2 days
	Time     string `json:"time"`
	Theater  string `json:"theater"`
	Seat     string `json:"seat"` // row letter A-J + seat number 1-20
	Price    int64  `json:"price"`
}
