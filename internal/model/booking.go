package model

import "time"

// Booking types distinguish the three records the flow produces. A
// "return" booking is always created first (it is the surprise), an
// "outbound" booking only when the user accepts the matching ticket,
// and a "movie" booking when the summary is assembled.
const (
	BookingReturn   = "return"
	BookingOutbound = "outbound"
	BookingMovie    = "movie"
)

// Booking is an append-only record in the `bookings` table. Flight
// bookings fill the location/date columns, movie bookings the movie
// columns; the unused side stays NULL. Prices are integers in
// currency-agnostic units. Bookings are never updated or deleted.
//
// Fields:
//  ID            – primary key identifier.
//  UserID        – owner of the booking.
//  BookingType   – one of return, outbound, movie.
//  FromLocation  – flight origin (nullable).
//  ToLocation    – flight or movie destination (nullable).
//  DepartureDate – flight departure date, YYYY-MM-DD (nullable).
//  MovieTitle    – movie title (nullable).
//  MovieGenre    – movie genre (nullable).
//  MovieDate     – movie show date, YYYY-MM-DD (nullable).
//  Price         – price in whole units.
//  CreatedAt     – creation timestamp.
type Booking struct {
	ID            uint64    `json:"id"`                       // bookings.id
	UserID        uint64    `json:"user_id"`                  // bookings.user_id
	BookingType   string    `json:"booking_type"`             // bookings.booking_type
	FromLocation  *string   `json:"from_location,omitempty"`  // bookings.from_location (nullable)
	ToLocation    *string   `json:"to_location,omitempty"`    // bookings.to_location (nullable)
	DepartureDate *string   `json:"departure_date,omitempty"` // bookings.departure_date (nullable)
	MovieTitle    *string   `json:"movie_title,omitempty"`    // bookings.movie_title (nullable)
	MovieGenre    *string   `json:"movie_genre,omitempty"`    // bookings.movie_genre (nullable)
	MovieDate     *string   `json:"movie_date,omitempty"`     // bookings.movie_date (nullable)
	Price         int64     `json:"price"`                    // bookings.price
	CreatedAt     time.Time `json:"created_at"`               // bookings.created_at
}
