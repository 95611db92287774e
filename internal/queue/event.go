// Package queue defines message payloads exchanged over the message broker.
package queue

// BookingCreatedEvent is published when a booking row is persisted. It
// contains enough information for downstream consumers to log, notify, or
// trigger analytics without querying the primary database. Fields that do
// not apply to the booking type are empty.
type BookingCreatedEvent struct {
	BookingID     uint64 `json:"booking_id"`
	UserID        uint64 `json:"user_id"`
	BookingType   string `json:"booking_type"`
	FromLocation  string `json:"from_location,omitempty"`
	ToLocation    string `json:"to_location,omitempty"`
	DepartureDate string `json:"departure_date,omitempty"`
	MovieTitle    string `json:"movie_title,omitempty"`
	MovieDate     string `json:"movie_date,omitempty"`
	Price         int64  `json:"price"`
	CreatedAt     string `json:"created_at"`
}
