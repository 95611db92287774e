package repository

import (
	"context"
	"database/sql"

	"github.com/okalan/surprise-trip-booking/internal/model"
)

// BookingRepo provides access to the bookings table. Bookings form an
// append-only log: rows are inserted and listed, never updated or
// deleted. All timestamp fields are assumed to be stored in UTC.
type BookingRepo struct {
	db *sql.DB
}

// NewBookingRepo returns a new BookingRepo bound to the given database.
func NewBookingRepo(db *sql.DB) *BookingRepo { return &BookingRepo{db: db} }

// Create inserts a booking row. The generated ID and created_at are
// populated on the provided model.
func (r *BookingRepo) Create(ctx context.Context, b *model.Booking) error {
	const q = `INSERT INTO bookings
		(user_id, booking_type, from_location, to_location, departure_date,
		 movie_title, movie_genre, movie_date, price)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q,
		b.UserID, b.BookingType, b.FromLocation, b.ToLocation, b.DepartureDate,
		b.MovieTitle, b.MovieGenre, b.MovieDate, b.Price)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	b.ID = uint64(id)
	const sel = `SELECT created_at FROM bookings WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, b.ID).Scan(&b.CreatedAt)
}

// ListByUser returns all bookings for a user ordered by creation time
// descending (newest first), matching how the summary screen displays
// booking history.
func (r *BookingRepo) ListByUser(ctx context.Context, userID uint64) ([]model.Booking, error) {
	const q = `SELECT id, user_id, booking_type, from_location, to_location,
		departure_date, movie_title, movie_genre, movie_date, price, created_at
		FROM bookings WHERE user_id = ?
		ORDER BY created_at DESC, id DESC`
	rows, err := r.db.QueryContext(ctx, q, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []model.Booking{}
	for rows.Next() {
		var b model.Booking
		if err := rows.Scan(
			&b.ID, &b.UserID, &b.BookingType, &b.FromLocation, &b.ToLocation,
			&b.DepartureDate, &b.MovieTitle, &b.MovieGenre, &b.MovieDate,
			&b.Price, &b.CreatedAt,
		); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}
