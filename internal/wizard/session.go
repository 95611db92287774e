// Package wizard implements the booking flow state machine. Each
// authenticated user has at most one session which walks the states
// loading -> auth -> profile-setup -> flight-search -> surprise-reveal ->
// summary. Transitions are driven by discrete user actions; the session
// carries only the data valid for its current state.
package wizard

import "github.com/okalan/surprise-trip-booking/internal/model"

// State identifies the screen the wizard is on.
type State string

const (
	StateAuth           State = "auth"
	StateProfileSetup   State = "profile-setup"
	StateFlightSearch   State = "flight-search"
	StateSurpriseReveal State = "surprise-reveal"
	StateSummary        State = "summary"
)

// Session is the per-user wizard state persisted between requests. Field
// presence follows the state: SelectedFlight, SelectedDate and Surprise are
// set from surprise-reveal on, MovieTicket only once the summary has been
// assembled. Bookings accumulates every record persisted during this
// session, in creation order (the return booking is always first).
type Session struct {
	UserID              uint64                `json:"user_id"`
	State               State                 `json:"state"`
	Busy                bool                  `json:"busy"`
	SelectedFlight      *model.Flight         `json:"selected_flight,omitempty"`
	SelectedDate        string                `json:"selected_date,omitempty"`
	OriginalDestination string                `json:"original_destination,omitempty"`
	Surprise            *model.SurpriseReturn `json:"surprise,omitempty"`
	Bookings            []model.Booking       `json:"bookings"`
	MovieTicket         *model.MovieTicket    `json:"movie_ticket,omitempty"`
}

// returnBooking finds the session's persisted return booking, or nil. The
// summary step requires one; transitions guarantee it exists by then.
func (s *Session) returnBooking() *model.Booking {
	for i := range s.Bookings {
		if s.Bookings[i].BookingType == model.BookingReturn {
			return &s.Bookings[i]
		}
	}
	return nil
}
