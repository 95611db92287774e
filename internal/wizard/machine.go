package wizard

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/okalan/surprise-trip-booking/internal/model"
	"github.com/okalan/surprise-trip-booking/internal/trip"
)

// Sentinel errors returned by transitions. Handlers translate these into
// HTTP responses; any other error is a persistence failure.
var (
	// ErrBusy means another transition for this session is still running.
	// Transitions are serialized per session; the client should retry once
	// the running operation finishes.
	ErrBusy = errors.New("wizard operation already in progress")
	// ErrBadState means the requested action is not valid in the session's
	// current state (e.g. accepting a surprise before one was revealed).
	ErrBadState = errors.New("action not valid in current state")
	// ErrNoProfile means the flow reached a point that requires a profile
	// but none exists for the user.
	ErrNoProfile = errors.New("profile not set up")
	// ErrBadDate means a client-supplied date was not YYYY-MM-DD.
	ErrBadDate = errors.New("invalid date")
)

// ProfileStore is the subset of the profile repository the machine needs.
// GetByUser returns (nil, nil) when the user has no profile.
type ProfileStore interface {
	GetByUser(ctx context.Context, userID uint64) (*model.UserProfile, error)
}

// BookingStore is the subset of the booking repository the machine needs.
type BookingStore interface {
	Create(ctx context.Context, b *model.Booking) error
}

// Machine orchestrates wizard transitions. It reads the profile store,
// invokes the trip generators, persists bookings and keeps the session
// current. Publish, when set, is called after each successfully persisted
// booking; publish failures are the publisher's problem, not the flow's.
type Machine struct {
	Profiles ProfileStore
	Bookings BookingStore
	Sessions SessionStore
	Gen      *trip.Generator
	Publish  func(ctx context.Context, b model.Booking)
}

// NewMachine constructs a Machine. All stores and the generator must be
// non-nil; Publish is optional.
func NewMachine(profiles ProfileStore, bookings BookingStore, sessions SessionStore, gen *trip.Generator) *Machine {
	if profiles == nil || bookings == nil || sessions == nil || gen == nil {
		panic("nil dependency passed to NewMachine")
	}
	return &Machine{Profiles: profiles, Bookings: bookings, Sessions: sessions, Gen: gen}
}

// Resolve determines the state for a user. Unauthenticated callers
// (userID 0) land on auth. Authenticated users resume an existing session
// if one is stored; otherwise the profile decides: absent -> profile-setup,
// present -> flight-search. The state is never flight-search without a
// resolved profile.
func (m *Machine) Resolve(ctx context.Context, userID uint64) (*Session, error) {
	if userID == 0 {
		return &Session{State: StateAuth}, nil
	}
	s, err := m.Sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s != nil {
		return s, nil
	}
	p, err := m.Profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	s = &Session{UserID: userID, State: StateProfileSetup, Bookings: []model.Booking{}}
	if p != nil {
		s.State = StateFlightSearch
	}
	if err := m.Sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// ProfileCompleted advances a profile-setup session to flight-search after
// the profile has been created. Sessions already past setup are returned
// unchanged.
func (m *Machine) ProfileCompleted(ctx context.Context, userID uint64) (*Session, error) {
	s, err := m.Sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s == nil {
		// No stored session yet; Resolve will see the profile now.
		return m.Resolve(ctx, userID)
	}
	if s.State != StateProfileSetup {
		return s, nil
	}
	s.State = StateFlightSearch
	if err := m.Sessions.Save(ctx, s); err != nil {
		return nil, err
	}
	return s, nil
}

// SelectFlight handles the flight-search -> surprise-reveal transition. It
// generates a surprise return from the profile's wishlist and the selected
// departure date, persists it as a return booking and stores it on the
// session. On failure the session stays in flight-search and the error is
// returned to the caller for a retry.
func (m *Machine) SelectFlight(ctx context.Context, userID uint64, flight model.Flight, date string) (*Session, error) {
	s, err := m.Resolve(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s.State != StateFlightSearch {
		return nil, ErrBadState
	}
	depDate, err := time.Parse(trip.DateLayout, date)
	if err != nil {
		return nil, ErrBadDate
	}
	if err := m.begin(ctx, s); err != nil {
		return nil, err
	}
	defer m.end(ctx, s)

	p, err := m.Profiles.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, ErrNoProfile
	}
	surprise, err := m.Gen.SurpriseReturn(p.WishlistDestinations, depDate)
	if err != nil {
		return nil, err
	}
	booking := model.Booking{
		UserID:        userID,
		BookingType:   model.BookingReturn,
		FromLocation:  &surprise.From,
		ToLocation:    &surprise.To,
		DepartureDate: &surprise.Date,
		Price:         surprise.Price,
	}
	if err := m.Bookings.Create(ctx, &booking); err != nil {
		return nil, err
	}
	m.publish(ctx, booking)

	s.SelectedFlight = &flight
	s.SelectedDate = date
	s.OriginalDestination = flight.To
	s.Surprise = &surprise
	s.Bookings = []model.Booking{booking}
	s.State = StateSurpriseReveal
	return s, nil
}

// Accept handles the accept branch of surprise-reveal: it books the
// matching outbound ticket (destination equals the surprise return's
// origin) and moves to summary.
func (m *Machine) Accept(ctx context.Context, userID uint64) (*Session, error) {
	s, err := m.Sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s == nil || s.State != StateSurpriseReveal || s.SelectedFlight == nil || s.Surprise == nil {
		return nil, ErrBadState
	}
	if err := m.begin(ctx, s); err != nil {
		return nil, err
	}
	defer m.end(ctx, s)

	booking := model.Booking{
		UserID:        userID,
		BookingType:   model.BookingOutbound,
		FromLocation:  &s.SelectedFlight.From,
		ToLocation:    &s.Surprise.From,
		DepartureDate: &s.SelectedDate,
		Price:         s.SelectedFlight.Price,
	}
	if err := m.Bookings.Create(ctx, &booking); err != nil {
		return nil, err
	}
	m.publish(ctx, booking)

	s.Bookings = append(s.Bookings, booking)
	s.State = StateSummary
	return s, nil
}

// Decline handles the decline branch of surprise-reveal: no outbound
// booking, straight to summary with only the return booking.
func (m *Machine) Decline(ctx context.Context, userID uint64) (*Session, error) {
	s, err := m.Sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s == nil || s.State != StateSurpriseReveal {
		return nil, ErrBadState
	}
	if err := m.begin(ctx, s); err != nil {
		return nil, err
	}
	defer m.end(ctx, s)

	s.State = StateSummary
	return s, nil
}

// Summary is the aggregate the summary screen renders: every booking made
// this session (the movie booking included), the generated ticket, and the
// exact integer sum of all booking prices.
type Summary struct {
	Bookings            []model.Booking    `json:"bookings"`
	MovieTicket         *model.MovieTicket `json:"movie_ticket,omitempty"`
	OriginalDestination string             `json:"original_destination"`
	ActualDestination   string             `json:"actual_destination"`
	Message             string             `json:"message"`
	TotalPrice          int64              `json:"total_price"`
}

// Summarize assembles the summary. On first entry it derives the movie
// date (return departure minus 2 days), generates a movie ticket for the
// profile's genre at the surprise destination, and persists it as a movie
// booking. Subsequent calls reuse the stored ticket, so the movie is
// booked exactly once per session.
func (m *Machine) Summarize(ctx context.Context, userID uint64) (*Summary, error) {
	s, err := m.Sessions.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if s == nil || s.State != StateSummary {
		return nil, ErrBadState
	}
	ret := s.returnBooking()
	if ret == nil || ret.DepartureDate == nil {
		return nil, ErrBadState
	}
	actual := "Unknown"
	if s.Surprise != nil {
		actual = s.Surprise.From
	}

	if s.MovieTicket == nil {
		if err := m.begin(ctx, s); err != nil {
			return nil, err
		}
		defer m.end(ctx, s)

		retDate, err := time.Parse(trip.DateLayout, *ret.DepartureDate)
		if err != nil {
			return nil, ErrBadDate
		}
		genre := catalogGenre(ctx, m.Profiles, userID)
		ticket := m.Gen.MovieTicket(genre, actual, retDate.AddDate(0, 0, -2))
		booking := model.Booking{
			UserID:      userID,
			BookingType: model.BookingMovie,
			MovieTitle:  &ticket.Title,
			MovieGenre:  &ticket.Genre,
			MovieDate:   &ticket.Date,
			ToLocation:  &ticket.Location,
			Price:       ticket.Price,
		}
		if err := m.Bookings.Create(ctx, &booking); err != nil {
			return nil, err
		}
		m.publish(ctx, booking)

		s.Bookings = append(s.Bookings, booking)
		s.MovieTicket = &ticket
	}

	var total int64
	for _, b := range s.Bookings {
		total += b.Price
	}
	return &Summary{
		Bookings:            s.Bookings,
		MovieTicket:         s.MovieTicket,
		OriginalDestination: s.OriginalDestination,
		ActualDestination:   actual,
		Message:             m.Gen.SummaryMessage(s.OriginalDestination, actual),
		TotalPrice:          total,
	}, nil
}

// catalogGenre resolves the movie genre for a user, defaulting when the
// profile cannot be loaded. The movie catalog falls back on unknown
// genres anyway, so an empty string is safe.
func catalogGenre(ctx context.Context, profiles ProfileStore, userID uint64) string {
	p, err := profiles.GetByUser(ctx, userID)
	if err != nil || p == nil {
		return ""
	}
	return p.MovieGenre
}

func (m *Machine) publish(ctx context.Context, b model.Booking) {
	if m.Publish != nil {
		m.Publish(ctx, b)
	}
}

// begin marks the session busy so a second transition cannot start while
// one is in flight. The flag is persisted so it holds across instances
// sharing the Redis store.
func (m *Machine) begin(ctx context.Context, s *Session) error {
	if s.Busy {
		return ErrBusy
	}
	s.Busy = true
	return m.Sessions.Save(ctx, s)
}

// end clears the busy flag and persists whatever the transition left on
// the session. Transitions mutate the session only after their side
// effects succeeded, so a failed transition saves the pre-transition state.
func (m *Machine) end(ctx context.Context, s *Session) {
	s.Busy = false
	if err := m.Sessions.Save(ctx, s); err != nil {
		log.Printf("wizard: save session for user %d failed: %v", s.UserID, err)
	}
}
