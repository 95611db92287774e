package wizard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okalan/surprise-trip-booking/internal/model"
	"github.com/okalan/surprise-trip-booking/internal/trip"
)

type fakeProfiles struct {
	profile *model.UserProfile
	err     error
}

func (f *fakeProfiles) GetByUser(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	return f.profile, f.err
}

type fakeBookings struct {
	created []model.Booking
	nextID  uint64
	fail    bool
}

func (f *fakeBookings) Create(ctx context.Context, b *model.Booking) error {
	if f.fail {
		return errors.New("insert failed")
	}
	f.nextID++
	b.ID = f.nextID
	b.CreatedAt = time.Now().UTC()
	f.created = append(f.created, *b)
	return nil
}

func testProfile() *model.UserProfile {
	return &model.UserProfile{
		ID:                   1,
		UserID:               7,
		HomeCountry:          "India",
		MovieGenre:           "Horror",
		WishlistDestinations: []string{"Tokyo, Japan", "Maldives"},
		FavoriteFoods:        []string{"Pizza", "Sushi"},
	}
}

func testFlight() model.Flight {
	return model.Flight{
		ID:        "1",
		Airline:   "Chaos Airways",
		From:      "Mumbai",
		To:        "Goa",
		Departure: "10:30",
		Arrival:   "12:00",
		Price:     4500,
		Duration:  "1h 30m",
	}
}

func newTestMachine(profiles ProfileStore, bookings BookingStore) *Machine {
	return NewMachine(profiles, bookings, NewMemorySessionStore(), trip.NewSeeded(1))
}

func TestResolveUnauthenticated(t *testing.T) {
	m := newTestMachine(&fakeProfiles{}, &fakeBookings{})

	s, err := m.Resolve(context.Background(), 0)
	require.NoError(t, err)
	assert.Equal(t, StateAuth, s.State)
}

func TestResolveWithoutProfile(t *testing.T) {
	m := newTestMachine(&fakeProfiles{}, &fakeBookings{})

	s, err := m.Resolve(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, StateProfileSetup, s.State)

	// Session is persisted, a second call resumes it.
	again, err := m.Resolve(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, StateProfileSetup, again.State)
}

func TestResolveWithProfile(t *testing.T) {
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, &fakeBookings{})

	s, err := m.Resolve(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, StateFlightSearch, s.State)
}

func TestProfileCompletedAdvancesSetup(t *testing.T) {
	m := newTestMachine(&fakeProfiles{}, &fakeBookings{})

	_, err := m.Resolve(context.Background(), 7)
	require.NoError(t, err)

	s, err := m.ProfileCompleted(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, StateFlightSearch, s.State)
}

func TestProfileCompletedLeavesLaterStatesAlone(t *testing.T) {
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, &fakeBookings{})
	require.NoError(t, m.Sessions.Save(context.Background(), &Session{UserID: 7, State: StateSummary}))

	s, err := m.ProfileCompleted(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, StateSummary, s.State)
}

func TestSelectFlightRevealsSurprise(t *testing.T) {
	bookings := &fakeBookings{}
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, bookings)

	s, err := m.SelectFlight(context.Background(), 7, testFlight(), "2024-01-01")
	require.NoError(t, err)

	assert.Equal(t, StateSurpriseReveal, s.State)
	assert.False(t, s.Busy)
	require.NotNil(t, s.Surprise)
	assert.Contains(t, testProfile().WishlistDestinations, s.Surprise.From)
	assert.Equal(t, "Home", s.Surprise.To)
	assert.Equal(t, "2024-01-17", s.Surprise.Date)
	assert.Equal(t, "Goa", s.OriginalDestination)

	require.Len(t, bookings.created, 1)
	b := bookings.created[0]
	assert.Equal(t, model.BookingReturn, b.BookingType)
	require.NotNil(t, b.FromLocation)
	assert.Equal(t, s.Surprise.From, *b.FromLocation)
	assert.Equal(t, s.Surprise.Price, b.Price)

	// The persisted session carries the same state.
	stored, err := m.Sessions.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, StateSurpriseReveal, stored.State)
}

func TestSelectFlightRejectsBadDate(t *testing.T) {
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, &fakeBookings{})

	_, err := m.SelectFlight(context.Background(), 7, testFlight(), "01/01/2024")
	assert.ErrorIs(t, err, ErrBadDate)
}

func TestSelectFlightRequiresFlightSearchState(t *testing.T) {
	m := newTestMachine(&fakeProfiles{}, &fakeBookings{})

	// Without a profile the session resolves to profile-setup.
	_, err := m.SelectFlight(context.Background(), 7, testFlight(), "2024-01-01")
	assert.ErrorIs(t, err, ErrBadState)
}

func TestSelectFlightEmptyWishlist(t *testing.T) {
	p := testProfile()
	p.WishlistDestinations = nil
	m := newTestMachine(&fakeProfiles{profile: p}, &fakeBookings{})

	_, err := m.SelectFlight(context.Background(), 7, testFlight(), "2024-01-01")
	assert.ErrorIs(t, err, trip.ErrEmptyWishlist)

	// A failed transition leaves the session where it was.
	s, err := m.Sessions.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, StateFlightSearch, s.State)
	assert.False(t, s.Busy)
}

func TestSelectFlightPersistenceFailureKeepsState(t *testing.T) {
	bookings := &fakeBookings{fail: true}
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, bookings)

	_, err := m.SelectFlight(context.Background(), 7, testFlight(), "2024-01-01")
	require.Error(t, err)

	s, err := m.Sessions.Get(context.Background(), 7)
	require.NoError(t, err)
	assert.Equal(t, StateFlightSearch, s.State)
	assert.False(t, s.Busy)
	assert.Empty(t, s.Bookings)
}

func TestBusySessionRejectsTransitions(t *testing.T) {
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, &fakeBookings{})
	require.NoError(t, m.Sessions.Save(context.Background(), &Session{
		UserID: 7, State: StateFlightSearch, Busy: true,
	}))

	_, err := m.SelectFlight(context.Background(), 7, testFlight(), "2024-01-01")
	assert.ErrorIs(t, err, ErrBusy)
}

// runToReveal walks a fresh user to surprise-reveal.
func runToReveal(t *testing.T, m *Machine) *Session {
	t.Helper()
	s, err := m.SelectFlight(context.Background(), 7, testFlight(), "2024-01-01")
	require.NoError(t, err)
	require.Equal(t, StateSurpriseReveal, s.State)
	return s
}

func TestAcceptBooksOutbound(t *testing.T) {
	bookings := &fakeBookings{}
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, bookings)
	reveal := runToReveal(t, m)

	s, err := m.Accept(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, StateSummary, s.State)
	require.Len(t, bookings.created, 2)

	outbound := bookings.created[1]
	assert.Equal(t, model.BookingOutbound, outbound.BookingType)
	require.NotNil(t, outbound.FromLocation)
	assert.Equal(t, "Mumbai", *outbound.FromLocation)
	require.NotNil(t, outbound.ToLocation)
	assert.Equal(t, reveal.Surprise.From, *outbound.ToLocation)
	require.NotNil(t, outbound.DepartureDate)
	assert.Equal(t, "2024-01-01", *outbound.DepartureDate)
	assert.Equal(t, int64(4500), outbound.Price)

	assert.Len(t, s.Bookings, 2)
}

func TestDeclineSkipsOutbound(t *testing.T) {
	bookings := &fakeBookings{}
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, bookings)
	runToReveal(t, m)

	s, err := m.Decline(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, StateSummary, s.State)
	assert.Len(t, bookings.created, 1)
	assert.Len(t, s.Bookings, 1)
}

func TestAcceptRequiresReveal(t *testing.T) {
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, &fakeBookings{})

	_, err := m.Accept(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBadState)

	_, err = m.Decline(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBadState)
}

func TestSummarizeBooksMovieOnce(t *testing.T) {
	bookings := &fakeBookings{}
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, bookings)
	runToReveal(t, m)
	_, err := m.Accept(context.Background(), 7)
	require.NoError(t, err)

	sum, err := m.Summarize(context.Background(), 7)
	require.NoError(t, err)

	require.NotNil(t, sum.MovieTicket)
	assert.Equal(t, "Horror", sum.MovieTicket.Genre)
	assert.Equal(t, sum.ActualDestination, sum.MovieTicket.Location)
	assert.NotEmpty(t, sum.Message)
	assert.Equal(t, "Goa", sum.OriginalDestination)

	// Movie is two days before the surprise return departure.
	require.Len(t, bookings.created, 3)
	movie := bookings.created[2]
	assert.Equal(t, model.BookingMovie, movie.BookingType)
	require.NotNil(t, movie.MovieDate)
	assert.Equal(t, "2024-01-15", *movie.MovieDate)

	var want int64
	for _, b := range bookings.created {
		want += b.Price
	}
	assert.Equal(t, want, sum.TotalPrice)

	// A second call reuses the stored ticket instead of booking again.
	again, err := m.Summarize(context.Background(), 7)
	require.NoError(t, err)
	assert.Len(t, bookings.created, 3)
	assert.Equal(t, sum.MovieTicket.Seat, again.MovieTicket.Seat)
	assert.Equal(t, want, again.TotalPrice)
}

func TestSummarizeAfterDecline(t *testing.T) {
	bookings := &fakeBookings{}
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, bookings)
	runToReveal(t, m)
	_, err := m.Decline(context.Background(), 7)
	require.NoError(t, err)

	sum, err := m.Summarize(context.Background(), 7)
	require.NoError(t, err)

	// Return booking plus the movie booking, no outbound.
	require.Len(t, sum.Bookings, 2)
	assert.Equal(t, model.BookingReturn, sum.Bookings[0].BookingType)
	assert.Equal(t, model.BookingMovie, sum.Bookings[1].BookingType)
	assert.Equal(t, sum.Bookings[0].Price+sum.Bookings[1].Price, sum.TotalPrice)
}

func TestSummarizeRequiresSummaryState(t *testing.T) {
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, &fakeBookings{})
	runToReveal(t, m)

	_, err := m.Summarize(context.Background(), 7)
	assert.ErrorIs(t, err, ErrBadState)
}

func TestPublishCalledPerBooking(t *testing.T) {
	bookings := &fakeBookings{}
	m := newTestMachine(&fakeProfiles{profile: testProfile()}, bookings)

	var published []string
	m.Publish = func(ctx context.Context, b model.Booking) {
		published = append(published, b.BookingType)
	}

	runToReveal(t, m)
	_, err := m.Accept(context.Background(), 7)
	require.NoError(t, err)
	_, err = m.Summarize(context.Background(), 7)
	require.NoError(t, err)

	assert.Equal(t, []string{model.BookingReturn, model.BookingOutbound, model.BookingMovie}, published)
}
