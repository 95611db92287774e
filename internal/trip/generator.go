// Package trip generates the surprise half of a booking: the random
// return flight home from a wishlist destination and the bonus movie
// ticket. Generators are pure aside from their injected randomness; the
// caller persists results separately.
package trip

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/okalan/surprise-trip-booking/internal/catalog"
	"github.com/okalan/surprise-trip-booking/internal/model"
)

// ErrEmptyWishlist is returned when a surprise return is requested for a
// profile without wishlist destinations. Profile validation should make
// this unreachable, but the generator guards its own contract.
var ErrEmptyWishlist = errors.New("wishlist is empty")

// Fixed attributes of every surprise return flight.
const (
	surpriseAirline   = "Destiny Airlines"
	surpriseDeparture = "18:30"
	surpriseArrival   = "23:45"
	surpriseDuration  = "5h 15m"
	returnOffsetDays  = 16
)

// Price ranges, inclusive lower bound, exclusive upper bound.
const (
	flightPriceMin = 10000
	flightPriceMax = 30000
	moviePriceMin  = 200
	moviePriceMax  = 700
)

const movieShowTime = "19:30"

// DateLayout is the wire format for all dates in this service.
const DateLayout = "2006-01-02"

// Generator draws surprise returns and movie tickets from an injected
// random source, so tests can seed it for reproducible scenarios.
type Generator struct {
	rng *rand.Rand
}

// NewGenerator returns a Generator backed by the given source.
func NewGenerator(rng *rand.Rand) *Generator { return &Generator{rng: rng} }

// NewSeeded is a convenience constructor used by tests and by main when no
// particular source is needed.
func NewSeeded(seed int64) *Generator {
	return &Generator{rng: rand.New(rand.NewSource(seed))}
}

// SurpriseReturn picks a uniformly random wishlist destination and builds
// the journey home: departure date is the original date plus 16 days,
// price is a uniform integer in [10000, 30000). The wishlist must be
// non-empty.
func (g *Generator) SurpriseReturn(wishlist []string, originalDate time.Time) (model.SurpriseReturn, error) {
	if len(wishlist) == 0 {
		return model.SurpriseReturn{}, ErrEmptyWishlist
	}
	from := wishlist[g.rng.Intn(len(wishlist))]
	returnDate := originalDate.AddDate(0, 0, returnOffsetDays)
	return model.SurpriseReturn{
		ID:        uuid.NewString(),
		Airline:   surpriseAirline,
		From:      from,
		To:        "Home",
		Departure: surpriseDeparture,
		Arrival:   surpriseArrival,
		Date:      returnDate.Format(DateLayout),
		Price:     int64(g.rng.Intn(flightPriceMax-flightPriceMin)) + flightPriceMin,
		Duration:  surpriseDuration,
	}, nil
}

// MovieTicket picks a uniformly random movie for the genre (falling back
// to the catalog default for unknown genres) and assembles a ticket at the
// given location and date. Seat is a random row letter A-J plus a seat
// number 1-20; price is a uniform integer in [200, 700).
func (g *Generator) MovieTicket(genre, location string, date time.Time) model.MovieTicket {
	list := catalog.MoviesByGenre(genre)
	m := list[g.rng.Intn(len(list))]
	seat := fmt.Sprintf("%c%d", 'A'+rune(g.rng.Intn(10)), g.rng.Intn(20)+1)
	return model.MovieTicket{
		Movie:    m,
		Location: location,
		Date:     date.Format(DateLayout),
		Time:     movieShowTime,
		Theater:  location + " Cinema Complex",
		Seat:     seat,
		Price:    int64(g.rng.Intn(moviePriceMax-moviePriceMin)) + moviePriceMin,
	}
}
