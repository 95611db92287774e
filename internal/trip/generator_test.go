package trip

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(DateLayout, s)
	require.NoError(t, err)
	return d
}

func TestSurpriseReturnProperties(t *testing.T) {
	g := NewSeeded(1)
	wishlist := []string{"Tokyo, Japan", "Bangkok, Thailand", "Maldives"}
	date := mustDate(t, "2024-03-05")

	for i := 0; i < 200; i++ {
		sr, err := g.SurpriseReturn(wishlist, date)
		require.NoError(t, err)

		assert.Contains(t, wishlist, sr.From)
		assert.Equal(t, "Home", sr.To)
		assert.Equal(t, "2024-03-21", sr.Date) // original date + 16 days
		assert.GreaterOrEqual(t, sr.Price, int64(10000))
		assert.Less(t, sr.Price, int64(30000))
		assert.Equal(t, "Destiny Airlines", sr.Airline)
		assert.NotEmpty(t, sr.ID)
	}
}

func TestSurpriseReturnSingleDestination(t *testing.T) {
	g := NewSeeded(42)
	sr, err := g.SurpriseReturn([]string{"Tokyo, Japan"}, mustDate(t, "2024-01-01"))
	require.NoError(t, err)

	assert.Equal(t, "Tokyo, Japan", sr.From)
	assert.Equal(t, "2024-01-17", sr.Date)
}

func TestSurpriseReturnEmptyWishlist(t *testing.T) {
	g := NewSeeded(7)
	_, err := g.SurpriseReturn(nil, mustDate(t, "2024-01-01"))
	assert.ErrorIs(t, err, ErrEmptyWishlist)
}

func TestSurpriseReturnMonthRollover(t *testing.T) {
	g := NewSeeded(3)
	sr, err := g.SurpriseReturn([]string{"Singapore"}, mustDate(t, "2024-12-20"))
	require.NoError(t, err)
	assert.Equal(t, "2025-01-05", sr.Date)
}

var seatRe = regexp.MustCompile(`^[A-J]([1-9]|1[0-9]|20)$`)

func TestMovieTicketProperties(t *testing.T) {
	g := NewSeeded(2)
	date := mustDate(t, "2024-06-10")

	for i := 0; i < 200; i++ {
		mt := g.MovieTicket("Horror", "Maldives", date)

		assert.Equal(t, "Horror", mt.Genre)
		assert.Regexp(t, seatRe, mt.Seat)
		assert.GreaterOrEqual(t, mt.Price, int64(200))
		assert.Less(t, mt.Price, int64(700))
		assert.Equal(t, "19:30", mt.Time)
		assert.Equal(t, "Maldives Cinema Complex", mt.Theater)
		assert.Equal(t, "2024-06-10", mt.Date)
	}
}

func TestMovieTicketUnknownGenreFallsBack(t *testing.T) {
	g := NewSeeded(5)
	mt := g.MovieTicket("Documentary", "Singapore", mustDate(t, "2024-06-10"))
	assert.Equal(t, "Comedy", mt.Genre)
}

func TestSummaryMessageNeverEmpty(t *testing.T) {
	g := NewSeeded(9)
	for i := 0; i < 50; i++ {
		msg := g.SummaryMessage("Goa", "Maldives")
		assert.NotEmpty(t, msg)
	}
}
