package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/okalan/surprise-trip-booking/internal/catalog"
)

// SearchFlights handles GET /v1/flights/search?from=&to=&date=. It filters
// the fixed catalog by substring match on origin or destination. The date
// is validated but does not narrow the result; responses are served
// through the Redis cache middleware since the catalog never changes.
func SearchFlights(c echo.Context) error {
	from := strings.TrimSpace(c.QueryParam("from"))
	to := strings.TrimSpace(c.QueryParam("to"))
	if from == "" || to == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "from and to are required"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"flights": catalog.SearchFlights(from, to),
	})
}
