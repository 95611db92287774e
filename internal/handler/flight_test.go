package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func doSearch(t *testing.T, target string) *httptest.ResponseRecorder {
	t.Helper()
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	require.NoError(t, SearchFlights(c))
	return rec
}

func TestSearchFlightsHandler(t *testing.T) {
	rec := doSearch(t, "/v1/flights/search?from=Mumbai&to=Goa")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Flights []struct {
			Airline string `json:"airline"`
		} `json:"flights"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Flights, 1)
	assert.Equal(t, "Chaos Airways", body.Flights[0].Airline)
}

func TestSearchFlightsHandlerRequiresParams(t *testing.T) {
	rec := doSearch(t, "/v1/flights/search?from=Mumbai")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSearchFlightsHandlerEmptyResult(t *testing.T) {
	rec := doSearch(t, "/v1/flights/search?from=Atlantis&to=Nowhere")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"flights":[]}`, rec.Body.String())
}
