package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/okalan/surprise-trip-booking/internal/catalog"
	"github.com/okalan/surprise-trip-booking/internal/trip"
	"github.com/okalan/surprise-trip-booking/internal/wizard"
)

// WizardHandler exposes the booking flow over HTTP. Every endpoint acts on
// the caller's own session; the state machine itself lives in the wizard
// package and these handlers only translate requests and errors.
type WizardHandler struct {
	Machine *wizard.Machine
}

func NewWizardHandler(m *wizard.Machine) *WizardHandler {
	if m == nil {
		panic("nil machine passed to NewWizardHandler")
	}
	return &WizardHandler{Machine: m}
}

// State handles GET /v1/wizard: it resolves the caller's current state,
// creating a session on first contact.
func (h *WizardHandler) State(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Machine.Resolve(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "resolve wizard failed"})
	}
	return c.JSON(http.StatusOK, s)
}

type selectFlightReq struct {
	FlightID string `json:"flight_id"`
	Date     string `json:"date"` // YYYY-MM-DD
}

// SelectFlight handles POST /v1/wizard/flight: the user picked a search
// result, which triggers the surprise return generation and its booking.
func (h *WizardHandler) SelectFlight(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req selectFlightReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if strings.TrimSpace(req.FlightID) == "" || strings.TrimSpace(req.Date) == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "flight_id and date are required"})
	}
	flight := catalog.FlightByID(strings.TrimSpace(req.FlightID))
	if flight == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "flight not found"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	s, err := h.Machine.SelectFlight(ctx, uid, *flight, strings.TrimSpace(req.Date))
	if err != nil {
		return wizardError(c, err, "select flight failed")
	}
	return c.JSON(http.StatusOK, s)
}

// Accept handles POST /v1/wizard/accept: book the outbound ticket matching
// the surprise return and move to the summary.
func (h *WizardHandler) Accept(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	s, err := h.Machine.Accept(ctx, uid)
	if err != nil {
		return wizardError(c, err, "accept failed")
	}
	return c.JSON(http.StatusOK, s)
}

// Decline handles POST /v1/wizard/decline: skip the outbound ticket.
func (h *WizardHandler) Decline(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	s, err := h.Machine.Decline(ctx, uid)
	if err != nil {
		return wizardError(c, err, "decline failed")
	}
	return c.JSON(http.StatusOK, s)
}

// Summary handles GET /v1/wizard/summary: books the bonus movie ticket on
// first call and returns the aggregate of everything booked this session.
func (h *WizardHandler) Summary(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 10*time.Second)
	defer cancel()

	sum, err := h.Machine.Summarize(ctx, uid)
	if err != nil {
		return wizardError(c, err, "summary failed")
	}
	return c.JSON(http.StatusOK, sum)
}

// wizardError maps state machine errors onto HTTP responses. Anything not
// recognized is a persistence failure and reported as a 500 so the client
// can retry the transition.
func wizardError(c echo.Context, err error, fallback string) error {
	switch err {
	case wizard.ErrBusy:
		return c.JSON(http.StatusConflict, echo.Map{"error": "another operation is in progress"})
	case wizard.ErrBadState:
		return c.JSON(http.StatusConflict, echo.Map{"error": "action not valid in current state"})
	case wizard.ErrBadDate:
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "date must be YYYY-MM-DD"})
	case wizard.ErrNoProfile, trip.ErrEmptyWishlist:
		return c.JSON(http.StatusUnprocessableEntity, echo.Map{"error": err.Error()})
	}
	return c.JSON(http.StatusInternalServerError, echo.Map{"error": fallback})
}
