package handler

import (
	"context"
	"database/sql"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/okalan/surprise-trip-booking/internal/model"
	"github.com/okalan/surprise-trip-booking/internal/repository"
	"github.com/okalan/surprise-trip-booking/internal/wizard"
)

// Choice lists offered by the four setup steps. These mirror the options
// the profile screens render; free-text values are accepted too, the lists
// are suggestions rather than an enum.
var (
	profileCountries = []string{
		"India", "United States", "United Kingdom", "Canada", "Australia",
		"Japan", "South Korea", "Thailand", "Singapore", "Malaysia",
	}
	profileGenres = []string{
		"Action", "Comedy", "Drama", "Horror", "Romance", "Sci-Fi", "Thriller", "Adventure",
	}
	profileDestinations = []string{
		"Tokyo, Japan", "Bangkok, Thailand", "Singapore", "Seoul, South Korea",
		"Bali, Indonesia", "Maldives", "Dubai, UAE", "Paris, France",
		"London, UK", "New York, USA", "Sydney, Australia", "Vancouver, Canada",
	}
	profileFoods = []string{
		"Sushi", "Pizza", "Tacos", "Curry", "Pasta",
		"Ramen", "Burgers", "Dim Sum", "Paella", "Pho",
	}
)

// ProfileHandler serves the preference profile endpoints. Creating a
// profile also advances the wizard session out of profile-setup.
type ProfileHandler struct {
	Profiles *repository.ProfileRepo
	Wizard   *wizard.Machine
}

func NewProfileHandler(profiles *repository.ProfileRepo, machine *wizard.Machine) *ProfileHandler {
	if profiles == nil || machine == nil {
		panic("nil dependency passed to NewProfileHandler")
	}
	return &ProfileHandler{Profiles: profiles, Wizard: machine}
}

type profileReq struct {
	HomeCountry          string   `json:"home_country"`
	MovieGenre           string   `json:"movie_genre"`
	WishlistDestinations []string `json:"wishlist_destinations"`
	FavoriteFoods        []string `json:"favorite_foods"`
}

// validate enforces the four setup steps: each field must be filled in and
// both multi-select lists must be non-empty. An empty wishlist would later
// make surprise generation impossible, so it is rejected here.
func (r *profileReq) validate() string {
	r.HomeCountry = strings.TrimSpace(r.HomeCountry)
	r.MovieGenre = strings.TrimSpace(r.MovieGenre)
	r.WishlistDestinations = cleanList(r.WishlistDestinations)
	r.FavoriteFoods = cleanList(r.FavoriteFoods)
	switch {
	case r.HomeCountry == "":
		return "home_country is required"
	case r.MovieGenre == "":
		return "movie_genre is required"
	case len(r.WishlistDestinations) == 0:
		return "wishlist_destinations must not be empty"
	case len(r.FavoriteFoods) == 0:
		return "favorite_foods must not be empty"
	}
	return ""
}

// cleanList trims entries and drops blanks and duplicates, preserving order.
func cleanList(in []string) []string {
	out := make([]string, 0, len(in))
	seen := map[string]struct{}{}
	for _, v := range in {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}

// Options returns the choice lists for the setup screens.
func (h *ProfileHandler) Options(c echo.Context) error {
	return c.JSON(http.StatusOK, echo.Map{
		"countries":    profileCountries,
		"genres":       profileGenres,
		"destinations": profileDestinations,
		"foods":        profileFoods,
	})
}

// Get returns the caller's profile, or 404 when setup has not run yet.
func (h *ProfileHandler) Get(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p, err := h.Profiles.GetByUser(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "query failed"})
	}
	if p == nil {
		return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
	}
	return c.JSON(http.StatusOK, p)
}

// Create persists the profile collected by the setup wizard and moves the
// wizard session to flight-search.
func (h *ProfileHandler) Create(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req profileReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if msg := req.validate(); msg != "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": msg})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	p := model.UserProfile{
		UserID:               uid,
		HomeCountry:          req.HomeCountry,
		MovieGenre:           req.MovieGenre,
		WishlistDestinations: req.WishlistDestinations,
		FavoriteFoods:        req.FavoriteFoods,
	}
	if err := h.Profiles.Create(ctx, &p); err != nil {
		if err == repository.ErrProfileExists {
			return c.JSON(http.StatusConflict, echo.Map{"error": "profile already exists"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "create profile failed"})
	}
	if _, err := h.Wizard.ProfileCompleted(ctx, uid); err != nil {
		// Profile is saved; the wizard will re-resolve on the next request.
		c.Logger().Warnf("advance wizard after profile create: %v", err)
	}
	return c.JSON(http.StatusCreated, p)
}

type profileUpdateReq struct {
	HomeCountry          *string  `json:"home_country"`
	MovieGenre           *string  `json:"movie_genre"`
	WishlistDestinations []string `json:"wishlist_destinations"`
	FavoriteFoods        []string `json:"favorite_foods"`
}

// Update applies a partial profile update. The booking flow never calls
// this; it exists so users can adjust preferences between adventures.
func (h *ProfileHandler) Update(c echo.Context) error {
	uid, err := getUserID(c)
	if err != nil {
		return c.JSON(http.StatusUnauthorized, echo.Map{"error": "unauthorized"})
	}
	var req profileUpdateReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	if req.WishlistDestinations != nil && len(cleanList(req.WishlistDestinations)) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "wishlist_destinations must not be empty"})
	}
	if req.FavoriteFoods != nil && len(cleanList(req.FavoriteFoods)) == 0 {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "favorite_foods must not be empty"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	upd := repository.ProfileUpdate{
		HomeCountry:          req.HomeCountry,
		MovieGenre:           req.MovieGenre,
		WishlistDestinations: cleanListOrNil(req.WishlistDestinations),
		FavoriteFoods:        cleanListOrNil(req.FavoriteFoods),
	}
	p, err := h.Profiles.Update(ctx, uid, upd)
	if err != nil {
		if err == sql.ErrNoRows {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "profile not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "update profile failed"})
	}
	return c.JSON(http.StatusOK, p)
}

func cleanListOrNil(in []string) []string {
	if in == nil {
		return nil
	}
	return cleanList(in)
}
