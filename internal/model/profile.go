package model

import "time"

// UserProfile holds the traveller preferences collected during the
// four-step setup wizard. A user has at most one profile; the
// wishlist and food lists are stored as JSON arrays in MySQL and
// must be non-empty. The profile is created once and, while an
// update path exists, the booking flow never modifies it.
//
// Fields:
//  ID                   – primary key identifier.
//  UserID               – owner of the profile (unique).
//  HomeCountry          – where return flights terminate.
//  MovieGenre           – preferred genre for the bonus movie ticket.
//  WishlistDestinations – destinations eligible as surprise return origins.
//  FavoriteFoods        – favourite foods picked during setup.
//  CreatedAt            – creation timestamp.
//  UpdatedAt            – last update timestamp.
type UserProfile struct {
	ID                   uint64    `json:"id"`                    // user_profiles.id
	UserID               uint64    `json:"user_id"`               // user_profiles.user_id
	HomeCountry          string    `json:"home_country"`          // user_profiles.home_country
	MovieGenre           string    `json:"movie_genre"`           // user_profiles.movie_genre
	WishlistDestinations []string  `json:"wishlist_destinations"` // user_profiles.wishlist_destinations (JSON)
	FavoriteFoods        []string  `json:"favorite_foods"`        // user_profiles.favorite_foods (JSON)
	CreatedAt            time.Time `json:"created_at"`            // user_profiles.created_at
	UpdatedAt            time.Time `json:"updated_at"`            // user_profiles.updated_at
}
