package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"strings"

	"github.com/okalan/surprise-trip-booking/internal/model"
)

// ProfileRepo provides access to the user_profiles table. The wishlist and
// favourite-food lists are stored as JSON arrays in a single column each;
// marshalling happens at this boundary so callers only see []string.
type ProfileRepo struct {
	db *sql.DB
}

// NewProfileRepo returns a new ProfileRepo bound to the given database.
func NewProfileRepo(db *sql.DB) *ProfileRepo { return &ProfileRepo{db: db} }

// Create inserts a profile for a user. Each user may have at most one
// profile (unique key on user_id); a duplicate insert returns
// ErrProfileExists. On success the generated ID and timestamps are
// populated on the provided model.
func (r *ProfileRepo) Create(ctx context.Context, p *model.UserProfile) error {
	wishlist, err := json.Marshal(p.WishlistDestinations)
	if err != nil {
		return err
	}
	foods, err := json.Marshal(p.FavoriteFoods)
	if err != nil {
		return err
	}
	const q = `INSERT INTO user_profiles
		(user_id, home_country, movie_genre, wishlist_destinations, favorite_foods)
		VALUES (?, ?, ?, ?, ?)`
	res, err := r.db.ExecContext(ctx, q, p.UserID, p.HomeCountry, p.MovieGenre, wishlist, foods)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "1062") {
			return ErrProfileExists
		}
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	p.ID = uint64(id)
	// Query back timestamps set by the database
	const sel = `SELECT created_at, updated_at FROM user_profiles WHERE id = ?`
	return r.db.QueryRowContext(ctx, sel, p.ID).Scan(&p.CreatedAt, &p.UpdatedAt)
}

// GetByUser returns the profile for a user, or (nil, nil) when the user has
// not completed setup yet. Absence is normal control flow for the wizard,
// not an error.
func (r *ProfileRepo) GetByUser(ctx context.Context, userID uint64) (*model.UserProfile, error) {
	const q = `SELECT id, user_id, home_country, movie_genre,
		wishlist_destinations, favorite_foods, created_at, updated_at
		FROM user_profiles WHERE user_id = ? LIMIT 1`
	var (
		p        model.UserProfile
		wishlist []byte
		foods    []byte
	)
	err := r.db.QueryRowContext(ctx, q, userID).Scan(
		&p.ID, &p.UserID, &p.HomeCountry, &p.MovieGenre,
		&wishlist, &foods, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal(wishlist, &p.WishlistDestinations); err != nil {
		return nil, err
	}
	if err := json.Unmarshal(foods, &p.FavoriteFoods); err != nil {
		return nil, err
	}
	return &p, nil
}

// ProfileUpdate carries the optional fields accepted by Update. Nil fields
// are left untouched.
type ProfileUpdate struct {
	HomeCountry          *string
	MovieGenre           *string
	WishlistDestinations []string
	FavoriteFoods        []string
}

// Update applies a partial update to a user's profile and returns the
// refreshed row. The booking flow itself never calls this; it exists for
// the standalone profile endpoint.
func (r *ProfileRepo) Update(ctx context.Context, userID uint64, upd ProfileUpdate) (*model.UserProfile, error) {
	set := []string{}
	args := []any{}
	if upd.HomeCountry != nil {
		set = append(set, "home_country = ?")
		args = append(args, *upd.HomeCountry)
	}
	if upd.MovieGenre != nil {
		set = append(set, "movie_genre = ?")
		args = append(args, *upd.MovieGenre)
	}
	if upd.WishlistDestinations != nil {
		b, err := json.Marshal(upd.WishlistDestinations)
		if err != nil {
			return nil, err
		}
		set = append(set, "wishlist_destinations = ?")
		args = append(args, b)
	}
	if upd.FavoriteFoods != nil {
		b, err := json.Marshal(upd.FavoriteFoods)
		if err != nil {
			return nil, err
		}
		set = append(set, "favorite_foods = ?")
		args = append(args, b)
	}
	if len(set) > 0 {
		q := "UPDATE user_profiles SET " + strings.Join(set, ", ") + ", updated_at = NOW() WHERE user_id = ?"
		args = append(args, userID)
		if _, err := r.db.ExecContext(ctx, q, args...); err != nil {
			return nil, err
		}
	}
	p, err := r.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, sql.ErrNoRows
	}
	return p, nil
}
