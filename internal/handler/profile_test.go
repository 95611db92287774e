package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileReqValidate(t *testing.T) {
	valid := profileReq{
		HomeCountry:          "India",
		MovieGenre:           "Horror",
		WishlistDestinations: []string{"Tokyo, Japan"},
		FavoriteFoods:        []string{"Sushi"},
	}
	assert.Empty(t, valid.validate())

	cases := []struct {
		name string
		req  profileReq
		want string
	}{
		{
			name: "missing country",
			req:  profileReq{MovieGenre: "Horror", WishlistDestinations: []string{"Maldives"}, FavoriteFoods: []string{"Pho"}},
			want: "home_country is required",
		},
		{
			name: "missing genre",
			req:  profileReq{HomeCountry: "India", WishlistDestinations: []string{"Maldives"}, FavoriteFoods: []string{"Pho"}},
			want: "movie_genre is required",
		},
		{
			name: "empty wishlist",
			req:  profileReq{HomeCountry: "India", MovieGenre: "Horror", FavoriteFoods: []string{"Pho"}},
			want: "wishlist_destinations must not be empty",
		},
		{
			name: "wishlist of blanks",
			req:  profileReq{HomeCountry: "India", MovieGenre: "Horror", WishlistDestinations: []string{"  ", ""}, FavoriteFoods: []string{"Pho"}},
			want: "wishlist_destinations must not be empty",
		},
		{
			name: "empty foods",
			req:  profileReq{HomeCountry: "India", MovieGenre: "Horror", WishlistDestinations: []string{"Maldives"}},
			want: "favorite_foods must not be empty",
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.req.validate())
		})
	}
}

func TestCleanList(t *testing.T) {
	got := cleanList([]string{" Sushi ", "Pizza", "Sushi", "", "  "})
	assert.Equal(t, []string{"Sushi", "Pizza"}, got)

	assert.Empty(t, cleanList(nil))
}
