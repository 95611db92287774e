package model

// Flight is a search result from the fixed flight catalog. Flights
// are ephemeral: they exist only as search output and as the source
// of an outbound booking, and are never persisted themselves.
type Flight struct {
	ID        string `json:"id"`
	Airline   string `json:"airline"`
	From      string `json:"from"`
	To        string `json:"to"`
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Price     int64  `json:"price"`
	Duration  string `json:"duration"`
}

// SurpriseReturn is the randomly generated journey home from one of
// the user's wishlist destinations. It is derived, not persisted;
// the wizard stores it in the session and writes a corresponding
// "return" booking row.
type SurpriseReturn struct {
	ID        string `json:"id"`
	Airline   string `json:"airline"`
	From      string `json:"from"` // one of the profile's wishlist destinations
	To        string `json:"to"`   // always "Home"
	Departure string `json:"departure"`
	Arrival   string `json:"arrival"`
	Date      string `json:"date"` // YYYY-MM-DD, original departure + 16 days
	Price     int64  `json:"price"`
	Duration  string `json:"duration"`
}
