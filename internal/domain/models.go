package domain

import "time"

// Cafe is a single catalog record. The catalog is seeded once at startup and
// never modified afterwards; favourite status lives outside the record.
type Cafe struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
	ImageURL    string `json:"image_url"`
}

// CafeView is a Cafe plus its favourite status at the moment of the query.
// Views are derived fresh on every read and never stored.
type CafeView struct {
	Cafe
	Favourited bool `json:"favourited"`
}

const EventFavouriteToggled = "favourite_toggled"

type FavouriteEvent struct {
	Type       string    `json:"type"`
	CafeID     string    `json:"cafe_id"`
	Favourited bool      `json:"favourited"`
	Timestamp  time.Time `json:"timestamp"`
}

type CafePopularity struct {
	CafeID string  `json:"cafe_id"`
	Score  float64 `json:"score"`
}
