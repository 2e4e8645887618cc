package entities

import "time"

// BenchCategory is the terrain a bench sits in
type BenchCategory string

const (
	CategoryMountain BenchCategory = "mountain"
	CategoryForest   BenchCategory = "forest"
	CategoryCity     BenchCategory = "city"
	CategoryBeach    BenchCategory = "beach"
	CategoryOther    BenchCategory = "other"
)

// BenchCategories lists every accepted category key
var BenchCategories = []BenchCategory{
	CategoryMountain,
	CategoryForest,
	CategoryCity,
	CategoryBeach,
	CategoryOther,
}

// NormalizeCategory maps unknown or empty input to CategoryOther
func NormalizeCategory(raw string) BenchCategory {
	for _, c := range BenchCategories {
		if string(c) == raw {
			return c
		}
	}
	return CategoryOther
}

// BenchRatings are the creator's own 1-5 scores, fixed at creation
type BenchRatings struct {
	Accessibility int `json:"accessibility"`
	Crowd         int `json:"crowd"`
	View          int `json:"view"`
	Vibe          int `json:"vibe"`
}

// Bench is a user-submitted point on the map
type Bench struct {
	ID            string        `json:"id" db:"id"`
	Title         string        `json:"title" db:"title"`
	Description   string        `json:"description" db:"description"`
	Lat           float64       `json:"lat" db:"lat"`
	Lng           float64       `json:"lng" db:"lng"`
	Category      BenchCategory `json:"category" db:"category"`
	Ratings       BenchRatings  `json:"ratings"`
	CreatedAt     time.Time     `json:"created_at" db:"created_at"`
	UserID        *string       `json:"user_id" db:"user_id"`
	CreatedByName *string       `json:"created_by_name" db:"created_by_name"`

	// CommunityRating is derived from reviews and nil while there are none
	CommunityRating *float64 `json:"community_rating,omitempty" db:"-"`
}
