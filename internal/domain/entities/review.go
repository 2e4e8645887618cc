package entities

import "time"

// Review is one user's star rating of a bench. (BenchID, UserID) is unique.
type Review struct {
	BenchID   string    `json:"bench_id" db:"bench_id"`
	UserID    string    `json:"user_id" db:"user_id"`
	Rating    int       `json:"rating" db:"rating"`
	CreatedAt time.Time `json:"created_at" db:"created_at"`
}

// ReviewRating is the slim projection used for community rating aggregation
type ReviewRating struct {
	BenchID string `db:"bench_id"`
	Rating  int    `db:"rating"`
}
