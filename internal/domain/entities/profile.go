package entities

import "time"

// Profile carries the public details of a user
type Profile struct {
	UserID      string    `json:"user_id" db:"user_id"`
	FullName    *string   `json:"full_name" db:"full_name"`
	Country     *string   `json:"country" db:"country"`
	DateOfBirth *string   `json:"date_of_birth" db:"date_of_birth"`
	CreatedAt   time.Time `json:"created_at" db:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" db:"updated_at"`
}

// PublicProfile is a profile as other users see it
type PublicProfile struct {
	Profile
	BenchCount int `json:"bench_count"`
}
