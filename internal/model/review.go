package model

import "time"

// Review is the single review a user keeps per movie.
// Business key is (UserID, MovieID); ID is a surrogate.
type Review struct {
	ID      int64
	UserID  UserID
	MovieID string

	MovieTitle string
	MovieYear  string
	PosterURL  string

	Content         string
	Rating          float64
	IsRewatch       bool
	ContainsSpoiler bool
	WatchedDate     *time.Time
	Tags            []string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// ReviewFields carries the caller-owned review state for an upsert.
// Structured fields are overwritten as sent, there is no patch semantic.
type ReviewFields struct {
	MovieTitle      string
	MovieYear       string
	PosterURL       string
	Content         string
	Rating          float64
	IsRewatch       bool
	ContainsSpoiler bool
	WatchedDate     *time.Time
	Tags            []string
}

// ReviewStatus answers "has this user already reviewed this movie".
type ReviewStatus struct {
	HasReview bool
	Rating    float64
	ReviewID  int64
}
