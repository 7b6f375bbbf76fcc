package model

import "time"

// Like marks a movie as liked by a user, independent of any review.
type Like struct {
	ID      int64
	UserID  UserID
	MovieID string

	MovieTitle  string
	PosterURL   string
	VoteAverage float64
	ReleaseDate string

	CreatedAt time.Time
}

// MovieSnapshot is the denormalized catalog data supplied by the caller
// at write time. This service never fetches catalog data itself.
type MovieSnapshot struct {
	VoteAverage *float64
	ReleaseDate string
}
