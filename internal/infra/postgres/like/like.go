package infra_postgres_like

import (
	"context"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kinolog/core/internal/model"
)

// Like rows are written and deleted inside the review driver's submit
// transaction; this driver only answers read queries.
type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type likeDTO struct {
	ID          int64     `db:"id"`
	UserID      int64     `db:"user_id"`
	MovieID     string    `db:"movie_id"`
	MovieTitle  string    `db:"movie_title"`
	PosterURL   string    `db:"poster_url"`
	VoteAverage float64   `db:"vote_average"`
	ReleaseDate string    `db:"release_date"`
	CreatedAt   time.Time `db:"created_at"`
}

func (d *Driver) ListByUser(ctx context.Context, userID model.UserID) ([]model.Like, error) {
	var rows []likeDTO

	query := `
		SELECT id, user_id, movie_id, movie_title, poster_url, vote_average, release_date, created_at
		FROM likes
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	if err := d.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	likes := make([]model.Like, 0, len(rows))
	for _, row := range rows {
		likes = append(likes, model.Like{
			ID:          row.ID,
			UserID:      row.UserID,
			MovieID:     row.MovieID,
			MovieTitle:  row.MovieTitle,
			PosterURL:   row.PosterURL,
			VoteAverage: row.VoteAverage,
			ReleaseDate: row.ReleaseDate,
			CreatedAt:   row.CreatedAt,
		})
	}

	return likes, nil
}
