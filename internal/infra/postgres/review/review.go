package infra_postgres_review

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kinolog/core/internal/model"
	usecase_interaction "github.com/kinolog/core/internal/usecase/interaction"
	"github.com/lib/pq"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type reviewDTO struct {
	ID              int64          `db:"id"`
	UserID          int64          `db:"user_id"`
	MovieID         string         `db:"movie_id"`
	MovieTitle      string         `db:"movie_title"`
	MovieYear       string         `db:"movie_year"`
	PosterURL       string         `db:"poster_url"`
	Content         string         `db:"content"`
	Rating          float64        `db:"rating"`
	IsRewatch       bool           `db:"is_rewatch"`
	ContainsSpoiler bool           `db:"contains_spoiler"`
	WatchedDate     sql.NullTime   `db:"watched_date"`
	Tags            pq.StringArray `db:"tags"`
	CreatedAt       time.Time      `db:"created_at"`
	UpdatedAt       time.Time      `db:"updated_at"`
}

func (dto reviewDTO) toModel() model.Review {
	review := model.Review{
		ID:              dto.ID,
		UserID:          dto.UserID,
		MovieID:         dto.MovieID,
		MovieTitle:      dto.MovieTitle,
		MovieYear:       dto.MovieYear,
		PosterURL:       dto.PosterURL,
		Content:         dto.Content,
		Rating:          dto.Rating,
		IsRewatch:       dto.IsRewatch,
		ContainsSpoiler: dto.ContainsSpoiler,
		Tags:            []string(dto.Tags),
		CreatedAt:       dto.CreatedAt,
		UpdatedAt:       dto.UpdatedAt,
	}
	if dto.WatchedDate.Valid {
		watched := dto.WatchedDate.Time
		review.WatchedDate = &watched
	}
	return review
}

const reviewColumns = `id, user_id, movie_id, movie_title, movie_year, poster_url,
		content, rating, is_rewatch, contains_spoiler, watched_date, tags,
		created_at, updated_at`

// UpsertWithLike runs duplicate cleanup, the review upsert and the like
// reconciliation as a single transaction. The unique index on
// (user_id, movie_id) is the backstop for races; its violation surfaces
// as ErrConflict and the caller retries.
func (d *Driver) UpsertWithLike(ctx context.Context, userID model.UserID, movieID string, fields model.ReviewFields, likeIntent *bool, snapshot model.MovieSnapshot) (model.Review, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return model.Review{}, err
	}
	defer func() { _ = tx.Rollback() }()

	authoritativeID, err := d.healDuplicates(ctx, tx, userID, movieID)
	if err != nil {
		return model.Review{}, err
	}

	var saved reviewDTO
	if authoritativeID == 0 {
		insertQuery := `
			INSERT INTO reviews (user_id, movie_id, movie_title, movie_year, poster_url,
				content, rating, is_rewatch, contains_spoiler, watched_date, tags)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
			RETURNING ` + reviewColumns

		err = tx.GetContext(ctx, &saved, insertQuery,
			userID, movieID,
			fields.MovieTitle, fields.MovieYear, fields.PosterURL,
			fields.Content, fields.Rating, fields.IsRewatch, fields.ContainsSpoiler,
			fields.WatchedDate, pq.StringArray(fields.Tags),
		)
	} else {
		updateQuery := `
			UPDATE reviews
			SET movie_title = $2, movie_year = $3, poster_url = $4,
				content = $5, rating = $6, is_rewatch = $7, contains_spoiler = $8,
				watched_date = $9, tags = $10, updated_at = now()
			WHERE id = $1
			RETURNING ` + reviewColumns

		err = tx.GetContext(ctx, &saved, updateQuery,
			authoritativeID,
			fields.MovieTitle, fields.MovieYear, fields.PosterURL,
			fields.Content, fields.Rating, fields.IsRewatch, fields.ContainsSpoiler,
			fields.WatchedDate, pq.StringArray(fields.Tags),
		)
	}
	if err != nil {
		if isUniqueViolation(err) {
			return model.Review{}, usecase_interaction.ErrConflict
		}
		return model.Review{}, err
	}

	if likeIntent != nil {
		if err := d.reconcileLike(ctx, tx, userID, movieID, *likeIntent, saved, snapshot); err != nil {
			if isUniqueViolation(err) {
				return model.Review{}, usecase_interaction.ErrConflict
			}
			return model.Review{}, err
		}
	}

	if err := tx.Commit(); err != nil {
		return model.Review{}, err
	}

	return saved.toModel(), nil
}

// healDuplicates keeps the lowest-id row for the business key and removes
// the rest. Returns 0 when no row exists yet.
func (d *Driver) healDuplicates(ctx context.Context, tx *sqlx.Tx, userID model.UserID, movieID string) (int64, error) {
	var ids []int64

	query := `
		SELECT id FROM reviews
		WHERE user_id = $1 AND movie_id = $2
		ORDER BY id
	`

	if err := tx.SelectContext(ctx, &ids, query, userID, movieID); err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if len(ids) > 1 {
		deleteQuery := `
			DELETE FROM reviews
			WHERE user_id = $1 AND movie_id = $2 AND id <> $3
		`
		if _, err := tx.ExecContext(ctx, deleteQuery, userID, movieID, ids[0]); err != nil {
			return 0, err
		}
	}

	return ids[0], nil
}

func (d *Driver) reconcileLike(ctx context.Context, tx *sqlx.Tx, userID model.UserID, movieID string, liked bool, review reviewDTO, snapshot model.MovieSnapshot) error {
	var exists bool

	existsQuery := `SELECT EXISTS(SELECT 1 FROM likes WHERE user_id = $1 AND movie_id = $2)`

	if err := tx.GetContext(ctx, &exists, existsQuery, userID, movieID); err != nil {
		return err
	}

	switch {
	case liked && !exists:
		voteAverage := 0.0
		if snapshot.VoteAverage != nil {
			voteAverage = *snapshot.VoteAverage
		}
		releaseDate := snapshot.ReleaseDate
		if releaseDate == "" {
			releaseDate = review.MovieYear
		}

		insertQuery := `
			INSERT INTO likes (user_id, movie_id, movie_title, poster_url, vote_average, release_date)
			VALUES ($1, $2, $3, $4, $5, $6)
		`
		_, err := tx.ExecContext(ctx, insertQuery,
			userID, movieID, review.MovieTitle, review.PosterURL, voteAverage, releaseDate)
		return err

	case !liked && exists:
		deleteQuery := `DELETE FROM likes WHERE user_id = $1 AND movie_id = $2`
		_, err := tx.ExecContext(ctx, deleteQuery, userID, movieID)
		return err
	}

	return nil
}

// StatusByUserAndMovie reads the authoritative (lowest id) row for the key.
func (d *Driver) StatusByUserAndMovie(ctx context.Context, userID model.UserID, movieID string) (model.ReviewStatus, error) {
	var row struct {
		ID     int64   `db:"id"`
		Rating float64 `db:"rating"`
	}

	query := `
		SELECT id, rating FROM reviews
		WHERE user_id = $1 AND movie_id = $2
		ORDER BY id
		LIMIT 1
	`

	err := d.db.GetContext(ctx, &row, query, userID, movieID)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.ReviewStatus{HasReview: false}, nil
		}
		return model.ReviewStatus{}, err
	}

	return model.ReviewStatus{
		HasReview: true,
		Rating:    row.Rating,
		ReviewID:  row.ID,
	}, nil
}

func (d *Driver) ListByUser(ctx context.Context, userID model.UserID) ([]model.Review, error) {
	var rows []reviewDTO

	query := `
		SELECT ` + reviewColumns + `
		FROM reviews
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
	`

	if err := d.db.SelectContext(ctx, &rows, query, userID); err != nil {
		return nil, err
	}

	reviews := make([]model.Review, 0, len(rows))
	for _, row := range rows {
		reviews = append(reviews, row.toModel())
	}

	return reviews, nil
}

func (d *Driver) CountByUser(ctx context.Context, userID model.UserID) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM reviews WHERE user_id = $1`

	if err := d.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, err
	}

	return count, nil
}

func isUniqueViolation(err error) bool {
	if pqErr, ok := err.(*pq.Error); ok {
		return pqErr.Code == "23505"
	}
	return false
}
