package infra_postgres_review

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
	"github.com/kinolog/core/internal/model"
	usecase_interaction "github.com/kinolog/core/internal/usecase/interaction"
	"github.com/lib/pq"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type InfraReviewUnitSuite struct {
	suite.Suite
}

type resources struct {
	driver *Driver
	mock   sqlmock.Sqlmock
	ctx    context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	return &resources{
		driver: New(sqlx.NewDb(db, "sqlmock")),
		mock:   mock,
		ctx:    context.Background(),
	}
}

func submittedFields() model.ReviewFields {
	return model.ReviewFields{
		MovieTitle: "Stalker",
		MovieYear:  "1979",
		PosterURL:  "https://example.com/stalker.jpg",
		Content:    "unsettling and beautiful",
		Rating:     8.5,
		Tags:       []string{"slow"},
	}
}

func savedReviewRow(id int64) *sqlmock.Rows {
	now := time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC)
	return sqlmock.NewRows([]string{
		"id", "user_id", "movie_id", "movie_title", "movie_year", "poster_url",
		"content", "rating", "is_rewatch", "contains_spoiler", "watched_date", "tags",
		"created_at", "updated_at",
	}).AddRow(
		id, 1, "42", "Stalker", "1979", "https://example.com/stalker.jpg",
		"unsettling and beautiful", 8.5, false, false, nil, []byte("{slow}"),
		now, now,
	)
}

func (s *InfraReviewUnitSuite) TestUpsertWithLike(t provider.T) {
	t.Run("Should insert first review within one transaction", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectBegin()
		r.mock.ExpectQuery("SELECT id FROM reviews").
			WithArgs(int64(1), "42").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		r.mock.ExpectQuery("INSERT INTO reviews").
			WillReturnRows(savedReviewRow(3))
		r.mock.ExpectCommit()

		review, err := r.driver.UpsertWithLike(r.ctx, 1, "42", submittedFields(), nil, model.MovieSnapshot{})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), review.ID)
		assert.Equal(t, []string{"slow"}, review.Tags)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should heal duplicates and update the surviving row", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectBegin()
		r.mock.ExpectQuery("SELECT id FROM reviews").
			WithArgs(int64(1), "42").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3).AddRow(7).AddRow(9))
		r.mock.ExpectExec("DELETE FROM reviews").
			WithArgs(int64(1), "42", int64(3)).
			WillReturnResult(sqlmock.NewResult(0, 2))
		r.mock.ExpectQuery("UPDATE reviews").
			WillReturnRows(savedReviewRow(3))
		r.mock.ExpectCommit()

		review, err := r.driver.UpsertWithLike(r.ctx, 1, "42", submittedFields(), nil, model.MovieSnapshot{})

		assert.NoError(t, err)
		assert.Equal(t, int64(3), review.ID)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should create the like when intent says liked", func(t provider.T) {
		r := initResources(t)
		liked := true
		voteAverage := 8.1
		snapshot := model.MovieSnapshot{VoteAverage: &voteAverage, ReleaseDate: "1979-05-25"}

		r.mock.ExpectBegin()
		r.mock.ExpectQuery("SELECT id FROM reviews").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		r.mock.ExpectQuery("INSERT INTO reviews").
			WillReturnRows(savedReviewRow(3))
		r.mock.ExpectQuery("SELECT EXISTS").
			WithArgs(int64(1), "42").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		r.mock.ExpectExec("INSERT INTO likes").
			WithArgs(int64(1), "42", "Stalker", "https://example.com/stalker.jpg", 8.1, "1979-05-25").
			WillReturnResult(sqlmock.NewResult(1, 1))
		r.mock.ExpectCommit()

		_, err := r.driver.UpsertWithLike(r.ctx, 1, "42", submittedFields(), &liked, snapshot)

		assert.NoError(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should fall back to the review year when the release date is missing", func(t provider.T) {
		r := initResources(t)
		liked := true

		r.mock.ExpectBegin()
		r.mock.ExpectQuery("SELECT id FROM reviews").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		r.mock.ExpectQuery("INSERT INTO reviews").
			WillReturnRows(savedReviewRow(3))
		r.mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))
		r.mock.ExpectExec("INSERT INTO likes").
			WithArgs(int64(1), "42", "Stalker", "https://example.com/stalker.jpg", 0.0, "1979").
			WillReturnResult(sqlmock.NewResult(1, 1))
		r.mock.ExpectCommit()

		_, err := r.driver.UpsertWithLike(r.ctx, 1, "42", submittedFields(), &liked, model.MovieSnapshot{})

		assert.NoError(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should remove the like when intent says not liked", func(t provider.T) {
		r := initResources(t)
		liked := false

		r.mock.ExpectBegin()
		r.mock.ExpectQuery("SELECT id FROM reviews").
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(3))
		r.mock.ExpectQuery("UPDATE reviews").
			WillReturnRows(savedReviewRow(3))
		r.mock.ExpectQuery("SELECT EXISTS").
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))
		r.mock.ExpectExec("DELETE FROM likes").
			WithArgs(int64(1), "42").
			WillReturnResult(sqlmock.NewResult(0, 1))
		r.mock.ExpectCommit()

		_, err := r.driver.UpsertWithLike(r.ctx, 1, "42", submittedFields(), &liked, model.MovieSnapshot{})

		assert.NoError(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should translate unique violation into conflict", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectBegin()
		r.mock.ExpectQuery("SELECT id FROM reviews").
			WillReturnRows(sqlmock.NewRows([]string{"id"}))
		r.mock.ExpectQuery("INSERT INTO reviews").
			WillReturnError(&pq.Error{Code: "23505"})
		r.mock.ExpectRollback()

		_, err := r.driver.UpsertWithLike(r.ctx, 1, "42", submittedFields(), nil, model.MovieSnapshot{})

		assert.ErrorIs(t, err, usecase_interaction.ErrConflict)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})
}

func (s *InfraReviewUnitSuite) TestStatusByUserAndMovie(t provider.T) {
	t.Run("Should report the authoritative row", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery("SELECT id, rating FROM reviews").
			WithArgs(int64(1), "42").
			WillReturnRows(sqlmock.NewRows([]string{"id", "rating"}).AddRow(3, 8.5))

		status, err := r.driver.StatusByUserAndMovie(r.ctx, 1, "42")

		assert.NoError(t, err)
		assert.True(t, status.HasReview)
		assert.Equal(t, int64(3), status.ReviewID)
		assert.Equal(t, 8.5, status.Rating)
	})

	t.Run("Should report absence without an error", func(t provider.T) {
		r := initResources(t)

		r.mock.ExpectQuery("SELECT id, rating FROM reviews").
			WithArgs(int64(1), "404").
			WillReturnRows(sqlmock.NewRows([]string{"id", "rating"}))

		status, err := r.driver.StatusByUserAndMovie(r.ctx, 1, "404")

		assert.NoError(t, err)
		assert.False(t, status.HasReview)
	})
}

func TestInfraReviewUnit(t *testing.T) {
	suite.RunSuite(t, new(InfraReviewUnitSuite))
}
