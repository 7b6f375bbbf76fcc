package http_review

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	http_common "github.com/kinolog/core/internal/delivery/http/common"
	http_auth_middleware "github.com/kinolog/core/internal/delivery/http/middleware/auth"
	"github.com/kinolog/core/internal/model"
	usecase_interaction "github.com/kinolog/core/internal/usecase/interaction"
)

const watchedDateLayout = "2006-01-02"

type Controller struct {
	usecase    *usecase_interaction.Usecase
	middleware *http_auth_middleware.Middleware

	logger *slog.Logger
}

type ControllerOption func(*Controller)

func WithLogger(logger *slog.Logger) ControllerOption {
	return func(c *Controller) {
		c.logger = logger
	}
}

func New(usecase *usecase_interaction.Usecase,
	middleware *http_auth_middleware.Middleware,
	opts ...ControllerOption) *Controller {
	c := &Controller{
		usecase:    usecase,
		middleware: middleware,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Controller) RegisterRoutes(router *gin.RouterGroup) {
	reviews := router.Group("/reviews")
	{
		reviews.POST("", c.middleware.SessionRequired(), c.submit)
		reviews.GET("/movie/:movie_id/check", c.middleware.SessionRequired(), c.check)
		reviews.GET("/user/:user_id", c.listByUser)
	}
	router.GET("/likes/user/:user_id", c.likesByUser)
}

// SubmitReviewRequestDTO
type SubmitReviewRequestDTO struct {
	MovieID         string   `json:"movieId" binding:"required"`
	MovieTitle      string   `json:"movieTitle"`
	MovieYear       string   `json:"movieYear"`
	MoviePosterURL  string   `json:"moviePosterUrl"`
	Review          string   `json:"review"`
	Rating          float64  `json:"rating"`
	IsRewatch       bool     `json:"isRewatch"`
	ContainsSpoiler bool     `json:"containsSpoiler"`
	WatchedDate     *string  `json:"watchedDate"`
	Tags            []string `json:"tags"`

	// Like-intent plus the catalog snapshot a created like is built from.
	IsLiked     *bool    `json:"isLiked"`
	VoteAverage *float64 `json:"voteAverage"`
	ReleaseDate string   `json:"releaseDate"`
}

// ReviewResponseDTO
type ReviewResponseDTO struct {
	ID              int64    `json:"id"`
	MovieID         string   `json:"movieId"`
	MovieTitle      string   `json:"movieTitle"`
	MovieYear       string   `json:"movieYear"`
	MoviePosterURL  string   `json:"moviePosterUrl"`
	Content         string   `json:"content"`
	Rating          float64  `json:"rating"`
	IsRewatch       bool     `json:"isRewatch"`
	ContainsSpoiler bool     `json:"containsSpoiler"`
	WatchedDate     *string  `json:"watchedDate"`
	Tags            []string `json:"tags"`
	CreatedAt       string   `json:"createdAt"`
	UpdatedAt       string   `json:"updatedAt"`
}

// CheckReviewResponseDTO
type CheckReviewResponseDTO struct {
	HasReview bool     `json:"hasReview"`
	Rating    *float64 `json:"rating,omitempty"`
	ReviewID  *int64   `json:"reviewId,omitempty"`
}

// LikeResponseDTO
type LikeResponseDTO struct {
	ID          int64   `json:"id"`
	MovieID     string  `json:"movieId"`
	MovieTitle  string  `json:"movieTitle"`
	PosterURL   string  `json:"posterUrl"`
	VoteAverage float64 `json:"voteAverage"`
	ReleaseDate string  `json:"releaseDate"`
	CreatedAt   string  `json:"createdAt"`
}

// @Summary Submit a review
// @Description Creates or updates the acting user's review for a movie and reconciles the liked flag when isLiked is sent
// @Tags Reviews
// @Accept json
// @Produce json
// @Param request body SubmitReviewRequestDTO true "Review payload"
// @Success 200 {object} ReviewResponseDTO "Stored review"
// @Failure 400 {object} http_common.ErrorResponse "Invalid payload"
// @Failure 401 {object} http_common.ErrorResponse "Unauthenticated"
// @Failure 409 {object} http_common.ErrorResponse "Lost write race, retry"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security UserToken
// @Router /reviews [post]
func (c *Controller) submit(ctx *gin.Context) {
	userID, ok := http_auth_middleware.ActingUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthenticated"})
		return
	}

	var req SubmitReviewRequestDTO
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
			Message: "invalid request format",
		})
		return
	}

	fields := model.ReviewFields{
		MovieTitle:      req.MovieTitle,
		MovieYear:       req.MovieYear,
		PosterURL:       req.MoviePosterURL,
		Content:         req.Review,
		Rating:          req.Rating,
		IsRewatch:       req.IsRewatch,
		ContainsSpoiler: req.ContainsSpoiler,
		Tags:            req.Tags,
	}

	if req.WatchedDate != nil && *req.WatchedDate != "" {
		watched, err := time.Parse(watchedDateLayout, *req.WatchedDate)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{
				Message: "invalid watchedDate, expected YYYY-MM-DD",
			})
			return
		}
		fields.WatchedDate = &watched
	}

	snapshot := model.MovieSnapshot{
		VoteAverage: req.VoteAverage,
		ReleaseDate: req.ReleaseDate,
	}

	review, err := c.usecase.SubmitReview(ctx, userID, req.MovieID, fields, req.IsLiked, snapshot)
	if err != nil {
		c.logger.Error("failed to submit review",
			slog.Int64("user_id", userID),
			slog.String("movie_id", req.MovieID),
			slog.String("error", err.Error()))
		switch {
		case errors.Is(err, usecase_interaction.ErrValidation):
			ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid review"})
		case errors.Is(err, usecase_interaction.ErrConflict):
			ctx.JSON(http.StatusConflict, http_common.ErrorResponse{Message: "conflict, retry"})
		default:
			ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		}
		return
	}

	ctx.JSON(http.StatusOK, toReviewDTO(review))
}

// @Summary Check review status
// @Description Tells whether the acting user already reviewed the movie
// @Tags Reviews
// @Produce json
// @Param movie_id path string true "Movie identifier"
// @Success 200 {object} CheckReviewResponseDTO
// @Failure 401 {object} http_common.ErrorResponse "Unauthenticated"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Security UserToken
// @Router /reviews/movie/{movie_id}/check [get]
func (c *Controller) check(ctx *gin.Context) {
	userID, ok := http_auth_middleware.ActingUser(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, http_common.ErrorResponse{Message: "unauthenticated"})
		return
	}

	status, err := c.usecase.CheckReviewStatus(ctx, userID, ctx.Param("movie_id"))
	if err != nil {
		c.logger.Error("failed to check review status", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	resp := CheckReviewResponseDTO{HasReview: status.HasReview}
	if status.HasReview {
		resp.Rating = &status.Rating
		resp.ReviewID = &status.ReviewID
	}

	ctx.JSON(http.StatusOK, resp)
}

// @Summary List a user's reviews
// @Tags Reviews
// @Produce json
// @Param user_id path int true "User identifier"
// @Success 200 {array} ReviewResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Bad user id"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /reviews/user/{user_id} [get]
func (c *Controller) listByUser(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid user id"})
		return
	}

	reviews, err := c.usecase.UserReviews(ctx, userID)
	if err != nil {
		c.logger.Error("failed to list reviews", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	resp := make([]ReviewResponseDTO, 0, len(reviews))
	for _, review := range reviews {
		resp = append(resp, toReviewDTO(review))
	}

	ctx.JSON(http.StatusOK, resp)
}

// @Summary List a user's liked movies
// @Tags Reviews
// @Produce json
// @Param user_id path int true "User identifier"
// @Success 200 {array} LikeResponseDTO
// @Failure 400 {object} http_common.ErrorResponse "Bad user id"
// @Failure 500 {object} http_common.ErrorResponse "Internal error"
// @Router /likes/user/{user_id} [get]
func (c *Controller) likesByUser(ctx *gin.Context) {
	userID, err := strconv.ParseInt(ctx.Param("user_id"), 10, 64)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, http_common.ErrorResponse{Message: "invalid user id"})
		return
	}

	likes, err := c.usecase.UserLikes(ctx, userID)
	if err != nil {
		c.logger.Error("failed to list likes", slog.String("error", err.Error()))
		ctx.JSON(http.StatusInternalServerError, http_common.ErrorResponse{Message: "internal error"})
		return
	}

	resp := make([]LikeResponseDTO, 0, len(likes))
	for _, like := range likes {
		resp = append(resp, LikeResponseDTO{
			ID:          like.ID,
			MovieID:     like.MovieID,
			MovieTitle:  like.MovieTitle,
			PosterURL:   like.PosterURL,
			VoteAverage: like.VoteAverage,
			ReleaseDate: like.ReleaseDate,
			CreatedAt:   like.CreatedAt.Format(time.RFC3339),
		})
	}

	ctx.JSON(http.StatusOK, resp)
}

func toReviewDTO(review model.Review) ReviewResponseDTO {
	dto := ReviewResponseDTO{
		ID:              review.ID,
		MovieID:         review.MovieID,
		MovieTitle:      review.MovieTitle,
		MovieYear:       review.MovieYear,
		MoviePosterURL:  review.PosterURL,
		Content:         review.Content,
		Rating:          review.Rating,
		IsRewatch:       review.IsRewatch,
		ContainsSpoiler: review.ContainsSpoiler,
		Tags:            review.Tags,
		CreatedAt:       review.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       review.UpdatedAt.Format(time.RFC3339),
	}
	if review.WatchedDate != nil {
		watched := review.WatchedDate.Format(watchedDateLayout)
		dto.WatchedDate = &watched
	}
	return dto
}
