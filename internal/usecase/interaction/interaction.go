package usecase_interaction

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/kinolog/core/internal/model"
)

var (
	ErrValidation       = errors.New("invalid request")
	ErrSelfFollow       = errors.New("cannot follow yourself")
	ErrConflict         = errors.New("conflicting write, retry")
	ErrResourceNotFound = errors.New("no such resource")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=ReviewRepository --output=./mocks --filename=review_repository.go
type ReviewRepository interface {
	// UpsertWithLike runs the whole submit sequence as one transaction:
	// duplicate cleanup, review insert-or-update, like reconciliation.
	UpsertWithLike(ctx context.Context, userID model.UserID, movieID string, fields model.ReviewFields, likeIntent *bool, snapshot model.MovieSnapshot) (model.Review, error)
	StatusByUserAndMovie(ctx context.Context, userID model.UserID, movieID string) (model.ReviewStatus, error)
	ListByUser(ctx context.Context, userID model.UserID) ([]model.Review, error)
	CountByUser(ctx context.Context, userID model.UserID) (int, error)
}

//go:generate mockery --name=LikeRepository --output=./mocks --filename=like_repository.go
type LikeRepository interface {
	ListByUser(ctx context.Context, userID model.UserID) ([]model.Like, error)
}

//go:generate mockery --name=FollowRepository --output=./mocks --filename=follow_repository.go
type FollowRepository interface {
	// CreateWithNotification inserts the edge and its notification in one
	// transaction. Returns nil when the edge already existed.
	CreateWithNotification(ctx context.Context, followerID, followeeID model.UserID, message string) (*model.Notification, error)
	Delete(ctx context.Context, followerID, followeeID model.UserID) error
	IsFollowing(ctx context.Context, followerID, followeeID model.UserID) (bool, error)
	FollowerCount(ctx context.Context, userID model.UserID) (int, error)
	FollowingCount(ctx context.Context, userID model.UserID) (int, error)
}

//go:generate mockery --name=UserRepository --output=./mocks --filename=user_repository.go
type UserRepository interface {
	ByID(ctx context.Context, id model.UserID) (model.User, error)
}

//go:generate mockery --name=Dispatcher --output=./mocks --filename=dispatcher.go
type Dispatcher interface {
	// Dispatch must never block and never fail the caller.
	Dispatch(n model.Notification)
}

type Usecase struct {
	reviews    ReviewRepository
	likes      LikeRepository
	follows    FollowRepository
	users      UserRepository
	dispatcher Dispatcher

	logger *slog.Logger
}

func New(
	reviews ReviewRepository,
	likes LikeRepository,
	follows FollowRepository,
	users UserRepository,
	dispatcher Dispatcher,
) *Usecase {
	return &Usecase{
		reviews:    reviews,
		likes:      likes,
		follows:    follows,
		users:      users,
		dispatcher: dispatcher,
		logger:     slog.Default(),
	}
}

const (
	minRating = 0.0
	maxRating = 10.0
)

// A lost race on the business-key unique index is safe to retry once:
// the retry observes the winner's row and updates it instead of inserting.
const conflictAttempts = 2

func (u *Usecase) SubmitReview(ctx context.Context, userID model.UserID, movieID string, fields model.ReviewFields, likeIntent *bool, snapshot model.MovieSnapshot) (model.Review, error) {
	if userID <= 0 || movieID == "" {
		return model.Review{}, ErrValidation
	}
	if fields.Rating < minRating || fields.Rating > maxRating {
		return model.Review{}, fmt.Errorf("%w: rating %.1f out of range", ErrValidation, fields.Rating)
	}

	var lastErr error
	for i := 0; i < conflictAttempts; i++ {
		review, err := u.reviews.UpsertWithLike(ctx, userID, movieID, fields, likeIntent, snapshot)
		if err == nil {
			return review, nil
		}
		if errors.Is(err, ErrConflict) {
			u.logger.Warn("review upsert lost a race, retrying",
				slog.Int64("user_id", userID),
				slog.String("movie_id", movieID))
			lastErr = err
			continue
		}
		return model.Review{}, errors.Join(ErrInternal, err)
	}

	return model.Review{}, lastErr
}

func (u *Usecase) CheckReviewStatus(ctx context.Context, userID model.UserID, movieID string) (model.ReviewStatus, error) {
	if userID <= 0 || movieID == "" {
		return model.ReviewStatus{}, ErrValidation
	}

	status, err := u.reviews.StatusByUserAndMovie(ctx, userID, movieID)
	if err != nil {
		return model.ReviewStatus{}, errors.Join(ErrInternal, err)
	}

	return status, nil
}

func (u *Usecase) UserReviews(ctx context.Context, userID model.UserID) ([]model.Review, error) {
	reviews, err := u.reviews.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return reviews, nil
}

func (u *Usecase) UserLikes(ctx context.Context, userID model.UserID) ([]model.Like, error) {
	likes, err := u.likes.ListByUser(ctx, userID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}
	return likes, nil
}

func (u *Usecase) UserReviewCount(ctx context.Context, userID model.UserID) (int, error) {
	count, err := u.reviews.CountByUser(ctx, userID)
	if err != nil {
		return 0, errors.Join(ErrInternal, err)
	}
	return count, nil
}

func (u *Usecase) UserProfile(ctx context.Context, userID model.UserID) (model.User, error) {
	user, err := u.users.ByID(ctx, userID)
	if err != nil {
		return model.User{}, u.wrap(err)
	}
	return user, nil
}

func (u *Usecase) Follow(ctx context.Context, followerID, followeeID model.UserID) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	follower, err := u.users.ByID(ctx, followerID)
	if err != nil {
		return u.wrap(err)
	}
	if _, err := u.users.ByID(ctx, followeeID); err != nil {
		return u.wrap(err)
	}

	message := follower.Name + " started following you"

	var notification *model.Notification
	var lastErr error
	for i := 0; i < conflictAttempts; i++ {
		notification, lastErr = u.follows.CreateWithNotification(ctx, followerID, followeeID, message)
		if lastErr == nil || !errors.Is(lastErr, ErrConflict) {
			break
		}
	}
	if lastErr != nil {
		if errors.Is(lastErr, ErrConflict) {
			// The concurrent writer created the edge; treat as the
			// idempotent no-op path.
			return nil
		}
		return u.wrap(lastErr)
	}

	// Repeat follow: edge existed, nothing recorded, nothing pushed.
	if notification == nil {
		return nil
	}

	notification.SenderName = follower.Name
	notification.SenderAvatar = follower.AvatarURL
	u.dispatcher.Dispatch(*notification)

	return nil
}

func (u *Usecase) Unfollow(ctx context.Context, followerID, followeeID model.UserID) error {
	if followerID == followeeID {
		return ErrSelfFollow
	}

	if _, err := u.users.ByID(ctx, followeeID); err != nil {
		return u.wrap(err)
	}

	if err := u.follows.Delete(ctx, followerID, followeeID); err != nil {
		return u.wrap(err)
	}

	return nil
}

func (u *Usecase) IsFollowing(ctx context.Context, followerID, followeeID model.UserID) (bool, error) {
	following, err := u.follows.IsFollowing(ctx, followerID, followeeID)
	if err != nil {
		return false, u.wrap(err)
	}
	return following, nil
}

func (u *Usecase) FollowerCount(ctx context.Context, userID model.UserID) (int, error) {
	count, err := u.follows.FollowerCount(ctx, userID)
	if err != nil {
		return 0, u.wrap(err)
	}
	return count, nil
}

func (u *Usecase) FollowingCount(ctx context.Context, userID model.UserID) (int, error) {
	count, err := u.follows.FollowingCount(ctx, userID)
	if err != nil {
		return 0, u.wrap(err)
	}
	return count, nil
}

func (u *Usecase) wrap(err error) error {
	if errors.Is(err, ErrResourceNotFound) {
		return ErrResourceNotFound
	}
	return errors.Join(ErrInternal, err)
}
