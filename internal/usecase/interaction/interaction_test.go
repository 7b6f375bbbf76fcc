package usecase_interaction

import (
	"context"
	"errors"
	"testing"

	"github.com/kinolog/core/internal/model"
	"github.com/kinolog/core/internal/usecase/interaction/mocks"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type UsecaseInteractionUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase    *Usecase
	reviews    *mocks.ReviewRepository
	likes      *mocks.LikeRepository
	follows    *mocks.FollowRepository
	users      *mocks.UserRepository
	dispatcher *mocks.Dispatcher
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	reviews := mocks.NewReviewRepository(t)
	likes := mocks.NewLikeRepository(t)
	follows := mocks.NewFollowRepository(t)
	users := mocks.NewUserRepository(t)
	dispatcher := mocks.NewDispatcher(t)

	return &resources{
		usecase:    New(reviews, likes, follows, users, dispatcher),
		reviews:    reviews,
		likes:      likes,
		follows:    follows,
		users:      users,
		dispatcher: dispatcher,
		ctx:        context.Background(),
	}
}

/*
'Object Mother' helpers.
*/
func validFields() model.ReviewFields {
	return model.ReviewFields{
		MovieTitle: "Stalker",
		MovieYear:  "1979",
		PosterURL:  "https://example.com/stalker.jpg",
		Content:    "unsettling and beautiful",
		Rating:     8.5,
		Tags:       []string{"slow", "rewatchable"},
	}
}

func validSnapshot() model.MovieSnapshot {
	voteAverage := 8.1
	return model.MovieSnapshot{
		VoteAverage: &voteAverage,
		ReleaseDate: "1979-05-25",
	}
}

func validReview(userID model.UserID, movieID string) model.Review {
	fields := validFields()
	return model.Review{
		ID:         1,
		UserID:     userID,
		MovieID:    movieID,
		MovieTitle: fields.MovieTitle,
		MovieYear:  fields.MovieYear,
		Rating:     fields.Rating,
	}
}

func validNotification(followerID, followeeID model.UserID) *model.Notification {
	return &model.Notification{
		ID:          42,
		RecipientID: followeeID,
		SenderID:    followerID,
		Type:        model.NotificationFollow,
		Message:     "Andrei started following you",
	}
}

func (s *UsecaseInteractionUnitSuite) TestSubmitReview(t provider.T) {
	t.Run("Should upsert successfully", func(t provider.T) {
		r := initResources(t)
		fields := validFields()
		snapshot := validSnapshot()
		liked := true
		expected := validReview(1, "42")

		r.reviews.On("UpsertWithLike", r.ctx, model.UserID(1), "42", fields, &liked, snapshot).
			Return(expected, nil).Once()

		review, err := r.usecase.SubmitReview(r.ctx, 1, "42", fields, &liked, snapshot)

		assert.NoError(t, err)
		assert.Equal(t, expected, review)
	})

	t.Run("Should reject rating out of range without touching the store", func(t provider.T) {
		r := initResources(t)
		fields := validFields()
		fields.Rating = 10.5

		_, err := r.usecase.SubmitReview(r.ctx, 1, "42", fields, nil, model.MovieSnapshot{})

		assert.ErrorIs(t, err, ErrValidation)
		r.reviews.AssertNotCalled(t, "UpsertWithLike")
	})

	t.Run("Should reject empty movie id", func(t provider.T) {
		r := initResources(t)

		_, err := r.usecase.SubmitReview(r.ctx, 1, "", validFields(), nil, model.MovieSnapshot{})

		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("Should retry once after a lost race and converge", func(t provider.T) {
		r := initResources(t)
		fields := validFields()
		expected := validReview(1, "42")

		r.reviews.On("UpsertWithLike", r.ctx, model.UserID(1), "42", fields, (*bool)(nil), model.MovieSnapshot{}).
			Return(model.Review{}, ErrConflict).Once()
		r.reviews.On("UpsertWithLike", r.ctx, model.UserID(1), "42", fields, (*bool)(nil), model.MovieSnapshot{}).
			Return(expected, nil).Once()

		review, err := r.usecase.SubmitReview(r.ctx, 1, "42", fields, nil, model.MovieSnapshot{})

		assert.NoError(t, err)
		assert.Equal(t, expected, review)
	})

	t.Run("Should surface conflict when both attempts lose", func(t provider.T) {
		r := initResources(t)
		fields := validFields()

		r.reviews.On("UpsertWithLike", r.ctx, model.UserID(1), "42", fields, (*bool)(nil), model.MovieSnapshot{}).
			Return(model.Review{}, ErrConflict).Times(2)

		_, err := r.usecase.SubmitReview(r.ctx, 1, "42", fields, nil, model.MovieSnapshot{})

		assert.ErrorIs(t, err, ErrConflict)
	})

	t.Run("Should wrap unexpected store errors", func(t provider.T) {
		r := initResources(t)
		fields := validFields()
		storeErr := errors.New("connection reset")

		r.reviews.On("UpsertWithLike", r.ctx, model.UserID(1), "42", fields, (*bool)(nil), model.MovieSnapshot{}).
			Return(model.Review{}, storeErr).Once()

		_, err := r.usecase.SubmitReview(r.ctx, 1, "42", fields, nil, model.MovieSnapshot{})

		assert.ErrorIs(t, err, ErrInternal)
		assert.NotErrorIs(t, err, ErrConflict)
	})
}

func (s *UsecaseInteractionUnitSuite) TestCheckReviewStatus(t provider.T) {
	t.Run("Should pass the stored status through", func(t provider.T) {
		r := initResources(t)
		expected := model.ReviewStatus{HasReview: true, Rating: 8.5, ReviewID: 7}

		r.reviews.On("StatusByUserAndMovie", r.ctx, model.UserID(1), "42").
			Return(expected, nil).Once()

		status, err := r.usecase.CheckReviewStatus(r.ctx, 1, "42")

		assert.NoError(t, err)
		assert.Equal(t, expected, status)
	})

	t.Run("Should reject empty movie id", func(t provider.T) {
		r := initResources(t)

		_, err := r.usecase.CheckReviewStatus(r.ctx, 1, "")

		assert.ErrorIs(t, err, ErrValidation)
	})
}

func (s *UsecaseInteractionUnitSuite) TestFollow(t provider.T) {
	t.Run("Should reject self follow before any lookup", func(t provider.T) {
		r := initResources(t)

		err := r.usecase.Follow(r.ctx, 5, 5)

		assert.ErrorIs(t, err, ErrSelfFollow)
		r.users.AssertNotCalled(t, "ByID")
		r.follows.AssertNotCalled(t, "CreateWithNotification")
	})

	t.Run("Should create edge, record notification and dispatch", func(t provider.T) {
		r := initResources(t)
		follower := model.User{ID: 1, Name: "Andrei", AvatarURL: "https://example.com/a.png"}

		r.users.On("ByID", r.ctx, model.UserID(1)).Return(follower, nil).Once()
		r.users.On("ByID", r.ctx, model.UserID(2)).Return(model.User{ID: 2, Name: "Lena"}, nil).Once()
		r.follows.On("CreateWithNotification", r.ctx, model.UserID(1), model.UserID(2), "Andrei started following you").
			Return(validNotification(1, 2), nil).Once()
		r.dispatcher.On("Dispatch", mock.MatchedBy(func(n model.Notification) bool {
			return n.RecipientID == 2 && n.SenderName == "Andrei" && n.SenderAvatar == follower.AvatarURL
		})).Once()

		err := r.usecase.Follow(r.ctx, 1, 2)

		assert.NoError(t, err)
	})

	t.Run("Should treat repeat follow as success without dispatch", func(t provider.T) {
		r := initResources(t)

		r.users.On("ByID", r.ctx, model.UserID(1)).Return(model.User{ID: 1, Name: "Andrei"}, nil).Once()
		r.users.On("ByID", r.ctx, model.UserID(2)).Return(model.User{ID: 2}, nil).Once()
		r.follows.On("CreateWithNotification", r.ctx, model.UserID(1), model.UserID(2), "Andrei started following you").
			Return(nil, nil).Once()

		err := r.usecase.Follow(r.ctx, 1, 2)

		assert.NoError(t, err)
		r.dispatcher.AssertNotCalled(t, "Dispatch")
	})

	t.Run("Should report missing followee", func(t provider.T) {
		r := initResources(t)

		r.users.On("ByID", r.ctx, model.UserID(1)).Return(model.User{ID: 1, Name: "Andrei"}, nil).Once()
		r.users.On("ByID", r.ctx, model.UserID(9)).Return(model.User{}, ErrResourceNotFound).Once()

		err := r.usecase.Follow(r.ctx, 1, 9)

		assert.ErrorIs(t, err, ErrResourceNotFound)
		r.follows.AssertNotCalled(t, "CreateWithNotification")
	})

	t.Run("Should converge to no-op when the race is lost twice", func(t provider.T) {
		r := initResources(t)

		r.users.On("ByID", r.ctx, model.UserID(1)).Return(model.User{ID: 1, Name: "Andrei"}, nil).Once()
		r.users.On("ByID", r.ctx, model.UserID(2)).Return(model.User{ID: 2}, nil).Once()
		r.follows.On("CreateWithNotification", r.ctx, model.UserID(1), model.UserID(2), "Andrei started following you").
			Return(nil, ErrConflict).Times(2)

		err := r.usecase.Follow(r.ctx, 1, 2)

		assert.NoError(t, err)
		r.dispatcher.AssertNotCalled(t, "Dispatch")
	})
}

func (s *UsecaseInteractionUnitSuite) TestUnfollow(t provider.T) {
	t.Run("Should reject self unfollow", func(t provider.T) {
		r := initResources(t)

		err := r.usecase.Unfollow(r.ctx, 3, 3)

		assert.ErrorIs(t, err, ErrSelfFollow)
	})

	t.Run("Should delete edge idempotently", func(t provider.T) {
		r := initResources(t)

		r.users.On("ByID", r.ctx, model.UserID(2)).Return(model.User{ID: 2}, nil).Once()
		r.follows.On("Delete", r.ctx, model.UserID(1), model.UserID(2)).Return(nil).Once()

		err := r.usecase.Unfollow(r.ctx, 1, 2)

		assert.NoError(t, err)
	})

	t.Run("Should report missing followee", func(t provider.T) {
		r := initResources(t)

		r.users.On("ByID", r.ctx, model.UserID(9)).Return(model.User{}, ErrResourceNotFound).Once()

		err := r.usecase.Unfollow(r.ctx, 1, 9)

		assert.ErrorIs(t, err, ErrResourceNotFound)
		r.follows.AssertNotCalled(t, "Delete")
	})
}

func TestUsecaseInteractionUnit(t *testing.T) {
	suite.RunSuite(t, new(UsecaseInteractionUnitSuite))
}
