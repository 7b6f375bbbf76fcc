package usecase_notification

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kinolog/core/internal/model"
	"github.com/kinolog/core/internal/usecase/notification/mocks"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type UsecaseNotificationUnitSuite struct {
	suite.Suite
}

type resources struct {
	usecase       *Usecase
	notifications *mocks.NotificationRepository
	ctx           context.Context
}

func initResources(t provider.T) *resources {
	notifications := mocks.NewNotificationRepository(t)

	return &resources{
		usecase:       New(notifications),
		notifications: notifications,
		ctx:           context.Background(),
	}
}

func storedNotification(id int64, recipientID model.UserID, isRead bool) model.Notification {
	return model.Notification{
		ID:          id,
		RecipientID: recipientID,
		SenderID:    1,
		Type:        model.NotificationFollow,
		Message:     "Andrei started following you",
		IsRead:      isRead,
		CreatedAt:   time.Date(2025, time.March, 14, 9, 26, 53, 0, time.UTC),
		SenderName:  "Andrei",
	}
}

func (s *UsecaseNotificationUnitSuite) TestList(t provider.T) {
	t.Run("Should return the stored feed in order", func(t provider.T) {
		r := initResources(t)
		expected := []model.Notification{
			storedNotification(9, 2, false),
			storedNotification(4, 2, true),
		}

		r.notifications.On("ListByRecipient", r.ctx, model.UserID(2)).
			Return(expected, nil).Once()

		feed, err := r.usecase.List(r.ctx, 2)

		assert.NoError(t, err)
		assert.Equal(t, expected, feed)
	})

	t.Run("Should wrap store errors", func(t provider.T) {
		r := initResources(t)

		r.notifications.On("ListByRecipient", r.ctx, model.UserID(2)).
			Return(nil, errors.New("connection reset")).Once()

		_, err := r.usecase.List(r.ctx, 2)

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (s *UsecaseNotificationUnitSuite) TestMarkRead(t provider.T) {
	t.Run("Should mark own notification as read", func(t provider.T) {
		r := initResources(t)

		r.notifications.On("ByID", r.ctx, int64(9)).
			Return(storedNotification(9, 2, false), nil).Once()
		r.notifications.On("MarkRead", r.ctx, int64(9)).
			Return(nil).Once()

		err := r.usecase.MarkRead(r.ctx, 2, 9)

		assert.NoError(t, err)
	})

	t.Run("Should not rewrite an already read notification", func(t provider.T) {
		r := initResources(t)

		r.notifications.On("ByID", r.ctx, int64(9)).
			Return(storedNotification(9, 2, true), nil).Once()

		err := r.usecase.MarkRead(r.ctx, 2, 9)

		assert.NoError(t, err)
		r.notifications.AssertNotCalled(t, "MarkRead")
	})

	t.Run("Should forbid reading someone else's notification", func(t provider.T) {
		r := initResources(t)

		r.notifications.On("ByID", r.ctx, int64(9)).
			Return(storedNotification(9, 2, false), nil).Once()

		err := r.usecase.MarkRead(r.ctx, 5, 9)

		assert.ErrorIs(t, err, ErrForbidden)
		r.notifications.AssertNotCalled(t, "MarkRead")
	})

	t.Run("Should report missing notification", func(t provider.T) {
		r := initResources(t)

		r.notifications.On("ByID", r.ctx, int64(404)).
			Return(model.Notification{}, ErrResourceNotFound).Once()

		err := r.usecase.MarkRead(r.ctx, 2, 404)

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})
}

func TestUsecaseNotificationUnit(t *testing.T) {
	suite.RunSuite(t, new(UsecaseNotificationUnitSuite))
}
