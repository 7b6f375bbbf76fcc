package usecase_notification

import (
	"context"
	"errors"

	"github.com/kinolog/core/internal/model"
)

var (
	ErrResourceNotFound = errors.New("no such resource")
	ErrForbidden        = errors.New("not the recipient")
	ErrInternal         = errors.New("internal error")
)

//go:generate mockery --name=NotificationRepository --output=./mocks --filename=notification_repository.go
type NotificationRepository interface {
	ListByRecipient(ctx context.Context, recipientID model.UserID) ([]model.Notification, error)
	ByID(ctx context.Context, id int64) (model.Notification, error)
	MarkRead(ctx context.Context, id int64) error
}

type Usecase struct {
	notifications NotificationRepository
}

func New(r NotificationRepository) *Usecase {
	return &Usecase{notifications: r}
}

// List returns the recipient's ledger, newest first.
func (u *Usecase) List(ctx context.Context, recipientID model.UserID) ([]model.Notification, error) {
	notifications, err := u.notifications.ListByRecipient(ctx, recipientID)
	if err != nil {
		return nil, errors.Join(ErrInternal, err)
	}

	return notifications, nil
}

// MarkRead flips IsRead once. Only the recipient may do it,
// repeating it is a no-op.
func (u *Usecase) MarkRead(ctx context.Context, actingUserID model.UserID, id int64) error {
	notification, err := u.notifications.ByID(ctx, id)
	if err != nil {
		if errors.Is(err, ErrResourceNotFound) {
			return ErrResourceNotFound
		}
		return errors.Join(ErrInternal, err)
	}

	if notification.RecipientID != actingUserID {
		return ErrForbidden
	}

	if notification.IsRead {
		return nil
	}

	if err := u.notifications.MarkRead(ctx, id); err != nil {
		return errors.Join(ErrInternal, err)
	}

	return nil
}
