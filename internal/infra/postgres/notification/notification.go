package infra_postgres_notification

import (
	"context"
	"database/sql"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/kinolog/core/internal/model"
	usecase_notification "github.com/kinolog/core/internal/usecase/notification"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type notificationDTO struct {
	ID           int64     `db:"id"`
	RecipientID  int64     `db:"recipient_id"`
	SenderID     int64     `db:"sender_id"`
	Type         string    `db:"type"`
	Message      string    `db:"message"`
	IsRead       bool      `db:"is_read"`
	CreatedAt    time.Time `db:"created_at"`
	SenderName   string    `db:"sender_name"`
	SenderAvatar string    `db:"sender_avatar"`
}

func (dto notificationDTO) toModel() model.Notification {
	return model.Notification{
		ID:           dto.ID,
		RecipientID:  dto.RecipientID,
		SenderID:     dto.SenderID,
		Type:         dto.Type,
		Message:      dto.Message,
		IsRead:       dto.IsRead,
		CreatedAt:    dto.CreatedAt,
		SenderName:   dto.SenderName,
		SenderAvatar: dto.SenderAvatar,
	}
}

const notificationColumns = `
	n.id, n.recipient_id, n.sender_id, n.type, n.message, n.is_read, n.created_at,
	u.name AS sender_name, COALESCE(u.avatar_url, '') AS sender_avatar`

func (d *Driver) ListByRecipient(ctx context.Context, recipientID model.UserID) ([]model.Notification, error) {
	var rows []notificationDTO

	query := `
		SELECT ` + notificationColumns + `
		FROM notifications n
		JOIN users u ON u.id = n.sender_id
		WHERE n.recipient_id = $1
		ORDER BY n.created_at DESC, n.id DESC
	`

	if err := d.db.SelectContext(ctx, &rows, query, recipientID); err != nil {
		return nil, err
	}

	notifications := make([]model.Notification, 0, len(rows))
	for _, row := range rows {
		notifications = append(notifications, row.toModel())
	}

	return notifications, nil
}

func (d *Driver) ByID(ctx context.Context, id int64) (model.Notification, error) {
	var row notificationDTO

	query := `
		SELECT ` + notificationColumns + `
		FROM notifications n
		JOIN users u ON u.id = n.sender_id
		WHERE n.id = $1
	`

	err := d.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Notification{}, usecase_notification.ErrResourceNotFound
		}
		return model.Notification{}, err
	}

	return row.toModel(), nil
}

func (d *Driver) MarkRead(ctx context.Context, id int64) error {
	query := `
		UPDATE notifications
		SET is_read = true
		WHERE id = $1
	`

	result, err := d.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return usecase_notification.ErrResourceNotFound
	}

	return nil
}
