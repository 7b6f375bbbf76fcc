package infra_postgres_follow

import (
	"context"
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

// CreateWithNotification inserts the follow edge and, when the edge is new,
// its FOLLOW notification within the same transaction. A reader never sees
// the edge without the durable notification. Returns nil when the edge
// already existed.
func (d *Driver) CreateWithNotification(ctx context.Context, followerID, followeeID model.UserID, message string) (*model.Notification, error) {
	tx, err := d.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer func() { _ = tx.Rollback() }()

	insertEdgeQuery := `
		INSERT INTO follows (follower_id, followee_id)
		VALUES ($1, $2)
		ON CONFLICT (follower_id, followee_id) DO NOTHING
	`

	result, err := tx.ExecContext(ctx, insertEdgeQuery, followerID, followeeID)
	if err != nil {
		return nil, translate(err)
	}

	inserted, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if inserted == 0 {
		return nil, tx.Commit()
	}

	var row struct {
		ID        int64     `db:"id"`
		CreatedAt time.Time `db:"created_at"`
	}

	insertNotificationQuery := `
		INSERT INTO notifications (recipient_id, sender_id, type, message)
		VALUES ($1, $2, $3, $4)
		RETURNING id, created_at
	`

	err = tx.GetContext(ctx, &row, insertNotificationQuery,
		followeeID, followerID, model.NotificationFollow, message)
	if err != nil {
		return nil, translate(err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &model.Notification{
		ID:          row.ID,
		RecipientID: followeeID,
		SenderID:    followerID,
		Type:        model.NotificationFollow,
		Message:     message,
		IsRead:      false,
		CreatedAt:   row.CreatedAt,
	}, nil
}

func (d *Driver) Delete(ctx context.Context, followerID, followeeID model.UserID) error {
	query := `
		DELETE FROM follows
		WHERE follower_id = $1 AND followee_id = $2
	`

	// Absent edge is a no-op, unfollow is idempotent.
	_, err := d.db.ExecContext(ctx, query, followerID, followeeID)
	return err
}

func (d *Driver) IsFollowing(ctx context.Context, followerID, followeeID model.UserID) (bool, error) {
	var exists bool

	query := `SELECT EXISTS(SELECT 1 FROM follows WHERE follower_id = $1 AND followee_id = $2)`

	if err := d.db.GetContext(ctx, &exists, query, followerID, followeeID); err != nil {
		return false, err
	}

	return exists, nil
}

func (d *Driver) FollowerCount(ctx context.Context, userID model.UserID) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM follows WHERE followee_id = $1`

	if err := d.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, err
	}

	return count, nil
}

func (d *Driver) FollowingCount(ctx context.Context, userID model.UserID) (int, error) {
	var count int

	query := `SELECT COUNT(*) FROM follows WHERE follower_id = $1`

	if err := d.db.GetContext(ctx, &count, query, userID); err != nil {
		return 0, err
	}

	return count, nil
}

func translate(err error) error {
	if pqErr, ok := err.(*pq.Error); ok {
		switch pqErr.Code {
		case "23505":
			return usecase_interaction.ErrConflict
		case "23503":
			return usecase_interaction.ErrResourceNotFound
		}
	}
	return err
}
