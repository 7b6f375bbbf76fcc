package infra_postgres_user

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"
	"github.com/kinolog/core/internal/model"
	usecase_interaction "github.com/kinolog/core/internal/usecase/interaction"
)

type Driver struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Driver {
	return &Driver{db: db}
}

type userDTO struct {
	ID        int64  `db:"id"`
	Name      string `db:"name"`
	Email     string `db:"email"`
	Bio       string `db:"bio"`
	AvatarURL string `db:"avatar_url"`
}

func (d *Driver) ByID(ctx context.Context, id model.UserID) (model.User, error) {
	var row userDTO

	query := `
		SELECT id, name, email, COALESCE(bio, '') AS bio, COALESCE(avatar_url, '') AS avatar_url
		FROM users
		WHERE id = $1
	`

	err := d.db.GetContext(ctx, &row, query, id)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.User{}, usecase_interaction.ErrResourceNotFound
		}
		return model.User{}, err
	}

	return model.User{
		ID:        row.ID,
		Name:      row.Name,
		Email:     row.Email,
		Bio:       row.Bio,
		AvatarURL: row.AvatarURL,
	}, nil
}
