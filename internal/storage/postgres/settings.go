package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/storage"
)

type settingsDTO struct {
	UserID             string    `db:"user_id"`
	EmailNotifications bool      `db:"email_notifications"`
	PushNotifications  bool      `db:"push_notifications"`
	Visibility         string    `db:"visibility"`
	Location           string    `db:"location"`
	MaxDistance        int       `db:"max_distance"`
	UpdatedAt          time.Time `db:"updated_at"`
}

func (s pg) GetSettings(ctx context.Context, userID string) (*entities.Settings, error) {
	var st settingsDTO

	if err := sqlx.GetContext(ctx, s.ext, &st, `
			SELECT user_id, email_notifications, push_notifications, visibility, location, max_distance, updated_at
			FROM settings
			WHERE user_id = $1
		`, userID,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	return &entities.Settings{
		UserID:             st.UserID,
		EmailNotifications: st.EmailNotifications,
		PushNotifications:  st.PushNotifications,
		Visibility:         entities.Visibility(st.Visibility),
		Location:           st.Location,
		MaxDistance:        entities.MaxDistance(st.MaxDistance),
		UpdatedAt:          st.UpdatedAt,
	}, nil
}

func (s pg) SetSettings(ctx context.Context, st *entities.Settings) error {
	settings := settingsDTO{
		UserID:             st.UserID,
		EmailNotifications: st.EmailNotifications,
		PushNotifications:  st.PushNotifications,
		Visibility:         string(st.Visibility),
		Location:           st.Location,
		MaxDistance:        int(st.MaxDistance),
		UpdatedAt:          st.UpdatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO settings(user_id, email_notifications, push_notifications, visibility, location, max_distance, updated_at)
			VALUES(:user_id, :email_notifications, :push_notifications, :visibility, :location, :max_distance, :updated_at)
			ON CONFLICT(user_id) DO UPDATE SET
			email_notifications=excluded.email_notifications, push_notifications=excluded.push_notifications,
			visibility=excluded.visibility, location=excluded.location, max_distance=excluded.max_distance,
			updated_at=excluded.updated_at
		`, settings,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}
