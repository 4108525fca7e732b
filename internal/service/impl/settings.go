package impl

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
	"github.com/sparkdate/spark/internal/storage"
)

func (s srv) GetSettings(ctx context.Context, id service.Identity) (*entities.Settings, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	return s.getSettings(ctx, id.UserID)
}

func (s srv) getSettings(ctx context.Context, userID string) (*entities.Settings, error) {
	st, err := s.s.GetSettings(ctx, userID)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return entities.DefaultSettings(userID), nil
		}
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}

	return st, nil
}

func (s srv) UpdateSettings(ctx context.Context, id service.Identity, patch service.SettingsPatch) (*entities.Settings, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	if patch.Visibility != nil && !patch.Visibility.Valid() {
		return nil, validationError("invalid visibility %q", *patch.Visibility)
	}

	if patch.MaxDistance != nil && !patch.MaxDistance.Valid() {
		return nil, validationError("invalid max distance %d", *patch.MaxDistance)
	}

	st, err := s.getSettings(ctx, id.UserID)
	if err != nil {
		return nil, err
	}

	if patch.EmailNotifications != nil {
		st.EmailNotifications = *patch.EmailNotifications
	}
	if patch.PushNotifications != nil {
		st.PushNotifications = *patch.PushNotifications
	}
	if patch.Visibility != nil {
		st.Visibility = *patch.Visibility
	}
	if patch.Location != nil {
		st.Location = strings.TrimSpace(*patch.Location)
	}
	if patch.MaxDistance != nil {
		st.MaxDistance = *patch.MaxDistance
	}
	st.UpdatedAt = s.timestamp()

	if err := s.s.SetSettings(ctx, st); err != nil {
		return nil, fmt.Errorf("failed to set settings: %w", err)
	}

	return st, nil
}
