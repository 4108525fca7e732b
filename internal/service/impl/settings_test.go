package impl

import (
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
	storageinterface "github.com/sparkdate/spark/internal/storage"
)

func TestSrv_GetSettings(t *testing.T) {
	srv, s, _ := newTestService(t)

	s.EXPECT().GetSettings(gomock.Any(), userID).Return(nil, storageinterface.ErrNotFound)

	st, err := srv.GetSettings(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, entities.DefaultSettings(userID), st)
}

func TestSrv_UpdateSettings(t *testing.T) {
	srv, s, _ := newTestService(t)

	hidden := entities.HiddenVisibility
	distance := entities.MaxDistance(100)
	push := true

	s.EXPECT().GetSettings(gomock.Any(), userID).Return(nil, storageinterface.ErrNotFound)
	s.EXPECT().SetSettings(gomock.Any(), &entities.Settings{
		UserID:             userID,
		EmailNotifications: true,
		PushNotifications:  true,
		Visibility:         entities.HiddenVisibility,
		Location:           entities.DefaultLocation,
		MaxDistance:        100,
		UpdatedAt:          timestamp,
	}).Return(nil)

	st, err := srv.UpdateSettings(ctx, user, service.SettingsPatch{
		PushNotifications: &push,
		Visibility:        &hidden,
		MaxDistance:       &distance,
	})
	require.NoError(t, err)
	assert.Equal(t, entities.HiddenVisibility, st.Visibility)
}

func TestSrv_UpdateSettings_Validation(t *testing.T) {
	srv, _, _ := newTestService(t)

	visibility := entities.Visibility("friends")
	_, err := srv.UpdateSettings(ctx, user, service.SettingsPatch{Visibility: &visibility})
	require.True(t, errors.Is(err, service.ErrValidation))

	distance := entities.MaxDistance(7)
	_, err = srv.UpdateSettings(ctx, user, service.SettingsPatch{MaxDistance: &distance})
	require.True(t, errors.Is(err, service.ErrValidation))

	_, err = srv.UpdateSettings(ctx, service.Identity{}, service.SettingsPatch{})
	require.True(t, errors.Is(err, service.ErrNotAuthenticated))
}
