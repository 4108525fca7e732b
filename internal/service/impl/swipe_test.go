package impl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
	storageinterface "github.com/sparkdate/spark/internal/storage"
)

func TestSrv_RecordSwipe_Dislike(t *testing.T) {
	srv, s, _ := newTestService(t)

	expectTx(s)
	s.EXPECT().LockPair(gomock.Any(), userID, otherID).Return(nil)
	s.EXPECT().CreateSwipe(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, sw *entities.Swipe) error {
		assert.NotEmpty(t, sw.ID)
		assert.Equal(t, userID, sw.SwiperID)
		assert.Equal(t, otherID, sw.SwipedID)
		assert.Equal(t, entities.DislikeAction, sw.Action)
		assert.Equal(t, timestamp, sw.CreatedAt)
		return nil
	})

	res, err := srv.RecordSwipe(ctx, user, otherID, entities.DislikeAction)
	require.NoError(t, err)
	assert.False(t, res.Matched)
	assert.Nil(t, res.Match)
}

func TestSrv_RecordSwipe_LikeWithoutReciprocal(t *testing.T) {
	srv, s, _ := newTestService(t)

	expectTx(s)
	s.EXPECT().LockPair(gomock.Any(), userID, otherID).Return(nil)
	s.EXPECT().CreateSwipe(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().CheckMatch(gomock.Any(), userID, otherID).Return(false, nil)
	s.EXPECT().GetMatchBetween(gomock.Any(), userID, otherID).Return(nil, storageinterface.ErrNotFound)
	s.EXPECT().CreateMatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, m *entities.Match) error {
		assert.Equal(t, userID, m.UserID)
		assert.Equal(t, otherID, m.MatchedUserID)
		assert.Equal(t, entities.PendingMatchStatus, m.Status)
		return nil
	})

	res, err := srv.RecordSwipe(ctx, user, otherID, entities.LikeAction)
	require.NoError(t, err)
	assert.False(t, res.Matched)
	require.NotNil(t, res.Match)
	assert.Equal(t, entities.PendingMatchStatus, res.Match.Status)
}

func TestSrv_RecordSwipe_PromotesPendingMatch(t *testing.T) {
	srv, s, _ := newTestService(t)

	pending := &entities.Match{
		ID:            matchID,
		UserID:        otherID,
		MatchedUserID: userID,
		Status:        entities.PendingMatchStatus,
	}

	expectTx(s)
	s.EXPECT().LockPair(gomock.Any(), userID, otherID).Return(nil)
	s.EXPECT().CreateSwipe(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().CheckMatch(gomock.Any(), userID, otherID).Return(true, nil)
	s.EXPECT().GetMatchBetween(gomock.Any(), userID, otherID).Return(pending, nil)
	s.EXPECT().SetMatchStatus(gomock.Any(), matchID, entities.MatchedMatchStatus, timestamp).Return(nil)

	res, err := srv.RecordSwipe(ctx, user, otherID, entities.LikeAction)
	require.NoError(t, err)
	assert.True(t, res.Matched)
	assert.Equal(t, matchID, res.Match.ID)
	assert.Equal(t, entities.MatchedMatchStatus, res.Match.Status)
	assert.True(t, res.Match.ChatEnabled())
}

func TestSrv_RecordSwipe_CreatesMatchedMatch(t *testing.T) {
	srv, s, _ := newTestService(t)

	expectTx(s)
	s.EXPECT().LockPair(gomock.Any(), userID, otherID).Return(nil)
	s.EXPECT().CreateSwipe(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().CheckMatch(gomock.Any(), userID, otherID).Return(true, nil)
	s.EXPECT().GetMatchBetween(gomock.Any(), userID, otherID).Return(nil, storageinterface.ErrNotFound)
	s.EXPECT().CreateMatch(gomock.Any(), gomock.Any()).DoAndReturn(func(_ interface{}, m *entities.Match) error {
		assert.Equal(t, otherID, m.UserID)
		assert.Equal(t, userID, m.MatchedUserID)
		assert.Equal(t, entities.MatchedMatchStatus, m.Status)
		return nil
	})

	res, err := srv.RecordSwipe(ctx, user, otherID, entities.LikeAction)
	require.NoError(t, err)
	assert.True(t, res.Matched)
}

func TestSrv_RecordSwipe_UnmatchedStaysUnmatched(t *testing.T) {
	srv, s, _ := newTestService(t)

	expectTx(s)
	s.EXPECT().LockPair(gomock.Any(), userID, otherID).Return(nil)
	s.EXPECT().CreateSwipe(gomock.Any(), gomock.Any()).Return(nil)
	s.EXPECT().CheckMatch(gomock.Any(), userID, otherID).Return(true, nil)
	s.EXPECT().GetMatchBetween(gomock.Any(), userID, otherID).Return(&entities.Match{
		ID:     matchID,
		Status: entities.UnmatchedMatchStatus,
	}, nil)

	res, err := srv.RecordSwipe(ctx, user, otherID, entities.LikeAction)
	require.NoError(t, err)
	assert.False(t, res.Matched)
	assert.Equal(t, entities.UnmatchedMatchStatus, res.Match.Status)
}

func TestSrv_RecordSwipe_Errors(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		srv, s, _ := newTestService(t)

		expectTx(s)
		s.EXPECT().LockPair(gomock.Any(), userID, otherID).Return(nil)
		s.EXPECT().CreateSwipe(gomock.Any(), gomock.Any()).Return(fmt.Errorf("failed to exec: %w", storageinterface.ErrAlreadyExists))

		_, err := srv.RecordSwipe(ctx, user, otherID, entities.LikeAction)
		require.True(t, errors.Is(err, service.ErrConflict))
	})

	t.Run("unknown profile", func(t *testing.T) {
		srv, s, _ := newTestService(t)

		expectTx(s)
		s.EXPECT().LockPair(gomock.Any(), userID, otherID).Return(nil)
		s.EXPECT().CreateSwipe(gomock.Any(), gomock.Any()).Return(fmt.Errorf("failed to exec: %w", storageinterface.ErrNotFound))

		_, err := srv.RecordSwipe(ctx, user, otherID, entities.LikeAction)
		require.True(t, errors.Is(err, service.ErrNotFound))
	})

	t.Run("self", func(t *testing.T) {
		srv, _, _ := newTestService(t)

		_, err := srv.RecordSwipe(ctx, user, userID, entities.LikeAction)
		require.True(t, errors.Is(err, service.ErrValidation))
	})

	t.Run("invalid action", func(t *testing.T) {
		srv, _, _ := newTestService(t)

		_, err := srv.RecordSwipe(ctx, user, otherID, "superlike")
		require.True(t, errors.Is(err, service.ErrValidation))
	})

	t.Run("not authenticated", func(t *testing.T) {
		srv, _, _ := newTestService(t)

		_, err := srv.RecordSwipe(ctx, service.Identity{}, otherID, entities.LikeAction)
		require.True(t, errors.Is(err, service.ErrNotAuthenticated))
	})
}

func TestSrv_CheckMatch(t *testing.T) {
	srv, s, _ := newTestService(t)

	s.EXPECT().CheckMatch(gomock.Any(), userID, otherID).Return(true, nil)
	ok, err := srv.CheckMatch(ctx, userID, otherID)
	require.NoError(t, err)
	require.True(t, ok)

	s.EXPECT().CheckMatch(gomock.Any(), userID, otherID).Return(false, errors.New("timeout"))
	ok, err = srv.CheckMatch(ctx, userID, otherID)
	require.Error(t, err)
	require.False(t, ok)
}

func TestSrv_FetchCandidates(t *testing.T) {
	srv, s, _ := newTestService(t)

	cc := []*entities.Candidate{{Profile: entities.Profile{ID: otherID}, MatchScore: 3}}

	s.EXPECT().GetPotentialMatches(gomock.Any(), userID, uint16(50)).Return(cc, nil)

	res, err := srv.FetchCandidates(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, cc, res)
}

func TestSrv_ListLiked(t *testing.T) {
	srv, s, _ := newTestService(t)

	liked := []*entities.LikedProfile{{Profile: entities.Profile{ID: otherID}, LikedAt: timestamp}}

	s.EXPECT().ListLiked(gomock.Any(), userID).Return(liked, nil)

	res, err := srv.ListLiked(ctx, user)
	require.NoError(t, err)
	assert.Equal(t, liked, res)
}
