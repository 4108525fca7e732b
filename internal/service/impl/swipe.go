package impl

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
	"github.com/sparkdate/spark/internal/storage"
)

func (s srv) RecordSwipe(ctx context.Context, id service.Identity, swiped string, action entities.SwipeAction) (*service.SwipeResult, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	if !action.Valid() {
		return nil, validationError("invalid action %q", action)
	}

	if !validID(swiped) || swiped == id.UserID {
		return nil, validationError("invalid swiped profile")
	}

	now := s.timestamp()
	res := service.SwipeResult{
		Swipe: &entities.Swipe{
			ID:        uuid.New().String(),
			SwiperID:  id.UserID,
			SwipedID:  swiped,
			Action:    action,
			CreatedAt: now,
		},
	}

	if err := s.s.InTx(ctx, func(tx storage.Storage) error {
		if err := tx.LockPair(ctx, id.UserID, swiped); err != nil {
			return fmt.Errorf("failed to lock pair: %w", err)
		}

		if err := tx.CreateSwipe(ctx, res.Swipe); err != nil {
			if errors.Is(err, storage.ErrAlreadyExists) {
				return fmt.Errorf("%w: profile is already swiped", service.ErrConflict)
			}
			return fmt.Errorf("failed to create swipe: %w", err)
		}

		if action != entities.LikeAction {
			return nil
		}

		m, matched, err := evaluateMatch(ctx, tx, id.UserID, swiped, now)
		if err != nil {
			return err
		}

		res.Match, res.Matched = m, matched

		return nil
	}); err != nil {
		return nil, err
	}

	return &res, nil
}

// evaluateMatch creates or promotes the match of the pair after liker's like.
func evaluateMatch(ctx context.Context, tx storage.Storage, liker, liked string, now time.Time) (*entities.Match, bool, error) {
	mutual, err := tx.CheckMatch(ctx, liker, liked)
	if err != nil {
		return nil, false, fmt.Errorf("failed to check match: %w", err)
	}

	m, err := tx.GetMatchBetween(ctx, liker, liked)
	if err != nil && !errors.Is(err, storage.ErrNotFound) {
		return nil, false, fmt.Errorf("failed to get match: %w", err)
	}

	switch {
	case m == nil:
		m = &entities.Match{
			ID:            uuid.New().String(),
			UserID:        liker,
			MatchedUserID: liked,
			Status:        entities.PendingMatchStatus,
			CreatedAt:     now,
			UpdatedAt:     now,
		}
		if mutual {
			// the match is owned by the earlier liker
			m.UserID, m.MatchedUserID = liked, liker
			m.Status = entities.MatchedMatchStatus
		}

		if err := tx.CreateMatch(ctx, m); err != nil {
			return nil, false, fmt.Errorf("failed to create match: %w", err)
		}
	case mutual && m.Status == entities.PendingMatchStatus:
		if err := tx.SetMatchStatus(ctx, m.ID, entities.MatchedMatchStatus, now); err != nil {
			return nil, false, fmt.Errorf("failed to promote match: %w", err)
		}

		m.Status = entities.MatchedMatchStatus
		m.UpdatedAt = now
	}

	return m, mutual && m.Status == entities.MatchedMatchStatus, nil
}

func (s srv) CheckMatch(ctx context.Context, a, b string) (bool, error) {
	for _, v := range []string{a, b} {
		if err := requireID("user", v); err != nil {
			return false, err
		}
	}

	ok, err := s.s.CheckMatch(ctx, a, b)
	if err != nil {
		return false, fmt.Errorf("failed to check match: %w", err)
	}

	return ok, nil
}

func (s srv) ListLiked(ctx context.Context, id service.Identity) ([]*entities.LikedProfile, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	pp, err := s.s.ListLiked(ctx, id.UserID)
	if err != nil {
		return nil, fmt.Errorf("failed to list liked: %w", err)
	}

	return pp, nil
}

func (s srv) FetchCandidates(ctx context.Context, id service.Identity) ([]*entities.Candidate, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	cc, err := s.s.GetPotentialMatches(ctx, id.UserID, s.opts.FeedLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get potential matches: %w", err)
	}

	return cc, nil
}
