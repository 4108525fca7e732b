package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"

	"github.com/sparkdate/spark/internal/entities"
)

type swipeDTO struct {
	ID        string    `db:"id"`
	SwiperID  string    `db:"swiper_id"`
	SwipedID  string    `db:"swiped_id"`
	Action    string    `db:"action"`
	CreatedAt time.Time `db:"created_at"`
}

type likedDTO struct {
	profileDTO
	LikedAt time.Time `db:"liked_at"`
}

type candidateDTO struct {
	profileDTO
	MatchScore int `db:"match_score"`
}

func (s pg) LockPair(ctx context.Context, a, b string) error {
	if a > b {
		a, b = b, a
	}

	if _, err := s.ext.ExecContext(ctx, `SELECT pg_advisory_xact_lock(hashtext($1::TEXT || ':' || $2::TEXT))`, a, b); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

func (s pg) CreateSwipe(ctx context.Context, sw *entities.Swipe) error {
	swipe := swipeDTO{
		ID:        sw.ID,
		SwiperID:  sw.SwiperID,
		SwipedID:  sw.SwipedID,
		Action:    string(sw.Action),
		CreatedAt: sw.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO swipes(id, swiper_id, swiped_id, action, created_at)
			VALUES(:id, :swiper_id, :swiped_id, :action, :created_at)
		`, swipe,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

func (s pg) CheckMatch(ctx context.Context, a, b string) (bool, error) {
	var matched bool

	if err := sqlx.GetContext(ctx, s.ext, &matched, `
			SELECT
				EXISTS(SELECT 1 FROM swipes WHERE swiper_id = $1 AND swiped_id = $2 AND action = 'like') AND
				EXISTS(SELECT 1 FROM swipes WHERE swiper_id = $2 AND swiped_id = $1 AND action = 'like')
		`, a, b,
	); err != nil {
		return false, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	return matched, nil
}

func (s pg) ListLiked(ctx context.Context, swiper string) ([]*entities.LikedProfile, error) {
	var liked []*likedDTO

	if err := sqlx.SelectContext(ctx, s.ext, &liked, fmt.Sprintf(`
			SELECT %s, sw.created_at AS liked_at
			FROM swipes sw
			JOIN profiles p ON p.id = sw.swiped_id
			WHERE sw.swiper_id = $1 AND sw.action = 'like'
			ORDER BY sw.created_at DESC
		`, profileColumns), swiper,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	out := make([]*entities.LikedProfile, len(liked))
	for i, v := range liked {
		out[i] = &entities.LikedProfile{
			Profile: *v.toEntity(),
			LikedAt: v.LikedAt,
		}
	}

	return out, nil
}

// GetPotentialMatches returns onboarded, visible and not yet swiped profiles
// ranked by shared interests (weight 2) and shared languages (weight 1).
func (s pg) GetPotentialMatches(ctx context.Context, userID string, limit uint16) ([]*entities.Candidate, error) {
	var candidates []*candidateDTO

	if err := sqlx.SelectContext(ctx, s.ext, &candidates, fmt.Sprintf(`
			SELECT %s,
				(
					(SELECT COUNT(*) FROM unnest(p.interests) i WHERE i = ANY(me.interests)) * 2 +
					(SELECT COUNT(*) FROM unnest(p.languages) l WHERE l = ANY(me.languages))
				)::INT AS match_score
			FROM profiles p
			JOIN accounts a ON a.id = p.id AND NOT a.banned
			LEFT JOIN profiles me ON me.id = $1
			LEFT JOIN settings st ON st.user_id = p.id
			WHERE p.id <> $1
				AND p.full_name <> ''
				AND COALESCE(st.visibility, 'everyone') = 'everyone'
				AND NOT EXISTS(SELECT 1 FROM swipes sw WHERE sw.swiper_id = $1 AND sw.swiped_id = p.id)
			ORDER BY match_score DESC, p.created_at DESC
			LIMIT $2
		`, profileColumns), userID, limit,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	out := make([]*entities.Candidate, len(candidates))
	for i, v := range candidates {
		out[i] = &entities.Candidate{
			Profile:    *v.toEntity(),
			MatchScore: v.MatchScore,
		}
	}

	return out, nil
}
