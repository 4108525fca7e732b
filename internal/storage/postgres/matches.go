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

type matchDTO struct {
	ID            string    `db:"id"`
	UserID        string    `db:"user_id"`
	MatchedUserID string    `db:"matched_user_id"`
	Status        string    `db:"status"`
	CreatedAt     time.Time `db:"created_at"`
	UpdatedAt     time.Time `db:"updated_at"`
}

type briefDTO struct {
	ID        sql.NullString `db:"id"`
	FullName  sql.NullString `db:"full_name"`
	AvatarURL sql.NullString `db:"avatar_url"`
	Bio       sql.NullString `db:"bio"`
}

type matchWithProfileDTO struct {
	matchDTO
	Profile briefDTO `db:"profile"`
}

type matchOverviewDTO struct {
	matchDTO
	User          briefDTO `db:"u"`
	MatchedUser   briefDTO `db:"mu"`
	MessagesCount int      `db:"messages_count"`
}

type messageDTO struct {
	ID        string    `db:"id"`
	MatchID   string    `db:"match_id"`
	SenderID  string    `db:"sender_id"`
	Content   string    `db:"content"`
	CreatedAt time.Time `db:"created_at"`
}

type messageWithSenderDTO struct {
	messageDTO
	Sender briefDTO `db:"sender"`
}

func (m matchDTO) toEntity() *entities.Match {
	return &entities.Match{
		ID:            m.ID,
		UserID:        m.UserID,
		MatchedUserID: m.MatchedUserID,
		Status:        entities.MatchStatus(m.Status),
		CreatedAt:     m.CreatedAt,
		UpdatedAt:     m.UpdatedAt,
	}
}

func (b briefDTO) toEntity() entities.UserBrief {
	return entities.UserBrief{
		ID:        b.ID.String,
		FullName:  b.FullName.String,
		AvatarURL: b.AvatarURL.String,
		Bio:       b.Bio.String,
	}
}

// briefColumns selects a profile brief of the joined alias into the prefixed nested struct.
func briefColumns(alias, prefix string) string {
	return fmt.Sprintf(
		`%[1]s.id AS "%[2]s.id", %[1]s.full_name AS "%[2]s.full_name", %[1]s.avatar_url AS "%[2]s.avatar_url", %[1]s.bio AS "%[2]s.bio"`,
		alias, prefix,
	)
}

func (s pg) CreateMatch(ctx context.Context, m *entities.Match) error {
	match := matchDTO{
		ID:            m.ID,
		UserID:        m.UserID,
		MatchedUserID: m.MatchedUserID,
		Status:        string(m.Status),
		CreatedAt:     m.CreatedAt.UTC(),
		UpdatedAt:     m.UpdatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO matches(id, user_id, matched_user_id, status, created_at, updated_at)
			VALUES(:id, :user_id, :matched_user_id, :status, :created_at, :updated_at)
		`, match,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

func (s pg) GetMatch(ctx context.Context, id string) (*entities.Match, error) {
	var m matchDTO

	if err := sqlx.GetContext(ctx, s.ext, &m, `
			SELECT id, user_id, matched_user_id, status, created_at, updated_at
			FROM matches
			WHERE id = $1
		`, id,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	return m.toEntity(), nil
}

func (s pg) GetMatchBetween(ctx context.Context, a, b string) (*entities.Match, error) {
	var m matchDTO

	if err := sqlx.GetContext(ctx, s.ext, &m, `
			SELECT id, user_id, matched_user_id, status, created_at, updated_at
			FROM matches
			WHERE (user_id = $1 AND matched_user_id = $2) OR (user_id = $2 AND matched_user_id = $1)
		`, a, b,
	); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, storage.ErrNotFound
		}

		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	return m.toEntity(), nil
}

func (s pg) SetMatchStatus(ctx context.Context, id string, status entities.MatchStatus, timestamp time.Time) error {
	return s.execAffected(ctx, `UPDATE matches SET status=$2, updated_at=$3 WHERE id=$1`, id, string(status), timestamp.UTC())
}

func (s pg) ListMatches(ctx context.Context, userID string, status entities.MatchStatus) ([]*entities.MatchWithProfile, error) {
	var matches []*matchWithProfileDTO

	if err := sqlx.SelectContext(ctx, s.ext, &matches, fmt.Sprintf(`
			SELECT m.id, m.user_id, m.matched_user_id, m.status, m.created_at, m.updated_at, %s
			FROM matches m
			LEFT JOIN profiles p ON p.id = CASE WHEN m.user_id = $1 THEN m.matched_user_id ELSE m.user_id END
			WHERE (m.user_id = $1 OR m.matched_user_id = $1) AND m.status = $2
			ORDER BY m.updated_at DESC
		`, briefColumns("p", "profile")), userID, string(status),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	out := make([]*entities.MatchWithProfile, len(matches))
	for i, v := range matches {
		out[i] = &entities.MatchWithProfile{
			Match:   *v.matchDTO.toEntity(),
			Profile: v.Profile.toEntity(),
		}
	}

	return out, nil
}

func (s pg) ListMatchOverviews(ctx context.Context) ([]*entities.MatchOverview, error) {
	var matches []*matchOverviewDTO

	if err := sqlx.SelectContext(ctx, s.ext, &matches, fmt.Sprintf(`
			SELECT m.id, m.user_id, m.matched_user_id, m.status, m.created_at, m.updated_at, %s, %s,
				(SELECT COUNT(*) FROM messages msg WHERE msg.match_id = m.id)::INT AS messages_count
			FROM matches m
			LEFT JOIN profiles u ON u.id = m.user_id
			LEFT JOIN profiles mu ON mu.id = m.matched_user_id
			ORDER BY m.created_at DESC
		`, briefColumns("u", "u"), briefColumns("mu", "mu")),
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	out := make([]*entities.MatchOverview, len(matches))
	for i, v := range matches {
		out[i] = &entities.MatchOverview{
			Match:         *v.matchDTO.toEntity(),
			User:          v.User.toEntity(),
			MatchedUser:   v.MatchedUser.toEntity(),
			MessagesCount: v.MessagesCount,
		}
	}

	return out, nil
}

func (s pg) CreateMessage(ctx context.Context, m *entities.Message) error {
	message := messageDTO{
		ID:        m.ID,
		MatchID:   m.MatchID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		CreatedAt: m.CreatedAt.UTC(),
	}

	if _, err := sqlx.NamedExecContext(ctx, s.ext,
		`
			INSERT INTO messages(id, match_id, sender_id, content, created_at)
			VALUES(:id, :match_id, :sender_id, :content, :created_at)
		`, message,
	); err != nil {
		return fmt.Errorf("failed to exec: %w", wrapError(err))
	}

	return nil
}

func (s pg) ListMessages(ctx context.Context, matchID string) ([]*entities.MessageWithSender, error) {
	var messages []*messageWithSenderDTO

	if err := sqlx.SelectContext(ctx, s.ext, &messages, fmt.Sprintf(`
			SELECT msg.id, msg.match_id, msg.sender_id, msg.content, msg.created_at, %s
			FROM messages msg
			LEFT JOIN profiles p ON p.id = msg.sender_id
			WHERE msg.match_id = $1
			ORDER BY msg.created_at ASC
		`, briefColumns("p", "sender")), matchID,
	); err != nil {
		return nil, fmt.Errorf("failed to query: %w", wrapError(err))
	}

	out := make([]*entities.MessageWithSender, len(messages))
	for i, v := range messages {
		out[i] = &entities.MessageWithSender{
			Message: entities.Message{
				ID:        v.ID,
				MatchID:   v.MatchID,
				SenderID:  v.SenderID,
				Content:   v.Content,
				CreatedAt: v.CreatedAt,
			},
			Sender: v.Sender.toEntity(),
		}
	}

	return out, nil
}
