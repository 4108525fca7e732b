package impl

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/service"
)

// MaxMessageLength is a maximal length of a message in characters.
const MaxMessageLength = 2000

func (s srv) ListMatches(ctx context.Context, id service.Identity) ([]*entities.MatchWithProfile, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	mm, err := s.s.ListMatches(ctx, id.UserID, entities.MatchedMatchStatus)
	if err != nil {
		return nil, fmt.Errorf("failed to list matches: %w", err)
	}

	return mm, nil
}

// chatMatch returns the match if the identity can chat in it.
func (s srv) chatMatch(ctx context.Context, id service.Identity, matchID string) (*entities.Match, error) {
	if err := requireID("match", matchID); err != nil {
		return nil, err
	}

	m, err := s.s.GetMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to get match: %w", err)
	}

	if !m.HasParticipant(id.UserID) {
		return nil, fmt.Errorf("%w: not a participant of the match", service.ErrForbidden)
	}

	if !m.ChatEnabled() {
		return nil, fmt.Errorf("%w: chat is not available for %s match", service.ErrForbidden, m.Status)
	}

	return m, nil
}

func (s srv) ListConversation(ctx context.Context, id service.Identity, matchID string) ([]*entities.MessageWithSender, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	if _, err := s.chatMatch(ctx, id, matchID); err != nil {
		return nil, err
	}

	mm, err := s.s.ListMessages(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}

	return mm, nil
}

func (s srv) SendMessage(ctx context.Context, id service.Identity, matchID, content string) (*entities.Message, error) {
	if err := authenticated(id); err != nil {
		return nil, err
	}

	content = strings.TrimSpace(content)
	if content == "" || utf8.RuneCountInString(content) > MaxMessageLength {
		return nil, validationError("message must contain from 1 to %d characters", MaxMessageLength)
	}

	if _, err := s.chatMatch(ctx, id, matchID); err != nil {
		return nil, err
	}

	m := &entities.Message{
		ID:        uuid.New().String(),
		MatchID:   matchID,
		SenderID:  id.UserID,
		Content:   content,
		CreatedAt: s.timestamp(),
	}

	if err := s.s.CreateMessage(ctx, m); err != nil {
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return m, nil
}
