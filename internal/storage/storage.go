// Package storage contains a storage interface.
package storage

import (
	"context"
	"fmt"
	"time"

	"github.com/sparkdate/spark/internal/entities"
)

//go:generate mockgen -destination=./mock/storage.go -package=mock -source=storage.go

// ErrNotFound ...
var ErrNotFound = fmt.Errorf("not found")

// ErrAlreadyExists ...
var ErrAlreadyExists = fmt.Errorf("already exists")

// Storage provides methods for interacting with database.
type Storage interface {
	InTx(ctx context.Context, f func(s Storage) error) error
	Ping(ctx context.Context) error

	CreateAccount(ctx context.Context, a *entities.Account) error
	GetAccount(ctx context.Context, id string) (*entities.Account, error)
	SetLastSignIn(ctx context.Context, id string, timestamp time.Time) error
	SetBanned(ctx context.Context, id string, banned bool) error
	DeleteAccount(ctx context.Context, id string) error

	CreateAuthCode(ctx context.Context, code, userID string, expiresAt time.Time) error
	// ConsumeAuthCode deletes the code and returns its owner if the code is not expired.
	ConsumeAuthCode(ctx context.Context, code string, now time.Time) (string, error)

	CreateSession(ctx context.Context, s *entities.Session) error
	GetSession(ctx context.Context, tokenHash string) (*entities.Session, error)
	DeleteSession(ctx context.Context, tokenHash string) error
	DeleteUserSessions(ctx context.Context, userID string) error
	// DeleteExpired removes expired sessions and auth codes.
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)

	GetProfile(ctx context.Context, id string) (*entities.Profile, error)
	// CreateProfile inserts the profile if there is no profile with the same id.
	CreateProfile(ctx context.Context, p *entities.Profile) error
	// SetProfile inserts or replaces the profile.
	SetProfile(ctx context.Context, p *entities.Profile) error
	UpdateProfile(ctx context.Context, p *entities.Profile) error
	SetAvatar(ctx context.Context, id, url string, timestamp time.Time) error
	SetVerified(ctx context.Context, id string, verified bool) error
	ListUsers(ctx context.Context, search string) ([]*entities.User, error)

	// LockPair serializes swipe processing of two users within a transaction.
	LockPair(ctx context.Context, a, b string) error
	CreateSwipe(ctx context.Context, s *entities.Swipe) error
	// CheckMatch returns true if both users liked each other.
	CheckMatch(ctx context.Context, a, b string) (bool, error)
	ListLiked(ctx context.Context, swiper string) ([]*entities.LikedProfile, error)
	GetPotentialMatches(ctx context.Context, userID string, limit uint16) ([]*entities.Candidate, error)

	CreateMatch(ctx context.Context, m *entities.Match) error
	GetMatch(ctx context.Context, id string) (*entities.Match, error)
	GetMatchBetween(ctx context.Context, a, b string) (*entities.Match, error)
	SetMatchStatus(ctx context.Context, id string, status entities.MatchStatus, timestamp time.Time) error
	ListMatches(ctx context.Context, userID string, status entities.MatchStatus) ([]*entities.MatchWithProfile, error)
	ListMatchOverviews(ctx context.Context) ([]*entities.MatchOverview, error)

	CreateMessage(ctx context.Context, m *entities.Message) error
	ListMessages(ctx context.Context, matchID string) ([]*entities.MessageWithSender, error)

	CreateReport(ctx context.Context, r *entities.Report) error
	GetReport(ctx context.Context, id string) (*entities.Report, error)
	// ListReports returns reports newest first, nil status means all.
	ListReports(ctx context.Context, status *entities.ReportStatus) ([]*entities.ReportWithUsers, error)
	SetReportStatus(ctx context.Context, id string, status entities.ReportStatus) error

	GetSettings(ctx context.Context, userID string) (*entities.Settings, error)
	SetSettings(ctx context.Context, s *entities.Settings) error

	GetStats(ctx context.Context) (*entities.Stats, error)
}
