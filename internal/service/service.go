// Package service contains interface for service business-logic.
package service

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/storage"
)

//go:generate mockgen -destination=./mock/service.go -package=mock -source=service.go

var (
	// ErrNotAuthenticated is returned when there is no live session.
	ErrNotAuthenticated = errors.New("not authenticated")
	// ErrNotFound is returned when requested entity doesn't exist.
	ErrNotFound = storage.ErrNotFound
	// ErrValidation is returned when input is invalid.
	ErrValidation = errors.New("validation failed")
	// ErrConflict is returned when operation conflicts with the current state.
	ErrConflict = errors.New("conflict")
	// ErrForbidden is returned when identity is not allowed to perform operation.
	ErrForbidden = errors.New("forbidden")
)

// Redirect is a screen the client should open after sign in.
type Redirect string

const (
	// OnboardingRedirect ...
	OnboardingRedirect Redirect = "onboarding"
	// DashboardRedirect ...
	DashboardRedirect Redirect = "dashboard"
)

// Identity is the authenticated user of a request.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// AuthResult is a result of successful sign in.
type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	Identity  Identity
	Redirect  Redirect
}

// ProfilePatch contains profile fields to change, nil fields are kept.
type ProfilePatch struct {
	FullName   *string
	Birthdate  *time.Time
	Gender     *string
	Bio        *string
	Interests  []string
	Location   *string
	Occupation *string
	Education  *string
	LookingFor []string
	Height     *string
	Languages  []string
}

// OnboardingForm is the data collected by onboarding steps.
type OnboardingForm struct {
	FullName   string
	Birthdate  *time.Time
	Gender     string
	Bio        string
	Interests  []string
	Languages  []string
	Location   string
	Occupation string
	Education  string
	LookingFor []string
	Height     string
}

// SwipeResult ...
type SwipeResult struct {
	Swipe   *entities.Swipe
	Matched bool
	Match   *entities.Match
}

// ReportForm ...
type ReportForm struct {
	ReportedUserID string
	Reason         string
	ContentType    entities.ContentType
	Content        string
}

// Decision is a moderator's decision on a report.
type Decision string

const (
	// ApproveDecision ...
	ApproveDecision Decision = "approve"
	// RejectDecision ...
	RejectDecision Decision = "reject"
)

// SettingsPatch contains settings to change, nil fields are kept.
type SettingsPatch struct {
	EmailNotifications *bool
	PushNotifications  *bool
	Visibility         *entities.Visibility
	Location           *string
	MaxDistance        *entities.MaxDistance
}

// Service ...
type Service interface {
	ExchangeAuthCode(ctx context.Context, code string) (*AuthResult, error)
	GetSession(ctx context.Context, token string) (*Identity, error)
	SignOut(ctx context.Context, token string) error
	DeleteAccount(ctx context.Context, id Identity) error

	GetOrCreateProfile(ctx context.Context, id Identity) (*entities.Profile, error)
	UpdateProfile(ctx context.Context, id Identity, patch ProfilePatch) (*entities.Profile, error)
	UploadAvatar(ctx context.Context, id Identity, filename, contentType string, body io.Reader) (*entities.Profile, error)
	CompleteOnboarding(ctx context.Context, id Identity, form OnboardingForm) (*entities.Profile, error)

	RecordSwipe(ctx context.Context, id Identity, swiped string, action entities.SwipeAction) (*SwipeResult, error)
	CheckMatch(ctx context.Context, a, b string) (bool, error)
	ListLiked(ctx context.Context, id Identity) ([]*entities.LikedProfile, error)
	FetchCandidates(ctx context.Context, id Identity) ([]*entities.Candidate, error)

	ListMatches(ctx context.Context, id Identity) ([]*entities.MatchWithProfile, error)
	ListConversation(ctx context.Context, id Identity, matchID string) ([]*entities.MessageWithSender, error)
	SendMessage(ctx context.Context, id Identity, matchID, content string) (*entities.Message, error)

	CreateReport(ctx context.Context, id Identity, form ReportForm) (*entities.Report, error)

	GetSettings(ctx context.Context, id Identity) (*entities.Settings, error)
	UpdateSettings(ctx context.Context, id Identity, patch SettingsPatch) (*entities.Settings, error)

	GetStats(ctx context.Context) (*entities.Stats, error)
	ListReports(ctx context.Context, status *entities.ReportStatus) ([]*entities.ReportWithUsers, error)
	ResolveReport(ctx context.Context, reportID string, decision Decision) (*entities.Report, error)
	ListMatchesWithMessages(ctx context.Context) ([]*entities.MatchOverview, error)
	ListMessages(ctx context.Context, matchID string) ([]*entities.MessageWithSender, error)
	Unmatch(ctx context.Context, matchID string) (*entities.Match, error)
	ListUsers(ctx context.Context, search string) ([]*entities.User, error)
	VerifyUser(ctx context.Context, userID string) error
	BanUser(ctx context.Context, userID string) error
	DeleteUser(ctx context.Context, userID string) error
}
