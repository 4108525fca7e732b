// Package entities contains main entities of service.
package entities

import (
	"time"
)

// DefaultLocation is assigned to every new profile and settings record.
const DefaultLocation = "El Paso, TX"

// Account mirrors the identity service's user record.
type Account struct {
	ID           string
	Email        string
	IsAdmin      bool
	Banned       bool
	CreatedAt    time.Time
	LastSignInAt *time.Time
}

// Profile ...
type Profile struct {
	ID         string
	FullName   string
	Birthdate  *time.Time
	Gender     string
	Bio        string
	Interests  []string
	Location   string
	AvatarURL  string
	Occupation string
	Education  string
	LookingFor []string
	Height     string
	Languages  []string
	Verified   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// AgeAt returns profile's age at the moment or nil if birthdate is unknown.
func (p Profile) AgeAt(now time.Time) *int {
	if p.Birthdate == nil {
		return nil
	}

	v := Age(*p.Birthdate, now)
	return &v
}

// IsOnboarded returns true when the profile has passed onboarding.
func (p Profile) IsOnboarded() bool {
	return p.FullName != ""
}

// NewDefaultProfile returns the minimal profile created on first access.
func NewDefaultProfile(id string, now time.Time) *Profile {
	return &Profile{
		ID:         id,
		Location:   DefaultLocation,
		Interests:  []string{},
		Languages:  []string{},
		LookingFor: []string{},
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

// Candidate is a profile returned by the discovery feed.
type Candidate struct {
	Profile
	MatchScore int
}

// SwipeAction ...
type SwipeAction string

const (
	// LikeAction ...
	LikeAction SwipeAction = "like"
	// DislikeAction ...
	DislikeAction SwipeAction = "dislike"
)

// Valid ...
func (a SwipeAction) Valid() bool {
	return a == LikeAction || a == DislikeAction
}

// Swipe is an immutable swipe decision.
type Swipe struct {
	ID        string
	SwiperID  string
	SwipedID  string
	Action    SwipeAction
	CreatedAt time.Time
}

// LikedProfile is a liked profile with the like's timestamp.
type LikedProfile struct {
	Profile
	LikedAt time.Time
}

// MatchStatus ...
// Transitions are pending -> matched -> unmatched, unmatched is terminal.
type MatchStatus string

const (
	// PendingMatchStatus ...
	PendingMatchStatus MatchStatus = "pending"
	// MatchedMatchStatus ...
	MatchedMatchStatus MatchStatus = "matched"
	// UnmatchedMatchStatus ...
	UnmatchedMatchStatus MatchStatus = "unmatched"
)

// Match ...
type Match struct {
	ID            string
	UserID        string
	MatchedUserID string
	Status        MatchStatus
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// Counterpart returns the other side of the match.
func (m Match) Counterpart(id string) string {
	if m.UserID == id {
		return m.MatchedUserID
	}
	return m.UserID
}

// HasParticipant ...
func (m Match) HasParticipant(id string) bool {
	return m.UserID == id || m.MatchedUserID == id
}

// ChatEnabled returns true if participants may exchange messages.
func (m Match) ChatEnabled() bool {
	return m.Status == MatchedMatchStatus
}

// UserBrief is a short profile representation used in lists.
type UserBrief struct {
	ID        string
	FullName  string
	AvatarURL string
	Bio       string
}

// MatchWithProfile is a match with the counterpart's profile.
type MatchWithProfile struct {
	Match
	Profile UserBrief
}

// MatchOverview is a match as seen by moderators.
type MatchOverview struct {
	Match
	User          UserBrief
	MatchedUser   UserBrief
	MessagesCount int
}

// Message ...
type Message struct {
	ID        string
	MatchID   string
	SenderID  string
	Content   string
	CreatedAt time.Time
}

// MessageWithSender ...
type MessageWithSender struct {
	Message
	Sender UserBrief
}

// ContentType is a type of reported content.
type ContentType string

const (
	// ProfileContentType ...
	ProfileContentType ContentType = "profile"
	// MessageContentType ...
	MessageContentType ContentType = "message"
)

// Valid ...
func (t ContentType) Valid() bool {
	return t == ProfileContentType || t == MessageContentType
}

// ReportStatus ...
type ReportStatus string

const (
	// PendingReportStatus ...
	PendingReportStatus ReportStatus = "pending"
	// ApprovedReportStatus ...
	ApprovedReportStatus ReportStatus = "approved"
	// RejectedReportStatus ...
	RejectedReportStatus ReportStatus = "rejected"
)

// Valid ...
func (s ReportStatus) Valid() bool {
	switch s {
	case PendingReportStatus, ApprovedReportStatus, RejectedReportStatus:
		return true
	default:
		return false
	}
}

// Report is a piece of reported content.
type Report struct {
	ID             string
	ReporterID     string
	ReportedUserID string
	Reason         string
	ContentType    ContentType
	Content        string
	Status         ReportStatus
	CreatedAt      time.Time
}

// ReportWithUsers ...
type ReportWithUsers struct {
	Report
	Reporter     UserBrief
	ReportedUser UserBrief
}

// User is a profile combined with its account for moderators.
type User struct {
	ID           string
	FullName     string
	Email        string
	CreatedAt    time.Time
	LastSignInAt *time.Time
	Banned       bool
	Verified     bool
}

// Stats is the back office dashboard counters.
type Stats struct {
	TotalUsers      int
	TotalMatches    int
	ActiveChats     int
	ReportedContent int
}

// Session ...
type Session struct {
	TokenHash string
	UserID    string
	CreatedAt time.Time
	ExpiresAt time.Time
}
