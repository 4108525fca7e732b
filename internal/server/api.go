package server

import (
	"time"

	"github.com/sparkdate/spark/internal/entities"
	"github.com/sparkdate/spark/internal/feed"
	"github.com/sparkdate/spark/internal/service"
)

// Error ...
// swagger:model
type Error struct {
	Error string `json:"error"`
}

// AuthCallbackRequest ...
// swagger:model
type AuthCallbackRequest struct {
	// One-time code issued by the sign in flow.
	Code string `json:"code"`
}

// AuthResponse ...
// swagger:model
type AuthResponse struct {
	Token     string `json:"token"`
	ExpiresAt uint64 `json:"expiresAt"`
	UserID    string `json:"userId"`
	IsAdmin   bool   `json:"isAdmin"`
	// Screen to open: onboarding or dashboard.
	Redirect string `json:"redirect"`
}

// SessionResponse ...
// swagger:model
type SessionResponse struct {
	UserID  string `json:"userId"`
	IsAdmin bool   `json:"isAdmin"`
}

// Profile ...
// swagger:model
type Profile struct {
	ID string `json:"id"`
	// Full name, empty until onboarding is completed.
	FullName string `json:"fullName"`
	// Birthdate in YYYY-MM-DD format.
	Birthdate  *string  `json:"birthdate"`
	Age        *int     `json:"age"`
	Gender     string   `json:"gender"`
	Bio        string   `json:"bio"`
	Interests  []string `json:"interests"`
	Location   string   `json:"location"`
	AvatarURL  string   `json:"avatarUrl"`
	Occupation string   `json:"occupation"`
	Education  string   `json:"education"`
	LookingFor []string `json:"lookingFor"`
	Height     string   `json:"height"`
	Languages  []string `json:"languages"`
	Verified   bool     `json:"verified"`
	CreatedAt  uint64   `json:"createdAt"`
	UpdatedAt  uint64   `json:"updatedAt"`
}

// Candidate ...
// swagger:model
type Candidate struct {
	Profile
	// Shared interests count doubled plus shared languages count.
	MatchScore int `json:"matchScore"`
}

// LikedProfile ...
// swagger:model
type LikedProfile struct {
	Profile
	LikedAt uint64 `json:"likedAt"`
}

// UpdateProfileRequest contains fields to change, omitted fields are kept.
// swagger:model
type UpdateProfileRequest struct {
	FullName   *string  `json:"fullName"`
	Birthdate  *string  `json:"birthdate"`
	Gender     *string  `json:"gender"`
	Bio        *string  `json:"bio"`
	Interests  []string `json:"interests"`
	Location   *string  `json:"location"`
	Occupation *string  `json:"occupation"`
	Education  *string  `json:"education"`
	LookingFor []string `json:"lookingFor"`
	Height     *string  `json:"height"`
	Languages  []string `json:"languages"`
}

// OnboardingResponse is a completed profile with the screen to open next.
// swagger:model
type OnboardingResponse struct {
	Profile
	// always dashboard
	Redirect string `json:"redirect"`
}

// OnboardingRequest ...
// swagger:model
type OnboardingRequest struct {
	FullName   string   `json:"fullName"`
	Birthdate  string   `json:"birthdate"`
	Gender     string   `json:"gender"`
	Bio        string   `json:"bio"`
	Interests  []string `json:"interests"`
	Languages  []string `json:"languages"`
	Location   string   `json:"location"`
	Occupation string   `json:"occupation"`
	Education  string   `json:"education"`
	LookingFor []string `json:"lookingFor"`
	Height     string   `json:"height"`
}

// SwipeRequest ...
// swagger:model
type SwipeRequest struct {
	SwipedID string `json:"swipedId"`
	// like or dislike
	Action string `json:"action"`
}

// Swipe ...
type Swipe struct {
	ID        string `json:"id"`
	SwiperID  string `json:"swiperId"`
	SwipedID  string `json:"swipedId"`
	Action    string `json:"action"`
	CreatedAt uint64 `json:"createdAt"`
}

// Match ...
type Match struct {
	ID            string `json:"id"`
	UserID        string `json:"userId"`
	MatchedUserID string `json:"matchedUserId"`
	// pending, matched or unmatched
	Status    string `json:"status"`
	CreatedAt uint64 `json:"createdAt"`
	UpdatedAt uint64 `json:"updatedAt"`
}

// SwipeResponse ...
// swagger:model
type SwipeResponse struct {
	Swipe   Swipe  `json:"swipe"`
	Matched bool   `json:"matched"`
	Match   *Match `json:"match,omitempty"`
}

// CheckMatchResponse ...
// swagger:model
type CheckMatchResponse struct {
	Matched bool `json:"matched"`
}

// DiscoverResponse is the state of discovery session.
// swagger:model
type DiscoverResponse struct {
	// Current card, absent when the feed is exhausted.
	Current   *Candidate `json:"current"`
	Remaining int        `json:"remaining"`
	Total     int        `json:"total"`
	Exhausted bool       `json:"exhausted"`
}

// DiscoverSwipeRequest ...
// swagger:model
type DiscoverSwipeRequest struct {
	// ID of the current card.
	CandidateID string `json:"candidateId"`
	Action      string `json:"action"`
}

// DiscoverSwipeResponse ...
// swagger:model
type DiscoverSwipeResponse struct {
	SwipeResponse
	Feed DiscoverResponse `json:"feed"`
}

// UserBrief ...
type UserBrief struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	AvatarURL string `json:"avatarUrl"`
	Bio       string `json:"bio,omitempty"`
}

// MatchWithProfile ...
// swagger:model
type MatchWithProfile struct {
	Match
	Profile UserBrief `json:"profile"`
}

// MatchOverview ...
// swagger:model
type MatchOverview struct {
	Match
	User          UserBrief `json:"user"`
	MatchedUser   UserBrief `json:"matchedUser"`
	MessagesCount int       `json:"messagesCount"`
}

// Message ...
// swagger:model
type Message struct {
	ID        string `json:"id"`
	MatchID   string `json:"matchId"`
	SenderID  string `json:"senderId"`
	Content   string `json:"content"`
	CreatedAt uint64 `json:"createdAt"`
}

// MessageWithSender ...
// swagger:model
type MessageWithSender struct {
	Message
	Sender UserBrief `json:"sender"`
}

// SendMessageRequest ...
// swagger:model
type SendMessageRequest struct {
	Content string `json:"content"`
}

// ReportRequest ...
// swagger:model
type ReportRequest struct {
	ReportedUserID string `json:"reportedUserId"`
	Reason         string `json:"reason"`
	// profile or message
	ContentType string `json:"contentType"`
	Content     string `json:"content"`
}

// Report ...
// swagger:model
type Report struct {
	ID             string `json:"id"`
	ReporterID     string `json:"reporterId"`
	ReportedUserID string `json:"reportedUserId"`
	Reason         string `json:"reason"`
	ContentType    string `json:"contentType"`
	Content        string `json:"content"`
	// pending, approved or rejected
	Status    string `json:"status"`
	CreatedAt uint64 `json:"createdAt"`
}

// ReportWithUsers ...
// swagger:model
type ReportWithUsers struct {
	Report
	Reporter     UserBrief `json:"reporter"`
	ReportedUser UserBrief `json:"reportedUser"`
}

// User ...
// swagger:model
type User struct {
	ID           string  `json:"id"`
	FullName     string  `json:"fullName"`
	Email        string  `json:"email"`
	CreatedAt    uint64  `json:"createdAt"`
	LastSignInAt *uint64 `json:"lastSignInAt"`
	Banned       bool    `json:"banned"`
	Verified     bool    `json:"verified"`
}

// Stats ...
// swagger:model
type Stats struct {
	TotalUsers      int `json:"totalUsers"`
	TotalMatches    int `json:"totalMatches"`
	ActiveChats     int `json:"activeChats"`
	ReportedContent int `json:"reportedContent"`
}

// Settings ...
// swagger:model
type Settings struct {
	EmailNotifications bool `json:"emailNotifications"`
	PushNotifications  bool `json:"pushNotifications"`
	// everyone, matches_only or hidden
	Visibility string `json:"visibility"`
	Location   string `json:"location"`
	// 5, 10, 25, 50 or 100 miles
	MaxDistance int `json:"maxDistance"`
}

// UpdateSettingsRequest contains settings to change, omitted fields are kept.
// swagger:model
type UpdateSettingsRequest struct {
	EmailNotifications *bool   `json:"emailNotifications"`
	PushNotifications  *bool   `json:"pushNotifications"`
	Visibility         *string `json:"visibility"`
	Location           *string `json:"location"`
	MaxDistance        *int    `json:"maxDistance"`
}

func toUnix(t time.Time) uint64 {
	return uint64(t.Unix())
}

func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func toAPIProfile(p *entities.Profile, now time.Time) Profile {
	out := Profile{
		ID:         p.ID,
		FullName:   p.FullName,
		Age:        p.AgeAt(now),
		Gender:     p.Gender,
		Bio:        p.Bio,
		Interests:  nonNil(p.Interests),
		Location:   p.Location,
		AvatarURL:  p.AvatarURL,
		Occupation: p.Occupation,
		Education:  p.Education,
		LookingFor: nonNil(p.LookingFor),
		Height:     p.Height,
		Languages:  nonNil(p.Languages),
		Verified:   p.Verified,
		CreatedAt:  toUnix(p.CreatedAt),
		UpdatedAt:  toUnix(p.UpdatedAt),
	}

	if p.Birthdate != nil {
		v := p.Birthdate.Format(entities.BirthdateLayout)
		out.Birthdate = &v
	}

	return out
}

func toAPICandidate(c *entities.Candidate, now time.Time) *Candidate {
	if c == nil {
		return nil
	}

	return &Candidate{
		Profile:    toAPIProfile(&c.Profile, now),
		MatchScore: c.MatchScore,
	}
}

func toAPIDiscover(v feed.View, now time.Time) DiscoverResponse {
	return DiscoverResponse{
		Current:   toAPICandidate(v.Current, now),
		Remaining: v.Remaining,
		Total:     v.Total,
		Exhausted: v.Exhausted,
	}
}

func toAPIMatch(m *entities.Match) Match {
	return Match{
		ID:            m.ID,
		UserID:        m.UserID,
		MatchedUserID: m.MatchedUserID,
		Status:        string(m.Status),
		CreatedAt:     toUnix(m.CreatedAt),
		UpdatedAt:     toUnix(m.UpdatedAt),
	}
}

func toAPISwipeResponse(r *service.SwipeResult) SwipeResponse {
	out := SwipeResponse{
		Swipe: Swipe{
			ID:        r.Swipe.ID,
			SwiperID:  r.Swipe.SwiperID,
			SwipedID:  r.Swipe.SwipedID,
			Action:    string(r.Swipe.Action),
			CreatedAt: toUnix(r.Swipe.CreatedAt),
		},
		Matched: r.Matched,
	}

	if r.Match != nil {
		m := toAPIMatch(r.Match)
		out.Match = &m
	}

	return out
}

func toAPIBrief(b entities.UserBrief) UserBrief {
	return UserBrief{
		ID:        b.ID,
		FullName:  b.FullName,
		AvatarURL: b.AvatarURL,
		Bio:       b.Bio,
	}
}

func toAPIMessage(m *entities.Message) Message {
	return Message{
		ID:        m.ID,
		MatchID:   m.MatchID,
		SenderID:  m.SenderID,
		Content:   m.Content,
		CreatedAt: toUnix(m.CreatedAt),
	}
}

func toAPIMessages(messages []*entities.MessageWithSender) []MessageWithSender {
	out := make([]MessageWithSender, len(messages))
	for i, v := range messages {
		out[i] = MessageWithSender{
			Message: toAPIMessage(&v.Message),
			Sender:  toAPIBrief(v.Sender),
		}
	}
	return out
}

func toAPIReport(r *entities.Report) Report {
	return Report{
		ID:             r.ID,
		ReporterID:     r.ReporterID,
		ReportedUserID: r.ReportedUserID,
		Reason:         r.Reason,
		ContentType:    string(r.ContentType),
		Content:        r.Content,
		Status:         string(r.Status),
		CreatedAt:      toUnix(r.CreatedAt),
	}
}

func toAPISettings(s *entities.Settings) Settings {
	return Settings{
		EmailNotifications: s.EmailNotifications,
		PushNotifications:  s.PushNotifications,
		Visibility:         string(s.Visibility),
		Location:           s.Location,
		MaxDistance:        int(s.MaxDistance),
	}
}

func toReportForm(r ReportRequest) service.ReportForm {
	return service.ReportForm{
		ReportedUserID: r.ReportedUserID,
		Reason:         r.Reason,
		ContentType:    entities.ContentType(r.ContentType),
		Content:        r.Content,
	}
}
