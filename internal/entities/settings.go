package entities

import "time"

// Visibility controls who can see the profile in discovery.
type Visibility string

const (
	// EveryoneVisibility ...
	EveryoneVisibility Visibility = "everyone"
	// MatchesOnlyVisibility ...
	MatchesOnlyVisibility Visibility = "matches_only"
	// HiddenVisibility excludes the profile from every feed.
	HiddenVisibility Visibility = "hidden"
)

// Valid ...
func (v Visibility) Valid() bool {
	switch v {
	case EveryoneVisibility, MatchesOnlyVisibility, HiddenVisibility:
		return true
	default:
		return false
	}
}

// MaxDistance is the maximal distance to candidates in miles.
type MaxDistance int

// nolint:gochecknoglobals
var maxDistances = []MaxDistance{5, 10, 25, 50, 100}

// Valid ...
func (d MaxDistance) Valid() bool {
	for _, v := range maxDistances {
		if v == d {
			return true
		}
	}
	return false
}

// Settings is the account preferences.
type Settings struct {
	UserID             string
	EmailNotifications bool
	PushNotifications  bool
	Visibility         Visibility
	Location           string
	MaxDistance        MaxDistance
	UpdatedAt          time.Time
}

// DefaultSettings returns settings for user who never changed them.
func DefaultSettings(userID string) *Settings {
	return &Settings{
		UserID:             userID,
		EmailNotifications: true,
		PushNotifications:  false,
		Visibility:         EveryoneVisibility,
		Location:           DefaultLocation,
		MaxDistance:        25,
	}
}
