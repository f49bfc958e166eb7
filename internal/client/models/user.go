// Package models defines the client-side records mirrored from the RELEVÉ API
// JSON payloads. They are plain data carriers; all behavior lives in the
// session and api packages.
package models

// Influencer application states as reported by GET /user/influencer.
const (
	InfluencerPending  = "pending"
	InfluencerApproved = "approved"
)

// User is the identity record owned by the session manager while a session
// is active.
type User struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Email            string `json:"email"`
	AvatarURL        string `json:"avatar_url,omitempty"`
	Role             string `json:"role,omitempty"`
	InfluencerStatus string `json:"influencer_status,omitempty"`
}

// UserUpdate is a partial update applied to a User with a shallow merge:
// nil fields are left untouched.
type UserUpdate struct {
	Name             *string
	Email            *string
	AvatarURL        *string
	Role             *string
	InfluencerStatus *string
}

// Merge returns a copy of u with the non-nil fields of upd applied.
func (upd UserUpdate) Merge(u User) User {
	if upd.Name != nil {
		u.Name = *upd.Name
	}
	if upd.Email != nil {
		u.Email = *upd.Email
	}
	if upd.AvatarURL != nil {
		u.AvatarURL = *upd.AvatarURL
	}
	if upd.Role != nil {
		u.Role = *upd.Role
	}
	if upd.InfluencerStatus != nil {
		u.InfluencerStatus = *upd.InfluencerStatus
	}
	return u
}

// TokenPair holds the opaque bearer credentials issued by a successful login
// or register call. There is no expiry field and no refresh flow; a token is
// used until the server rejects it.
type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
