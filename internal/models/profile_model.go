package models

// UserProfile is the canonical profile shape produced by translating a
// provider userinfo payload. It is consumed once by the auth flow and never
// persisted as-is.
type UserProfile struct {
	ID                string   `json:"id"`
	FirstName         string   `json:"first_name"`
	LastName          string   `json:"last_name"`
	Headline          string   `json:"headline"`
	ProfilePictureURL *string  `json:"profile_picture_url"`
	Summary           string   `json:"summary"`
	Skills            []string `json:"skills"`
}
