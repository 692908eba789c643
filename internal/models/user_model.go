package models

import "time"

// User is the persisted identity resolved from the LinkedIn OIDC flow.
// ID is the provider subject ("sub") and never changes once assigned.
type User struct {
	ID                string    `gorm:"primaryKey" json:"id"`
	FirstName         string    `json:"first_name"`
	LastName          string    `json:"last_name"`
	ProfilePictureURL *string   `json:"profile_picture_url"`
	AccessToken       string    `json:"-"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
	Posts             []Post    `gorm:"foreignKey:UserID" json:"posts,omitempty"`
}
