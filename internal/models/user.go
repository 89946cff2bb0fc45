package models

import "time"

// UserProfile represents a registered workshop participant. Profiles are
// created once at intake and never updated.
type UserProfile struct {
	ID        int64     `json:"id"`
	Nombre    string    `json:"nombre"`
	Edad      int       `json:"edad"`
	Email     string    `json:"email"`
	Telefono  string    `json:"telefono"`
	CreatedAt time.Time `json:"created_at"`
}
