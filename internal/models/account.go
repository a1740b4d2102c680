package models

import (
	"encoding/json"
	"time"
)

// Credentials are submitted to the login and register endpoints.
type Credentials struct {
	Username string `json:"username" validate:"required"`
	Email    string `json:"email,omitempty" validate:"omitempty,email"`
	Password string `json:"password" validate:"required"`
}

// AuthResponse carries the bearer token issued by the backend.
type AuthResponse struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// Profile describes the logged-in account.
type Profile struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	DisplayName  string    `json:"display_name"`
	PhotoURL     string    `json:"photo_url"`
	AuthProvider string    `json:"auth_provider"`
	CreatedAt    time.Time `json:"created_at"`
	TotalScans   int       `json:"total_scans"`
}

// UnmarshalJSON tolerates null strings and zone-less timestamps.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var raw struct {
		ID           int     `json:"id"`
		Username     *string `json:"username"`
		Email        *string `json:"email"`
		DisplayName  *string `json:"display_name"`
		PhotoURL     *string `json:"photo_url"`
		AuthProvider *string `json:"auth_provider"`
		CreatedAt    string  `json:"created_at"`
		TotalScans   int     `json:"total_scans"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	createdAt, err := ParseTimestamp(raw.CreatedAt)
	if err != nil {
		return err
	}

	*p = Profile{
		ID:           raw.ID,
		Username:     StringValue(raw.Username),
		Email:        StringValue(raw.Email),
		DisplayName:  StringValue(raw.DisplayName),
		PhotoURL:     StringValue(raw.PhotoURL),
		AuthProvider: StringValue(raw.AuthProvider),
		CreatedAt:    createdAt,
		TotalScans:   raw.TotalScans,
	}
	return nil
}

// ProfileUpdate is the body of a profile update request.
type ProfileUpdate struct {
	Username    string `json:"username,omitempty" validate:"omitempty,min=3"`
	DisplayName string `json:"display_name,omitempty"`
}

// ProfileUpdateResponse echoes the stored names after an update.
type ProfileUpdateResponse struct {
	Message     string `json:"message"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
}
