package domain

import "time"

const AuthProviderLocal = "local"

// User models an authenticated actor in the system.
type User struct {
	ID              string     `json:"id"`
	Email           string     `json:"email"`
	Name            string     `json:"name"`
	PasswordHash    string     `json:"-"`
	Role            UserRole   `json:"role"`
	Status          UserStatus `json:"status"`
	AuthProvider    string     `json:"auth_provider"`
	ProfileImageURL string     `json:"profile_image_url,omitempty"`
	LastLogin       *time.Time `json:"last_login,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
