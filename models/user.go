package models

import "time"

// User is a registered account. PasswordHash is a bcrypt digest and never
// leaves the server.
type User struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	DisplayName  string    `json:"display_name"`
	CreatedAt    time.Time `json:"created_at"`
}

func (User) TableName() string {
	return "users"
}

// Credentials is the body of the signup and login requests.
type Credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	DisplayName string `json:"display_name,omitempty"`
}

// Identity is the authenticated caller resolved by the auth middleware.
// It is passed explicitly as the owner of every protected operation.
type Identity struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// SessionInfo is returned by GET /api/auth/session.
type SessionInfo struct {
	Authenticated bool   `json:"authenticated"`
	ID            string `json:"id,omitempty"`
	Email         string `json:"email,omitempty"`
}
