package models

import (
	"time"
)

// User represents a user record in the credential store.
// OTP and reset fields are pointers: present only while the
// corresponding flow is outstanding.
type User struct {
	ID           int        `json:"id" db:"id"`
	Email        string     `json:"email" db:"email"`
	Username     string     `json:"username" db:"username"`
	PasswordHash string     `json:"-" db:"password_hash"`
	IsVerified   bool       `json:"is_verified" db:"is_verified"`
	OTP          *int       `json:"-" db:"otp"`
	OTPExpiry    *time.Time `json:"-" db:"otp_expiry"`
	ResetToken   *string    `json:"-" db:"reset_token"`
	ResetExpiry  *time.Time `json:"-" db:"reset_token_expiry"`
	AuthProvider string     `json:"auth_provider,omitempty" db:"auth_provider"`
	GoogleID     string     `json:"-" db:"google_id"`
	Picture      string     `json:"picture,omitempty" db:"picture"`
	CreatedAt    time.Time  `json:"created_at" db:"created_at"`
}

// PublicUser is the user summary returned by auth endpoints.
// Never carries the password hash or any pending code.
type PublicUser struct {
	ID           int    `json:"id"`
	Email        string `json:"email"`
	Username     string `json:"username"`
	Picture      string `json:"picture,omitempty"`
	AuthProvider string `json:"authProvider,omitempty"`
}

// Public returns the externally visible summary of the user.
func (u *User) Public() PublicUser {
	return PublicUser{
		ID:           u.ID,
		Email:        u.Email,
		Username:     u.Username,
		Picture:      u.Picture,
		AuthProvider: u.AuthProvider,
	}
}
