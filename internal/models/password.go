package models

// ForgotPasswordRequest represents the JSON body for requesting a reset link
// swagger:model ForgotPasswordRequest
type ForgotPasswordRequest struct {
	// Email address of the account
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required,email"`
}

// ResetPasswordRequest represents the JSON body for resetting a password
// swagger:model ResetPasswordRequest
type ResetPasswordRequest struct {
	// Signed reset token from the emailed link
	// required: true
	Token string `json:"token" validate:"required"`

	// New password, at least 6 characters
	// required: true
	// example: newsecret1
	Password string `json:"password" validate:"required,min=6"`
}
