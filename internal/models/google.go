package models

// GoogleAuthRequest represents the JSON body posted by the Google
// Identity Services frontend after a successful sign-in.
// swagger:model GoogleAuthRequest
type GoogleAuthRequest struct {
	// Email address attested by Google
	// required: true
	// example: alice@gmail.com
	Email string `json:"email"`

	// Display name from the Google profile
	// required: true
	// example: Alice Smith
	Name string `json:"name"`

	// Google subject identifier
	// required: true
	// example: 103547991597142817347
	GoogleID string `json:"googleId"`

	// Profile picture URL
	Picture string `json:"picture,omitempty"`
}
