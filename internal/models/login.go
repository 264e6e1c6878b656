package models

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Email address
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required,email"`

	// Password
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required"`
}

// AuthData is the payload of a successful login, OTP verification
// or Google sign-in: a session token plus the user summary.
// swagger:model AuthData
type AuthData struct {
	// Signed bearer token
	// example: JWT_TOKEN
	Token string `json:"token"`

	// Authenticated user
	User PublicUser `json:"user"`
}
