package models

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Email address, becomes the unique account key
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required,email"`

	// Display name, at least 3 characters
	// required: true
	// example: alice
	Name string `json:"name" validate:"required,min=3"`

	// Password, at least 6 characters
	// required: true
	// example: secret123
	Password string `json:"password" validate:"required,min=6"`
}
