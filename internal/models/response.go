package models

// Response is the JSON envelope returned by every endpoint.
// swagger:model Response
type Response struct {
	// Whether the operation succeeded
	// example: true
	Success bool `json:"success"`

	// Human-readable status message
	// example: Login successful
	Message string `json:"message,omitempty"`

	// Operation payload
	Data any `json:"data,omitempty"`

	// Field-level validation errors
	Errors []FieldError `json:"errors,omitempty"`
}

// FieldError describes a single failed validation constraint.
// swagger:model FieldError
type FieldError struct {
	// Offending field name
	// example: email
	Field string `json:"field"`

	// Constraint description
	// example: Please enter a valid email
	Message string `json:"message"`
}
