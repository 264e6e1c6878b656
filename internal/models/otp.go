package models

// VerifyOTPRequest represents the JSON body for OTP verification
// swagger:model VerifyOTPRequest
type VerifyOTPRequest struct {
	// Email address the code was issued for
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required,email"`

	// 6-digit verification code
	// required: true
	// example: 482913
	OTP string `json:"otp" validate:"required,len=6,numeric"`
}

// ResendOTPRequest represents the JSON body for requesting a new OTP
// swagger:model ResendOTPRequest
type ResendOTPRequest struct {
	// Email address to re-issue the code for
	// required: true
	// example: alice@example.com
	Email string `json:"email" validate:"required,email"`
}
