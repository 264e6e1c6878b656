// Package notifier delivers verification codes and reset links to
// users out-of-band. Delivery is best-effort: callers treat a failed
// send as non-fatal and fall back to the server log.
package notifier

import (
	"context"

	"github.com/cinemahub/cinemahub-api/internal/logger"
)

// LogNotifier writes codes and links to the server log. It is the
// guaranteed fallback channel when no mail transport is configured.
type LogNotifier struct{}

// NewLogNotifier creates the log-only notifier.
func NewLogNotifier() *LogNotifier {
	return &LogNotifier{}
}

// SendOTP logs the verification code.
func (n *LogNotifier) SendOTP(ctx context.Context, email string, code int) error {
	logger.Log.Infow("development OTP (email not configured)", "email", email, "otp", code)
	return nil
}

// SendResetLink logs the password-reset link.
func (n *LogNotifier) SendResetLink(ctx context.Context, email, link string) error {
	logger.Log.Infow("password reset link (email not configured)", "email", email, "link", link)
	return nil
}
