package otp

import (
	"crypto/rand"
	"errors"
	"math/big"
	"time"
)

// TTL is how long an issued code stays valid.
const TTL = 10 * time.Minute

// Error variables
var (
	ErrCodeMismatch = errors.New("invalid OTP")
	ErrCodeExpired  = errors.New("OTP has expired")
)

// Generate returns a uniformly random 6-digit code in 100000..999999
// together with its absolute expiry instant.
func Generate() (int, time.Time, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(900000))
	if err != nil {
		return 0, time.Time{}, err
	}
	code := int(n.Int64()) + 100000
	return code, time.Now().Add(TTL), nil
}

// Check validates a supplied code against the pending one.
// Mismatch is reported before expiry, matching the order the
// verification endpoint documents.
func Check(pending *int, expiry *time.Time, supplied int, now time.Time) error {
	if pending == nil || *pending != supplied {
		return ErrCodeMismatch
	}
	if expiry == nil || expiry.Before(now) {
		return ErrCodeExpired
	}
	return nil
}
