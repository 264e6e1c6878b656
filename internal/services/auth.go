package services

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/cinemahub/cinemahub-api/internal/jwt"
	"github.com/cinemahub/cinemahub-api/internal/logger"
	"github.com/cinemahub/cinemahub-api/internal/models"
	"github.com/cinemahub/cinemahub-api/internal/otp"
	"github.com/cinemahub/cinemahub-api/internal/password"
)

// Error variables
var (
	ErrDuplicateEmail     = errors.New("user already exists")
	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotVerified        = errors.New("please verify your email first")
	ErrCodeMismatch       = otp.ErrCodeMismatch
	ErrCodeExpired        = otp.ErrCodeExpired
	ErrInvalidResetToken  = errors.New("invalid reset token")
	ErrResetTokenExpired  = errors.New("reset token has expired")
)

// UserRepository defines the credential-store operations the auth
// service needs. Lookups return nil (no error) when absent.
type UserRepository interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id int) (*models.User, error)
	Save(ctx context.Context, user *models.User) error
}

// TokenIssuer defines the signed-token operations the auth service needs.
type TokenIssuer interface {
	GenerateSession(ctx context.Context, userID int, email, username string) (string, error)
	GenerateReset(ctx context.Context, userID int) (string, error)
	GetClaims(ctx context.Context, token string) (*jwt.Claims, error)
}

// Notifier delivers codes and links out-of-band. Failures are
// non-fatal to the calling flow.
type Notifier interface {
	SendOTP(ctx context.Context, email string, code int) error
	SendResetLink(ctx context.Context, email, link string) error
}

// AuthService orchestrates registration, OTP verification, login and
// the password-reset flows.
type AuthService struct {
	users    UserRepository
	tokens   TokenIssuer
	notifier Notifier
	baseURL  string

	// Serializes find-then-mutate sequences on OTP/reset fields so
	// at most one pending code exists per user.
	mu sync.Mutex
}

// NewAuthService creates a new AuthService instance. baseURL is the
// public origin used to build password-reset links.
func NewAuthService(users UserRepository, tokens TokenIssuer, notifier Notifier, baseURL string) *AuthService {
	return &AuthService{
		users:    users,
		tokens:   tokens,
		notifier: notifier,
		baseURL:  baseURL,
	}
}

// Register creates an unverified account and issues its first OTP.
// Delivery failure does not fail registration.
func (svc *AuthService) Register(ctx context.Context, email, name, plaintext string) (*models.PublicUser, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	existing, err := svc.users.FindByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check user exists", "err", err)
		return nil, err
	}
	if existing != nil {
		return nil, ErrDuplicateEmail
	}

	hash, err := password.Hash(plaintext)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	code, expiry, err := otp.Generate()
	if err != nil {
		logger.Log.Errorw("failed to generate OTP", "err", err)
		return nil, err
	}

	user := &models.User{
		Email:        email,
		Username:     name,
		PasswordHash: hash,
		IsVerified:   false,
		OTP:          &code,
		OTPExpiry:    &expiry,
	}
	if err := svc.users.Save(ctx, user); err != nil {
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.deliverOTP(ctx, email, code)

	public := user.Public()
	return &public, nil
}

// VerifyOTP checks the pending code, marks the account verified and
// issues a 7-day session token.
func (svc *AuthService) VerifyOTP(ctx context.Context, email string, code int) (*models.AuthData, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	user, err := svc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrUserNotFound
	}

	if err := otp.Check(user.OTP, user.OTPExpiry, code, time.Now()); err != nil {
		return nil, err
	}

	user.IsVerified = true
	user.OTP = nil
	user.OTPExpiry = nil
	if err := svc.users.Save(ctx, user); err != nil {
		return nil, err
	}

	token, err := svc.tokens.GenerateSession(ctx, user.ID, user.Email, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, err
	}

	return &models.AuthData{Token: token, User: user.Public()}, nil
}

// ResendOTP issues a fresh code for the email, overwriting any
// pending one. Verification state is deliberately not checked.
func (svc *AuthService) ResendOTP(ctx context.Context, email string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	user, err := svc.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	code, expiry, err := otp.Generate()
	if err != nil {
		return err
	}

	user.OTP = &code
	user.OTPExpiry = &expiry
	if err := svc.users.Save(ctx, user); err != nil {
		return err
	}

	svc.deliverOTP(ctx, email, code)
	return nil
}

// Login authenticates a verified user and returns a session token.
// Unknown email and wrong password are indistinguishable to the caller.
func (svc *AuthService) Login(ctx context.Context, email, plaintext string) (*models.AuthData, error) {
	user, err := svc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if !password.Verify(plaintext, user.PasswordHash) {
		return nil, ErrInvalidCredentials
	}

	if !user.IsVerified {
		return nil, ErrNotVerified
	}

	token, err := svc.tokens.GenerateSession(ctx, user.ID, user.Email, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, err
	}

	return &models.AuthData{Token: token, User: user.Public()}, nil
}

// ForgotPassword issues a 1-hour reset token, stores it on the record
// and mails the reset link. A new token supersedes any prior one.
func (svc *AuthService) ForgotPassword(ctx context.Context, email string) error {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	user, err := svc.users.FindByEmail(ctx, email)
	if err != nil {
		return err
	}
	if user == nil {
		return ErrUserNotFound
	}

	token, err := svc.tokens.GenerateReset(ctx, user.ID)
	if err != nil {
		logger.Log.Errorw("failed to generate reset token", "err", err)
		return err
	}

	expiry := time.Now().Add(jwt.ResetTTL)
	user.ResetToken = &token
	user.ResetExpiry = &expiry
	if err := svc.users.Save(ctx, user); err != nil {
		return err
	}

	link := fmt.Sprintf("%s/reset-password?token=%s", svc.baseURL, url.QueryEscape(token))
	if err := svc.notifier.SendResetLink(ctx, email, link); err != nil {
		logger.Log.Warnw("reset link delivery failed, falling back to log",
			"email", email, "link", link, "err", err)
	}
	return nil
}

// ResetPassword verifies the signed reset token against the stored
// one, replaces the password hash and clears the token.
func (svc *AuthService) ResetPassword(ctx context.Context, token, newPassword string) error {
	claims, err := svc.tokens.GetClaims(ctx, token)
	if err != nil {
		return ErrInvalidResetToken
	}

	svc.mu.Lock()
	defer svc.mu.Unlock()

	user, err := svc.users.FindByID(ctx, claims.UserID)
	if err != nil {
		return err
	}
	// The stored token must equal the supplied one: a superseded
	// token still carries a valid signature but must not work.
	if user == nil || user.ResetToken == nil || *user.ResetToken != token {
		return ErrInvalidResetToken
	}
	if user.ResetExpiry == nil || user.ResetExpiry.Before(time.Now()) {
		return ErrResetTokenExpired
	}

	hash, err := password.Hash(newPassword)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return err
	}

	user.PasswordHash = hash
	user.ResetToken = nil
	user.ResetExpiry = nil
	return svc.users.Save(ctx, user)
}

// GoogleSignIn creates or updates an account from a Google profile and
// returns a session token. Google accounts are pre-verified, so the
// password and OTP flows are bypassed entirely.
func (svc *AuthService) GoogleSignIn(ctx context.Context, email, name, googleID, picture string) (*models.AuthData, error) {
	svc.mu.Lock()
	defer svc.mu.Unlock()

	user, err := svc.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if user == nil {
		user = &models.User{
			Email:        email,
			Username:     name,
			IsVerified:   true,
			AuthProvider: "google",
			GoogleID:     googleID,
			Picture:      picture,
		}
		if err := svc.users.Save(ctx, user); err != nil {
			return nil, err
		}
		logger.Log.Infow("new Google user created", "email", email)
	} else {
		user.GoogleID = googleID
		user.Picture = picture
		user.IsVerified = true
		user.AuthProvider = "google"
		if err := svc.users.Save(ctx, user); err != nil {
			return nil, err
		}
		logger.Log.Infow("existing user linked with Google", "email", email)
	}

	token, err := svc.tokens.GenerateSession(ctx, user.ID, user.Email, user.Username)
	if err != nil {
		logger.Log.Errorw("failed to generate session token", "err", err)
		return nil, err
	}

	return &models.AuthData{Token: token, User: user.Public()}, nil
}

// deliverOTP attempts delivery and guarantees the code reaches the
// server log when it fails.
func (svc *AuthService) deliverOTP(ctx context.Context, email string, code int) {
	if err := svc.notifier.SendOTP(ctx, email, code); err != nil {
		logger.Log.Warnw("OTP delivery failed, falling back to log",
			"email", email, "otp", strconv.Itoa(code), "err", err)
	}
}
