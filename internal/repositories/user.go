package repositories

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/cinemahub/cinemahub-api/internal/logger"
	"github.com/cinemahub/cinemahub-api/internal/models"
)

// UserPostgresRepository persists users in PostgreSQL via sqlx.
// It implements the same surface as UserMemoryRepository so the
// auth service stays free of storage details.
type UserPostgresRepository struct {
	db *sqlx.DB
}

// NewUserPostgresRepository creates a repository over the given connection.
func NewUserPostgresRepository(db *sqlx.DB) *UserPostgresRepository {
	return &UserPostgresRepository{db: db}
}

const userColumns = `id, email, username, password_hash, is_verified,
	otp, otp_expiry, reset_token, reset_token_expiry,
	auth_provider, google_id, picture, created_at`

// FindByEmail returns the user with the given email, or nil when absent.
func (r *UserPostgresRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 LIMIT 1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, email)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"email", email,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// FindByID returns the user with the given id, or nil when absent.
func (r *UserPostgresRepository) FindByID(ctx context.Context, id int) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1 LIMIT 1`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Debugw("user query",
		"query", strings.Join(strings.Fields(query), " "),
		"id", id,
		"error", err,
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Save inserts the user when its ID is zero and updates the full
// record otherwise. On insert the generated id is written back.
func (r *UserPostgresRepository) Save(ctx context.Context, user *models.User) error {
	if user.ID == 0 {
		query := `
			INSERT INTO users (email, username, password_hash, is_verified,
				otp, otp_expiry, reset_token, reset_token_expiry,
				auth_provider, google_id, picture, created_at)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, NOW())
			RETURNING id, created_at
		`
		err := r.db.QueryRowxContext(ctx, query,
			user.Email, user.Username, user.PasswordHash, user.IsVerified,
			user.OTP, user.OTPExpiry, user.ResetToken, user.ResetExpiry,
			user.AuthProvider, user.GoogleID, user.Picture,
		).Scan(&user.ID, &user.CreatedAt)

		logger.Log.Debugw("user insert", "email", user.Email, "error", err)
		return err
	}

	query := `
		UPDATE users
		SET username = $2, password_hash = $3, is_verified = $4,
			otp = $5, otp_expiry = $6, reset_token = $7, reset_token_expiry = $8,
			auth_provider = $9, google_id = $10, picture = $11
		WHERE id = $1
	`
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Username, user.PasswordHash, user.IsVerified,
		user.OTP, user.OTPExpiry, user.ResetToken, user.ResetExpiry,
		user.AuthProvider, user.GoogleID, user.Picture,
	)

	logger.Log.Debugw("user update", "id", user.ID, "error", err)
	return err
}
