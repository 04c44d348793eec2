package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/models"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It only reads the "users" table; accounts are managed elsewhere.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// FindUserByID retrieves the user whose id equals userID.
//
// Error handling:
//   - no matching row → [ErrNoUserWasFound].
//   - query or scan failure → wrapped [ErrExecutingQuery].
func (r *userRepository) FindUserByID(ctx context.Context, userID string) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserByIDQuery(userID)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByID").Msg("failed to create query")
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var foundUser models.User
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&foundUser.UserID, &foundUser.Phone, &foundUser.Role)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		r.db.logQueryError(log, "*userRepository.FindUserByID", err, "error finding user")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return foundUser, nil
}
