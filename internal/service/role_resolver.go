package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/cargo-settings/internal/logger"
	"github.com/MKhiriev/cargo-settings/internal/store"
	"github.com/MKhiriev/cargo-settings/models"
)

type roleResolver struct {
	users store.UserRepository
}

func NewRoleResolver(users store.UserRepository) RoleResolver {
	return &roleResolver{users: users}
}

// ResolveCaller loads the user and classifies its role. An empty id never
// reaches the store.
func (r *roleResolver) ResolveCaller(ctx context.Context, userID string) (models.Caller, error) {
	if userID == "" {
		return models.Caller{}, ErrUserNotFound
	}

	user, err := r.users.FindUserByID(ctx, userID)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.Caller{}, fmt.Errorf("%w: %w", ErrUserNotFound, err)
	}
	if err != nil {
		return models.Caller{}, fmt.Errorf("error resolving caller: %w", err)
	}

	caller := models.CallerFromUser(user)
	logger.FromContext(ctx).Debug().
		Str("func", "roleResolver.ResolveCaller").
		Str("user_id", caller.UserID).
		Str("role", string(caller.Role)).
		Msg("caller resolved")

	return caller, nil
}
