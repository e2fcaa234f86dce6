package utils

import (
	"context"

	"github.com/tatthien/church-equipment/internal/authz"
	"github.com/tatthien/church-equipment/pkg/contextkeys"
	apperrors "github.com/tatthien/church-equipment/pkg/errors"
)

// CallerFromContext rebuilds the policy caller from the values the auth
// middleware stashed into the request context.
func CallerFromContext(ctx context.Context) (authz.Caller, error) {
	id, ok := ctx.Value(contextkeys.UserIDKey).(uint64)
	if !ok {
		return authz.Caller{}, apperrors.ErrUserNotFoundInContext
	}
	role, ok := ctx.Value(contextkeys.UserRoleKey).(string)
	if !ok {
		return authz.Caller{}, apperrors.ErrUserNotFoundInContext
	}
	return authz.Caller{ID: id, Role: role}, nil
}
