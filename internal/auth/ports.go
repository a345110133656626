package auth

import (
	"context"

	"school-admin-api/internal/activity"
)

type AuthServicePort interface {
	LoginURL(state string) string
	EmailForCode(ctx context.Context, code string) (string, error)
}

type LogServicePort interface {
	Log(entry activity.ActivityLog, metadata interface{}) error
}

var _ AuthServicePort = (*AuthService)(nil)
var _ LogServicePort = (*activity.LogService)(nil)
