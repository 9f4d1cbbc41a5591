package ports

import (
	"context"

	"fileshare-api/internal/domain/user"
)

type UserService interface {
	FindByID(ctx context.Context, id user.ID) (*user.User, error)
	FindByOpenID(ctx context.Context, openID string) (*user.User, error)
}
