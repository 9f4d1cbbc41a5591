package ports

import (
	"context"

	"fileshare-api/internal/domain/user"
)

type Auth interface {
	// Login completes the portal redirect flow: code exchange, identity
	// reconciliation, session token issuance.
	Login(ctx context.Context, code string) (string, *user.User, error)
}
