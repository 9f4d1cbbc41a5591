package ports

import (
	"context"

	"fileshare-api/internal/infrastructure/oauth"
)

type OAuthClient interface {
	Exchange(ctx context.Context, code string) (*oauth.Identity, error)
}
