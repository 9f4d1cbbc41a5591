package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/jwt"
)

const sessionTTL = 24 * time.Hour

var ErrFailedToGenerateToken = errors.New("failed to generate token")

type AuthService struct {
	oauthClient    ports.OAuthClient
	userRepository user.Repository
	jwtService     *jwt.Service
	ownerOpenID    string
	mCounter       *prometheus.CounterVec
}

func NewAuthService(
	oauthClient ports.OAuthClient,
	userRepository user.Repository,
	jwtService *jwt.Service,
	ownerOpenID string,
	mCounter *prometheus.CounterVec,
) ports.Auth {
	return &AuthService{
		oauthClient:    oauthClient,
		userRepository: userRepository,
		jwtService:     jwtService,
		ownerOpenID:    ownerOpenID,
		mCounter:       mCounter,
	}
}

// Login runs every successful portal redirect through the same idempotent
// path: exchange the code, reconcile the identity row, mint a session token.
func (as *AuthService) Login(ctx context.Context, code string) (string, *user.User, error) {
	ident, err := as.oauthClient.Exchange(ctx, code)
	if err != nil {
		return "", nil, fmt.Errorf("portal exchange: %w", err)
	}

	u, err := as.userRepository.UpsertByOpenID(ctx, user.UpsertRecord{
		OpenID:      ident.OpenID,
		Name:        ident.Name,
		Email:       ident.Email,
		LoginMethod: ident.LoginMethod,
	}, as.ownerOpenID)
	if err != nil {
		return "", nil, err
	}

	token, err := as.jwtService.GenerateJWT(uint64(u.ID), u.OpenID, u.Role, sessionTTL)
	if err != nil {
		return "", nil, ErrFailedToGenerateToken
	}

	as.mCounter.WithLabelValues("user_logins_total").Inc()

	return token, u, nil
}
