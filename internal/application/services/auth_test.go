package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domain "fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/jwt"
	"fileshare-api/internal/infrastructure/oauth"
)

type FakeOAuthClient struct {
	ExchangeFunc func(ctx context.Context, code string) (*oauth.Identity, error)
}

func (f *FakeOAuthClient) Exchange(ctx context.Context, code string) (*oauth.Identity, error) {
	if f.ExchangeFunc == nil {
		return nil, errors.New("not used")
	}
	return f.ExchangeFunc(ctx, code)
}

type FakeUserRepository struct {
	UpsertByOpenIDFunc func(ctx context.Context, rec domain.UpsertRecord, ownerOpenID string) (*domain.User, error)
	FetchByOpenIDFunc  func(ctx context.Context, openID string) (*domain.User, error)
	FetchByIDFunc      func(ctx context.Context, id domain.ID) (*domain.User, error)
}

func (f *FakeUserRepository) UpsertByOpenID(ctx context.Context, rec domain.UpsertRecord, ownerOpenID string) (*domain.User, error) {
	if f.UpsertByOpenIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.UpsertByOpenIDFunc(ctx, rec, ownerOpenID)
}
func (f *FakeUserRepository) FetchByOpenID(ctx context.Context, openID string) (*domain.User, error) {
	if f.FetchByOpenIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByOpenIDFunc(ctx, openID)
}
func (f *FakeUserRepository) FetchByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.FetchByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FetchByIDFunc(ctx, id)
}

func TestAuthService_Login(t *testing.T) {
	jwtService := jwt.New("test-secret")

	t.Run("exchange failure propagates", func(t *testing.T) {
		oc := &FakeOAuthClient{
			ExchangeFunc: func(ctx context.Context, code string) (*oauth.Identity, error) {
				return nil, errors.New("portal rejected the code")
			},
		}
		as := NewAuthService(oc, &FakeUserRepository{}, jwtService, "owner-oid", testCounter())

		_, _, err := as.Login(context.Background(), "bad-code")
		require.Error(t, err)
	})

	t.Run("upsert failure propagates", func(t *testing.T) {
		oc := &FakeOAuthClient{
			ExchangeFunc: func(ctx context.Context, code string) (*oauth.Identity, error) {
				return &oauth.Identity{OpenID: "oid-42"}, nil
			},
		}
		repo := &FakeUserRepository{
			UpsertByOpenIDFunc: func(ctx context.Context, rec domain.UpsertRecord, ownerOpenID string) (*domain.User, error) {
				return nil, errors.New("db error")
			},
		}
		as := NewAuthService(oc, repo, jwtService, "owner-oid", testCounter())

		_, _, err := as.Login(context.Background(), "good-code")
		require.Error(t, err)
	})

	t.Run("identity flows into the upsert and claims", func(t *testing.T) {
		name := "Jane"
		oc := &FakeOAuthClient{
			ExchangeFunc: func(ctx context.Context, code string) (*oauth.Identity, error) {
				require.Equal(t, "good-code", code)
				return &oauth.Identity{OpenID: "oid-42", Name: &name}, nil
			},
		}
		repo := &FakeUserRepository{
			UpsertByOpenIDFunc: func(ctx context.Context, rec domain.UpsertRecord, ownerOpenID string) (*domain.User, error) {
				require.Equal(t, "oid-42", rec.OpenID)
				require.Equal(t, &name, rec.Name)
				require.Nil(t, rec.Role)
				require.Equal(t, "owner-oid", ownerOpenID)
				return &domain.User{ID: 42, OpenID: "oid-42", Name: &name, Role: domain.RoleUser}, nil
			},
		}
		as := NewAuthService(oc, repo, jwtService, "owner-oid", testCounter())

		token, u, err := as.Login(context.Background(), "good-code")
		require.NoError(t, err)
		require.NotNil(t, u)
		assert.Equal(t, domain.ID(42), u.ID)

		claims, err := jwtService.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, uint64(42), claims.UserID)
		assert.Equal(t, "oid-42", claims.OpenID)
		assert.Equal(t, domain.RoleUser, claims.Role)
	})
}
