package rest

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	domain "fileshare-api/internal/domain/user"
	jwtSvc "fileshare-api/internal/infrastructure/jwt"
)

type FakeAuthService struct {
	LoginFunc func(ctx context.Context, code string) (string, *domain.User, error)
}

func (f *FakeAuthService) Login(ctx context.Context, code string) (string, *domain.User, error) {
	if f.LoginFunc == nil {
		return "", nil, errors.New("not used")
	}
	return f.LoginFunc(ctx, code)
}

type FakeUserService struct {
	FindByIDFunc     func(ctx context.Context, id domain.ID) (*domain.User, error)
	FindByOpenIDFunc func(ctx context.Context, openID string) (*domain.User, error)
}

func (f *FakeUserService) FindByID(ctx context.Context, id domain.ID) (*domain.User, error) {
	if f.FindByIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByIDFunc(ctx, id)
}
func (f *FakeUserService) FindByOpenID(ctx context.Context, openID string) (*domain.User, error) {
	if f.FindByOpenIDFunc == nil {
		return nil, errors.New("not used")
	}
	return f.FindByOpenIDFunc(ctx, openID)
}

func setupAuthRouter(t *testing.T, us ports.UserService, as ports.Auth) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	r := gin.New()
	logger := zap.NewNop()
	j := jwtSvc.New(testSecret)

	NewAuthController(r, logger, us, as, j)

	return r
}

func someDomainUser() *domain.User {
	name := "Jane"
	email := "jane@example.com"
	method := "portal"
	return &domain.User{
		ID:           42,
		OpenID:       "oid-42",
		Name:         &name,
		Email:        &email,
		LoginMethod:  &method,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
		LastSignedIn: time.Now(),
	}
}

func TestAuthController_CallbackHandler(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		mockAS     func() ports.Auth
		wantStatus int
		wantErr    string
	}{
		{
			name:       "400 missing code",
			query:      "",
			mockAS:     func() ports.Auth { return &FakeAuthService{} },
			wantStatus: http.StatusBadRequest,
			wantErr:    "code is required",
		},
		{
			name:  "500 exchange fails",
			query: "?code=bad-code",
			mockAS: func() ports.Auth {
				return &FakeAuthService{
					LoginFunc: func(ctx context.Context, code string) (string, *domain.User, error) {
						return "", nil, errors.New("portal rejected the code")
					},
				}
			},
			wantStatus: http.StatusInternalServerError,
			wantErr:    "login failed",
		},
		{
			name:  "200 token and user",
			query: "?code=good-code",
			mockAS: func() ports.Auth {
				return &FakeAuthService{
					LoginFunc: func(ctx context.Context, code string) (string, *domain.User, error) {
						require.Equal(t, "good-code", code)
						return "signed-token", someDomainUser(), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupAuthRouter(t, &FakeUserService{}, tt.mockAS())
			rr := doReq(t, r, http.MethodGet, RouteAuthCallback+tt.query, nil, nil)
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			_ = json.Unmarshal(rr.Body.Bytes(), &resp)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}

			assert.Equal(t, "signed-token", resp["access_token"])
			assert.Equal(t, "Bearer", resp["token_type"])
			require.NotNil(t, resp["user"])
		})
	}
}

func TestAuthController_MeHandler(t *testing.T) {
	tests := []struct {
		name       string
		headers    func(t *testing.T) map[string]string
		mockUS     func() ports.UserService
		wantStatus int
		wantErr    string
	}{
		{
			name:       "401 missing auth header",
			headers:    func(t *testing.T) map[string]string { return nil },
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "missing Authorization header",
		},
		{
			name: "401 expired token",
			headers: func(t *testing.T) map[string]string {
				tok, err := SignJWT(testSecret, 42, "oid-42", "user", -time.Minute)
				require.NoError(t, err)
				return map[string]string{"Authorization": "Bearer " + tok}
			},
			mockUS:     func() ports.UserService { return &FakeUserService{} },
			wantStatus: http.StatusUnauthorized,
			wantErr:    "invalid token",
		},
		{
			name:    "404 user removed after token issued",
			headers: func(t *testing.T) map[string]string { return authHeaders(t, 42) },
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindByIDFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
						return nil, nil
					},
				}
			},
			wantStatus: http.StatusNotFound,
			wantErr:    "user not found",
		},
		{
			name:    "200 current user",
			headers: func(t *testing.T) map[string]string { return authHeaders(t, 42) },
			mockUS: func() ports.UserService {
				return &FakeUserService{
					FindByIDFunc: func(ctx context.Context, id domain.ID) (*domain.User, error) {
						require.Equal(t, domain.ID(42), id)
						return someDomainUser(), nil
					},
				}
			},
			wantStatus: http.StatusOK,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			r := setupAuthRouter(t, tt.mockUS(), &FakeAuthService{})
			rr := doReq(t, r, http.MethodGet, RouteAuthMe, nil, tt.headers(t))
			require.Equal(t, tt.wantStatus, rr.Code)

			var resp map[string]any
			_ = json.Unmarshal(rr.Body.Bytes(), &resp)

			if tt.wantErr != "" {
				assert.Equal(t, tt.wantErr, resp["error"])
				return
			}

			assert.Equal(t, "oid-42", resp["open_id"])
		})
	}
}

func TestAuthController_LogoutHandler(t *testing.T) {
	r := setupAuthRouter(t, &FakeUserService{}, &FakeAuthService{})

	rr := doReq(t, r, http.MethodPost, RouteAuthLogout, nil, nil)
	require.Equal(t, http.StatusOK, rr.Code)

	var resp map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	assert.Equal(t, true, resp["success"])
}
