package rest

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"fileshare-api/internal/application/ports"
	"fileshare-api/internal/domain/user"
	"fileshare-api/internal/infrastructure/jwt"
	userDTO "fileshare-api/internal/interface/api/rest/dto/user"
	"fileshare-api/internal/interface/api/rest/middleware"
)

type AuthController struct {
	logger      *zap.Logger
	userService ports.UserService
	authService ports.Auth
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	userService ports.UserService,
	authService ports.Auth,
	jwtService *jwt.Service,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		userService: userService,
		authService: authService,
	}

	r.GET(RouteAuthCallback, ac.CallbackHandler)
	r.GET(RouteAuthMe, middleware.AuthMiddleware(jwtService), ac.MeHandler)
	r.POST(RouteAuthLogout, ac.LogoutHandler)

	return ac
}

// CallbackHandler lands the portal redirect: the code in the query is
// exchanged for an identity, the user row is reconciled and a session
// token comes back.
func (ac *AuthController) CallbackHandler(c *gin.Context) {
	code := c.Query("code")
	if code == "" {
		c.JSON(
			http.StatusBadRequest,
			gin.H{"error": "code is required"},
		)
		return
	}

	token, u, err := ac.authService.Login(c.Request.Context(), code)
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "login failed"},
		)
		ac.logger.Error("Login() error", zap.Error(err))
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"access_token": token,
		"token_type":   "Bearer",
		"user":         userDTO.ToResponseUser(*u),
	})
}

func (ac *AuthController) MeHandler(c *gin.Context) {
	userID := c.GetUint64(middleware.CtxUserID)

	u, err := ac.userService.FindByID(c.Request.Context(), user.ID(userID))
	if err != nil {
		c.JSON(
			http.StatusInternalServerError,
			gin.H{"error": "failed to get a user"},
		)
		ac.logger.Error("FindByID() error", zap.Error(err))
		return
	}
	if u == nil {
		c.JSON(
			http.StatusNotFound,
			gin.H{"error": "user not found"},
		)
		return
	}

	c.JSON(http.StatusOK, userDTO.ToResponseUser(*u))
}

// LogoutHandler exists for client symmetry; tokens are stateless so there
// is nothing to revoke server side.
func (ac *AuthController) LogoutHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
