package rest

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"file-storage-api/internal/application/ports"
	"file-storage-api/internal/interface/api/rest/dto/auth"
	"file-storage-api/internal/interface/api/rest/dto/user"
	"file-storage-api/internal/interface/api/rest/validator"
)

const tokenTypeBearer = "Bearer"

type AuthController struct {
	logger      *zap.Logger
	authService ports.AuthService
}

func NewAuthController(
	r *gin.Engine,
	logger *zap.Logger,
	authService ports.AuthService,
) *AuthController {
	ac := &AuthController{
		logger:      logger,
		authService: authService,
	}

	// Logout stays unguarded: a client with an expired access token must
	// still be able to revoke its refresh token, and a repeated logout
	// would otherwise bounce off the blacklist check.
	r.POST(RouteSignUp, ac.SignUpHandler)
	r.POST(RouteLogin, ac.LoginHandler)
	r.POST(RouteRefresh, ac.RefreshHandler)
	r.POST(RouteLogout, ac.LogoutHandler)

	return ac
}

func (ac *AuthController) SignUpHandler(c *gin.Context) {
	var req auth.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	if errs := validator.ValidateCredentials(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"statusCode": http.StatusBadRequest,
			"message":    "invalid request body",
			"details":    errs,
		})
		return
	}

	u, pair, err := ac.authService.SignUp(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusCreated, auth.SignUpResponse{
		User: user.ToResponseUser(*u),
		Tokens: auth.TokenPairResponse{
			AccessToken:  pair.AccessToken,
			RefreshToken: pair.RefreshToken,
			TokenType:    tokenTypeBearer,
		},
	})
}

func (ac *AuthController) LoginHandler(c *gin.Context) {
	var req auth.CredentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBadRequest(c, "invalid json")
		return
	}
	if errs := validator.ValidateCredentials(req); errs != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"statusCode": http.StatusBadRequest,
			"message":    "invalid request body",
			"details":    errs,
		})
		return
	}

	pair, err := ac.authService.Login(c.Request.Context(), strings.ToLower(strings.TrimSpace(req.Email)), req.Password)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, auth.TokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
		TokenType:    tokenTypeBearer,
	})
}

func (ac *AuthController) RefreshHandler(c *gin.Context) {
	var req auth.RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.RefreshToken == "" {
		respondBadRequest(c, "refresh_token is required")
		return
	}

	access, err := ac.authService.Refresh(c.Request.Context(), req.RefreshToken)
	if err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, auth.AccessTokenResponse{
		AccessToken: access,
		TokenType:   tokenTypeBearer,
	})
}

// LogoutHandler blacklists both tokens from the body. Repeating a logout
// is a no-op and still answers 200.
func (ac *AuthController) LogoutHandler(c *gin.Context) {
	var req auth.LogoutRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.AccessToken == "" || req.RefreshToken == "" {
		respondBadRequest(c, "access_token and refresh_token are required")
		return
	}

	if err := ac.authService.Logout(c.Request.Context(), req.AccessToken, req.RefreshToken); err != nil {
		respondError(c, ac.logger, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}
