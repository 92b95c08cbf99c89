package auth

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pothoprodorshok/backend/config"
	"github.com/pothoprodorshok/backend/internal/dto"
	"github.com/pothoprodorshok/backend/internal/service"
	"github.com/rs/zerolog/log"
)

const (
	sessionCookie  = "session_token"
	stateCookie    = "oauth_state"
	sessionMaxAge  = 7 * 24 * 60 * 60
	stateMaxAge    = 10 * 60
	clearCookieAge = -1
	cookiePath     = "/"
)

type AuthController struct {
	authService service.AuthService
	cfg         *config.Config
}

func NewAuthController(authService service.AuthService, cfg *config.Config) *AuthController {
	return &AuthController{authService: authService, cfg: cfg}
}

func (c *AuthController) setSessionCookie(ctx *gin.Context, email string) error {
	token, err := c.authService.IssueSessionToken(email)
	if err != nil {
		return err
	}
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(sessionCookie, token, sessionMaxAge, cookiePath, "", false, true)
	return nil
}

// Signup godoc
// @Summary Create an account with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.SignupRequest true "Email and password"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 409 {object} dto.ErrorResponse "Email already registered"
// @Router /auth/signup [post]
func (c *AuthController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email and a password of at least 6 characters are required"})
		return
	}

	user, err := c.authService.Signup(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			ctx.JSON(http.StatusConflict, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Signup failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create account"})
		return
	}

	if err := c.setSessionCookie(ctx, user.Email); err != nil {
		log.Error().Err(err).Msg("Failed to issue session token after signup")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create session"})
		return
	}
	ctx.JSON(http.StatusCreated, dto.UserResponse{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt})
}

// Login godoc
// @Summary Log in with email and password
// @Tags Auth
// @Accept json
// @Produce json
// @Param credentials body dto.LoginRequest true "Email and password"
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} dto.ErrorResponse "Invalid credentials"
// @Router /auth/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Email and password are required"})
		return
	}

	user, err := c.authService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Error: err.Error()})
			return
		}
		log.Error().Err(err).Msg("Login failed")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to log in"})
		return
	}

	if err := c.setSessionCookie(ctx, user.Email); err != nil {
		log.Error().Err(err).Msg("Failed to issue session token after login")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create session"})
		return
	}
	ctx.JSON(http.StatusOK, dto.UserResponse{ID: user.ID, Email: user.Email, CreatedAt: user.CreatedAt})
}

// Logout godoc
// @Summary Clear the session cookie
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /auth/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(sessionCookie, "", clearCookieAge, cookiePath, "", false, true)
	ctx.JSON(http.StatusOK, dto.SessionResponse{LoggedIn: false})
}

// CheckSession godoc
// @Summary Report whether the caller has a valid session
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.SessionResponse
// @Router /auth/session [get]
func (c *AuthController) CheckSession(ctx *gin.Context) {
	token, err := ctx.Cookie(sessionCookie)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.SessionResponse{LoggedIn: false})
		return
	}

	email, err := c.authService.VerifySessionToken(token)
	if err != nil {
		ctx.JSON(http.StatusOK, dto.SessionResponse{LoggedIn: false})
		return
	}
	ctx.JSON(http.StatusOK, dto.SessionResponse{LoggedIn: true, Email: email})
}

// GoogleLogin godoc
// @Summary Start the Google OAuth flow
// @Tags Auth
// @Success 307 {string} string "Redirect to Google"
// @Router /auth/google/login [get]
func (c *AuthController) GoogleLogin(ctx *gin.Context) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		log.Error().Err(err).Msg("Failed to generate OAuth state")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to start Google login"})
		return
	}
	state := hex.EncodeToString(buf)

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie(stateCookie, state, stateMaxAge, cookiePath, "", false, true)
	ctx.Redirect(http.StatusTemporaryRedirect, c.authService.GoogleAuthCodeURL(state))
}

// GoogleCallback godoc
// @Summary Complete the Google OAuth flow and redirect to the frontend
// @Tags Auth
// @Success 307 {string} string "Redirect to frontend"
// @Failure 400 {object} dto.ErrorResponse
// @Router /auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx *gin.Context) {
	if denied := ctx.Query("error"); denied != "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Google login was denied: " + denied})
		return
	}

	wantState, err := ctx.Cookie(stateCookie)
	if err != nil || wantState == "" || ctx.Query("state") != wantState {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Invalid OAuth state"})
		return
	}
	ctx.SetCookie(stateCookie, "", clearCookieAge, cookiePath, "", false, true)

	code := ctx.Query("code")
	if code == "" {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Missing OAuth code"})
		return
	}

	user, err := c.authService.LoginWithGoogle(ctx.Request.Context(), code)
	if err != nil {
		log.Error().Err(err).Msg("Google login failed")
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: "Failed to complete Google login"})
		return
	}

	if err := c.setSessionCookie(ctx, user.Email); err != nil {
		log.Error().Err(err).Msg("Failed to issue session token after Google login")
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{Error: "Failed to create session"})
		return
	}
	ctx.Redirect(http.StatusTemporaryRedirect, c.cfg.Server.FrontendOrigin)
}
