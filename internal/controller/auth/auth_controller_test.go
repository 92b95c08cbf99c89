package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pothoprodorshok/backend/config"
	"github.com/pothoprodorshok/backend/internal/model"
	"github.com/pothoprodorshok/backend/internal/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAuth implements service.AuthService with canned behavior.
type fakeAuth struct {
	signupErr error
	loginErr  error
	user      *model.User
}

func (f *fakeAuth) Signup(email, password string) (*model.User, error) {
	if f.signupErr != nil {
		return nil, f.signupErr
	}
	return f.user, nil
}

func (f *fakeAuth) Login(email, password string) (*model.User, error) {
	if f.loginErr != nil {
		return nil, f.loginErr
	}
	return f.user, nil
}

func (f *fakeAuth) GoogleAuthCodeURL(state string) string { return "https://accounts.google.com/o/oauth2/auth?state=" + state }

func (f *fakeAuth) LoginWithGoogle(context.Context, string) (*model.User, error) {
	return f.user, nil
}

func (f *fakeAuth) IssueSessionToken(email string) (string, error) { return "token-" + email, nil }

func (f *fakeAuth) VerifySessionToken(token string) (string, error) {
	if !strings.HasPrefix(token, "token-") {
		return "", service.ErrInvalidCredentials
	}
	return strings.TrimPrefix(token, "token-"), nil
}

func newTestRouter(auth service.AuthService) *gin.Engine {
	gin.SetMode(gin.TestMode)
	cfg := &config.Config{}
	cfg.Server.FrontendOrigin = "http://localhost:5173"
	ctrl := NewAuthController(auth, cfg)

	r := gin.New()
	r.POST("/auth/signup", ctrl.Signup)
	r.POST("/auth/login", ctrl.Login)
	r.POST("/auth/logout", ctrl.Logout)
	r.GET("/auth/session", ctrl.CheckSession)
	return r
}

func TestSignupSetsSessionCookie(t *testing.T) {
	r := newTestRouter(&fakeAuth{user: &model.User{ID: 1, Email: "a@b.com"}})

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{"email":"a@b.com","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.Equal(t, "token-a@b.com", cookies[0].Value)
	assert.True(t, cookies[0].HttpOnly)
}

func TestSignupDuplicateEmailIs409(t *testing.T) {
	r := newTestRouter(&fakeAuth{signupErr: service.ErrEmailTaken})

	req := httptest.NewRequest(http.MethodPost, "/auth/signup", strings.NewReader(`{"email":"a@b.com","password":"hunter22"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestLoginBadCredentialsIs401(t *testing.T) {
	r := newTestRouter(&fakeAuth{loginErr: service.ErrInvalidCredentials})

	req := httptest.NewRequest(http.MethodPost, "/auth/login", strings.NewReader(`{"email":"a@b.com","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestCheckSessionWithoutCookie(t *testing.T) {
	r := newTestRouter(&fakeAuth{})

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"logged_in":false}`, w.Body.String())
}

func TestCheckSessionWithValidCookie(t *testing.T) {
	r := newTestRouter(&fakeAuth{})

	req := httptest.NewRequest(http.MethodGet, "/auth/session", nil)
	req.AddCookie(&http.Cookie{Name: sessionCookie, Value: "token-a@b.com"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"logged_in":true,"email":"a@b.com"}`, w.Body.String())
}

func TestLogoutClearsCookie(t *testing.T) {
	r := newTestRouter(&fakeAuth{})

	req := httptest.NewRequest(http.MethodPost, "/auth/logout", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	cookies := w.Result().Cookies()
	require.NotEmpty(t, cookies)
	assert.Equal(t, sessionCookie, cookies[0].Name)
	assert.Less(t, cookies[0].MaxAge, 0)
}
