package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/pothoprodorshok/backend/config"
	"github.com/pothoprodorshok/backend/internal/model"
	"github.com/pothoprodorshok/backend/internal/repository"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const sessionTokenTTL = 7 * 24 * time.Hour

const googleUserinfoURL = "https://www.googleapis.com/oauth2/v2/userinfo"

type AuthService interface {
	Signup(email, password string) (*model.User, error)
	Login(email, password string) (*model.User, error)
	GoogleAuthCodeURL(state string) string
	LoginWithGoogle(ctx context.Context, code string) (*model.User, error)
	IssueSessionToken(email string) (string, error)
	VerifySessionToken(token string) (string, error)
}

type authService struct {
	users  repository.UserRepository
	secret []byte
	oauth  *oauth2.Config
}

func NewAuthService(cfg *config.Config, users repository.UserRepository) AuthService {
	oauth := &oauth2.Config{
		ClientID:     cfg.Auth.GoogleClientID,
		ClientSecret: cfg.Auth.GoogleClientSecret,
		RedirectURL:  cfg.Auth.OAuthRedirectURL,
		Scopes: []string{
			"https://www.googleapis.com/auth/userinfo.email",
			"https://www.googleapis.com/auth/userinfo.profile",
		},
		Endpoint: google.Endpoint,
	}
	return &authService{
		users:  users,
		secret: []byte(cfg.Auth.SessionSecret),
		oauth:  oauth,
	}
}

func (s *authService) Signup(email, password string) (*model.User, error) {
	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	log.Info().Str("email", email).Msg("Account created")
	return user, nil
}

func (s *authService) Login(email, password string) (*model.User, error) {
	user, err := s.users.FindByEmail(email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *authService) GoogleAuthCodeURL(state string) string {
	return s.oauth.AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// LoginWithGoogle exchanges the OAuth code, reads the Google account email
// and finds or creates the matching account. A first federated login gets a
// random password the user can never type; there is no reset path for it.
func (s *authService) LoginWithGoogle(ctx context.Context, code string) (*model.User, error) {
	token, err := s.oauth.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("oauth code exchange failed: %w", err)
	}

	resp, err := s.oauth.Client(ctx, token).Get(googleUserinfoURL)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch user info from Google: %w", err)
	}
	defer resp.Body.Close()

	var info struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("failed to decode Google user info: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("no email found in Google response")
	}

	user, err := s.users.FindByEmail(info.Email)
	if errors.Is(err, repository.ErrUserNotFound) {
		return s.createFederatedUser(info.Email)
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *authService) createFederatedUser(email string) (*model.User, error) {
	buf := make([]byte, 16)
	if _, err := rand.Read(buf); err != nil {
		return nil, fmt.Errorf("failed to generate random password: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(hex.EncodeToString(buf)), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{Email: email, PasswordHash: string(hash)}
	if err := s.users.Create(user); err != nil {
		return nil, err
	}

	log.Info().Str("email", email).Msg("Account auto-created from Google login")
	return user, nil
}

func (s *authService) IssueSessionToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(sessionTokenTTL).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *authService) VerifySessionToken(tokenString string) (string, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidCredentials
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", ErrInvalidCredentials
	}
	email, ok := claims["email"].(string)
	if !ok || email == "" {
		return "", ErrInvalidCredentials
	}
	return email, nil
}
