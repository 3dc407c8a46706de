package processor

import (
	"context"
	"errors"
	"strings"
	"time"

	"ops-dashboard/internal/observability"
	"ops-dashboard/internal/store"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// MinPasswordLength is the shortest password accepted on change
const MinPasswordLength = 8

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrIncorrectPassword  = errors.New("current password is incorrect")
	ErrWeakPassword       = errors.New("password must be at least 8 characters")
	ErrFailedLogin        = errors.New("failed to login")
	ErrInvalidJWTToken    = errors.New("invalid jwt token")
	ErrParseJWTToken      = errors.New("failed to parse jwt token")
	ErrExpiredToken       = errors.New("token expired")
	ErrUserExists         = errors.New("username or email already taken")
	ErrMissingUserField   = errors.New("username, full name, email and password are required")
)

// AuthConfig carries the token settings
type AuthConfig struct {
	JWTSecret string
	TokenTTL  time.Duration
}

type AuthProcessor struct {
	store      AuthStore
	authConfig AuthConfig
	logger     *observability.Logger
}

func New(store AuthStore, authConfig AuthConfig, logger *observability.Logger) AuthProcessor {
	if authConfig.TokenTTL <= 0 {
		authConfig.TokenTTL = 24 * time.Hour
	}
	return AuthProcessor{
		store:      store,
		authConfig: authConfig,
		logger:     logger,
	}
}

// User is the agent profile exposed to the dashboard
type User struct {
	ID       uuid.UUID `json:"id"`
	Username string    `json:"username"`
	FullName string    `json:"full_name"`
	Email    string    `json:"email"`
}

type LoggedInUser struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

type BaseClaims struct {
	ExpirationTime *jwt.NumericDate `json:"exp"`
	IssuedAt       *jwt.NumericDate `json:"iat"`
	NotBefore      *jwt.NumericDate `json:"nbf"`
	Issuer         string           `json:"iss"`
	Subject        string           `json:"sub"`
	Audience       jwt.ClaimStrings `json:"aud"`
	Name           string           `json:"name"`
}

func toUser(user store.User) User {
	return User{
		ID:       user.ID,
		Username: user.Username,
		FullName: user.FullName,
		Email:    user.Email,
	}
}

// Login accepts either the username or the email of an active agent
func (p *AuthProcessor) Login(ctx context.Context, login string, password string) (LoggedInUser, error) {
	login = strings.TrimSpace(login)
	ctx = observability.WithFields(ctx, observability.Field{Key: "login", Value: login})

	user, err := p.store.GetUserByLogin(ctx, login)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			p.logger.Warn(ctx, "login attempt for unknown user")
			return LoggedInUser{}, ErrInvalidCredentials
		}
		p.logger.Error(ctx, "failed to get user by login", err)
		return LoggedInUser{}, ErrFailedLogin
	}

	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: user.ID.String()})
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		p.logger.Warn(ctx, "login attempt with wrong password")
		return LoggedInUser{}, ErrInvalidCredentials
	}

	token, err := p.generateJWTToken(ctx, user)
	if err != nil {
		return LoggedInUser{}, err
	}

	p.logger.Info(ctx, "user logged in successfully")
	return LoggedInUser{Token: token, User: toUser(user)}, nil
}

func (p *AuthProcessor) GetUserByID(ctx context.Context, userID uuid.UUID) (User, error) {
	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return User{}, ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return User{}, err
	}
	return toUser(user), nil
}

// ChangePassword replaces the password after checking the current one
func (p *AuthProcessor) ChangePassword(ctx context.Context, userID uuid.UUID, currentPassword string, newPassword string) error {
	ctx = observability.WithFields(ctx, observability.Field{Key: "user_id", Value: userID.String()})

	if len(newPassword) < MinPasswordLength {
		return ErrWeakPassword
	}

	user, err := p.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to get user by id", err)
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return ErrIncorrectPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return err
	}

	if err := p.store.UpdateUserPassword(ctx, userID, string(hashedPassword)); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return ErrUserNotFound
		}
		p.logger.Error(ctx, "failed to update password", err)
		return err
	}

	p.logger.Info(ctx, "password changed successfully")
	return nil
}

// NewUser is an agent account to create
type NewUser struct {
	Username string
	FullName string
	Email    string
	Password string
}

// CreateUser hashes the password and stores a new active agent
func (p *AuthProcessor) CreateUser(ctx context.Context, params NewUser) (User, error) {
	username := strings.TrimSpace(params.Username)
	email := strings.ToLower(strings.TrimSpace(params.Email))
	fullName := strings.TrimSpace(params.FullName)
	ctx = observability.WithFields(ctx, observability.Field{Key: "username", Value: username})

	if username == "" || email == "" || fullName == "" || params.Password == "" {
		return User{}, ErrMissingUserField
	}
	if len(params.Password) < MinPasswordLength {
		return User{}, ErrWeakPassword
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(params.Password), bcrypt.DefaultCost)
	if err != nil {
		p.logger.Error(ctx, "failed to hash password", err)
		return User{}, err
	}

	user, err := p.store.CreateUser(ctx, store.CreateUserParams{
		Username:     username,
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hashedPassword),
	})
	if err != nil {
		if errors.Is(err, store.ErrUniqueViolation) {
			return User{}, ErrUserExists
		}
		p.logger.Error(ctx, "failed to create user", err)
		return User{}, err
	}

	p.logger.Info(ctx, "user created successfully")
	return toUser(user), nil
}
