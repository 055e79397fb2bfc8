package service

import (
	"context"
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"jobportal/internal/auth"
	apperrors "jobportal/internal/errors"
	"jobportal/internal/model"
	"jobportal/internal/repository"
)

const minPasswordLength = 6

var (
	// ErrInvalidCredentials is returned when email or password is incorrect.
	ErrInvalidCredentials = apperrors.Unauthenticated("invalid email or password")
	// ErrEmailInUse is returned when trying to register an existing email.
	ErrEmailInUse = apperrors.Conflict("email already in use")
)

var validate = validator.New()

// RegisterInput carries the registration form.
type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string      `json:"token"`
	User  *model.User `json:"user"`
}

// AuthService handles authentication operations.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	GetUser(ctx context.Context, id uuid.UUID) (*model.User, error)
}

type authService struct {
	users  repository.UserRepository
	issuer *auth.TokenIssuer
}

// NewAuthService creates a new authentication service.
func NewAuthService(users repository.UserRepository, issuer *auth.TokenIssuer) AuthService {
	return &authService{users: users, issuer: issuer}
}

// NormalizeEmail trims and lower-cases an address so lookups are
// case-insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new user with hashed password and signs a token for it.
func (s *authService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	name := strings.TrimSpace(in.Name)
	email := NormalizeEmail(in.Email)
	role := model.Role(strings.ToLower(strings.TrimSpace(in.Role)))
	if role == "" {
		role = model.RoleUser
	}

	if name == "" || email == "" || in.Password == "" {
		return nil, apperrors.Validation("name, email and password are required")
	}
	if err := validate.Var(email, "email"); err != nil {
		return nil, apperrors.Validation("invalid email format")
	}
	if utf8.RuneCountInString(in.Password) < minPasswordLength {
		return nil, apperrors.Validation("password must be at least 6 characters")
	}
	if !role.Valid() {
		return nil, apperrors.Validation("invalid role")
	}

	// Check if the email is already registered
	if _, err := s.users.FindByEmail(ctx, email); err == nil {
		return nil, ErrEmailInUse
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, internal("check user existence", err)
	}

	hash, err := auth.HashPassword(in.Password)
	if err != nil {
		return nil, internal("hash password", err)
	}

	user := &model.User{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		// A concurrent registration can win the race past the lookup.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailInUse
		}
		return nil, internal("create user", err)
	}

	return s.result(user)
}

// Login authenticates a user and returns a fresh token.
func (s *authService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	email = NormalizeEmail(email)
	if email == "" || password == "" {
		return nil, apperrors.Validation("email and password are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, internal("find user", err)
	}

	if !auth.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.result(user)
}

// GetUser returns the user by ID.
func (s *authService) GetUser(ctx context.Context, id uuid.UUID) (*model.User, error) {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, lookupError(err, ErrUserNotFound, "find user")
	}
	return user, nil
}

func (s *authService) result(user *model.User) (*AuthResult, error) {
	token, err := s.issuer.Issue(user.ID, user.Role)
	if err != nil {
		return nil, internal("issue token", err)
	}
	return &AuthResult{Token: token, User: user}, nil
}
