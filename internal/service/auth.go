package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/planwise/assistant/internal/model"
	"github.com/planwise/assistant/internal/repository"
	"github.com/planwise/assistant/internal/validation"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrInvalidCredentials   = errors.New("incorrect username or password")
	ErrInvalidToken         = errors.New("could not validate credentials")
	ErrInactiveUser         = errors.New("inactive user")
	ErrUsernameAlreadyTaken = errors.New("username already exists")
	ErrEmailAlreadyTaken    = errors.New("email already exists")
)

type AuthService struct {
	userRepository repository.UserRepository
	secretKey      []byte
	tokenExpiry    time.Duration
}

func NewAuthService(userRepository repository.UserRepository, secretKey string, tokenExpiry time.Duration) *AuthService {
	return &AuthService{
		userRepository: userRepository,
		secretKey:      []byte(secretKey),
		tokenExpiry:    tokenExpiry,
	}
}

// SignupInput carries the fields accepted by signup. Username and password
// arrive form-encoded; the rest are optional profile decoration.
type SignupInput struct {
	Username  string
	Password  string
	Email     *string
	FirstName *string
	LastName  *string
	Emoji     *string
}

func (s *AuthService) HashPassword(password string) (string, error) {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashedBytes), nil
}

// CheckPassword reports whether the plaintext matches the stored digest.
// A malformed digest counts as a mismatch, never an error.
func (s *AuthService) CheckPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// GenerateToken issues a signed bearer token whose subject is the username.
func (s *AuthService) GenerateToken(username string) (string, time.Time, error) {
	expiresAt := time.Now().Add(s.tokenExpiry)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
		Subject:   username,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(time.Now()),
	})

	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", time.Time{}, err
	}

	return tokenString, expiresAt, nil
}

// VerifyToken checks signature and expiry and returns the subject username.
// Any failure, including a missing subject, yields ErrInvalidToken.
func (s *AuthService) VerifyToken(tokenString string) (string, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secretKey, nil
	})
	if err != nil || !token.Valid {
		return "", ErrInvalidToken
	}

	if claims.Subject == "" {
		return "", ErrInvalidToken
	}

	return claims.Subject, nil
}

func (s *AuthService) Login(ctx context.Context, username, password string) (*model.User, error) {
	username = strings.TrimSpace(username)

	user, err := s.userRepository.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !s.CheckPassword(password, user.HashedPassword) {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// Signup creates a user and returns it. Uniqueness is enforced by the
// storage layer; a constraint violation surfaces as a conflict error, so
// concurrent signups with the same username cannot both succeed.
func (s *AuthService) Signup(ctx context.Context, input SignupInput) (*model.User, error) {
	input.Username = strings.TrimSpace(input.Username)

	err := validation.ValidateUsername(input.Username)
	if err != nil {
		return nil, err
	}

	err = validation.ValidatePassword(input.Password)
	if err != nil {
		return nil, err
	}

	if input.Email != nil {
		email := strings.TrimSpace(strings.ToLower(*input.Email))
		err = validation.ValidateEmail(email)
		if err != nil {
			return nil, err
		}
		input.Email = &email
	}

	hashedPassword, err := s.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &model.User{
		Username:       input.Username,
		Email:          input.Email,
		FirstName:      input.FirstName,
		LastName:       input.LastName,
		Emoji:          input.Emoji,
		HashedPassword: hashedPassword,
		IsActive:       true,
		CreatedAt:      time.Now(),
	}

	err = s.userRepository.Create(ctx, user)
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUsername) {
			return nil, ErrUsernameAlreadyTaken
		}
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailAlreadyTaken
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	slog.Info("new user created", "username", user.Username, "user_id", user.ID)
	return user, nil
}

// ValidateUsername reports whether the username is still available.
// Advisory only; the unique constraint is the actual guard.
func (s *AuthService) ValidateUsername(ctx context.Context, username string) (bool, error) {
	_, err := s.userRepository.ByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return true, nil
		}
		return false, fmt.Errorf("failed to check username: %w", err)
	}
	return false, nil
}

// CurrentUser resolves a bearer token to its active user.
func (s *AuthService) CurrentUser(ctx context.Context, tokenString string) (*model.User, error) {
	username, err := s.VerifyToken(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := s.userRepository.ByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, ErrInvalidToken
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if !user.IsActive {
		return nil, ErrInactiveUser
	}

	return user, nil
}
