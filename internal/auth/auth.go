// Package auth registers and authenticates portal users and issues the
// bearer tokens the HTTP API expects.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/mutualfundportal/portal/internal/domain"
	"github.com/mutualfundportal/portal/internal/logger"
	"github.com/mutualfundportal/portal/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// Client-facing errors. Their messages are returned verbatim by the API.
var (
	ErrMissingFields      = errors.New("All fields are required")
	ErrMissingCredentials = errors.New("Username and password are required")
	ErrUserExists         = errors.New("User already exists")
	ErrInvalidCredentials = errors.New("Invalid credentials")
	ErrPasswordTooLong    = fmt.Errorf("Password must be at most %d bytes", MaxPasswordBytes)
	ErrInvalidToken       = errors.New("invalid token")
)

const (
	// BcryptCost is the hashing cost for stored passwords.
	BcryptCost = 10
	// MaxPasswordBytes is the longest password bcrypt accepts.
	MaxPasswordBytes = 72
	// DefaultTokenTTL is the lifetime of issued tokens.
	DefaultTokenTTL = 24 * time.Hour
)

// Admin account seeded at startup.
const (
	AdminUsername = "admin"
	adminName     = "Administrator"
	adminMobile   = "0000000000"
	adminEmail    = "admin@example.com"
)

// Claims is the token payload.
type Claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	jwt.RegisteredClaims
}

// RegisterRequest carries the sign-up form.
type RegisterRequest struct {
	Name     string `json:"name"`
	Mobile   string `json:"mobile"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Password string `json:"password"`
}

// Session is returned after a successful register or login.
type Session struct {
	User  domain.PublicUser `json:"user"`
	Token string            `json:"token"`
}

// Service implements registration, login and token checks.
type Service struct {
	users  repository.UserRepository
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// NewService creates a Service signing tokens with secret. A non-positive
// ttl uses DefaultTokenTTL.
func NewService(users repository.UserRepository, secret string, ttl time.Duration) *Service {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &Service{users: users, secret: []byte(secret), ttl: ttl, now: time.Now}
}

// Register creates an account. Every field is required, the password must
// fit in MaxPasswordBytes and neither the email nor the username may already
// be in use.
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*Session, error) {
	if req.Name == "" || req.Mobile == "" || req.Email == "" || req.Username == "" || req.Password == "" {
		return nil, ErrMissingFields
	}
	if len(req.Password) > MaxPasswordBytes {
		return nil, ErrPasswordTooLong
	}
	exists, err := s.users.UserExists(ctx, req.Email, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}
	u := &domain.User{
		Name:         req.Name,
		Mobile:       req.Mobile,
		Email:        req.Email,
		Username:     req.Username,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	}
	if err := s.users.CreateUser(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrUserExists
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return s.session(u)
}

// Login checks a username and password pair. Unknown users and wrong
// passwords are indistinguishable to the caller.
func (s *Service) Login(ctx context.Context, username, password string) (*Session, error) {
	if username == "" || password == "" {
		return nil, ErrMissingCredentials
	}
	u, err := s.users.FindUserByUsername(ctx, username)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}
	return s.session(u)
}

func (s *Service) session(u *domain.User) (*Session, error) {
	token, err := s.IssueToken(u)
	if err != nil {
		return nil, err
	}
	return &Session{User: u.Public(), Token: token}, nil
}

// IssueToken signs an HS256 token for u.
func (s *Service) IssueToken(u *domain.User) (string, error) {
	now := s.now()
	claims := Claims{
		ID:       u.ID,
		Username: u.Username,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// ParseToken verifies a token and returns its claims.
func (s *Service) ParseToken(token string) (*Claims, error) {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (any, error) {
		return s.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil || !parsed.Valid {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	return claims, nil
}

// BearerToken extracts the token from an Authorization header value.
func BearerToken(header string) string {
	_, token, ok := strings.Cut(header, " ")
	if !ok {
		return ""
	}
	return strings.TrimSpace(token)
}

// EnsureAdmin creates the admin account with password when it does not
// exist yet. It reports whether an account was created.
func (s *Service) EnsureAdmin(ctx context.Context, password string) (bool, error) {
	if password == "" {
		return false, fmt.Errorf("admin password is required")
	}
	_, err := s.users.FindUserByUsername(ctx, AdminUsername)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, repository.ErrNotFound) {
		return false, fmt.Errorf("failed to look up admin user: %w", err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		return false, fmt.Errorf("failed to hash password: %w", err)
	}
	err = s.users.CreateUser(ctx, &domain.User{
		Name:         adminName,
		Mobile:       adminMobile,
		Email:        adminEmail,
		Username:     AdminUsername,
		PasswordHash: string(hash),
		CreatedAt:    s.now().UTC(),
	})
	if err != nil {
		return false, fmt.Errorf("failed seeding admin user: %w", err)
	}
	logger.Info("Seeded admin user", "username", AdminUsername)
	return true, nil
}
