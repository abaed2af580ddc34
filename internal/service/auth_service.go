package service

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/hostelcare/complaints-backend/internal/model"
	"github.com/hostelcare/complaints-backend/internal/repository"
)

// AdminPrincipalID is the synthetic id carried by admin tokens.
const AdminPrincipalID = "admin"

// AuthConfig is the identity component's configuration. It is copied in at
// construction and never re-read.
type AuthConfig struct {
	AdminEmail    string
	AdminPassword string
	AdminName     string
	JWTSecret     string
	TokenTTL      time.Duration
}

// Claims extends JWT standard claims with the caller's identity.
type Claims struct {
	jwt.RegisteredClaims
	User model.Identity `json:"user"`
}

// AuthService resolves credentials to principals and issues/verifies tokens.
type AuthService struct {
	cfg       AuthConfig
	staff     StaffStore
	students  StudentStore
	hasher    *PasswordHasher
	dummyHash string
	now       func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(cfg AuthConfig, staff StaffStore, students StudentStore, hasher *PasswordHasher) (*AuthService, error) {
	if cfg.JWTSecret == "" {
		return nil, errors.New("jwt secret is required")
	}
	if cfg.TokenTTL <= 0 {
		cfg.TokenTTL = time.Hour
	}
	cfg.AdminEmail = normalizeEmail(cfg.AdminEmail)

	// Compared against when no account matches so misses cost the same as
	// wrong passwords.
	dummy, err := hasher.Hash(uuid.NewString())
	if err != nil {
		return nil, fmt.Errorf("prepare dummy hash: %w", err)
	}

	return &AuthService{
		cfg:       cfg,
		staff:     staff,
		students:  students,
		hasher:    hasher,
		dummyHash: dummy,
		now:       time.Now,
	}, nil
}

// Resolve maps an email/password pair to exactly one principal. The
// configured admin is checked first, then staff, then students; the first
// kind that owns the email decides the outcome. Every failure is
// ErrInvalidCredentials.
func (s *AuthService) Resolve(ctx context.Context, email, password string) (model.Principal, error) {
	email = normalizeEmail(email)

	if s.cfg.AdminEmail != "" && email == s.cfg.AdminEmail {
		if subtle.ConstantTimeCompare([]byte(password), []byte(s.cfg.AdminPassword)) == 1 {
			return model.AdminPrincipal{ID: AdminPrincipalID, Name: s.cfg.AdminName}, nil
		}
		return nil, ErrInvalidCredentials
	}

	staff, err := s.staff.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.hasher.Check(staff.PasswordHash, password); err != nil {
			return nil, ErrInvalidCredentials
		}
		return model.StaffPrincipal{Staff: staff}, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("lookup staff: %w", err)
	}

	student, err := s.students.GetByEmail(ctx, email)
	switch {
	case err == nil:
		if err := s.hasher.Check(student.PasswordHash, password); err != nil {
			return nil, ErrInvalidCredentials
		}
		return model.StudentPrincipal{Student: student}, nil
	case !errors.Is(err, repository.ErrNotFound):
		return nil, fmt.Errorf("lookup student: %w", err)
	}

	_ = s.hasher.Check(s.dummyHash, password)
	return nil, ErrInvalidCredentials
}

// Login resolves the principal and issues a signed token for it.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, model.Identity, error) {
	principal, err := s.Resolve(ctx, email, password)
	if err != nil {
		return "", model.Identity{}, err
	}

	identity := principal.Identity()
	token, err := s.IssueToken(identity)
	if err != nil {
		return "", model.Identity{}, err
	}
	return token, identity, nil
}

// IssueToken signs an HS256 token for identity that expires after the TTL.
func (s *AuthService) IssueToken(identity model.Identity) (string, error) {
	now := s.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.cfg.TokenTTL)),
		},
		User: identity,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.cfg.JWTSecret))
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and validates a token. Missing, malformed, expired or
// badly signed tokens all yield ErrTokenInvalid.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.cfg.JWTSecret), nil
	}, jwt.WithTimeFunc(s.now))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrTokenInvalid, err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}
	switch claims.User.Role {
	case model.RoleAdmin, model.RoleStaff, model.RoleStudent:
	default:
		return nil, fmt.Errorf("%w: unknown role %q", ErrTokenInvalid, claims.User.Role)
	}
	return claims, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
