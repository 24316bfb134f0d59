package services

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/DennisSchenkel/sessionminds-backend/config"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// TokenClaims is the signed payload of both token kinds. The jti registered
// claim is the blacklist key; the raw token is never stored server-side.
type TokenClaims struct {
	Email     string    `json:"email,omitempty"`
	TokenType TokenType `json:"typ"`
	jwt.RegisteredClaims
}

func (c *TokenClaims) UserID() (uint, error) {
	id, err := strconv.ParseUint(c.Subject, 10, 64)
	if err != nil {
		return 0, ErrTokenMalformed
	}
	return uint(id), nil
}

type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

type ITokenService interface {
	IssueToken(userID uint, email string, tokenType TokenType, ttl time.Duration) (string, error)
	IssuePair(userID uint, email string) (*TokenPair, error)
	ParseToken(tokenString string) (*TokenClaims, error)
	Validate(tokenString string, expected TokenType) (*TokenClaims, error)
	Blacklist(claims *TokenClaims) error
}

type TokenService struct {
	config          config.AuthConfig
	tokenRepository repositories.ITokenRepository
}

func NewTokenService(cfg config.AuthConfig, tokenRepository repositories.ITokenRepository) (ITokenService, error) {
	if len(cfg.Secret) == 0 {
		return nil, errors.New("signing secret must not be empty")
	}
	if cfg.AccessTokenTTL == 0 || cfg.RefreshTokenTTL == 0 {
		return nil, errors.New("token TTLs must be configured")
	}
	if cfg.SigningAlgorithm != "HS256" {
		return nil, fmt.Errorf("unsupported signing algorithm: %s", cfg.SigningAlgorithm)
	}
	return &TokenService{config: cfg, tokenRepository: tokenRepository}, nil
}

// IssueToken signs a token carrying subject, type, jti, iat and exp. Pure
// apart from reading the clock.
func (s *TokenService) IssueToken(userID uint, email string, tokenType TokenType, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := TokenClaims{
		Email:     email,
		TokenType: tokenType,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   strconv.FormatUint(uint64(userID), 10),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.config.Secret)
}

func (s *TokenService) IssuePair(userID uint, email string) (*TokenPair, error) {
	accessToken, err := s.IssueToken(userID, email, TokenTypeAccess, s.config.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	refreshToken, err := s.IssueToken(userID, email, TokenTypeRefresh, s.config.RefreshTokenTTL)
	if err != nil {
		return nil, err
	}
	return &TokenPair{AccessToken: accessToken, RefreshToken: refreshToken}, nil
}

// ParseToken verifies structure and signature only. Expiry and blacklist are
// the validator's concern, so a logout of an already expired token still works.
func (s *TokenService) ParseToken(tokenString string) (*TokenClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &TokenClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected method: %v", token.Header["alg"])
		}
		return s.config.Secret, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrBadSignature
		}
		return nil, ErrTokenMalformed
	}

	claims, ok := token.Claims.(*TokenClaims)
	if !ok || claims.ID == "" || claims.ExpiresAt == nil {
		return nil, ErrTokenMalformed
	}
	return claims, nil
}

// Validate decides whether a raw token currently grants access. Signature is
// checked first, then type, then expiry, then the blacklist. A blacklist
// lookup failure fails the validation; it is never treated as "not revoked".
func (s *TokenService) Validate(tokenString string, expected TokenType) (*TokenClaims, error) {
	claims, err := s.ParseToken(tokenString)
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if claims.TokenType != expected {
		return nil, ErrTokenInvalid
	}

	if !time.Now().Before(claims.ExpiresAt.Time) {
		return nil, ErrTokenExpired
	}

	isBlacklisted, err := s.tokenRepository.IsTokenBlacklisted(claims.ID)
	if err != nil {
		return nil, err
	}
	if isBlacklisted {
		return nil, ErrTokenRevoked
	}

	return claims, nil
}

func (s *TokenService) Blacklist(claims *TokenClaims) error {
	return s.tokenRepository.AddBlacklistedToken(claims.ID, claims.ExpiresAt.Unix())
}
