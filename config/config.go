package config

import (
	"errors"
	"os"
	"strconv"
	"time"
)

// AuthConfig collects everything the token layer needs at process start.
// It is read once in main and injected into constructors, so tests can run
// with their own secrets and TTLs.
type AuthConfig struct {
	Secret              []byte
	SigningAlgorithm    string
	AccessTokenTTL      time.Duration
	RefreshTokenTTL     time.Duration
	RotateRefreshTokens bool
}

func LoadAuthConfig() (AuthConfig, error) {
	secret := os.Getenv("SECRET_KEY")
	if secret == "" {
		return AuthConfig{}, errors.New("SECRET_KEY is not set")
	}

	cfg := AuthConfig{
		Secret:              []byte(secret),
		SigningAlgorithm:    "HS256",
		AccessTokenTTL:      15 * time.Minute,
		RefreshTokenTTL:     24 * time.Hour,
		RotateRefreshTokens: true,
	}

	if alg := os.Getenv("JWT_ALGORITHM"); alg != "" {
		cfg.SigningAlgorithm = alg
	}
	if v := os.Getenv("ACCESS_TOKEN_TTL_MINUTES"); v != "" {
		minutes, err := strconv.Atoi(v)
		if err != nil {
			return AuthConfig{}, errors.New("invalid ACCESS_TOKEN_TTL_MINUTES")
		}
		cfg.AccessTokenTTL = time.Duration(minutes) * time.Minute
	}
	if v := os.Getenv("REFRESH_TOKEN_TTL_HOURS"); v != "" {
		hours, err := strconv.Atoi(v)
		if err != nil {
			return AuthConfig{}, errors.New("invalid REFRESH_TOKEN_TTL_HOURS")
		}
		cfg.RefreshTokenTTL = time.Duration(hours) * time.Hour
	}
	if v := os.Getenv("ROTATE_REFRESH_TOKENS"); v != "" {
		rotate, err := strconv.ParseBool(v)
		if err != nil {
			return AuthConfig{}, errors.New("invalid ROTATE_REFRESH_TOKENS")
		}
		cfg.RotateRefreshTokens = rotate
	}

	return cfg, nil
}
