package services

import (
	"errors"
	"strings"

	"github.com/DennisSchenkel/sessionminds-backend/models"
	"github.com/DennisSchenkel/sessionminds-backend/repositories"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type IAuthService interface {
	Signup(email string, password string) (*models.User, error)
	Login(email string, password string) (*TokenPair, *models.User, error)
	RefreshTokens(refreshToken string) (*TokenPair, error)
	Logout(accessToken string, refreshToken string) error
	VerifyAccessToken(tokenString string) error
	BlacklistToken(tokenString string) error
	GetUserFromToken(tokenString string) (*models.User, error)
}

type AuthService struct {
	repository    repositories.IAuthRepository
	tokenService  ITokenService
	rotateRefresh bool
}

func NewAuthService(repository repositories.IAuthRepository, tokenService ITokenService, rotateRefresh bool) IAuthService {
	return &AuthService{
		repository:    repository,
		tokenService:  tokenService,
		rotateRefresh: rotateRefresh,
	}
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

// Signup creates the user and its empty profile in one write, so every user
// has a profile from the moment the account exists.
func (s *AuthService) Signup(email string, password string) (*models.User, error) {
	hashedPassword, err := hashPassword(password)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:    strings.ToLower(email),
		Password: hashedPassword,
		Profile:  models.Profile{},
	}
	if err := s.repository.CreateUser(&user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return &user, nil
}

func (s *AuthService) Login(email string, password string) (*TokenPair, *models.User, error) {
	foundUser, err := s.repository.FindUserByEmail(strings.ToLower(email))
	if err != nil {
		// A missing user and a wrong password are indistinguishable to
		// the caller.
		if errors.Is(err, repositories.ErrUserNotFound) {
			return nil, nil, ErrInvalidCredentials
		}
		return nil, nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(foundUser.Password), []byte(password)); err != nil {
		return nil, nil, ErrInvalidCredentials
	}

	pair, err := s.tokenService.IssuePair(foundUser.ID, foundUser.Email)
	if err != nil {
		return nil, nil, err
	}
	return pair, foundUser, nil
}

// RefreshTokens exchanges a live refresh token for a new pair. With rotation
// enabled the consumed token is blacklisted before the new pair is returned,
// so replaying it yields ErrTokenRevoked.
func (s *AuthService) RefreshTokens(refreshToken string) (*TokenPair, error) {
	claims, err := s.tokenService.Validate(refreshToken, TokenTypeRefresh)
	if err != nil {
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrTokenInvalid
	}

	if s.rotateRefresh {
		if err := s.tokenService.Blacklist(claims); err != nil {
			return nil, err
		}
	}

	return s.tokenService.IssuePair(userID, claims.Email)
}

// Logout blacklists the supplied tokens. It only requires a valid signature,
// not a live token: blacklisting an already expired token is a harmless no-op.
func (s *AuthService) Logout(accessToken string, refreshToken string) error {
	claims, err := s.tokenService.ParseToken(accessToken)
	if err != nil {
		return ErrTokenInvalid
	}
	if err := s.tokenService.Blacklist(claims); err != nil {
		return err
	}

	if refreshToken != "" {
		refreshClaims, err := s.tokenService.ParseToken(refreshToken)
		if err != nil {
			return ErrTokenInvalid
		}
		if err := s.tokenService.Blacklist(refreshClaims); err != nil {
			return err
		}
	}
	return nil
}

func (s *AuthService) VerifyAccessToken(tokenString string) error {
	_, err := s.tokenService.Validate(tokenString, TokenTypeAccess)
	return err
}

// BlacklistToken revokes a single token of either type, regardless of expiry.
func (s *AuthService) BlacklistToken(tokenString string) error {
	claims, err := s.tokenService.ParseToken(tokenString)
	if err != nil {
		return ErrTokenInvalid
	}
	return s.tokenService.Blacklist(claims)
}

func (s *AuthService) GetUserFromToken(tokenString string) (*models.User, error) {
	claims, err := s.tokenService.Validate(tokenString, TokenTypeAccess)
	if err != nil {
		return nil, err
	}

	userID, err := claims.UserID()
	if err != nil {
		return nil, ErrTokenInvalid
	}

	user, err := s.repository.FindUserByID(userID)
	if err != nil {
		return nil, err
	}
	return user, nil
}
