package services

import "errors"

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")

	// Token codec errors. The validator folds both into ErrTokenInvalid so
	// callers never learn whether a rejected token was tampered with or
	// just garbage.
	ErrTokenMalformed = errors.New("token is malformed")
	ErrBadSignature   = errors.New("token signature is invalid")

	ErrTokenInvalid      = errors.New("invalid token")
	ErrTokenExpired      = errors.New("token is expired")
	ErrTokenRevoked      = errors.New("token is blacklisted")
	ErrMissingCredential = errors.New("authorization header is required")

	ErrNotOwner     = errors.New("not the owner of this resource")
	ErrAlreadyVoted = errors.New("user has already voted for this tool")
)
