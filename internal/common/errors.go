package common

import "errors"

var (
	// Input errors.
	ErrInvalidInput = errors.New("invalid input")

	// Token lifecycle errors.
	ErrTokenExpired   = errors.New(TokenExpiredMessage)
	ErrNoRefreshToken = errors.New("no refresh token")
)
