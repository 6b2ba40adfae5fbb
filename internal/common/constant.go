// Package common contains shared constants and sentinel errors used across
// the stellar-burgers client packages.
package common

// Header names carried on every outbound REST request.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
)

// RefreshTokenKey is the fixed key the refresh credential is stored under in
// durable client storage.
const RefreshTokenKey = "refreshToken"

// TokenExpiredMessage is the message the backend answers with when the
// access credential is no longer valid.
const TokenExpiredMessage = "jwt expired"
