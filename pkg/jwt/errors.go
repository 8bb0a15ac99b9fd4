package jwt

import "errors"

var (
	// ErrMissingSigningKey is returned when a Verifier is created without a key.
	ErrMissingSigningKey = errors.New("jwt: missing signing key")

	// ErrMissingClaims is returned when Sign is called with nil claims.
	ErrMissingClaims = errors.New("jwt: missing claims")

	// ErrInvalidToken is returned for malformed or not-yet-valid tokens.
	ErrInvalidToken = errors.New("jwt: invalid token")

	// ErrInvalidSignature is returned when the token signature does not verify.
	ErrInvalidSignature = errors.New("jwt: invalid signature")

	// ErrExpiredToken is returned when the exp claim lies in the past.
	ErrExpiredToken = errors.New("jwt: token expired")

	// ErrUnexpectedSigningMethod is returned when the token header declares
	// an algorithm other than HS256.
	ErrUnexpectedSigningMethod = errors.New("jwt: unexpected signing method")
)
