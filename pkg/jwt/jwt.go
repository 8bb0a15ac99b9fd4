package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

const (
	headerType      = "JWT"
	headerAlgorithm = "HS256"
)

type header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Verifier validates HS256-signed bearer tokens and yields their decoded
// claim set. The signing key lives in memory only.
type Verifier struct {
	signingKey []byte
}

// NewVerifier creates a Verifier with the provided signing key.
func NewVerifier(signingKey []byte) (*Verifier, error) {
	if len(signingKey) == 0 {
		return nil, ErrMissingSigningKey
	}
	return &Verifier{signingKey: signingKey}, nil
}

// Verify checks the token signature, algorithm, and temporal claims, and
// returns the decoded claim set. The claim values keep their decoded JSON
// shapes; consumers normalize them via the claims package.
func (v *Verifier) Verify(tokenString string) (map[string]any, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return nil, ErrInvalidToken
	}

	payload := parts[0] + "." + parts[1]
	expected := v.sign(payload)
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return nil, ErrInvalidSignature
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return nil, fmt.Errorf("decode token header: %w", err)
	}
	var h header
	if err := json.Unmarshal(headerJSON, &h); err != nil {
		return nil, fmt.Errorf("unmarshal token header: %w", err)
	}
	// Reject unexpected algorithms to prevent algorithm confusion attacks.
	if h.Algorithm != headerAlgorithm {
		return nil, ErrUnexpectedSigningMethod
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return nil, fmt.Errorf("decode token claims: %w", err)
	}
	claims := make(map[string]any)
	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return nil, fmt.Errorf("unmarshal token claims: %w", err)
	}

	if err := validateTemporal(claims); err != nil {
		return nil, err
	}

	return claims, nil
}

// Sign produces a signed token for the given claims. Token issuance belongs
// to the identity provider in production; Sign exists for local development
// and tests.
func (v *Verifier) Sign(claims map[string]any) (string, error) {
	if claims == nil {
		return "", ErrMissingClaims
	}

	headerJSON, err := json.Marshal(header{Type: headerType, Algorithm: headerAlgorithm})
	if err != nil {
		return "", fmt.Errorf("marshal token header: %w", err)
	}
	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("marshal token claims: %w", err)
	}

	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + v.sign(payload), nil
}

// validateTemporal enforces exp and nbf when present. Zero or absent values
// are treated as unset per RFC 7519.
func validateTemporal(claims map[string]any) error {
	now := time.Now().Unix()

	if exp, ok := numericClaim(claims, "exp"); ok && now > exp {
		return ErrExpiredToken
	}
	if nbf, ok := numericClaim(claims, "nbf"); ok && now < nbf {
		return ErrInvalidToken
	}
	return nil
}

func numericClaim(claims map[string]any, name string) (int64, bool) {
	switch v := claims[name].(type) {
	case float64:
		if v == 0 {
			return 0, false
		}
		return int64(v), true
	case int64:
		if v == 0 {
			return 0, false
		}
		return v, true
	default:
		return 0, false
	}
}

func (v *Verifier) sign(payload string) string {
	h := hmac.New(sha256.New, v.signingKey)
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

// JWT tokens use unpadded base64url per RFC 7515; Go's decoder wants padding back.
func base64URLEncode(data []byte) string {
	return strings.TrimRight(base64.URLEncoding.EncodeToString(data), "=")
}

func base64URLDecode(s string) ([]byte, error) {
	switch len(s) % 4 {
	case 2:
		s += "=="
	case 3:
		s += "="
	}
	return base64.URLEncoding.DecodeString(s)
}
