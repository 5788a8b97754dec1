package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenRevoked = errors.New("token revoked")
	ErrTokenExpired = jwt.ErrTokenExpired
)

// Verifier validates backend-issued HS256 access tokens and tracks logouts.
type Verifier struct {
	secret  []byte
	revoked RevocationList
	now     func() time.Time
}

// NewVerifier creates a verifier for tokens signed with secret.
func NewVerifier(secret string, revoked RevocationList) *Verifier {
	return &Verifier{secret: []byte(secret), revoked: revoked, now: time.Now}
}

// Verify parses token and returns the session it describes.
func (v *Verifier) Verify(ctx context.Context, token string) (Session, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (any, error) {
		return v.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(v.now),
	)
	if err != nil {
		return Session{}, err
	}

	claims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return Session{}, errors.New("invalid token claims")
	}
	sub, err := claims.GetSubject()
	if err != nil || sub == "" {
		return Session{}, errors.New("missing subject")
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return Session{}, errors.New("missing expiration claim")
	}
	role, _ := claims["role"].(string)

	revoked, err := v.revoked.Revoked(ctx, tokenKey(token))
	if err != nil {
		return Session{}, fmt.Errorf("failed to check revocation: %w", err)
	}
	if revoked {
		return Session{}, ErrTokenRevoked
	}

	return Session{
		UserID:    sub,
		Role:      ParseRole(role),
		Token:     token,
		ExpiresAt: exp.Time,
	}, nil
}

// Revoke rejects the session's token from now until it would have expired anyway.
func (v *Verifier) Revoke(ctx context.Context, s Session) error {
	if !s.Authenticated() {
		return nil
	}
	return v.revoked.Revoke(ctx, tokenKey(s.Token), s.ExpiresAt)
}

func tokenKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
