// Package token issues and verifies signed action tokens.
//
// An action token authorizes exactly one lifecycle transition (create,
// update or delete of a match) on behalf of the requester it was minted
// for. It travels out of band inside an email confirmation link and is
// validated when the counterpart follows the link.
package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Action identifies the lifecycle transition a token authorizes.
type Action string

const (
	ActionCreate Action = "create"
	ActionUpdate Action = "update"
	ActionDelete Action = "delete"
)

var (
	// ErrTokenInvalid indicates a malformed token or a bad signature.
	ErrTokenInvalid = errors.New("invalid token")
	// ErrTokenExpired indicates the token's validity window has elapsed.
	ErrTokenExpired = errors.New("token expired")
	// ErrTokenMismatch indicates the token was minted for a different action or match.
	ErrTokenMismatch = errors.New("token does not authorize this action")
)

// Claims is the action token payload. Subject carries the requester's
// user id; Action and MatchID bind the token to a single transition so a
// create token cannot be redeemed against a delete endpoint. MatchID is
// zero for create tokens (no match row exists yet at request time).
type Claims struct {
	jwt.RegisteredClaims
	Action  Action `json:"act"`
	MatchID uint   `json:"match_id,omitempty"`
}

// Issuer mints and verifies action tokens with a shared HMAC secret.
type Issuer struct {
	secret []byte
	ttl    time.Duration
	now    func() time.Time
}

// New creates a token issuer. ttl bounds the redemption window.
func New(secret string, ttl time.Duration) *Issuer {
	return &Issuer{
		secret: []byte(secret),
		ttl:    ttl,
		now:    time.Now,
	}
}

// Issue mints a signed token for userID authorizing the given action.
// matchID is 0 for create actions.
func (i *Issuer) Issue(userID uint, action Action, matchID uint) (string, error) {
	now := i.now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", userID),
			ID:        uuid.NewString(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
		Action:  action,
		MatchID: matchID,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates the signature and expiry of raw and checks that it
// authorizes the given action on the given match. It returns the
// requester's user id and the token's unique id (jti).
func (i *Issuer) Verify(raw string, action Action, matchID uint) (uint, string, error) {
	claims := &Claims{}
	_, err := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
	).ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		return i.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return 0, "", ErrTokenExpired
		}
		return 0, "", ErrTokenInvalid
	}

	if claims.Action != action || claims.MatchID != matchID {
		return 0, "", ErrTokenMismatch
	}

	var userID uint
	if _, err := fmt.Sscanf(claims.Subject, "%d", &userID); err != nil || userID == 0 {
		return 0, "", ErrTokenInvalid
	}

	return userID, claims.ID, nil
}

// RemainingTTL returns how long a verified token stays valid from now.
// Used to bound the redeemed-nonce record so it expires with the token.
func (i *Issuer) RemainingTTL(raw string) time.Duration {
	claims := &Claims{}
	if _, _, err := jwt.NewParser().ParseUnverified(raw, claims); err != nil {
		return i.ttl
	}
	if claims.ExpiresAt == nil {
		return i.ttl
	}
	remaining := claims.ExpiresAt.Time.Sub(i.now())
	if remaining <= 0 {
		return time.Second
	}
	return remaining
}
