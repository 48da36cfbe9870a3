package services

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const stateAudience = "login-oauth"

// StateSigner issues and verifies the OAuth2 state parameter as a signed,
// short-lived JWT. This is what correlates the authorize redirect with
// the provider's callback.
type StateSigner struct {
	secret []byte
	ttl    time.Duration
}

func NewStateSigner(secret string) *StateSigner {
	return &StateSigner{secret: []byte(secret), ttl: 5 * time.Minute}
}

func (s *StateSigner) Sign() (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, &jwt.RegisteredClaims{
		Audience:  jwt.ClaimStrings{stateAudience},
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	})
	return token.SignedString(s.secret)
}

// Verify rejects missing, expired, or tampered state values.
func (s *StateSigner) Verify(state string) error {
	if state == "" {
		return errors.New("missing state")
	}
	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(state, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return s.secret, nil
	})
	if err != nil {
		return err
	}
	if len(claims.Audience) == 0 || claims.Audience[0] != stateAudience {
		return errors.New("invalid state audience")
	}
	return nil
}
