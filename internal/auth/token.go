package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/bawadev/dhaana/internal/domain"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid token")

type Claims struct {
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}

// TokenIssuer mints and verifies the HS256 bearer tokens that stand in for
// the external identity provider.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenIssuer(secret string, ttl time.Duration) *TokenIssuer {
	return &TokenIssuer{secret: []byte(secret), ttl: ttl}
}

func (i *TokenIssuer) Issue(user *domain.User) (string, error) {
	roles := make([]string, len(user.Roles))
	for n, r := range user.Roles {
		roles[n] = string(r)
	}

	now := time.Now()
	claims := Claims{
		Roles: roles,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(i.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(i.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}

	return signed, nil
}

// Parse validates the token and returns the actor it identifies.
func (i *TokenIssuer) Parse(tokenStr string) (domain.Actor, error) {
	t, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return i.secret, nil
	}, jwt.WithLeeway(5*time.Second))
	if err != nil {
		return domain.Actor{}, fmt.Errorf("%w: %s", ErrInvalidToken, err)
	}

	claims, ok := t.Claims.(*Claims)
	if !ok || !t.Valid || claims.Subject == "" {
		return domain.Actor{}, ErrInvalidToken
	}

	roles := make([]domain.Role, 0, len(claims.Roles))
	for _, r := range claims.Roles {
		if domain.ValidRole(domain.Role(r)) {
			roles = append(roles, domain.Role(r))
		}
	}

	return domain.Actor{ID: claims.Subject, Roles: roles}, nil
}
