package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/staffhub/hrms/internal/core/domain"
)

const defaultTokenTTL = 24 * time.Hour

// identityClaims is the wire shape of an issued token: the identity
// snapshot plus the registered iat/exp claims.
type identityClaims struct {
	Role     string `json:"role"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Employee bool   `json:"employee,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies identity tokens with a process-wide
// HS256 secret. It is stateless: there is no revocation list, so a token
// stays valid for its full window regardless of later credential changes.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = defaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue serializes the identity into a signed token. The role is written
// in its canonical form so every issuance site agrees on casing.
func (s *TokenService) Issue(identity domain.Identity) (string, error) {
	now := time.Now()
	claims := identityClaims{
		Role:     identity.Role.String(),
		Name:     identity.Name,
		Email:    identity.Email,
		Employee: identity.Employee,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   identity.ID,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry and reconstructs the identity. The
// role is re-parsed through the enum, so tokens minted elsewhere with
// odd casing still come out canonical.
func (s *TokenService) Verify(token string) (domain.Identity, error) {
	var claims identityClaims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !parsed.Valid {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	role, err := domain.ParseRole(claims.Role)
	if err != nil {
		return domain.Identity{}, domain.ErrInvalidToken
	}
	if claims.Subject == "" {
		return domain.Identity{}, domain.ErrInvalidToken
	}

	return domain.Identity{
		ID:       claims.Subject,
		Role:     role,
		Name:     claims.Name,
		Email:    claims.Email,
		Employee: claims.Employee,
	}, nil
}
