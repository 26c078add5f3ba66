package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrInvalidToken  = errors.New("invalid token")
	ErrInvalidClaims = errors.New("invalid claims")
)

// Claims are the identity provider assertions the service relies on.
type Claims struct {
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	ImageURL string `json:"image_url,omitempty"`
	OrgID    string `json:"org_id,omitempty"`
	OrgRole  string `json:"org_role,omitempty"`
	jwt.RegisteredClaims
}

// Signer issues and verifies HS256 tokens with a shared secret.
type Signer struct {
	secret []byte
	issuer string
	expiry time.Duration
}

func NewSigner(secret, issuer string, expiry time.Duration) *Signer {
	return &Signer{secret: []byte(secret), issuer: issuer, expiry: expiry}
}

// GenerateToken signs claims for subject. Used by the dev CLI and tests; production tokens
// come from the identity provider.
func (s *Signer) GenerateToken(subject string, claims Claims) (string, error) {
	now := time.Now()
	claims.Subject = subject
	claims.Issuer = s.issuer
	claims.IssuedAt = jwt.NewNumericDate(now)
	if s.expiry > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(s.expiry))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

func (s *Signer) ParseToken(tokenStr string) (*Claims, error) {
	opts := []jwt.ParserOption{jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()})}
	if s.issuer != "" {
		opts = append(opts, jwt.WithIssuer(s.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return s.secret, nil
	}, opts...)
	if err != nil || !token.Valid {
		return nil, ErrInvalidToken
	}

	if claims.Subject == "" || claims.OrgID == "" {
		return nil, ErrInvalidClaims
	}
	return claims, nil
}
