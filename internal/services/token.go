package services

import (
	"fmt"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Identity is a verified token subject.
type Identity struct {
	SubjectID uuid.UUID
	Email     string
}

type tokenClaims struct {
	Email string `json:"email,omitempty"`
	jwtlib.RegisteredClaims
}

// TokenService verifies bearer tokens issued by the identity provider. Token
// issuance here exists for development and tests; account management is the
// provider's concern.
type TokenService interface {
	Verify(token string) (Identity, error)
	Generate(subjectID uuid.UUID, email string, ttl time.Duration) (string, error)
}

type tokenService struct {
	secret []byte
}

func NewTokenService(secret string) TokenService {
	return &tokenService{secret: []byte(secret)}
}

// Verify implements TokenService.
func (t *tokenService) Verify(token string) (Identity, error) {
	parser := jwtlib.NewParser(jwtlib.WithValidMethods([]string{jwtlib.SigningMethodHS256.Alg()}))

	var claims tokenClaims
	parsed, err := parser.ParseWithClaims(token, &claims, func(*jwtlib.Token) (interface{}, error) {
		return t.secret, nil
	})
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	if parsed == nil || !parsed.Valid {
		return Identity{}, ErrInvalidToken
	}

	subjectID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}

	return Identity{SubjectID: subjectID, Email: claims.Email}, nil
}

// Generate implements TokenService.
func (t *tokenService) Generate(subjectID uuid.UUID, email string, ttl time.Duration) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		Email: email,
		RegisteredClaims: jwtlib.RegisteredClaims{
			Subject:   subjectID.String(),
			IssuedAt:  jwtlib.NewNumericDate(now),
			ExpiresAt: jwtlib.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims)
	signed, err := token.SignedString(t.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}
