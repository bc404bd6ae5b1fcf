package services

import (
	"testing"
	"time"

	jwtlib "github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-key"

func TestTokenRoundTrip(t *testing.T) {
	tokens := NewTokenService(testSecret)
	subjectID := uuid.New()

	token, err := tokens.Generate(subjectID, "jane@example.com", time.Hour)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	identity, err := tokens.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, subjectID, identity.SubjectID)
	assert.Equal(t, "jane@example.com", identity.Email)
}

func TestTokenWrongSecret(t *testing.T) {
	tokens := NewTokenService(testSecret)
	token, err := tokens.Generate(uuid.New(), "jane@example.com", time.Hour)
	require.NoError(t, err)

	_, err = NewTokenService("another-secret").Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenExpired(t *testing.T) {
	tokens := NewTokenService(testSecret)
	token, err := tokens.Generate(uuid.New(), "jane@example.com", -time.Minute)
	require.NoError(t, err)

	_, err = tokens.Verify(token)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenGarbage(t *testing.T) {
	tokens := NewTokenService(testSecret)

	_, err := tokens.Verify("not.a.token")
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsUnexpectedAlgorithm(t *testing.T) {
	claims := jwtlib.RegisteredClaims{
		Subject:   uuid.New().String(),
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS512, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Verify(signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestTokenRejectsNonUUIDSubject(t *testing.T) {
	claims := jwtlib.RegisteredClaims{
		Subject:   "user-42",
		ExpiresAt: jwtlib.NewNumericDate(time.Now().Add(time.Hour)),
	}
	signed, err := jwtlib.NewWithClaims(jwtlib.SigningMethodHS256, claims).SignedString([]byte(testSecret))
	require.NoError(t, err)

	_, err = NewTokenService(testSecret).Verify(signed)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}
