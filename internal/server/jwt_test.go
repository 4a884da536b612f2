package server

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-builder/internal/config"
)

func newTestJWTService() *JWTService {
	return NewJWTService(&config.JWTConfig{
		Secret:          "test-secret-at-least-32-characters!!",
		ExpirationHours: 1,
	})
}

func TestGenerateAndValidateToken(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
}

func TestValidateTokenEmpty(t *testing.T) {
	svc := newTestJWTService()
	_, err := svc.ValidateToken("")
	assert.Error(t, err)
}

func TestValidateTokenMalformed(t *testing.T) {
	svc := newTestJWTService()
	_, err := svc.ValidateToken("not.a.token")
	assert.Error(t, err)
}

func TestValidateTokenWrongSecret(t *testing.T) {
	svc := newTestJWTService()
	token, err := svc.GenerateToken(uuid.New())
	require.NoError(t, err)

	other := NewJWTService(&config.JWTConfig{
		Secret:          "a-completely-different-secret-value!",
		ExpirationHours: 1,
	})
	_, err = other.ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateTokenExpired(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret-at-least-32-characters!!", ExpirationHours: 1}
	userID := uuid.New()

	// Token already past its expiry.
	now := time.Now().Add(-2 * time.Hour)
	claims := &Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	tokenString, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(cfg.Secret))
	require.NoError(t, err)

	_, err = NewJWTService(cfg).ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsWrongAlgorithm(t *testing.T) {
	cfg := &config.JWTConfig{Secret: "test-secret-at-least-32-characters!!", ExpirationHours: 1}

	// alg=none tokens must never validate.
	claims := &Claims{UserID: uuid.New()}
	token := jwt.NewWithClaims(jwt.SigningMethodNone, claims)
	tokenString, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = NewJWTService(cfg).ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestAsTokenValidator(t *testing.T) {
	svc := newTestJWTService()
	userID := uuid.New()

	token, err := svc.GenerateToken(userID)
	require.NoError(t, err)

	validator := svc.AsTokenValidator()
	getter, err := validator.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, userID, getter.GetUserID())
}
