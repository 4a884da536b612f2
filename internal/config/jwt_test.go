package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setJWTEnv(t *testing.T, secret, hours string) {
	t.Helper()
	for key, value := range map[string]string{
		"JWT_SECRET":           secret,
		"JWT_EXPIRATION_HOURS": hours,
	} {
		if value == "" {
			original := os.Getenv(key)
			os.Unsetenv(key)
			t.Cleanup(func() { os.Setenv(key, original) })
		} else {
			t.Setenv(key, value)
		}
	}
}

func TestNewJWTConfig_Defaults(t *testing.T) {
	setJWTEnv(t, "test-secret", "")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, "test-secret", cfg.Secret)
	assert.Equal(t, 24, cfg.ExpirationHours)
}

func TestNewJWTConfig_ExplicitExpiration(t *testing.T) {
	setJWTEnv(t, "test-secret", "72")

	cfg, err := NewJWTConfig()
	require.NoError(t, err)
	assert.Equal(t, 72, cfg.ExpirationHours)
}

func TestNewJWTConfig_MissingSecret(t *testing.T) {
	setJWTEnv(t, "", "")

	_, err := NewJWTConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestNewJWTConfig_InvalidExpiration(t *testing.T) {
	cases := []string{"not-a-number", "0", "-5"}
	for _, hours := range cases {
		setJWTEnv(t, "test-secret", hours)

		_, err := NewJWTConfig()
		require.Error(t, err, "hours %q", hours)
		assert.Contains(t, err.Error(), "JWT_EXPIRATION_HOURS")
	}
}
