package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseEnv_OverlaysValues(t *testing.T) {
	t.Setenv("ADDRESS", ":5050")
	t.Setenv("DATABASE_DSN", "postgres://u:p@env:5432/orbit")
	t.Setenv("SECRET_KEY", "env-secret")
	t.Setenv("JWT_ALGORITHM", "HS512")
	t.Setenv("ACCESS_TOKEN_TTL_MINUTES", "45")
	t.Setenv("REFRESH_TOKEN_TTL_MINUTES", "2880")
	t.Setenv("BCRYPT_COST", "13")
	t.Setenv("DEBUG", "true")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":5050", c.Address)
	assert.Equal(t, "postgres://u:p@env:5432/orbit", c.DatabaseDSN)
	assert.Equal(t, "env-secret", c.SecretKey)
	assert.Equal(t, "HS512", c.JWTAlgorithm)
	assert.Equal(t, 45*time.Minute, c.AccessTokenValidityDuration)
	assert.Equal(t, 2880*time.Minute, c.RefreshTokenValidityDuration)
	assert.Equal(t, 13, c.BcryptCost)
	assert.True(t, c.Debug)
}

func TestParseEnv_EmptyValuesIgnored(t *testing.T) {
	t.Setenv("ADDRESS", "")
	t.Setenv("SECRET_KEY", "")

	var c Config
	c.LoadDefaults()
	parseEnv(&c)

	assert.Equal(t, ":8080", c.Address)
	assert.Equal(t, "secretKey", c.SecretKey)
}

func TestParseEnv_MalformedNumberPanics(t *testing.T) {
	t.Setenv("BCRYPT_COST", "lots")

	var c Config
	c.LoadDefaults()

	assert.Panics(t, func() { parseEnv(&c) })
}
