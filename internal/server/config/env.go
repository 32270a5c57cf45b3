package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Variables that
// are unset or empty leave the current value untouched; malformed numeric
// values panic, since a typo in token lifetimes or bcrypt cost must not be
// silently replaced with a default.
//
// Supported variables:
//
//	ADDRESS                    HTTP bind address
//	DATABASE_DSN               PostgreSQL DSN
//	SECRET_KEY                 JWT signing secret
//	JWT_ALGORITHM              HMAC algorithm identifier
//	ACCESS_TOKEN_TTL_MINUTES   access token lifetime, minutes
//	REFRESH_TOKEN_TTL_MINUTES  refresh token lifetime, minutes
//	BCRYPT_COST                bcrypt work factor
//	DEBUG                      "true"/"1" enables debug mode
func parseEnv(config *Config) {
	if v, ok := os.LookupEnv("ADDRESS"); ok && v != "" {
		config.Address = v
	}
	if v, ok := os.LookupEnv("DATABASE_DSN"); ok && v != "" {
		config.DatabaseDSN = v
	}
	if v, ok := os.LookupEnv("SECRET_KEY"); ok && v != "" {
		config.SecretKey = v
	}
	if v, ok := os.LookupEnv("JWT_ALGORITHM"); ok && v != "" {
		config.JWTAlgorithm = v
	}
	if v, ok := os.LookupEnv("ACCESS_TOKEN_TTL_MINUTES"); ok && v != "" {
		config.AccessTokenValidityDuration = time.Duration(mustAtoi("ACCESS_TOKEN_TTL_MINUTES", v)) * time.Minute
	}
	if v, ok := os.LookupEnv("REFRESH_TOKEN_TTL_MINUTES"); ok && v != "" {
		config.RefreshTokenValidityDuration = time.Duration(mustAtoi("REFRESH_TOKEN_TTL_MINUTES", v)) * time.Minute
	}
	if v, ok := os.LookupEnv("BCRYPT_COST"); ok && v != "" {
		config.BcryptCost = mustAtoi("BCRYPT_COST", v)
	}
	if v, ok := os.LookupEnv("DEBUG"); ok && v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			panic("invalid DEBUG value: " + v)
		}
		config.Debug = b
	}
}

func mustAtoi(name, v string) int {
	n, err := strconv.Atoi(v)
	if err != nil {
		panic("invalid " + name + " value: " + v)
	}
	return n
}
