package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

type Config struct {
	IsTestMode                      bool
	Port                            int
	Secret                          string
	PostgresqlURL                   string
	RedisURL                        string
	BcryptHasherCost                int
	PasswordResetValidDurationHours int
	PasswordResetEmailFailSilently  bool
	FrontendURL                     string
	AllowedOrigins                  []string
	AwsRegion                       string
	AwsAccessKey                    string
	AwsSecretKey                    string
	AwsEmailSender                  string
}

func Load() (*Config, error) {
	isTestMode := os.Getenv("TEST_MODE") == "true"

	port := 8080
	if portRaw := os.Getenv("PORT"); portRaw != "" {
		p, err := strconv.Atoi(portRaw)
		if err != nil {
			return nil, fmt.Errorf("invalid PORT value: %w", err)
		}
		port = p
	}

	secret := os.Getenv("SECRET")
	if secret == "" {
		return nil, fmt.Errorf("SECRET must be set")
	}

	postgresqlURL := os.Getenv("POSTGRESQL_URL")
	if postgresqlURL == "" {
		return nil, fmt.Errorf("POSTGRESQL_URL must be set")
	}

	redisURL := os.Getenv("REDIS_URL")
	if redisURL == "" {
		return nil, fmt.Errorf("REDIS_URL must be set")
	}

	bcryptHasherCostRaw := os.Getenv("BCRYPT_HASHER_COST")
	bcryptHasherCost, err := strconv.Atoi(bcryptHasherCostRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_HASHER_COST value: %w", err)
	}

	passwordResetValidDurationHoursRaw := os.Getenv("PASSWORD_RESET_VALID_DURATION_HOURS")
	passwordResetValidDurationHours, err := strconv.Atoi(passwordResetValidDurationHoursRaw)
	if err != nil {
		return nil, fmt.Errorf("invalid PASSWORD_RESET_VALID_DURATION_HOURS value: %w", err)
	}

	passwordResetEmailFailSilently := os.Getenv("PASSWORD_RESET_EMAIL_FAIL_SILENTLY") == "true"

	frontendURL := os.Getenv("FRONTEND_URL")
	if frontendURL == "" {
		return nil, fmt.Errorf("FRONTEND_URL must be set")
	}

	allowedOrigins := []string{"*"}
	if allowedOriginsRaw := os.Getenv("ALLOWED_ORIGINS"); allowedOriginsRaw != "" {
		allowedOrigins = strings.Split(allowedOriginsRaw, ",")
	}

	return &Config{
		IsTestMode:                      isTestMode,
		Port:                            port,
		Secret:                          secret,
		PostgresqlURL:                   postgresqlURL,
		RedisURL:                        redisURL,
		BcryptHasherCost:                bcryptHasherCost,
		PasswordResetValidDurationHours: passwordResetValidDurationHours,
		PasswordResetEmailFailSilently:  passwordResetEmailFailSilently,
		FrontendURL:                     frontendURL,
		AllowedOrigins:                  allowedOrigins,
		AwsRegion:                       os.Getenv("AWS_REGION"),
		AwsAccessKey:                    os.Getenv("AWS_ACCESS_KEY"),
		AwsSecretKey:                    os.Getenv("AWS_SECRET_KEY"),
		AwsEmailSender:                  os.Getenv("AWS_EMAIL_SENDER"),
	}, nil
}
